package api

import (
	"net/url"
	"strconv"
	"time"

	"github.com/meufuturo/futuro/internal/model"
)

// ListParams describes one page request against the transaction listing.
type ListParams struct {
	Filters model.FilterState
	Page    int
	Size    int
}

// Values encodes the request parameters. Fields at their default or
// empty value are omitted: no transaction_type=all, no empty search, no
// category_id=all, no absent date or amount bounds. sort_by, sort_order,
// page and size are always sent.
func (p ListParams) Values() url.Values {
	f := p.Filters
	q := url.Values{}

	if f.Search != "" {
		q.Set("search", f.Search)
	}
	if f.Type != model.FilterAll && f.Type != "" {
		q.Set("transaction_type", string(f.Type))
	}
	if f.CategoryID != model.CategoryAll && f.CategoryID != "" {
		q.Set("category_id", f.CategoryID)
	}
	if f.DateRange != nil {
		q.Set("start_date", f.DateRange.Start.Format(model.DateOnly))
		q.Set("end_date", f.DateRange.End.Format(model.DateOnly))
	}
	if f.AmountRange.Min != nil {
		q.Set("min_amount", strconv.FormatFloat(*f.AmountRange.Min, 'f', -1, 64))
	}
	if f.AmountRange.Max != nil {
		q.Set("max_amount", strconv.FormatFloat(*f.AmountRange.Max, 'f', -1, 64))
	}

	q.Set("sort_by", string(f.SortBy))
	q.Set("sort_order", string(f.SortOrder))

	page := p.Page
	if page < 1 {
		page = 1
	}
	size := p.Size
	if size <= 0 {
		size = model.DefaultPageSize
	}
	q.Set("page", strconv.Itoa(page))
	q.Set("size", strconv.Itoa(size))

	return q
}

// SummaryParams bounds the period of a financial summary request. Zero
// dates are omitted; the server then summarizes everything.
type SummaryParams struct {
	StartDate time.Time
	EndDate   time.Time
}

// Values encodes the summary parameters.
func (p SummaryParams) Values() url.Values {
	q := url.Values{}
	if !p.StartDate.IsZero() {
		q.Set("start_date", p.StartDate.Format(model.DateOnly))
	}
	if !p.EndDate.IsZero() {
		q.Set("end_date", p.EndDate.Format(model.DateOnly))
	}
	return q
}

// CategoryParams describes a category listing request.
type CategoryParams struct {
	IncludeSystem        bool
	IncludeSubcategories bool
}

// Values encodes the category listing parameters.
func (p CategoryParams) Values() url.Values {
	q := url.Values{}
	q.Set("include_system", strconv.FormatBool(p.IncludeSystem))
	q.Set("include_subcategories", strconv.FormatBool(p.IncludeSubcategories))
	return q
}
