package model

import "time"

// TypeFilter widens TransactionType with the "all" sentinel used by the
// list filters. "all" means no narrowing.
type TypeFilter string

const (
	// FilterAll disables type narrowing.
	FilterAll TypeFilter = "all"
	// FilterIncome narrows to income transactions.
	FilterIncome TypeFilter = "income"
	// FilterExpense narrows to expense transactions.
	FilterExpense TypeFilter = "expense"
)

// CategoryAll disables category narrowing.
const CategoryAll = "all"

// SortField names a server-side sort key.
type SortField string

// Supported sort keys.
const (
	SortByDate        SortField = "transaction_date"
	SortByAmount      SortField = "amount"
	SortByDescription SortField = "description"
	SortByCreatedAt   SortField = "created_at"
)

// SortOrder is the sort direction.
type SortOrder string

const (
	// SortAsc sorts ascending.
	SortAsc SortOrder = "asc"
	// SortDesc sorts descending.
	SortDesc SortOrder = "desc"
)

// DateRange bounds transaction dates. Start and End are always both set;
// a half-open range is normalized away before it reaches the dispatcher.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// AmountRange bounds transaction amounts. Nil bounds are open.
type AmountRange struct {
	Min *float64
	Max *float64
}

// FilterState holds every user-chosen narrowing of the transaction list.
type FilterState struct {
	DateRange   *DateRange
	AmountRange AmountRange
	Search      string
	Type        TypeFilter
	CategoryID  string
	SortBy      SortField
	SortOrder   SortOrder
}

// DefaultFilters returns the documented defaults: no narrowing, newest
// first.
func DefaultFilters() FilterState {
	return FilterState{
		Search:      "",
		Type:        FilterAll,
		CategoryID:  CategoryAll,
		DateRange:   nil,
		AmountRange: AmountRange{},
		SortBy:      SortByDate,
		SortOrder:   SortDesc,
	}
}

// FilterUpdate is a partial FilterState; nil fields keep their current
// value when applied.
type FilterUpdate struct {
	Search      *string
	Type        *TypeFilter
	CategoryID  *string
	DateRange   **DateRange
	AmountRange *AmountRange
	SortBy      *SortField
	SortOrder   *SortOrder
}

// Apply merges the update into f. changed reports whether any field was
// modified; narrowed reports whether anything other than the sort
// settings changed. The narrowed flag drives the page-1 reset.
func (f *FilterState) Apply(u FilterUpdate) (changed, narrowed bool) {
	if u.Search != nil && *u.Search != f.Search {
		f.Search = *u.Search
		narrowed = true
	}
	if u.Type != nil && *u.Type != f.Type {
		f.Type = *u.Type
		narrowed = true
	}
	if u.CategoryID != nil && *u.CategoryID != f.CategoryID {
		f.CategoryID = *u.CategoryID
		narrowed = true
	}
	if u.DateRange != nil && !equalDateRange(*u.DateRange, f.DateRange) {
		f.DateRange = normalizeDateRange(*u.DateRange)
		narrowed = true
	}
	if u.AmountRange != nil && !equalAmountRange(*u.AmountRange, f.AmountRange) {
		f.AmountRange = *u.AmountRange
		narrowed = true
	}

	changed = narrowed
	if u.SortBy != nil && *u.SortBy != f.SortBy {
		f.SortBy = *u.SortBy
		changed = true
	}
	if u.SortOrder != nil && *u.SortOrder != f.SortOrder {
		f.SortOrder = *u.SortOrder
		changed = true
	}

	return changed, narrowed
}

// HasActiveFilters reports whether any field differs from the defaults.
func (f FilterState) HasActiveFilters() bool {
	return f.ActiveFiltersCount() > 0 ||
		f.SortBy != SortByDate || f.SortOrder != SortDesc
}

// ActiveFiltersCount counts independently toggleable filter groups that
// differ from their default: search, type, category, date range and
// amount range each count once. Sort settings are presentation, not
// narrowing, and are excluded.
func (f FilterState) ActiveFiltersCount() int {
	count := 0
	if f.Search != "" {
		count++
	}
	if f.Type != FilterAll {
		count++
	}
	if f.CategoryID != CategoryAll && f.CategoryID != "" {
		count++
	}
	if f.DateRange != nil {
		count++
	}
	if f.AmountRange.Min != nil || f.AmountRange.Max != nil {
		count++
	}
	return count
}

// normalizeDateRange drops half-open ranges: either both bounds are set
// or the range is absent.
func normalizeDateRange(r *DateRange) *DateRange {
	if r == nil || r.Start.IsZero() || r.End.IsZero() {
		return nil
	}
	return r
}

func equalDateRange(a, b *DateRange) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Start.Equal(b.Start) && a.End.Equal(b.End)
}

func equalAmountRange(a, b AmountRange) bool {
	return equalBound(a.Min, b.Min) && equalBound(a.Max, b.Max)
}

func equalBound(a, b *float64) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
