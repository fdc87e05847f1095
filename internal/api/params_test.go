package api

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/meufuturo/futuro/internal/model"
)

func TestListParams_Values(t *testing.T) {
	start, _ := time.Parse(model.DateOnly, "2025-02-01")
	end, _ := time.Parse(model.DateOnly, "2025-02-28")
	min := 10.5
	max := 200.0

	t.Run("all filters set", func(t *testing.T) {
		filters := model.FilterState{
			Search:      "mercado",
			Type:        model.FilterExpense,
			CategoryID:  "cat-1",
			DateRange:   &model.DateRange{Start: start, End: end},
			AmountRange: model.AmountRange{Min: &min, Max: &max},
			SortBy:      model.SortByAmount,
			SortOrder:   model.SortAsc,
		}

		q := ListParams{Filters: filters, Page: 3, Size: 50}.Values()

		assert.Equal(t, "mercado", q.Get("search"))
		assert.Equal(t, "expense", q.Get("transaction_type"))
		assert.Equal(t, "cat-1", q.Get("category_id"))
		assert.Equal(t, "2025-02-01", q.Get("start_date"))
		assert.Equal(t, "2025-02-28", q.Get("end_date"))
		assert.Equal(t, "10.5", q.Get("min_amount"))
		assert.Equal(t, "200", q.Get("max_amount"))
		assert.Equal(t, "amount", q.Get("sort_by"))
		assert.Equal(t, "asc", q.Get("sort_order"))
		assert.Equal(t, "3", q.Get("page"))
		assert.Equal(t, "50", q.Get("size"))
	})

	t.Run("defaults omitted", func(t *testing.T) {
		q := ListParams{Filters: model.DefaultFilters()}.Values()

		assert.Len(t, q, 4)
		assert.Equal(t, "transaction_date", q.Get("sort_by"))
		assert.Equal(t, "desc", q.Get("sort_order"))
		assert.Equal(t, "1", q.Get("page"))
		assert.Equal(t, "20", q.Get("size"))
	})
}

func TestDuplicateInput(t *testing.T) {
	now, _ := time.Parse(model.DateOnly, "2025-03-15")
	tx := model.Transaction{
		ID:              "tx-1",
		Type:            model.TypeExpense,
		Amount:          99.9,
		Description:     "Internet",
		TransactionDate: "2025-02-01",
		Category:        &model.Category{ID: "cat-7", Name: "Moradia"},
	}

	input := DuplicateInput(tx, now)

	assert.Equal(t, model.TypeExpense, input.Type)
	assert.InDelta(t, 99.9, input.Amount, 0.0001)
	assert.Equal(t, "Internet (cópia)", input.Description)
	assert.Equal(t, "2025-03-15", input.TransactionDate)
	assert.Equal(t, "cat-7", input.CategoryID)
}
