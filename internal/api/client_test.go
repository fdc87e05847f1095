package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meufuturo/futuro/internal/common"
	"github.com/meufuturo/futuro/internal/model"
)

func newTestClient(t *testing.T, handler http.Handler) (*Client, *TokenStore) {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	tokens := NewTokenStoreAt(filepath.Join(t.TempDir(), "auth.json"))
	require.NoError(t, tokens.Save("test-token"))

	client, err := NewClient(Config{
		BaseURL: server.URL,
		Tokens:  tokens,
	})
	require.NoError(t, err)

	return client, tokens
}

func TestListTransactions_QueryEncoding(t *testing.T) {
	var gotQuery url.Values
	var gotAuth string

	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"items": [], "total": 0, "page": 1, "size": 20, "pages": 0, "has_next": false, "has_previous": false}`))
	}))

	filters := model.DefaultFilters()
	filters.Type = model.FilterExpense

	_, err := client.ListTransactions(context.Background(), ListParams{Filters: filters, Page: 1, Size: 20})
	require.NoError(t, err)

	// defaults are omitted entirely
	for _, absent := range []string{"search", "category_id", "start_date", "end_date", "min_amount", "max_amount"} {
		assert.False(t, gotQuery.Has(absent), "expected %s to be omitted", absent)
	}

	assert.Equal(t, "expense", gotQuery.Get("transaction_type"))
	assert.Equal(t, "transaction_date", gotQuery.Get("sort_by"))
	assert.Equal(t, "desc", gotQuery.Get("sort_order"))
	assert.Equal(t, "1", gotQuery.Get("page"))
	assert.Equal(t, "20", gotQuery.Get("size"))
	assert.Equal(t, "Bearer test-token", gotAuth)
}

func TestListTransactions_NormalizesStringAmounts(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"items": [
				{"id": "a", "type": "income", "amount": "123.45", "description": "Salário", "transaction_date": "2025-01-05"},
				{"id": "b", "type": "expense", "amount": 50, "description": "Mercado", "transaction_date": "2025-01-06"}
			],
			"total": 2, "page": 1, "size": 20, "pages": 1, "has_next": false, "has_previous": true
		}`))
	}))

	page, err := client.ListTransactions(context.Background(), ListParams{Filters: model.DefaultFilters()})
	require.NoError(t, err)
	require.Len(t, page.Items, 2)

	assert.InDelta(t, 123.45, page.Items[0].Amount.Float64(), 0.0001)
	assert.InDelta(t, 50.0, page.Items[1].Amount.Float64(), 0.0001)

	stats := model.ComputeStats(page.Items)
	assert.InDelta(t, 73.45, stats.NetAmount, 0.0001)

	assert.Equal(t, 1, page.Pagination.CurrentPage)
	assert.Equal(t, 2, page.Pagination.TotalItems)
	assert.True(t, page.Pagination.HasPrevious)
}

func TestClient_AuthErrorClearsToken(t *testing.T) {
	client, tokens := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"message": "Token expirado"}`))
	}))

	_, err := client.ListTransactions(context.Background(), ListParams{Filters: model.DefaultFilters()})
	require.Error(t, err)
	assert.True(t, common.IsAuthError(err))
	assert.False(t, common.IsRetryable(err))

	_, err = tokens.Token()
	assert.ErrorIs(t, err, common.ErrNotAuthenticated)
}

func TestClient_ServerErrorIsRetryable(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"message": "database unavailable"}`))
	}))

	_, err := client.ListTransactions(context.Background(), ListParams{Filters: model.DefaultFilters()})
	require.Error(t, err)

	apiErr := common.AsAPIError(err)
	assert.Equal(t, common.ErrorServer, apiErr.Kind)
	assert.True(t, apiErr.Retryable)
}

func TestClient_ValidationErrorFromDetailList(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"detail": [{"loc": ["body", "amount"], "msg": "value must be positive"}]}`))
	}))

	_, err := client.CreateTransaction(context.Background(), TransactionInput{
		Type:            model.TypeExpense,
		Amount:          10,
		Description:     "teste",
		TransactionDate: "2025-01-10",
	})
	require.Error(t, err)

	apiErr := common.AsAPIError(err)
	assert.Equal(t, common.ErrorValidation, apiErr.Kind)
	assert.Equal(t, "value must be positive", apiErr.Fields["amount"])
}

func TestCreateTransaction_LocalValidation(t *testing.T) {
	called := false
	client, _ := newTestClient(t, http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		called = true
	}))

	_, err := client.CreateTransaction(context.Background(), TransactionInput{
		Type:            "transfer",
		Amount:          -5,
		Description:     "",
		TransactionDate: "not-a-date",
	})
	require.Error(t, err)

	apiErr := common.AsAPIError(err)
	assert.Equal(t, common.ErrorValidation, apiErr.Kind)
	assert.Contains(t, apiErr.Fields, "amount")
	assert.False(t, called, "invalid payload must not reach the server")
}

func TestGetCategories_CachesPerSession(t *testing.T) {
	hits := 0
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		hits++
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id": "cat-1", "name": "Alimentação", "color": "#ef4444", "type": "expense"}]`))
	}))

	params := CategoryParams{IncludeSystem: true, IncludeSubcategories: true}

	first, err := client.GetCategories(context.Background(), params)
	require.NoError(t, err)
	second, err := client.GetCategories(context.Background(), params)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, hits)

	client.InvalidateCategories()
	_, err = client.GetCategories(context.Background(), params)
	require.NoError(t, err)
	assert.Equal(t, 2, hits)
}

func TestGetTransactionSummary(t *testing.T) {
	var gotPath string
	var gotQuery url.Values

	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.Query()
		w.Header().Set("Content-Type", "application/json")
		// amounts arrive as Decimal strings
		_, _ = w.Write([]byte(`{
			"total_income": "5000.00",
			"total_expenses": "3200.00",
			"net_amount": "1800.00",
			"transaction_count": 45,
			"income_count": 3,
			"expense_count": 42,
			"average_transaction": "182.22",
			"largest_income": "4000.00",
			"largest_expense": null
		}`))
	}))

	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC)

	summary, err := client.GetTransactionSummary(context.Background(), SummaryParams{StartDate: start, EndDate: end})
	require.NoError(t, err)

	assert.Equal(t, "/financial/summary", gotPath)
	assert.Equal(t, "2025-01-01", gotQuery.Get("start_date"))
	assert.Equal(t, "2025-01-31", gotQuery.Get("end_date"))

	assert.InDelta(t, 5000.0, summary.TotalIncome.Float64(), 0.001)
	assert.InDelta(t, 1800.0, summary.NetAmount.Float64(), 0.001)
	assert.Equal(t, 45, summary.TransactionCount)
	require.NotNil(t, summary.LargestIncome)
	assert.InDelta(t, 4000.0, summary.LargestIncome.Float64(), 0.001)
	assert.Nil(t, summary.LargestExpense)
}

func TestSummaryParams_OmitsZeroDates(t *testing.T) {
	assert.Empty(t, SummaryParams{}.Values())
}

func TestDeleteTransaction(t *testing.T) {
	var gotMethod, gotPath string
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		_, _ = w.Write([]byte(`{"success": true, "message": "Transação removida"}`))
	}))

	require.NoError(t, client.DeleteTransaction(context.Background(), "tx-42"))
	assert.Equal(t, http.MethodDelete, gotMethod)
	assert.Equal(t, "/financial/transactions/tx-42", gotPath)
}

func TestExportReport(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/financial/reports/export", r.URL.Path)
		assert.Equal(t, "csv", r.URL.Query().Get("format"))
		_, _ = w.Write([]byte("data,em,csv\n"))
	}))

	start, _ := time.Parse(model.DateOnly, "2025-01-01")
	end, _ := time.Parse(model.DateOnly, "2025-01-31")

	dir := t.TempDir()
	path, err := client.ExportReport(context.Background(), ExportParams{
		Format:    ExportCSV,
		StartDate: start,
		EndDate:   end,
	}, dir)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "relatorio_financeiro_2025-01-01_2025-01-31.csv"), path)
	assert.FileExists(t, path)
}

func TestClient_MissingTokenFailsFast(t *testing.T) {
	tokens := NewTokenStoreAt(filepath.Join(t.TempDir(), "auth.json"))
	client, err := NewClient(Config{BaseURL: "http://localhost:1", Tokens: tokens})
	require.NoError(t, err)

	_, err = client.ListTransactions(context.Background(), ListParams{Filters: model.DefaultFilters()})
	assert.ErrorIs(t, err, common.ErrNotAuthenticated)
}
