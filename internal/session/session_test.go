package session

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/meufuturo/futuro/internal/api"
	"github.com/meufuturo/futuro/internal/common"
	"github.com/meufuturo/futuro/internal/model"
)

// fakeClient implements Client for tests. The hooks default to an empty
// page and successful writes.
type fakeClient struct {
	listFn    func(api.ListParams) (*api.TransactionPage, error)
	createErr error
	updateErr error
	deleteErr error
	listCalls []api.ListParams
	created   []api.TransactionInput
	updated   []string
	deleted   []string
	mu        sync.Mutex
}

func emptyPage(params api.ListParams) *api.TransactionPage {
	return &api.TransactionPage{
		Pagination: model.PaginationInfo{
			CurrentPage: params.Page,
			PageSize:    params.Size,
		},
	}
}

func pageOf(params api.ListParams, items ...model.Transaction) *api.TransactionPage {
	return &api.TransactionPage{
		Items: items,
		Pagination: model.PaginationInfo{
			CurrentPage: params.Page,
			PageSize:    params.Size,
			TotalItems:  len(items),
			TotalPages:  1,
		},
	}
}

func (f *fakeClient) ListTransactions(_ context.Context, params api.ListParams) (*api.TransactionPage, error) {
	f.mu.Lock()
	f.listCalls = append(f.listCalls, params)
	fn := f.listFn
	f.mu.Unlock()

	if fn != nil {
		return fn(params)
	}
	return emptyPage(params), nil
}

func (f *fakeClient) CreateTransaction(_ context.Context, input api.TransactionInput) (*model.Transaction, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.created = append(f.created, input)
	return &model.Transaction{ID: "new", Type: input.Type, Amount: model.Amount(input.Amount)}, nil
}

func (f *fakeClient) UpdateTransaction(_ context.Context, id string, _ api.TransactionPatch) (*model.Transaction, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	f.updated = append(f.updated, id)
	return &model.Transaction{ID: id}, nil
}

func (f *fakeClient) DeleteTransaction(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deleted = append(f.deleted, id)
	return nil
}

func (f *fakeClient) listCallCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.listCalls)
}

func (f *fakeClient) lastListCall() api.ListParams {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.listCalls[len(f.listCalls)-1]
}

// newTestSession uses a short debounce and a single attempt so tests do
// not sleep through backoff windows.
func newTestSession(t *testing.T, client Client) *Session {
	t.Helper()
	s := New(Config{
		Client:   client,
		Debounce: 20 * time.Millisecond,
		Retry:    common.RetryOptions{MaxAttempts: 1, InitialDelay: time.Millisecond},
	})
	t.Cleanup(s.Close)
	return s
}
