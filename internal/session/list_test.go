package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meufuturo/futuro/internal/api"
	"github.com/meufuturo/futuro/internal/common"
	"github.com/meufuturo/futuro/internal/model"
)

func TestLoadTransactions_CommitsListPaginationAndStatsTogether(t *testing.T) {
	client := &fakeClient{
		listFn: func(params api.ListParams) (*api.TransactionPage, error) {
			return pageOf(params,
				model.Transaction{ID: "a", Type: model.TypeIncome, Amount: 1000},
				model.Transaction{ID: "b", Type: model.TypeExpense, Amount: 50},
			), nil
		},
	}
	s := newTestSession(t, client)

	require.NoError(t, s.LoadTransactions(context.Background()))

	state := s.State()
	assert.False(t, state.Loading)
	assert.Nil(t, state.Err)
	assert.Len(t, state.Transactions, 2)
	assert.Equal(t, 2, state.Pagination.TotalItems)
	assert.InDelta(t, 1000.0, state.Stats.TotalIncome, 0.0001)
	assert.InDelta(t, 50.0, state.Stats.TotalExpenses, 0.0001)
	assert.InDelta(t, 950.0, state.Stats.NetAmount, 0.0001)
	assert.InDelta(t, 525.0, state.Stats.AverageTransaction, 0.0001)
}

func TestLoadTransactions_FailureLeavesPriorDataInPlace(t *testing.T) {
	failing := false
	client := &fakeClient{}
	client.listFn = func(params api.ListParams) (*api.TransactionPage, error) {
		if failing {
			return nil, &common.APIError{Kind: common.ErrorServer, Message: "boom", StatusCode: 500, Retryable: true}
		}
		return pageOf(params, model.Transaction{ID: "keep", Type: model.TypeExpense, Amount: 10}), nil
	}
	s := newTestSession(t, client)

	require.NoError(t, s.LoadTransactions(context.Background()))
	before := s.State()

	failing = true
	err := s.LoadTransactions(context.Background())
	require.Error(t, err)

	after := s.State()
	assert.Equal(t, before.Transactions, after.Transactions)
	assert.Equal(t, before.Pagination, after.Pagination)
	assert.Equal(t, before.Stats, after.Stats)
	assert.False(t, after.Loading)
	require.NotNil(t, after.Err)
	assert.NotEmpty(t, after.Err.Message)
}

func TestLoadTransactions_RetriesTransientFailures(t *testing.T) {
	calls := 0
	client := &fakeClient{}
	client.listFn = func(params api.ListParams) (*api.TransactionPage, error) {
		calls++
		if calls < 3 {
			return nil, &common.APIError{Kind: common.ErrorNetwork, Message: "refused", Retryable: true}
		}
		return emptyPage(params), nil
	}

	s := New(Config{
		Client:   client,
		Debounce: 20 * time.Millisecond,
		Retry:    common.RetryOptions{MaxAttempts: 3, InitialDelay: time.Millisecond, MaxDelay: 5 * time.Millisecond, Multiplier: 2},
	})
	t.Cleanup(s.Close)

	require.NoError(t, s.LoadTransactions(context.Background()))
	assert.Equal(t, 3, calls)
	assert.Nil(t, s.State().Err)
}

func TestLoadTransactions_AuthFailureIsNotRetried(t *testing.T) {
	calls := 0
	client := &fakeClient{}
	client.listFn = func(api.ListParams) (*api.TransactionPage, error) {
		calls++
		return nil, &common.APIError{Kind: common.ErrorAuth, Message: "Token expirado", StatusCode: 401}
	}

	s := New(Config{
		Client:   client,
		Debounce: 20 * time.Millisecond,
		Retry:    common.RetryOptions{MaxAttempts: 3, InitialDelay: time.Millisecond, MaxDelay: 5 * time.Millisecond, Multiplier: 2},
	})
	t.Cleanup(s.Close)

	err := s.LoadTransactions(context.Background())
	require.Error(t, err)
	assert.Equal(t, 1, calls)
	assert.Equal(t, common.ErrorAuth, s.State().Err.Kind)
}

func TestLoadTransactions_StaleResponseIsDiscarded(t *testing.T) {
	release := make(chan struct{})
	client := &fakeClient{}
	client.listFn = func(params api.ListParams) (*api.TransactionPage, error) {
		if params.Filters.Search == "old" {
			<-release
			return pageOf(params, model.Transaction{ID: "stale", Type: model.TypeExpense, Amount: 1}), nil
		}
		return pageOf(params, model.Transaction{ID: "fresh", Type: model.TypeExpense, Amount: 2}), nil
	}
	s := newTestSession(t, client)

	s.UpdateFilters(model.FilterUpdate{Search: strPtr("old")})
	oldDone := make(chan struct{})
	go func() {
		defer close(oldDone)
		_ = s.LoadTransactions(context.Background())
	}()

	// wait until the old request is in flight, then supersede it
	require.Eventually(t, func() bool { return client.listCallCount() >= 1 }, time.Second, time.Millisecond)
	s.UpdateFilters(model.FilterUpdate{Search: strPtr("new")})
	require.NoError(t, s.LoadTransactions(context.Background()))

	close(release)
	<-oldDone

	state := s.State()
	require.Len(t, state.Transactions, 1)
	assert.Equal(t, "fresh", state.Transactions[0].ID)
}

func TestLoadTransactions_AfterCloseDoesNothing(t *testing.T) {
	client := &fakeClient{}
	s := newTestSession(t, client)

	s.Close()
	err := s.LoadTransactions(context.Background())
	assert.ErrorIs(t, err, common.ErrSessionClosed)
	assert.Equal(t, 0, client.listCallCount())
}
