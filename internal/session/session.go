// Package session holds the client-side state machine for the
// transaction list: filters, debounced dispatch, pagination, page-local
// statistics, CRUD with refresh, and modal selection. All mutations go
// through one mutex; every visible change is an atomic commit.
package session

import (
	"context"
	"sync"
	"time"

	"github.com/meufuturo/futuro/internal/api"
	"github.com/meufuturo/futuro/internal/common"
	"github.com/meufuturo/futuro/internal/model"
)

// Client is the API surface the session depends on.
type Client interface {
	ListTransactions(ctx context.Context, params api.ListParams) (*api.TransactionPage, error)
	CreateTransaction(ctx context.Context, input api.TransactionInput) (*model.Transaction, error)
	UpdateTransaction(ctx context.Context, id string, patch api.TransactionPatch) (*model.Transaction, error)
	DeleteTransaction(ctx context.Context, id string) error
}

// DefaultDebounce is the quiescence window for filter-driven fetches.
const DefaultDebounce = 300 * time.Millisecond

// Config configures a Session.
type Config struct {
	Client         Client
	OnCommit       func()
	PageSize       int
	Debounce       time.Duration
	RequestTimeout time.Duration
	Retry          common.RetryOptions
}

// State is one consistent snapshot of the session. Consumers only ever
// see whole snapshots, never a partially applied commit.
type State struct {
	Err          *common.APIError
	Transactions []model.Transaction
	Filters      model.FilterState
	Pagination   model.PaginationInfo
	Stats        model.TransactionStats
	Modal        Modal
	Loading      bool
	Saving       bool
	Deleting     bool
}

// Session is the transaction list state machine.
type Session struct {
	client         Client
	bus            *Bus
	timer          *time.Timer
	onCommit       func()
	lastErr        *common.APIError
	transactions   []model.Transaction
	filters        model.FilterState
	pagination     model.PaginationInfo
	stats          model.TransactionStats
	modal          Modal
	retry          common.RetryOptions
	debounce       time.Duration
	requestTimeout time.Duration
	page           int
	pageSize       int
	seq            uint64
	mu             sync.Mutex
	loading        bool
	saving         bool
	deleting       bool
	closed         bool
}

// New creates a session with default filters and an empty first page.
func New(cfg Config) *Session {
	pageSize := cfg.PageSize
	if pageSize <= 0 {
		pageSize = model.DefaultPageSize
	}
	debounce := cfg.Debounce
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	retry := cfg.Retry
	if retry.MaxAttempts == 0 {
		retry = common.DefaultRetryOptions()
	}

	return &Session{
		client:         cfg.Client,
		filters:        model.DefaultFilters(),
		pagination:     model.EmptyPagination(pageSize),
		page:           1,
		pageSize:       pageSize,
		debounce:       debounce,
		requestTimeout: timeout,
		retry:          retry,
		bus:            NewBus(),
		onCommit:       cfg.OnCommit,
	}
}

// State returns a snapshot of the current session state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	transactions := make([]model.Transaction, len(s.transactions))
	copy(transactions, s.transactions)

	return State{
		Transactions: transactions,
		Filters:      s.filters,
		Pagination:   s.pagination,
		Stats:        s.stats,
		Modal:        s.modal,
		Err:          s.lastErr,
		Loading:      s.loading,
		Saving:       s.saving,
		Deleting:     s.deleting,
	}
}

// Bus exposes the invalidation channel so other components can observe
// data changes.
func (s *Session) Bus() *Bus {
	return s.bus
}

// Close marks the session dead: pending debounce timers are stopped and
// any in-flight fetch result is discarded instead of committed. The
// underlying HTTP requests are not aborted; only local state application
// is suppressed.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	s.closed = true
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.bus.Close()
}

// notifyCommit invokes the commit hook outside the lock.
func (s *Session) notifyCommit() {
	if s.onCommit != nil {
		s.onCommit()
	}
}
