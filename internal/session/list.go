package session

import (
	"context"
	"time"

	"github.com/meufuturo/futuro/internal/api"
	"github.com/meufuturo/futuro/internal/common"
	"github.com/meufuturo/futuro/internal/model"
)

// scheduleLoadLocked arms the trailing-edge debounce timer. A change
// arriving before the window elapses cancels the prior schedule. Must be
// called with the session lock held.
func (s *Session) scheduleLoadLocked() {
	if s.timer != nil {
		s.timer.Stop()
	}
	s.timer = time.AfterFunc(s.debounce, func() {
		ctx, cancel := context.WithTimeout(context.Background(), s.requestTimeout)
		defer cancel()
		_ = s.LoadTransactions(ctx)
	})
}

// LoadTransactions fetches the current page and commits list, pagination
// and stats as one state change. On failure the previous data stays in
// place and only the error descriptor is recorded. The loading flag is
// cleared on every exit path. Each call is tagged with a monotonically
// increasing request id; a response whose tag is no longer the latest is
// discarded without touching state.
func (s *Session) LoadTransactions(ctx context.Context) error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return common.ErrSessionClosed
	}
	s.seq++
	reqID := s.seq
	params := api.ListParams{Filters: s.filters, Page: s.page, Size: s.pageSize}
	s.loading = true
	s.mu.Unlock()
	s.notifyCommit()

	var page *api.TransactionPage
	err := common.WithRetry(ctx, func() error {
		p, listErr := s.client.ListTransactions(ctx, params)
		if listErr != nil {
			return listErr
		}
		page = p
		return nil
	}, s.retry)

	s.mu.Lock()
	if s.closed || reqID != s.seq {
		// Stale response: a newer request supersedes this one, or the
		// session is gone. Drop the result silently.
		s.mu.Unlock()
		return nil
	}

	if err != nil {
		s.lastErr = common.AsAPIError(err)
		s.loading = false
		s.mu.Unlock()
		s.notifyCommit()
		return err
	}

	s.transactions = page.Items
	s.pagination = page.Pagination
	if s.pagination.PageSize == 0 {
		s.pagination = model.EmptyPagination(s.pageSize)
	}
	s.page = s.pagination.CurrentPage
	if s.page < 1 {
		s.page = 1
	}
	s.stats = model.ComputeStats(page.Items)
	s.lastErr = nil
	s.loading = false
	s.mu.Unlock()
	s.notifyCommit()

	return nil
}

// Reload forces an immediate fetch with the current filters and page,
// bypassing the debounce window.
func (s *Session) Reload(ctx context.Context) error {
	return s.LoadTransactions(ctx)
}
