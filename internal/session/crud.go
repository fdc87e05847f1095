package session

import (
	"context"
	"time"

	"github.com/meufuturo/futuro/internal/api"
	"github.com/meufuturo/futuro/internal/common"
	"github.com/meufuturo/futuro/internal/model"
)

// OpResult reports the outcome of a CRUD operation.
type OpResult struct {
	Err     *common.APIError
	Success bool
}

// CreateTransaction creates a transaction and, on success, reloads the
// list with the current filter and pagination state. The saving flag is
// distinct from the list loading flag and covers only the write call.
func (s *Session) CreateTransaction(ctx context.Context, input api.TransactionInput) OpResult {
	if !s.beginWrite(&s.saving) {
		return closedResult()
	}

	_, err := s.client.CreateTransaction(ctx, input)
	s.endWrite(&s.saving)

	if err != nil {
		return OpResult{Err: common.AsAPIError(err)}
	}

	s.bus.Publish(Invalidation{Reason: ReasonCreated})
	_ = s.Reload(ctx)
	return OpResult{Success: true}
}

// UpdateTransaction applies a partial update, then reloads on success.
func (s *Session) UpdateTransaction(ctx context.Context, id string, patch api.TransactionPatch) OpResult {
	if !s.beginWrite(&s.saving) {
		return closedResult()
	}

	_, err := s.client.UpdateTransaction(ctx, id, patch)
	s.endWrite(&s.saving)

	if err != nil {
		return OpResult{Err: common.AsAPIError(err)}
	}

	s.bus.Publish(Invalidation{Reason: ReasonUpdated, TransactionID: id})
	_ = s.Reload(ctx)
	return OpResult{Success: true}
}

// DeleteTransaction removes a transaction, then reloads on success. The
// deleting flag covers only the delete call.
func (s *Session) DeleteTransaction(ctx context.Context, id string) OpResult {
	if !s.beginWrite(&s.deleting) {
		return closedResult()
	}

	err := s.client.DeleteTransaction(ctx, id)
	s.endWrite(&s.deleting)

	if err != nil {
		return OpResult{Err: common.AsAPIError(err)}
	}

	s.bus.Publish(Invalidation{Reason: ReasonDeleted, TransactionID: id})
	_ = s.Reload(ctx)
	return OpResult{Success: true}
}

// DuplicateTransaction creates a copy of an existing transaction: same
// type, amount and category, description marked as a copy, date reset to
// today.
func (s *Session) DuplicateTransaction(ctx context.Context, tx model.Transaction) OpResult {
	return s.CreateTransaction(ctx, api.DuplicateInput(tx, time.Now()))
}

func (s *Session) beginWrite(flag *bool) bool {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return false
	}
	*flag = true
	s.mu.Unlock()
	s.notifyCommit()
	return true
}

func (s *Session) endWrite(flag *bool) {
	s.mu.Lock()
	*flag = false
	s.mu.Unlock()
	s.notifyCommit()
}

func closedResult() OpResult {
	return OpResult{Err: common.AsAPIError(common.ErrSessionClosed)}
}
