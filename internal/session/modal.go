package session

import "github.com/meufuturo/futuro/internal/model"

// ModalKind identifies which modal, if any, is open. The kinds are
// mutually exclusive: opening one closes any other.
type ModalKind int

const (
	// ModalNone means no modal is open.
	ModalNone ModalKind = iota
	// ModalCreate is the new-transaction form.
	ModalCreate
	// ModalEdit is the edit form for the selected transaction.
	ModalEdit
	// ModalDelete is the delete confirmation for the selected transaction.
	ModalDelete
	// ModalDetails is the read-only detail view.
	ModalDetails
)

// Modal is the current modal state plus its selected transaction. The
// selection never leaks across modal types: every transition replaces it.
type Modal struct {
	Transaction *model.Transaction
	Kind        ModalKind
}

// OpenCreate opens the create form, closing any other modal.
func (s *Session) OpenCreate() {
	s.setModal(Modal{Kind: ModalCreate})
}

// OpenEdit opens the edit form for tx, closing any other modal.
func (s *Session) OpenEdit(tx model.Transaction) {
	s.setModal(Modal{Kind: ModalEdit, Transaction: &tx})
}

// OpenDelete opens the delete confirmation for tx.
func (s *Session) OpenDelete(tx model.Transaction) {
	s.setModal(Modal{Kind: ModalDelete, Transaction: &tx})
}

// OpenDetails opens the read-only detail view for tx.
func (s *Session) OpenDetails(tx model.Transaction) {
	s.setModal(Modal{Kind: ModalDetails, Transaction: &tx})
}

// CloseModal returns to the no-modal state from anywhere.
func (s *Session) CloseModal() {
	s.setModal(Modal{Kind: ModalNone})
}

// Modal returns the current modal state.
func (s *Session) Modal() Modal {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.modal
}

// SelectedTransaction returns the transaction the open modal refers to,
// or nil when no transaction-bearing modal is open.
func (s *Session) SelectedTransaction() *model.Transaction {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.modal.Transaction
}

func (s *Session) setModal(m Modal) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.modal = m
	s.mu.Unlock()
	s.notifyCommit()
}
