// Package components contains the building blocks of the TUI.
package components

import (
	"github.com/meufuturo/futuro/internal/api"
	"github.com/meufuturo/futuro/internal/model"
)

// TransactionSelectedMsg is sent when a transaction is chosen in the list.
type TransactionSelectedMsg struct {
	Transaction model.Transaction
	Index       int
}

// SearchChangedMsg is sent on every keystroke in the search input. The
// session debounces the resulting fetches.
type SearchChangedMsg struct {
	Query string
}

// FormSubmitMsg carries a completed transaction form. ID is empty for a
// create and set for an edit.
type FormSubmitMsg struct {
	Patch *api.TransactionPatch
	ID    string
	Input api.TransactionInput
}

// FormCancelMsg is sent when the form is dismissed without saving.
type FormCancelMsg struct{}

// ConfirmMsg is sent when the delete confirmation is answered.
type ConfirmMsg struct {
	Confirmed bool
}
