package components

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/meufuturo/futuro/internal/model"
	"github.com/meufuturo/futuro/internal/tui/themes"
	"github.com/meufuturo/futuro/internal/tui/viewmodel"
)

// DeleteConfirmModel asks for confirmation before removing a
// transaction.
type DeleteConfirmModel struct {
	theme       themes.Theme
	transaction model.Transaction
}

// NewDeleteConfirm creates the confirmation dialog for tx.
func NewDeleteConfirm(tx model.Transaction, theme themes.Theme) DeleteConfirmModel {
	return DeleteConfirmModel{theme: theme, transaction: tx}
}

// Update handles messages.
func (m DeleteConfirmModel) Update(msg tea.Msg) (DeleteConfirmModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "y", "s", "enter":
		return m, func() tea.Msg { return ConfirmMsg{Confirmed: true} }
	case "n", "esc":
		return m, func() tea.Msg { return ConfirmMsg{Confirmed: false} }
	}
	return m, nil
}

// View renders the dialog.
func (m DeleteConfirmModel) View() string {
	var b strings.Builder

	b.WriteString(m.theme.Title.Render("Excluir transação?"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%s · %s\n",
		viewmodel.TruncateString(m.transaction.Description, 40),
		viewmodel.FormatSignedAmount(m.transaction)))
	b.WriteString("\n")
	b.WriteString(m.theme.StatusError.Render("Esta ação não pode ser desfeita."))
	b.WriteString("\n\n")
	b.WriteString(m.theme.StatusPending.Render("s/enter confirmar · n/esc cancelar"))

	return m.theme.RoundedBox.Render(b.String())
}
