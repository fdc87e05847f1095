package components

import (
	"fmt"
	"strings"

	"github.com/meufuturo/futuro/internal/model"
	"github.com/meufuturo/futuro/internal/tui/themes"
	"github.com/meufuturo/futuro/internal/tui/viewmodel"
)

// TransactionDetailModel is the read-only detail view of one
// transaction.
type TransactionDetailModel struct {
	theme       themes.Theme
	transaction model.Transaction
}

// NewTransactionDetail creates the detail view for tx.
func NewTransactionDetail(tx model.Transaction, theme themes.Theme) TransactionDetailModel {
	return TransactionDetailModel{theme: theme, transaction: tx}
}

// View renders the details.
func (m TransactionDetailModel) View() string {
	tx := m.transaction

	amountStyle := m.theme.Income
	if tx.Type == model.TypeExpense {
		amountStyle = m.theme.Expense
	}

	var b strings.Builder
	b.WriteString(m.theme.Title.Render("Detalhes da transação"))
	b.WriteString("\n")

	rows := []struct {
		label string
		value string
	}{
		{"Descrição", tx.Description},
		{"Tipo", viewmodel.TypeLabel(tx.Type)},
		{"Valor", amountStyle.Render(viewmodel.FormatSignedAmount(tx))},
		{"Data", tx.TransactionDate},
		{"Categoria", tx.CategoryName()},
	}
	if tx.Notes != "" {
		rows = append(rows, struct{ label, value string }{"Observações", tx.Notes})
	}
	if !tx.CreatedAt.IsZero() {
		rows = append(rows, struct{ label, value string }{"Criada em", tx.CreatedAt.Format("2006-01-02 15:04")})
	}

	for _, row := range rows {
		b.WriteString(fmt.Sprintf("%-12s %s\n", row.label+":", row.value))
	}

	b.WriteString("\n")
	b.WriteString(m.theme.StatusPending.Render("esc fechar · e editar · y duplicar"))

	return m.theme.RoundedBox.Render(b.String())
}
