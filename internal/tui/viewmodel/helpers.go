// Package viewmodel contains pure presentation helpers for the TUI.
package viewmodel

import (
	"fmt"
	"strings"

	"github.com/meufuturo/futuro/internal/model"
)

// FormatAmount formats a monetary value in Brazilian real notation:
// R$ 1.234,56.
func FormatAmount(amount float64) string {
	negative := amount < 0
	if negative {
		amount = -amount
	}

	whole := int64(amount)
	cents := int64(amount*100+0.5) - whole*100
	if cents >= 100 {
		whole++
		cents -= 100
	}

	digits := fmt.Sprintf("%d", whole)
	var groups []string
	for len(digits) > 3 {
		groups = append([]string{digits[len(digits)-3:]}, groups...)
		digits = digits[:len(digits)-3]
	}
	groups = append([]string{digits}, groups...)

	formatted := fmt.Sprintf("R$ %s,%02d", strings.Join(groups, "."), cents)
	if negative {
		return "-" + formatted
	}
	return formatted
}

// FormatSignedAmount renders the amount with the sign implied by the
// transaction type: expenses show as negative.
func FormatSignedAmount(tx model.Transaction) string {
	return FormatAmount(tx.SignedAmount())
}

// TypeLabel returns the display label for a transaction type.
func TypeLabel(t model.TransactionType) string {
	switch t {
	case model.TypeIncome:
		return "Receita"
	case model.TypeExpense:
		return "Despesa"
	default:
		return string(t)
	}
}

// TruncateString truncates a string to the specified length with ellipsis.
func TruncateString(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return string(runes[:maxLen])
	}
	return string(runes[:maxLen-3]) + "..."
}

// FilterSummary is the one-line description of the active filters shown
// above the list, e.g. "2 filtros ativos".
func FilterSummary(f model.FilterState) string {
	count := f.ActiveFiltersCount()
	switch count {
	case 0:
		return "sem filtros"
	case 1:
		return "1 filtro ativo"
	default:
		return fmt.Sprintf("%d filtros ativos", count)
	}
}

// PageSummary describes the pagination position, e.g. "página 2/5 · 87
// transações".
func PageSummary(p model.PaginationInfo) string {
	if p.TotalItems == 0 {
		return "nenhuma transação"
	}
	return fmt.Sprintf("página %d/%d · %d transações", p.CurrentPage, p.TotalPages, p.TotalItems)
}
