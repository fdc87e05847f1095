package components

import (
	"fmt"
	"strings"

	"github.com/meufuturo/futuro/internal/model"
	"github.com/meufuturo/futuro/internal/tui/themes"
	"github.com/meufuturo/futuro/internal/tui/viewmodel"
)

// StatsPanelModel renders the page-local aggregates: income, expense,
// net and average for the transactions currently on screen.
type StatsPanelModel struct {
	theme themes.Theme
	view  viewmodel.StatsView
	width int
}

// NewStatsPanel creates an empty stats panel.
func NewStatsPanel(theme themes.Theme) StatsPanelModel {
	return StatsPanelModel{theme: theme, width: 40}
}

// SetStats replaces the displayed aggregates.
func (m *StatsPanelModel) SetStats(stats model.TransactionStats) {
	m.view = viewmodel.NewStatsView(stats)
}

// Resize adjusts the panel width.
func (m *StatsPanelModel) Resize(width int) {
	m.width = width
}

// View renders the panel.
func (m StatsPanelModel) View() string {
	var b strings.Builder

	b.WriteString(m.theme.Title.Render("Resumo da página"))
	b.WriteString("\n")

	if !m.view.HasData() {
		b.WriteString(m.theme.StatusPending.Render("sem dados"))
		return m.theme.BorderedBox.Width(m.width).Render(b.String())
	}

	netStyle := m.theme.Income
	if !m.view.NetPositive {
		netStyle = m.theme.Expense
	}

	rows := []struct {
		label string
		value string
	}{
		{"Receitas", m.theme.Income.Render(m.view.TotalIncome)},
		{"Despesas", m.theme.Expense.Render(m.view.TotalExpenses)},
		{"Saldo", netStyle.Render(m.view.NetAmount)},
		{"Média", m.theme.Normal.Render(m.view.AverageTransaction)},
		{"Lançamentos", m.theme.Normal.Render(fmt.Sprintf("%d", m.view.TransactionCount))},
	}

	for _, row := range rows {
		b.WriteString(fmt.Sprintf("%-12s %s\n", row.label, row.value))
	}

	return m.theme.BorderedBox.Width(m.width).Render(strings.TrimRight(b.String(), "\n"))
}
