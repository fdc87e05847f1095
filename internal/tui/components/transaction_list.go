package components

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/meufuturo/futuro/internal/model"
	"github.com/meufuturo/futuro/internal/tui/themes"
	"github.com/meufuturo/futuro/internal/tui/viewmodel"
)

// ListMode represents the current mode of the list.
type ListMode int

// List modes.
const (
	ModeNormal ListMode = iota
	ModeSearch
)

// TransactionListModel manages the transaction list view: a table over
// the current page plus a search input whose changes flow through the
// debounced dispatcher.
type TransactionListModel struct {
	theme        themes.Theme
	transactions []model.Transaction
	pagination   model.PaginationInfo
	table        table.Model
	searchInput  textinput.Model
	mode         ListMode
	width        int
	height       int
}

// NewTransactionList creates an empty transaction list.
func NewTransactionList(theme themes.Theme) TransactionListModel {
	columns := []table.Column{
		{Title: "Data", Width: 10},
		{Title: "Descrição", Width: 30},
		{Title: "Categoria", Width: 18},
		{Title: "Tipo", Width: 8},
		{Title: "Valor", Width: 14},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(20),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(theme.Border).
		BorderBottom(true).
		Bold(false)
	s.Selected = theme.Selected
	t.SetStyles(s)

	searchInput := textinput.New()
	searchInput.Placeholder = "Buscar transações..."
	searchInput.CharLimit = 100

	return TransactionListModel{
		theme:       theme,
		table:       t,
		searchInput: searchInput,
		mode:        ModeNormal,
		width:       80,
		height:      24,
	}
}

// SetPage replaces the displayed page.
func (m *TransactionListModel) SetPage(transactions []model.Transaction, pagination model.PaginationInfo) {
	m.transactions = transactions
	m.pagination = pagination

	rows := make([]table.Row, 0, len(transactions))
	for _, tx := range transactions {
		rows = append(rows, table.Row{
			tx.TransactionDate,
			viewmodel.TruncateString(tx.Description, 30),
			viewmodel.TruncateString(tx.CategoryName(), 18),
			viewmodel.TypeLabel(tx.Type),
			viewmodel.FormatSignedAmount(tx),
		})
	}
	m.table.SetRows(rows)

	if cursor := m.table.Cursor(); cursor >= len(rows) && len(rows) > 0 {
		m.table.SetCursor(len(rows) - 1)
	}
}

// Selected returns the transaction under the cursor, if any.
func (m TransactionListModel) Selected() (model.Transaction, bool) {
	cursor := m.table.Cursor()
	if cursor < 0 || cursor >= len(m.transactions) {
		return model.Transaction{}, false
	}
	return m.transactions[cursor], true
}

// Searching reports whether the search input has focus.
func (m TransactionListModel) Searching() bool {
	return m.mode == ModeSearch
}

// Update handles messages.
func (m TransactionListModel) Update(msg tea.Msg) (TransactionListModel, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch m.mode {
		case ModeSearch:
			return m.updateSearch(msg)
		case ModeNormal:
			switch msg.String() {
			case "/":
				m.mode = ModeSearch
				m.searchInput.Focus()
				return m, textinput.Blink
			case "enter":
				if tx, ok := m.Selected(); ok {
					index := m.table.Cursor()
					return m, func() tea.Msg {
						return TransactionSelectedMsg{Transaction: tx, Index: index}
					}
				}
			}
		}

	case tea.WindowSizeMsg:
		m.Resize(msg.Width, msg.Height)
	}

	newTable, cmd := m.table.Update(msg)
	m.table = newTable
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// updateSearch routes keys while the search input is focused. Every
// content change is reported upstream; escape leaves search mode with
// the query intact.
func (m TransactionListModel) updateSearch(msg tea.KeyMsg) (TransactionListModel, tea.Cmd) {
	switch msg.String() {
	case "esc", "enter":
		m.mode = ModeNormal
		m.searchInput.Blur()
		return m, nil
	}

	before := m.searchInput.Value()
	newInput, cmd := m.searchInput.Update(msg)
	m.searchInput = newInput

	if query := m.searchInput.Value(); query != before {
		return m, tea.Batch(cmd, func() tea.Msg {
			return SearchChangedMsg{Query: query}
		})
	}
	return m, cmd
}

// Resize adjusts the component to a new terminal size.
func (m *TransactionListModel) Resize(width, height int) {
	m.width = width
	m.height = height
	m.table.SetHeight(height - 6)
}

// View renders the list with its search bar and pagination footer.
func (m TransactionListModel) View() string {
	search := m.searchInput.View()
	if m.mode == ModeNormal && m.searchInput.Value() == "" {
		search = m.theme.StatusPending.Render("/ para buscar")
	}

	footer := m.theme.Subtitle.Render(viewmodel.PageSummary(m.pagination))
	if m.pagination.HasNext || m.pagination.HasPrevious {
		footer += m.theme.StatusPending.Render("  ←/→ páginas")
	}

	if len(m.transactions) == 0 {
		empty := m.theme.Box.Render("Nenhuma transação encontrada")
		return fmt.Sprintf("%s\n%s\n%s", search, empty, footer)
	}

	return fmt.Sprintf("%s\n%s\n%s", search, m.table.View(), footer)
}
