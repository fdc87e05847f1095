package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/meufuturo/futuro/internal/session"
	"github.com/meufuturo/futuro/internal/tui/viewmodel"
)

// View renders the whole screen.
func (m Model) View() string {
	if m.quitting {
		return "Até logo!\n"
	}
	if m.showHelp {
		return m.helpView()
	}

	var b strings.Builder
	b.WriteString(m.headerView())
	b.WriteString("\n")

	switch m.state.Modal.Kind {
	case session.ModalCreate, session.ModalEdit:
		b.WriteString(m.centered(m.form.View()))
	case session.ModalDelete:
		b.WriteString(m.centered(m.confirm.View()))
	case session.ModalDetails:
		b.WriteString(m.centered(m.detail.View()))
	default:
		body := lipgloss.JoinHorizontal(lipgloss.Top, m.list.View(), m.stats.View())
		b.WriteString(body)
	}

	b.WriteString("\n")
	b.WriteString(m.statusView())
	return b.String()
}

func (m Model) headerView() string {
	title := m.theme.Title.Render("MeuFuturo · Transações")

	parts := []string{viewmodel.FilterSummary(m.state.Filters)}
	switch {
	case m.state.Loading:
		parts = append(parts, m.theme.StatusPending.Render("carregando..."))
	case m.state.Saving:
		parts = append(parts, m.theme.StatusPending.Render("salvando..."))
	case m.state.Deleting:
		parts = append(parts, m.theme.StatusPending.Render("excluindo..."))
	}

	return title + "\n" + m.theme.Subtitle.Render(strings.Join(parts, " · "))
}

func (m Model) statusView() string {
	if m.status != "" {
		if m.statusErr {
			return m.theme.StatusError.Render(m.status)
		}
		return m.theme.StatusSuccess.Render(m.status)
	}
	if err := m.state.Err; err != nil {
		return m.theme.StatusError.Render("Erro: " + err.Message)
	}
	return m.theme.StatusPending.Render("? ajuda · q sair")
}

func (m Model) centered(content string) string {
	if m.width <= 0 {
		return content
	}
	return lipgloss.Place(m.width, lipgloss.Height(content), lipgloss.Center, lipgloss.Top, content)
}

func (m Model) helpView() string {
	bindings := []key.Binding{
		m.keys.Details,
		m.keys.New,
		m.keys.Edit,
		m.keys.Delete,
		m.keys.Duplicate,
		m.keys.Search,
		m.keys.CycleType,
		m.keys.CycleSort,
		m.keys.ToggleOrder,
		m.keys.ClearFilters,
		m.keys.PrevPage,
		m.keys.NextPage,
		m.keys.Refresh,
		m.keys.Export,
		m.keys.Quit,
	}

	var b strings.Builder
	b.WriteString(m.theme.Title.Render("Atalhos"))
	b.WriteString("\n")
	for _, binding := range bindings {
		help := binding.Help()
		b.WriteString(m.theme.Bold.Render(padRight(help.Key, 10)))
		b.WriteString(" ")
		b.WriteString(m.theme.Normal.Render(help.Desc))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(m.theme.StatusPending.Render("qualquer tecla para voltar"))

	return m.theme.RoundedBox.Render(b.String())
}

func padRight(s string, width int) string {
	if len([]rune(s)) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len([]rune(s)))
}
