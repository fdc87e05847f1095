package components

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/meufuturo/futuro/internal/api"
	"github.com/meufuturo/futuro/internal/model"
	"github.com/meufuturo/futuro/internal/tui/themes"
	"github.com/meufuturo/futuro/internal/tui/viewmodel"
)

// form field indexes, in focus order.
const (
	fieldType = iota
	fieldAmount
	fieldDescription
	fieldDate
	fieldCategory
	fieldNotes
	fieldCount
)

// TransactionFormModel is the create/edit form. The same component
// serves both: editing pre-fills the fields and submits a patch instead
// of a create payload.
type TransactionFormModel struct {
	theme      themes.Theme
	editID     string
	formError  string
	categories []model.Category
	inputs     map[int]*textinput.Model
	txType     model.TransactionType
	categoryIx int
	focus      int
}

// NewCreateForm builds an empty form defaulting to an expense dated
// today.
func NewCreateForm(categories []model.Category, theme themes.Theme) TransactionFormModel {
	m := newForm(categories, theme)
	m.txType = model.TypeExpense
	m.inputs[fieldDate].SetValue(time.Now().Format(model.DateOnly))
	return m
}

// NewEditForm builds a form pre-filled from an existing transaction.
func NewEditForm(tx model.Transaction, categories []model.Category, theme themes.Theme) TransactionFormModel {
	m := newForm(categories, theme)
	m.editID = tx.ID
	m.txType = tx.Type
	m.inputs[fieldAmount].SetValue(strconv.FormatFloat(tx.Amount.Float64(), 'f', 2, 64))
	m.inputs[fieldDescription].SetValue(tx.Description)
	m.inputs[fieldDate].SetValue(tx.TransactionDate)
	m.inputs[fieldNotes].SetValue(tx.Notes)
	if tx.Category != nil {
		for i, cat := range categories {
			if cat.ID == tx.Category.ID {
				m.categoryIx = i + 1
				break
			}
		}
	}
	return m
}

func newForm(categories []model.Category, theme themes.Theme) TransactionFormModel {
	inputs := make(map[int]*textinput.Model, 4)
	for _, field := range []int{fieldAmount, fieldDescription, fieldDate, fieldNotes} {
		input := textinput.New()
		input.CharLimit = 255
		inputs[field] = &input
	}
	inputs[fieldAmount].Placeholder = "0,00"
	inputs[fieldDescription].Placeholder = "Descrição"
	inputs[fieldDate].Placeholder = model.DateOnly
	inputs[fieldNotes].Placeholder = "Observações (opcional)"
	inputs[fieldNotes].CharLimit = 1000

	return TransactionFormModel{
		theme:      theme,
		categories: categories,
		inputs:     inputs,
		focus:      fieldType,
	}
}

// Editing reports whether the form edits an existing transaction.
func (m TransactionFormModel) Editing() bool {
	return m.editID != ""
}

// Update handles messages.
func (m TransactionFormModel) Update(msg tea.Msg) (TransactionFormModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "esc":
		return m, func() tea.Msg { return FormCancelMsg{} }
	case "tab", "shift+tab", "up", "down":
		m.moveFocus(keyMsg.String())
		return m, nil
	case "enter", "ctrl+s":
		if keyMsg.String() == "enter" && m.focus != fieldNotes && m.focus != fieldCount-1 {
			m.moveFocus("tab")
			return m, nil
		}
		return m.submit()
	case "left", "right":
		switch m.focus {
		case fieldType:
			if m.txType == model.TypeExpense {
				m.txType = model.TypeIncome
			} else {
				m.txType = model.TypeExpense
			}
			return m, nil
		case fieldCategory:
			m.cycleCategory(keyMsg.String() == "right")
			return m, nil
		}
	}

	if input, ok := m.inputs[m.focus]; ok {
		updated, cmd := input.Update(msg)
		*input = updated
		return m, cmd
	}
	return m, nil
}

func (m *TransactionFormModel) moveFocus(key string) {
	if input, ok := m.inputs[m.focus]; ok {
		input.Blur()
	}

	if key == "shift+tab" || key == "up" {
		m.focus = (m.focus + fieldCount - 1) % fieldCount
	} else {
		m.focus = (m.focus + 1) % fieldCount
	}

	if input, ok := m.inputs[m.focus]; ok {
		input.Focus()
	}
}

func (m *TransactionFormModel) cycleCategory(forward bool) {
	// index 0 means "no category"
	n := len(m.categories) + 1
	if forward {
		m.categoryIx = (m.categoryIx + 1) % n
	} else {
		m.categoryIx = (m.categoryIx + n - 1) % n
	}
}

func (m TransactionFormModel) selectedCategoryID() string {
	if m.categoryIx == 0 || m.categoryIx > len(m.categories) {
		return ""
	}
	return m.categories[m.categoryIx-1].ID
}

// submit parses the fields and emits a FormSubmitMsg, or records an
// inline error and stays open.
func (m TransactionFormModel) submit() (TransactionFormModel, tea.Cmd) {
	amountText := strings.ReplaceAll(strings.TrimSpace(m.inputs[fieldAmount].Value()), ",", ".")
	amount, err := strconv.ParseFloat(amountText, 64)
	if err != nil || amount <= 0 {
		m.formError = "valor inválido"
		return m, nil
	}

	description := strings.TrimSpace(m.inputs[fieldDescription].Value())
	if description == "" {
		m.formError = "descrição obrigatória"
		return m, nil
	}

	date := strings.TrimSpace(m.inputs[fieldDate].Value())
	if _, err := time.Parse(model.DateOnly, date); err != nil {
		m.formError = "data inválida (use AAAA-MM-DD)"
		return m, nil
	}

	notes := strings.TrimSpace(m.inputs[fieldNotes].Value())
	categoryID := m.selectedCategoryID()

	if m.Editing() {
		txType := m.txType
		patch := api.TransactionPatch{
			Type:            &txType,
			Amount:          &amount,
			Description:     &description,
			TransactionDate: &date,
		}
		if notes != "" {
			patch.Notes = &notes
		}
		if categoryID != "" {
			patch.CategoryID = &categoryID
		}
		id := m.editID
		return m, func() tea.Msg { return FormSubmitMsg{ID: id, Patch: &patch} }
	}

	input := api.TransactionInput{
		Type:            m.txType,
		Amount:          amount,
		Description:     description,
		TransactionDate: date,
		Notes:           notes,
		CategoryID:      categoryID,
	}
	return m, func() tea.Msg { return FormSubmitMsg{Input: input} }
}

// View renders the form.
func (m TransactionFormModel) View() string {
	var b strings.Builder

	title := "Nova transação"
	if m.Editing() {
		title = "Editar transação"
	}
	b.WriteString(m.theme.Title.Render(title))
	b.WriteString("\n")

	categoryLabel := "Sem categoria"
	if id := m.selectedCategoryID(); id != "" {
		categoryLabel = m.categories[m.categoryIx-1].Name
	}

	rows := []struct {
		label string
		view  string
		field int
	}{
		{"Tipo", viewmodel.TypeLabel(m.txType) + "  ←/→", fieldType},
		{"Valor", m.inputs[fieldAmount].View(), fieldAmount},
		{"Descrição", m.inputs[fieldDescription].View(), fieldDescription},
		{"Data", m.inputs[fieldDate].View(), fieldDate},
		{"Categoria", categoryLabel + "  ←/→", fieldCategory},
		{"Observações", m.inputs[fieldNotes].View(), fieldNotes},
	}

	for _, row := range rows {
		label := row.label
		if row.field == m.focus {
			label = m.theme.Bold.Render("▸ " + label)
		} else {
			label = "  " + label
		}
		b.WriteString(fmt.Sprintf("%s: %s\n", label, row.view))
	}

	if m.formError != "" {
		b.WriteString(m.theme.StatusError.Render(m.formError))
		b.WriteString("\n")
	}

	b.WriteString(m.theme.StatusPending.Render("ctrl+s salvar · esc cancelar"))

	return m.theme.RoundedBox.Render(b.String())
}
