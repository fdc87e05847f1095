package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/meufuturo/futuro/internal/api"
	"github.com/meufuturo/futuro/internal/common"
	"github.com/meufuturo/futuro/internal/model"
	"github.com/meufuturo/futuro/internal/session"
	"github.com/meufuturo/futuro/internal/tui/components"
	"github.com/meufuturo/futuro/internal/tui/themes"
)

// Config configures the TUI.
type Config struct {
	Session   *session.Session
	Client    *api.Client
	Theme     themes.Theme
	ExportDir string
}

// Model is the root bubbletea model. It owns the widgets and routes
// user intent into the session; all data state lives in the session and
// is re-read as a snapshot after every commit.
type Model struct {
	sess      *session.Session
	client    *api.Client
	theme     themes.Theme
	keys      KeyMap
	exportDir string

	list    components.TransactionListModel
	stats   components.StatsPanelModel
	form    components.TransactionFormModel
	confirm components.DeleteConfirmModel
	detail  components.TransactionDetailModel

	state         session.State
	categories    []model.Category
	invalidations <-chan session.Invalidation
	cancelSub     func()

	status    string
	statusErr bool
	width     int
	height    int
	showHelp  bool
	quitting  bool
}

// NewModel creates the root model.
func NewModel(cfg Config) Model {
	theme := cfg.Theme
	exportDir := cfg.ExportDir
	if exportDir == "" {
		exportDir = "."
	}

	invalidations, cancel := cfg.Session.Bus().Subscribe()

	return Model{
		sess:          cfg.Session,
		client:        cfg.Client,
		theme:         theme,
		keys:          DefaultKeyMap(),
		exportDir:     exportDir,
		list:          components.NewTransactionList(theme),
		stats:         components.NewStatsPanel(theme),
		state:         cfg.Session.State(),
		invalidations: invalidations,
		cancelSub:     cancel,
		width:         80,
		height:        24,
	}
}

// Init starts the initial data loads.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		loadCategoriesCmd(m.client),
		reloadCmd(m.sess),
		waitForInvalidation(m.invalidations),
	)
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.list.Resize(msg.Width-44, msg.Height)
		m.stats.Resize(40)
		return m, nil

	case sessionCommittedMsg:
		m.syncSnapshot()
		return m, nil

	case categoriesLoadedMsg:
		if msg.err == nil {
			m.categories = msg.categories
		}
		return m, nil

	case invalidationMsg:
		if !msg.ok {
			return m, nil
		}
		// Data changed somewhere: refetch the current page. The stale
		// guard collapses this with any reload already in flight.
		return m, tea.Batch(reloadCmd(m.sess), waitForInvalidation(m.invalidations))

	case opResultMsg:
		return m.handleOpResult(msg)

	case exportDoneMsg:
		if msg.err != nil {
			common.LogError(msg.err, "report export failed", common.Fields{"dir": m.exportDir})
			return m.withError("Falha ao exportar: " + msg.err.Error())
		}
		return m.withStatus("Relatório salvo em " + msg.path)

	case statusExpiredMsg:
		m.status = ""
		m.statusErr = false
		return m, nil

	case components.SearchChangedMsg:
		query := msg.Query
		m.sess.UpdateFilters(model.FilterUpdate{Search: &query})
		return m, nil

	case components.TransactionSelectedMsg:
		return m.openDetails(msg.Transaction)

	case components.FormSubmitMsg:
		if msg.Patch != nil {
			return m, updateCmd(m.sess, msg.ID, *msg.Patch)
		}
		return m, createCmd(m.sess, msg.Input)

	case components.FormCancelMsg:
		m.sess.CloseModal()
		m.syncSnapshot()
		return m, nil

	case components.ConfirmMsg:
		if tx := m.sess.SelectedTransaction(); msg.Confirmed && tx != nil {
			return m, deleteCmd(m.sess, tx.ID)
		}
		m.sess.CloseModal()
		m.syncSnapshot()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m.updateActiveComponent(msg)
}

// handleKey routes keys by the current modal state.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.ForceQuit) {
		return m.quit()
	}

	if m.showHelp {
		m.showHelp = false
		return m, nil
	}

	switch m.state.Modal.Kind {
	case session.ModalCreate, session.ModalEdit, session.ModalDelete:
		return m.updateActiveComponent(msg)
	case session.ModalDetails:
		return m.handleDetailsKey(msg)
	}

	if m.list.Searching() {
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.quit()
	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil
	case key.Matches(msg, m.keys.Refresh):
		return m, reloadCmd(m.sess)
	case key.Matches(msg, m.keys.New):
		m.sess.OpenCreate()
		m.form = components.NewCreateForm(m.categories, m.theme)
		m.syncSnapshot()
		return m, nil
	case key.Matches(msg, m.keys.Edit):
		if tx, ok := m.list.Selected(); ok {
			return m.openEdit(tx)
		}
		return m, nil
	case key.Matches(msg, m.keys.Delete):
		if tx, ok := m.list.Selected(); ok {
			m.sess.OpenDelete(tx)
			m.confirm = components.NewDeleteConfirm(tx, m.theme)
			m.syncSnapshot()
		}
		return m, nil
	case key.Matches(msg, m.keys.Details):
		if tx, ok := m.list.Selected(); ok {
			return m.openDetails(tx)
		}
		return m, nil
	case key.Matches(msg, m.keys.Duplicate):
		if tx, ok := m.list.Selected(); ok {
			return m, duplicateCmd(m.sess, tx)
		}
		return m, nil
	case key.Matches(msg, m.keys.Export):
		return m.startExport()
	case key.Matches(msg, m.keys.CycleType):
		next := nextTypeFilter(m.state.Filters.Type)
		m.sess.UpdateFilters(model.FilterUpdate{Type: &next})
		return m, nil
	case key.Matches(msg, m.keys.CycleSort):
		next := nextSortField(m.state.Filters.SortBy)
		m.sess.UpdateFilters(model.FilterUpdate{SortBy: &next})
		return m, nil
	case key.Matches(msg, m.keys.ToggleOrder):
		order := model.SortAsc
		if m.state.Filters.SortOrder == model.SortAsc {
			order = model.SortDesc
		}
		m.sess.UpdateFilters(model.FilterUpdate{SortOrder: &order})
		return m, nil
	case key.Matches(msg, m.keys.ClearFilters):
		m.sess.ClearFilters()
		return m, nil
	case key.Matches(msg, m.keys.PrevPage):
		m.sess.PrevPage()
		return m, nil
	case key.Matches(msg, m.keys.NextPage):
		m.sess.NextPage()
		return m, nil
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) handleDetailsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	tx := m.sess.SelectedTransaction()

	switch msg.String() {
	case "esc", "q", "enter":
		m.sess.CloseModal()
		m.syncSnapshot()
		return m, nil
	case "e":
		if tx != nil {
			return m.openEdit(*tx)
		}
	case "y":
		if tx != nil {
			m.sess.CloseModal()
			m.syncSnapshot()
			return m, duplicateCmd(m.sess, *tx)
		}
	}
	return m, nil
}

// updateActiveComponent forwards the message to whichever widget owns
// the screen.
func (m Model) updateActiveComponent(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch m.state.Modal.Kind {
	case session.ModalCreate, session.ModalEdit:
		m.form, cmd = m.form.Update(msg)
	case session.ModalDelete:
		m.confirm, cmd = m.confirm.Update(msg)
	case session.ModalNone:
		m.list, cmd = m.list.Update(msg)
	}
	return m, cmd
}

func (m Model) handleOpResult(msg opResultMsg) (tea.Model, tea.Cmd) {
	if msg.result.Success {
		m.sess.CloseModal()
		m.syncSnapshot()
		return m.withStatus(msg.action)
	}

	err := msg.result.Err
	// Validation errors keep the form open so the user can correct the
	// input; everything else drops back to the list.
	if m.state.Modal.Kind == session.ModalDelete || err.Kind != common.ErrorValidation {
		m.sess.CloseModal()
		m.syncSnapshot()
	}
	return m.withError(err.Message)
}

func (m Model) openEdit(tx model.Transaction) (tea.Model, tea.Cmd) {
	m.sess.OpenEdit(tx)
	m.form = components.NewEditForm(tx, m.categories, m.theme)
	m.syncSnapshot()
	return m, nil
}

func (m Model) openDetails(tx model.Transaction) (tea.Model, tea.Cmd) {
	m.sess.OpenDetails(tx)
	m.detail = components.NewTransactionDetail(tx, m.theme)
	m.syncSnapshot()
	return m, nil
}

// startExport downloads a report covering the active date range, or the
// current month when no range filter is set.
func (m Model) startExport() (tea.Model, tea.Cmd) {
	now := time.Now()
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	end := now
	if r := m.state.Filters.DateRange; r != nil {
		start, end = r.Start, r.End
	}

	params := api.ExportParams{
		StartDate:  start,
		EndDate:    end,
		Format:     api.ExportCSV,
		Type:       m.state.Filters.Type,
		CategoryID: m.state.Filters.CategoryID,
	}

	updated, cmd := m.withStatus("Exportando relatório...")
	return updated, tea.Batch(cmd, exportCmd(m.client, params, m.exportDir))
}

// syncSnapshot re-reads the session state and refreshes the widgets.
func (m *Model) syncSnapshot() {
	m.state = m.sess.State()
	m.list.SetPage(m.state.Transactions, m.state.Pagination)
	m.stats.SetStats(m.state.Stats)
}

func (m Model) withStatus(text string) (Model, tea.Cmd) {
	m.status = text
	m.statusErr = false
	return m, expireStatusCmd()
}

func (m Model) withError(text string) (Model, tea.Cmd) {
	m.status = text
	m.statusErr = true
	return m, expireStatusCmd()
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	m.quitting = true
	if m.cancelSub != nil {
		m.cancelSub()
	}
	m.sess.Close()
	return m, tea.Quit
}

func nextTypeFilter(t model.TypeFilter) model.TypeFilter {
	switch t {
	case model.FilterAll:
		return model.FilterIncome
	case model.FilterIncome:
		return model.FilterExpense
	default:
		return model.FilterAll
	}
}

func nextSortField(f model.SortField) model.SortField {
	switch f {
	case model.SortByDate:
		return model.SortByAmount
	case model.SortByAmount:
		return model.SortByDescription
	case model.SortByDescription:
		return model.SortByCreatedAt
	default:
		return model.SortByDate
	}
}
