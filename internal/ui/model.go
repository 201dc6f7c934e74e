package ui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"orderdeck/internal/api"
	"orderdeck/internal/browse"
	"orderdeck/internal/config"
	"orderdeck/internal/domain"
)

// mode is the current input mode of the list
type mode int

const (
	modeBrowse mode = iota
	modeSearch
	modeConfirmDelete
)

// Model is the order list UI. All state mutation happens in Update on the
// single Bubble Tea goroutine; fetches run as commands and come back as
// ticketed completions that the coordinator reconciles.
type Model struct {
	svc    api.Service
	coord  *browse.Coordinator
	router Router
	log    zerolog.Logger

	query         browse.Query
	timeout       time.Duration
	confirmDelete bool

	searchInput textinput.Model
	spin        spinner.Model
	keys        keyMap
	help        help.Model

	mode          mode
	cursor        int
	pendingDelete string // order id awaiting delete confirmation
	status        string
	width         int
	height        int
}

// NewModel creates the order list model.
func NewModel(svc api.Service, router Router, cfg *config.Config, log zerolog.Logger) *Model {
	ti := textinput.New()
	ti.Placeholder = "customer or order id"
	ti.Prompt = "Search: "
	ti.CharLimit = 64

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return &Model{
		svc:           svc,
		coord:         browse.NewCoordinator(svc, log),
		router:        router,
		log:           log,
		query:         browse.DefaultQuery().WithPageSize(cfg.UI.PageSize),
		timeout:       time.Duration(cfg.API.TimeoutSeconds) * time.Second,
		confirmDelete: cfg.UI.ConfirmDelete,
		searchInput:   ti,
		spin:          sp,
		keys:          defaultKeyMap(),
		help:          help.New(),
	}
}

// Query returns the current query state. Exposed for the view and for tests.
func (m *Model) Query() browse.Query { return m.query }

// Loading reports whether a fetch is outstanding.
func (m *Model) Loading() bool { return m.coord.Loading() }

// Result returns the last successfully fetched page, nil before the first.
func (m *Model) Result() *domain.Page { return m.coord.Result() }

// Init issues the initial fetch
func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.spin.Tick, m.fetchCurrent())
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case ordersLoadedMsg:
		if m.coord.Apply(msg.comp) {
			m.clampCursor()
		}
		return m, nil

	case orderDeletedMsg:
		if msg.err != nil {
			// Fail-soft: log it, leave the list exactly as it was.
			m.log.Error().Err(msg.err).Str("order", msg.id).Msg("delete failed")
			return m, m.setStatus("Delete failed, see log")
		}
		// Refresh the current page; the query is deliberately not reset.
		return m, tea.Batch(m.setStatus("Deleted "+msg.id), m.fetchCurrent())

	case orderCreatedMsg:
		if msg.err != nil {
			return m, m.setStatus("Create failed, see log")
		}
		return m, m.setStatus("Created draft order " + msg.order.ID)

	case orderViewedMsg:
		if msg.err != nil {
			m.log.Error().Err(msg.err).Str("order", msg.id).Msg("view order failed")
			return m, m.setStatus("Could not view order, see log")
		}
		return m, nil

	case clearStatusMsg:
		m.status = ""
		return m, nil

	case tea.KeyMsg:
		switch m.mode {
		case modeSearch:
			return m.updateSearch(msg)
		case modeConfirmDelete:
			return m.updateConfirmDelete(msg)
		default:
			return m.updateBrowse(msg)
		}
	}

	return m, nil
}

// updateSearch handles keys while the search input is focused. Every change
// to the input is a new search term: page resets to 1 and a fetch is issued
// immediately, so rapid typing produces overlapping requests on purpose.
func (m *Model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.mode = modeBrowse
		m.searchInput.Blur()
		return m, nil
	case "esc":
		// Esc abandons the search entirely and goes back to the plain list.
		m.mode = modeBrowse
		m.searchInput.Blur()
		m.searchInput.SetValue("")
		if m.query.Term != "" {
			m.query = m.query.WithTerm("")
			return m, m.fetchCurrent()
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	if value := m.searchInput.Value(); value != m.query.Term {
		m.query = m.query.WithTerm(value)
		return m, tea.Batch(cmd, m.fetchCurrent())
	}
	return m, cmd
}

// updateConfirmDelete handles the y/n confirmation prompt
func (m *Model) updateConfirmDelete(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "enter":
		id := m.pendingDelete
		m.pendingDelete = ""
		m.mode = modeBrowse
		return m, m.deleteCmd(id)
	case "n", "esc", "q":
		m.pendingDelete = ""
		m.mode = modeBrowse
		return m, nil
	}
	return m, nil
}

// updateBrowse handles keys in the normal browsing mode
func (m *Model) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.Search):
		m.mode = modeSearch
		m.searchInput.SetValue(m.query.Term)
		m.searchInput.CursorEnd()
		return m, m.searchInput.Focus()

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if result := m.coord.Result(); result != nil && m.cursor < len(result.Orders)-1 {
			m.cursor++
		}
		return m, nil

	case key.Matches(msg, m.keys.PrevPage):
		// The service is authoritative on range; only its own HasPrev flag
		// gates the move.
		if result := m.coord.Result(); result != nil && result.HasPrev {
			m.query = m.query.WithPage(m.query.Page - 1)
			return m, m.fetchCurrent()
		}
		return m, nil

	case key.Matches(msg, m.keys.NextPage):
		if result := m.coord.Result(); result != nil && result.HasNext {
			m.query = m.query.WithPage(m.query.Page + 1)
			return m, m.fetchCurrent()
		}
		return m, nil

	case key.Matches(msg, m.keys.PageSize):
		m.query = m.query.WithPageSize(browse.NextPageSize(m.query.PageSize))
		return m, m.fetchCurrent()

	case key.Matches(msg, m.keys.Refresh):
		return m, m.fetchCurrent()

	case key.Matches(msg, m.keys.Delete):
		order, ok := m.selectedOrder()
		if !ok {
			return m, nil
		}
		if m.confirmDelete {
			m.pendingDelete = order.ID
			m.mode = modeConfirmDelete
			return m, nil
		}
		return m, m.deleteCmd(order.ID)

	case key.Matches(msg, m.keys.View):
		if order, ok := m.selectedOrder(); ok {
			return m, m.router.ViewOrder(order.ID)
		}
		return m, nil

	case key.Matches(msg, m.keys.Create):
		return m, m.router.CreateOrder()
	}

	return m, nil
}

// fetchCurrent issues a fetch for the current query. The ticket is taken
// synchronously inside Update so issuance order matches event order; only
// the remote call itself runs in the command goroutine.
func (m *Model) fetchCurrent() tea.Cmd {
	ticket := m.coord.Begin(m.query)
	coord, timeout := m.coord, m.timeout
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		return ordersLoadedMsg{comp: coord.Fetch(ctx, ticket)}
	}
}

// deleteCmd issues a delete for the given order id
func (m *Model) deleteCmd(id string) tea.Cmd {
	svc, timeout := m.svc, m.timeout
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		return orderDeletedMsg{id: id, err: svc.Delete(ctx, id)}
	}
}

// setStatus shows a transient status line message
func (m *Model) setStatus(text string) tea.Cmd {
	m.status = text
	return tea.Tick(4*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}

// selectedOrder returns the order under the cursor
func (m *Model) selectedOrder() (domain.Order, bool) {
	result := m.coord.Result()
	if result == nil || m.cursor < 0 || m.cursor >= len(result.Orders) {
		return domain.Order{}, false
	}
	return result.Orders[m.cursor], true
}

// clampCursor keeps the cursor inside the freshly replaced result set
func (m *Model) clampCursor() {
	result := m.coord.Result()
	if result == nil || len(result.Orders) == 0 {
		m.cursor = 0
		return
	}
	if m.cursor >= len(result.Orders) {
		m.cursor = len(result.Orders) - 1
	}
}
