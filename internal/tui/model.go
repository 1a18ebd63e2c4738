package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"postdeck/internal/domain"
	"postdeck/internal/errors"
	"postdeck/internal/feed"
	"postdeck/internal/logging"
	"postdeck/internal/paging"
	"postdeck/internal/store"
)

const (
	defaultViewportWidth  = 80
	defaultViewportHeight = 24
	statusClearDuration   = 5 * time.Second
)

// Model represents the TUI model for bubbletea.
type Model struct {
	store  *store.Store
	loader *feed.Loader

	// loadCtx lets teardown abort an in-flight load; a result that arrives
	// after quitting is discarded.
	loadCtx    context.Context
	cancelLoad context.CancelFunc
	loading    bool
	quitting   bool

	// selected is the card index within the visible page.
	selected int

	spinner spinner.Model
	help    help.Model
	keys    keyMap

	width  int
	height int

	errorHandler      *errors.TUIHandler
	statusMessage     string
	statusMessageType errors.MessageType
	hasStatusMessage  bool
}

// NewModel creates a new TUI model over the given store and loader.
func NewModel(st *store.Store, loader *feed.Loader) *Model {
	ctx, cancel := context.WithCancel(context.Background())

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = spinnerStyle

	m := &Model{
		store:      st,
		loader:     loader,
		loadCtx:    ctx,
		cancelLoad: cancel,
		loading:    true,
		spinner:    sp,
		help:       help.New(),
		keys:       defaultKeyMap(),
	}

	// The handler callback drives the status line.
	m.errorHandler = errors.NewTUIHandler(func(msg errors.Message) {
		m.statusMessage = msg.Text
		m.statusMessageType = msg.Type
		m.hasStatusMessage = msg.Text != ""
	})

	// Page transitions are observable in the log file.
	st.Subscribe(func(page paging.Page[domain.Post]) {
		logging.Debug("page view updated",
			"page", page.Number,
			"total_pages", page.TotalPages,
			"items", page.TotalItems,
		)
	})

	return m
}

// Init starts the spinner and kicks off the initial load.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, loadPostsCmd(m.loadCtx, m.loader))
}

// Update handles messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case postsLoadedMsg:
		return m.handlePostsLoaded(msg)
	case loadCanceledMsg:
		return m, nil
	case statusClearMsg:
		m.statusMessage = ""
		m.hasStatusMessage = false
		return m, nil
	}
	return m, nil
}

// handlePostsLoaded applies the fetched collection, unless the session is
// already tearing down.
func (m *Model) handlePostsLoaded(msg postsLoadedMsg) (tea.Model, tea.Cmd) {
	if m.quitting {
		return m, nil
	}
	m.loading = false
	m.store.Load(msg.posts)
	m.selected = 0
	return m, nil
}

// clampSelection keeps the card selection within the visible page after the
// slice shrank or the page changed.
func (m *Model) clampSelection() {
	page := m.store.View()
	if m.selected >= len(page.Items) {
		m.selected = len(page.Items) - 1
	}
	if m.selected < 0 {
		m.selected = 0
	}
}
