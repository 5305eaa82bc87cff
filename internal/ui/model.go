package ui

import (
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"burrow/internal/config"
	"burrow/internal/domain"
	"burrow/internal/eventbus"
	"burrow/internal/logging"
	"burrow/internal/ui/entries"
	"burrow/internal/ui/input"
	inputtypes "burrow/internal/ui/input/types"
	"burrow/internal/ui/logic"
	"burrow/internal/ui/state"
	"burrow/internal/ui/viewmodels"
	"burrow/internal/ui/views"
)

// Model is the coordinator: the only goroutine that touches session
// state is the bubbletea update loop running it. The enumeration feed
// reaches it exclusively through generation-tagged events.
type Model struct {
	bus    eventbus.EventBus
	config *config.Config
	state  *state.SessionState
	store  *entries.Store

	width  int
	height int

	navigator    *logic.Navigator
	renderer     *views.Renderer
	viewModel    *viewmodels.ViewModel
	inputHandler *input.Handler
	preview      *PreviewOps
	spinner      spinner.Model
}

// NewModel creates the UI model rooted at startDir
func NewModel(bus eventbus.EventBus, cfg *config.Config, startDir string) *Model {
	sessionState := state.NewSessionState(startDir)
	store := entries.NewStore()

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	m := &Model{
		bus:          bus,
		config:       cfg,
		state:        sessionState,
		store:        store,
		navigator:    logic.NewNavigator(),
		renderer:     views.NewRenderer(),
		inputHandler: input.New(),
		preview:      NewPreviewOps(),
		spinner:      sp,
	}
	m.viewModel = viewmodels.NewViewModel(sessionState, store, cfg)

	return m
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.preview.SetProgram(p)
}

// State exposes the session state for tests
func (m *Model) State() *state.SessionState {
	return m.state
}

// Store exposes the entry store for tests
func (m *Model) Store() *entries.Store {
	return m.store
}

// Init requests the first enumeration run
func (m *Model) Init() tea.Cmd {
	return tea.Batch(
		textinput.Blink,
		m.spinner.Tick,
		m.requestEnum(m.state.Generation, m.state.Dir),
	)
}

// Update is the single coordinator tick: one key event or one feed
// message per call, never blocking.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewModel.SetDimensions(msg.Width, msg.Height)
		m.state.ViewportHeight = m.viewModel.ListHeight()
		m.clampCursor()
		return m, nil

	case tea.KeyMsg:
		actions, cmd := m.inputHandler.HandleKey(msg, m)
		actionCmd := m.applyActions(actions)
		return m, tea.Batch(cmd, actionCmd)

	case EventMsg:
		return m, m.handleEvent(msg.Event)

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case previewDoneMsg:
		if msg.err != nil {
			logging.Logger.Error("preview failed", "path", msg.path, "err", msg.err)
			m.state.StatusMessage = "preview failed: " + filepath.Base(msg.path)
		}
		return m, nil
	}

	// Cursor blink and other text input chatter.
	return m, m.inputHandler.Update(msg)
}

// View renders the current session
func (m *Model) View() string {
	if m.width == 0 {
		return "loading..."
	}
	vs := m.viewModel.BuildViewState(m.inputHandler.PromptView(), m.spinner.View())
	return m.renderer.Render(vs)
}

// handleEvent applies one feed event. The generation check here is the
// race barrier: output tagged with a superseded generation is dropped,
// so a directory change can never be polluted by the previous listing.
func (m *Model) handleEvent(event eventbus.DomainEvent) tea.Cmd {
	switch e := event.(type) {
	case eventbus.EnumStartedEvent:
		if m.state.IsCurrent(e.Generation) {
			m.state.Enumerating = true
		}

	case eventbus.EntriesFoundBatchEvent:
		if !m.state.IsCurrent(e.Generation) {
			logging.Logger.Debug("dropping stale batch",
				"generation", e.Generation, "current", m.state.Generation,
				"lines", len(e.Paths))
			return nil
		}
		for _, path := range e.Paths {
			m.store.Append(path)
		}
		m.clampCursor()

	case eventbus.EnumCompletedEvent:
		if m.state.IsCurrent(e.Generation) {
			m.state.Enumerating = false
			logging.Logger.Info("enumeration complete",
				"dir", m.state.Dir, "found", e.Found)
		}

	case eventbus.ErrorEvent:
		m.state.StatusMessage = e.Message
		logging.Logger.Error(e.Message, "err", e.Err)
	}
	return nil
}

// applyActions executes the commands the input layer produced
func (m *Model) applyActions(actions []inputtypes.Action) tea.Cmd {
	var cmds []tea.Cmd

	for _, action := range actions {
		switch a := action.(type) {
		case inputtypes.UpdateQueryAction:
			if a.Text != m.state.Query {
				m.state.Query = a.Text
				m.store.RescoreAll(a.Text)
				m.state.Cursor = 0
				m.state.ViewportOffset = 0
			}

		case inputtypes.NavigateAction:
			m.moveCursor(a.Direction)

		case inputtypes.ConfirmAction:
			cmds = append(cmds, m.confirm(a.DirOnly))

		case inputtypes.AscendAction:
			if parent, ok := logic.ResolveAscend(m.state.Dir); ok {
				cmds = append(cmds, m.changeDir(parent))
			}

		case inputtypes.RefreshAction:
			cmds = append(cmds, m.refresh())

		case inputtypes.ChangeModeAction:
			m.state.ShowHelp = a.Mode == inputtypes.ModeHelp

		case inputtypes.QuitAction:
			logging.Logger.Info("quitting", "forced", a.Force)
			cmds = append(cmds, tea.Quit)
		}
	}

	return tea.Batch(cmds...)
}

// confirm resolves the selected row, or with no rows the raw query, and
// descends or previews. Resolution failures are deliberate no-ops.
func (m *Model) confirm(dirOnly bool) tea.Cmd {
	if sel, ok := m.selected(); ok {
		path := strings.TrimRight(sel.Path, "/\\")
		if resolved, err := logic.ResolveDescend(m.state.Dir, path); err == nil {
			return m.changeDir(resolved)
		}
		if !dirOnly && m.config.UI.Preview {
			full := filepath.Join(m.state.Dir, path)
			return func() tea.Msg {
				return previewDoneMsg{path: full, err: m.preview.Show(full)}
			}
		}
		return nil
	}

	// No visible rows: the query itself may name a subpath. An empty
	// query resolves to the current directory, which stays a no-op.
	if m.state.Query == "" {
		return nil
	}
	if resolved, err := logic.ResolveDescend(m.state.Dir, m.state.Query); err == nil {
		return m.changeDir(resolved)
	} else {
		logging.Logger.Debug("confirm no-op", "query", m.state.Query, "err", err)
	}
	return nil
}

// selected returns the entry under the cursor
func (m *Model) selected() (domain.Entry, bool) {
	snap := m.store.Snapshot(m.state.Cursor + 1)
	if m.state.Cursor < len(snap) {
		return snap[m.state.Cursor], true
	}
	return domain.Entry{}, false
}

// changeDir is the directory-change transition: bump the generation,
// drop the listing and the query, start a fresh enumeration run.
func (m *Model) changeDir(dir string) tea.Cmd {
	generation := m.state.ChangeDir(dir)
	m.store.Clear()
	m.inputHandler.ResetQuery()
	logging.Logger.Info("directory change", "dir", dir, "generation", generation)
	return m.requestEnum(generation, dir)
}

// refresh relists the current directory under a new generation but
// keeps the query, so matches reapply as fresh lines arrive.
func (m *Model) refresh() tea.Cmd {
	query := m.state.Query
	generation := m.state.ChangeDir(m.state.Dir)
	m.store.Clear()
	m.state.Query = query
	m.store.RescoreAll(query)
	return m.requestEnum(generation, m.state.Dir)
}

// requestEnum publishes the enumeration request off the update loop so
// the coordinator never blocks on the bus.
func (m *Model) requestEnum(generation int, dir string) tea.Cmd {
	return func() tea.Msg {
		m.bus.Publish(eventbus.EnumRequestedEvent{Generation: generation, Dir: dir})
		return nil
	}
}

func (m *Model) moveCursor(direction string) {
	total := m.store.MatchedLen()
	page := m.state.ViewportHeight

	switch direction {
	case "up":
		m.state.Cursor = m.navigator.Move(m.state.Cursor, -1, total)
	case "down":
		m.state.Cursor = m.navigator.Move(m.state.Cursor, 1, total)
	case "pageup":
		m.state.Cursor = m.navigator.Move(m.state.Cursor, -page, total)
	case "pagedown":
		m.state.Cursor = m.navigator.Move(m.state.Cursor, page, total)
	case "home":
		m.state.Cursor = 0
	case "end":
		m.state.Cursor = m.navigator.Clamp(total-1, total)
	}

	m.state.ViewportOffset = m.navigator.ScrollTo(
		m.state.Cursor, m.state.ViewportOffset, m.state.ViewportHeight)
}

func (m *Model) clampCursor() {
	m.state.Cursor = m.navigator.Clamp(m.state.Cursor, m.store.MatchedLen())
	m.state.ViewportOffset = m.navigator.ScrollTo(
		m.state.Cursor, m.state.ViewportOffset, m.state.ViewportHeight)
}

// Context implementation for the input layer

// QueryEmpty reports whether the query prompt is empty
func (m *Model) QueryEmpty() bool { return m.state.Query == "" }
