package editor

import (
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/iw2rmb/scribe/autoformat"
	"github.com/iw2rmb/scribe/command"
	"github.com/iw2rmb/scribe/document"
)

// Model is a Bubble Tea component that renders and edits a document.State.
//
// The state is immutable; every edit replaces it. Hosts read it with State
// and may swap it wholesale with SetState.
type Model struct {
	cfg   Config
	state document.State

	detector *autoformat.Detector
	commands *command.Handler
	logger   *zap.Logger

	focused bool

	viewport viewport.Model

	// Layout of the last render: one entry per visual row, and the row
	// holding the caret.
	rows      []rowRef
	cursorRow int

	mouseAnchor   document.Point
	mouseDragging bool

	lastVersion uint64
}

func New(cfg Config) Model {
	if len(cfg.KeyMap.Enter.Keys()) == 0 {
		cfg.KeyMap = DefaultKeyMap()
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	opt := document.Options{HistoryLimit: cfg.HistoryLimit, KeyFunc: cfg.KeyFunc}

	m := Model{
		cfg:      cfg,
		state:    document.NewState(cfg.Content, opt),
		detector: autoformat.New(autoformat.Config{Rules: cfg.Rules, Logger: cfg.Logger}),
		commands: command.NewHandler(cfg.Logger),
		logger:   cfg.Logger,
		focused:  true,
		viewport: viewport.New(0, 0),
	}
	m.lastVersion = m.state.Version()
	m.rebuildContent()
	return m
}

// State returns the current document state.
func (m Model) State() document.State { return m.state }

// SetState replaces the document state, for example after a restore.
// OnChange is not called.
func (m Model) SetState(s document.State) Model {
	m.state = s
	m.lastVersion = s.Version()
	m.rebuildContent()
	m.followCursor()
	return m
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) SetSize(width, height int) Model {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	m.viewport.Width = width
	m.viewport.Height = height

	m.rebuildContent()
	m.followCursor()
	return m
}

func (m Model) Focus() Model {
	if !m.focused {
		m.focused = true
		m.rebuildContent()
		m.followCursor()
	}
	return m
}

func (m Model) Blur() Model {
	if m.focused {
		m.focused = false
		m.rebuildContent()
	}
	return m
}

func (m Model) Focused() bool { return m.focused }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.SetSize(msg.Width, msg.Height), nil
	case tea.MouseMsg:
		var cmd tea.Cmd
		m, cmd = m.updateMouse(msg)
		// Don't follow the cursor here; allow manual scrolling via mouse wheel.
		m.rebuildContent()
		m.notifyChange()
		return m, cmd
	case tea.KeyMsg:
		var cmd tea.Cmd
		m, cmd = m.updateKey(msg)
		m.afterUpdate()
		return m, cmd
	default:
		return m, nil
	}
}

func (m Model) View() string { return m.viewport.View() }

// afterUpdate re-renders and notifies the host when the state version moved.
func (m *Model) afterUpdate() {
	m.rebuildContent()
	if m.notifyChange() {
		m.followCursor()
	}
}

func (m *Model) notifyChange() bool {
	if m.state.Version() == m.lastVersion {
		return false
	}
	m.lastVersion = m.state.Version()
	if m.cfg.OnChange != nil {
		m.cfg.OnChange(buildChangeEvent(m.state))
	}
	return true
}

func (m *Model) rebuildContent() {
	m.viewport.SetContent(m.renderContent())
}

func (m *Model) followCursor() {
	h := m.viewport.Height - m.viewport.Style.GetVerticalFrameSize()
	if h <= 0 {
		return
	}

	row := m.cursorRow
	y := m.viewport.YOffset
	if row < y {
		m.viewport.SetYOffset(row)
		return
	}
	if row >= y+h {
		m.viewport.SetYOffset(row - h + 1)
	}
}
