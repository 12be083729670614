package cmd

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/iw2rmb/scribe/document"
	"github.com/iw2rmb/scribe/editor"
	"github.com/iw2rmb/scribe/store"
)

const saveTimeout = 5 * time.Second

var statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

type savedMsg struct {
	version uint64
	err     error
}

// app hosts the editor with a status line and persists the document.
type app struct {
	editor editor.Model
	help   help.Model
	keys   editor.KeyMap
	quit   key.Binding

	store  store.Store
	key    string
	logger *zap.Logger

	status   string
	quitting bool
}

func newApp(ed editor.Model, s store.Store, key string, logger *zap.Logger) app {
	return app{
		editor: ed,
		help:   help.New(),
		keys:   editor.DefaultKeyMap(),
		quit:   quitBinding(),
		store:  s,
		key:    key,
		logger: logger,
	}
}

func quitBinding() key.Binding {
	return key.NewBinding(key.WithKeys("esc", "ctrl+q"), key.WithHelp("esc", "save and quit"))
}

func (a app) Init() tea.Cmd { return a.editor.Init() }

func (a app) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.help.Width = msg.Width
		a.editor = a.editor.SetSize(msg.Width, max(msg.Height-1, 0))
		return a, nil
	case tea.KeyMsg:
		if key.Matches(msg, a.quit) {
			a.quitting = true
			return a, tea.Sequence(a.save(a.editor.State()), tea.Quit)
		}
	case editor.SaveRequestedMsg:
		a.status = "saving..."
		return a, a.save(msg.State)
	case savedMsg:
		if msg.err != nil {
			a.logger.Error("failed to save document", zap.String("key", a.key), zap.Error(msg.err))
			a.status = "save failed: " + msg.err.Error()
		} else {
			a.logger.Info("saved document", zap.String("key", a.key), zap.Uint64("version", msg.version))
			a.status = "saved"
		}
		return a, nil
	}

	var cmd tea.Cmd
	a.editor, cmd = a.editor.Update(msg)
	return a, cmd
}

func (a app) View() string {
	if a.quitting {
		return ""
	}
	status := a.help.ShortHelpView(append(a.keys.ShortHelp(), a.quit))
	if a.status != "" {
		status = a.status + "  " + status
	}
	return lipgloss.JoinVertical(lipgloss.Left, a.editor.View(), statusStyle.Render(status))
}

func (a app) save(s document.State) tea.Cmd {
	st, k := a.store, a.key
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), saveTimeout)
		defer cancel()
		return savedMsg{version: s.Version(), err: store.SaveState(ctx, st, k, s)}
	}
}
