package editor

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/iw2rmb/scribe/autoformat"
	"github.com/iw2rmb/scribe/command"
	"github.com/iw2rmb/scribe/document"
	graphemeutil "github.com/iw2rmb/scribe/internal/grapheme"
)

func (m Model) updateKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if !m.focused {
		return m, nil
	}

	// Paste events should always insert literal text and never trigger shortcuts.
	if msg.Type == tea.KeyRunes && msg.Paste && len(msg.Runes) > 0 {
		if !m.cfg.ReadOnly {
			m.insertLiteral(string(msg.Runes))
		}
		return m, nil
	}

	km := m.cfg.KeyMap
	switch {
	case key.Matches(msg, km.Left):
		m.move(command.MoveGrapheme, command.DirLeft, false)
	case key.Matches(msg, km.Right):
		m.move(command.MoveGrapheme, command.DirRight, false)
	case key.Matches(msg, km.Up):
		m.move(command.MoveBlock, command.DirUp, false)
	case key.Matches(msg, km.Down):
		m.move(command.MoveBlock, command.DirDown, false)

	case key.Matches(msg, km.ShiftLeft):
		m.move(command.MoveGrapheme, command.DirLeft, true)
	case key.Matches(msg, km.ShiftRight):
		m.move(command.MoveGrapheme, command.DirRight, true)
	case key.Matches(msg, km.ShiftUp):
		m.move(command.MoveBlock, command.DirUp, true)
	case key.Matches(msg, km.ShiftDown):
		m.move(command.MoveBlock, command.DirDown, true)

	case key.Matches(msg, km.WordLeft):
		m.move(command.MoveWord, command.DirLeft, false)
	case key.Matches(msg, km.WordRight):
		m.move(command.MoveWord, command.DirRight, false)

	case key.Matches(msg, km.Home):
		m.move(command.MoveBlock, command.DirHome, false)
	case key.Matches(msg, km.End):
		m.move(command.MoveBlock, command.DirEnd, false)
	case key.Matches(msg, km.DocStart):
		m.move(command.MoveDoc, command.DirHome, false)
	case key.Matches(msg, km.DocEnd):
		m.move(command.MoveDoc, command.DirEnd, false)

	case key.Matches(msg, km.Backspace):
		m.keyCommand(command.Backspace)
	case key.Matches(msg, km.Delete):
		m.keyCommand(command.Delete)
	case key.Matches(msg, km.Enter):
		m.keyCommand(command.SplitBlock)

	case key.Matches(msg, km.Bold):
		m.keyCommand(command.Bold)
	case key.Matches(msg, km.Italic):
		m.keyCommand(command.Italic)
	case key.Matches(msg, km.Underline):
		m.keyCommand(command.Underline)
	case key.Matches(msg, km.Strikethrough):
		m.keyCommand(command.Strikethrough)
	case key.Matches(msg, km.Code):
		m.keyCommand(command.Code)

	case key.Matches(msg, km.Undo):
		m.keyCommand(command.Undo)
	case key.Matches(msg, km.Redo):
		m.keyCommand(command.Redo)

	case key.Matches(msg, km.Copy):
		m.copySelection()
	case key.Matches(msg, km.Cut):
		if !m.cfg.ReadOnly {
			m.cutSelection()
		} else {
			m.copySelection()
		}
	case key.Matches(msg, km.Paste):
		if !m.cfg.ReadOnly {
			m.pasteClipboard()
		}

	case key.Matches(msg, km.Save):
		return m, m.save()

	default:
		if m.cfg.ReadOnly {
			return m, nil
		}
		switch {
		case msg.Type == tea.KeyTab:
			m.state = m.commands.InsertText(m.state, "\t")
		case msg.Type == tea.KeySpace:
			m.typeText(" ")
		case msg.Type == tea.KeyRunes && len(msg.Runes) > 0 && !msg.Alt:
			m.typeText(string(msg.Runes))
		}
	}

	return m, nil
}

func (m *Model) move(unit command.MoveUnit, dir command.MoveDir, extend bool) {
	m.state = command.MoveCaret(m.state, command.Move{Unit: unit, Dir: dir, Extend: extend})
}

func (m *Model) keyCommand(cmd command.Command) {
	if m.cfg.ReadOnly {
		return
	}
	next, res := m.commands.HandleKeyCommand(m.state, cmd)
	if res == document.Handled {
		m.state = next
	}
}

// typeText inserts typed text, giving every space to the autoformat
// detector first. Terminals may batch several typed runes into one message,
// so a shortcut marker and its trigger can arrive together.
func (m *Model) typeText(s string) {
	for s != "" {
		i := strings.Index(s, autoformat.Trigger)
		if i < 0 {
			m.state = m.commands.InsertText(m.state, s)
			return
		}
		if i > 0 {
			m.state = m.commands.InsertText(m.state, s[:i])
		}
		next, res := m.detector.HandleBeforeInput(m.state, autoformat.Trigger)
		if res == document.Handled {
			m.state = next
		} else {
			m.state = m.commands.InsertText(m.state, autoformat.Trigger)
		}
		s = s[i+len(autoformat.Trigger):]
	}
}

// insertLiteral inserts text without shortcuts. Newlines split blocks.
func (m *Model) insertLiteral(s string) {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	for i, line := range strings.Split(s, "\n") {
		if i > 0 {
			m.keyCommand(command.SplitBlock)
		}
		m.state = m.commands.InsertText(m.state, line)
	}
}

func (m Model) save() tea.Cmd {
	if m.cfg.OnSave != nil {
		return m.cfg.OnSave(m.state)
	}
	s := m.state
	return func() tea.Msg { return SaveRequestedMsg{State: s} }
}

func (m Model) copySelection() {
	if m.cfg.Clipboard == nil {
		return
	}
	s := selectedText(m.state.Content(), m.state.Selection())
	if s == "" {
		return
	}
	if err := m.cfg.Clipboard.WriteText(s); err != nil {
		m.logger.Debug("editor: clipboard write failed", zap.Error(err))
	}
}

func (m *Model) cutSelection() {
	if m.cfg.Clipboard == nil || m.state.Selection().Collapsed() {
		return
	}
	m.copySelection()
	m.keyCommand(command.Delete)
}

func (m *Model) pasteClipboard() {
	if m.cfg.Clipboard == nil {
		return
	}
	s, err := m.cfg.Clipboard.ReadText()
	if err != nil {
		m.logger.Debug("editor: clipboard read failed", zap.Error(err))
		return
	}
	if s == "" {
		return
	}
	m.insertLiteral(s)
}

// selectedText returns the plain text under sel, joining blocks with '\n'.
func selectedText(c *document.Content, sel document.Selection) string {
	if sel.Collapsed() {
		return ""
	}
	start, end := sel.Start(), sel.End()
	si, ei := c.IndexOf(start.Key), c.IndexOf(end.Key)
	if si < 0 || ei < 0 {
		return ""
	}

	var sb strings.Builder
	for i := si; i <= ei; i++ {
		b, _ := c.BlockAt(i)
		from, to := 0, b.Len()
		if i == si {
			from = start.Offset
		}
		if i == ei {
			to = end.Offset
		}
		if i > si {
			sb.WriteByte('\n')
		}
		sb.WriteString(graphemeutil.Slice(b.Text, from, to))
	}
	return sb.String()
}
