package editor

import (
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/scribe/buffer"
)

// Model is a Bubble Tea component that renders and edits a buffer.
type Model struct {
	cfg Config
	buf *buffer.Buffer

	focused bool

	viewport viewport.Model

	lastBufVersion uint64
}

func New(cfg Config) Model {
	cfg = cfg.withDefaults()
	m := Model{
		cfg:      cfg,
		buf:      buffer.New(cfg.Text, buffer.Options{HistoryLimit: cfg.HistoryLimit}),
		focused:  true,
		viewport: viewport.New(0, 0),
	}
	m.lastBufVersion = m.buf.Version()
	m.rebuildContent()
	return m
}

func (m Model) Buffer() *buffer.Buffer { return m.buf }

// Text returns the current document text.
func (m Model) Text() string {
	if m.buf == nil {
		return ""
	}
	return m.buf.Text()
}

// ReplaceText replaces the whole document in one transaction and reports it
// through OnChange exactly once, like any interactive edit.
func (m Model) ReplaceText(s string) {
	if m.buf == nil {
		return
	}
	mark := markOf(m.buf)
	m.buf.ReplaceAll(s)
	m.emitSince(mark)
}

// SetOnChange swaps the change listener. Hosts use it to bind a listener
// after construction.
func (m Model) SetOnChange(fn func(ChangeEvent)) Model {
	m.cfg.OnChange = fn
	return m
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) SetSize(width, height int) Model {
	m.viewport.Width = max(width, 0)
	m.viewport.Height = max(height, 0)
	m.rebuildContent()
	m.followCursor()
	return m
}

// Focus makes the widget accept keys and draw its cursor.
func (m Model) Focus() Model {
	if !m.focused {
		m.focused = true
		m.rebuildContent()
		m.followCursor()
	}
	return m
}

// Blur stops key handling and hides the cursor.
func (m Model) Blur() Model {
	if m.focused {
		m.focused = false
		m.rebuildContent()
	}
	return m
}

func (m Model) Focused() bool { return m.focused }

// Frame returns the theme frame matching the focus state.
func (m Model) Frame() lipgloss.Style {
	if m.focused {
		return m.cfg.Theme.FocusedFrame
	}
	return m.cfg.Theme.Frame
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.SetSize(msg.Width, msg.Height), nil
	case tea.KeyMsg:
		m = m.updateKey(msg)
		if m.syncFromBuffer() {
			m.followCursor()
		}
		return m, nil
	case tea.MouseMsg:
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		m.syncFromBuffer()
		return m, cmd
	default:
		// Hosts may mutate the buffer between messages.
		if m.syncFromBuffer() {
			m.followCursor()
		}
		return m, nil
	}
}

func (m Model) View() string {
	m.syncFromBuffer()
	return m.viewport.View()
}

func (m *Model) syncFromBuffer() bool {
	if m.buf == nil || m.buf.Version() == m.lastBufVersion {
		return false
	}
	m.lastBufVersion = m.buf.Version()
	m.rebuildContent()
	return true
}

func (m *Model) rebuildContent() {
	m.viewport.SetContent(m.renderContent())
}

func (m *Model) followCursor() {
	if m.buf == nil {
		return
	}
	row := m.buf.Cursor().Row
	h := m.viewport.Height - m.viewport.Style.GetVerticalFrameSize()
	if h <= 0 {
		return
	}
	y := m.viewport.YOffset
	switch {
	case row < y:
		m.viewport.SetYOffset(row)
	case row >= y+h:
		m.viewport.SetYOffset(row - h + 1)
	}
}
