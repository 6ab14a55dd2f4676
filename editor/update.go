package editor

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/scribe/buffer"
)

func (m Model) updateKey(msg tea.KeyMsg) Model {
	if !m.focused || m.buf == nil {
		return m
	}
	mark := markOf(m.buf)
	m.applyKey(msg)
	m.emitSince(mark)
	return m
}

func (m Model) applyKey(msg tea.KeyMsg) {
	b := m.buf
	ro := m.cfg.ReadOnly

	// Paste events always insert literal text and never trigger shortcuts.
	if msg.Type == tea.KeyRunes && msg.Paste && len(msg.Runes) > 0 {
		if !ro {
			b.InsertText(normalizeNewlines(string(msg.Runes)))
		}
		return
	}

	act := m.cfg.KeyMap.Lookup(msg)
	if mv, ok := motions[act]; ok {
		b.Move(mv)
		return
	}
	if ro && (act.Mutates() || act == ActionNone) {
		return
	}

	switch act {
	case ActionCopy:
		m.copySelection()
	case ActionDeleteBackward:
		b.DeleteBackward()
	case ActionDeleteForward:
		b.DeleteForward()
	case ActionNewline:
		b.InsertNewline()
	case ActionUndo:
		_ = b.Undo()
	case ActionRedo:
		_ = b.Redo()
	case ActionCut:
		if m.copySelection() {
			b.DeleteSelection()
		}
	case ActionPaste:
		m.pasteClipboard()
	case ActionNone:
		switch {
		case msg.Type == tea.KeyTab:
			b.InsertRune('\t')
		case msg.Type == tea.KeySpace:
			b.InsertRune(' ')
		case msg.Type == tea.KeyRunes && len(msg.Runes) > 0 && !msg.Alt:
			b.InsertText(string(msg.Runes))
		}
	}
}

func (m Model) copySelection() bool {
	if m.cfg.Clipboard == nil {
		return false
	}
	r, ok := m.buf.Selection()
	if !ok {
		return false
	}
	return m.cfg.Clipboard.WriteText(textInRange(m.buf, r)) == nil
}

func (m Model) pasteClipboard() {
	if m.cfg.Clipboard == nil {
		return
	}
	s, err := m.cfg.Clipboard.ReadText()
	if err != nil || s == "" {
		return
	}
	m.buf.InsertText(normalizeNewlines(s))
}

func normalizeNewlines(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}

func textInRange(b *buffer.Buffer, r buffer.Range) string {
	r = buffer.NormalizeRange(r)
	var sb strings.Builder
	for row := r.Start.Row; row <= r.End.Row; row++ {
		if row > r.Start.Row {
			sb.WriteByte('\n')
		}
		line := b.LineClusters(row)
		from, to := 0, len(line)
		if row == r.Start.Row {
			from = min(r.Start.Col, to)
		}
		if row == r.End.Row {
			to = min(r.End.Col, to)
		}
		if from < to {
			sb.WriteString(strings.Join(line[from:to], ""))
		}
	}
	return sb.String()
}
