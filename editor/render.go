package editor

import (
	"fmt"
	"strings"

	"github.com/iw2rmb/scribe/buffer"
	"github.com/iw2rmb/scribe/internal/grapheme"
)

func (m *Model) renderContent() string {
	if m.buf == nil {
		return ""
	}

	th := m.cfg.Theme
	cursor := m.buf.Cursor()
	sel, selOK := m.buf.Selection()
	rows := m.buf.LineCount()
	digits := len(fmt.Sprint(rows))

	out := make([]string, 0, rows)
	for row := 0; row < rows; row++ {
		var sb strings.Builder
		if m.cfg.ShowLineNums {
			numStyle := th.LineNumber
			if m.focused && row == cursor.Row {
				numStyle = th.CursorLineNumber
			}
			sb.WriteString(numStyle.Render(fmt.Sprintf("%*d", digits, row+1)))
			sb.WriteByte(' ')
		}
		sb.WriteString(m.renderLine(row, cursor, sel, selOK))
		out = append(out, sb.String())
	}
	return strings.Join(out, "\n")
}

func (m *Model) renderLine(row int, cursor buffer.Pos, sel buffer.Range, selOK bool) string {
	th := m.cfg.Theme
	clusters := m.buf.LineClusters(row)
	showCursor := m.focused && cursor.Row == row

	var sb strings.Builder
	cell := 0
	for col, c := range clusters {
		text, w := c, grapheme.Width(c)
		if c == "\t" {
			w = m.cfg.TabWidth - cell%m.cfg.TabWidth
			text = strings.Repeat(" ", w)
		}
		cell += w

		pos := buffer.Pos{Row: row, Col: col}
		switch {
		case showCursor && cursor.Col == col:
			sb.WriteString(th.Cursor.Render(text))
		case selOK && inRange(sel, pos):
			sb.WriteString(th.Selected.Render(text))
		default:
			sb.WriteString(th.Text.Render(text))
		}
	}
	if showCursor && cursor.Col >= len(clusters) {
		sb.WriteString(th.Cursor.Render(" "))
	}
	return sb.String()
}

func inRange(r buffer.Range, p buffer.Pos) bool {
	return buffer.ComparePos(r.Start, p) <= 0 && buffer.ComparePos(p, r.End) < 0
}
