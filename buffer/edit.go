package buffer

import (
	"strings"

	"github.com/iw2rmb/scribe/internal/grapheme"
)

// InsertText inserts text at the cursor, or replaces the active selection.
func (b *Buffer) InsertText(s string) {
	r, ok := b.Selection()
	if !ok {
		if s == "" {
			return
		}
		r = Range{Start: b.cursor, End: b.cursor}
	}
	b.editRange(r, s)
}

func (b *Buffer) InsertRune(r rune) { b.InsertText(string(r)) }

// InsertNewline inserts a line break at the cursor, or replaces the active
// selection.
func (b *Buffer) InsertNewline() { b.InsertText("\n") }

// DeleteBackward applies backspace semantics.
func (b *Buffer) DeleteBackward() {
	if r, ok := b.Selection(); ok {
		b.editRange(r, "")
		return
	}
	row, col := b.cursor.Row, b.cursor.Col
	switch {
	case col > 0:
		b.editRange(Range{Start: Pos{Row: row, Col: col - 1}, End: b.cursor}, "")
	case row > 0:
		// Join with the previous line.
		b.editRange(Range{Start: Pos{Row: row - 1, Col: len(b.lines[row-1])}, End: b.cursor}, "")
	}
}

// DeleteForward applies delete-key semantics.
func (b *Buffer) DeleteForward() {
	if r, ok := b.Selection(); ok {
		b.editRange(r, "")
		return
	}
	row, col := b.cursor.Row, b.cursor.Col
	switch {
	case col < len(b.lines[row]):
		b.editRange(Range{Start: b.cursor, End: Pos{Row: row, Col: col + 1}}, "")
	case row < len(b.lines)-1:
		// Join with the next line.
		b.editRange(Range{Start: b.cursor, End: Pos{Row: row + 1}}, "")
	}
}

// DeleteSelection deletes the active selection, if any.
func (b *Buffer) DeleteSelection() {
	if r, ok := b.Selection(); ok {
		b.editRange(r, "")
	}
}

// ReplaceAll replaces the whole document with text as a single transaction.
//
// Unlike the other edits it is never a no-op: replacing the document with
// identical text still commits a content change, so content listeners observe
// exactly one change per call.
func (b *Buffer) ReplaceAll(text string) Change {
	prev := b.snapshot()
	change := b.beginChange(ChangeSourceReplace)
	before := fullDocumentRange(b.lines)

	b.lines = splitLines(text)
	after := fullDocumentRange(b.lines)
	change.add(AppliedEdit{
		RangeBefore: before,
		RangeAfter:  after,
		InsertText:  text,
		DeletedText: prev.text,
	})
	b.commit(change, after.End, prev)
	c, _ := b.LastChange()
	return c
}

func (b *Buffer) editRange(r Range, text string) {
	prev := b.snapshot()
	change := b.beginChange(ChangeSourceInput)
	next, applied, changed := b.replaceRange(r, text)
	if !changed {
		return
	}
	change.add(applied)
	b.commit(change, next, prev)
}

func (b *Buffer) replaceRange(r Range, text string) (next Pos, applied AppliedEdit, changed bool) {
	r = NormalizeRange(ClampRange(r, len(b.lines), b.lineLen))
	deleted := textForLinesRange(b.lines, r)
	if deleted == text {
		return b.cursor, AppliedEdit{}, false
	}

	prefix := b.lines[r.Start.Row][:r.Start.Col]
	suffix := b.lines[r.End.Row][r.End.Col:]
	ins := splitLines(text)

	repl := make([][]string, 0, len(ins))
	for i, part := range ins {
		var line []string
		if i == 0 {
			line = append(line, prefix...)
		}
		line = append(line, part...)
		if i == len(ins)-1 {
			next = Pos{Row: r.Start.Row + i, Col: len(line)}
			line = append(line, suffix...)
		}
		repl = append(repl, line)
	}

	out := make([][]string, 0, len(b.lines)-(r.End.Row-r.Start.Row)+len(repl))
	out = append(out, b.lines[:r.Start.Row]...)
	out = append(out, repl...)
	out = append(out, b.lines[r.End.Row+1:]...)
	b.lines = out

	return next, AppliedEdit{
		RangeBefore: r,
		RangeAfter:  Range{Start: r.Start, End: next},
		InsertText:  text,
		DeletedText: deleted,
	}, true
}

func textForLinesRange(lines [][]string, r Range) string {
	r = NormalizeRange(r)
	if r.IsEmpty() {
		return ""
	}
	if r.Start.Row == r.End.Row {
		return grapheme.Join(lines[r.Start.Row][r.Start.Col:r.End.Col])
	}

	var sb strings.Builder
	for row := r.Start.Row; row <= r.End.Row; row++ {
		if row > r.Start.Row {
			sb.WriteByte('\n')
		}
		from, to := 0, len(lines[row])
		if row == r.Start.Row {
			from = r.Start.Col
		}
		if row == r.End.Row {
			to = r.End.Col
		}
		sb.WriteString(grapheme.Join(lines[row][from:to]))
	}
	return sb.String()
}
