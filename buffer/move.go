package buffer

import "github.com/iw2rmb/scribe/internal/grapheme"

type MoveUnit int

const (
	MoveGrapheme MoveUnit = iota
	MoveWord
	MoveLine
	MoveDoc
)

type MoveDir int

const (
	DirLeft MoveDir = iota
	DirRight
	DirUp
	DirDown
	DirHome // line start (doc start for MoveDoc)
	DirEnd  // line end (doc end for MoveDoc)
)

type Move struct {
	Unit   MoveUnit
	Dir    MoveDir
	Extend bool // extend the selection instead of clearing it
}

// Move relocates the cursor. It never changes content, so it only bumps
// Version.
func (b *Buffer) Move(m Move) {
	prevCursor, prevSel := b.cursor, b.sel
	next := b.clampPos(b.moveCursor(prevCursor, m))

	nextSel := selectionState{}
	if m.Extend {
		anchor := prevCursor
		if prevSel.active && prevSel.anchor != prevSel.end {
			anchor = prevSel.anchor
		}
		if anchor != next {
			nextSel = selectionState{active: true, anchor: anchor, end: next}
		}
	}

	if prevCursor == next && prevSel == nextSel {
		return
	}
	b.cursor = next
	b.sel = nextSel
	b.version++
}

func (b *Buffer) moveCursor(p Pos, m Move) Pos {
	last := len(b.lines) - 1
	line := b.lines[p.Row]

	if m.Unit == MoveDoc {
		switch m.Dir {
		case DirHome, DirUp:
			return Pos{}
		case DirEnd, DirDown:
			return b.endPos()
		}
		return p
	}

	switch m.Dir {
	case DirHome:
		return Pos{Row: p.Row}
	case DirEnd:
		return Pos{Row: p.Row, Col: len(line)}
	case DirUp:
		if p.Row == 0 {
			return p
		}
		return Pos{Row: p.Row - 1, Col: min(p.Col, len(b.lines[p.Row-1]))}
	case DirDown:
		if p.Row == last {
			return p
		}
		return Pos{Row: p.Row + 1, Col: min(p.Col, len(b.lines[p.Row+1]))}
	}

	switch m.Unit {
	case MoveWord:
		if m.Dir == DirLeft {
			return Pos{Row: p.Row, Col: prevWordBoundary(line, p.Col)}
		}
		return Pos{Row: p.Row, Col: nextWordBoundary(line, p.Col)}
	case MoveGrapheme:
		if m.Dir == DirLeft {
			switch {
			case p.Col > 0:
				return Pos{Row: p.Row, Col: p.Col - 1}
			case p.Row > 0:
				return Pos{Row: p.Row - 1, Col: len(b.lines[p.Row-1])}
			}
			return p
		}
		switch {
		case p.Col < len(line):
			return Pos{Row: p.Row, Col: p.Col + 1}
		case p.Row < last:
			return Pos{Row: p.Row + 1}
		}
	}
	return p
}

// Word moves skip whitespace then non-whitespace within one logical line.
func prevWordBoundary(line []string, col int) int {
	i := clampInt(col, 0, len(line))
	for i > 0 && grapheme.IsSpace(line[i-1]) {
		i--
	}
	for i > 0 && !grapheme.IsSpace(line[i-1]) {
		i--
	}
	return i
}

func nextWordBoundary(line []string, col int) int {
	i := clampInt(col, 0, len(line))
	for i < len(line) && grapheme.IsSpace(line[i]) {
		i++
	}
	for i < len(line) && !grapheme.IsSpace(line[i]) {
		i++
	}
	return i
}
