package buffer

type bufferSnapshot struct {
	text   string
	cursor Pos
	sel    selectionState
}

type historyState struct {
	undo []bufferSnapshot
	redo []bufferSnapshot
}

func (b *Buffer) snapshot() bufferSnapshot {
	return bufferSnapshot{text: b.Text(), cursor: b.cursor, sel: b.sel}
}

func (b *Buffer) restore(s bufferSnapshot) {
	b.lines = splitLines(s.text)
	b.cursor = b.clampPos(s.cursor)
	b.sel = selectionState{}
	if !s.sel.active {
		return
	}
	anchor, end := b.clampPos(s.sel.anchor), b.clampPos(s.sel.end)
	if anchor != end {
		b.sel = selectionState{active: true, anchor: anchor, end: end}
	}
}

func pushBounded(stack []bufferSnapshot, s bufferSnapshot, limit int) []bufferSnapshot {
	stack = append(stack, s)
	if len(stack) > limit {
		stack = stack[len(stack)-limit:]
	}
	return stack
}

func (b *Buffer) recordUndo(prev bufferSnapshot) {
	if b.opt.HistoryLimit <= 0 {
		return
	}
	b.hist.undo = pushBounded(b.hist.undo, prev, b.opt.HistoryLimit)
	b.hist.redo = nil
}

func (b *Buffer) CanUndo() bool { return len(b.hist.undo) > 0 }

func (b *Buffer) CanRedo() bool { return len(b.hist.redo) > 0 }

func (b *Buffer) Undo() bool {
	if len(b.hist.undo) == 0 {
		return false
	}
	i := len(b.hist.undo) - 1
	prev := b.hist.undo[i]
	b.hist.undo = b.hist.undo[:i]
	b.hist.redo = append(b.hist.redo, b.snapshot())
	b.travel(prev)
	return true
}

func (b *Buffer) Redo() bool {
	if len(b.hist.redo) == 0 {
		return false
	}
	i := len(b.hist.redo) - 1
	next := b.hist.redo[i]
	b.hist.redo = b.hist.redo[:i]
	if b.opt.HistoryLimit > 0 {
		b.hist.undo = pushBounded(b.hist.undo, b.snapshot(), b.opt.HistoryLimit)
	}
	b.travel(next)
	return true
}

func (b *Buffer) travel(to bufferSnapshot) {
	change := b.beginChange(ChangeSourceHistory)
	beforeText := b.Text()
	beforeRange := fullDocumentRange(b.lines)

	b.restore(to)
	b.version++
	if beforeText == to.text {
		return
	}
	b.textVersion++
	change.add(AppliedEdit{
		RangeBefore: beforeRange,
		RangeAfter:  fullDocumentRange(b.lines),
		InsertText:  to.text,
		DeletedText: beforeText,
	})
	b.lastChange = Change{
		Source:        change.source,
		VersionBefore: change.versionBefore,
		VersionAfter:  b.version,
		CursorBefore:  change.cursorBefore,
		CursorAfter:   b.cursor,
		AppliedEdits:  change.appliedEdits,
	}
	b.hasLastChange = true
}
