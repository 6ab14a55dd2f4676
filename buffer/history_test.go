package buffer

import "testing"

func TestBuffer_UndoRedo_BasicTyping(t *testing.T) {
	b := New("", Options{})
	if b.CanUndo() || b.CanRedo() {
		t.Fatalf("fresh buffer must have empty history")
	}

	b.InsertText("a")
	if !b.CanUndo() {
		t.Fatalf("expected CanUndo=true")
	}

	tv := b.TextVersion()
	if ok := b.Undo(); !ok {
		t.Fatalf("expected Undo=true")
	}
	if got := b.Text(); got != "" {
		t.Fatalf("text=%q, want empty", got)
	}
	if got := b.Cursor(); got != (Pos{}) {
		t.Fatalf("cursor=%v, want (0,0)", got)
	}
	if b.TextVersion() != tv+1 {
		t.Fatalf("undo must bump text version")
	}
	c, ok := b.LastChange()
	if !ok || c.Source != ChangeSourceHistory {
		t.Fatalf("last change=%+v ok=%v, want history source", c, ok)
	}

	if ok := b.Redo(); !ok {
		t.Fatalf("expected Redo=true")
	}
	if got := b.Text(); got != "a" {
		t.Fatalf("text=%q, want %q", got, "a")
	}
	if got := b.Cursor(); got != (Pos{Row: 0, Col: 1}) {
		t.Fatalf("cursor=%v, want (0,1)", got)
	}
}

func TestBuffer_UndoRedo_EmptyStacks_NoMutation(t *testing.T) {
	b := New("hi", Options{})
	v := b.Version()
	if b.Undo() || b.Redo() {
		t.Fatalf("empty history must report false")
	}
	if b.Version() != v || b.Text() != "hi" {
		t.Fatalf("empty history mutated the buffer")
	}
}

func TestBuffer_NewEditClearsRedo(t *testing.T) {
	b := New("", Options{})
	b.InsertText("a")
	b.Undo()
	b.InsertText("b")
	if b.CanRedo() {
		t.Fatalf("new edit must clear redo stack")
	}
}

func TestBuffer_HistoryLimit(t *testing.T) {
	b := New("", Options{HistoryLimit: 2})
	b.InsertText("a")
	b.InsertText("b")
	b.InsertText("c")

	undone := 0
	for b.Undo() {
		undone++
	}
	if undone != 2 {
		t.Fatalf("undo steps=%d, want 2", undone)
	}
	if got := b.Text(); got != "a" {
		t.Fatalf("text=%q, want %q", got, "a")
	}

	b = New("", Options{HistoryLimit: -1})
	b.InsertText("x")
	if b.CanUndo() {
		t.Fatalf("negative limit must disable history")
	}
}

func TestBuffer_UndoReplaceAll(t *testing.T) {
	b := New("draft", Options{})
	b.ReplaceAll("final")
	b.Undo()
	if got := b.Text(); got != "draft" {
		t.Fatalf("text=%q, want %q", got, "draft")
	}
}
