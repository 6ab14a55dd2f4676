package editor

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/scribe/buffer"
)

// Action is a widget command a key can be bound to.
type Action int

const (
	ActionNone Action = iota

	// Cursor motion. The Select variants extend the selection.
	ActionLeft
	ActionRight
	ActionUp
	ActionDown
	ActionSelectLeft
	ActionSelectRight
	ActionSelectUp
	ActionSelectDown
	ActionWordLeft
	ActionWordRight
	ActionLineStart
	ActionLineEnd
	ActionDocStart
	ActionDocEnd

	ActionCopy

	// Everything from here on mutates content and is ignored when read-only.
	ActionDeleteBackward
	ActionDeleteForward
	ActionNewline
	ActionUndo
	ActionRedo
	ActionCut
	ActionPaste
)

// Mutates reports whether a changes document content.
func (a Action) Mutates() bool { return a >= ActionDeleteBackward }

// motions maps cursor actions to buffer moves.
var motions = map[Action]buffer.Move{
	ActionLeft:        {Unit: buffer.MoveGrapheme, Dir: buffer.DirLeft},
	ActionRight:       {Unit: buffer.MoveGrapheme, Dir: buffer.DirRight},
	ActionUp:          {Unit: buffer.MoveLine, Dir: buffer.DirUp},
	ActionDown:        {Unit: buffer.MoveLine, Dir: buffer.DirDown},
	ActionSelectLeft:  {Unit: buffer.MoveGrapheme, Dir: buffer.DirLeft, Extend: true},
	ActionSelectRight: {Unit: buffer.MoveGrapheme, Dir: buffer.DirRight, Extend: true},
	ActionSelectUp:    {Unit: buffer.MoveLine, Dir: buffer.DirUp, Extend: true},
	ActionSelectDown:  {Unit: buffer.MoveLine, Dir: buffer.DirDown, Extend: true},
	ActionWordLeft:    {Unit: buffer.MoveWord, Dir: buffer.DirLeft},
	ActionWordRight:   {Unit: buffer.MoveWord, Dir: buffer.DirRight},
	ActionLineStart:   {Unit: buffer.MoveLine, Dir: buffer.DirHome},
	ActionLineEnd:     {Unit: buffer.MoveLine, Dir: buffer.DirEnd},
	ActionDocStart:    {Unit: buffer.MoveDoc, Dir: buffer.DirHome},
	ActionDocEnd:      {Unit: buffer.MoveDoc, Dir: buffer.DirEnd},
}

// Binding ties one key.Binding to an Action.
type Binding struct {
	Action Action
	Key    key.Binding
}

// KeyMap is an ordered binding table; the first match wins. Keys that match
// no binding fall through to text insertion.
type KeyMap []Binding

// Lookup returns the action bound to msg, or ActionNone.
func (km KeyMap) Lookup(msg tea.KeyMsg) Action {
	for _, b := range km {
		if key.Matches(msg, b.Key) {
			return b.Action
		}
	}
	return ActionNone
}

func bind(a Action, help string, keys ...string) Binding {
	return Binding{Action: a, Key: key.NewBinding(key.WithKeys(keys...), key.WithHelp(keys[0], help))}
}

// DefaultKeyMap binds arrows, shift-arrows and the usual ctrl shortcuts.
// Word motion accepts both alt and ctrl arrows since terminals disagree.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		bind(ActionLeft, "left", "left"),
		bind(ActionRight, "right", "right"),
		bind(ActionUp, "up", "up"),
		bind(ActionDown, "down", "down"),
		bind(ActionSelectLeft, "select left", "shift+left"),
		bind(ActionSelectRight, "select right", "shift+right"),
		bind(ActionSelectUp, "select up", "shift+up"),
		bind(ActionSelectDown, "select down", "shift+down"),
		bind(ActionWordLeft, "word left", "alt+left", "ctrl+left"),
		bind(ActionWordRight, "word right", "alt+right", "ctrl+right"),
		bind(ActionLineStart, "line start", "home", "ctrl+a"),
		bind(ActionLineEnd, "line end", "end", "ctrl+e"),
		bind(ActionDocStart, "document start", "ctrl+home"),
		bind(ActionDocEnd, "document end", "ctrl+end"),
		bind(ActionCopy, "copy", "ctrl+c"),
		bind(ActionDeleteBackward, "delete left", "backspace", "ctrl+h"),
		bind(ActionDeleteForward, "delete right", "delete"),
		bind(ActionNewline, "newline", "enter"),
		bind(ActionUndo, "undo", "ctrl+z"),
		bind(ActionRedo, "redo", "ctrl+y"),
		bind(ActionCut, "cut", "ctrl+x"),
		bind(ActionPaste, "paste", "ctrl+v"),
	}
}
