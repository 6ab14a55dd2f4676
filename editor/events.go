package editor

import "github.com/iw2rmb/scribe/buffer"

type ChangeEvent struct {
	Version     uint64
	TextVersion uint64

	// TextChanged is false for cursor or selection only changes.
	TextChanged bool
	Source      buffer.ChangeSource

	Cursor    buffer.Pos
	Selection struct {
		Range  buffer.Range
		Active bool
	}

	// Full document text after the change.
	Text string
}

func buildChangeEvent(b *buffer.Buffer, textChanged bool) ChangeEvent {
	ev := ChangeEvent{
		Version:     b.Version(),
		TextVersion: b.TextVersion(),
		TextChanged: textChanged,
		Source:      buffer.ChangeSourceInput,
		Cursor:      b.Cursor(),
		Text:        b.Text(),
	}
	if textChanged {
		if c, ok := b.LastChange(); ok {
			ev.Source = c.Source
		}
	}
	if r, ok := b.Selection(); ok {
		ev.Selection.Active = true
		ev.Selection.Range = r
	}
	return ev
}

type versionMark struct {
	version     uint64
	textVersion uint64
}

func markOf(b *buffer.Buffer) versionMark {
	return versionMark{version: b.Version(), textVersion: b.TextVersion()}
}

// emitSince delivers one event if the buffer moved past mark.
func (m Model) emitSince(mark versionMark) {
	if m.cfg.OnChange == nil || m.buf == nil {
		return
	}
	if m.buf.Version() == mark.version {
		return
	}
	m.cfg.OnChange(buildChangeEvent(m.buf, m.buf.TextVersion() != mark.textVersion))
}
