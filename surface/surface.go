package surface

import (
	"fmt"
	"unicode/utf8"

	"github.com/go-logr/logr"

	"github.com/iw2rmb/scribe/editor"
)

// ChangeFunc receives the complete document text after a content change.
type ChangeFunc func(text string)

// Surface is the host-facing handle of a mounted editor widget.
type Surface struct {
	widget   *editor.Model
	onChange ChangeFunc
	log      logr.Logger

	guard      bool
	notifying  bool
	suppressed uint64
}

// New builds the widget, subscribes to its content changes and attaches it to
// mount before returning.
func New(mount MountPoint, onChange ChangeFunc, opts ...Option) (*Surface, error) {
	o := options{log: logr.Discard()}
	for _, opt := range opts {
		opt(&o)
	}
	if mount == nil {
		return nil, configErr(ErrNilMount)
	}
	if onChange == nil {
		return nil, validationErr(ErrNilCallback)
	}

	s := &Surface{
		onChange: onChange,
		log:      o.log.WithName("surface"),
		guard:    o.guard,
	}
	cfg := o.widget
	w := editor.New(cfg).SetOnChange(s.relay)
	s.widget = &w

	if err := mount.Attach(s.widget); err != nil {
		return nil, configErr(fmt.Errorf("attach widget: %w", err))
	}
	s.log.V(1).Info("widget mounted", "bytes", len(cfg.Text), "guard", s.guard)
	return s, nil
}

// Value returns the widget's current text. It is read from the widget on
// every call.
func (s *Surface) Value() string {
	return s.widget.Text()
}

// SetValue replaces the whole document as a single edit. It notifies the
// ChangeFunc exactly once with text, even when text equals the current value.
func (s *Surface) SetValue(text string) error {
	if !utf8.ValidString(text) {
		return validationErr(ErrInvalidUTF8)
	}
	s.widget.ReplaceText(text)
	return nil
}

// Suppressed reports how many nested notifications the reentrancy guard has
// dropped.
func (s *Surface) Suppressed() uint64 { return s.suppressed }

func (s *Surface) relay(ev editor.ChangeEvent) {
	if !ev.TextChanged {
		return
	}
	if s.guard && s.notifying {
		s.suppressed++
		s.log.V(2).Info("nested notification suppressed", "textVersion", ev.TextVersion)
		return
	}
	s.log.V(2).Info("content changed", "textVersion", ev.TextVersion, "source", ev.Source)

	s.notifying = true
	defer func() { s.notifying = false }()
	s.onChange(ev.Text)
}
