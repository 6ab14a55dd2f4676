package surface

import (
	"github.com/go-logr/logr"

	"github.com/iw2rmb/scribe/editor"
)

type options struct {
	log    logr.Logger
	widget editor.Config
	guard  bool
}

// Option configures a Surface.
type Option func(*options)

// WithLogger sets the logger used for mount and notification traces.
func WithLogger(l logr.Logger) Option {
	return func(o *options) { o.log = l }
}

// WithWidgetConfig sets the editor configuration used for the mounted widget.
// Its OnChange field is ignored; the surface owns the widget's listener.
func WithWidgetConfig(cfg editor.Config) Option {
	return func(o *options) { o.widget = cfg }
}

// WithReentrancyGuard drops notifications produced while a ChangeFunc is
// still running. The document is still updated; only the nested callback is
// skipped.
func WithReentrancyGuard() Option {
	return func(o *options) { o.guard = true }
}
