package surface

import "errors"

var (
	// ErrConfiguration marks failures to build or mount a surface.
	ErrConfiguration = errors.New("surface: configuration error")
	// ErrValidation marks inputs rejected before they reach the widget.
	ErrValidation = errors.New("surface: validation error")

	ErrNilMount      = errors.New("mount point is nil")
	ErrMountAttached = errors.New("mount point already hosts a widget")
	ErrNilCallback   = errors.New("change callback is nil")
	ErrInvalidUTF8   = errors.New("text is not valid UTF-8")
)

// classified keeps both the category and the specific cause visible to
// errors.Is.
type classified struct {
	kind  error
	cause error
}

func (e *classified) Error() string   { return e.kind.Error() + ": " + e.cause.Error() }
func (e *classified) Unwrap() []error { return []error{e.kind, e.cause} }

func configErr(cause error) error     { return &classified{kind: ErrConfiguration, cause: cause} }
func validationErr(cause error) error { return &classified{kind: ErrValidation, cause: cause} }
