package segment

import "errors"

var (
	// ErrConfiguration marks locales that cannot produce an engine.
	ErrConfiguration = errors.New("segment: configuration error")
	// ErrValidation marks text rejected before segmentation.
	ErrValidation = errors.New("segment: validation error")

	ErrInvalidLocale     = errors.New("locale is not a valid BCP 47 tag")
	ErrUnsupportedLocale = errors.New("locale is not supported")
	ErrInvalidUTF8       = errors.New("text is not valid UTF-8")
)

type classified struct {
	kind  error
	cause error
}

func (e *classified) Error() string   { return e.kind.Error() + ": " + e.cause.Error() }
func (e *classified) Unwrap() []error { return []error{e.kind, e.cause} }

func configErr(cause error) error     { return &classified{kind: ErrConfiguration, cause: cause} }
func validationErr(cause error) error { return &classified{kind: ErrValidation, cause: cause} }
