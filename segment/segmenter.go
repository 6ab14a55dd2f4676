package segment

import (
	"sync"
	"unicode/utf8"

	"github.com/go-logr/logr"
	"golang.org/x/text/language"
)

type options struct {
	factory   Factory
	supported []language.Tag
	log       logr.Logger
}

// Option configures a Segmenter.
type Option func(*options)

// WithFactory replaces NewEngine as the engine constructor.
func WithFactory(f Factory) Option {
	return func(o *options) { o.factory = f }
}

// WithSupported restricts the accepted locales. An empty list accepts any
// well-formed tag as-is.
func WithSupported(locales ...string) Option {
	return func(o *options) { o.supported = supportedTags(locales) }
}

// WithLogger sets the logger for engine construction events.
func WithLogger(l logr.Logger) Option {
	return func(o *options) { o.log = l }
}

type entry struct {
	once   sync.Once
	engine Engine
	err    error
}

// Segmenter owns the locale to engine cache. The zero value is not usable;
// call New.
type Segmenter struct {
	factory Factory
	locales localeTable
	log     logr.Logger

	mu      sync.Mutex
	entries map[string]*entry
}

// New returns a Segmenter with an empty cache. Without options it builds
// engines with NewEngine and accepts the locales in Languages.
func New(opts ...Option) *Segmenter {
	o := options{
		factory:   NewEngine,
		supported: supportedTags(Languages),
		log:       logr.Discard(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	return &Segmenter{
		factory: o.factory,
		locales: newLocaleTable(o.supported),
		log:     o.log.WithName("segment"),
		entries: make(map[string]*entry),
	}
}

// Engine returns the engine for locale, building it on the first request for
// that locale. Concurrent first requests build it once. A failed build is
// remembered and returned to every later caller until Reset.
func (s *Segmenter) Engine(locale string) (Engine, error) {
	tag, err := s.locales.resolve(locale)
	if err != nil {
		return nil, configErr(err)
	}
	key := tag.String()

	s.mu.Lock()
	e, ok := s.entries[key]
	if !ok {
		e = &entry{}
		s.entries[key] = e
	}
	s.mu.Unlock()

	e.once.Do(func() {
		e.engine, e.err = s.factory(tag)
		if e.err != nil {
			s.log.Error(e.err, "engine construction failed", "locale", key)
			return
		}
		s.log.V(1).Info("engine constructed", "locale", key, "requested", locale)
	})
	if e.err != nil {
		return nil, configErr(e.err)
	}
	return e.engine, nil
}

// Reset drops every cached engine.
func (s *Segmenter) Reset() {
	s.mu.Lock()
	s.entries = make(map[string]*entry)
	s.mu.Unlock()
}

// Locales returns the canonical locales that currently have an entry.
func (s *Segmenter) Locales() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, 0, len(s.entries))
	for k := range s.entries {
		out = append(out, k)
	}
	return out
}

// Tokenizer binds locale to s. Nothing is built until the first Tokenize,
// and every call goes through the Segmenter's cache, so a Reset is seen by
// tokenizers created before it.
func (s *Segmenter) Tokenizer(locale string) *Tokenizer {
	return &Tokenizer{locale: locale, seg: s}
}

// Tokenizer segments text for one fixed locale.
type Tokenizer struct {
	locale string
	seg    *Segmenter
}

// NewTokenizer returns a Tokenizer for locale backed by the default
// Segmenter's cache.
func NewTokenizer(locale string) *Tokenizer {
	return defaultSegmenter.Tokenizer(locale)
}

// Locale returns the locale as requested, before canonicalization.
func (t *Tokenizer) Locale() string { return t.locale }

// Tokenize returns the word segments of text in order. The result is never
// nil; an empty text yields an empty slice.
func (t *Tokenizer) Tokenize(text string) ([]string, error) {
	eng, err := t.seg.Engine(t.locale)
	if err != nil {
		return nil, err
	}
	if !utf8.ValidString(text) {
		return nil, validationErr(ErrInvalidUTF8)
	}
	if text == "" {
		return []string{}, nil
	}
	return eng.Segment(text), nil
}

var (
	defaultSegmenter = New()
	defaultTokenizer = sync.OnceValue(func() *Tokenizer {
		return defaultSegmenter.Tokenizer(DefaultLocale)
	})
)

// Default returns the process-wide Segmenter.
func Default() *Segmenter { return defaultSegmenter }

// Tokenize segments text with the process-wide tokenizer pinned to
// DefaultLocale.
func Tokenize(text string) ([]string, error) {
	return defaultTokenizer().Tokenize(text)
}
