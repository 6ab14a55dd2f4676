package segment

import (
	"fmt"

	"golang.org/x/text/language"
)

// DefaultLocale is the locale pinned by the process-wide default segmenter.
const DefaultLocale = "ja"

// Languages lists the locales supported out of the box, in preference order.
var Languages = []string{
	"ja", "en", "fr", "ko", "zh-CN", "zh-TW", "de", "es", "it", "ru", "pt", "pt-BR",
}

func supportedTags(names []string) []language.Tag {
	tags := make([]language.Tag, 0, len(names))
	for _, n := range names {
		tags = append(tags, language.MustParse(n))
	}
	return tags
}

// localeTable resolves requested locales against a fixed set of tags. A nil
// matcher means every well-formed tag is accepted unchanged.
type localeTable struct {
	tags    []language.Tag
	matcher language.Matcher
}

func newLocaleTable(tags []language.Tag) localeTable {
	if len(tags) == 0 {
		return localeTable{}
	}
	return localeTable{tags: tags, matcher: language.NewMatcher(tags)}
}

func (lt localeTable) resolve(locale string) (language.Tag, error) {
	tag, err := language.Parse(locale)
	if err != nil {
		return language.Und, fmt.Errorf("%w: %q: %v", ErrInvalidLocale, locale, err)
	}
	if lt.matcher == nil {
		return tag, nil
	}
	// Low confidence means a different language ("sw" to "en"), not a variant.
	_, idx, conf := lt.matcher.Match(tag)
	if conf < language.High {
		return language.Und, fmt.Errorf("%w: %q", ErrUnsupportedLocale, locale)
	}
	return lt.tags[idx], nil
}

// Canonical resolves locale to its entry in supported. Regional variants
// resolve to their base entry ("ja-JP" to "ja"); any other language fails
// with ErrUnsupportedLocale. An empty supported list accepts any
// well-formed tag as-is.
func Canonical(locale string, supported []language.Tag) (language.Tag, error) {
	return newLocaleTable(supported).resolve(locale)
}
