package segment

import (
	"unicode"

	"github.com/rivo/uniseg"
	"golang.org/x/text/language"
)

// Engine splits text into ordered, lossless word segments.
// Engines must be safe for concurrent use.
type Engine interface {
	Segment(text string) []string
}

// Factory builds the engine for a canonical locale. It is called at most once
// per locale by a Segmenter.
type Factory func(tag language.Tag) (Engine, error)

// scriptRuns lists, per base language, the scripts whose consecutive segments
// are merged into one word. These languages do not separate words with
// spaces, and UAX #29 alone breaks them between every character.
var scriptRuns = map[string][]*unicode.RangeTable{
	"ja": {unicode.Han, unicode.Hiragana, unicode.Katakana},
}

// NewEngine is the default Factory: UAX #29 word boundaries with per-locale
// script-run tailoring.
func NewEngine(tag language.Tag) (Engine, error) {
	base, _ := tag.Base()
	return &wordEngine{tag: tag, runs: scriptRuns[base.String()]}, nil
}

type wordEngine struct {
	tag  language.Tag
	runs []*unicode.RangeTable
}

func (e *wordEngine) Segment(text string) []string {
	if text == "" {
		return nil
	}
	out := make([]string, 0, len(text)/4+1)
	state := -1
	var word string
	for text != "" {
		word, text, state = uniseg.FirstWordInString(text, state)
		out = append(out, word)
	}
	if len(e.runs) == 0 {
		return out
	}
	return mergeScriptRuns(out, e.runs)
}

// mergeScriptRuns joins adjacent segments written entirely in the same
// script. Segments are contiguous substrings of one text, so joining keeps
// the result lossless.
func mergeScriptRuns(segs []string, scripts []*unicode.RangeTable) []string {
	out := segs[:0]
	prev := -1
	for _, s := range segs {
		cur := scriptOf(s, scripts)
		if cur >= 0 && cur == prev {
			out[len(out)-1] += s
			continue
		}
		out = append(out, s)
		prev = cur
	}
	return out
}

// scriptOf returns the index of the script covering every rune of s, or -1.
func scriptOf(s string, scripts []*unicode.RangeTable) int {
	found := -1
	for _, r := range s {
		idx := -1
		for i, tbl := range scripts {
			if unicode.Is(tbl, r) {
				idx = i
				break
			}
		}
		if idx < 0 || (found >= 0 && idx != found) {
			return -1
		}
		found = idx
	}
	return found
}
