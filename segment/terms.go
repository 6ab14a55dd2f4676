package segment

import "github.com/iw2rmb/scribe/internal/grapheme"

// Terms keeps the word-like tokens of a Tokenize result, dropping tokens made
// only of whitespace, punctuation or symbols. It is meant for building search
// keys; the input slice is not modified.
func Terms(tokens []string) []string {
	out := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if tok == "" || grapheme.IsSpace(tok) || grapheme.IsPunct(tok) {
			continue
		}
		out = append(out, tok)
	}
	return out
}
