// Package segment splits natural-language text into word-like tokens using
// locale-specific rules.
//
// A Segmenter owns one Engine per supported locale and builds it at most once,
// on first use. Tokenizers bind a locale to a Segmenter; the package-level
// Tokenize uses a process-wide Segmenter pinned to DefaultLocale.
//
// Segmentation is lossless: the tokens returned for a text always concatenate
// back to that text. Whitespace and punctuation come back as tokens of their
// own; use Terms to keep only word-like tokens.
package segment
