// Package buffer implements the pure, grapheme-accurate document model behind
// the scribe editing widget.
//
// Coordinates are 0-based (Row, Col) where Col counts grapheme clusters.
// Ranges are half-open selections in document coordinates: [Start, End).
//
// Every state change bumps Version. Only content changes bump TextVersion,
// which is what content-gated listeners compare.
package buffer
