// Package editor provides the Bubble Tea editing widget that a document
// surface mounts. It is backed by the buffer package.
//
// The package is responsible for key input, viewport scrolling,
// grapheme-aware rendering, and change events. Every effective state change
// produces one ChangeEvent; events that only move the cursor or selection carry
// TextChanged=false.
package editor
