package editor

import "github.com/charmbracelet/lipgloss"

// Theme is the widget's look. Frame and FocusedFrame are not drawn by the
// widget itself; hosts that mount it (surface.Pane) wrap the view in
// whichever one Model.Frame reports. Both frames should have the same size.
type Theme struct {
	Frame        lipgloss.Style
	FocusedFrame lipgloss.Style

	LineNumber       lipgloss.Style
	CursorLineNumber lipgloss.Style

	Text     lipgloss.Style
	Selected lipgloss.Style
	Cursor   lipgloss.Style
}

// NewTheme derives a bordered theme from an accent color, used for the
// focused frame and the cursor line number, and a muted color for the rest
// of the chrome.
func NewTheme(accent, muted lipgloss.Color) Theme {
	frame := lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	return Theme{
		Frame:            frame.BorderForeground(muted),
		FocusedFrame:     frame.BorderForeground(accent),
		LineNumber:       lipgloss.NewStyle().Foreground(muted),
		CursorLineNumber: lipgloss.NewStyle().Foreground(accent).Bold(true),
		Text:             lipgloss.NewStyle(),
		Selected:         lipgloss.NewStyle().Background(muted),
		Cursor:           lipgloss.NewStyle().Reverse(true),
	}
}

// DefaultTheme is NewTheme with a violet accent on grey.
func DefaultTheme() Theme { return NewTheme("63", "240") }
