package editor

// Config configures the editor Model.
type Config struct {
	// Initial text for the internal buffer.
	Text string

	// Rendering options.
	ShowLineNums bool
	Theme        Theme // zero value renders unstyled
	TabWidth     int   // default: 4

	KeyMap    KeyMap
	Clipboard Clipboard
	ReadOnly  bool

	// OnChange is called synchronously, on the goroutine that produced the
	// edit, after every effective buffer state change.
	OnChange func(ChangeEvent)

	// Forwarded to buffer.Options.
	HistoryLimit int
}

func (c Config) withDefaults() Config {
	if c.TabWidth <= 0 {
		c.TabWidth = 4
	}
	if len(c.KeyMap) == 0 {
		c.KeyMap = DefaultKeyMap()
	}
	return c
}
