package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/go-logr/logr"
	"github.com/go-logr/logr/funcr"
	"github.com/urfave/cli/v2"

	"github.com/iw2rmb/scribe"
	"github.com/iw2rmb/scribe/editor"
	"github.com/iw2rmb/scribe/segment"
	"github.com/iw2rmb/scribe/surface"
)

const statusHeight = 2

var statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))

type docState struct {
	changes int
	tokens  []string
	err     error
}

type model struct {
	pane    *surface.Pane
	surface *surface.Surface
	state   *docState
}

func newModel(cfg editor.Config, tok *segment.Tokenizer, log logr.Logger) (model, error) {
	state := &docState{}
	pane := surface.NewPane()

	onChange := func(text string) {
		state.changes++
		state.tokens, state.err = tok.Tokenize(text)
	}
	s, err := surface.New(pane, onChange, surface.WithWidgetConfig(cfg), surface.WithLogger(log))
	if err != nil {
		return model{}, err
	}
	state.tokens, state.err = tok.Tokenize(s.Value())
	return model{pane: pane, surface: s, state: state}, nil
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.pane.SetSize(msg.Width, max(msg.Height-statusHeight, 0))
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+q":
			return m, tea.Quit
		case "ctrl+l":
			_ = m.surface.SetValue("")
			return m, nil
		}
	}
	return m, m.pane.Update(msg)
}

func (m model) View() string {
	return m.pane.View() + "\n" + statusStyle.Render(m.status())
}

func (m model) status() string {
	if m.state.err != nil {
		return "segment: " + m.state.err.Error()
	}
	terms := segment.Terms(m.state.tokens)
	preview := strings.Join(terms[:min(len(terms), 8)], " · ")
	return fmt.Sprintf("changes: %d  tokens: %d  words: %d\n%s  (ctrl+l clears, ctrl+q quits)",
		m.state.changes, len(m.state.tokens), len(terms), preview)
}

func newLogger(path string, verbosity int) (logr.Logger, io.Closer, error) {
	if path == "" {
		return logr.Discard(), io.NopCloser(nil), nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return logr.Discard(), nil, fmt.Errorf("open log file: %w", err)
	}
	log := funcr.New(func(prefix, args string) {
		fmt.Fprintln(f, prefix, args)
	}, funcr.Options{Verbosity: verbosity, LogTimestamp: true})
	return log, f, nil
}

func run(c *cli.Context) error {
	log, closer, err := newLogger(c.String("log-file"), c.Int("verbosity"))
	if err != nil {
		return err
	}
	defer closer.Close()

	seg := segment.New(segment.WithLogger(log))
	tok := seg.Tokenizer(c.String("locale"))
	if _, err := tok.Tokenize(""); err != nil {
		return err
	}

	cfg := editor.Config{
		Text:         c.String("text"),
		ShowLineNums: c.Bool("line-numbers"),
		Theme:        editor.DefaultTheme(),
	}
	m, err := newModel(cfg, tok, log)
	if err != nil {
		return err
	}

	log.Info("starting", "version", scribe.Version(), "locale", tok.Locale())
	_, err = tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithReportFocus()).Run()
	return err
}

// newApp builds the command line. Help and version output go to w.
func newApp(w io.Writer) *cli.App {
	return &cli.App{
		Name:    "scribe",
		Usage:   "edit text and watch it segmented into words",
		Version: scribe.Version(),
		Writer:  w,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "locale", Aliases: []string{"l"}, Value: segment.DefaultLocale, Usage: "segmentation locale"},
			&cli.StringFlag{Name: "text", Aliases: []string{"t"}, Value: "こんにちは、世界。Hello, world!", Usage: "initial document"},
			&cli.BoolFlag{Name: "line-numbers", Value: true, Usage: "show the line number gutter"},
			&cli.StringFlag{Name: "log-file", Usage: "write logs to this file"},
			// -v belongs to the built-in --version flag.
			&cli.IntFlag{Name: "verbosity", Usage: "log verbosity for --log-file"},
		},
		Action: run,
	}
}

func main() {
	if err := newApp(os.Stdout).Run(os.Args); err != nil {
		_, _ = os.Stderr.WriteString(scribe.Banner("scribe") + ": " + err.Error() + "\n")
		os.Exit(1)
	}
}
