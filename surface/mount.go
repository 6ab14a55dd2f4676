package surface

import (
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/scribe/editor"
)

var errNilWidget = errors.New("widget is nil")

// MountPoint is a render target that hosts exactly one editor widget.
// The surface keeps a non-owning reference; the host owns the mount point.
type MountPoint interface {
	Attach(w *editor.Model) error
}

// Pane is a Bubble Tea container that renders a single mounted widget inside
// the frame of the widget's theme. Hosts embed it in their own tea.Model.
type Pane struct {
	widget *editor.Model

	width, height int
}

// NewPane returns an empty pane. It renders nothing until a widget is
// attached.
func NewPane() *Pane { return &Pane{} }

// Attach mounts w. A pane hosts one widget for its lifetime.
func (p *Pane) Attach(w *editor.Model) error {
	if w == nil {
		return errNilWidget
	}
	if p.widget != nil {
		return ErrMountAttached
	}
	p.widget = w
	p.resizeWidget()
	return nil
}

// Attached reports whether a widget has been mounted.
func (p *Pane) Attached() bool { return p.widget != nil }

// SetSize sets the outer size of the pane, frame included.
func (p *Pane) SetSize(width, height int) {
	p.width, p.height = max(width, 0), max(height, 0)
	p.resizeWidget()
}

// Focus lets the mounted widget take keys and switches it to its focused
// frame.
func (p *Pane) Focus() { p.setFocus(true) }

// Blur is the inverse of Focus. Keys reaching a blurred pane are dropped.
func (p *Pane) Blur() { p.setFocus(false) }

func (p *Pane) setFocus(on bool) {
	if p.widget == nil || p.widget.Focused() == on {
		return
	}
	if on {
		*p.widget = p.widget.Focus()
	} else {
		*p.widget = p.widget.Blur()
	}
	p.resizeWidget()
}

func (p *Pane) resizeWidget() {
	if p.widget == nil {
		return
	}
	frame := p.widget.Frame()
	w := p.width - frame.GetHorizontalFrameSize()
	h := p.height - frame.GetVerticalFrameSize()
	*p.widget = p.widget.SetSize(max(w, 0), max(h, 0))
}

// Init implements the Bubble Tea component contract; a pane has no startup
// command.
func (p *Pane) Init() tea.Cmd { return nil }

// Update routes msg to the mounted widget. Window size messages resize the
// pane; hosts that split the screen call SetSize instead. Terminal focus
// reports focus or blur the widget.
func (p *Pane) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		p.SetSize(msg.Width, msg.Height)
		return nil
	case tea.FocusMsg:
		p.Focus()
		return nil
	case tea.BlurMsg:
		p.Blur()
		return nil
	}
	if p.widget == nil {
		return nil
	}
	var cmd tea.Cmd
	*p.widget, cmd = p.widget.Update(msg)
	return cmd
}

// View renders the widget wrapped in its frame, or "" when empty.
func (p *Pane) View() string {
	if p.widget == nil {
		return ""
	}
	return p.widget.Frame().Render(p.widget.View())
}
