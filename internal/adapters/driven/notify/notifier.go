package notify

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"runtime"
	"sync"

	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/docflow-cli/internal/core/ports/driven"
	"github.com/custodia-labs/docflow-cli/internal/logger"
)

// Ensure Notifier implements the interface.
var _ driven.Notifier = (*Notifier)(nil)

// toast icon per level.
const (
	iconSuccess = "✓"
	iconError   = "✗"
	iconInfo    = "•"
)

// Notifier renders toasts to a terminal writer and, when desktop
// notifications are enabled and permission was granted, raises OS
// notifications as well.
type Notifier struct {
	mu      sync.Mutex
	out     io.Writer
	desktop bool

	successStyle lipgloss.Style
	errorStyle   lipgloss.Style
	infoStyle    lipgloss.Style
	titleStyle   lipgloss.Style

	// runCommand is swappable for tests.
	runCommand func(name string, args ...string) error
}

// Option configures a Notifier.
type Option func(*Notifier)

// WithOutput overrides the toast writer. Defaults to stderr so toasts
// never mix with pipeable command output.
func WithOutput(w io.Writer) Option {
	return func(n *Notifier) { n.out = w }
}

// WithDesktop enables OS notifications. Callers pass the AND of the
// user's setting and the recorded permission grant.
func WithDesktop(enabled bool) Option {
	return func(n *Notifier) { n.desktop = enabled }
}

// NewNotifier creates a terminal notifier.
func NewNotifier(opts ...Option) *Notifier {
	n := &Notifier{
		out:          os.Stderr,
		successStyle: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#A6E3A1")),
		errorStyle:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#F38BA8")),
		infoStyle:    lipgloss.NewStyle().Foreground(lipgloss.Color("#89B4FA")),
		titleStyle:   lipgloss.NewStyle().Bold(true),
		runCommand: func(name string, args ...string) error {
			return exec.Command(name, args...).Run()
		},
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Toast renders a one-line styled notification to the terminal.
func (n *Notifier) Toast(level driven.ToastLevel, title, message string) {
	n.mu.Lock()
	defer n.mu.Unlock()

	var style lipgloss.Style
	var icon string
	switch level {
	case driven.ToastSuccess:
		style, icon = n.successStyle, iconSuccess
	case driven.ToastError:
		style, icon = n.errorStyle, iconError
	default:
		style, icon = n.infoStyle, iconInfo
	}

	fmt.Fprintf(n.out, "%s %s %s\n", style.Render(icon), n.titleStyle.Render(title), message)
}

// OSNotify raises a desktop notification tagged so repeats replace
// rather than stack. No-op when desktop notifications are disabled or
// no notifier binary exists on this platform.
func (n *Notifier) OSNotify(tag, title, message string) {
	n.mu.Lock()
	run := n.runCommand
	enabled := n.desktop
	n.mu.Unlock()

	if !enabled {
		return
	}

	var err error
	switch runtime.GOOS {
	case "darwin":
		script := fmt.Sprintf("display notification %q with title %q", message, title)
		err = run("osascript", "-e", script)
	case "linux":
		// notify-send dedupes via the synchronous hint string.
		err = run("notify-send", "--hint", "string:x-canonical-private-synchronous:"+tag, title, message)
	default:
		return
	}

	if err != nil {
		logger.Warn("desktop notification failed: %v", err)
	}
}
