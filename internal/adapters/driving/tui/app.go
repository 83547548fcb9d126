// Package tui provides the live processing monitor following the Elm
// architecture. It shows every document still in the pipeline, which of
// them have a live status poller, and the recent activity trail.
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/docflow-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/docflow-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/docflow-cli/internal/core/domain"
)

// refreshInterval is how often the monitor reloads the processing set.
// The per-document pollers run on their own cadence; this only paces
// the screen.
const refreshInterval = 2 * time.Second

// activityLimit is how many recent activity entries the monitor shows.
const activityLimit = 8

// App is the processing monitor application.
// It implements tea.Model for use with Bubbletea.
type App struct {
	// ports provides access to core services via driving ports.
	ports *Ports

	// ctx is the context for cancellation.
	ctx context.Context

	// styles holds the TUI styles.
	styles *styles.Styles

	// spinner animates while documents are in flight.
	spinner spinner.Model

	// documents is the current in-flight set.
	documents []domain.Document

	// activity is the recent activity trail.
	activity []domain.ActivityRecord

	// watching is how many documents have a live poller.
	watching int

	// err holds the last error that occurred.
	err error

	// width and height are terminal dimensions.
	width  int
	height int

	// ready indicates if the app has initialised.
	ready bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new processing monitor with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = s.Spinner

	return &App{
		ports:   ports,
		ctx:     context.Background(),
		styles:  s,
		spinner: sp,
	}, nil
}

// WithContext sets the context for the app.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	return a
}

// Init implements tea.Model.
// It runs initial commands when the program starts.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		tea.SetWindowTitle("docflow - processing monitor"),
		a.spinner.Tick,
		a.loadProcessing(),
		a.loadActivity(),
	)
}

// loadProcessing returns a command that reloads the in-flight set and
// realigns poller membership with it.
func (a *App) loadProcessing() tea.Cmd {
	return func() tea.Msg {
		docs, err := a.ports.Document.Processing(a.ctx)
		if err != nil {
			return messages.ProcessingLoaded{Err: err}
		}

		a.ports.Poller.Refresh(a.ctx, docs)

		return messages.ProcessingLoaded{
			Documents: docs,
			Watching:  a.ports.Poller.ActiveCount(),
		}
	}
}

// loadActivity returns a command that reloads the recent activity trail.
func (a *App) loadActivity() tea.Cmd {
	return func() tea.Msg {
		if a.ports.Activity == nil {
			return messages.ActivityLoaded{}
		}

		records, err := a.ports.Activity.Recent(a.ctx, activityLimit)
		return messages.ActivityLoaded{Records: records, Err: err}
	}
}

// scheduleRefresh returns a command that fires the next refresh tick.
func (a *App) scheduleRefresh() tea.Cmd {
	return tea.Tick(refreshInterval, func(time.Time) tea.Msg {
		return messages.RefreshTick{}
	})
}

// Update implements tea.Model.
// It handles messages and updates the model state.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.ready = true
		return a, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			return a, tea.Quit
		case "r":
			return a, tea.Batch(a.loadProcessing(), a.loadActivity())
		}
		return a, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		a.spinner, cmd = a.spinner.Update(msg)
		return a, cmd

	case messages.RefreshTick:
		return a, tea.Batch(a.loadProcessing(), a.loadActivity())

	case messages.ProcessingLoaded:
		if msg.Err != nil {
			a.err = msg.Err
		} else {
			a.documents = msg.Documents
			a.watching = msg.Watching
			a.err = nil
		}
		return a, a.scheduleRefresh()

	case messages.ActivityLoaded:
		if msg.Err == nil {
			a.activity = msg.Records
		}
		return a, nil

	case messages.ErrorOccurred:
		a.err = msg.Err
		return a, nil

	case messages.Quit:
		return a, tea.Quit
	}

	return a, nil
}

// View implements tea.Model.
// It renders the monitor as a string.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	var b strings.Builder

	b.WriteString(a.styles.Title.Render("Processing Monitor"))
	b.WriteString("\n\n")

	if a.err != nil {
		b.WriteString(a.styles.Error.Render(fmt.Sprintf("Error: %s", a.err.Error())))
		b.WriteString("\n\n")
	}

	b.WriteString(a.renderStatusLine())
	b.WriteString("\n\n")

	if len(a.documents) == 0 {
		b.WriteString(a.styles.Muted.Render("No documents in the pipeline. New uploads appear here automatically."))
		b.WriteString("\n")
	} else {
		for i := range a.documents {
			b.WriteString(a.renderDocument(&a.documents[i]))
			b.WriteString("\n")
		}
	}

	if len(a.activity) > 0 {
		b.WriteString("\n")
		b.WriteString(a.styles.Subtitle.Render("Recent activity"))
		b.WriteString("\n")
		for i := range a.activity {
			b.WriteString(a.renderActivity(&a.activity[i]))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(a.styles.Help.Render("[r] refresh  [q] quit"))

	return b.String()
}

// renderStatusLine renders the spinner and summary counts.
func (a *App) renderStatusLine() string {
	if len(a.documents) == 0 {
		return a.styles.Muted.Render("idle")
	}

	noun := "documents"
	if len(a.documents) == 1 {
		noun = "document"
	}
	summary := fmt.Sprintf("%d %s processing, %d watched", len(a.documents), noun, a.watching)
	return a.spinner.View() + " " + a.styles.Normal.Render(summary)
}

// renderDocument renders a single in-flight document line.
func (a *App) renderDocument(doc *domain.Document) string {
	watched := "  "
	if a.ports.Poller.Watching(doc.ID) {
		watched = a.styles.Success.Render("● ")
	}

	name := doc.Filename
	if name == "" {
		name = doc.ID
	}

	maxNameLen := a.width/2 - 4
	if maxNameLen < 12 {
		maxNameLen = 12
	}
	if len(name) > maxNameLen {
		name = name[:maxNameLen-3] + "..."
	}

	age := a.styles.Muted.Render(fmt.Sprintf("uploaded %s", doc.UploadedAt.Format("15:04:05")))
	status := a.styles.Warning.Render(doc.Status.String())

	return fmt.Sprintf("  %s%-*s  %s  %s", watched, maxNameLen, name, status, age)
}

// renderActivity renders a single activity trail line.
func (a *App) renderActivity(rec *domain.ActivityRecord) string {
	when := a.styles.Muted.Render(rec.OccurredAt.Format("15:04:05"))
	kind := a.styles.Subtitle.Render(fmt.Sprintf("%-10s", rec.Kind))
	return fmt.Sprintf("  %s %s %s", when, kind, a.styles.Normal.Render(rec.Detail))
}

// Run starts the TUI application.
func (a *App) Run() error {
	p := tea.NewProgram(a, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// Documents returns the current in-flight set.
func (a *App) Documents() []domain.Document {
	return a.documents
}

// Watching returns the watched poller count last observed.
func (a *App) Watching() int {
	return a.watching
}

// Err returns the last error that occurred.
func (a *App) Err() error {
	return a.err
}

// Ready returns whether the app has been initialised.
func (a *App) Ready() bool {
	return a.ready
}

// SetDimensions sets the terminal dimensions (for testing).
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
}
