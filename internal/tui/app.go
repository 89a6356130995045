// Package tui provides a terminal user interface.
package tui

import (
	"errors"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/user/smolwifi/internal/model"
	"github.com/user/smolwifi/internal/scan"
	"github.com/user/smolwifi/internal/util"
)

// App is the main TUI application. It is the presentation adapter: all
// scanning happens behind the scan.Session, and the UI only ever sees
// complete results or errors.
type App struct {
	session *scan.Session
	events  chan tea.Msg
	config  *util.Config
}

// NewApp wires a scan pipeline into a TUI application.
func NewApp(pipe *scan.Pipeline, cfg *util.Config) *App {
	a := &App{
		events: make(chan tea.Msg, 8),
		config: cfg,
	}
	a.session = scan.NewSession(pipe, &sessionListener{events: a.events})
	return a
}

// Run starts the TUI application.
func (a *App) Run() error {
	defer a.session.Close()
	p := tea.NewProgram(newModel(a.session, a.events, a.config), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// sessionListener forwards pipeline outcomes into the bubbletea loop.
type sessionListener struct {
	events chan tea.Msg
}

func (l *sessionListener) ScanResult(res model.ScanResult) {
	l.events <- resultMsg{Result: res}
}

func (l *sessionListener) ScanError(err error) {
	l.events <- scanErrMsg{err: err}
}

// tuiModel is the main bubbletea model.
type tuiModel struct {
	session  *scan.Session
	events   <-chan tea.Msg
	config   *util.Config
	networks *Networks
	spinner  spinner.Model
	scanning bool
	width    int
	height   int
	errText  string
}

func newModel(session *scan.Session, events <-chan tea.Msg, cfg *util.Config) tuiModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	return tuiModel{
		session: session,
		events:  events,
		config:  cfg,
		spinner: s,
		// Init kicks off the first scan, so the model starts out
		// scanning rather than idle.
		scanning: true,
	}
}

// Messages
type resultMsg struct {
	Result model.ScanResult
}

type scanErrMsg struct {
	err error
}

type autoRefreshMsg time.Time

func waitForScan(events <-chan tea.Msg) tea.Cmd {
	return func() tea.Msg {
		return <-events
	}
}

func autoRefreshTick(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return autoRefreshMsg(t)
	})
}

// Init initializes the model and kicks off the first scan.
func (m tuiModel) Init() tea.Cmd {
	cmds := []tea.Cmd{
		m.spinner.Tick,
		waitForScan(m.events),
	}
	m.session.Refresh()
	if m.config.AutoRefresh > 0 {
		cmds = append(cmds, autoRefreshTick(m.config.AutoRefresh))
	}
	return tea.Batch(cmds...)
}

// Update handles messages.
func (m tuiModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			m.session.Close()
			return m, tea.Quit
		case "r":
			// Ignored while a run is in flight; the session
			// enforces it, the flag just keeps the UI honest.
			if m.session.Refresh() {
				m.scanning = true
				m.errText = ""
			}
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.networks != nil {
			m.networks.SetSize(msg.Width, msg.Height)
		}

	case resultMsg:
		m.scanning = false
		m.errText = ""
		m.networks = NewNetworks(msg.Result, m.width, m.height)
		return m, waitForScan(m.events)

	case scanErrMsg:
		m.scanning = false
		m.errText = friendlyError(msg.err)
		return m, waitForScan(m.events)

	case autoRefreshMsg:
		if m.session.Refresh() {
			m.scanning = true
		}
		return m, autoRefreshTick(m.config.AutoRefresh)

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

// View renders the UI.
func (m tuiModel) View() string {
	header := HeaderStyle.Width(m.width).Render("Smol WiFi")

	var body string
	switch {
	case m.scanning:
		body = LoadingStyle.Render(m.spinner.View() + " Scanning for networks...")
	case m.errText != "":
		body = ErrorStyle.Render(m.errText)
	case m.networks == nil:
		body = LoadingStyle.Render(m.spinner.View() + " Ready to scan...")
	default:
		body = m.networks.View()
	}

	help := HelpStyle.Render("r refresh • q quit")

	return header + "\n\n" + body + "\n" + help
}

// friendlyError maps pipeline errors to the status strings users see.
func friendlyError(err error) string {
	if errors.Is(err, scan.ErrNoWifiDevice) {
		return "No WiFi device found"
	}
	var terr *scan.TransportError
	if errors.As(err, &terr) {
		return "NetworkManager unreachable: " + terr.Err.Error()
	}
	return "Error: " + err.Error()
}
