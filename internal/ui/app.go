package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/fragmede/bidcraft/internal/api"
	"github.com/fragmede/bidcraft/internal/config"
	"github.com/fragmede/bidcraft/internal/session"
	"github.com/fragmede/bidcraft/internal/ui/credentials"
	"github.com/fragmede/bidcraft/internal/ui/messages"
	"github.com/fragmede/bidcraft/internal/ui/operations"
	"github.com/fragmede/bidcraft/internal/ui/statusbar"
)

// Routes served by the app.
const (
	RouteCredentials = messages.RouteCredentials
	RouteOperations  = messages.RouteOperations
)

// App is the root Bubble Tea model. It maps routes to views and owns the
// session shared with the status bar.
type App struct {
	route string

	// Child models. Only the one for the active route is live; navigating
	// builds a fresh one.
	credentials credentials.Model
	operations  operations.Model
	statusBar   statusbar.Model

	// Shared state
	cfg     config.Config
	client  *api.Client
	session *session.Session

	// Dimensions
	width  int
	height int
}

// NewApp creates the root application model starting at route.
func NewApp(cfg config.Config, client *api.Client, sess *session.Session, route string) *App {
	a := &App{
		cfg:       cfg,
		client:    client,
		session:   sess,
		statusBar: statusbar.New(sess),
	}
	a.navigate(route)
	return a
}

// Route returns the active route.
func (a *App) Route() string {
	return a.route
}

// Init starts the application.
func (a *App) Init() tea.Cmd {
	return a.initActive()
}

// Update handles all messages.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.statusBar.SetSize(msg.Width)
		a.resizeActive()
		return a, nil

	case tea.KeyMsg:
		if key.Matches(msg, Keys.Quit) {
			return a, tea.Quit
		}

	case messages.NavigateMsg:
		a.navigate(msg.Path)
		return a, a.initActive()
	}

	// Route to active view.
	var cmd tea.Cmd
	switch a.route {
	case RouteCredentials:
		a.credentials, cmd = a.credentials.Update(msg)
	case RouteOperations:
		a.operations, cmd = a.operations.Update(msg)
	}
	return a, cmd
}

// View renders the application.
func (a *App) View() string {
	var content string
	switch a.route {
	case RouteCredentials:
		content = a.credentials.View()
	case RouteOperations:
		content = a.operations.View()
	}
	if a.height > 0 {
		content = lipgloss.NewStyle().Height(a.height - 1).MaxHeight(a.height - 1).Render(content)
	}
	return lipgloss.JoinVertical(lipgloss.Left, content, a.statusBar.View())
}

func (a *App) navigate(route string) {
	switch route {
	case RouteCredentials:
		a.credentials = credentials.New(a.client, a.session)
	case RouteOperations:
		a.operations = operations.New(a.client, a.cfg.ExportDir)
	default:
		log.Warn("unknown route, showing credentials", "route", route)
		route = RouteCredentials
		a.credentials = credentials.New(a.client, a.session)
	}
	log.Debug("navigate", "from", a.route, "to", route)
	a.route = route
	a.statusBar.SetRoute(route)
	a.resizeActive()
}

func (a *App) resizeActive() {
	contentHeight := a.height - 1 // Reserve 1 line for status bar.
	switch a.route {
	case RouteCredentials:
		a.credentials.SetSize(a.width, contentHeight)
	case RouteOperations:
		a.operations.SetSize(a.width, contentHeight)
	}
}

func (a *App) initActive() tea.Cmd {
	switch a.route {
	case RouteOperations:
		return a.operations.Init()
	default:
		return a.credentials.Init()
	}
}
