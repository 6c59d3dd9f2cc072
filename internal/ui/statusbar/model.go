package statusbar

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/fragmede/bidcraft/internal/session"
	"github.com/fragmede/bidcraft/internal/ui/messages"
)

var (
	barStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("#333333")).
			Foreground(lipgloss.Color("#FFFFFF"))

	activeTabStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("#1877F2")).
			Foreground(lipgloss.Color("#FFFFFF")).
			Bold(true).
			Padding(0, 1)

	inactiveTabStyle = lipgloss.NewStyle().
				Background(lipgloss.Color("#555555")).
				Foreground(lipgloss.Color("#CCCCCC")).
				Padding(0, 1)

	sessionStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("#333333")).
			Foreground(lipgloss.Color("#00FF00")).
			Padding(0, 1)

	backendStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("#333333")).
			Foreground(lipgloss.Color("#AAAAAA")).
			Padding(0, 1)
)

type tab struct {
	label string
	route string
}

var tabs = []tab{
	{"Credentials", messages.RouteCredentials},
	{"Operations", messages.RouteOperations},
}

// Model is the status bar at the bottom of the screen.
type Model struct {
	width   int
	route   string
	session *session.Session
}

// New creates a new status bar.
func New(sess *session.Session) Model {
	return Model{route: messages.RouteCredentials, session: sess}
}

// SetSize sets the width.
func (m *Model) SetSize(w int) {
	m.width = w
}

// SetRoute sets the highlighted route.
func (m *Model) SetRoute(route string) {
	m.route = route
}

// View renders the status bar.
func (m Model) View() string {
	var tabsStr string
	for _, t := range tabs {
		label := t.label + " " + t.route
		if t.route == m.route {
			tabsStr += activeTabStyle.Render(label)
		} else {
			tabsStr += inactiveTabStyle.Render(label)
		}
	}

	var right string
	if m.session != nil {
		right += sessionStyle.Render(m.session.Summary())
		right += backendStyle.Render(m.session.BackendURL())
	}

	gap := m.width - lipgloss.Width(tabsStr) - lipgloss.Width(right)
	if gap < 0 {
		gap = 0
	}
	mid := barStyle.Width(gap).Render("")

	return lipgloss.JoinHorizontal(lipgloss.Top, tabsStr, mid, right)
}
