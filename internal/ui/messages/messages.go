package messages

import (
	"sync/atomic"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/fragmede/bidcraft/internal/api"
)

// Routes.
const (
	RouteCredentials = "/"
	RouteOperations  = "/next"
)

// View transition messages.
type (
	NavigateMsg struct{ Path string }
)

// Data messages. Each carries either a decoded response or the error that
// prevented one, plus the ViewID of the view that issued the request. A view
// ignores results addressed to another instance.
type (
	CredentialsResultMsg struct {
		ViewID int64
		PostID string
		Resp   *api.StatusResponse
		Err    error
	}

	ProcessResultMsg struct {
		ViewID int64
		Resp   *api.MessageResponse
		Err    error
	}

	AnswerResultMsg struct {
		ViewID int64
		Resp   *api.MessageResponse
		Err    error
	}

	LogsResultMsg struct {
		ViewID int64
		Resp   *api.LogsResponse
		Err    error
	}

	ExportResultMsg struct {
		ViewID int64
		Path   string
		Err    error
	}
)

// Navigate returns a command that switches the app to path.
func Navigate(path string) tea.Cmd {
	return func() tea.Msg { return NavigateMsg{Path: path} }
}

var lastViewID atomic.Int64

// NewViewID returns an identifier unique to one view instance.
func NewViewID() int64 {
	return lastViewID.Add(1)
}
