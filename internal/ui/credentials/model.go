package credentials

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/fragmede/bidcraft/internal/api"
	"github.com/fragmede/bidcraft/internal/session"
	"github.com/fragmede/bidcraft/internal/ui/messages"
	"github.com/fragmede/bidcraft/internal/ui/theme"
)

// Status messages shown to the operator.
const (
	MsgRequired = "Both fields are required!"
	MsgUpdated  = "Credentials updated successfully!"
	MsgFailed   = "Failed to update credentials!"
	MsgError    = "An error occurred! Please try again."
)

const (
	fieldToken = iota
	fieldPost
)

// Model is the credential form: access token and post id.
type Model struct {
	id         int64
	tokenInput textinput.Model
	postInput  textinput.Model
	focusIndex int
	message    string
	submitting bool
	client     *api.Client
	session    *session.Session
	help       help.Model
	width      int
	height     int
}

// New creates an empty credential form.
func New(client *api.Client, sess *session.Session) Model {
	tokenInput := textinput.New()
	tokenInput.Placeholder = "access token"
	tokenInput.EchoMode = textinput.EchoPassword
	tokenInput.Focus()
	tokenInput.Width = 48

	postInput := textinput.New()
	postInput.Placeholder = "pageid_postid"
	postInput.Width = 48

	return Model{
		id:         messages.NewViewID(),
		tokenInput: tokenInput,
		postInput:  postInput,
		client:     client,
		session:    sess,
		help:       help.New(),
	}
}

// Init starts the cursor blinking.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// SetSize sets the viewport dimensions.
func (m *Model) SetSize(w, h int) {
	m.width = w
	m.height = h
	fw := w - 20
	if fw > 80 {
		fw = 80
	}
	if fw < 10 {
		fw = 10
	}
	m.tokenInput.Width = fw
	m.postInput.Width = fw
	m.help.Width = w
}

// ID identifies this form instance in result messages.
func (m Model) ID() int64 { return m.id }

// Message returns the current status line.
func (m Model) Message() string { return m.message }

// Submitting reports whether a request is outstanding.
func (m Model) Submitting() bool { return m.submitting }

// AccessToken returns the token field contents.
func (m Model) AccessToken() string { return m.tokenInput.Value() }

// PostID returns the post id field contents.
func (m Model) PostID() string { return m.postInput.Value() }

// Update handles messages.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Next), key.Matches(msg, keys.Prev):
			return m, m.toggleFocus()
		case key.Matches(msg, keys.Ops):
			return m, messages.Navigate(messages.RouteOperations)
		case key.Matches(msg, keys.Submit):
			return m.submit()
		}

	case messages.CredentialsResultMsg:
		if msg.ViewID != m.id {
			return m, nil
		}
		m.submitting = false
		switch {
		case msg.Err != nil && !api.IsStatusError(msg.Err):
			log.Error("credentials update failed", "err", msg.Err)
			m.message = MsgError
		case msg.Err != nil || !msg.Resp.OK():
			log.Warn("backend rejected credentials", "post_id", msg.PostID, "err", msg.Err)
			m.message = MsgFailed
		default:
			log.Info("credentials updated", "post_id", msg.PostID)
			m.session.RecordCredentials(msg.PostID, time.Now())
			m.tokenInput.SetValue("")
			m.postInput.SetValue("")
			m.message = MsgUpdated
		}
		return m, nil
	}

	var cmd tea.Cmd
	if m.focusIndex == fieldToken {
		m.tokenInput, cmd = m.tokenInput.Update(msg)
	} else {
		m.postInput, cmd = m.postInput.Update(msg)
	}
	return m, cmd
}

func (m Model) submit() (Model, tea.Cmd) {
	if m.submitting {
		return m, nil
	}
	token := m.tokenInput.Value()
	postID := m.postInput.Value()
	if token == "" || postID == "" {
		m.message = MsgRequired
		return m, nil
	}

	m.submitting = true
	m.message = ""
	client, id := m.client, m.id
	return m, func() tea.Msg {
		resp, err := client.UpdateCredentials(context.Background(), token, postID)
		return messages.CredentialsResultMsg{ViewID: id, PostID: postID, Resp: resp, Err: err}
	}
}

func (m *Model) toggleFocus() tea.Cmd {
	if m.focusIndex == fieldToken {
		m.focusIndex = fieldPost
		m.tokenInput.Blur()
		return m.postInput.Focus()
	}
	m.focusIndex = fieldToken
	m.postInput.Blur()
	return m.tokenInput.Focus()
}

// View renders the form.
func (m Model) View() string {
	var sb strings.Builder

	sb.WriteString(theme.Title.Render("Update Credentials"))
	sb.WriteString("\n\n")
	sb.WriteString(theme.Label.Render("Access Token:") + " " + m.tokenInput.View())
	sb.WriteString("\n\n")
	sb.WriteString(theme.Label.Render("Post ID:") + " " + m.postInput.View())
	sb.WriteString("\n\n")

	if m.submitting {
		sb.WriteString(theme.Focused.Render("Submitting..."))
	} else {
		sb.WriteString(theme.Hint.Render("[ Submit ]"))
	}
	sb.WriteString("\n\n")

	switch m.message {
	case "":
	case MsgUpdated:
		sb.WriteString(theme.Success.Render(m.message) + "\n\n")
	case MsgRequired, MsgFailed, MsgError:
		sb.WriteString(theme.Error.Render(m.message) + "\n\n")
	default:
		sb.WriteString(theme.Message.Render(m.message) + "\n\n")
	}

	sb.WriteString(m.help.View(keys))

	content := sb.String()
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}
