package operations

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/fragmede/bidcraft/internal/api"
	"github.com/fragmede/bidcraft/internal/export"
	"github.com/fragmede/bidcraft/internal/render"
	"github.com/fragmede/bidcraft/internal/ui/messages"
	"github.com/fragmede/bidcraft/internal/ui/theme"
)

// Status messages shown to the operator.
const (
	MsgUnreachable    = "Error: Unable to reach the server."
	MsgProcessFailed  = "Failed to process comments."
	MsgAnswerRequired = "Please enter both comment and answer."
	MsgAnswerFailed   = "Failed to update the answer."
	MsgLogsFetched    = "Logs retrieved successfully."
	MsgLogsFailed     = "Failed to fetch logs."
	MsgNoLogs         = "No logs available to compose."
	MsgExported       = "Log file composed and downloaded successfully."
	MsgExportFailed   = "Failed to compose log file."
	emptyLogPane      = "No logs available."
)

const (
	fieldComment = iota
	fieldAnswer
)

// chrome is the number of lines the view uses around the log pane.
const chrome = 13

// Model is the operations view: comment processing, answers, and logs.
type Model struct {
	id           int64
	commentInput textinput.Model
	answerInput  textinput.Model
	focusIndex   int
	logs         string
	message      string
	viewport     viewport.Model
	client       *api.Client
	exportPath   string
	help         help.Model
	width        int
	height       int
}

// New creates the operations view. Exported PDFs are written into exportDir.
func New(client *api.Client, exportDir string) Model {
	commentInput := textinput.New()
	commentInput.Placeholder = "Enter Comment"
	commentInput.Focus()
	commentInput.Width = 60

	answerInput := textinput.New()
	answerInput.Placeholder = "Enter Answer"
	answerInput.Width = 60

	m := Model{
		id:           messages.NewViewID(),
		commentInput: commentInput,
		answerInput:  answerInput,
		viewport:     viewport.New(80, 10),
		client:       client,
		exportPath:   filepath.Join(exportDir, export.FileName),
		help:         help.New(),
	}
	m.refreshLogPane()
	return m
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
	if fw > 100 {
		fw = 100
	}
	if fw < 10 {
		fw = 10
	}
	m.commentInput.Width = fw
	m.answerInput.Width = fw
	m.help.Width = w

	// Outer padding, pane border and pane padding take two columns each.
	m.viewport.Width = w - 6
	if m.viewport.Width < 10 {
		m.viewport.Width = 10
	}
	m.viewport.Height = h - chrome
	if m.viewport.Height < 3 {
		m.viewport.Height = 3
	}
	m.refreshLogPane()
}

// ID identifies this view instance in result messages.
func (m Model) ID() int64 { return m.id }

// Message returns the current status line.
func (m Model) Message() string { return m.message }

// Logs returns the most recently fetched log text.
func (m Model) Logs() string { return m.logs }

// Comment returns the comment field contents.
func (m Model) Comment() string { return m.commentInput.Value() }

// Answer returns the answer field contents.
func (m Model) Answer() string { return m.answerInput.Value() }

// ExportPath is where Compose Log File writes the PDF.
func (m Model) ExportPath() string { return m.exportPath }

// Update handles messages.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if stale(m.id, msg) {
		log.Debug("dropping result for a previous view", "msg", fmt.Sprintf("%T", msg))
		return m, nil
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Next):
			return m, m.toggleFocus()
		case key.Matches(msg, keys.Back):
			return m, messages.Navigate(messages.RouteCredentials)
		case key.Matches(msg, keys.Process):
			return m, m.processComments()
		case key.Matches(msg, keys.Submit):
			return m.submitAnswer()
		case key.Matches(msg, keys.Logs):
			return m, m.fetchLogs()
		case key.Matches(msg, keys.Export):
			return m.composeLogFile()
		case key.Matches(msg, keys.PageUp):
			m.viewport.PageUp()
			return m, nil
		case key.Matches(msg, keys.PageDown):
			m.viewport.PageDown()
			return m, nil
		}

	case tea.MouseMsg:
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd

	case messages.ProcessResultMsg:
		switch {
		case msg.Err == nil:
			log.Info("comment processing triggered", "message", msg.Resp.Message)
			m.message = msg.Resp.Message
		case api.IsStatusError(msg.Err):
			log.Warn("comment processing rejected", "err", msg.Err)
			m.message = MsgProcessFailed
		default:
			log.Error("comment processing failed", "err", msg.Err)
			m.message = MsgUnreachable
		}
		return m, nil

	case messages.AnswerResultMsg:
		switch {
		case msg.Err == nil:
			log.Info("answer stored", "message", msg.Resp.Message)
			m.message = msg.Resp.Message
			m.commentInput.SetValue("")
			m.answerInput.SetValue("")
		case api.IsStatusError(msg.Err):
			log.Warn("answer rejected", "err", msg.Err)
			m.message = MsgAnswerFailed
		default:
			log.Error("answer update failed", "err", msg.Err)
			m.message = MsgUnreachable
		}
		return m, nil

	case messages.LogsResultMsg:
		switch {
		case msg.Err == nil && msg.Resp.Failed():
			log.Warn("backend has no logs", "message", msg.Resp.Message)
			m.message = msg.Resp.Message
			if m.message == "" {
				m.message = MsgLogsFailed
			}
		case msg.Err == nil:
			log.Debug("logs fetched", "bytes", len(msg.Resp.Logs))
			m.logs = msg.Resp.Logs
			m.message = MsgLogsFetched
			m.refreshLogPane()
		case api.IsStatusError(msg.Err):
			log.Warn("log fetch rejected", "err", msg.Err)
			m.message = MsgLogsFailed
		default:
			log.Error("log fetch failed", "err", msg.Err)
			m.message = MsgUnreachable
		}
		return m, nil

	case messages.ExportResultMsg:
		if msg.Err != nil {
			log.Error("composing log file", "path", msg.Path, "err", msg.Err)
			m.message = MsgExportFailed
			return m, nil
		}
		log.Info("log file written", "path", msg.Path)
		m.message = MsgExported
		return m, nil
	}

	var cmd tea.Cmd
	if m.focusIndex == fieldComment {
		m.commentInput, cmd = m.commentInput.Update(msg)
	} else {
		m.answerInput, cmd = m.answerInput.Update(msg)
	}
	return m, cmd
}

func (m Model) processComments() tea.Cmd {
	client, id := m.client, m.id
	return func() tea.Msg {
		resp, err := client.ProcessComments(context.Background())
		return messages.ProcessResultMsg{ViewID: id, Resp: resp, Err: err}
	}
}

func (m Model) submitAnswer() (Model, tea.Cmd) {
	comment := m.commentInput.Value()
	answer := m.answerInput.Value()
	if comment == "" || answer == "" {
		m.message = MsgAnswerRequired
		return m, nil
	}
	client, id := m.client, m.id
	return m, func() tea.Msg {
		resp, err := client.UpdateUserAnswer(context.Background(), comment, answer)
		return messages.AnswerResultMsg{ViewID: id, Resp: resp, Err: err}
	}
}

func (m Model) fetchLogs() tea.Cmd {
	client, id := m.client, m.id
	return func() tea.Msg {
		resp, err := client.GetLogs(context.Background())
		return messages.LogsResultMsg{ViewID: id, Resp: resp, Err: err}
	}
}

func (m Model) composeLogFile() (Model, tea.Cmd) {
	if m.logs == "" {
		m.message = MsgNoLogs
		return m, nil
	}
	logs, path, id := m.logs, m.exportPath, m.id
	return m, func() tea.Msg {
		err := export.WriteFile(path, logs)
		return messages.ExportResultMsg{ViewID: id, Path: path, Err: err}
	}
}

// stale reports whether msg is a result issued by another view instance.
func stale(id int64, msg tea.Msg) bool {
	switch msg := msg.(type) {
	case messages.ProcessResultMsg:
		return msg.ViewID != id
	case messages.AnswerResultMsg:
		return msg.ViewID != id
	case messages.LogsResultMsg:
		return msg.ViewID != id
	case messages.ExportResultMsg:
		return msg.ViewID != id
	}
	return false
}

func (m *Model) toggleFocus() tea.Cmd {
	if m.focusIndex == fieldComment {
		m.focusIndex = fieldAnswer
		m.commentInput.Blur()
		return m.answerInput.Focus()
	}
	m.focusIndex = fieldComment
	m.answerInput.Blur()
	return m.commentInput.Focus()
}

func (m *Model) refreshLogPane() {
	if m.logs == "" {
		m.viewport.SetContent(theme.Dim.Render(emptyLogPane))
		return
	}
	m.viewport.SetContent(render.Wrap(m.logs, m.viewport.Width))
}

// View renders the operations view.
func (m Model) View() string {
	var sb strings.Builder

	sb.WriteString(theme.Title.Render("Operations"))
	sb.WriteString("\n")
	sb.WriteString(theme.Label.Render("Comment:") + " " + m.commentInput.View())
	sb.WriteString("\n\n")
	sb.WriteString(theme.Label.Render("Answer:") + " " + m.answerInput.View())
	sb.WriteString("\n\n")

	if m.message != "" {
		sb.WriteString(messageStyle(m.message).Render(m.message))
	}
	sb.WriteString("\n\n")

	sb.WriteString(theme.Label.Render("Logs:"))
	if m.logs != "" {
		sb.WriteString(theme.Dim.Render(" " + scrollInfo(m.viewport)))
	}
	sb.WriteString("\n")
	sb.WriteString(theme.LogPane.Width(m.viewport.Width + 2).Render(m.viewport.View()))
	sb.WriteString("\n")
	sb.WriteString(m.help.View(keys))

	return lipgloss.NewStyle().Padding(0, 1).Render(sb.String())
}

func messageStyle(msg string) lipgloss.Style {
	switch msg {
	case MsgUnreachable, MsgProcessFailed, MsgAnswerRequired, MsgAnswerFailed,
		MsgLogsFailed, MsgNoLogs, MsgExportFailed:
		return theme.Error
	case MsgLogsFetched, MsgExported:
		return theme.Success
	}
	return theme.Message
}

func scrollInfo(vp viewport.Model) string {
	return fmt.Sprintf("%3.f%%", vp.ScrollPercent()*100)
}
