package ui

import (
	"fmt"
	"strings"

	"github.com/bnema/wlidle/internal/emitter"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/stopwatch"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// TokenMsg carries a token produced by the bridge
type TokenMsg emitter.Token

// BridgeDoneMsg reports that the bridge returned
type BridgeDoneMsg struct {
	Err error
}

// ProgramSink feeds bridge tokens into a running program
type ProgramSink struct {
	Program *tea.Program
}

func (s ProgramSink) Emit(token emitter.Token) error {
	s.Program.Send(TokenMsg(token))
	return nil
}

// WatchModel shows the idle state reported by the compositor
type WatchModel struct {
	timeoutMS   uint32
	ready       bool
	idle        bool
	transitions int
	err         error
	width       int

	spinner spinner.Model
	since   stopwatch.Model
}

// NewWatchModel creates a watch model for the given timeout
func NewWatchModel(timeoutMS uint32) *WatchModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = SpinnerStyle

	return &WatchModel{
		timeoutMS: timeoutMS,
		spinner:   s,
		since:     stopwatch.New(),
	}
}

// Err returns the error the bridge stopped with, if any
func (m *WatchModel) Err() error {
	return m.err
}

func (m *WatchModel) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m *WatchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
	case TokenMsg:
		switch emitter.Token(msg) {
		case emitter.Ready:
			m.ready = true
			return m, m.since.Start()
		case emitter.Idle:
			m.idle = true
			m.transitions++
			return m, m.since.Reset()
		case emitter.Resumed:
			m.idle = false
			m.transitions++
			return m, m.since.Reset()
		}
	case BridgeDoneMsg:
		m.err = msg.Err
		return m, tea.Quit
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	default:
		var cmd tea.Cmd
		m.since, cmd = m.since.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *WatchModel) View() string {
	title := TitleStyle.Render("Idle Watch")

	var status string
	switch {
	case m.err != nil:
		status = ErrorStyle.Render(fmt.Sprintf("%s %v", IconError, m.err))
	case !m.ready:
		status = m.spinner.View() + " " + SubtleStyle.Render("Waiting for compositor...")
	case m.idle:
		status = lipgloss.NewStyle().Foreground(ColorIdle).Bold(true).Render("● IDLE")
	default:
		status = lipgloss.NewStyle().Foreground(ColorActive).Bold(true).Render("● ACTIVE")
	}

	details := []string{
		SubtleStyle.Render(fmt.Sprintf("Timeout: %d ms", m.timeoutMS)),
		SubtleStyle.Render(fmt.Sprintf("Transitions: %d", m.transitions)),
	}
	if m.ready {
		details = append(details, SubtleStyle.Render("Since last change: "+m.since.View()))
	}

	controls := MutedStyle.Render("[q] Quit")

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		"",
		status,
		"",
		strings.Join(details, "\n"),
		"",
		controls,
	) + "\n"
}
