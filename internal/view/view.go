// Package view renders a recorded command log for human inspection: an
// interactive Bubble Tea list when stdout is a terminal, a plain
// lipgloss-styled listing otherwise.
package view

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/cairnforge/envrex/internal/command"
	"github.com/cairnforge/envrex/internal/session"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	kindStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
)

// item adapts a command.Command to the bubbles/list.Item interface.
type item command.Command

func (i item) Title() string {
	c := command.Command(i)
	return kindStyle.Render(c.Kind().String())
}

func (i item) Description() string {
	return command.Command(i).String()
}

func (i item) FilterValue() string {
	return command.Command(i).String()
}

// Model is the Bubble Tea model backing the interactive browser.
type Model struct {
	list  list.Model
	title string
}

// NewModel builds a Model from a command log, titled with the session's
// activation ID.
func NewModel(log []command.Command, sess session.Session, width, height int) Model {
	items := make([]list.Item, len(log))
	for i, c := range log {
		items[i] = item(c)
	}
	l := list.New(items, list.NewDefaultDelegate(), width, height)
	l.Title = fmt.Sprintf("envrex %s", sess.ID)
	l.Styles.Title = titleStyle
	return Model{list: l, title: l.Title}
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.list.SetSize(msg.Width, msg.Height)
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		}
	}
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	return m.list.View()
}

// IsInteractive reports whether out is a terminal (golang.org/x/term).
func IsInteractive(out io.Writer) bool {
	f, ok := out.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// RenderPlain writes a non-interactive, lipgloss-styled listing of log
// to w, for use when stdout is not a terminal.
func RenderPlain(w io.Writer, log []command.Command, sess session.Session) error {
	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("envrex %s", sess.ID)))
	b.WriteString("\n")
	for _, c := range log {
		b.WriteString(kindStyle.Render(c.Kind().String()))
		b.WriteString("  ")
		b.WriteString(c.String())
		b.WriteString("\n")
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// Run launches the interactive browser on the current terminal.
func Run(log []command.Command, sess session.Session) error {
	m := NewModel(log, sess, 80, 24)
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
