// Package tui is an interactive browser over the flags of one scan.
package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/pratik-anurag/procflag/internal/model"
	"github.com/pratik-anurag/procflag/internal/report"
	"github.com/pratik-anurag/procflag/internal/scan"
)

var (
	baseStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("240"))
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
	helpStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	detailsStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("86")).
			Padding(0, 1)
)

// chrome is the number of terminal lines used around the table.
const chrome = 9

type browser struct {
	res         scan.Result
	table       table.Model
	filter      int // index into filters
	visible     []model.Flag
	showDetails bool
	height      int
}

// filters cycles through "all" then each rule id.
var filters = append([]model.RuleID{""}, model.Rules...)

func newModel(res scan.Result) browser {
	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "Type", Width: 18},
			{Title: "PID", Width: 8},
			{Title: "Name", Width: 20},
			{Title: "Parent", Width: 20},
			{Title: "Exe", Width: 60},
		}),
		table.WithFocused(true),
		table.WithHeight(10),
	)
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(false)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(true)
	t.SetStyles(s)

	m := browser{res: res, table: t}
	m.updateRows()
	return m
}

func (m browser) Init() tea.Cmd {
	return nil
}

func (m browser) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "f", "tab":
			m.filter = (m.filter + 1) % len(filters)
			m.updateRows()
			return m, nil
		case "enter":
			m.showDetails = !m.showDetails
			return m, nil
		}
	case tea.WindowSizeMsg:
		m.height = msg.Height
		if h := m.height - chrome; h > 3 {
			m.table.SetHeight(h)
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m *browser) updateRows() {
	want := filters[m.filter]
	m.visible = make([]model.Flag, 0, len(m.res.Flags))
	rows := make([]table.Row, 0, len(m.res.Flags))
	for _, f := range m.res.Flags {
		if want != "" && f.Rule != want {
			continue
		}
		m.visible = append(m.visible, f)
		rows = append(rows, table.Row{
			string(f.Rule),
			strconv.Itoa(int(f.PID)),
			f.Name,
			orDash(f.Parent),
			orDash(f.Exe),
		})
	}
	m.table.SetRows(rows)
	m.table.SetCursor(0)
}

func (m browser) View() string {
	var b strings.Builder
	filter := "all"
	if want := filters[m.filter]; want != "" {
		filter = string(want)
	}
	b.WriteString(titleStyle.Render(fmt.Sprintf("procflag  %d scanned, %d skipped, %d flags  [filter: %s]",
		m.res.Scanned, m.res.Skipped, len(m.res.Flags), filter)))
	b.WriteString("\n")

	if len(m.visible) == 0 {
		b.WriteString("\n  " + report.NoFlagsMsg + "\n")
	} else {
		b.WriteString(baseStyle.Render(m.table.View()))
		b.WriteString("\n")
	}

	if m.showDetails {
		if f, ok := m.selected(); ok {
			b.WriteString(detailsStyle.Render(details(f)))
			b.WriteString("\n")
		}
	}
	b.WriteString(helpStyle.Render("↑/↓ move • enter details • f filter • q quit"))
	b.WriteString("\n")
	return b.String()
}

func (m browser) selected() (model.Flag, bool) {
	i := m.table.Cursor()
	if i < 0 || i >= len(m.visible) {
		return model.Flag{}, false
	}
	return m.visible[i], true
}

func details(f model.Flag) string {
	return fmt.Sprintf("rule:   %s\npid:    %d\nname:   %s\nparent: %s\nexe:    %s",
		f.Rule, f.PID, f.Name, orDash(f.Parent), orDash(f.Exe))
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

// Run opens the browser on the terminal and blocks until the user quits.
func Run(res scan.Result) error {
	_, err := tea.NewProgram(newModel(res), tea.WithAltScreen()).Run()
	return err
}
