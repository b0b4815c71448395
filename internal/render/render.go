package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/muesli/termenv"

	"github.com/pratik-anurag/procflag/internal/model"
	"github.com/pratik-anurag/procflag/internal/report"
	"github.com/pratik-anurag/procflag/internal/scan"
)

type Options struct {
	Color bool
	// MaxExe truncates the exe column; 0 keeps full paths.
	MaxExe int
}

type styles struct {
	header lipgloss.Style
	cell   lipgloss.Style
	border lipgloss.Style
	rules  map[model.RuleID]lipgloss.Style
}

func newStyles(opt Options) styles {
	r := lipgloss.NewRenderer(io.Discard)
	if opt.Color {
		r.SetColorProfile(termenv.ANSI256)
	} else {
		r.SetColorProfile(termenv.Ascii)
	}
	cell := r.NewStyle().Padding(0, 1)
	s := styles{
		header: cell,
		cell:   cell,
		border: r.NewStyle(),
		rules:  map[model.RuleID]lipgloss.Style{},
	}
	if !opt.Color {
		return s
	}
	s.header = cell.Bold(true)
	s.border = r.NewStyle().Foreground(lipgloss.Color("240"))
	s.rules[model.RuleParentShell] = cell.Foreground(lipgloss.Color("203"))
	s.rules[model.RuleShellInUserDir] = cell.Foreground(lipgloss.Color("214"))
	s.rules[model.RuleTempWithNet] = cell.Foreground(lipgloss.Color("177"))
	return s
}

// FlagTable renders flags as a bordered table, or a one-line notice when
// there are none.
func FlagTable(flags []model.Flag, opt Options) string {
	if len(flags) == 0 {
		return report.NoFlagsMsg + "\n"
	}
	st := newStyles(opt)

	rows := make([][]string, 0, len(flags))
	for _, f := range flags {
		rows = append(rows, []string{
			string(f.Rule),
			strconv.Itoa(int(f.PID)),
			dash(f.Name),
			dash(f.Parent),
			dash(trunc(f.Exe, opt.MaxExe)),
		})
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(st.border).
		Headers(headers()...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return st.header
			}
			if col == 0 && row >= 0 && row < len(flags) {
				if s, ok := st.rules[flags[row].Rule]; ok {
					return s
				}
			}
			return st.cell
		})
	return t.String() + "\n"
}

// Summary is the one-line footer printed under the table.
func Summary(res scan.Result) string {
	byRule := map[model.RuleID]int{}
	for _, f := range res.Flags {
		byRule[f.Rule]++
	}
	var parts []string
	for _, id := range model.Rules {
		if n := byRule[id]; n > 0 {
			parts = append(parts, fmt.Sprintf("%s=%d", id, n))
		}
	}
	line := fmt.Sprintf("%d processes scanned, %d skipped, %d flags", res.Scanned, res.Skipped, len(res.Flags))
	if len(parts) > 0 {
		line += " (" + strings.Join(parts, " ") + ")"
	}
	return line + "\n"
}

func headers() []string {
	out := make([]string, len(model.Header))
	for i, h := range model.Header {
		out[i] = strings.ToUpper(h)
	}
	return out
}

func dash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

// trunc keeps the tail of long paths, which carries the file name.
func trunc(s string, max int) string {
	if max <= 0 || len(s) <= max {
		return s
	}
	if max <= 3 {
		return s[len(s)-max:]
	}
	return "..." + s[len(s)-(max-3):]
}
