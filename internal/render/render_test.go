package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pratik-anurag/procflag/internal/model"
	"github.com/pratik-anurag/procflag/internal/scan"
)

var flags = []model.Flag{
	{Rule: model.RuleParentShell, PID: 100, Name: "powershell.exe", Parent: "EXCEL.EXE", Exe: `C:\Users\bob\Downloads\x.exe`},
	{Rule: model.RuleTempWithNet, PID: 7, Name: "payload", Exe: "/var/tmp/payload"},
}

func TestFlagTableEmpty(t *testing.T) {
	assert.Equal(t, "[✓] No simple anomalies flagged.\n", FlagTable(nil, Options{}))
}

func TestFlagTableNoColor(t *testing.T) {
	out := FlagTable(flags, Options{})

	assert.NotContains(t, out, "\x1b[")
	for _, want := range []string{"TYPE", "PID", "PARENT", "parent_shell", "EXCEL.EXE", "temp_with_net", "/var/tmp/payload"} {
		assert.Contains(t, out, want)
	}
	assert.Contains(t, out, "│ -", "missing parent is rendered as a dash")

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Len(t, lines, 6, "top border, header, separator, two rows, bottom border")
}

func TestFlagTableColor(t *testing.T) {
	out := FlagTable(flags, Options{Color: true})
	assert.Contains(t, out, "\x1b[")
	assert.Contains(t, out, "parent_shell")
}

func TestTrunc(t *testing.T) {
	assert.Equal(t, "/var/tmp/payload", trunc("/var/tmp/payload", 0))
	assert.Equal(t, "/var/tmp/payload", trunc("/var/tmp/payload", 40))
	assert.Equal(t, "...payload", trunc("/var/tmp/payload", 10))
	assert.Equal(t, "oad", trunc("/var/tmp/payload", 3))
}

func TestSummary(t *testing.T) {
	res := scan.Result{Scanned: 12, Skipped: 1, Flags: flags}
	assert.Equal(t, "12 processes scanned, 1 skipped, 2 flags (parent_shell=1 temp_with_net=1)\n", Summary(res))
	assert.Equal(t, "0 processes scanned, 0 skipped, 0 flags\n", Summary(scan.Result{}))
}
