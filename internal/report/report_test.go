package report

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pratik-anurag/procflag/internal/model"
)

var sample = []model.Flag{
	{Rule: model.RuleParentShell, PID: 100, Name: "powershell.exe", Parent: "EXCEL.EXE", Exe: `C:\Users\bob\Downloads\x.exe`},
	{Rule: model.RuleShellInUserDir, PID: 100, Name: "powershell.exe", Parent: "EXCEL.EXE", Exe: `C:\Users\bob\Downloads\x.exe`},
}

func TestWriteConsoleEmpty(t *testing.T) {
	var b bytes.Buffer
	require.NoError(t, WriteConsole(&b, nil))
	assert.Equal(t, NoFlagsMsg+"\n", b.String())
}

func TestWriteConsoleRows(t *testing.T) {
	var b bytes.Buffer
	require.NoError(t, WriteConsole(&b, sample))
	assert.Equal(t,
		"type,pid,name,parent,exe\n"+
			"parent_shell,100,powershell.exe,EXCEL.EXE,C:\\Users\\bob\\Downloads\\x.exe\n"+
			"shell_in_userdir,100,powershell.exe,EXCEL.EXE,C:\\Users\\bob\\Downloads\\x.exe\n",
		b.String())
}

func TestWriteConsoleDoesNotEscape(t *testing.T) {
	var b bytes.Buffer
	flags := []model.Flag{{Rule: model.RuleTempWithNet, PID: 1, Name: "a", Exe: "/tmp/a,b"}}
	require.NoError(t, WriteConsole(&b, flags))
	assert.Contains(t, b.String(), "temp_with_net,1,a,,/tmp/a,b\n")
}

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestWriteCSVEmptyHasHeaderOnly(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "results")

	path, err := WriteCSV(dir, nil)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, FileName), path)

	rows := readCSV(t, path)
	assert.Equal(t, [][]string{model.Header}, rows)
}

func TestWriteCSVQuotesAndOverwrites(t *testing.T) {
	dir := t.TempDir()
	withComma := []model.Flag{{Rule: model.RuleTempWithNet, PID: 7, Name: "x", Exe: "/tmp/a,b"}}

	_, err := WriteCSV(dir, sample)
	require.NoError(t, err)
	path, err := WriteCSV(dir, withComma)
	require.NoError(t, err)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"/tmp/a,b"`)

	rows := readCSV(t, path)
	require.Len(t, rows, 2, "second run replaces the first")
	assert.Equal(t, []string{"temp_with_net", "7", "x", "", "/tmp/a,b"}, rows[1])
}

func TestWriteCSVUnwritableDir(t *testing.T) {
	file := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(file, nil, 0o644))

	_, err := WriteCSV(filepath.Join(file, "results"), sample)
	assert.Error(t, err)
}

func TestWrittenMsg(t *testing.T) {
	assert.Equal(t, "[*] CSV written to results/process_flags.csv", WrittenMsg(filepath.Join("results", FileName)))
}
