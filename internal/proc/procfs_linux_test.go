//go:build linux

package proc

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeProc struct {
	pid  string
	stat string
	exe  string
}

func fakeProcfs(t *testing.T, procs ...fakeProc) string {
	t.Helper()
	root := t.TempDir()
	for _, p := range procs {
		dir := filepath.Join(root, p.pid)
		require.NoError(t, os.MkdirAll(dir, 0o755))
		if p.stat != "" {
			require.NoError(t, os.WriteFile(filepath.Join(dir, "stat"), []byte(p.stat), 0o644))
		}
		if p.exe != "" {
			require.NoError(t, os.Symlink(p.exe, filepath.Join(dir, "exe")))
		}
	}
	require.NoError(t, os.MkdirAll(filepath.Join(root, "sys"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "uptime"), []byte("1 1"), 0o644))
	return root
}

func TestProcfsProcesses(t *testing.T) {
	root := fakeProcfs(t,
		fakeProc{pid: "100", stat: "100 (powershell.exe) S 50 100 100 0 -1", exe: "/home/bob/Downloads/x.exe"},
		fakeProc{pid: "20", stat: "20 (kworker/0:1) I 2 0 0 0 -1"},
		fakeProc{pid: "3", stat: "3 (payload) S 1 3 3 0 -1", exe: "/var/tmp/payload (deleted)"},
		fakeProc{pid: "77"}, // exited: no stat
	)
	src := newProcfs(root)

	procs, err := src.Processes()
	require.NoError(t, err)
	require.Len(t, procs, 3)

	assert.Equal(t, int32(3), procs[0].PID, "sorted numerically")
	assert.Equal(t, "/var/tmp/payload", procs[0].Exe)
	assert.Equal(t, int32(20), procs[1].PID)
	assert.Empty(t, procs[1].Exe, "kernel thread has no exe")
	assert.Equal(t, int32(2), procs[1].PPID)

	assert.Equal(t, int32(100), procs[2].PID)
	assert.Equal(t, "powershell.exe", procs[2].Name)
	assert.Equal(t, int32(50), procs[2].PPID)
	assert.NotEmpty(t, procs[2].User)
}

func TestProcfsProcessName(t *testing.T) {
	root := fakeProcfs(t, fakeProc{pid: "50", stat: "50 (EXCEL.EXE) S 1 50 50 0 -1"})
	src := newProcfs(root)

	name, err := src.ProcessName(50)
	require.NoError(t, err)
	assert.Equal(t, "EXCEL.EXE", name)

	_, err = src.ProcessName(51)
	assert.True(t, IsSkip(err))
	assert.ErrorIs(t, err, ErrGone)
}

func TestProcfsMissingRoot(t *testing.T) {
	_, err := newProcfs(filepath.Join(t.TempDir(), "nope")).Processes()
	assert.Error(t, err)
}
