package proc

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
)

// commLen is the kernel's TASK_COMM_LEN minus the trailing NUL.
const commLen = 15

// parseStat extracts the command name and parent pid from the content of
// /proc/<pid>/stat. The name sits in parentheses and may itself contain
// spaces or parentheses.
func parseStat(raw string) (comm string, ppid int32, err error) {
	open := strings.Index(raw, "(")
	end := strings.LastIndex(raw, ")")
	if open == -1 || end == -1 || end < open {
		return "", 0, fmt.Errorf("invalid stat format")
	}
	comm = raw[open+1 : end]
	fields := strings.Fields(raw[end+1:])
	if len(fields) < 2 {
		return "", 0, fmt.Errorf("invalid stat format")
	}
	p, err := strconv.ParseInt(fields[1], 10, 32)
	if err != nil {
		return "", 0, fmt.Errorf("invalid ppid %q: %w", fields[1], err)
	}
	return comm, int32(p), nil
}

// displayName picks the process name. comm is truncated by the kernel, so
// when it fills the buffer and prefixes the exe basename the basename wins.
func displayName(comm, exe string) string {
	if len(comm) < commLen || exe == "" {
		return comm
	}
	base := filepath.Base(exe)
	if strings.HasPrefix(base, comm) {
		return base
	}
	return comm
}

// cleanExe drops the " (deleted)" marker the kernel appends to the exe link
// of a binary unlinked after exec.
func cleanExe(link string) string {
	link = strings.TrimRight(link, "\x00")
	return strings.TrimSuffix(link, " (deleted)")
}
