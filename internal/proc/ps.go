package proc

import (
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pratik-anurag/procflag/internal/model"
)

// parsePsLine parses one line of `ps -axo pid=,ppid=,user=,comm=`. comm is
// the last column and may contain spaces.
//
//	  412     1 root             /usr/sbin/syslogd
//	 2210   980 me               /Applications/Microsoft Word.app/Contents/MacOS/Microsoft Word
func parsePsLine(line string) (model.ProcessView, bool) {
	fields := strings.Fields(line)
	if len(fields) < 4 {
		return model.ProcessView{}, false
	}
	pid, err := strconv.ParseInt(fields[0], 10, 32)
	if err != nil {
		return model.ProcessView{}, false
	}
	ppid, err := strconv.ParseInt(fields[1], 10, 32)
	if err != nil {
		return model.ProcessView{}, false
	}
	comm := commColumn(line, 3)
	v := model.ProcessView{
		PID:  int32(pid),
		PPID: int32(ppid),
		User: fields[2],
		Name: filepath.Base(comm),
	}
	if strings.HasPrefix(comm, "/") {
		v.Exe = comm
	}
	return v, true
}

// commColumn returns the rest of line after skipping n whitespace-separated
// columns.
func commColumn(line string, n int) string {
	s := strings.TrimSpace(line)
	for i := 0; i < n; i++ {
		j := strings.IndexAny(s, " \t")
		if j < 0 {
			return ""
		}
		s = strings.TrimLeft(s[j:], " \t")
	}
	return s
}
