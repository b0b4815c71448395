package sockets

import (
	"regexp"
	"strings"

	"github.com/pratik-anurag/procflag/internal/model"
)

// lsof -nP -a -p 2210 -i
// api  2210 me  6u  IPv4 0x1a2b  0t0  TCP 127.0.0.1:50432->127.0.0.1:5432 (ESTABLISHED)
// api  2210 me  9u  IPv4 0x1a2c  0t0  UDP *:5353
var reLsof = regexp.MustCompile(`^(?P<cmd>\S+)\s+(?P<pid>\d+)\s+(?P<user>\S+)\s+.*\s(?P<proto>TCP|UDP)\s+(?P<addr>\S+)(?:\s+\((?P<state>[^)]+)\))?\s*$`)

type lsofLine struct {
	cmd   string
	user  string
	proto string
	addr  string
	state string
	pid   int
}

func parseLsofLine(line string) (lsofLine, bool) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "COMMAND") {
		return lsofLine{}, false
	}
	m := reLsof.FindStringSubmatch(line)
	if m == nil {
		return lsofLine{}, false
	}
	pid := parseInt(m[reLsof.SubexpIndex("pid")])
	if pid <= 0 {
		return lsofLine{}, false
	}
	return lsofLine{
		cmd:   m[reLsof.SubexpIndex("cmd")],
		user:  m[reLsof.SubexpIndex("user")],
		proto: strings.ToLower(m[reLsof.SubexpIndex("proto")]),
		addr:  m[reLsof.SubexpIndex("addr")],
		state: strings.ToUpper(strings.TrimSpace(m[reLsof.SubexpIndex("state")])),
		pid:   pid,
	}, true
}

func parseLsofConn(addr string) (lip string, lp int, rip string, rp int) {
	parts := strings.Split(addr, "->")
	if len(parts) != 2 {
		lip, lp = splitHostPort(addr)
		return
	}
	lip, lp = splitHostPort(parts[0])
	rip, rp = splitHostPort(parts[1])
	return
}

// parseLsof turns lsof output into sockets owned by pid.
func parseLsof(out []byte, pid int32) []model.Conn {
	var conns []model.Conn
	for _, line := range splitLines(out) {
		parsed, ok := parseLsofLine(line)
		if !ok || int32(parsed.pid) != pid {
			continue
		}
		lip, lp, rip, rp := parseLsofConn(parsed.addr)
		conns = append(conns, model.Conn{
			Proto:      parsed.proto,
			Family:     familyFromIP(lip),
			LocalIP:    lip,
			LocalPort:  lp,
			RemoteIP:   rip,
			RemotePort: rp,
			State:      parsed.state,
			PID:        pid,
		})
	}
	return conns
}
