package sockets

import (
	"strconv"
	"strings"

	"github.com/pratik-anurag/procflag/internal/model"
)

// netstat -ano
//   Proto  Local Address          Foreign Address        State           PID
//   TCP    10.0.0.5:49712         203.0.113.5:443        ESTABLISHED     4321
//   UDP    0.0.0.0:5353           *:*                                    2345
type netstatLine struct {
	proto string
	laddr string
	raddr string
	state string
	pid   int
}

func parseNetstatLine(line string) (netstatLine, bool) {
	fields := strings.Fields(line)
	if len(fields) < 4 {
		return netstatLine{}, false
	}
	proto := strings.ToLower(fields[0])
	switch {
	case proto == "tcp" && len(fields) == 5:
		pid, err := strconv.Atoi(fields[4])
		if err != nil {
			return netstatLine{}, false
		}
		return netstatLine{proto: proto, laddr: fields[1], raddr: fields[2], state: strings.ToUpper(fields[3]), pid: pid}, true
	case proto == "udp" && len(fields) == 4:
		pid, err := strconv.Atoi(fields[3])
		if err != nil {
			return netstatLine{}, false
		}
		return netstatLine{proto: proto, laddr: fields[1], raddr: fields[2], pid: pid}, true
	}
	return netstatLine{}, false
}

func parseNetstat(out []byte, pid int32) []model.Conn {
	var conns []model.Conn
	for _, line := range splitLines(out) {
		parsed, ok := parseNetstatLine(line)
		if !ok || int32(parsed.pid) != pid {
			continue
		}
		lip, lp := splitHostPort(parsed.laddr)
		rip, rp := splitHostPort(parsed.raddr)
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
