package sockets

import (
	"bufio"
	"encoding/hex"
	"io"
	"net"
	"strconv"
	"strings"

	"github.com/pratik-anurag/procflag/internal/model"
)

var tcpStates = map[int64]string{
	0x01: "ESTABLISHED",
	0x02: "SYN_SENT",
	0x03: "SYN_RECV",
	0x04: "FIN_WAIT1",
	0x05: "FIN_WAIT2",
	0x06: "TIME_WAIT",
	0x07: "CLOSE",
	0x08: "CLOSE_WAIT",
	0x09: "LAST_ACK",
	0x0A: "LISTEN",
	0x0B: "CLOSING",
}

// parseProcNet reads a /proc/<pid>/net/{tcp,tcp6,udp,udp6} table and keeps
// the rows whose inode is in inodes.
//
//	sl  local_address rem_address   st tx_queue:rx_queue ... uid timeout inode
//	 0: 0100007F:1538 00000000:0000 0A 00000000:00000000 ... 1000 0 23456 ...
func parseProcNet(r io.Reader, proto string, ipv6 bool, inodes map[string]bool, pid int32) []model.Conn {
	var conns []model.Conn
	scanner := bufio.NewScanner(r)
	scanner.Scan() // header

	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) < 10 {
			continue
		}
		if !inodes[fields[9]] {
			continue
		}
		lip, lp := parseHexAddr(fields[1], ipv6)
		rip, rp := parseHexAddr(fields[2], ipv6)

		state := ""
		if proto == "tcp" {
			st, _ := strconv.ParseInt(fields[3], 16, 64)
			state = tcpStates[st]
		}
		family := "ipv4"
		if ipv6 {
			family = "ipv6"
		}
		conns = append(conns, model.Conn{
			Proto:      proto,
			Family:     family,
			LocalIP:    lip,
			LocalPort:  lp,
			RemoteIP:   rip,
			RemotePort: rp,
			State:      state,
			PID:        pid,
		})
	}
	return conns
}

func parseHexAddr(raw string, ipv6 bool) (string, int) {
	parts := strings.Split(raw, ":")
	if len(parts) != 2 {
		return "", 0
	}
	port, _ := strconv.ParseInt(parts[1], 16, 32)

	b, err := hex.DecodeString(parts[0])
	if err != nil {
		return "", int(port)
	}

	if ipv6 {
		if len(b) != 16 {
			return "", int(port)
		}
		// stored as four little-endian 32-bit words
		ip := make(net.IP, 16)
		for i := 0; i < 4; i++ {
			ip[i*4+0] = b[i*4+3]
			ip[i*4+1] = b[i*4+2]
			ip[i*4+2] = b[i*4+1]
			ip[i*4+3] = b[i*4+0]
		}
		return ip.String(), int(port)
	}

	if len(b) != 4 {
		return "", int(port)
	}
	return net.IPv4(b[3], b[2], b[1], b[0]).String(), int(port)
}

// socketInode extracts the inode from an fd link target like "socket:[23456]".
func socketInode(link string) (string, bool) {
	if !strings.HasPrefix(link, "socket:[") || !strings.HasSuffix(link, "]") {
		return "", false
	}
	return link[len("socket:[") : len(link)-1], true
}
