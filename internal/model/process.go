package model

import (
	"net"
	"strconv"
)

// ProcessView is a read-only view of one process taken at scan time.
// Empty Exe and zero PPID mean the value could not be read.
type ProcessView struct {
	PID  int32  `json:"pid"`
	Name string `json:"name"`
	Exe  string `json:"exe,omitempty"`
	PPID int32  `json:"ppid,omitempty"`
	User string `json:"user,omitempty"`
}

func (p ProcessView) HasParent() bool {
	return p.PPID > 0
}

// Conn is one inet-family socket owned by a process.
type Conn struct {
	Proto      string `json:"proto"` // tcp|udp
	Family     string `json:"family"`
	LocalIP    string `json:"local_ip,omitempty"`
	LocalPort  int    `json:"local_port,omitempty"`
	RemoteIP   string `json:"remote_ip,omitempty"`
	RemotePort int    `json:"remote_port,omitempty"`
	State      string `json:"state,omitempty"`
	PID        int32  `json:"pid,omitempty"`
}

// HasRemote reports whether the socket has a peer. Listening and unconnected
// sockets carry a zero remote port.
func (c Conn) HasRemote() bool {
	return c.RemoteIP != "" && c.RemotePort > 0
}

// RemoteAddr returns "ip:port" of the peer, or "" when there is none.
func (c Conn) RemoteAddr() string {
	if !c.HasRemote() {
		return ""
	}
	return net.JoinHostPort(c.RemoteIP, strconv.Itoa(c.RemotePort))
}
