// Package sockets lists the inet sockets owned by a single process.
package sockets

import (
	"fmt"

	"github.com/pratik-anurag/procflag/internal/model"
)

// ForPID returns the tcp/udp (v4 and v6) sockets held by pid. Errors from the
// underlying OS query are wrapped, so callers can test for fs.ErrNotExist and
// fs.ErrPermission.
func ForPID(pid int32) ([]model.Conn, error) {
	if pid <= 0 {
		return nil, fmt.Errorf("invalid pid: %d", pid)
	}
	return forPID(pid)
}
