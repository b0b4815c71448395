//go:build windows

package sockets

import (
	"os/exec"

	"github.com/pratik-anurag/procflag/internal/model"
)

func forPID(pid int32) ([]model.Conn, error) {
	out, err := exec.Command("netstat", "-ano").Output()
	if err != nil {
		return nil, err
	}
	return parseNetstat(out, pid), nil
}
