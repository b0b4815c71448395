//go:build !linux && !darwin && !windows

package sockets

import (
	"fmt"

	"github.com/pratik-anurag/procflag/internal/model"
)

func forPID(pid int32) ([]model.Conn, error) {
	return nil, fmt.Errorf("sockets: per-process connections unsupported on this OS")
}
