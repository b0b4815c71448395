//go:build darwin

package sockets

import (
	"errors"
	"os/exec"
	"strconv"

	"github.com/pratik-anurag/procflag/internal/model"
)

func forPID(pid int32) ([]model.Conn, error) {
	args := []string{"-nP", "-a", "-p", strconv.Itoa(int(pid)), "-i"}
	out, err := exec.Command("lsof", args...).Output()
	if err != nil {
		// lsof exits 1 when nothing matched
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && len(out) == 0 {
			return nil, nil
		}
		return nil, err
	}
	return parseLsof(out, pid), nil
}
