//go:build darwin

package proc

import (
	"errors"
	"fmt"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"

	"golang.org/x/sys/unix"

	"github.com/pratik-anurag/procflag/internal/model"
	"github.com/pratik-anurag/procflag/internal/sockets"
)

// System returns the ps/lsof-backed Source.
func System() (Source, error) {
	if _, err := exec.LookPath("ps"); err != nil {
		return nil, fmt.Errorf("ps not found: %w", err)
	}
	return psSource{}, nil
}

type psSource struct{}

func (psSource) Processes() ([]model.ProcessView, error) {
	out, err := exec.Command("ps", "-axo", "pid=,ppid=,user=,comm=").Output()
	if err != nil {
		return nil, fmt.Errorf("ps: %w", err)
	}
	var procs []model.ProcessView
	for _, line := range strings.Split(string(out), "\n") {
		if v, ok := parsePsLine(line); ok {
			procs = append(procs, v)
		}
	}
	return procs, nil
}

func (psSource) ProcessName(pid int32) (string, error) {
	out, err := exec.Command("ps", "-p", strconv.Itoa(int(pid)), "-o", "comm=").Output()
	name := strings.TrimSpace(string(out))
	if name == "" {
		if err == nil {
			err = errors.New("empty ps output")
		}
		return "", gone("name", pid, err)
	}
	return filepath.Base(name), nil
}

func (psSource) Connections(pid int32) ([]model.Conn, error) {
	if err := alive(pid); err != nil {
		return nil, err
	}
	conns, err := sockets.ForPID(pid)
	if err != nil {
		return nil, classify("connections", pid, err)
	}
	return conns, nil
}

// alive probes pid with signal 0. EPERM still means the process exists.
func alive(pid int32) error {
	err := unix.Kill(int(pid), 0)
	switch {
	case err == nil, errors.Is(err, unix.EPERM):
		return nil
	case errors.Is(err, unix.ESRCH):
		return gone("connections", pid, err)
	default:
		return err
	}
}
