// Package proc reads the live process table.
//
// A Source hands out one best-effort snapshot of all processes plus two
// per-pid queries. Per-pid queries fail with *SkipError when the process is
// gone or not accessible; callers drop that process and move on.
package proc

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/pratik-anurag/procflag/internal/model"
)

type Source interface {
	// Processes lists every process visible at call time. Fields that could
	// not be read are left empty.
	Processes() ([]model.ProcessView, error)
	// ProcessName resolves pid to its current executable name.
	ProcessName(pid int32) (string, error)
	// Connections lists the inet sockets currently held by pid.
	Connections(pid int32) ([]model.Conn, error)
}

var (
	ErrGone   = errors.New("process no longer exists")
	ErrDenied = errors.New("access denied")
)

// SkipError marks a per-process failure that should drop only that process
// from a scan.
type SkipError struct {
	PID int32
	Op  string
	Err error
}

func (e *SkipError) Error() string {
	return fmt.Sprintf("%s pid %d: %v", e.Op, e.PID, e.Err)
}

func (e *SkipError) Unwrap() error { return e.Err }

// IsSkip reports whether err carries a *SkipError.
func IsSkip(err error) bool {
	var s *SkipError
	return errors.As(err, &s)
}

func gone(op string, pid int32, cause error) error {
	return &SkipError{PID: pid, Op: op, Err: fmt.Errorf("%w: %w", ErrGone, cause)}
}

func denied(op string, pid int32, cause error) error {
	return &SkipError{PID: pid, Op: op, Err: fmt.Errorf("%w: %w", ErrDenied, cause)}
}

// classify converts filesystem-style errors into SkipErrors and leaves
// everything else untouched.
func classify(op string, pid int32, err error) error {
	switch {
	case err == nil:
		return nil
	case IsSkip(err):
		return err
	case errors.Is(err, fs.ErrNotExist):
		return gone(op, pid, err)
	case errors.Is(err, fs.ErrPermission):
		return denied(op, pid, err)
	default:
		return err
	}
}
