//go:build windows

package proc

import (
	"errors"
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"

	"github.com/pratik-anurag/procflag/internal/model"
	"github.com/pratik-anurag/procflag/internal/sockets"
)

// System returns the Toolhelp32-backed Source.
func System() (Source, error) {
	return toolhelp{}, nil
}

type toolhelp struct{}

func (toolhelp) Processes() ([]model.ProcessView, error) {
	var procs []model.ProcessView
	err := walkSnapshot(func(e *windows.ProcessEntry32) bool {
		pid := int32(e.ProcessID)
		exe, user := queryProcess(e.ProcessID)
		procs = append(procs, model.ProcessView{
			PID:  pid,
			Name: windows.UTF16ToString(e.ExeFile[:]),
			Exe:  exe,
			PPID: int32(e.ParentProcessID),
			User: user,
		})
		return true
	})
	if err != nil {
		return nil, err
	}
	return procs, nil
}

func (toolhelp) ProcessName(pid int32) (string, error) {
	name := ""
	found := false
	err := walkSnapshot(func(e *windows.ProcessEntry32) bool {
		if int32(e.ProcessID) != pid {
			return true
		}
		name = windows.UTF16ToString(e.ExeFile[:])
		found = true
		return false
	})
	if err != nil {
		return "", err
	}
	if !found {
		return "", gone("name", pid, errors.New("not in process snapshot"))
	}
	return name, nil
}

func (toolhelp) Connections(pid int32) ([]model.Conn, error) {
	h, err := windows.OpenProcess(windows.PROCESS_QUERY_LIMITED_INFORMATION, false, uint32(pid))
	if err != nil {
		return nil, classifyWin("connections", pid, err)
	}
	windows.CloseHandle(h)

	conns, err := sockets.ForPID(pid)
	if err != nil {
		return nil, classify("connections", pid, err)
	}
	return conns, nil
}

// walkSnapshot calls fn for every process in a fresh Toolhelp32 snapshot
// until fn returns false.
func walkSnapshot(fn func(*windows.ProcessEntry32) bool) error {
	snap, err := windows.CreateToolhelp32Snapshot(windows.TH32CS_SNAPPROCESS, 0)
	if err != nil {
		return fmt.Errorf("process snapshot: %w", err)
	}
	defer windows.CloseHandle(snap)

	var e windows.ProcessEntry32
	e.Size = uint32(unsafe.Sizeof(e))
	if err := windows.Process32First(snap, &e); err != nil {
		return fmt.Errorf("process snapshot: %w", err)
	}
	for {
		if !fn(&e) {
			return nil
		}
		if err := windows.Process32Next(snap, &e); err != nil {
			if errors.Is(err, windows.ERROR_NO_MORE_FILES) {
				return nil
			}
			return fmt.Errorf("process snapshot: %w", err)
		}
	}
}

// queryProcess reads the image path and owning account. Either may be empty
// for protected or already-exited processes.
func queryProcess(pid uint32) (exe, user string) {
	h, err := windows.OpenProcess(windows.PROCESS_QUERY_LIMITED_INFORMATION, false, pid)
	if err != nil {
		return "", ""
	}
	defer windows.CloseHandle(h)

	buf := make([]uint16, windows.MAX_LONG_PATH)
	size := uint32(len(buf))
	if err := windows.QueryFullProcessImageName(h, 0, &buf[0], &size); err == nil {
		exe = windows.UTF16ToString(buf[:size])
	}

	var tok windows.Token
	if err := windows.OpenProcessToken(h, windows.TOKEN_QUERY, &tok); err != nil {
		return exe, ""
	}
	defer tok.Close()
	tu, err := tok.GetTokenUser()
	if err != nil {
		return exe, ""
	}
	account, domain, _, err := tu.User.Sid.LookupAccount("")
	if err != nil {
		return exe, tu.User.Sid.String()
	}
	if domain != "" {
		return exe, domain + `\` + account
	}
	return exe, account
}

func classifyWin(op string, pid int32, err error) error {
	switch {
	case errors.Is(err, windows.ERROR_INVALID_PARAMETER):
		// OpenProcess reports a dead pid as an invalid parameter
		return gone(op, pid, err)
	case errors.Is(err, windows.ERROR_ACCESS_DENIED):
		return denied(op, pid, err)
	default:
		return classify(op, pid, err)
	}
}
