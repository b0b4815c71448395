//go:build linux

package proc

import (
	"fmt"
	"os"
	"os/user"
	"path/filepath"
	"sort"
	"strconv"

	"golang.org/x/sys/unix"

	"github.com/pratik-anurag/procflag/internal/model"
	"github.com/pratik-anurag/procflag/internal/sockets"
)

// System returns the procfs-backed Source.
func System() (Source, error) {
	return newProcfs("/proc"), nil
}

type procfs struct {
	root  string
	users map[uint32]string
}

func newProcfs(root string) *procfs {
	return &procfs{root: root, users: map[uint32]string{}}
}

func (p *procfs) Processes() ([]model.ProcessView, error) {
	entries, err := os.ReadDir(p.root)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", p.root, err)
	}

	var pids []int
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		pid, err := strconv.Atoi(e.Name())
		if err != nil || pid <= 0 {
			continue
		}
		pids = append(pids, pid)
	}
	sort.Ints(pids)

	out := make([]model.ProcessView, 0, len(pids))
	for _, pid := range pids {
		v, err := p.read(int32(pid))
		if err != nil {
			// exited between ReadDir and here
			continue
		}
		out = append(out, v)
	}
	return out, nil
}

func (p *procfs) read(pid int32) (model.ProcessView, error) {
	dir := p.pidDir(pid)
	comm, ppid, err := p.stat(pid)
	if err != nil {
		return model.ProcessView{}, err
	}

	exe := ""
	if link, err := os.Readlink(filepath.Join(dir, "exe")); err == nil {
		exe = cleanExe(link)
	}

	return model.ProcessView{
		PID:  pid,
		Name: displayName(comm, exe),
		Exe:  exe,
		PPID: ppid,
		User: p.owner(dir),
	}, nil
}

func (p *procfs) ProcessName(pid int32) (string, error) {
	comm, _, err := p.stat(pid)
	if err != nil {
		return "", classify("name", pid, err)
	}
	exe := ""
	if link, err := os.Readlink(filepath.Join(p.pidDir(pid), "exe")); err == nil {
		exe = cleanExe(link)
	}
	return displayName(comm, exe), nil
}

func (p *procfs) Connections(pid int32) ([]model.Conn, error) {
	conns, err := sockets.ForPID(pid)
	if err != nil {
		return nil, classify("connections", pid, err)
	}
	return conns, nil
}

func (p *procfs) pidDir(pid int32) string {
	return filepath.Join(p.root, strconv.Itoa(int(pid)))
}

func (p *procfs) stat(pid int32) (string, int32, error) {
	raw, err := os.ReadFile(filepath.Join(p.pidDir(pid), "stat"))
	if err != nil {
		return "", 0, err
	}
	return parseStat(string(raw))
}

// owner resolves the account owning the /proc/<pid> directory.
func (p *procfs) owner(dir string) string {
	var st unix.Stat_t
	if err := unix.Stat(dir, &st); err != nil {
		return ""
	}
	if name, ok := p.users[st.Uid]; ok {
		return name
	}
	uid := strconv.FormatUint(uint64(st.Uid), 10)
	name := uid
	if u, err := user.LookupId(uid); err == nil {
		name = u.Username
	}
	p.users[st.Uid] = name
	return name
}
