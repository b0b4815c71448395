//go:build linux

package sockets

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/pratik-anurag/procflag/internal/model"
)

var procNetTables = []struct {
	file  string
	proto string
	ipv6  bool
}{
	{"tcp", "tcp", false},
	{"tcp6", "tcp", true},
	{"udp", "udp", false},
	{"udp6", "udp", true},
}

func forPID(pid int32) ([]model.Conn, error) {
	base := filepath.Join("/proc", strconv.Itoa(int(pid)))
	inodes, err := socketInodes(filepath.Join(base, "fd"))
	if err != nil {
		return nil, err
	}
	if len(inodes) == 0 {
		return nil, nil
	}

	var conns []model.Conn
	for _, t := range procNetTables {
		// per-process path so sockets in other network namespaces resolve
		f, err := os.Open(filepath.Join(base, "net", t.file))
		if err != nil {
			if os.IsNotExist(err) {
				if _, serr := os.Stat(base); serr != nil {
					return nil, fmt.Errorf("pid %d: %w", pid, serr)
				}
				// table absent (e.g. no ipv6)
				continue
			}
			return nil, fmt.Errorf("pid %d: %w", pid, err)
		}
		conns = append(conns, parseProcNet(f, t.proto, t.ipv6, inodes, pid)...)
		f.Close()
	}
	return conns, nil
}

func socketInodes(fdDir string) (map[string]bool, error) {
	entries, err := os.ReadDir(fdDir)
	if err != nil {
		return nil, fmt.Errorf("list fds: %w", err)
	}
	inodes := make(map[string]bool)
	for _, e := range entries {
		link, err := os.Readlink(filepath.Join(fdDir, e.Name()))
		if err != nil {
			// fd closed since ReadDir
			continue
		}
		if inode, ok := socketInode(link); ok {
			inodes[inode] = true
		}
	}
	return inodes, nil
}
