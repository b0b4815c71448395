package sockets

import (
	"bytes"
	"strconv"
	"strings"
)

func splitLines(b []byte) []string {
	s := strings.TrimSpace(string(bytes.TrimSpace(b)))
	if s == "" {
		return nil
	}
	return strings.Split(strings.ReplaceAll(s, "\r\n", "\n"), "\n")
}

func splitHostPort(addr string) (string, int) {
	addr = strings.TrimSpace(addr)

	if strings.HasPrefix(addr, "[") {
		i := strings.LastIndex(addr, "]:")
		if i > 0 {
			ip := addr[1:i]
			p := parseInt(addr[i+2:])
			return ip, p
		}
	}
	if strings.HasPrefix(addr, "*:") {
		p := parseInt(strings.TrimPrefix(addr, "*:"))
		return "", p
	}
	i := strings.LastIndex(addr, ":")
	if i < 0 {
		return addr, 0
	}
	ip := addr[:i]
	p := parseInt(addr[i+1:])
	return ip, p
}

func familyFromIP(ip string) string {
	if strings.Contains(ip, ":") {
		return "ipv6"
	}
	if ip == "" {
		return "unknown"
	}
	return "ipv4"
}

func parseInt(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return n
}
