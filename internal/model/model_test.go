package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConnRemote(t *testing.T) {
	tests := []struct {
		name string
		c    Conn
		want string
	}{
		{"established v4", Conn{RemoteIP: "203.0.113.5", RemotePort: 443}, "203.0.113.5:443"},
		{"established v6", Conn{RemoteIP: "2001:db8::1", RemotePort: 443}, "[2001:db8::1]:443"},
		{"listener", Conn{RemoteIP: "0.0.0.0", RemotePort: 0}, ""},
		{"no peer", Conn{}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.c.RemoteAddr())
			assert.Equal(t, tt.want != "", tt.c.HasRemote())
		})
	}
}

func TestFlagFields(t *testing.T) {
	f := Flag{Rule: RuleParentShell, PID: 100, Name: "cmd.exe", Parent: "WINWORD.EXE"}
	assert.Equal(t, []string{"parent_shell", "100", "cmd.exe", "WINWORD.EXE", ""}, f.Fields())
	assert.Len(t, f.Fields(), len(Header))
}

func TestProcessViewHasParent(t *testing.T) {
	assert.False(t, ProcessView{}.HasParent())
	assert.True(t, ProcessView{PPID: 1}.HasParent())
}
