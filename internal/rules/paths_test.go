package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsUserWritableDir(t *testing.T) {
	r := Default()
	tests := []struct {
		path string
		want bool
	}{
		{"", false},
		{"/home/alice/bin/tool", true},
		{"/HOME/alice/tool", true},
		{`C:\Users\bob\Downloads\x.exe`, true},
		{`c:\users\bob\x.exe`, true},
		{"/opt/home/thing", true}, // substring, not path-component match
		{"/usr/bin/bash", false},
		{"/homestead/bash", false},
		{`C:\Windows\System32\cmd.exe`, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, r.IsUserWritableDir(tt.path), "path=%q", tt.path)
	}
}

func TestIsTempDir(t *testing.T) {
	r := Default()
	tests := []struct {
		path string
		want bool
	}{
		{"", false},
		{"/tmp/payload", true},
		{"/var/tmp/payload", true},
		{"/TMP/x", true},
		{`C:\Users\bob\AppData\Local\Temp\x.exe`, true},
		{`c:\users\bob\appdata\local\temp\x.exe`, true},
		{"/opt/tmpfiles/x", true}, // substring, not path-component match
		{"/usr/local/bin/x", false},
		{`C:\Program Files\x.exe`, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, r.IsTempDir(tt.path), "path=%q", tt.path)
	}
}

func TestEmptyPathNeverMatches(t *testing.T) {
	r, err := New(Config{UserDirHints: []string{"/"}, TempHints: []string{"/"}})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	assert.False(t, r.IsUserWritableDir(""))
	assert.False(t, r.IsTempDir(""))
}
