package rules

import "strings"

// IsUserWritableDir reports whether path contains one of the user-home hints.
// The match is a case-insensitive substring test, not a path-component
// match: "/opt/home/x" matches "/home/".
func (r *Ruleset) IsUserWritableDir(path string) bool {
	return containsAny(path, r.userDirHints)
}

// IsTempDir reports whether path contains one of the temp-directory hints.
// Same substring semantics as IsUserWritableDir, so "/tmpfiles/x" matches.
func (r *Ruleset) IsTempDir(path string) bool {
	return containsAny(path, r.tempHints)
}

// hints must already be lower-cased.
func containsAny(path string, hints []string) bool {
	if path == "" {
		return false
	}
	p := strings.ToLower(path)
	for _, h := range hints {
		if strings.Contains(p, h) {
			return true
		}
	}
	return false
}
