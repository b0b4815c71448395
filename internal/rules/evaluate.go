package rules

import (
	"strings"

	"github.com/pratik-anurag/procflag/internal/model"
)

// NeedsConnections reports whether the connection list of v can change the
// outcome of Evaluate. Callers use it to avoid querying sockets for every
// process.
func (r *Ruleset) NeedsConnections(v model.ProcessView) bool {
	return r.IsTempDir(v.Exe)
}

// Evaluate applies every rule to one process and returns the flags it
// raises, in rule order. It is pure: the same inputs always give the same
// output and nothing is retained.
//
// parent_shell compares both parentName and v.Name case-sensitively, while
// shell_in_userdir matches v.Name case-insensitively.
func (r *Ruleset) Evaluate(v model.ProcessView, parentName string, conns []model.Conn) []model.Flag {
	var out []model.Flag
	flag := func(id model.RuleID) {
		out = append(out, model.Flag{
			Rule:   id,
			PID:    v.PID,
			Name:   v.Name,
			Parent: parentName,
			Exe:    v.Exe,
		})
	}

	if r.parents[parentName] && r.shells[v.Name] {
		flag(model.RuleParentShell)
	}

	if r.shellsFolded[strings.ToLower(v.Name)] && r.IsUserWritableDir(v.Exe) {
		flag(model.RuleShellInUserDir)
	}

	if r.IsTempDir(v.Exe) {
		for _, c := range conns {
			if c.HasRemote() {
				flag(model.RuleTempWithNet)
				break
			}
		}
	}

	return out
}
