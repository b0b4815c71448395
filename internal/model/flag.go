package model

import "strconv"

type RuleID string

const (
	RuleParentShell    RuleID = "parent_shell"
	RuleShellInUserDir RuleID = "shell_in_userdir"
	RuleTempWithNet    RuleID = "temp_with_net"
)

// Rules lists every rule id in evaluation order.
var Rules = []RuleID{RuleParentShell, RuleShellInUserDir, RuleTempWithNet}

// Header is the column order shared by console and CSV output.
var Header = []string{"type", "pid", "name", "parent", "exe"}

// Flag is one anomaly finding for one process.
type Flag struct {
	Rule   RuleID `json:"type"`
	PID    int32  `json:"pid"`
	Name   string `json:"name"`
	Parent string `json:"parent"`
	Exe    string `json:"exe"`
}

// Fields returns the flag values in Header order.
func (f Flag) Fields() []string {
	return []string{string(f.Rule), strconv.Itoa(int(f.PID)), f.Name, f.Parent, f.Exe}
}
