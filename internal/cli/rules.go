package cli

import (
	"encoding/json"
	"flag"
	"fmt"
	"strings"

	"github.com/pratik-anurag/procflag/internal/model"
)

func runRules(args []string) int {
	fs := flag.NewFlagSet("rules", flag.ContinueOnError)
	fs.SetOutput(stderr)

	c := parseCommon(fs)

	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() > 0 {
		fmt.Fprintln(stderr, "rules: unexpected arguments")
		return 2
	}

	rs, err := loadRuleset(c.Rules)
	if err != nil {
		fmt.Fprintln(stderr, "rules:", err)
		return 1
	}
	cfg := rs.Config()

	if c.JSON {
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		_ = enc.Encode(cfg)
		return 0
	}

	fmt.Fprintf(stdout, "%s: parent in suspicious parents, name in shells (exact case)\n", model.RuleParentShell)
	fmt.Fprintf(stdout, "%s: name in shells (any case), exe under a user dir hint\n", model.RuleShellInUserDir)
	fmt.Fprintf(stdout, "%s: exe under a temp hint, at least one remote connection\n", model.RuleTempWithNet)
	fmt.Fprintln(stdout)
	fmt.Fprintf(stdout, "suspicious parents: %s\n", list(cfg.SuspiciousParents))
	fmt.Fprintf(stdout, "shells:             %s\n", list(cfg.Shells))
	fmt.Fprintf(stdout, "user dir hints:     %s\n", list(cfg.UserDirHints))
	fmt.Fprintf(stdout, "temp hints:         %s\n", list(cfg.TempHints))
	return 0
}

func list(xs []string) string {
	if len(xs) == 0 {
		return "(none)"
	}
	return strings.Join(xs, ", ")
}
