package cli

import (
	"flag"

	"github.com/pratik-anurag/procflag/internal/rules"
)

type commonFlags struct {
	JSON    bool
	Color   string
	Verbose bool
	Rules   string
}

func parseCommon(fs *flag.FlagSet) *commonFlags {
	c := &commonFlags{}
	fs.BoolVar(&c.JSON, "json", false, "output JSON")
	fs.StringVar(&c.Color, "color", "auto", "color: auto|always|never")
	fs.BoolVar(&c.Verbose, "verbose", false, "log skipped processes and timings to stderr")
	fs.StringVar(&c.Rules, "rules", "", "YAML file overriding the built-in lookup tables")
	return c
}

func validColor(mode string) bool {
	switch mode {
	case "auto", "always", "never":
		return true
	}
	return false
}

func loadRuleset(path string) (*rules.Ruleset, error) {
	if path == "" {
		return rules.Default(), nil
	}
	cfg, err := rules.LoadConfig(path)
	if err != nil {
		return nil, err
	}
	return rules.New(cfg)
}
