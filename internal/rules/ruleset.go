// Package rules classifies processes against a fixed set of suspicious
// behaviour patterns.
package rules

import "strings"

// Ruleset is an immutable set of lookup tables. The zero value matches
// nothing; build one with New or Default.
type Ruleset struct {
	parents      map[string]bool
	shells       map[string]bool
	shellsFolded map[string]bool
	userDirHints []string
	tempHints    []string
	cfg          Config
}

// New builds a Ruleset from cfg. Nil lists in cfg fall back to defaults.
func New(cfg Config) (*Ruleset, error) {
	cfg = cfg.withDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	r := &Ruleset{
		parents:      make(map[string]bool, len(cfg.SuspiciousParents)),
		shells:       make(map[string]bool, len(cfg.Shells)),
		shellsFolded: make(map[string]bool, len(cfg.Shells)),
		userDirHints: lowerAll(cfg.UserDirHints),
		tempHints:    lowerAll(cfg.TempHints),
		cfg:          cloneConfig(cfg),
	}
	for _, p := range cfg.SuspiciousParents {
		r.parents[p] = true
	}
	for _, s := range cfg.Shells {
		r.shells[s] = true
		r.shellsFolded[strings.ToLower(s)] = true
	}
	return r, nil
}

// Default returns the built-in ruleset.
func Default() *Ruleset {
	r, err := New(DefaultConfig())
	if err != nil {
		panic("rules: invalid default config: " + err.Error())
	}
	return r
}

// Config returns a copy of the tables the ruleset was built from.
func (r *Ruleset) Config() Config {
	return cloneConfig(r.cfg)
}

func lowerAll(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		out = append(out, strings.ToLower(s))
	}
	return out
}

func cloneConfig(c Config) Config {
	return Config{
		SuspiciousParents: append([]string{}, c.SuspiciousParents...),
		Shells:            append([]string{}, c.Shells...),
		UserDirHints:      append([]string{}, c.UserDirHints...),
		TempHints:         append([]string{}, c.TempHints...),
	}
}
