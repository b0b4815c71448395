package rules

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the lookup tables a Ruleset is built from. A nil slice means
// "use the default"; an empty non-nil slice empties the set.
type Config struct {
	SuspiciousParents []string `yaml:"suspicious_parents" json:"suspicious_parents"`
	Shells            []string `yaml:"shells" json:"shells"`
	UserDirHints      []string `yaml:"user_dir_hints" json:"user_dir_hints"`
	TempHints         []string `yaml:"temp_hints" json:"temp_hints"`
}

// DefaultConfig returns the built-in lookup tables.
func DefaultConfig() Config {
	return Config{
		SuspiciousParents: []string{"WINWORD.EXE", "EXCEL.EXE", "POWERPNT.EXE", "outlook.exe", "chrome.exe", "firefox.exe"},
		Shells:            []string{"cmd.exe", "powershell.exe", "bash", "sh", "zsh"},
		UserDirHints:      []string{`\Users\`, "/home/"},
		TempHints:         []string{`\AppData\Local\Temp`, "/tmp", "/var/tmp"},
	}
}

// LoadConfig reads a YAML rules file. Keys missing from the file keep their
// default values.
func LoadConfig(path string) (Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read rules file: %w", err)
	}
	var fc Config
	if err := yaml.Unmarshal(b, &fc); err != nil {
		return Config{}, fmt.Errorf("parse rules file %s: %w", path, err)
	}
	return fc.withDefaults(), nil
}

func (c Config) withDefaults() Config {
	def := DefaultConfig()
	if c.SuspiciousParents == nil {
		c.SuspiciousParents = def.SuspiciousParents
	}
	if c.Shells == nil {
		c.Shells = def.Shells
	}
	if c.UserDirHints == nil {
		c.UserDirHints = def.UserDirHints
	}
	if c.TempHints == nil {
		c.TempHints = def.TempHints
	}
	return c
}

func (c Config) validate() error {
	for _, h := range c.UserDirHints {
		if h == "" {
			return fmt.Errorf("user_dir_hints: empty hint would match every path")
		}
	}
	for _, h := range c.TempHints {
		if h == "" {
			return fmt.Errorf("temp_hints: empty hint would match every path")
		}
	}
	return nil
}
