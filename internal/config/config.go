// Package config loads shaderlint.toml, the optional project file that
// enables/disables rules, overrides severities, and bounds output.
package config

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/BurntSushi/toml"

	"shaderlint/internal/diag"
	"shaderlint/internal/rules"
)

// FileName is the manifest looked up from the lint root upward.
const FileName = "shaderlint.toml"

// Config is the decoded manifest. Zero value means: all rules on,
// default severities, default diagnostic cap.
type Config struct {
	MaxDiagnostics int               `toml:"max_diagnostics"`
	Jobs           int               `toml:"jobs"`
	Rules          RulesSection      `toml:"rules"`
	Severity       map[string]string `toml:"severity"`
}

// RulesSection lists rule IDs to turn on or off. Disable wins when a
// rule appears in both.
type RulesSection struct {
	Enable  []string `toml:"enable"`
	Disable []string `toml:"disable"`
}

// Load decodes the manifest at path.
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &cfg, nil
}

// Discover searches dir and its parents for the manifest. A missing
// manifest is not an error: the zero config comes back.
func Discover(dir string) (*Config, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, err
	}
	for {
		candidate := filepath.Join(abs, FileName)
		if _, statErr := os.Stat(candidate); statErr == nil {
			return Load(candidate)
		}
		parent := filepath.Dir(abs)
		if parent == abs {
			return &Config{}, nil
		}
		abs = parent
	}
}

func (c *Config) validate() error {
	known := make(map[string]bool)
	for _, r := range rules.All() {
		known[r.Name()] = true
	}
	for _, id := range c.Rules.Enable {
		if !known[id] {
			return fmt.Errorf("unknown rule id %q in rules.enable", id)
		}
	}
	for _, id := range c.Rules.Disable {
		if !known[id] {
			return fmt.Errorf("unknown rule id %q in rules.disable", id)
		}
	}
	for id, sev := range c.Severity {
		if !known[id] {
			return fmt.Errorf("unknown rule id %q in severity", id)
		}
		if _, ok := parseSeverity(sev); !ok {
			return fmt.Errorf("invalid severity %q for rule %q", sev, id)
		}
	}
	return nil
}

// SelectRules filters the registry by the enable/disable lists,
// preserving registration order.
func (c *Config) SelectRules() []rules.Rule {
	disabled := make(map[string]bool, len(c.Rules.Disable))
	for _, id := range c.Rules.Disable {
		disabled[id] = true
	}
	enabled := make(map[string]bool, len(c.Rules.Enable))
	for _, id := range c.Rules.Enable {
		enabled[id] = true
	}
	return rules.Filter(rules.All(), func(r rules.Rule) bool {
		if disabled[r.Name()] {
			return false
		}
		if len(enabled) > 0 {
			return enabled[r.Name()]
		}
		return true
	})
}

// Fingerprint hashes every configuration knob that changes lint
// output: the selected rule set, severity overrides, and the
// diagnostic cap. Cached results carry it so a config change is a
// cache miss, not a stale answer.
func (c *Config) Fingerprint() string {
	h := sha256.New()
	fmt.Fprintf(h, "max=%d\n", c.MaxDiagnostics)
	for _, r := range c.SelectRules() {
		fmt.Fprintf(h, "rule=%s\n", r.Name())
	}
	ids := make([]string, 0, len(c.Severity))
	for id := range c.Severity {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, id := range ids {
		fmt.Fprintf(h, "sev=%s:%s\n", id, c.Severity[id])
	}
	return hex.EncodeToString(h.Sum(nil))
}

// ApplySeverity rewrites diagnostic severities per the manifest.
func (c *Config) ApplySeverity(diags []diag.Diagnostic) {
	if len(c.Severity) == 0 {
		return
	}
	for i := range diags {
		if sev, ok := c.Severity[diags[i].Code.ID()]; ok {
			if parsed, valid := parseSeverity(sev); valid {
				diags[i].Severity = parsed
			}
		}
	}
}

func parseSeverity(s string) (diag.Severity, bool) {
	switch s {
	case "info":
		return diag.SevInfo, true
	case "warning":
		return diag.SevWarning, true
	case "error":
		return diag.SevError, true
	default:
		return 0, false
	}
}
