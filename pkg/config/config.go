// Package config defines md-fixup's configuration schema: a pure data
// structure with no dependency on any particular loader. Merging CLI
// flags, the discovered config file, and defaults is internal/configloader's
// job, not this package's.
package config

// RulesConfig controls which rules run.
type RulesConfig struct {
	// Skip lists rule IDs, keywords, or group aliases to disable, or
	// the single literal "all" to disable everything except Include.
	Skip []string `yaml:"skip,omitempty"`

	// Include allow-lists rule IDs/keywords when Skip is "all".
	Include []string `yaml:"include,omitempty"`
}

// Config is the file-level configuration schema recognized at
// $XDG_CONFIG_HOME/md-fixup/config.y{a,}ml, falling back to
// ~/.config/md-fixup/config.y{a,}ml.
type Config struct {
	// Width is the wrap width for rule 14; 0 disables wrapping.
	// A pointer so an absent key is distinguishable from an explicit 0.
	Width *int `yaml:"width,omitempty"`

	// Overwrite writes results back to each input file atomically
	// instead of printing to stdout.
	Overwrite *bool `yaml:"overwrite,omitempty"`

	// Backup creates a .md-fixup.bak sidecar before the first overwrite
	// of a file, when Overwrite is in effect.
	Backup *bool `yaml:"backup,omitempty"`

	// Replacements enables the Replacements Engine.
	Replacements *bool `yaml:"replacements,omitempty"`

	// ReplacementsFile points at a YAML file of replace.Replacement
	// entries. A relative path is resolved against the working
	// directory, not against the config file's directory.
	ReplacementsFile string `yaml:"replacements_file,omitempty"`

	// Rules controls the skip/include lists.
	Rules RulesConfig `yaml:"rules,omitempty"`

	// CLI-only options, never persisted to a config file.

	// Jobs caps concurrent file processing; <= 0 means runtime.NumCPU().
	Jobs int `yaml:"-"`
}

// DefaultWidth is rule 14's width absent any configuration.
const DefaultWidth = 60

// NewConfig returns a Config with every field unset, so that every
// WidthOr/OverwriteOr/etc. lookup falls through to its caller's default.
func NewConfig() *Config {
	return &Config{}
}

// WidthOr returns c.Width if explicitly set, else fallback.
func (c *Config) WidthOr(fallback int) int {
	if c == nil || c.Width == nil {
		return fallback
	}
	return *c.Width
}

// OverwriteOr returns c.Overwrite if explicitly set, else fallback.
func (c *Config) OverwriteOr(fallback bool) bool {
	if c == nil || c.Overwrite == nil {
		return fallback
	}
	return *c.Overwrite
}

// BackupOr returns c.Backup if explicitly set, else fallback.
func (c *Config) BackupOr(fallback bool) bool {
	if c == nil || c.Backup == nil {
		return fallback
	}
	return *c.Backup
}

// ReplacementsOr returns c.Replacements if explicitly set, else fallback.
func (c *Config) ReplacementsOr(fallback bool) bool {
	if c == nil || c.Replacements == nil {
		return fallback
	}
	return *c.Replacements
}
