package config

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"
)

// ToYAML serializes the configuration to YAML format.
func (c *Config) ToYAML() ([]byte, error) {
	if c == nil {
		return nil, nil
	}

	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(YAMLIndent())

	if err := encoder.Encode(c); err != nil {
		return nil, fmt.Errorf("encode config: %w", err)
	}
	if err := encoder.Close(); err != nil {
		return nil, fmt.Errorf("close encoder: %w", err)
	}

	return buf.Bytes(), nil
}

// ToYAMLWithHeader serializes the configuration with a header comment
// prepended.
func (c *Config) ToYAMLWithHeader(header string) ([]byte, error) {
	yamlBytes, err := c.ToYAML()
	if err != nil {
		return nil, err
	}
	if header == "" {
		return yamlBytes, nil
	}

	var buf bytes.Buffer
	buf.WriteString(header)
	if header[len(header)-1] != '\n' {
		buf.WriteByte('\n')
	}
	buf.WriteByte('\n')
	buf.Write(yamlBytes)

	return buf.Bytes(), nil
}

// FromYAML parses a configuration from YAML bytes.
func FromYAML(data []byte) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	return cfg, nil
}

// Clone creates a deep copy of the configuration via a YAML round-trip,
// falling back to a manual copy if encoding somehow fails.
func (c *Config) Clone() *Config {
	if c == nil {
		return nil
	}

	yamlBytes, err := c.ToYAML()
	if err != nil {
		return c.deepCopy()
	}
	clone, err := FromYAML(yamlBytes)
	if err != nil {
		return c.deepCopy()
	}
	clone.Jobs = c.Jobs
	return clone
}

func (c *Config) deepCopy() *Config {
	clone := &Config{
		ReplacementsFile: c.ReplacementsFile,
		Jobs:             c.Jobs,
	}
	if c.Width != nil {
		w := *c.Width
		clone.Width = &w
	}
	if c.Overwrite != nil {
		o := *c.Overwrite
		clone.Overwrite = &o
	}
	if c.Backup != nil {
		b := *c.Backup
		clone.Backup = &b
	}
	if c.Replacements != nil {
		r := *c.Replacements
		clone.Replacements = &r
	}
	if c.Rules.Skip != nil {
		clone.Rules.Skip = append([]string(nil), c.Rules.Skip...)
	}
	if c.Rules.Include != nil {
		clone.Rules.Include = append([]string(nil), c.Rules.Include...)
	}
	return clone
}

// YAMLIndent returns the default YAML indentation.
func YAMLIndent() int {
	return 2
}
