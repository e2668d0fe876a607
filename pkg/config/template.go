package config

import (
	"bytes"
	"fmt"
	"sort"
	"strings"
)

// commentWrapWidth is the maximum width for wrapped comments in templates.
const commentWrapWidth = 70

// RuleInfo describes one rule for template generation.
type RuleInfo struct {
	ID          int
	Keyword     string
	Description string
}

// RuleInfoProvider returns rule information. Set by the rules package
// during init, avoiding a config -> rules import cycle.
type RuleInfoProvider func() []RuleInfo

//nolint:gochecknoglobals // intentional extension point, mirrors DefaultRuleInfoProvider upstream.
var DefaultRuleInfoProvider RuleInfoProvider

// GenerateTemplate renders the --init-config starter file.
func GenerateTemplate() []byte {
	var buf bytes.Buffer

	buf.WriteString(`# md-fixup configuration
#
# Placed at $XDG_CONFIG_HOME/md-fixup/config.yaml, or ~/.config/md-fixup/config.yaml
# if XDG_CONFIG_HOME is unset. Every key is optional; a flag on the command
# line always overrides the matching key here.

# Wrap width for rule 14 (wrap). 0 disables wrapping entirely.
width: 60

# Overwrite input files in place instead of printing to stdout.
overwrite: false

# Write a ` + "`.md-fixup.bak`" + ` sidecar before the first overwrite of a file.
backup: false

# Run the Replacements Engine before and after the rule pass.
replacements: false

# Path to a YAML file of replacement entries. A relative path is resolved
# against the working directory, not against this config file's directory.
# replacements_file: replacements.yaml

rules:
  # Rule IDs, keywords, or group names (code-block-newlines,
  # display-math-newlines) to disable; the sub-keywords em-dash and
  # guillemet turn off only those substitutions of rule 24. Use the literal "all" to disable everything except `+"`include`"+`.
  skip: []

  # When skip includes "all", allow-list specific rules/keywords here.
  include: []
`)

	if rules := getRuleInfos(); len(rules) > 0 {
		buf.WriteString("\n# Available rules:\n")
		sort.Slice(rules, func(i, j int) bool { return rules[i].ID < rules[j].ID })
		for _, r := range rules {
			buf.WriteString(fmt.Sprintf("#   %2d  %-22s %s\n", r.ID, r.Keyword, wrapComment(r.Description, commentWrapWidth)))
		}
	}

	return buf.Bytes()
}

func getRuleInfos() []RuleInfo {
	if DefaultRuleInfoProvider != nil {
		return DefaultRuleInfoProvider()
	}
	return nil
}

// wrapComment wraps text to maxWidth, joining the wrapped lines with an
// indented "#" continuation prefix; used only for the short per-rule
// description in GenerateTemplate's trailing table.
func wrapComment(text string, maxWidth int) string {
	if len(text) <= maxWidth {
		return text
	}

	var lines []string
	words := strings.Fields(text)
	current := ""
	for _, word := range words {
		switch {
		case current == "":
			current = word
		case len(current)+1+len(word) <= maxWidth:
			current += " " + word
		default:
			lines = append(lines, current)
			current = word
		}
	}
	if current != "" {
		lines = append(lines, current)
	}
	return strings.Join(lines, "\n#       ")
}
