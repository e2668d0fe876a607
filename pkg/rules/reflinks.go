package rules

import (
	"regexp"

	"github.com/aeolusmd/mdfixup/pkg/engine"
	"github.com/aeolusmd/mdfixup/pkg/mdtext"
)

var refLinkDefRe = regexp.MustCompile(`^(\s*\[[^\]]+\])\s*:\s*(.*)$`)

// RefLinkSpacingRule is rule 18: normalize reference-link definition
// spacing, "[ref] :URL" -> "[ref]: URL".
type RefLinkSpacingRule struct{}

func (RefLinkSpacingRule) ID() int         { return 18 }
func (RefLinkSpacingRule) Keyword() string { return "ref-link-spacing" }

func (RefLinkSpacingRule) Apply(doc *mdtext.Document, _ engine.Options) *mdtext.Document {
	m := classify(doc)
	out := make([]string, len(doc.Lines))
	for i, line := range doc.Lines {
		if m.Inert(i) {
			out[i] = line
			continue
		}
		if match := refLinkDefRe.FindStringSubmatch(line); match != nil {
			out[i] = match[1] + ": " + match[2]
			continue
		}
		out[i] = line
	}
	return &mdtext.Document{Lines: out}
}

var taskCheckboxRe = regexp.MustCompile(`(?i)^(\s*[-*+]|\s*\d+[.)])\s*\[\s*([xX ])\s*\]`)

// TaskCheckboxRule is rule 19: lowercase "[X]" to "[x]" and ensure
// exactly one space between the list marker and the checkbox.
type TaskCheckboxRule struct{}

func (TaskCheckboxRule) ID() int         { return 19 }
func (TaskCheckboxRule) Keyword() string { return "task-checkbox" }

func (TaskCheckboxRule) Apply(doc *mdtext.Document, _ engine.Options) *mdtext.Document {
	out := make([]string, len(doc.Lines))
	for i, line := range doc.Lines {
		loc := taskCheckboxRe.FindStringSubmatchIndex(line)
		if loc == nil {
			out[i] = line
			continue
		}
		marker := line[loc[2]:loc[3]]
		mark := line[loc[4]:loc[5]]
		if mark != " " {
			mark = "x"
		}
		out[i] = marker + " [" + mark + "]" + line[loc[1]:]
	}
	return &mdtext.Document{Lines: out}
}

var (
	liquidTagRe  = regexp.MustCompile(`\{%\s*(.*?)\s*%\}`)
	liquidExprRe = regexp.MustCompile(`\{\{\s*(.*?)\s*\}\}`)
)

// LiquidTagsRule is rule 31: "{%tag args%}" -> "{% tag args %}" and
// "{{expr}}" -> "{{ expr }}", collapsing extra internal spaces too.
type LiquidTagsRule struct{}

func (LiquidTagsRule) ID() int         { return 31 }
func (LiquidTagsRule) Keyword() string { return "liquid-tags" }

func (LiquidTagsRule) Apply(doc *mdtext.Document, _ engine.Options) *mdtext.Document {
	m := classify(doc)
	out := make([]string, len(doc.Lines))
	for i, line := range doc.Lines {
		if m.Inert(i) {
			out[i] = line
			continue
		}
		line = liquidTagRe.ReplaceAllString(line, "{% $1 %}")
		line = liquidExprRe.ReplaceAllString(line, "{{ $1 }}")
		out[i] = line
	}
	return &mdtext.Document{Lines: out}
}
