package rules

import (
	"strings"

	"github.com/aeolusmd/mdfixup/pkg/engine"
	"github.com/aeolusmd/mdfixup/pkg/mdtext"
)

// HeaderSpacingRule is rule 4: normalize ATX headlines to exactly one
// space between the "#" run and the text, and strip a trailing "#" run.
type HeaderSpacingRule struct{}

func (HeaderSpacingRule) ID() int         { return 4 }
func (HeaderSpacingRule) Keyword() string { return "header-spacing" }

func (HeaderSpacingRule) Apply(doc *mdtext.Document, _ engine.Options) *mdtext.Document {
	m := classify(doc)
	out := make([]string, len(doc.Lines))
	for i, line := range doc.Lines {
		if m.Inert(i) || !isHeadline(line) {
			out[i] = line
			continue
		}
		match := headlineRe.FindStringSubmatch(line)
		hashes, rest := match[1], match[3]
		rest = strings.TrimRight(rest, " \t")
		rest = strings.TrimRight(rest, "#")
		rest = strings.TrimRight(rest, " \t")
		if rest == "" {
			out[i] = hashes
			continue
		}
		out[i] = hashes + " " + rest
	}
	return &mdtext.Document{Lines: out}
}

// HeaderNewlineRule is rule 5: insert a blank line after any headline
// whose following line is non-blank and not a setext underline.
type HeaderNewlineRule struct{}

func (HeaderNewlineRule) ID() int         { return 5 }
func (HeaderNewlineRule) Keyword() string { return "header-newline" }

func (HeaderNewlineRule) Apply(doc *mdtext.Document, _ engine.Options) *mdtext.Document {
	m := classify(doc)
	var out []string
	for i, line := range doc.Lines {
		out = append(out, line)
		if m.Inert(i) || !isHeadline(line) {
			continue
		}
		if i+1 >= len(doc.Lines) {
			continue
		}
		next := doc.Lines[i+1]
		if isBlank(next) || isSetextUnderline(next) {
			continue
		}
		out = append(out, "")
	}
	return &mdtext.Document{Lines: out}
}

func isSetextUnderline(line string) bool {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return false
	}
	for _, c := range trimmed {
		if c != '=' && c != '-' {
			return false
		}
	}
	return true
}
