package rules

import (
	"regexp"
	"strings"

	"github.com/aeolusmd/mdfixup/pkg/engine"
	"github.com/aeolusmd/mdfixup/pkg/mdtext"
	"github.com/aeolusmd/mdfixup/pkg/region"
)

// TrailingWhitespaceRule is rule 2: trim trailing spaces/tabs on every
// line, except a hard line break (exactly two trailing spaces followed
// by a non-blank line) and lines inside fenced code blocks.
type TrailingWhitespaceRule struct{}

func (TrailingWhitespaceRule) ID() int         { return 2 }
func (TrailingWhitespaceRule) Keyword() string { return "trailing" }

func (TrailingWhitespaceRule) Apply(doc *mdtext.Document, _ engine.Options) *mdtext.Document {
	m := classify(doc)
	out := make([]string, len(doc.Lines))
	for i, line := range doc.Lines {
		if m.Lines[i].Kind == region.FencedCode {
			out[i] = line
			continue
		}
		if trailingHardBreak(doc.Lines, i) {
			out[i] = strings.TrimRight(line, " \t") + "  "
			continue
		}
		out[i] = strings.TrimRight(line, " \t")
	}
	return &mdtext.Document{Lines: out}
}

var defListItemRe = regexp.MustCompile(`^:\s`)

// BlankLinesRule is rule 3: collapse runs of 2+ blank lines to a
// single blank line outside fenced code / display math, and remove
// blank or quote-only separators between consecutive definition-list
// items.
type BlankLinesRule struct{}

func (BlankLinesRule) ID() int         { return 3 }
func (BlankLinesRule) Keyword() string { return "blank-lines" }

func (BlankLinesRule) Apply(doc *mdtext.Document, _ engine.Options) *mdtext.Document {
	m := classify(doc)
	lines := doc.Lines

	var out []string
	blankRun := 0
	for i, line := range lines {
		inert := m.Lines[i].Kind == region.FencedCode || m.Lines[i].Kind == region.DisplayMath

		if !inert && isBlank(line) {
			blankRun++
			if blankRun > 1 {
				continue
			}
			out = append(out, line)
			continue
		}
		blankRun = 0
		out = append(out, line)
	}

	return &mdtext.Document{Lines: removeDefListSeparators(out)}
}

// removeDefListSeparators drops a single blank or quote-only line that
// sits between two definition-list items (consecutive lines starting
// with ":" + whitespace).
func removeDefListSeparators(lines []string) []string {
	var out []string
	for i := 0; i < len(lines); i++ {
		if i > 0 && i+1 < len(lines) &&
			defListItemRe.MatchString(lines[i-1]) &&
			defListItemRe.MatchString(lines[i+1]) &&
			isSeparatorCandidate(lines[i]) {
			continue
		}
		out = append(out, lines[i])
	}
	return out
}

func isSeparatorCandidate(line string) bool {
	if isBlank(line) {
		return true
	}
	trimmed := strings.TrimSpace(line)
	return trimmed == ">" || strings.TrimSpace(strings.TrimPrefix(trimmed, ">")) == ""
}
