package rules

import (
	"regexp"
	"strings"

	"github.com/aeolusmd/mdfixup/pkg/engine"
	"github.com/aeolusmd/mdfixup/pkg/mdtext"
)

var ialRe = regexp.MustCompile(`\{\s*:?\s*([^{}]*?)\s*\}`)

// IALSpacingRule is rule 16: normalize Kramdown ({: .class #id}) and
// Pandoc ({.class}) inline attribute lists to a single canonical form
// with no spaces inside the braces and single spaces between
// attributes.
type IALSpacingRule struct{}

func (IALSpacingRule) ID() int         { return 16 }
func (IALSpacingRule) Keyword() string { return "ial-spacing" }

func (IALSpacingRule) Apply(doc *mdtext.Document, _ engine.Options) *mdtext.Document {
	m := classify(doc)
	out := make([]string, len(doc.Lines))
	for i, line := range doc.Lines {
		if m.Inert(i) {
			out[i] = line
			continue
		}
		out[i] = ialRe.ReplaceAllStringFunc(line, normalizeIAL)
	}
	return &mdtext.Document{Lines: out}
}

func normalizeIAL(match string) string {
	groups := ialRe.FindStringSubmatch(match)
	if groups == nil {
		return match
	}
	inner := strings.TrimSpace(strings.TrimSuffix(strings.TrimPrefix(match, "{"), "}"))
	isKramdown := strings.HasPrefix(inner, ":")
	attrs := strings.Fields(groups[1])
	body := strings.Join(attrs, " ")
	if isKramdown {
		return "{:" + body + "}"
	}
	return "{" + body + "}"
}
