package rules

import (
	"github.com/aeolusmd/mdfixup/pkg/engine"
	"github.com/aeolusmd/mdfixup/pkg/mdtext"
	"github.com/aeolusmd/mdfixup/pkg/region"
	"github.com/aeolusmd/mdfixup/pkg/typography"
)

// TypographyRule is rule 24: fold curly quotes, dashes, ellipses, and
// (optionally) guillemets to their plain-ASCII equivalents, leaving
// inert regions and inline code spans untouched. Sub-keywords em-dash
// and guillemet gate individual table entries via Options.
type TypographyRule struct{}

func (TypographyRule) ID() int         { return 24 }
func (TypographyRule) Keyword() string { return "typography" }

func (TypographyRule) Apply(doc *mdtext.Document, opts engine.Options) *mdtext.Document {
	skip := map[string]bool{
		"em-dash":   opts.SkipEmDash,
		"guillemet": opts.SkipGuillemet,
	}
	m := classify(doc)
	out := make([]string, len(doc.Lines))
	for i, line := range doc.Lines {
		if m.Inert(i) {
			out[i] = line
			continue
		}
		out[i] = applyOutsideCode(m, i, line, skip)
	}
	return &mdtext.Document{Lines: out}
}

// applyOutsideCode runs typography.Apply over the segments of line that
// fall outside the inline-code spans recorded for row i.
func applyOutsideCode(m *region.Map, i int, line string, skip map[string]bool) string {
	spans := m.Lines[i].InlineCode
	if len(spans) == 0 {
		return typography.Apply(line, skip)
	}
	var out string
	last := 0
	for _, sp := range spans {
		out += typography.Apply(line[last:sp.Start], skip)
		out += line[sp.Start:sp.End]
		last = sp.End
	}
	out += typography.Apply(line[last:], skip)
	return out
}
