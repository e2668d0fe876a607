package rules

import (
	"regexp"
	"strings"

	"github.com/aeolusmd/mdfixup/pkg/engine"
	"github.com/aeolusmd/mdfixup/pkg/mdtext"
	"github.com/aeolusmd/mdfixup/pkg/region"
)

// bareCurrencyRe recognizes "$" immediately followed by digits or "."
// with no closing "$" later on the line — the heuristic rule 21 uses
// to avoid mistaking "$0.50" or "$.02" for math.
var bareCurrencyRe = regexp.MustCompile(`\$[0-9.]`)

// MathSpacingRule is rule 21: ensure display-math blocks ("$$ ... $$")
// sit on their own lines with a blank line before and after, while
// leaving bare currency amounts untouched.
type MathSpacingRule struct{}

func (MathSpacingRule) ID() int         { return 21 }
func (MathSpacingRule) Keyword() string { return "math-spacing" }

func (MathSpacingRule) Apply(doc *mdtext.Document, _ engine.Options) *mdtext.Document {
	lines := splitInlineMath(doc.Lines)
	m := region.Classify(&mdtext.Document{Lines: lines})
	spans := displayMathSpans(m)
	lines = ensureBlankBefore(lines, spans)
	m = region.Classify(&mdtext.Document{Lines: lines})
	lines = ensureBlankAfter(lines, displayMathSpans(m))
	return &mdtext.Document{Lines: lines}
}

// splitInlineMath breaks a single-line "$$...$$" block (that is not
// bare currency) onto three lines: the opening "$$", the body, and the
// closing "$$", so the blank-line spacing logic below can treat it
// uniformly with multi-line display-math blocks.
func splitInlineMath(lines []string) []string {
	var out []string
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if isCurrencyLine(trimmed) || !isInlineDisplayMath(trimmed) {
			out = append(out, line)
			continue
		}
		body := strings.TrimSuffix(strings.TrimPrefix(trimmed, "$$"), "$$")
		out = append(out, "$$", body, "$$")
	}
	return out
}

func isInlineDisplayMath(trimmed string) bool {
	return len(trimmed) >= 4 && strings.HasPrefix(trimmed, "$$") && strings.HasSuffix(trimmed, "$$") && trimmed != "$$"
}

func isCurrencyLine(trimmed string) bool {
	return bareCurrencyRe.MatchString(trimmed) && strings.Count(trimmed, "$") < 2
}

func displayMathSpans(m *region.Map) []span {
	var spans []span
	i := 0
	for i < len(m.Lines) {
		if m.Lines[i].Kind != region.DisplayMath {
			i++
			continue
		}
		start := i
		for i < len(m.Lines) && m.Lines[i].Kind == region.DisplayMath {
			i++
		}
		spans = append(spans, span{start, i - 1})
	}
	return spans
}
