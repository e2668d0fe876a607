package rules

import (
	"github.com/aeolusmd/mdfixup/pkg/mdtext"
	"github.com/aeolusmd/mdfixup/pkg/region"
)

// span is an inclusive [Start, End] line range.
type span struct{ Start, End int }

// fencedCodeSpans returns the maximal runs of region.FencedCode lines.
func fencedCodeSpans(m *region.Map) []span {
	var spans []span
	i := 0
	for i < len(m.Lines) {
		if m.Lines[i].Kind != region.FencedCode {
			i++
			continue
		}
		start := i
		for i < len(m.Lines) && m.Lines[i].Kind == region.FencedCode {
			i++
		}
		spans = append(spans, span{start, i - 1})
	}
	return spans
}

// horizontalRuleSpans returns each line classified as a horizontal rule
// as its own single-line span.
func horizontalRuleSpans(m *region.Map) []span {
	var spans []span
	for i := range m.Lines {
		if m.Lines[i].Kind == region.HorizontalRule {
			spans = append(spans, span{i, i})
		}
	}
	return spans
}

// listSpans returns the maximal top-level list blocks in lines.
func listSpans(lines []string) []span {
	var spans []span
	i := 0
	for i < len(lines) {
		if !isListItem(lines[i]) {
			i++
			continue
		}
		end := listBlockEnd(lines, i)
		start := i
		for start > 0 && isListItem(lines[start-1]) {
			start--
		}
		spans = append(spans, span{start, end})
		i = end + 1
	}
	return spans
}

// ensureBlankBefore inserts a blank line before each span's start when
// the preceding line exists and is non-blank.
func ensureBlankBefore(lines []string, spans []span) []string {
	starts := make(map[int]bool, len(spans))
	for _, s := range spans {
		starts[s.Start] = true
	}
	var out []string
	for i, line := range lines {
		if starts[i] && i > 0 && !isBlank(lines[i-1]) {
			out = append(out, "")
		}
		out = append(out, line)
	}
	return out
}

// ensureBlankAfter inserts a blank line after each span's end when the
// following line exists and is non-blank.
func ensureBlankAfter(lines []string, spans []span) []string {
	ends := make(map[int]bool, len(spans))
	for _, s := range spans {
		ends[s.End] = true
	}
	var out []string
	for i, line := range lines {
		out = append(out, line)
		if ends[i] && i+1 < len(lines) && !isBlank(lines[i+1]) {
			out = append(out, "")
		}
	}
	return out
}

func rebuild(lines []string) *mdtext.Document {
	return &mdtext.Document{Lines: lines}
}
