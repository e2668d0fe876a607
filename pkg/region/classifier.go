// Package region implements the Region Classifier: a read-only oracle
// that tags every line of a Document with a structural role (prose,
// code, table, list, ...) and records inline code span ranges. Rules
// consult it rather than re-parsing; any rule that changes the line
// count must ask for a fresh Map.
package region

import (
	"regexp"
	"strings"

	"github.com/aeolusmd/mdfixup/pkg/mdtext"
)

// Kind is a per-line structural classification.
type Kind int

const (
	Prose Kind = iota
	Blank
	Frontmatter
	FencedCode
	IndentedCode
	DisplayMath
	Table
	TableSeparator
	List
	Blockquote
	HorizontalRule
	Headline
	SetextUnderline
)

// Line carries the classification and fence metadata for a single line.
type Line struct {
	Kind Kind
	// FenceLang is the language identifier of a fenced-code opening line.
	FenceLang string
	// InlineCode lists the [start,end) byte ranges (within the line) that
	// lie inside a balanced inline code span.
	InlineCode []Span
}

// Span is a half-open byte range [Start, End) within a single line.
type Span struct {
	Start, End int
}

// Contains reports whether offset lies within the span.
func (s Span) Contains(offset int) bool {
	return offset >= s.Start && offset < s.End
}

// Map is the per-document classification produced by Classify.
type Map struct {
	Lines []Line
}

// Inert reports whether line i is a region that built-in rules (other
// than 1, 2, and 15) must not textually alter.
func (m *Map) Inert(i int) bool {
	if i < 0 || i >= len(m.Lines) {
		return false
	}
	switch m.Lines[i].Kind {
	case Frontmatter, FencedCode, IndentedCode, DisplayMath:
		return true
	default:
		return false
	}
}

// InInlineCode reports whether the given byte offset on line i falls
// inside a collected inline code span.
func (m *Map) InInlineCode(i, offset int) bool {
	if i < 0 || i >= len(m.Lines) {
		return false
	}
	for _, sp := range m.Lines[i].InlineCode {
		if sp.Contains(offset) {
			return true
		}
	}
	return false
}

var (
	fenceOpenRe  = regexp.MustCompile("^[ ]{0,3}(```+|~~~+)[ ]*([A-Za-z0-9_+\\-]*)[ ]*$")
	tableSepRe   = regexp.MustCompile(`^\s*\|?\s*:?-{3,}:?\s*(\|\s*:?-{3,}:?\s*)+\|?\s*$`)
	listRe       = regexp.MustCompile(`^(\s*)([-*+]|\d+[.)])\s+`)
	hrRe         = regexp.MustCompile(`^\s*(-{3,}|_{3,}|\*{3,})\s*$`)
	atxRe        = regexp.MustCompile(`^#{1,6}(\s+|$)`)
	setextRe     = regexp.MustCompile(`^(={1,}|-{1,})\s*$`)
	blockquoteRe = regexp.MustCompile(`^\s*>`)
)

// Classify builds a Map for the whole document.
func Classify(doc *mdtext.Document) *Map {
	n := doc.Len()
	lines := make([]Line, n)

	fenceStack := ""
	inFence := false
	inMath := false
	frontmatterEnd := -1

	// YAML frontmatter: only possible at file start.
	if n > 0 {
		firstNonEmpty := -1
		for i := 0; i < n; i++ {
			if strings.TrimSpace(doc.Lines[i]) != "" {
				firstNonEmpty = i
				break
			}
		}
		if firstNonEmpty >= 0 && strings.TrimSpace(doc.Lines[firstNonEmpty]) == "---" {
			for j := firstNonEmpty + 1; j < n; j++ {
				if strings.TrimSpace(doc.Lines[j]) == "---" {
					frontmatterEnd = j
					break
				}
			}
			if frontmatterEnd >= 0 {
				for j := firstNonEmpty; j <= frontmatterEnd; j++ {
					lines[j].Kind = Frontmatter
				}
			}
		}
	}

	for i := 0; i < n; i++ {
		if frontmatterEnd >= 0 && i <= frontmatterEnd {
			continue
		}
		raw := doc.Lines[i]
		trimmed := strings.TrimSpace(raw)

		if inFence {
			lines[i].Kind = FencedCode
			if m := fenceOpenRe.FindStringSubmatch(raw); m != nil && m[2] == "" &&
				m[1][0] == fenceStack[0] && len(m[1]) >= len(fenceStack) {
				inFence = false
				fenceStack = ""
			}
			continue
		}

		if m := fenceOpenRe.FindStringSubmatch(raw); m != nil {
			inFence = true
			fenceStack = m[1]
			lines[i].Kind = FencedCode
			lines[i].FenceLang = m[2]
			continue
		}

		if inMath {
			lines[i].Kind = DisplayMath
			if trimmed == "$$" || strings.HasSuffix(trimmed, "$$") {
				inMath = false
			}
			continue
		}
		if trimmed == "$$" {
			inMath = true
			lines[i].Kind = DisplayMath
			continue
		}
		if isSingleLineMath(trimmed) {
			lines[i].Kind = DisplayMath
			continue
		}

		switch {
		case trimmed == "":
			lines[i].Kind = Blank
		case isIndentedCode(raw):
			lines[i].Kind = IndentedCode
		case tableSepRe.MatchString(raw) && strings.Contains(raw, "|"):
			lines[i].Kind = TableSeparator
		case hrRe.MatchString(raw):
			lines[i].Kind = HorizontalRule
		case atxRe.MatchString(trimmed):
			lines[i].Kind = Headline
		case listRe.MatchString(raw):
			lines[i].Kind = List
		case blockquoteRe.MatchString(raw):
			lines[i].Kind = Blockquote
		case setextRe.MatchString(trimmed) && i > 0 && !doc.Blank(i-1):
			lines[i].Kind = SetextUnderline
		case strings.Contains(raw, "|"):
			lines[i].Kind = Table
		default:
			lines[i].Kind = Prose
		}

		lines[i].InlineCode = inlineCodeSpans(raw)
	}

	return &Map{Lines: lines}
}

// isSingleLineMath recognizes "$$...$$" entirely on one line.
func isSingleLineMath(trimmed string) bool {
	return len(trimmed) >= 4 && strings.HasPrefix(trimmed, "$$") && strings.HasSuffix(trimmed, "$$") && trimmed != "$$"
}

// isIndentedCode recognizes a line indented by 4+ spaces or a tab.
// Classify checks it before List, so a list item indented that far
// (such as a nested item) is classified as IndentedCode.
func isIndentedCode(raw string) bool {
	if strings.HasPrefix(raw, "\t") {
		return true
	}
	count := 0
	for _, c := range raw {
		if c == ' ' {
			count++
			continue
		}
		break
	}
	return count >= 4 && strings.TrimSpace(raw) != ""
}

// inlineCodeSpans finds balanced backtick runs and returns the byte
// ranges of the spans they delimit (including the backticks themselves,
// since rules must never split a backtick off from its content).
func inlineCodeSpans(line string) []Span {
	var spans []Span
	n := len(line)
	i := 0
	for i < n {
		if line[i] != '`' {
			i++
			continue
		}
		start := i
		for i < n && line[i] == '`' {
			i++
		}
		tickLen := i - start
		// Search for a closing run of the same length.
		j := i
		for j < n {
			if line[j] == '`' {
				k := j
				for k < n && line[k] == '`' {
					k++
				}
				if k-j == tickLen {
					spans = append(spans, Span{Start: start, End: k})
					i = k
					goto next
				}
				j = k
				continue
			}
			j++
		}
		// No closing run found; not a span.
		i = start + tickLen
	next:
	}
	return spans
}
