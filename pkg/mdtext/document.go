// Package mdtext defines the document model shared by the region
// classifier, rule engine, and replacements engine: an ordered sequence
// of lines with no trailing newline, joined and split with a fixed LF
// separator.
package mdtext

import "strings"

// Document is the line-oriented in-memory representation of a Markdown
// file. Lines never carry their terminator; Join always uses LF.
type Document struct {
	Lines []string
}

// Parse splits raw bytes into a Document on "\n" only. It does not
// normalize CRLF/CR itself — that is rule 1's job (line-endings), so
// that skipping rule 1 stays observable in the output. A line from
// CRLF input therefore carries a trailing "\r" as ordinary content
// until rule 1 runs.
func Parse(src string) *Document {
	if src == "" {
		return &Document{Lines: []string{""}}
	}
	lines := strings.Split(src, "\n")
	return &Document{Lines: lines}
}

// NormalizeLineEndings replaces "\r\n" and lone "\r" with "\n".
func NormalizeLineEndings(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}

// String joins the document's lines with LF. It does not add a
// trailing newline; callers that need a final-newline guarantee run
// rule 15 (end-newline) before rendering final output.
func (d *Document) String() string {
	return strings.Join(d.Lines, "\n")
}

// Clone returns a deep copy of the document so a rule can mutate its
// own working copy without aliasing the caller's slice.
func (d *Document) Clone() *Document {
	lines := make([]string, len(d.Lines))
	copy(lines, d.Lines)
	return &Document{Lines: lines}
}

// Len returns the number of lines.
func (d *Document) Len() int {
	return len(d.Lines)
}

// Blank reports whether line i (0-based) is empty or all whitespace.
func (d *Document) Blank(i int) bool {
	if i < 0 || i >= len(d.Lines) {
		return true
	}
	return strings.TrimSpace(d.Lines[i]) == ""
}
