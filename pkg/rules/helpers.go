// Package rules implements the 33 built-in transformation rules. Each
// rule is a small type satisfying engine.Rule; register.go wires them
// into a Registry in the contractual order.
package rules

import (
	"regexp"
	"strings"

	"github.com/aeolusmd/mdfixup/pkg/mdtext"
	"github.com/aeolusmd/mdfixup/pkg/region"
)

var (
	listItemRe   = regexp.MustCompile(`^(\s*)([-*+]|\d+[.)])(\s+)(.*)$`)
	headlineRe   = regexp.MustCompile(`^(#{1,6})(\s*)(.*)$`)
	hruleRe      = regexp.MustCompile(`^\s*(-{3,}|_{3,}|\*{3,})\s*$`)
	blockquoteRe = regexp.MustCompile(`^(\s*)(>+)(\s*)(.*)$`)
)

func isListItem(line string) bool {
	return listItemRe.MatchString(line)
}

func isHeadline(line string) bool {
	return headlineRe.MatchString(line)
}

func isHorizontalRule(line string) bool {
	return hruleRe.MatchString(line)
}

func isBlank(line string) bool {
	return strings.TrimSpace(line) == ""
}

func isBlockquote(line string) bool {
	return strings.HasPrefix(strings.TrimLeft(line, " \t"), ">")
}

// trailingHardBreak reports whether line ends with exactly two spaces
// (the Markdown hard line break) and is followed by non-blank content.
func trailingHardBreak(lines []string, i int) bool {
	if i+1 >= len(lines) {
		return false
	}
	if !strings.HasSuffix(lines[i], "  ") || strings.HasSuffix(lines[i], "   ") {
		return false
	}
	return !isBlank(lines[i+1])
}

// classify is a convenience wrapper so rule files do not need to import
// both mdtext and region for a one-line call.
func classify(doc *mdtext.Document) *region.Map {
	return region.Classify(doc)
}

// blockEnd finds the last line index (inclusive) of the block that
// starts at i: for a list item, the end of the whole top-level list
// (including nested items and blank-line continuations followed by a
// further list item); for a blockquote, the end of the chain of quote
// lines; otherwise the end of the paragraph. Grounded on the original
// implementation's get_top_level_element_end.
func blockEnd(lines []string, i int) int {
	if i >= len(lines) {
		return i
	}
	line := lines[i]
	if isBlank(line) {
		return i
	}
	if isHeadline(line) {
		return i
	}
	if isListItem(line) {
		return listBlockEnd(lines, i)
	}
	if isBlockquote(line) {
		return blockquoteBlockEnd(lines, i)
	}
	return paragraphEnd(lines, i)
}

func listBlockEnd(lines []string, i int) int {
	topStart := i
	indent := leadingWidth(lines[i])
	if indent > 0 {
		for j := i; j >= 0; j-- {
			if !isListItem(lines[j]) {
				topStart = j + 1
				break
			}
			if leadingWidth(lines[j]) == 0 {
				topStart = j
				break
			}
			topStart = j
		}
	}

	last := topStart
	j := topStart
	for j < len(lines) {
		cur := lines[j]
		if isBlank(cur) {
			if j+1 < len(lines) && isListItem(lines[j+1]) {
				j++
				continue
			}
			break
		}
		if isListItem(cur) {
			if leadingWidth(cur) == 0 {
				last = j
			}
			j++
			continue
		}
		if strings.HasPrefix(cur, "\t") || strings.HasPrefix(cur, " ") {
			j++
			continue
		}
		break
	}
	return last
}

func blockquoteBlockEnd(lines []string, i int) int {
	j := i + 1
	for j < len(lines) {
		if isBlank(lines[j]) {
			if j+1 < len(lines) && isBlockquote(lines[j+1]) {
				j++
				continue
			}
			return j - 1
		}
		if isBlockquote(lines[j]) {
			j++
			continue
		}
		return j - 1
	}
	return len(lines) - 1
}

func paragraphEnd(lines []string, i int) int {
	j := i + 1
	for j < len(lines) {
		cur := lines[j]
		if isBlank(cur) {
			return j - 1
		}
		if isHeadline(cur) || isListItem(cur) || isHorizontalRule(cur) || isBlockquote(cur) {
			return j - 1
		}
		j++
	}
	return len(lines) - 1
}

func leadingWidth(s string) int {
	n := 0
	for _, c := range s {
		if c == ' ' {
			n++
		} else if c == '\t' {
			n += 4
		} else {
			break
		}
	}
	return n
}

// maskRanges replaces each [start,end) byte range in s with a
// same-length run of the sentinel byte, so length-preserving
// transformations (wrapping) can treat masked spans as opaque tokens
// without shifting any other offset.
func maskRanges(s string, ranges []region.Span, sentinel byte) string {
	if len(ranges) == 0 {
		return s
	}
	b := []byte(s)
	for _, r := range ranges {
		for i := r.Start; i < r.End && i < len(b); i++ {
			b[i] = sentinel
		}
	}
	return string(b)
}
