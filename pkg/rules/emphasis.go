package rules

import (
	"regexp"
	"strings"

	"github.com/aeolusmd/mdfixup/pkg/engine"
	"github.com/aeolusmd/mdfixup/pkg/mdtext"
)

var (
	tripleEmphasisRe = regexp.MustCompile(`([_*]{3})(.+?)([_*]{3})`)
	boldStarRe       = regexp.MustCompile(`\*\*(.+?)\*\*`)
	boldUnderRe      = regexp.MustCompile(`__(.+?)__`)
	italicUnderRe    = regexp.MustCompile(`_([^_]+?)_`)
	codeSpanRe       = regexp.MustCompile("`+[^`]*`+")
	emojiProtectRe   = regexp.MustCompile(`:[a-z0-9_+-]+:`)
	// filenameTokenRe matches word-and-underscore runs such as
	// "my_file_name.md" or "file_name", with an optional leading or
	// trailing underscore — these are never emphasis delimiters even
	// when bracketed by underscores on both ends.
	filenameTokenRe = regexp.MustCompile(`_?[A-Za-z0-9]+(?:_[A-Za-z0-9]+)+(?:\.[A-Za-z0-9]+)?_?`)
)

// BoldItalicRule is rule 25: normalize emphasis so bold is always
// "__...__", italic is always "*...*", and bold-italic is always
// "__*...*__", while leaving code spans, emoji markers, and
// filename-like underscore runs untouched.
type BoldItalicRule struct{}

func (BoldItalicRule) ID() int         { return 25 }
func (BoldItalicRule) Keyword() string { return "bold-italic" }

func (BoldItalicRule) Apply(doc *mdtext.Document, _ engine.Options) *mdtext.Document {
	m := classify(doc)
	out := make([]string, len(doc.Lines))
	for i, line := range doc.Lines {
		if m.Inert(i) {
			out[i] = line
			continue
		}
		out[i] = normalizeEmphasis(line)
	}
	return &mdtext.Document{Lines: out}
}

func normalizeEmphasis(line string) string {
	line = replaceUnprotected(line, protectedRanges(line), tripleEmphasisRe, func(groups []string) string {
		opening, content, closing := groups[1], groups[2], groups[3]
		if closing != reverseString(opening) {
			return groups[0]
		}
		return "__*" + content + "*__"
	})
	line = replaceUnprotected(line, protectedRanges(line), boldStarRe, func(groups []string) string {
		return "__" + groups[1] + "__"
	})
	// "__" bold runs (including the "__*...*__" form produced above) are
	// protected from the italic pass so their underscores stay paired.
	italicProtected := protectedRanges(line)
	for _, loc := range boldUnderRe.FindAllStringIndex(line, -1) {
		italicProtected = append(italicProtected, [2]int{loc[0], loc[1]})
	}
	line = replaceUnprotected(line, italicProtected, italicUnderRe, func(groups []string) string {
		return "*" + groups[1] + "*"
	})
	return line
}

// protectedRanges collects byte ranges of code spans, emoji markers,
// and filename-like underscore tokens that emphasis rewriting must
// never look inside.
func protectedRanges(line string) [][2]int {
	var ranges [][2]int
	for _, re := range []*regexp.Regexp{codeSpanRe, emojiProtectRe, filenameTokenRe} {
		for _, loc := range re.FindAllStringIndex(line, -1) {
			ranges = append(ranges, [2]int{loc[0], loc[1]})
		}
	}
	return ranges
}

// replaceUnprotected applies re to line, skipping any match that
// starts inside a protected range, and passes each match's
// submatches to fn.
func replaceUnprotected(line string, protected [][2]int, re *regexp.Regexp, fn func(groups []string) string) string {
	matches := re.FindAllStringSubmatchIndex(line, -1)
	if matches == nil {
		return line
	}
	var b strings.Builder
	last := 0
	for _, loc := range matches {
		start := loc[0]
		if start < last || inAnyRange(protected, start) {
			continue
		}
		groups := make([]string, len(loc)/2)
		for g := 0; g < len(loc)/2; g++ {
			if loc[2*g] < 0 {
				continue
			}
			groups[g] = line[loc[2*g]:loc[2*g+1]]
		}
		b.WriteString(line[last:start])
		b.WriteString(fn(groups))
		last = loc[1]
	}
	b.WriteString(line[last:])
	return b.String()
}

func inAnyRange(ranges [][2]int, pos int) bool {
	for _, r := range ranges {
		if pos >= r[0] && pos < r[1] {
			return true
		}
	}
	return false
}

func reverseString(s string) string {
	r := []byte(s)
	for i, j := 0, len(r)-1; i < j; i, j = i+1, j-1 {
		r[i], r[j] = r[j], r[i]
	}
	return string(r)
}
