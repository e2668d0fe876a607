package rules

import (
	"regexp"
	"strings"

	"github.com/aeolusmd/mdfixup/pkg/engine"
	"github.com/aeolusmd/mdfixup/pkg/mdtext"
	"github.com/aeolusmd/mdfixup/pkg/region"
)

// wrapAtomicRe matches the spans rule 14 must never break across a line
// boundary: inline code, Markdown links (so link text containing spaces
// stays whole), and inline math.
var wrapAtomicRe = regexp.MustCompile("`[^`\n]*`|\\[[^\\]\n]*\\]\\([^)\n]*\\)|\\$[^$\n]*\\$")

// longLinkRe and longCodeSpanRe match a link URL or code span of 20+
// characters. A segment containing either is left unwrapped entirely
// rather than reflowed around it, mirroring the original implementation's
// wrap_text.
var (
	longLinkRe     = regexp.MustCompile(`\[.*?\]\([^)]{20,}\)`)
	longCodeSpanRe = regexp.MustCompile("`[^`]{20,}`")
)

func hasLongAtomicSpan(text string) bool {
	return longLinkRe.MatchString(text) || longCodeSpanRe.MatchString(text)
}

// WrapRule is rule 14: rewrap prose, list-item, and blockquote content to
// the configured width, joining soft-wrapped source lines first and
// re-splitting at hard breaks (trailing two spaces).
type WrapRule struct{}

func (WrapRule) ID() int         { return 14 }
func (WrapRule) Keyword() string { return "wrap" }

func (WrapRule) Apply(doc *mdtext.Document, opts engine.Options) *mdtext.Document {
	if opts.WrapWidth <= 0 {
		return doc
	}
	m := classify(doc)
	lines := doc.Lines
	var out []string
	i := 0
	for i < len(lines) {
		switch m.Lines[i].Kind {
		case region.Prose:
			start := i
			for i < len(lines) && m.Lines[i].Kind == region.Prose {
				i++
			}
			out = append(out, wrapProse(lines[start:i], opts.WrapWidth)...)
		case region.List:
			end := listItemContentEnd(lines, i)
			out = append(out, wrapListItem(lines[i:end+1], opts.WrapWidth)...)
			i = end + 1
		case region.Blockquote:
			start := i
			for i < len(lines) && m.Lines[i].Kind == region.Blockquote {
				i++
			}
			out = append(out, wrapBlockquote(lines[start:i], opts.WrapWidth)...)
		default:
			out = append(out, lines[i])
			i++
		}
	}
	return &mdtext.Document{Lines: out}
}

// listItemContentEnd finds the end of a single list item's own content:
// its marker line plus any immediately indented continuation lines,
// stopping before a blank line, a dedent, or the next list item.
func listItemContentEnd(lines []string, i int) int {
	match := listItemRe.FindStringSubmatch(lines[i])
	if match == nil {
		return i
	}
	indent := len(match[1]) + len(match[2]) + len(match[3])
	j := i + 1
	last := i
	for j < len(lines) {
		if isBlank(lines[j]) || isListItem(lines[j]) {
			break
		}
		if leadingWidth(lines[j]) < indent {
			break
		}
		last = j
		j++
	}
	return last
}

func wrapProse(group []string, width int) []string {
	segments := splitHardBreaks(group, "")
	var out []string
	for _, seg := range segments {
		out = append(out, wrapSegment(seg.text, width, "", "")...)
		if seg.hardBreak && len(out) > 0 {
			out[len(out)-1] += "  "
		}
	}
	return out
}

func wrapListItem(group []string, width int) []string {
	match := listItemRe.FindStringSubmatch(group[0])
	if match == nil {
		return group
	}
	prefix := match[1] + match[2] + match[3]
	contPrefix := strings.Repeat(" ", len(prefix))

	contents := make([]string, len(group))
	contents[0] = match[4]
	for k := 1; k < len(group); k++ {
		contents[k] = strings.TrimSpace(strings.TrimPrefix(group[k], contPrefix))
		if leadingWidth(group[k]) < len(contPrefix) {
			contents[k] = strings.TrimSpace(group[k])
		}
	}

	segments := splitHardBreaks(contents, "")
	var out []string
	for _, seg := range segments {
		p := contPrefix
		if len(out) == 0 {
			p = prefix
		}
		wrapped := wrapSegment(seg.text, width, p, contPrefix)
		out = append(out, wrapped...)
		if seg.hardBreak && len(out) > 0 {
			out[len(out)-1] += "  "
		}
	}
	return out
}

func wrapBlockquote(group []string, width int) []string {
	prefix := ""
	contents := make([]string, len(group))
	for k, line := range group {
		match := blockquoteRe.FindStringSubmatch(line)
		if match == nil {
			contents[k] = line
			continue
		}
		if k == 0 {
			prefix = match[1] + match[2] + " "
		}
		contents[k] = match[4]
	}
	if prefix == "" {
		return group
	}

	segments := splitHardBreaks(contents, "")
	var out []string
	for _, seg := range segments {
		wrapped := wrapSegment(seg.text, width, prefix, prefix)
		out = append(out, wrapped...)
		if seg.hardBreak && len(out) > 0 {
			out[len(out)-1] += "  "
		}
	}
	return out
}

type hardBreakSegment struct {
	text      string
	hardBreak bool
}

// splitHardBreaks joins contiguous source lines with single spaces,
// cutting a new reflow segment wherever a line ends with a hard break
// (exactly two trailing spaces, not more), so the break survives wrap.
func splitHardBreaks(contents []string, _ string) []hardBreakSegment {
	var segments []hardBreakSegment
	var buf []string
	flush := func(hard bool) {
		text := strings.TrimSpace(strings.Join(buf, " "))
		segments = append(segments, hardBreakSegment{text: text, hardBreak: hard})
		buf = nil
	}
	for _, c := range contents {
		trimmed := strings.TrimRight(c, " ")
		isHard := strings.HasSuffix(c, "  ") && !strings.HasSuffix(c, "   ") && strings.TrimSpace(c) != ""
		buf = append(buf, strings.TrimSpace(trimmed))
		if isHard {
			flush(true)
		}
	}
	if len(buf) > 0 {
		flush(false)
	}
	if len(segments) == 0 {
		segments = append(segments, hardBreakSegment{})
	}
	return segments
}

func wrapSegment(text string, width int, prefix, contPrefix string) []string {
	if text == "" {
		return []string{strings.TrimRight(prefix, " ")}
	}
	if len(prefix+text) <= width {
		return []string{prefix + text}
	}
	if hasLongAtomicSpan(text) {
		return []string{prefix + text}
	}
	return wrapTokens(tokenizeWrap(text), width, prefix, contPrefix)
}

// tokenizeWrap splits text on whitespace, except that spans matched by
// wrapAtomicRe are kept as single tokens even when they contain spaces.
func tokenizeWrap(text string) []string {
	var tokens []string
	last := 0
	for _, loc := range wrapAtomicRe.FindAllStringIndex(text, -1) {
		start, end := loc[0], loc[1]
		tokens = append(tokens, strings.Fields(text[last:start])...)
		tokens = append(tokens, text[start:end])
		last = end
	}
	tokens = append(tokens, strings.Fields(text[last:])...)
	return tokens
}

// wrapTokens greedily fills lines up to width, using prefix on the first
// line and contPrefix on every continuation line. A token that alone
// exceeds width is still placed on its own line rather than split.
func wrapTokens(tokens []string, width int, prefix, contPrefix string) []string {
	if len(tokens) == 0 {
		return []string{strings.TrimRight(prefix, " ")}
	}
	var lines []string
	cur := prefix
	curEmpty := true
	for _, tok := range tokens {
		var test string
		if curEmpty {
			test = cur + tok
		} else {
			test = cur + " " + tok
		}
		if len(test) <= width || curEmpty {
			cur = test
			curEmpty = false
			continue
		}
		lines = append(lines, cur)
		cur = contPrefix + tok
		curEmpty = false
	}
	lines = append(lines, cur)
	return lines
}
