package rules

import (
	"strings"

	"github.com/aeolusmd/mdfixup/pkg/engine"
	"github.com/aeolusmd/mdfixup/pkg/mdtext"
	"github.com/aeolusmd/mdfixup/pkg/region"
)

// BlockquoteSpacingRule is rule 20: ensure exactly one space after each
// leading ">", and give a line that continues a blockquote block but
// lacks its own ">" a leading "> ".
type BlockquoteSpacingRule struct{}

func (BlockquoteSpacingRule) ID() int         { return 20 }
func (BlockquoteSpacingRule) Keyword() string { return "blockquote-spacing" }

func (BlockquoteSpacingRule) Apply(doc *mdtext.Document, _ engine.Options) *mdtext.Document {
	lines := doc.Lines
	m := classify(doc)
	out := make([]string, len(lines))
	for i, line := range lines {
		if match := blockquoteRe.FindStringSubmatch(line); match != nil {
			indent, markers, content := match[1], match[2], match[4]
			out[i] = indent + markers + " " + content
			continue
		}
		if i > 0 && isBlockquote(out[i-1]) && !isBlank(line) && continuesBlockquote(m, i) {
			out[i] = "> " + line
			continue
		}
		out[i] = line
	}
	return &mdtext.Document{Lines: out}
}

// continuesBlockquote reports whether line i, which lacks its own ">",
// is a lazy-continuation of the blockquote that line i-1 belongs to
// (rather than the start of a heading, list, code block, table, or
// other block): that is, line i is classified as prose.
func continuesBlockquote(m *region.Map, i int) bool {
	return m.Lines[i].Kind == region.Prose
}

// BlockquoteMarkersRule is rule 32: remove spaces between consecutive
// leading ">" markers ("> > >" -> ">>>"), preserving the single space
// between the final ">" and the content.
type BlockquoteMarkersRule struct{}

func (BlockquoteMarkersRule) ID() int         { return 32 }
func (BlockquoteMarkersRule) Keyword() string { return "blockquote-markers" }

func (BlockquoteMarkersRule) Apply(doc *mdtext.Document, _ engine.Options) *mdtext.Document {
	out := make([]string, len(doc.Lines))
	for i, line := range doc.Lines {
		out[i] = collapseBlockquoteMarkers(line)
	}
	return &mdtext.Document{Lines: out}
}

func collapseBlockquoteMarkers(line string) string {
	trimmed := strings.TrimLeft(line, " \t")
	if !strings.HasPrefix(trimmed, ">") {
		return line
	}
	leading := line[:len(line)-len(trimmed)]
	i := 0
	markers := 0
	for i < len(trimmed) {
		if trimmed[i] == '>' {
			markers++
			i++
			continue
		}
		if trimmed[i] == ' ' && i+1 < len(trimmed) && trimmed[i+1] == '>' {
			i++
			continue
		}
		break
	}
	rest := strings.TrimPrefix(trimmed[i:], " ")
	return leading + strings.Repeat(">", markers) + " " + rest
}
