package rules

import (
	"regexp"
	"strings"

	"github.com/aeolusmd/mdfixup/pkg/emoji"
	"github.com/aeolusmd/mdfixup/pkg/engine"
	"github.com/aeolusmd/mdfixup/pkg/mdtext"
	"github.com/aeolusmd/mdfixup/pkg/region"
)

var emojiNameRe = regexp.MustCompile(`:([A-Za-z0-9_+-]+):`)

// EmojiSpellcheckRule is rule 23: correct near-miss emoji shortnames
// outside inert regions to their unique closest dictionary entry.
type EmojiSpellcheckRule struct{}

func (EmojiSpellcheckRule) ID() int         { return 23 }
func (EmojiSpellcheckRule) Keyword() string { return "emoji-spellcheck" }

func (EmojiSpellcheckRule) Apply(doc *mdtext.Document, _ engine.Options) *mdtext.Document {
	m := classify(doc)
	out := make([]string, len(doc.Lines))
	for i, line := range doc.Lines {
		if m.Inert(i) {
			out[i] = line
			continue
		}
		out[i] = rewriteEmojiNames(m, i, line)
	}
	return &mdtext.Document{Lines: out}
}

func rewriteEmojiNames(m *region.Map, lineIdx int, line string) string {
	locs := emojiNameRe.FindAllStringIndex(line, -1)
	if locs == nil {
		return line
	}
	var b strings.Builder
	last := 0
	for _, loc := range locs {
		start, end := loc[0], loc[1]
		b.WriteString(line[last:start])
		if m.InInlineCode(lineIdx, start) {
			b.WriteString(line[start:end])
		} else {
			name := line[start+1 : end-1]
			if corrected := emoji.Match(name); corrected != "" {
				b.WriteString(":" + corrected + ":")
			} else {
				b.WriteString(line[start:end])
			}
		}
		last = end
	}
	b.WriteString(line[last:])
	return b.String()
}
