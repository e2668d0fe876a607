package rules

import (
	"strings"

	"github.com/aeolusmd/mdfixup/pkg/engine"
	"github.com/aeolusmd/mdfixup/pkg/mdtext"
	"github.com/go-enry/go-enry/v2"
)

// CodeBeforeRule is rule 6: ensure a blank line precedes each fenced
// code block.
type CodeBeforeRule struct{}

func (CodeBeforeRule) ID() int         { return 6 }
func (CodeBeforeRule) Keyword() string { return "code-before" }

func (CodeBeforeRule) Apply(doc *mdtext.Document, _ engine.Options) *mdtext.Document {
	m := classify(doc)
	return rebuild(ensureBlankBefore(doc.Lines, fencedCodeSpans(m)))
}

// CodeAfterRule is rule 7: ensure a blank line follows each fenced
// code block.
type CodeAfterRule struct{}

func (CodeAfterRule) ID() int         { return 7 }
func (CodeAfterRule) Keyword() string { return "code-after" }

func (CodeAfterRule) Apply(doc *mdtext.Document, _ engine.Options) *mdtext.Document {
	m := classify(doc)
	return rebuild(ensureBlankAfter(doc.Lines, fencedCodeSpans(m)))
}

// CodeLangSpacingRule is rule 17: collapse whitespace between a fence
// and its language identifier ("```  python" -> "```python"), and
// canonicalize a recognized alias to go-enry's canonical lowercase
// language name (e.g. "py" -> "python", "js" -> "javascript"). An
// identifier that is not a go-enry alias is looked up as a file
// extension and replaced only when that extension names one language.
type CodeLangSpacingRule struct{}

func (CodeLangSpacingRule) ID() int         { return 17 }
func (CodeLangSpacingRule) Keyword() string { return "code-lang-spacing" }

func (CodeLangSpacingRule) Apply(doc *mdtext.Document, _ engine.Options) *mdtext.Document {
	out := make([]string, len(doc.Lines))
	for i, line := range doc.Lines {
		out[i] = normalizeFenceLine(line)
	}
	return &mdtext.Document{Lines: out}
}

func normalizeFenceLine(line string) string {
	idx := -1
	var fence string
	trimmed := line
	leading := ""
	for j, c := range line {
		if c != ' ' {
			leading = line[:j]
			trimmed = line[j:]
			break
		}
	}
	switch {
	case strings.HasPrefix(trimmed, "```"):
		fence = "```"
		idx = 3
	case strings.HasPrefix(trimmed, "~~~"):
		fence = "~~~"
		idx = 3
	default:
		return line
	}
	for idx < len(trimmed) && (trimmed[idx] == '`' || trimmed[idx] == '~') {
		fence += string(trimmed[idx])
		idx++
	}
	rest := strings.TrimSpace(trimmed[idx:])
	if rest == "" {
		return line
	}
	return leading + fence + canonicalLangAlias(rest)
}

func canonicalLangAlias(lang string) string {
	if canon, ok := enry.GetLanguageByAlias(lang); ok {
		return strings.ToLower(canon)
	}
	if canon, safe := enry.GetLanguageByExtension("." + lang); safe && canon != "" {
		return strings.ToLower(canon)
	}
	return lang
}
