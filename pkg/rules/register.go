package rules

import (
	"github.com/aeolusmd/mdfixup/pkg/config"
	"github.com/aeolusmd/mdfixup/pkg/engine"
)

// All returns the 33 built-in rules in no particular order; the
// Registry sorts them by ID.
func All() []engine.Rule {
	return []engine.Rule{
		LineEndingsRule{},
		TrailingWhitespaceRule{},
		BlankLinesRule{},
		HeaderSpacingRule{},
		HeaderNewlineRule{},
		CodeBeforeRule{},
		CodeAfterRule{},
		ListBeforeRule{},
		ListAfterRule{},
		RuleBeforeRule{},
		RuleAfterRule{},
		ListTabsRule{},
		ListMarkerRule{},
		WrapRule{},
		FinalNewlineRule{},
		IALSpacingRule{},
		CodeLangSpacingRule{},
		RefLinkSpacingRule{},
		TaskCheckboxRule{},
		BlockquoteSpacingRule{},
		MathSpacingRule{},
		TableFormatRule{},
		EmojiSpellcheckRule{},
		TypographyRule{},
		BoldItalicRule{},
		ListMarkersRule{},
		ListResetRule{},
		ReferenceLinksRule{},
		LinksAtEndRule{},
		InlineLinksRule{},
		LiquidTagsRule{},
		BlockquoteMarkersRule{},
		CompressListsRule{},
	}
}

// NewRegistry builds the standard Registry over All() and
// engine.DefaultGroups().
func NewRegistry() *engine.Registry {
	return engine.NewRegistry(All(), engine.DefaultGroups())
}

// descriptions gives a one-line summary per rule for --init-config's
// generated comment table; purely documentation, never consulted by Apply.
var descriptions = map[int]string{
	1:  "normalize line endings to LF",
	2:  "trim trailing whitespace, keep hard-break spaces",
	3:  "collapse runs of blank lines",
	4:  "normalize ATX headline spacing",
	5:  "blank line after a headline",
	6:  "blank line before fenced code",
	7:  "blank line after fenced code",
	8:  "blank line before a list block",
	9:  "blank line after a list block",
	10: "blank line before a horizontal rule",
	11: "blank line after a horizontal rule",
	12: "tabbed indentation for list continuations",
	13: "single space after a list marker",
	14: "rewrap prose to the configured width",
	15: "exactly one trailing newline",
	16: "normalize Kramdown/Pandoc attribute spacing",
	17: "trim whitespace in fence language tags",
	18: "normalize reference-link definition spacing",
	19: "lowercase task-list checkboxes",
	20: "exactly one space after blockquote markers",
	21: "isolate display-math blocks on their own lines",
	22: "align pipe-delimited tables",
	23: "spellcheck :emoji: shortcodes",
	24: "smart quotes, dashes, and ellipses",
	25: "normalize bold/italic emphasis markers",
	26: "renumber and restyle list markers",
	27: "control ordered-list start numbering",
	28: "convert inline links to numeric references",
	29: "place reference definitions at document end",
	30: "convert reference links back to inline form",
	31: "normalize liquid tag spacing",
	32: "tighten nested blockquote markers",
	33: "remove blank lines between sibling list items",
}

func init() {
	config.DefaultRuleInfoProvider = func() []config.RuleInfo {
		all := All()
		infos := make([]config.RuleInfo, len(all))
		for i, r := range all {
			infos[i] = config.RuleInfo{ID: r.ID(), Keyword: r.Keyword(), Description: descriptions[r.ID()]}
		}
		return infos
	}
}
