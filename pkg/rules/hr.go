package rules

import (
	"github.com/aeolusmd/mdfixup/pkg/engine"
	"github.com/aeolusmd/mdfixup/pkg/mdtext"
)

// RuleBeforeRule is rule 10: ensure a blank line before a horizontal
// rule.
type RuleBeforeRule struct{}

func (RuleBeforeRule) ID() int         { return 10 }
func (RuleBeforeRule) Keyword() string { return "rule-before" }

func (RuleBeforeRule) Apply(doc *mdtext.Document, _ engine.Options) *mdtext.Document {
	m := classify(doc)
	return rebuild(ensureBlankBefore(doc.Lines, horizontalRuleSpans(m)))
}

// RuleAfterRule is rule 11: ensure a blank line after a horizontal
// rule.
type RuleAfterRule struct{}

func (RuleAfterRule) ID() int         { return 11 }
func (RuleAfterRule) Keyword() string { return "rule-after" }

func (RuleAfterRule) Apply(doc *mdtext.Document, _ engine.Options) *mdtext.Document {
	m := classify(doc)
	return rebuild(ensureBlankAfter(doc.Lines, horizontalRuleSpans(m)))
}
