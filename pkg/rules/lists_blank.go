package rules

import (
	"github.com/aeolusmd/mdfixup/pkg/engine"
	"github.com/aeolusmd/mdfixup/pkg/mdtext"
)

// ListBeforeRule is rule 8: ensure a blank line before a list block.
type ListBeforeRule struct{}

func (ListBeforeRule) ID() int         { return 8 }
func (ListBeforeRule) Keyword() string { return "list-before" }

func (ListBeforeRule) Apply(doc *mdtext.Document, _ engine.Options) *mdtext.Document {
	return rebuild(ensureBlankBefore(doc.Lines, listSpans(doc.Lines)))
}

// ListAfterRule is rule 9: ensure a blank line after a list block.
type ListAfterRule struct{}

func (ListAfterRule) ID() int         { return 9 }
func (ListAfterRule) Keyword() string { return "list-after" }

func (ListAfterRule) Apply(doc *mdtext.Document, _ engine.Options) *mdtext.Document {
	return rebuild(ensureBlankAfter(doc.Lines, listSpans(doc.Lines)))
}
