// Package engine owns the ordered rule table, skip-set resolution, and
// execution of the 33 built-in rules plus the document recompute
// discipline between them. It has no knowledge of any individual
// rule's logic — that lives in pkg/rules — only of rule identity and
// ordering.
package engine

import "github.com/aeolusmd/mdfixup/pkg/mdtext"

// Rule is a pure text transformation, identified by a stable numeric
// ID and keyword. Implementations must be side-effect free: given the
// same Document and Options they always return the same result.
type Rule interface {
	// ID is the rule's contractual position, 1..33.
	ID() int
	// Keyword is the stable CLI/config name (e.g. "wrap", "end-newline").
	Keyword() string
	// Apply transforms doc and returns the result. A rule that finds
	// nothing to change returns doc unmodified (rules never fail).
	Apply(doc *mdtext.Document, opts Options) *mdtext.Document
}

// Options carries the run-time knobs a rule may need. Individual rules
// read only the fields relevant to them; unused fields are ignored.
type Options struct {
	// WrapWidth is rule 14's target width; 0 disables wrapping.
	WrapWidth int
	// ReferenceLinks enables rule 28 (inline -> numeric reference links).
	ReferenceLinks bool
	// LinksAtEnd controls rule 29's placement of collected definitions.
	LinksAtEnd bool
	// InlineLinks enables rule 30 (reference -> inline, overrides 28).
	InlineLinks bool
	// SkipEmDash and SkipGuillemet gate rule 24's sub-behaviors.
	SkipEmDash    bool
	SkipGuillemet bool
}
