package rules

import (
	"github.com/aeolusmd/mdfixup/pkg/engine"
	"github.com/aeolusmd/mdfixup/pkg/mdtext"
)

// LineEndingsRule is rule 1: replace "\r\n" and lone "\r" with "\n".
type LineEndingsRule struct{}

func (LineEndingsRule) ID() int        { return 1 }
func (LineEndingsRule) Keyword() string { return "line-endings" }

func (LineEndingsRule) Apply(doc *mdtext.Document, _ engine.Options) *mdtext.Document {
	text := mdtext.NormalizeLineEndings(doc.String())
	return mdtext.Parse(text)
}
