package rules

import (
	"github.com/aeolusmd/mdfixup/pkg/engine"
	"github.com/aeolusmd/mdfixup/pkg/mdtext"
)

// FinalNewlineRule is rule 15: ensure the file ends with exactly one
// trailing LF and no extra trailing blank lines.
type FinalNewlineRule struct{}

func (FinalNewlineRule) ID() int         { return 15 }
func (FinalNewlineRule) Keyword() string { return "end-newline" }

func (FinalNewlineRule) Apply(doc *mdtext.Document, _ engine.Options) *mdtext.Document {
	lines := doc.Lines
	end := len(lines)
	for end > 0 && isBlank(lines[end-1]) {
		end--
	}
	lines = append(append([]string(nil), lines[:end]...), "")
	return &mdtext.Document{Lines: lines}
}
