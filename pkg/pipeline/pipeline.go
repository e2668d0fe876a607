// Package pipeline wires the replacements engine and the rule engine
// together into a single driver: before-replacements, then the
// ordered rule pass, then after-replacements.
package pipeline

import (
	"github.com/aeolusmd/mdfixup/pkg/engine"
	"github.com/aeolusmd/mdfixup/pkg/mdtext"
	"github.com/aeolusmd/mdfixup/pkg/replace"
)

// Pipeline is a reusable driver built from a fixed rule registry and
// compiled replacement list; it holds no per-document state.
type Pipeline struct {
	Registry     *engine.Registry
	Replacements []replace.Replacement
}

// New builds a Pipeline over reg using the already-compiled
// replacements reps (see replace.Compile).
func New(reg *engine.Registry, reps []replace.Replacement) *Pipeline {
	return &Pipeline{Registry: reg, Replacements: reps}
}

// Process runs the full driver over src and returns the resulting text.
func (p *Pipeline) Process(src string, skip engine.SkipSet, opts engine.Options) string {
	doc := mdtext.Parse(src)
	doc = replace.Apply(doc, p.Replacements, replace.Before)
	doc = engine.Run(p.Registry, doc, skip, opts)
	doc = replace.Apply(doc, p.Replacements, replace.After)
	return doc.String()
}
