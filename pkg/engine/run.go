package engine

import "github.com/aeolusmd/mdfixup/pkg/mdtext"

// Run executes every registered rule in ascending ID order, skipping
// any rule whose ID is in skip, and threads the document through in
// sequence so later rules observe earlier rules' output. The ordering
// is a design commitment: rule 4 runs before rule 5, 28 before 29 and
// 30, etc., simply because the registry is sorted by ID and this loop
// never reorders it.
func Run(reg *Registry, doc *mdtext.Document, skip SkipSet, opts Options) *mdtext.Document {
	opts.SkipEmDash = skip.SkipEmDash
	opts.SkipGuillemet = skip.SkipGuillemet
	// Rules 28-30 interact across their own ordering: rule 28 needs to
	// know rule 29's and rule 30's skip status before it runs, which it
	// cannot observe any other way, so the driver resolves it here.
	opts.ReferenceLinks = !skip.Skip(28)
	opts.LinksAtEnd = !skip.Skip(29)
	opts.InlineLinks = !skip.Skip(30)

	for _, rule := range reg.Rules() {
		if skip.Skip(rule.ID()) {
			continue
		}
		doc = rule.Apply(doc, opts)
	}
	return doc
}
