package rules

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/aeolusmd/mdfixup/pkg/engine"
	"github.com/aeolusmd/mdfixup/pkg/mdtext"
	"github.com/aeolusmd/mdfixup/pkg/region"
)

var (
	inlineLinkRe  = regexp.MustCompile(`\[([^\]]+)\]\(([^)\s]+)(?:\s+"([^"]*)")?\)`)
	numericRefDef = regexp.MustCompile(`^\[(\d+)\]:\s`)
	refLinkUseRe  = regexp.MustCompile(`\[([^\]]+)\]\[([^\]]*)\]`)
	anyRefDefRe   = regexp.MustCompile(`^\[([^\]]+)\]:\s*(\S+)(?:\s+"([^"]*)")?\s*$`)
)

// linkDef is a parsed reference-link definition's target.
type linkDef struct {
	url, title string
}

// ReferenceLinksRule is rule 28: rewrite inline links as numeric
// reference links and collect their definitions. Rule 30 (InlineLinks)
// overriding this rule and rule 29's end-vs-beginning placement are
// both carried on Options because neither later rule runs in time to
// influence this one: the driver resolves both rules' skip status up
// front and passes the result in as opts.InlineLinks/opts.LinksAtEnd.
type ReferenceLinksRule struct{}

func (ReferenceLinksRule) ID() int         { return 28 }
func (ReferenceLinksRule) Keyword() string { return "reference-links" }

func (ReferenceLinksRule) Apply(doc *mdtext.Document, opts engine.Options) *mdtext.Document {
	if opts.InlineLinks {
		return doc
	}
	m := classify(doc)

	maxExisting := 0
	for _, line := range doc.Lines {
		if match := numericRefDef.FindStringSubmatch(strings.TrimSpace(line)); match != nil {
			if n, err := strconv.Atoi(match[1]); err == nil && n > maxExisting {
				maxExisting = n
			}
		}
	}
	nextID := maxExisting + 1

	var definitions []string
	lines := make([]string, len(doc.Lines))
	changed := false
	for i, line := range doc.Lines {
		if m.Inert(i) {
			lines[i] = line
			continue
		}
		lines[i] = replaceUnprotectedLinks(m, i, line, func(groups []string) string {
			text, url, title := groups[1], groups[2], groups[3]
			id := nextID
			nextID++
			changed = true
			if title != "" {
				definitions = append(definitions, fmt.Sprintf("[%d]: %s \"%s\"", id, url, title))
			} else {
				definitions = append(definitions, fmt.Sprintf("[%d]: %s", id, url))
			}
			return fmt.Sprintf("[%s][%d]", text, id)
		})
	}
	if !changed {
		return doc
	}

	if opts.LinksAtEnd {
		lines = append(lines, "")
		lines = append(lines, definitions...)
	} else {
		block := append(append([]string{}, definitions...), "")
		lines = append(block, lines...)
	}
	return &mdtext.Document{Lines: lines}
}

func replaceUnprotectedLinks(m *region.Map, i int, line string, fn func(groups []string) string) string {
	locs := inlineLinkRe.FindAllStringSubmatchIndex(line, -1)
	if locs == nil {
		return line
	}
	var b strings.Builder
	last := 0
	for _, loc := range locs {
		start := loc[0]
		if start < last || m.InInlineCode(i, start) {
			continue
		}
		groups := make([]string, len(loc)/2)
		for g := 0; g < len(loc)/2; g++ {
			if loc[2*g] < 0 {
				continue
			}
			groups[g] = line[loc[2*g]:loc[2*g+1]]
		}
		b.WriteString(line[last:start])
		b.WriteString(fn(groups))
		last = loc[1]
	}
	b.WriteString(line[last:])
	return b.String()
}

// LinksAtEndRule is rule 29. Its placement decision is applied inside
// ReferenceLinksRule via Options.LinksAtEnd (computed from this rule's
// skip status before the pipeline runs), so this rule's own Apply has
// nothing left to do when the engine calls it.
type LinksAtEndRule struct{}

func (LinksAtEndRule) ID() int         { return 29 }
func (LinksAtEndRule) Keyword() string { return "links-at-end" }

func (LinksAtEndRule) Apply(doc *mdtext.Document, _ engine.Options) *mdtext.Document {
	return doc
}

// InlineLinksRule is rule 30: convert reference-style links back to
// inline form using their definitions, removing the definitions it
// consumes. It overrides rule 28 via Options.InlineLinks.
type InlineLinksRule struct{}

func (InlineLinksRule) ID() int         { return 30 }
func (InlineLinksRule) Keyword() string { return "inline-links" }

func (InlineLinksRule) Apply(doc *mdtext.Document, _ engine.Options) *mdtext.Document {
	m := classify(doc)

	defs := map[string]linkDef{}
	defLines := map[int]bool{}
	for i, line := range doc.Lines {
		trimmed := strings.TrimSpace(line)
		if match := anyRefDefRe.FindStringSubmatch(trimmed); match != nil {
			id := strings.ToLower(match[1])
			defs[id] = linkDef{url: match[2], title: match[3]}
			defLines[i] = true
		}
	}
	if len(defs) == 0 {
		return doc
	}

	consumed := map[string]bool{}
	lines := make([]string, len(doc.Lines))
	for i, line := range doc.Lines {
		if m.Inert(i) || defLines[i] {
			lines[i] = line
			continue
		}
		lines[i] = replaceUnprotectedRefUses(m, i, line, defs, consumed)
	}
	if len(consumed) == 0 {
		return &mdtext.Document{Lines: lines}
	}

	var out []string
	for i, line := range lines {
		if defLines[i] {
			trimmed := strings.TrimSpace(doc.Lines[i])
			match := anyRefDefRe.FindStringSubmatch(trimmed)
			if match != nil && consumed[strings.ToLower(match[1])] {
				continue
			}
		}
		out = append(out, line)
	}
	return &mdtext.Document{Lines: out}
}

func replaceUnprotectedRefUses(m *region.Map, i int, line string, defs map[string]linkDef, consumed map[string]bool) string {
	locs := refLinkUseRe.FindAllStringSubmatchIndex(line, -1)
	if locs == nil {
		return line
	}
	var b strings.Builder
	last := 0
	for _, loc := range locs {
		start := loc[0]
		if start < last || m.InInlineCode(i, start) {
			continue
		}
		text := line[loc[2]:loc[3]]
		refID := text
		if loc[4] >= 0 && loc[5] > loc[4] {
			refID = line[loc[4]:loc[5]]
		}
		id := strings.ToLower(strings.TrimSpace(refID))
		d, ok := defs[id]
		if !ok {
			continue
		}
		consumed[id] = true
		var replacement string
		if d.title != "" {
			replacement = fmt.Sprintf("[%s](%s \"%s\")", text, d.url, d.title)
		} else {
			replacement = fmt.Sprintf("[%s](%s)", text, d.url)
		}
		b.WriteString(line[last:start])
		b.WriteString(replacement)
		last = loc[1]
	}
	b.WriteString(line[last:])
	return b.String()
}
