// Package replace implements the Replacements Engine: a YAML-defined
// list of regex substitutions applied before and/or after the rule
// pipeline, with inert regions masked by default.
package replace

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/aeolusmd/mdfixup/pkg/mdtext"
	"github.com/aeolusmd/mdfixup/pkg/region"
)

// Timing selects when a Replacement runs relative to the rule pipeline.
type Timing string

const (
	Before Timing = "before"
	After  Timing = "after"
)

// Replacement is one entry of a replacements file.
type Replacement struct {
	Name          string `yaml:"name"`
	Pattern       string `yaml:"pattern"`
	Replacement   string `yaml:"replacement"`
	Timing        Timing `yaml:"timing"`
	InCodeBlocks  bool   `yaml:"in_code_blocks"`
	InFrontmatter bool   `yaml:"in_frontmatter"`

	compiled *regexp.Regexp
}

// File is the top-level shape of a replacements YAML file.
type File struct {
	Replacements []Replacement `yaml:"replacements"`
}

// CompileError reports a replacement whose pattern failed to compile;
// the run continues without it.
type CompileError struct {
	Name string
	Err  error
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("replacement %q: %v", e.Name, e.Err)
}

// LoadFile reads and parses a replacements YAML file at path.
func LoadFile(path string) ([]Replacement, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read replacements file: %w", err)
	}
	var f File
	if err := yaml.Unmarshal(content, &f); err != nil {
		return nil, fmt.Errorf("parse replacements file: %w", err)
	}
	return f.Replacements, nil
}

// Compile validates every pattern in reps, returning the subset that
// compiled successfully plus one CompileError per failure.
func Compile(reps []Replacement) ([]Replacement, []error) {
	var ok []Replacement
	var errs []error
	for _, r := range reps {
		re, err := regexp.Compile(r.Pattern)
		if err != nil {
			errs = append(errs, &CompileError{Name: r.Name, Err: err})
			continue
		}
		r.compiled = re
		ok = append(ok, r)
	}
	return ok, errs
}

// Apply runs every replacement in reps whose Timing matches t, in
// order, over doc. Patterns are applied to the whole document joined
// by "\n" so multi-line patterns work; inert regions are masked first
// (substituted with placeholder runs of a sentinel rune) unless a
// replacement opts in to seeing them via InCodeBlocks/InFrontmatter.
func Apply(doc *mdtext.Document, reps []Replacement, t Timing) *mdtext.Document {
	text := doc.String()
	for _, r := range reps {
		if r.Timing != t || r.compiled == nil {
			continue
		}
		text = applyOne(text, r)
	}
	return mdtext.Parse(text)
}

func applyOne(text string, r Replacement) string {
	if r.InCodeBlocks && r.InFrontmatter {
		return r.compiled.ReplaceAllString(text, r.Replacement)
	}

	doc := mdtext.Parse(text)
	m := region.Classify(doc)
	masked := make([]string, len(doc.Lines))
	for i, line := range doc.Lines {
		if shouldMask(m, i, r) {
			masked[i] = strings.Repeat("\x00", len(line))
		} else {
			masked[i] = line
		}
	}
	maskedText := strings.Join(masked, "\n")

	locs := r.compiled.FindAllStringIndex(maskedText, -1)
	if locs == nil {
		return text
	}
	var b strings.Builder
	last := 0
	for _, loc := range locs {
		start, end := loc[0], loc[1]
		if strings.Contains(maskedText[start:end], "\x00") {
			continue
		}
		b.WriteString(text[last:start])
		b.WriteString(r.compiled.ReplaceAllString(text[start:end], r.Replacement))
		last = end
	}
	b.WriteString(text[last:])
	return b.String()
}

func shouldMask(m *region.Map, i int, r Replacement) bool {
	kind := m.Lines[i].Kind
	if kind == region.Frontmatter {
		return !r.InFrontmatter
	}
	if kind == region.FencedCode || kind == region.IndentedCode {
		return !r.InCodeBlocks
	}
	return false
}
