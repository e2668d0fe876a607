// Package typography holds the static substitution tables used by
// rule 24: curly quotes to straight, en/em dashes, ellipses, and
// guillemets.
package typography

import "strings"

// Substitution is one typographic replacement.
type Substitution struct {
	From string
	To   string
	// Sub names the --skip sub-keyword that disables this entry, or ""
	// if it is never individually skippable.
	Sub string
}

// Table lists the substitutions in application order. Order matters
// only in that each entry scans the result of the previous one; none
// of the patterns below can re-trigger each other.
var Table = []Substitution{
	{From: "“", To: `"`},   // left double quote
	{From: "”", To: `"`},   // right double quote
	{From: "‘", To: "'"},   // left single quote
	{From: "’", To: "'"},   // right single quote
	{From: "–", To: "-"},   // en dash
	{From: "—", To: "--", Sub: "em-dash"},
	{From: "…", To: "..."}, // ellipsis
	{From: "«", To: `"`, Sub: "guillemet"},
	{From: "»", To: `"`, Sub: "guillemet"},
}

// Apply runs every non-skipped substitution over s.
func Apply(s string, skip map[string]bool) string {
	for _, sub := range Table {
		if sub.Sub != "" && skip[sub.Sub] {
			continue
		}
		if strings.Contains(s, sub.From) {
			s = strings.ReplaceAll(s, sub.From, sub.To)
		}
	}
	return s
}
