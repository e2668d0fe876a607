package rules

import (
	"strconv"
	"strings"

	"github.com/aeolusmd/mdfixup/pkg/engine"
	"github.com/aeolusmd/mdfixup/pkg/mdtext"
)

// ListMarkerRule is rule 13: exactly one space after the marker,
// collapsing multiple spaces.
type ListMarkerRule struct{}

func (ListMarkerRule) ID() int         { return 13 }
func (ListMarkerRule) Keyword() string { return "list-marker" }

func (ListMarkerRule) Apply(doc *mdtext.Document, _ engine.Options) *mdtext.Document {
	out := make([]string, len(doc.Lines))
	for i, line := range doc.Lines {
		match := listItemRe.FindStringSubmatch(line)
		if match == nil {
			out[i] = line
			continue
		}
		out[i] = match[1] + match[2] + " " + match[4]
	}
	return &mdtext.Document{Lines: out}
}

// ListTabsRule is rule 12: convert the leading indent of list-item
// continuation and nested items to tabs, one tab per detected
// indentation level. The unit (2 or 4 spaces) is detected per list
// block from the first indented item found within it, grounded on the
// original implementation's detect_list_indent_unit.
type ListTabsRule struct{}

func (ListTabsRule) ID() int         { return 12 }
func (ListTabsRule) Keyword() string { return "list-tabs" }

func (ListTabsRule) Apply(doc *mdtext.Document, _ engine.Options) *mdtext.Document {
	lines := append([]string(nil), doc.Lines...)
	for _, sp := range listSpans(lines) {
		unit := detectIndentUnit(lines, sp)
		for i := sp.Start; i <= sp.End; i++ {
			lines[i] = spacesToTabs(lines[i], unit)
		}
	}
	return &mdtext.Document{Lines: lines}
}

// detectIndentUnit scans forward within sp for the first item indented
// by 2+ spaces and rounds its width to 2 or 4; defaults to 2.
func detectIndentUnit(lines []string, sp span) int {
	for i := sp.Start + 1; i <= sp.End && i < len(lines); i++ {
		line := lines[i]
		if strings.TrimSpace(line) == "" {
			continue
		}
		spaceCount := 0
		for _, c := range line {
			if c != ' ' {
				break
			}
			spaceCount++
		}
		if spaceCount >= 2 {
			if spaceCount >= 4 {
				return 4
			}
			return 2
		}
	}
	return 2
}

// spacesToTabs rewrites a line's leading space run as one tab per unit
// spaces, leaving any leading tabs and the rest of the line untouched.
func spacesToTabs(line string, unit int) string {
	spaceCount := 0
	for _, c := range line {
		if c != ' ' {
			break
		}
		spaceCount++
	}
	if spaceCount == 0 {
		return line
	}
	tabs := spaceCount / unit
	if tabs == 0 {
		return line
	}
	return strings.Repeat("\t", tabs) + line[spaceCount:]
}

// listCtx tracks one nesting level's current marker state while
// walking a document top to bottom, mirroring the original
// implementation's list_context_stack.
type listCtx struct {
	level     int
	numbered  bool
	current   int
}

// ListMarkersRule is rule 26: renumber ordered lists sequentially from
// whatever starting number the input used, and standardize bullet
// markers by depth (0: "-", 1: "*", 2: "+", repeating).
type ListMarkersRule struct{}

func (ListMarkersRule) ID() int         { return 26 }
func (ListMarkersRule) Keyword() string { return "list-markers" }

func (ListMarkersRule) Apply(doc *mdtext.Document, _ engine.Options) *mdtext.Document {
	out := make([]string, len(doc.Lines))
	var stack []listCtx

	for i, line := range doc.Lines {
		match := listItemRe.FindStringSubmatch(line)
		if match == nil {
			out[i] = line
			continue
		}
		indent, marker, content := match[1], match[2], match[4]
		level := leadingWidth(indent) / 4
		numbered := isOrderedMarker(marker)

		for len(stack) > 0 && stack[len(stack)-1].level > level {
			stack = stack[:len(stack)-1]
		}

		var ctx *listCtx
		if len(stack) > 0 && stack[len(stack)-1].level == level {
			ctx = &stack[len(stack)-1]
		}

		var newMarker string
		switch {
		case ctx != nil && ctx.numbered == numbered && numbered:
			ctx.current++
			newMarker = strconv.Itoa(ctx.current) + "."
		case ctx != nil && ctx.numbered == numbered && !numbered:
			newMarker = bulletForLevel(level)
		case numbered:
			start := parseOrderedStart(marker)
			stack = append(stack, listCtx{level: level, numbered: true, current: start})
			newMarker = strconv.Itoa(start) + "."
		default:
			stack = append(stack, listCtx{level: level, numbered: false})
			newMarker = bulletForLevel(level)
		}

		out[i] = indent + newMarker + " " + content
	}
	return &mdtext.Document{Lines: out}
}

func isOrderedMarker(marker string) bool {
	return marker != "" && (marker[0] >= '0' && marker[0] <= '9')
}

func parseOrderedStart(marker string) int {
	digits := strings.TrimRight(marker, ".)")
	n, err := strconv.Atoi(digits)
	if err != nil {
		return 1
	}
	return n
}

func bulletForLevel(level int) string {
	switch level % 3 {
	case 0:
		return "-"
	case 1:
		return "*"
	default:
		return "+"
	}
}

// ListResetRule is rule 27: force every ordered list's first item to
// "1.", renumbering subsequent items consecutively. When this rule is
// skipped, rule 26 has already renumbered each list consecutively from
// whatever starting number the input had, so no further change is
// needed — the rule's absence is itself the "preserve starting number"
// behavior.
type ListResetRule struct{}

func (ListResetRule) ID() int         { return 27 }
func (ListResetRule) Keyword() string { return "list-reset" }

func (ListResetRule) Apply(doc *mdtext.Document, _ engine.Options) *mdtext.Document {
	lines := append([]string(nil), doc.Lines...)
	for _, sp := range listSpans(lines) {
		resetOrderedNumbersInSpan(lines, sp)
	}
	return &mdtext.Document{Lines: lines}
}

// resetOrderedNumbersInSpan finds each distinct ordered-list run
// within sp (a run is a maximal sequence of ordered items at the same
// level with no intervening item at a shallower level) and rewrites it
// to start at 1.
func resetOrderedNumbersInSpan(lines []string, sp span) {
	type run struct {
		level int
		start int
		items []int // line indices
	}
	var stack []*run
	var runs []*run

	for i := sp.Start; i <= sp.End; i++ {
		match := listItemRe.FindStringSubmatch(lines[i])
		if match == nil {
			continue
		}
		indent, marker := match[1], match[2]
		if !isOrderedMarker(marker) {
			continue
		}
		level := leadingWidth(indent) / 4

		for len(stack) > 0 && stack[len(stack)-1].level > level {
			stack = stack[:len(stack)-1]
		}
		if len(stack) > 0 && stack[len(stack)-1].level == level {
			stack[len(stack)-1].items = append(stack[len(stack)-1].items, i)
			continue
		}
		r := &run{level: level, items: []int{i}}
		stack = append(stack, r)
		runs = append(runs, r)
	}

	for _, r := range runs {
		for n, idx := range r.items {
			match := listItemRe.FindStringSubmatch(lines[idx])
			lines[idx] = match[1] + strconv.Itoa(n+1) + "." + " " + match[4]
		}
	}
}

// CompressListsRule is rule 33: remove blank lines between consecutive
// list items at the same nesting level, as long as doing so does not
// merge the list into surrounding non-list prose.
type CompressListsRule struct{}

func (CompressListsRule) ID() int         { return 33 }
func (CompressListsRule) Keyword() string { return "compress-lists" }

func (CompressListsRule) Apply(doc *mdtext.Document, _ engine.Options) *mdtext.Document {
	lines := doc.Lines
	spans := listSpans(lines)
	inSpan := make(map[int]span, len(lines))
	for _, sp := range spans {
		for i := sp.Start; i <= sp.End; i++ {
			inSpan[i] = sp
		}
	}

	var out []string
	for i := 0; i < len(lines); i++ {
		if isBlank(lines[i]) {
			sp, ok := inSpan[i]
			if ok && i > sp.Start && i < sp.End &&
				isListItem(lines[i-1]) && isListItem(lines[i+1]) &&
				leadingWidth(lines[i-1]) == leadingWidth(lines[i+1]) {
				continue
			}
		}
		out = append(out, lines[i])
	}
	return &mdtext.Document{Lines: out}
}
