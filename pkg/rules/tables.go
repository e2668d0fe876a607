package rules

import (
	"strings"
	"unicode/utf8"

	"github.com/aeolusmd/mdfixup/pkg/engine"
	"github.com/aeolusmd/mdfixup/pkg/mdtext"
	"github.com/aeolusmd/mdfixup/pkg/region"
)

// TableFormatRule is rule 22: align pipe-delimited tables by column,
// using Dr. Drang's bumper-padding algorithm (each cell gets exactly
// one space of padding on each side before justification). Relaxed
// tables (no separator row) get a synthesized left-aligned separator
// inserted after the first row; headerless tables (separator first)
// keep the separator in place.
type TableFormatRule struct{}

func (TableFormatRule) ID() int         { return 22 }
func (TableFormatRule) Keyword() string { return "table-format" }

func (TableFormatRule) Apply(doc *mdtext.Document, _ engine.Options) *mdtext.Document {
	m := classify(doc)
	lines := doc.Lines
	var out []string
	i := 0
	for i < len(lines) {
		if m.Lines[i].Kind != region.Table && m.Lines[i].Kind != region.TableSeparator {
			out = append(out, lines[i])
			i++
			continue
		}
		start := i
		for i < len(lines) && (m.Lines[i].Kind == region.Table || m.Lines[i].Kind == region.TableSeparator) {
			i++
		}
		formatted := formatTable(lines[start:i])
		if formatted == nil {
			out = append(out, lines[start:i]...)
			continue
		}
		out = append(out, formatted...)
	}
	return &mdtext.Document{Lines: out}
}

func formatTable(raw []string) []string {
	var lines []string
	for _, l := range raw {
		if strings.TrimSpace(l) != "" {
			lines = append(lines, l)
		}
	}
	if len(lines) < 2 {
		return nil
	}
	for _, l := range lines {
		if !strings.Contains(l, "|") {
			return nil
		}
	}

	headerless := isTableSeparator(lines[0])
	sepIdx := -1
	if headerless {
		sepIdx = 0
	} else {
		for idx, l := range lines {
			if isTableSeparator(l) {
				sepIdx = idx
				break
			}
		}
	}

	if sepIdx < 0 {
		cols := countColumns(lines[0])
		if cols <= 0 {
			return nil
		}
		sep := "|" + strings.Repeat(" --- |", cols)
		lines = append([]string{lines[0], sep}, lines[1:]...)
		sepIdx = 1
	}

	justify := parseJustify(lines[sepIdx])
	columns := len(justify)

	var content [][]string
	for idx, l := range lines {
		if idx == sepIdx {
			continue
		}
		content = append(content, splitRow(l, columns))
	}

	widths := make([]int, columns)
	for c := range widths {
		widths[c] = 2
	}
	for _, row := range content {
		for c := 0; c < columns; c++ {
			if w := utf8.RuneCountInString(row[c]); w > widths[c] {
				widths[c] = w
			}
		}
	}

	formatted := make([]string, len(content))
	for r, row := range content {
		cells := make([]string, columns)
		for c := 0; c < columns; c++ {
			cells[c] = justifyCell(row[c], justify[c], widths[c])
		}
		formatted[r] = "|" + strings.Join(cells, "|") + "|"
	}

	sepLine := buildSeparator(justify, widths)
	if headerless {
		return append([]string{sepLine}, formatted...)
	}
	result := make([]string, 0, len(formatted)+1)
	result = append(result, formatted[0], sepLine)
	result = append(result, formatted[1:]...)
	return result
}

func isTableSeparator(line string) bool {
	trimmed := strings.TrimSpace(line)
	if !strings.Contains(trimmed, "|") {
		return false
	}
	for _, c := range strings.ReplaceAll(trimmed, "|", "") {
		if c != ':' && c != '-' && c != ' ' {
			return false
		}
	}
	return true
}

func countColumns(line string) int {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return 0
	}
	pipes := strings.Count(trimmed, "|")
	if strings.HasPrefix(trimmed, "|") {
		return pipes - 1
	}
	return pipes + 1
}

func parseJustify(sepLine string) []string {
	trimmed := strings.TrimSpace(sepLine)
	trimmed = strings.TrimPrefix(trimmed, "|")
	trimmed = strings.TrimSuffix(trimmed, "|")
	cells := strings.Split(trimmed, "|")
	justify := make([]string, len(cells))
	for i, c := range cells {
		c = strings.TrimSpace(c)
		switch {
		case strings.HasPrefix(c, ":") && strings.HasSuffix(c, ":") && len(c) > 1:
			justify[i] = "::"
		case strings.HasSuffix(c, ":") && !strings.HasPrefix(c, ":"):
			justify[i] = "-:"
		default:
			justify[i] = ":-"
		}
	}
	return justify
}

func splitRow(line string, columns int) []string {
	trimmed := strings.TrimSpace(line)
	trimmed = strings.TrimPrefix(trimmed, "|")
	trimmed = strings.TrimSuffix(trimmed, "|")
	raw := strings.Split(trimmed, "|")
	cells := make([]string, columns)
	for i := 0; i < columns; i++ {
		if i < len(raw) {
			cells[i] = " " + strings.TrimSpace(raw[i]) + " "
		} else {
			cells[i] = " "
		}
	}
	return cells
}

func justifyCell(s, justify string, width int) string {
	pad := width - utf8.RuneCountInString(s)
	if pad < 0 {
		pad = 0
	}
	switch justify {
	case "::":
		left := pad / 2
		right := pad - left
		return strings.Repeat(" ", left) + s + strings.Repeat(" ", right)
	case "-:":
		return strings.Repeat(" ", pad) + s
	default:
		return s + strings.Repeat(" ", pad)
	}
}

func buildSeparator(justify []string, widths []int) string {
	cells := make([]string, len(justify))
	for i, j := range justify {
		n := widths[i]
		dashes := strings.Repeat("-", n-2)
		switch j {
		case "::":
			cells[i] = ":" + dashes + ":"
		case "-:":
			cells[i] = strings.Repeat("-", n-1) + ":"
		default:
			cells[i] = dashes + "--"
		}
	}
	return "|" + strings.Join(cells, "|") + "|"
}
