package pretty

import (
	"strconv"
	"strings"

	"github.com/aeolusmd/mdfixup/pkg/pipeline"
)

const summaryDividerWidth = 40

// FormatSummaryOneLine formats run statistics as a single line, used
// after an --overwrite run over multiple files.
func (s *Styles) FormatSummaryOneLine(stats pipeline.Stats) string {
	if stats.FilesModified == 0 && stats.FilesErrored == 0 {
		return s.Success.Render("no changes needed") +
			s.Dim.Render(" ("+strconv.Itoa(stats.FilesProcessed)+" files checked)") + "\n"
	}

	var parts []string
	if stats.FilesModified > 0 {
		parts = append(parts, s.Success.Render(strconv.Itoa(stats.FilesModified)+" files fixed"))
	}
	if stats.FilesErrored > 0 {
		parts = append(parts, s.Failure.Render(strconv.Itoa(stats.FilesErrored)+" files errored"))
	}
	parts = append(parts, "out of "+strconv.Itoa(stats.FilesProcessed)+" checked")

	return strings.Join(parts, ", ") + "\n"
}

// FormatSummary formats run statistics as a multi-line summary block.
func (s *Styles) FormatSummary(stats pipeline.Stats) string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(s.SummaryTitle.Render("Summary"))
	b.WriteString("\n")
	b.WriteString(strings.Repeat("-", summaryDividerWidth))
	b.WriteString("\n")

	b.WriteString("  Files checked:  " + s.SummaryValue.Render(strconv.Itoa(stats.FilesProcessed)) + "\n")
	if stats.FilesModified > 0 {
		b.WriteString("  Files fixed:    " + s.Success.Render(strconv.Itoa(stats.FilesModified)) + "\n")
	}
	if stats.FilesErrored > 0 {
		b.WriteString("  Files errored:  " + s.Failure.Render(strconv.Itoa(stats.FilesErrored)) + "\n")
	}

	b.WriteString("\n")
	if stats.FilesErrored > 0 {
		b.WriteString(s.Failure.Render("Run finished with errors"))
	} else {
		b.WriteString(s.Success.Render("Run finished cleanly"))
	}
	b.WriteString("\n")

	return b.String()
}
