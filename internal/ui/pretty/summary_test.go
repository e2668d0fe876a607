package pretty_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aeolusmd/mdfixup/internal/ui/pretty"
	"github.com/aeolusmd/mdfixup/pkg/pipeline"
)

func TestFormatSummary_Basic(t *testing.T) {
	styles := pretty.NewStyles(false)

	stats := pipeline.Stats{FilesProcessed: 10, FilesModified: 3}

	result := styles.FormatSummary(stats)

	assert.Contains(t, result, "Summary")
	assert.Contains(t, result, "Files checked:")
	assert.Contains(t, result, "10")
	assert.Contains(t, result, "Files fixed:")
	assert.Contains(t, result, "3")
	assert.Contains(t, result, "Run finished cleanly")
}

func TestFormatSummary_NoChanges(t *testing.T) {
	styles := pretty.NewStyles(false)

	stats := pipeline.Stats{FilesProcessed: 5}

	result := styles.FormatSummary(stats)

	assert.NotContains(t, result, "Files fixed:")
	assert.Contains(t, result, "Run finished cleanly")
}

func TestFormatSummary_WithErrors(t *testing.T) {
	styles := pretty.NewStyles(false)

	stats := pipeline.Stats{FilesProcessed: 10, FilesModified: 2, FilesErrored: 1}

	result := styles.FormatSummary(stats)

	assert.Contains(t, result, "Files errored:")
	assert.Contains(t, result, "Run finished with errors")
}

func TestFormatSummaryOneLine_NoChanges(t *testing.T) {
	styles := pretty.NewStyles(false)

	stats := pipeline.Stats{FilesProcessed: 5}

	result := styles.FormatSummaryOneLine(stats)

	assert.Contains(t, result, "no changes needed")
	assert.Contains(t, result, "5 files checked")
}

func TestFormatSummaryOneLine_WithFixes(t *testing.T) {
	styles := pretty.NewStyles(false)

	stats := pipeline.Stats{FilesProcessed: 10, FilesModified: 3}

	result := styles.FormatSummaryOneLine(stats)

	assert.Contains(t, result, "3 files fixed")
	assert.Contains(t, result, "out of 10 checked")
}

func TestFormatSummaryOneLine_WithErrors(t *testing.T) {
	styles := pretty.NewStyles(false)

	stats := pipeline.Stats{FilesProcessed: 10, FilesModified: 1, FilesErrored: 2}

	result := styles.FormatSummaryOneLine(stats)

	assert.Contains(t, result, "1 files fixed")
	assert.Contains(t, result, "2 files errored")
}
