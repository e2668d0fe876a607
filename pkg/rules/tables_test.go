package rules_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aeolusmd/mdfixup/pkg/rules"
)

func TestTableFormatRule_AlignsColumnsAndPadsSeparator(t *testing.T) {
	t.Parallel()

	got := apply(rules.TableFormatRule{}, "| a | bb |\n| --- | --- |\n| 1 | 2 |")
	assert.Equal(t, "| a | bb |\n|---|----|\n| 1 | 2  |", got)
}

func TestTableFormatRule_SynthesizesSeparatorForRelaxedTable(t *testing.T) {
	t.Parallel()

	got := apply(rules.TableFormatRule{}, "| a | b |\n| 1 | 2 |")
	assert.Contains(t, got, "|-")
	assert.Contains(t, got, "| a | b |")
}

func TestTableFormatRule_LeavesNonTableProseAlone(t *testing.T) {
	t.Parallel()

	got := apply(rules.TableFormatRule{}, "just some prose")
	assert.Equal(t, "just some prose", got)
}
