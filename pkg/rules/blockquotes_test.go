package rules_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aeolusmd/mdfixup/pkg/rules"
)

func TestBlockquoteSpacingRule_AddsSpaceAfterMarker(t *testing.T) {
	t.Parallel()

	got := apply(rules.BlockquoteSpacingRule{}, ">text")
	assert.Equal(t, "> text", got)
}

func TestBlockquoteSpacingRule_CollapsesExtraSpace(t *testing.T) {
	t.Parallel()

	got := apply(rules.BlockquoteSpacingRule{}, ">    text")
	assert.Equal(t, "> text", got)
}

func TestBlockquoteMarkersRule_CollapsesSpacesBetweenMarkers(t *testing.T) {
	t.Parallel()

	got := apply(rules.BlockquoteMarkersRule{}, "> > > nested")
	assert.Equal(t, ">>> nested", got)
}

func TestBlockquoteMarkersRule_LeavesNonBlockquoteAlone(t *testing.T) {
	t.Parallel()

	got := apply(rules.BlockquoteMarkersRule{}, "plain text")
	assert.Equal(t, "plain text", got)
}
