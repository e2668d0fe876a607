package rules_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aeolusmd/mdfixup/pkg/rules"
)

func TestListMarkerRule_CollapsesExtraSpaces(t *testing.T) {
	t.Parallel()

	got := apply(rules.ListMarkerRule{}, "-    one")
	assert.Equal(t, "- one", got)
}

func TestListMarkersRule_RenumbersOrderedList(t *testing.T) {
	t.Parallel()

	got := apply(rules.ListMarkersRule{}, "5. one\n5. two\n5. three")
	assert.Equal(t, "5. one\n6. two\n7. three", got)
}

func TestListMarkersRule_StandardizesBulletsByDepth(t *testing.T) {
	t.Parallel()

	got := apply(rules.ListMarkersRule{}, "* top\n    + nested")
	assert.Equal(t, "- top\n    * nested", got)
}

func TestListResetRule_ForcesFirstItemToOne(t *testing.T) {
	t.Parallel()

	got := apply(rules.ListResetRule{}, "5. one\n6. two\n7. three")
	assert.Equal(t, "1. one\n2. two\n3. three", got)
}

func TestCompressListsRule_RemovesBlankBetweenSiblingItems(t *testing.T) {
	t.Parallel()

	got := apply(rules.CompressListsRule{}, "- one\n\n- two")
	assert.Equal(t, "- one\n- two", got)
}

func TestCompressListsRule_LeavesBlankBeforeListAlone(t *testing.T) {
	t.Parallel()

	got := apply(rules.CompressListsRule{}, "text\n\n- one\n- two")
	assert.Equal(t, "text\n\n- one\n- two", got)
}
