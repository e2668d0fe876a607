package rules_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aeolusmd/mdfixup/pkg/rules"
)

func TestRefLinkSpacingRule_NormalizesSpacing(t *testing.T) {
	t.Parallel()

	got := apply(rules.RefLinkSpacingRule{}, "[ref] :https://example.com")
	assert.Equal(t, "[ref]: https://example.com", got)
}

func TestTaskCheckboxRule_LowercasesCheckedBox(t *testing.T) {
	t.Parallel()

	got := apply(rules.TaskCheckboxRule{}, "- [X] done")
	assert.Equal(t, "- [x] done", got)
}

func TestTaskCheckboxRule_LeavesUncheckedBoxAlone(t *testing.T) {
	t.Parallel()

	got := apply(rules.TaskCheckboxRule{}, "- [ ] todo")
	assert.Equal(t, "- [ ] todo", got)
}

func TestLiquidTagsRule_AddsInnerSpacing(t *testing.T) {
	t.Parallel()

	got := apply(rules.LiquidTagsRule{}, "{%tag arg%} and {{expr}}")
	assert.Equal(t, "{% tag arg %} and {{ expr }}", got)
}
