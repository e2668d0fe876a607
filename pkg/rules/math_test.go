package rules_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aeolusmd/mdfixup/pkg/rules"
)

func TestMathSpacingRule_SplitsInlineDisplayMathAndAddsBlanks(t *testing.T) {
	t.Parallel()

	got := apply(rules.MathSpacingRule{}, "text\n$$x=1$$\nmore")
	assert.Equal(t, "text\n\n$$\nx=1\n$$\n\nmore", got)
}

func TestMathSpacingRule_InsertsBlanksAroundMultilineBlock(t *testing.T) {
	t.Parallel()

	got := apply(rules.MathSpacingRule{}, "text\n$$\nx=1\n$$\nmore")
	assert.Equal(t, "text\n\n$$\nx=1\n$$\n\nmore", got)
}

func TestMathSpacingRule_LeavesBareCurrencyAlone(t *testing.T) {
	t.Parallel()

	got := apply(rules.MathSpacingRule{}, "it costs $5.00 today")
	assert.Equal(t, "it costs $5.00 today", got)
}
