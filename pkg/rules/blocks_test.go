package rules_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aeolusmd/mdfixup/pkg/rules"
)

func TestCodeBeforeRule_InsertsBlankLine(t *testing.T) {
	t.Parallel()

	got := apply(rules.CodeBeforeRule{}, "text\n```\ncode\n```")
	assert.Equal(t, "text\n\n```\ncode\n```", got)
}

func TestCodeBeforeRule_LeavesExistingBlank(t *testing.T) {
	t.Parallel()

	got := apply(rules.CodeBeforeRule{}, "text\n\n```\ncode\n```")
	assert.Equal(t, "text\n\n```\ncode\n```", got)
}

func TestCodeAfterRule_InsertsBlankLine(t *testing.T) {
	t.Parallel()

	got := apply(rules.CodeAfterRule{}, "```\ncode\n```\ntext")
	assert.Equal(t, "```\ncode\n```\n\ntext", got)
}

func TestListBeforeRule_InsertsBlankLine(t *testing.T) {
	t.Parallel()

	got := apply(rules.ListBeforeRule{}, "text\n- one\n- two")
	assert.Equal(t, "text\n\n- one\n- two", got)
}

func TestListAfterRule_InsertsBlankLine(t *testing.T) {
	t.Parallel()

	got := apply(rules.ListAfterRule{}, "- one\n- two\ntext")
	assert.Equal(t, "- one\n- two\n\ntext", got)
}

func TestRuleBeforeRule_InsertsBlankLine(t *testing.T) {
	t.Parallel()

	got := apply(rules.RuleBeforeRule{}, "text\n---")
	assert.Equal(t, "text\n\n---", got)
}

func TestRuleAfterRule_InsertsBlankLine(t *testing.T) {
	t.Parallel()

	got := apply(rules.RuleAfterRule{}, "---\ntext")
	assert.Equal(t, "---\n\ntext", got)
}
