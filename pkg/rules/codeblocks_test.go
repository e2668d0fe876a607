package rules_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aeolusmd/mdfixup/pkg/rules"
)

func TestCodeLangSpacingRule_CollapsesSpacing(t *testing.T) {
	t.Parallel()

	got := apply(rules.CodeLangSpacingRule{}, "```  python\ncode\n```")
	assert.Equal(t, "```python\ncode\n```", got)
}

func TestCodeLangSpacingRule_CanonicalizesAlias(t *testing.T) {
	t.Parallel()

	got := apply(rules.CodeLangSpacingRule{}, "```py\ncode\n```")
	assert.Equal(t, "```python\ncode\n```", got)
}

func TestCodeLangSpacingRule_LeavesBareFenceAlone(t *testing.T) {
	t.Parallel()

	got := apply(rules.CodeLangSpacingRule{}, "```\ncode\n```")
	assert.Equal(t, "```\ncode\n```", got)
}
