package rules_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aeolusmd/mdfixup/pkg/engine"
	"github.com/aeolusmd/mdfixup/pkg/mdtext"
	"github.com/aeolusmd/mdfixup/pkg/rules"
)

func apply(r engine.Rule, src string) string {
	return r.Apply(mdtext.Parse(src), engine.Options{}).String()
}

func TestHeaderSpacingRule(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"no space", "#Title", "# Title"},
		{"extra spaces", "##   Title", "## Title"},
		{"trailing hashes stripped", "## Title ##", "## Title"},
		{"already correct", "### Title", "### Title"},
		{"hashes only", "###", "###"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, apply(rules.HeaderSpacingRule{}, tc.in))
		})
	}
}

func TestHeaderNewlineRule(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"inserts blank line", "# Title\nbody", "# Title\n\nbody"},
		{"leaves existing blank line", "# Title\n\nbody", "# Title\n\nbody"},
		{"leaves setext underline alone", "Title\n-----", "Title\n-----"},
		{"headline at end of file", "body\n# Title", "body\n# Title"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, apply(rules.HeaderNewlineRule{}, tc.in))
		})
	}
}
