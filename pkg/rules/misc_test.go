package rules_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aeolusmd/mdfixup/pkg/rules"
)

func TestLineEndingsRule(t *testing.T) {
	t.Parallel()

	got := apply(rules.LineEndingsRule{}, "a\r\nb\rc")
	assert.Equal(t, "a\nb\nc", got)
}

func TestFinalNewlineRule(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"no trailing newline", "a\nb", "a\nb\n"},
		{"already correct", "a\nb\n", "a\nb\n"},
		{"collapses trailing blank lines", "a\nb\n\n\n", "a\nb\n"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, apply(rules.FinalNewlineRule{}, tc.in))
		})
	}
}

func TestTrailingWhitespaceRule(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"trims trailing spaces", "hello   \nworld", "hello\nworld"},
		{"preserves hard break", "hello  \nworld", "hello  \nworld"},
		{"leaves fenced code untouched", "```\nhello   \n```", "```\nhello   \n```"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, apply(rules.TrailingWhitespaceRule{}, tc.in))
		})
	}
}

func TestBlankLinesRule(t *testing.T) {
	t.Parallel()

	got := apply(rules.BlankLinesRule{}, "a\n\n\n\nb")
	assert.Equal(t, "a\n\nb", got)
}

func TestBlankLinesRule_PreservesBlanksInsideFencedCode(t *testing.T) {
	t.Parallel()

	got := apply(rules.BlankLinesRule{}, "```\na\n\n\nb\n```")
	assert.Equal(t, "```\na\n\n\nb\n```", got)
}

func TestBoldItalicRule(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"star bold becomes underscore bold", "**hi**", "__hi__"},
		{"underscore italic becomes star italic", "_hi_", "*hi*"},
		{"leaves code spans alone", "`_not_italic_`", "`_not_italic_`"},
		{"leaves filenames alone", "see my_file_name.md", "see my_file_name.md"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, apply(rules.BoldItalicRule{}, tc.in))
		})
	}
}

func TestTypographyRule(t *testing.T) {
	t.Parallel()

	got := apply(rules.TypographyRule{}, "“hello”")
	assert.Equal(t, `"hello"`, got)
}

func TestTypographyRule_LeavesInlineCodeAlone(t *testing.T) {
	t.Parallel()

	got := apply(rules.TypographyRule{}, "`“literal”`")
	assert.Equal(t, "`“literal”`", got)
}
