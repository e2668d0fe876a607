package rules_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aeolusmd/mdfixup/pkg/engine"
	"github.com/aeolusmd/mdfixup/pkg/mdtext"
	"github.com/aeolusmd/mdfixup/pkg/rules"
)

func applyWidth(r rules.WrapRule, src string, width int) string {
	return r.Apply(mdtext.Parse(src), engine.Options{WrapWidth: width}).String()
}

func TestWrapRule_DisabledWhenWidthIsZero(t *testing.T) {
	t.Parallel()

	got := rules.WrapRule{}.Apply(mdtext.Parse("a very long line that would otherwise wrap"), engine.Options{WrapWidth: 0})
	assert.Equal(t, "a very long line that would otherwise wrap", got.String())
}

func TestWrapRule_WrapsProseAtWidth(t *testing.T) {
	t.Parallel()

	got := applyWidth(rules.WrapRule{}, "one two three four five six seven eight nine ten", 20)
	for _, line := range splitLines(got) {
		assert.LessOrEqual(t, len(line), 20)
	}
	assert.Equal(t, "one two three four five six seven eight nine ten",
		joinWords(got))
}

func TestWrapRule_SkipsWrappingLineWithLongLinkURL(t *testing.T) {
	t.Parallel()

	src := "see [a long link title](https://example.com/a/very/long/path) for more"
	got := applyWidth(rules.WrapRule{}, src, 10)
	assert.Equal(t, src, got)
}

func TestWrapRule_SkipsWrappingLineWithLongCodeSpan(t *testing.T) {
	t.Parallel()

	src := "run `some very long command --flag value here` now"
	got := applyWidth(rules.WrapRule{}, src, 10)
	assert.Equal(t, src, got)
}

func TestWrapRule_ShortLinkStillWrapsAsAtomicToken(t *testing.T) {
	t.Parallel()

	got := applyWidth(rules.WrapRule{}, "see [a link](short) for more detail today", 15)
	assert.Contains(t, got, "[a link](short)")
}

func TestWrapRule_PreservesHardBreak(t *testing.T) {
	t.Parallel()

	got := applyWidth(rules.WrapRule{}, "first line  \nsecond line", 80)
	assert.Equal(t, "first line  \nsecond line", got)
}

func TestWrapRule_LeavesFencedCodeAlone(t *testing.T) {
	t.Parallel()

	src := "```\na very long line inside a code fence that should not be wrapped at all\n```"
	got := applyWidth(rules.WrapRule{}, src, 10)
	assert.Equal(t, src, got)
}

func TestWrapRule_ListItemKeepsMarkerPrefix(t *testing.T) {
	t.Parallel()

	got := applyWidth(rules.WrapRule{}, "- one two three four five six seven eight nine ten", 20)
	lines := splitLines(got)
	assert.True(t, len(lines) > 1)
	assert.True(t, hasPrefix(lines[0], "- "))
	for _, line := range lines[1:] {
		assert.True(t, hasPrefix(line, "  "))
	}
}

func splitLines(s string) []string {
	var lines []string
	start := 0
	for i, c := range s {
		if c == '\n' {
			lines = append(lines, s[start:i])
			start = i + 1
		}
	}
	if start < len(s) {
		lines = append(lines, s[start:])
	}
	return lines
}

func joinWords(s string) string {
	var words []string
	for _, line := range splitLines(s) {
		for _, w := range splitFields(line) {
			words = append(words, w)
		}
	}
	out := ""
	for i, w := range words {
		if i > 0 {
			out += " "
		}
		out += w
	}
	return out
}

func splitFields(s string) []string {
	var fields []string
	cur := ""
	for _, c := range s {
		if c == ' ' || c == '-' {
			if cur != "" {
				fields = append(fields, cur)
				cur = ""
			}
			continue
		}
		cur += string(c)
	}
	if cur != "" {
		fields = append(fields, cur)
	}
	return fields
}

func hasPrefix(s, prefix string) bool {
	return len(s) >= len(prefix) && s[:len(prefix)] == prefix
}
