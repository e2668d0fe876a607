package rules_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aeolusmd/mdfixup/pkg/rules"
)

func TestBoldItalicRule_NormalizesBoldItalic(t *testing.T) {
	t.Parallel()

	got := apply(rules.BoldItalicRule{}, "***hi***")
	assert.Equal(t, "__*hi*__", got)
}

func TestBoldItalicRule_LeavesEmojiMarkerAlone(t *testing.T) {
	t.Parallel()

	got := apply(rules.BoldItalicRule{}, "great :+1: job")
	assert.Equal(t, "great :+1: job", got)
}

func TestBoldItalicRule_MismatchedTripleDelimitersUntouched(t *testing.T) {
	t.Parallel()

	got := apply(rules.BoldItalicRule{}, "***text___")
	assert.Equal(t, "***text___", got)
}
