package replace_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aeolusmd/mdfixup/pkg/mdtext"
	"github.com/aeolusmd/mdfixup/pkg/replace"
)

func TestLoadFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "replacements.yaml")
	content := `
replacements:
  - name: teh-to-the
    pattern: '\bteh\b'
    replacement: "the"
    timing: before
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	reps, err := replace.LoadFile(path)
	require.NoError(t, err)
	require.Len(t, reps, 1)
	assert.Equal(t, "teh-to-the", reps[0].Name)
	assert.Equal(t, replace.Before, reps[0].Timing)
}

func TestLoadFile_MissingFile(t *testing.T) {
	t.Parallel()

	_, err := replace.LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestCompile_ReportsBadPatternsButKeepsGoodOnes(t *testing.T) {
	t.Parallel()

	reps := []replace.Replacement{
		{Name: "good", Pattern: `foo`, Replacement: "bar", Timing: replace.Before},
		{Name: "bad", Pattern: `(unclosed`, Replacement: "x", Timing: replace.Before},
	}

	ok, errs := replace.Compile(reps)
	require.Len(t, ok, 1)
	assert.Equal(t, "good", ok[0].Name)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Error(), "bad")
}

func TestApply_SimpleSubstitution(t *testing.T) {
	t.Parallel()

	reps, errs := replace.Compile([]replace.Replacement{
		{Name: "teh", Pattern: `\bteh\b`, Replacement: "the", Timing: replace.Before},
	})
	require.Empty(t, errs)

	doc := mdtext.Parse("i like teh cake")
	out := replace.Apply(doc, reps, replace.Before)
	assert.Equal(t, "i like the cake", out.String())
}

func TestApply_OnlyMatchingTimingRuns(t *testing.T) {
	t.Parallel()

	reps, errs := replace.Compile([]replace.Replacement{
		{Name: "teh", Pattern: `\bteh\b`, Replacement: "the", Timing: replace.After},
	})
	require.Empty(t, errs)

	doc := mdtext.Parse("i like teh cake")
	out := replace.Apply(doc, reps, replace.Before)
	assert.Equal(t, "i like teh cake", out.String())
}

func TestApply_SkipsCodeBlocksByDefault(t *testing.T) {
	t.Parallel()

	reps, errs := replace.Compile([]replace.Replacement{
		{Name: "teh", Pattern: `teh`, Replacement: "the", Timing: replace.Before},
	})
	require.Empty(t, errs)

	doc := mdtext.Parse("```\nteh\n```\nteh")
	out := replace.Apply(doc, reps, replace.Before)
	assert.Equal(t, "```\nteh\n```\nthe", out.String())
}

func TestApply_InCodeBlocksOptIn(t *testing.T) {
	t.Parallel()

	reps, errs := replace.Compile([]replace.Replacement{
		{Name: "teh", Pattern: `teh`, Replacement: "the", Timing: replace.Before, InCodeBlocks: true},
	})
	require.Empty(t, errs)

	doc := mdtext.Parse("```\nteh\n```")
	out := replace.Apply(doc, reps, replace.Before)
	assert.Equal(t, "```\nthe\n```", out.String())
}

func TestApply_SkipsFrontmatterByDefault(t *testing.T) {
	t.Parallel()

	reps, errs := replace.Compile([]replace.Replacement{
		{Name: "teh", Pattern: `teh`, Replacement: "the", Timing: replace.Before},
	})
	require.Empty(t, errs)

	doc := mdtext.Parse("---\nteh: 1\n---\nteh")
	out := replace.Apply(doc, reps, replace.Before)
	assert.Equal(t, "---\nteh: 1\n---\nthe", out.String())
}
