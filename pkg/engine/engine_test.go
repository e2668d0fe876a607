package engine_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aeolusmd/mdfixup/pkg/engine"
	"github.com/aeolusmd/mdfixup/pkg/mdtext"
)

// appendRule appends its suffix to every line, letting tests observe
// ordering and skip behavior without depending on pkg/rules.
type appendRule struct {
	id      int
	keyword string
	suffix  string
}

func (r appendRule) ID() int         { return r.id }
func (r appendRule) Keyword() string { return r.keyword }
func (r appendRule) Apply(doc *mdtext.Document, _ engine.Options) *mdtext.Document {
	out := doc.Clone()
	for i := range out.Lines {
		out.Lines[i] += r.suffix
	}
	return out
}

func testRegistry() *engine.Registry {
	rules := []engine.Rule{
		appendRule{id: 2, keyword: "second", suffix: "-2"},
		appendRule{id: 1, keyword: "first", suffix: "-1"},
		appendRule{id: 3, keyword: "third", suffix: "-3"},
	}
	return engine.NewRegistry(rules, engine.DefaultGroups())
}

func TestNewRegistry_SortsByID(t *testing.T) {
	t.Parallel()

	reg := testRegistry()
	ids := make([]int, 0, 3)
	for _, r := range reg.Rules() {
		ids = append(ids, r.ID())
	}
	assert.Equal(t, []int{1, 2, 3}, ids)
}

func TestNewRegistry_PanicsOnDuplicateID(t *testing.T) {
	t.Parallel()

	defer func() {
		assert.NotNil(t, recover(), "expected panic on duplicate rule id")
	}()
	engine.NewRegistry([]engine.Rule{
		appendRule{id: 1, keyword: "a", suffix: "-a"},
		appendRule{id: 1, keyword: "b", suffix: "-b"},
	}, nil)
}

func TestNewRegistry_PanicsOnDuplicateKeyword(t *testing.T) {
	t.Parallel()

	defer func() {
		assert.NotNil(t, recover(), "expected panic on duplicate keyword")
	}()
	engine.NewRegistry([]engine.Rule{
		appendRule{id: 1, keyword: "dup", suffix: "-a"},
		appendRule{id: 2, keyword: "dup", suffix: "-b"},
	}, nil)
}

func TestRegistry_ByID(t *testing.T) {
	t.Parallel()

	reg := testRegistry()
	rule, ok := reg.ByID(2)
	require.True(t, ok)
	assert.Equal(t, "second", rule.Keyword())

	_, ok = reg.ByID(99)
	assert.False(t, ok)
}

func TestRegistry_Resolve(t *testing.T) {
	t.Parallel()

	reg := testRegistry()

	ids, ok := reg.Resolve("1")
	require.True(t, ok)
	assert.Equal(t, []int{1}, ids)

	ids, ok = reg.Resolve("second")
	require.True(t, ok)
	assert.Equal(t, []int{2}, ids)

	_, ok = reg.Resolve("not-a-rule")
	assert.False(t, ok)
}

func TestRegistry_AllIDs(t *testing.T) {
	t.Parallel()

	reg := testRegistry()
	assert.Equal(t, []int{1, 2, 3}, reg.AllIDs())
}

func TestRun_AppliesRulesInAscendingOrder(t *testing.T) {
	t.Parallel()

	reg := testRegistry()
	doc := mdtext.Parse("x")
	out := engine.Run(reg, doc, engine.SkipSet{IDs: map[int]bool{}}, engine.Options{})

	assert.Equal(t, "x-1-2-3", out.Lines[0])
}

func TestRun_SkipsDisabledRules(t *testing.T) {
	t.Parallel()

	reg := testRegistry()
	doc := mdtext.Parse("x")
	skip := engine.SkipSet{IDs: map[int]bool{2: true}}
	out := engine.Run(reg, doc, skip, engine.Options{})

	assert.Equal(t, "x-1-3", out.Lines[0])
}

func TestBuildSkipSet_PlainDenyList(t *testing.T) {
	t.Parallel()

	reg := testRegistry()
	set, unknown := engine.BuildSkipSet(reg, []string{"first"}, nil, nil)

	assert.Empty(t, unknown)
	assert.True(t, set.Skip(1))
	assert.False(t, set.Skip(2))
}

func TestBuildSkipSet_CLIMergesWithConfig(t *testing.T) {
	t.Parallel()

	reg := testRegistry()
	set, unknown := engine.BuildSkipSet(reg, []string{"first"}, nil, []string{"third"})

	assert.Empty(t, unknown)
	assert.True(t, set.Skip(1))
	assert.True(t, set.Skip(3))
	assert.False(t, set.Skip(2))
}

func TestBuildSkipSet_AllWithInclude(t *testing.T) {
	t.Parallel()

	reg := testRegistry()
	set, unknown := engine.BuildSkipSet(reg, []string{"all"}, []string{"second"}, nil)

	assert.Empty(t, unknown)
	assert.True(t, set.Skip(1))
	assert.False(t, set.Skip(2))
	assert.True(t, set.Skip(3))
}

func TestBuildSkipSet_UnknownTokenReported(t *testing.T) {
	t.Parallel()

	reg := testRegistry()
	_, unknown := engine.BuildSkipSet(reg, []string{"not-a-rule"}, nil, nil)

	assert.Equal(t, []string{"not-a-rule"}, unknown)
}

func TestBuildSkipSet_TypographySubKeywords(t *testing.T) {
	t.Parallel()

	reg := testRegistry()
	set, unknown := engine.BuildSkipSet(reg, []string{"em-dash"}, nil, []string{"guillemet"})

	assert.Empty(t, unknown)
	assert.True(t, set.SkipEmDash)
	assert.True(t, set.SkipGuillemet)
	// Sub-keywords never disable a whole rule ID.
	assert.False(t, set.Skip(1))
}

func TestDefaultGroups_ExpandsToMultipleIDs(t *testing.T) {
	t.Parallel()

	groups := engine.DefaultGroups()
	assert.Equal(t, []int{6, 7}, groups["code-block-newlines"])
}
