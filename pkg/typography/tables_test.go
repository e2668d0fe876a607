package typography_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aeolusmd/mdfixup/pkg/typography"
)

func TestApply(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		skip map[string]bool
		want string
	}{
		{"curly double quotes", "“hello”", nil, `"hello"`},
		{"curly single quotes", "‘hi’", nil, "'hi'"},
		{"en dash", "pages 3–5", nil, "pages 3-5"},
		{"em dash", "wait—what", nil, "wait--what"},
		{"em dash skipped", "wait—what", map[string]bool{"em-dash": true}, "wait—what"},
		{"ellipsis", "wait…", nil, "wait..."},
		{"guillemets", "«hi»", nil, `"hi"`},
		{"guillemets skipped", "«hi»", map[string]bool{"guillemet": true}, "«hi»"},
		{"no matches", "plain text", nil, "plain text"},
		{"mixed", "“she said—‘hi…’”", nil, `"she said--'hi...'"`},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, typography.Apply(tc.in, tc.skip))
		})
	}
}
