// format_test.go — verification of brace rendering and fmt.Formatter output.
package xgxresult

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderf(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		format string
		args   []any
		want   string
	}{
		{"sequential", "{} errors", []any{3}, "3 errors"},
		{"multiple_sequential", "{} of {}", []any{1, 2}, "1 of 2"},
		{"positional", "{1} then {0}", []any{"a", "b"}, "b then a"},
		{"positional_does_not_advance", "{0}{}{0}", []any{"x", "y"}, "xxx"},
		{"escaped_braces", "{{}}", nil, "{}"},
		{"literal_text", "plain", nil, "plain"},
		{"missing_argument", "{}", nil, "{!}"},
		{"index_out_of_range", "{5}", []any{"a"}, "{!}"},
		{"non_numeric_spec", "{x}", []any{"a"}, "{!}"},
		{"unterminated", "tail {", nil, "tail {"},
		{"lone_close_brace", "a}b", nil, "a}b"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, renderf(tc.format, tc.args...))
		})
	}
}

func TestRenderf_PositionalAdvanceInteraction(t *testing.T) {
	t.Parallel()

	// "{}" consumes args in order regardless of interleaved positional refs.
	assert.Equal(t, "a-c-b", renderf("{}-{2}-{}", "a", "b", "c"))
}

func TestResultError_Formatting(t *testing.T) {
	t.Parallel()

	re := NewResultError("open failed", NewErrno(2))

	assert.Equal(t, "open failed", fmt.Sprintf("%v", re))
	assert.Equal(t, "open failed", fmt.Sprintf("%s", re))
	assert.Equal(t, `"open failed"`, fmt.Sprintf("%q", re))
	assert.Equal(t, `code=no such file or directory msg="open failed"`, fmt.Sprintf("%+v", re))
}
