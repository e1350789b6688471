// resulttest_test.go — verification of the Result assertion helpers.
package resulttest

import (
	"testing"

	"github.com/stretchr/testify/assert"

	xgxresult "github.com/xgx-io/xgx-result"
)

// recordT captures assertion outcomes without stopping the surrounding test.
type recordT struct {
	failed bool
}

func (m *recordT) Errorf(string, ...any) { m.failed = true }
func (m *recordT) FailNow()              { m.failed = true }

func TestRequireOk(t *testing.T) {
	t.Parallel()

	t.Run("returns_success_value", func(t *testing.T) {
		got := RequireOk(t, xgxresult.Of(42))
		assert.Equal(t, 42, got)
	})

	t.Run("fails_test_on_failure", func(t *testing.T) {
		m := &recordT{}
		r := xgxresult.FailureFrom[int](
			xgxresult.NewResultError("boom", xgxresult.NewErrno(5)))

		got := RequireOk(m, r)
		assert.True(t, m.failed)
		assert.Zero(t, got)
	})
}

func TestAssertOk(t *testing.T) {
	t.Parallel()

	t.Run("true_on_success", func(t *testing.T) {
		m := &recordT{}
		assert.True(t, AssertOk(m, xgxresult.Of("up")))
		assert.False(t, m.failed)
	})

	t.Run("reports_and_returns_false_on_failure", func(t *testing.T) {
		m := &recordT{}
		r := xgxresult.FailureFrom[string](
			xgxresult.NewResultError("boom", xgxresult.Errno{}))

		assert.False(t, AssertOk(m, r))
		assert.True(t, m.failed)
	})
}
