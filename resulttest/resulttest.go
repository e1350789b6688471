// resulttest.go — assertion helpers for Result-returning code under test.
//
// Scope:
//   - RequireOk: fail the test immediately when the result is a failure,
//     printing the failure message, and hand back the success value.
//   - AssertOk: same check in the non-fatal register, reporting and
//     continuing.
//
// Both accept the testify TestingT interfaces, so they compose with plain
// *testing.T and with testify's own tooling.
package resulttest

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	xgxresult "github.com/xgx-io/xgx-result"
)

type tHelper interface{ Helper() }

// RequireOk asserts that r is a success and returns its value. On failure it
// stops the test, printing the failure payload's message.
func RequireOk[T any, E xgxresult.Code](t require.TestingT, r xgxresult.Result[T, E]) T {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}
	if !r.Ok() {
		require.FailNow(t, "result is a failure", "%s", r.Error().Message())
		var zero T
		return zero
	}
	return r.Value()
}

// AssertOk asserts that r is a success, reporting without stopping the test.
// It returns true when r is ok.
func AssertOk[T any, E xgxresult.Code](t assert.TestingT, r xgxresult.Result[T, E]) bool {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}
	if !r.Ok() {
		return assert.Fail(t, "result is a failure", "%s", r.Error().Message())
	}
	return true
}
