// protocol.go — the generic unwrap-or-propagate protocol.
//
// Scope:
//   - Let generic calling code check, unwrap, or forward any Result without
//     re-specifying the error type at every level of a call chain.
//   - Fail consumes a failing Result into a transportable Failed[E] that
//     converts either to the bare code (Code) or to a Result of a DIFFERENT
//     success type (Propagate), carrying the same payload.
//
// E is fixed across one propagation chain: only the success type changes.
// There is no retry or recovery policy here; this is pure data plumbing.
package xgxresult

// IsOk reports whether r holds a value.
func IsOk[T any, E Code](r Result[T, E]) bool { return r.Ok() }

// Unwrap moves the success value out of r.
//
// Precondition: r is ok; a failing r is a programmer error and panics.
func Unwrap[T any, E Code](r Result[T, E]) T { return r.Value() }

// ErrorMessage returns the failure message of r.
//
// Precondition: r is a failure.
func ErrorMessage[T any, E Code](r Result[T, E]) string { return r.Error().Message() }

// Failed is a transportable failure detached from its originating Result's
// success type. Obtain one with Fail.
type Failed[E Code] struct {
	err ResultError[E]
}

// Fail consumes a failing Result into a Failed.
//
// Precondition: r is a failure; calling Fail on an ok Result panics.
func Fail[T any, E Code](r Result[T, E]) Failed[E] {
	return Failed[E]{err: r.Error()}
}

// Code converts the failure to its bare code, for callers whose own return
// type is the code domain itself.
func (f Failed[E]) Code() E { return f.err.Code() }

// Err returns the full payload.
func (f Failed[E]) Err() ResultError[E] { return f.err }

// Propagate converts the failure into a Result with a different success
// type U, carrying the same payload forward unchanged.
func Propagate[U any, E Code](f Failed[E]) Result[U, E] {
	return FailureFrom[U](f.err)
}
