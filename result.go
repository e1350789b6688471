// result.go — the value-or-error sum container.
//
// Invariants:
//   - Exactly one of Success(T) / Failure(ResultError[E]) is held; the state
//     is set at construction and never transitioned afterward.
//   - Checking Ok() is always well-defined; reading the wrong arm is a
//     contract violation and fails fast (panic), never another Result.
//
// Construction is explicit on both arms (Value/Of for success, Failure/
// FailureFrom for failure); there are no implicit conversions in Go, and the
// explicit functions keep the generic error path a first-class, inspectable
// construct at every return site.
package xgxresult

import "fmt"

// Result holds either a success value of type T or a ResultError[E].
// The zero value is an empty failure; construct through Value, Of, Done,
// Failure, or FailureFrom instead.
type Result[T any, E Code] struct {
	val T
	err ResultError[E]
	ok  bool
}

// ErrnoResult is the default instantiation, for the common case where
// errno(3) is the error-code domain.
type ErrnoResult[T any] = Result[T, Errno]

// Unit is the empty success payload for operations that succeed with no
// value.
type Unit struct{}

// Value constructs a success Result holding v.
func Value[T any, E Code](v T) Result[T, E] {
	return Result[T, E]{val: v, ok: true}
}

// Of constructs a success ErrnoResult holding v.
func Of[T any](v T) ErrnoResult[T] {
	return Value[T, Errno](v)
}

// Done constructs the "success with no payload" ErrnoResult.
func Done() ErrnoResult[Unit] {
	return Of(Unit{})
}

// Failure finalizes b into the failure arm of a Result. The builder is
// consumed; this is the bridge that lets one builder expression serve as the
// return value of any Result-returning function:
//
//	return xgxresult.Failure[string](xgxresult.ErrnoError().Append("failed to read ", path))
func Failure[T any, E Code](b *Builder[E]) Result[T, E] {
	return Result[T, E]{err: b.Fail()}
}

// FailureFrom wraps an already-captured payload into the failure arm of a
// new Result, carrying message and code forward unchanged.
func FailureFrom[T any, E Code](re ResultError[E]) Result[T, E] {
	return Result[T, E]{err: re}
}

// Ok reports whether r holds a value.
func (r Result[T, E]) Ok() bool { return r.ok }

// Value returns the held value.
//
// Precondition: Ok() is true. Violating it is a programmer error and panics.
func (r Result[T, E]) Value() T {
	if !r.ok {
		panic(fmt.Sprintf("xgxresult: Value on failed result: %s", r.err.Message()))
	}
	return r.val
}

// Error returns the held failure payload.
//
// Precondition: Ok() is false. Violating it is a programmer error and panics.
func (r Result[T, E]) Error() ResultError[E] {
	if r.ok {
		panic("xgxresult: Error on ok result")
	}
	return r.err
}

// ValueOr returns the held value, or fallback when r is a failure.
func (r Result[T, E]) ValueOr(fallback T) T {
	if r.ok {
		return r.val
	}
	return fallback
}
