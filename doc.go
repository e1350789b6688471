// doc.go — package documentation for xgx-result
//
// Package xgxresult provides a tiny, policy-free value-or-error core:
// a generic Result[T, E] sum type for propagating recoverable failures
// without exceptions, plus a fluent builder for composing rich failure
// messages that carry both human-readable text and a typed error code.
// It is designed to be:
//   - Ergonomic at call sites (build, append, return)
//   - Explicit (no implicit conversions; every state change is a named call)
//   - Policy-free (no logging/retry/HTTP rules in core)
//
// # The Two States
//
// A Result[T, E] holds exactly one of a success value T or a failure
// payload ResultError[E]. The states are mutually exclusive and exhaustive,
// set once at construction and never transitioned afterward. "Propagation"
// always constructs a NEW Result at the new call site.
//
// Producing either arm:
//
//	func readFile(path string) xgxresult.ErrnoResult[string] {
//	    data, err := os.ReadFile(path)
//	    if err != nil {
//	        xgxresult.CaptureErrno(err)
//	        return xgxresult.Failure[string](xgxresult.ErrnoError().Append("failed to read ", path))
//	    }
//	    return xgxresult.Of(string(data))
//	}
//
// Checking, then unwrapping or propagating:
//
//	func hasAWord() xgxresult.ErrnoResult[bool] {
//	    content := readFile("path")
//	    if !content.Ok() {
//	        return xgxresult.Failure[bool](xgxresult.New[xgxresult.Errno]().
//	            Append("failed to process: ", content.Error()))
//	    }
//	    return xgxresult.Of(strings.Contains(content.Value(), "happy"))
//	}
//
// # Builder Semantics
//
// Builder[E] is a strictly single-use, stack-local accumulator. Append is
// chainable; appending a captured ResultError[E] adopts its code (unless one
// is already attached) and appends its message, which is how an error is
// re-raised with additional context while preserving the original code.
// Converting the builder into a Result (Failure) consumes it; any further
// use panics. Do not share a builder across scopes.
//
// Rendering is deterministic:
//
//	+---------------------------+--------------------------------+
//	| Builder state             | Str() / payload message        |
//	+---------------------------+--------------------------------+
//	| text only                 | "text"                         |
//	| code only                 | code.Print()                   |
//	| text + code               | "text: " + code.Print()        |
//	| neither                   | ""                             |
//	+---------------------------+--------------------------------+
//
// # Error Codes
//
// E is any application-chosen type satisfying the Code constraint
// (comparable, Print() string). The shipped default is Errno, which adapts
// a raw platform error number; Errno-based factories (ErrnoError, Errorf,
// ErrnoErrorf) read the ambient error-number cell. The cell is explicit
// state with a documented save/restore discipline: Append preserves it
// across stringification, so
//
//	ErrnoError().Append(formatSomething())
//
// still observes the number captured BEFORE the formatting call.
//
// # Failure Semantics
//
// Recoverable, expected failures travel as ResultError[E]. Programmer
// misuse (unwrapping a failed result, reading the error of a successful
// one, reusing a consumed builder) is a contract violation and fails fast
// via panic. It is never encoded as another Result.
//
// # Propagation Protocol
//
// Generic calling code uses IsOk / Unwrap / Fail: Fail consumes a failing
// Result into a transportable Failed[E], convertible either to the bare
// code or (via Propagate) into a Result of a different success type,
// carrying the same payload forward. E stays fixed across a propagation
// chain; only the success type changes.
//
// # Minimal Surface, Clear Semantics
//
// The v1 surface is intentionally small:
//   - Value / Of / Done / Failure / FailureFrom
//   - Ok / Value / Error / ValueOr
//   - New / WithCode / Append / Appendf / Str / Fail
//   - ErrnoError / Errorf / ErrnoErrorf / ErrorCode
//   - IsOk / Unwrap / Fail / Propagate / ErrorMessage
//
// See examples in example_test.go for runnable demonstrations.
package xgxresult
