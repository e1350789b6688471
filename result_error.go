// result_error.go — the immutable failure payload stored inside a Result.
//
// Lifecycle: constructed once when a Builder is finalized (or directly via
// NewResultError), immutable thereafter, owned by the Result that holds it.
// Two payloads are equal iff both message and code are equal; the struct is
// comparable, so plain == works.
package xgxresult

// ResultError pairs a failure message with a typed error code. It is the
// only failure payload type a Result can hold, and the Builder is its usual
// producer.
type ResultError[E Code] struct {
	message string
	code    E
}

// NewResultError constructs a payload directly. Prefer finalizing a Builder;
// this exists for tests and for code that already has both parts in hand.
func NewResultError[E Code](message string, code E) ResultError[E] {
	return ResultError[E]{message: message, code: code}
}

// Message returns the accumulated failure message.
func (e ResultError[E]) Message() string { return e.message }

// Code returns the typed error code.
func (e ResultError[E]) Code() E { return e.code }

// Error implements the error interface. It prints just the message: when a
// code was attached, the Builder already embedded its description in the
// message at finalization.
func (e ResultError[E]) Error() string { return e.message }
