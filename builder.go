// builder.go — the fluent, single-use error builder.
//
// Scope:
//   - Accumulate a failure message through chainable Append calls and carry
//     an optional typed code.
//   - Finalize exactly once into a ResultError (via Fail, normally through
//     result.go's Failure at a return site).
//
// Linear use:
//   - The source of truth for this design is a write-once, stack-local
//     accumulator that cannot be copied or shared. Go cannot suppress copies
//     at compile time, so the discipline is enforced at runtime: touching a
//     builder after it has been consumed panics.
//
// Errno discipline:
//   - Append saves the ambient error-number cell before rendering operands
//     and restores it afterward, so ErrnoError().Append(f()) still observes
//     the number from before f ran.
package xgxresult

import (
	"fmt"
	"strings"
)

// Builder accumulates a failure message and an optional code of type E.
// Create one with New, WithCode, or the Errno factories in factories.go;
// the zero value is NOT ready for use.
type Builder[E Code] struct {
	buf  strings.Builder
	code E
	// hasCode marks a code attached at construction: it renders in Str and
	// blocks adoption. inherited marks a code adopted from an appended
	// ResultError (or an Errorf argument): it travels in the payload but is
	// NOT rendered, since the donor's message already embeds its text.
	hasCode   bool
	inherited bool
	consumed  bool
}

// New returns an empty builder with no code attached.
func New[E Code]() *Builder[E] {
	return &Builder[E]{}
}

// WithCode returns an empty builder with code attached.
func WithCode[E Code](code E) *Builder[E] {
	return &Builder[E]{code: code, hasCode: true}
}

// newBuilder is the full constructor used by the factories: it sets code and
// attachment state atomically and seeds the buffer with an initial message.
func newBuilder[E Code](hasCode bool, code E, message string) *Builder[E] {
	b := &Builder[E]{code: code, hasCode: hasCode}
	b.buf.WriteString(message)
	return b
}

// Append renders each operand into the message buffer and returns the
// receiver for chaining.
//
// A ResultError[E] operand is the re-raise case: if the builder has no code
// yet it adopts the operand's code (first donor wins), then the operand's
// MESSAGE is appended. An adopted code travels in the finalized payload but
// is not rendered by Str. Constructing with WithCode first overrides
// instead of adopting.
//
// Every other operand is appended via its standard string rendering
// (numbers, strings, Stringers, errors). The ambient error-number cell is
// preserved across the call.
func (b *Builder[E]) Append(vs ...any) *Builder[E] {
	b.mustLive()
	saved := lastErrno.Load()
	for _, v := range vs {
		if re, ok := v.(ResultError[E]); ok {
			if !b.hasCode && !b.inherited {
				b.code = re.Code()
				b.inherited = true
			}
			b.buf.WriteString(re.Message())
			continue
		}
		fmt.Fprint(&b.buf, v)
	}
	lastErrno.Store(saved)
	return b
}

// Appendf renders a brace-format string eagerly and appends it. It is the
// streaming counterpart of Errorf for builders that already exist.
// Placeholders: "{}" next argument, "{n}" positional, "{{" and "}}" literal.
func (b *Builder[E]) Appendf(format string, args ...any) *Builder[E] {
	b.mustLive()
	saved := lastErrno.Load()
	b.buf.WriteString(renderf(format, args...))
	lastErrno.Store(saved)
	return b
}

// Str renders the final failure message:
//   - code attached, text empty   → code.Print()
//   - code attached, text present → "<text>: " + code.Print()
//   - no code                     → the raw accumulated text
func (b *Builder[E]) Str() string {
	s := b.buf.String()
	if !b.hasCode {
		return s
	}
	if s == "" {
		return b.code.Print()
	}
	return s + ": " + b.code.Print()
}

// CodeVal returns the current code and whether one is attached or inherited.
func (b *Builder[E]) CodeVal() (E, bool) {
	return b.code, b.hasCode || b.inherited
}

// Fail finalizes the builder into an immutable payload and consumes it.
// The payload message is Str(); the code is the attached or inherited code,
// or the zero ("no error") value of E otherwise. Any use after Fail panics.
func (b *Builder[E]) Fail() ResultError[E] {
	b.mustLive()
	b.consumed = true
	return ResultError[E]{message: b.Str(), code: b.code}
}

func (b *Builder[E]) mustLive() {
	if b.consumed {
		panic("xgxresult: builder used after conversion to a Result")
	}
}
