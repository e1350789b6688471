// factories.go — convenience constructors for the Errno instantiation.
//
// All three read or inherit an error code up front, before any other
// operation can overwrite the ambient cell:
//   - ErrnoError attaches the current error number, message empty.
//   - ErrnoErrorf attaches the current error number and an eagerly rendered
//     brace-format message.
//   - Errorf renders the message eagerly and INHERITS the code of the first
//     ResultError argument, if any, without marking it attached: the code
//     travels in the payload but Str() does not append its description.
package xgxresult

// ErrnoError captures the current platform error number immediately and
// returns a builder with that code attached and an empty message, ready for
// Append augmentation:
//
//	xgxresult.CaptureErrno(err)
//	return xgxresult.Failure[string](xgxresult.ErrnoError().Append("failed to read ", path))
func ErrnoError() *Builder[Errno] {
	return WithCode(LastErrno())
}

// Errorf renders a brace-format message eagerly and returns a builder
// pre-loaded with it. Equivalent to New().Appendf(format, args...) except that a
// ResultError[Errno] among args donates its code to the payload (first one
// wins); the code is not rendered into the message.
func Errorf(format string, args ...any) *Builder[Errno] {
	b := newBuilder(false, Errno{}, renderf(format, args...))
	if c, ok := scanCode[Errno](args...); ok {
		b.code = c
		b.inherited = true
	}
	return b
}

// ErrnoErrorf is Errorf with the current platform error number attached:
// the rendered message is suffixed with the number's description and the
// payload carries it as the code.
func ErrnoErrorf(format string, args ...any) *Builder[Errno] {
	return newBuilder(true, LastErrno(), renderf(format, args...))
}
