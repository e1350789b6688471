// code.go — the error-code constraint and code-scanning helper.
//
// Intent:
//   - Keep the code contract structural and tiny: any comparable type with a
//     Print() string method can parameterize Builder, ResultError and Result.
//   - No central registry, no reserved semantics: projects bring their own
//     code domains (an enum wrapper, a status type, the shipped Errno).
package xgxresult

// Code is the constraint for error-code types carried by failures.
//
// Requirements, mirrored by every shipped and user-defined code type:
//   - comparable: ResultError equality is (message, code) equality.
//   - Print() string: a human-readable description of the code value. It
//     must never fail; for unknown values return SOME string rather than
//     erroring out.
//
// The zero value of a Code type is its "no error" sentinel (0 for Errno).
type Code interface {
	comparable
	Print() string
}

// ErrorCode scans args left-to-right and returns the code of the first
// ResultError[E] found, or code unchanged when none is present.
//
// It exists so a formatted-error factory invoked with a previously captured
// error among its arguments inherits that error's code instead of the
// generic default:
//
//	return Failure[int](Errorf("retry failed: {}", prev.Error()))
func ErrorCode[E Code](code E, args ...any) E {
	if c, ok := scanCode[E](args...); ok {
		return c
	}
	return code
}

// scanCode returns the code of the first ResultError[E] among args.
func scanCode[E Code](args ...any) (E, bool) {
	for _, a := range args {
		if re, ok := a.(ResultError[E]); ok {
			return re.Code(), true
		}
	}
	var zero E
	return zero, false
}
