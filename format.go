// format.go — brace-format rendering and fmt.Formatter support.
//
// Behavior:
//
//   renderf("{} errors", 3)      → "3 errors"
//   renderf("{1} then {0}", a, b) → b then a (positional)
//   renderf("{{}}")              → "{}" (escapes)
//
// ResultError formatting:
//
//   %s, %v   → concise message (Error()).
//   %+v      → verbose: code=<code.Print()> msg="<message>"
//   %q       → quoted Error().
//
// Rationale:
//   - The formatted factories (Errorf/ErrnoErrorf) specify brace
//     placeholders as their observable contract; stdlib fmt verbs stay
//     available to callers through Append, which renders any operand.
//   - Malformed format strings are a programmer error: unmatched arguments
//     render as "{!}" rather than failing, mirroring fmt's %! diagnostics.
package xgxresult

import (
	"fmt"
	"strconv"
	"strings"
)

// renderf expands brace placeholders in format using args.
//
// Rules:
//   - "{}"  consumes the next sequential argument.
//   - "{n}" renders argument n (0-based) without advancing the sequence.
//   - "{{" and "}}" emit literal braces.
//   - Out-of-range references render "{!}".
func renderf(format string, args ...any) string {
	var sb strings.Builder
	sb.Grow(len(format) + 8*len(args))
	next := 0
	for i := 0; i < len(format); i++ {
		c := format[i]
		switch c {
		case '{':
			if i+1 < len(format) && format[i+1] == '{' {
				sb.WriteByte('{')
				i++
				continue
			}
			j := strings.IndexByte(format[i:], '}')
			if j < 0 {
				// Unterminated placeholder: emit the rest verbatim.
				sb.WriteString(format[i:])
				return sb.String()
			}
			spec := format[i+1 : i+j]
			i += j
			idx := next
			if spec != "" {
				n, err := strconv.Atoi(spec)
				if err != nil {
					sb.WriteString("{!}")
					continue
				}
				idx = n
			} else {
				next++
			}
			if idx < 0 || idx >= len(args) {
				sb.WriteString("{!}")
				continue
			}
			fmt.Fprint(&sb, args[idx])
		case '}':
			if i+1 < len(format) && format[i+1] == '}' {
				i++
			}
			sb.WriteByte('}')
		default:
			sb.WriteByte(c)
		}
	}
	return sb.String()
}

// Format implements fmt.Formatter for ResultError.
func (e ResultError[E]) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			fmt.Fprintf(s, "code=%s msg=%q", e.code.Print(), e.message)
			return
		}
		fmt.Fprint(s, e.Error())
	case 's':
		fmt.Fprint(s, e.Error())
	case 'q':
		fmt.Fprintf(s, "%q", e.Error())
	default:
		fmt.Fprint(s, e.Error())
	}
}
