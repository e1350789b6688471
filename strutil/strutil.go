// strutil.go — string helpers whose semantics differ from package strings.
//
// Scope:
//   - Split/Tokenize treat the delimiter argument as a SET of single-byte
//     delimiters, not as one multi-byte separator.
//   - Join renders any element type through its standard string form.
//   - ConsumePrefix/ConsumeSuffix mutate in place and report presence.
//   - Replace switches between first-only and all occurrences.
//
// Prefix/suffix/case tests are deliberately absent: strings.HasPrefix,
// strings.HasSuffix and strings.EqualFold are the idiomatic spellings.
package strutil

import (
	"fmt"
	"strings"
)

// Split splits s at each occurrence of any byte in delimiters, preserving
// empty fields (leading, trailing, and between adjacent delimiters), so the
// original string is recoverable with Join(fields, delim).
//
// The empty string is not a valid delimiter set; Split then returns {s}.
func Split(s, delimiters string) []string {
	out := make([]string, 0, 4)
	base := 0
	if delimiters != "" {
		for i := 0; i < len(s); i++ {
			if strings.IndexByte(delimiters, s[i]) >= 0 {
				out = append(out, s[base:i])
				base = i + 1
			}
		}
	}
	return append(out, s[base:])
}

// Tokenize splits s at each occurrence of any byte in delimiters, coalescing
// delimiter runs and dropping empty tokens. Use when the original string
// does not need to be recoverable:
//
//	Tokenize(" foo  bar ", " ") → {"foo", "bar"}
func Tokenize(s, delimiters string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return strings.ContainsRune(delimiters, r)
	})
}

// Join concatenates the string renderings of things, separated by sep.
func Join[T any](things []T, sep string) string {
	if len(things) == 0 {
		return ""
	}
	var sb strings.Builder
	for i, t := range things {
		if i > 0 {
			sb.WriteString(sep)
		}
		fmt.Fprint(&sb, t)
	}
	return sb.String()
}

// Trim returns s without leading and trailing whitespace.
func Trim(s string) string {
	return strings.TrimSpace(s)
}

// ConsumePrefix removes prefix from the start of *s and reports whether it
// was present.
func ConsumePrefix(s *string, prefix string) bool {
	rest, ok := strings.CutPrefix(*s, prefix)
	if ok {
		*s = rest
	}
	return ok
}

// ConsumeSuffix removes suffix from the end of *s and reports whether it
// was present.
func ConsumeSuffix(s *string, suffix string) bool {
	rest, ok := strings.CutSuffix(*s, suffix)
	if ok {
		*s = rest
	}
	return ok
}

// Replace substitutes from with to in s: every occurrence when all is true,
// otherwise only the first. An empty from returns s unchanged.
func Replace(s, from, to string, all bool) string {
	if from == "" {
		return s
	}
	if all {
		return strings.ReplaceAll(s, from, to)
	}
	return strings.Replace(s, from, to, 1)
}
