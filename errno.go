// errno.go — the shipped platform error-code wrapper and the ambient cell.
//
// Scope:
//   - Errno adapts a raw errno(3)-style number into a typed, printable code.
//     Use it (not a bare int) as the E parameter so errno is distinguishable
//     from other integer-based code domains.
//   - The "last platform error number" is modeled as an EXPLICIT package
//     cell rather than a hidden global: syscall wrappers in Go return their
//     errno as an error value, so callers feed the cell via CaptureErrno and
//     the factories read it via LastErrno.
//
// Discipline:
//   - Any operation in this package that might perturb the cell while
//     stringifying operands saves and restores it (see Builder.Append).
//   - The cell is process-wide and atomic. Goroutines that need isolated
//     error numbers should pass Errno values explicitly instead.
package xgxresult

import (
	"errors"
	"strconv"
	"sync/atomic"
	"syscall"

	"golang.org/x/sys/unix"
)

// Errno wraps a raw platform error number. The zero value is the "no error"
// sentinel. Immutable once constructed.
type Errno struct {
	val int
}

// NewErrno wraps a raw error number.
func NewErrno(n int) Errno { return Errno{val: n} }

// Value returns the raw error number.
func (e Errno) Value() int { return e.val }

// Print returns the platform's textual description of the error number.
// It never fails: an unrecognized number yields the platform fallback
// ("errno N"), and 0 is described as "success".
func (e Errno) Print() string {
	if e.val == 0 {
		return "success"
	}
	if e.val < 0 {
		return "errno " + strconv.Itoa(e.val)
	}
	return syscall.Errno(e.val).Error()
}

// Name returns the symbolic constant for the error number ("ENOENT"),
// or the empty string when the number has no known name.
func (e Errno) Name() string {
	return unix.ErrnoName(syscall.Errno(e.val))
}

// String implements fmt.Stringer and delegates to Print.
func (e Errno) String() string { return e.Print() }

// LegacyEnum reinterprets the raw error number as an integer-backed legacy
// enum type. This is an explicit escape hatch for code bases whose numeric
// error domains predate typed codes.
//
// Deprecated: construct values of the legacy domain from Errno.Value at the
// boundary instead. Kept only so existing numeric domains keep working.
func LegacyEnum[T ~int | ~int8 | ~int16 | ~int32 | ~int64 | ~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64](e Errno) T {
	return T(e.val)
}

// -----------------------------------------------------------------------------
// Ambient error-number cell
// -----------------------------------------------------------------------------

// lastErrno is the explicit stand-in for the C errno global. Factories read
// it; Builder.Append saves and restores it around operand rendering.
var lastErrno atomic.Int64

// SetErrno records n as the last platform error number.
func SetErrno(n int) { lastErrno.Store(int64(n)) }

// LastErrno returns the last recorded platform error number as an Errno.
func LastErrno() Errno { return Errno{val: int(lastErrno.Load())} }

// CaptureErrno extracts a syscall.Errno from err (via errors.As), records it
// in the cell, and returns the wrapper. If err carries no syscall.Errno the
// cell is left untouched and the current value is returned. Call this
// immediately after a failed syscall, before anything can overwrite the cell.
func CaptureErrno(err error) Errno {
	var en syscall.Errno
	if errors.As(err, &en) {
		SetErrno(int(en))
		return Errno{val: int(en)}
	}
	return LastErrno()
}

// Conformance guard: Errno must satisfy the Code constraint contract.
var _ = ErrorCode[Errno]
