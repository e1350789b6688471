// example_test.go — runnable demonstrations of the public surface.
package xgxresult_test

import (
	"fmt"
	"strings"

	xgxresult "github.com/xgx-io/xgx-result"
)

// readConfig stands in for a syscall-backed producer: on failure it captures
// the error number first, then builds the failure at the return site.
func readConfig(path string) xgxresult.ErrnoResult[string] {
	if !strings.HasPrefix(path, "/etc/") {
		xgxresult.SetErrno(2) // what CaptureErrno would have recorded
		return xgxresult.Failure[string](xgxresult.ErrnoError().Append("failed to read ", path))
	}
	return xgxresult.Of("interval = 5\n")
}

func Example_valueOrError() {
	r := readConfig("/tmp/missing.conf")
	fmt.Println(r.Ok())
	fmt.Println(r.Error().Message())
	// Output:
	// false
	// failed to read /tmp/missing.conf: no such file or directory
}

func Example_propagation() {
	parse := func(path string) xgxresult.ErrnoResult[int] {
		content := readConfig(path)
		if !content.Ok() {
			return xgxresult.Failure[int](xgxresult.New[xgxresult.Errno]().
				Append("failed to parse config: ", content.Error()))
		}
		return xgxresult.Of(len(content.Value()))
	}

	r := parse("/tmp/missing.conf")
	fmt.Println(r.Error().Message())
	fmt.Println(r.Error().Code().Value())
	// Output:
	// failed to parse config: failed to read /tmp/missing.conf: no such file or directory
	// 2
}

func ExampleErrorf() {
	b := xgxresult.Errorf("failed to read {}", "path")
	fmt.Println(b.Str())
	// Output:
	// failed to read path
}

func ExampleFail() {
	r := xgxresult.FailureFrom[int](
		xgxresult.NewResultError("low-level", xgxresult.NewErrno(13)))

	forwarded := xgxresult.Propagate[string](xgxresult.Fail(r))
	fmt.Println(forwarded.Ok())
	fmt.Println(forwarded.Error().Code().Value())
	// Output:
	// false
	// 13
}
