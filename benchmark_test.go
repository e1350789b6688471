package xgxresult

import (
	"testing"
)

func BenchmarkSuccessPath(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		r := Of(i)
		if r.Ok() {
			_ = r.Value()
		}
	}
}

func BenchmarkBuilderAppend(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = New[Errno]().Append("failed after ", i, " attempts").Str()
	}
}

func BenchmarkBuilderToFailure(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		r := Failure[int](WithCode(NewErrno(2)).Append("open failed"))
		_ = r.Error()
	}
}

func BenchmarkRenderf(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = renderf("retry {} of {} failed", i, 5)
	}
}

func BenchmarkPropagate(b *testing.B) {
	base := FailureFrom[int](NewResultError("low-level", NewErrno(13)))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Propagate[string](Fail(base))
	}
}
