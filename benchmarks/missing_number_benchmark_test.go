package benchmarks

import (
	"testing"

	"github.com/max-chem-eng/gomorekit"
)

func sequence(n int) []int {
	seq := make([]int, 0, n)
	for v := 0; v <= n; v++ {
		if v != n/2 {
			seq = append(seq, v)
		}
	}
	return seq
}

func BenchmarkFindMissingNumber(b *testing.B) {
	seq := sequence(1 << 16)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = gomorekit.FindMissingNumber(seq)
	}
}

func BenchmarkFindMissingNumberStrict(b *testing.B) {
	seq := sequence(1 << 16)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = gomorekit.FindMissingNumberStrict(seq)
	}
}
