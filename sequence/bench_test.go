package sequence_test

import (
	"testing"

	"github.com/katalvlaran/lvlnum/sequence"
)

func benchmarkLinspace(b *testing.B, n int) {
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if got := sequence.Linspace(0.0, 1.0, n, true); len(got) != n {
			b.Fatalf("Linspace returned %d values, want %d", len(got), n)
		}
	}
}

func BenchmarkLinspace1k(b *testing.B)   { benchmarkLinspace(b, 1_000) }
func BenchmarkLinspace100k(b *testing.B) { benchmarkLinspace(b, 100_000) }

func BenchmarkReverse100k(b *testing.B) {
	in := sequence.Linspace(0.0, 1.0, 100_000, true)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if got := sequence.Reverse(in); len(got) != len(in) {
			b.Fatal("Reverse changed length")
		}
	}
}
