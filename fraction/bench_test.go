// Package fraction_test provides benchmarks for scalar arithmetic in both
// modes.
package fraction_test

import (
	"testing"

	"github.com/katalvlaran/ratla/fraction"
)

// sinks to defeat dead-code elimination
var (
	sinkV fraction.Value
	sinkH uint64
)

func BenchmarkExactAddMul(b *testing.B) {
	b.ReportAllocs()
	x, y := ex.Pair(355, 113), ex.Pair(-22, 7)
	for i := 0; i < b.N; i++ {
		sinkV = x.Add(y).Mul(y)
	}
}

func BenchmarkApproxAddMul(b *testing.B) {
	b.ReportAllocs()
	x, y := ap.Pair(355, 113), ap.Pair(-22, 7)
	for i := 0; i < b.N; i++ {
		sinkV = x.Add(y).Mul(y)
	}
}

func BenchmarkParseShortDecimal(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		sinkV = ex.MustParse("-1234.5678")
	}
}

func BenchmarkHash(b *testing.B) {
	b.ReportAllocs()
	v := ex.Pair(123456789, 987654321)
	for i := 0; i < b.N; i++ {
		sinkH = v.Hash()
	}
}
