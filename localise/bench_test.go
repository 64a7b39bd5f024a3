package localise_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/beam/localise"
	"github.com/katalvlaran/beam/parser"
)

// BenchmarkKekulizeCoronene measures a compact polycyclic system where the
// greedy pass leaves work for the augmenting search.
func BenchmarkKekulizeCoronene(b *testing.B) {
	g := parser.MustParse("c1cc2ccc3ccc4ccc5ccc6ccc1c7c2c3c4c5c67")
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = localise.Kekulize(g)
	}
}

// BenchmarkKekulizePolyphenyl measures many independent subsystems.
func BenchmarkKekulizePolyphenyl(b *testing.B) {
	g := parser.MustParse(strings.Repeat("c1ccc(cc1)-", 200) + "C")
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = localise.Kekulize(g)
	}
}
