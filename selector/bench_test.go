package selector_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/ksarkes/chainsum/selector"
)

// BenchmarkSelect measures one full selection round over a 10k pool.
func BenchmarkSelect(b *testing.B) {
	items := mixedPool(5000, 5000, 5)
	req := selector.Request{
		Amount:       100,
		MinusPercent: 50,
		MinLevel:     0,
		MaxLevel:     math.Inf(1),
		CapAnswers:   true,
	}
	rng := rand.New(rand.NewSource(1))

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		pool := selector.NewPool(items)
		_ = selector.Select(pool, req, rng)
	}
}
