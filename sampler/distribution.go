package sampler

import (
	"math"
	"sort"

	"github.com/ksarkes/chainsum/difficulty"
)

// Bucket is one difficulty histogram bin: a rounded level and the
// count of unique problems scoring at it.
type Bucket struct {
	Level float64
	Count int
}

// Distribution summarizes the difficulty spread of a scored pool.
// Buckets are sorted by ascending level.
type Distribution struct {
	Buckets   []Bucket
	Unique    int
	Precision int
}

// NewDistribution buckets pool by level rounded to precision decimals.
// Precision < 0 falls back to DefaultPrecision.
// Complexity: O(n log n) time, O(buckets) space.
func NewDistribution(pool []difficulty.Scored, precision int) Distribution {
	if precision < 0 {
		precision = DefaultPrecision
	}
	counts := make(map[float64]int)
	for _, s := range pool {
		counts[roundTo(s.Level, precision)]++
	}
	buckets := make([]Bucket, 0, len(counts))
	for level, count := range counts {
		buckets = append(buckets, Bucket{Level: level, Count: count})
	}
	sort.Slice(buckets, func(i, j int) bool { return buckets[i].Level < buckets[j].Level })

	return Distribution{Buckets: buckets, Unique: len(pool), Precision: precision}
}

// Ratio returns bucket i's share of the unique pool as a percentage.
func (d Distribution) Ratio(i int) float64 {
	if d.Unique == 0 || i < 0 || i >= len(d.Buckets) {
		return 0
	}

	return float64(d.Buckets[i].Count) / float64(d.Unique) * 100
}

// roundTo rounds v to prec decimal places, half away from zero.
func roundTo(v float64, prec int) float64 {
	p := math.Pow(10, float64(prec))

	return math.Round(v*p) / p
}
