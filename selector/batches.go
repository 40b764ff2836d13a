package selector

import "math/rand"

// Batches runs up to n selection rounds against pool, draining it as
// it goes. Two returned batches never share a problem instance.
//
// The sequence stops early once a round selects nothing — either the
// pool is exhausted or nothing inside the window remains — so the
// caller learns how many worksheets were actually completed from
// len(result). Partial final batches are kept (their Notes say so).
// Complexity: O(n × pool).
func Batches(pool *Pool, req Request, n int, rng *rand.Rand) []Result {
	if pool == nil || n < 1 {
		return nil
	}
	r := rngOrDefault(rng)

	results := make([]Result, 0, n)
	for i := 0; i < n; i++ {
		res := Select(pool, req, r)
		if len(res.Problems) == 0 {
			break
		}
		results = append(results, res)
	}

	return results
}
