package problem

// Deduplicate removes exact repeats from problems, keeping only the
// first occurrence of each Signature. The relative order of first
// occurrences is preserved, and deduplicating an already-unique slice
// returns an equal slice.
// Complexity: O(n·terms) time, O(n) extra space.
func Deduplicate(problems []Problem) []Problem {
	seen := make(map[string]struct{}, len(problems))
	unique := make([]Problem, 0, len(problems))
	for _, p := range problems {
		sig := p.Signature()
		if _, dup := seen[sig]; dup {
			continue
		}
		seen[sig] = struct{}{}
		unique = append(unique, p)
	}

	return unique
}
