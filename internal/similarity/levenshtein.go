package similarity

// Distance returns the Levenshtein edit distance between a and b: the
// minimum number of single-character insertions, deletions, or
// substitutions needed to transform one into the other.
//
// Unicode code points are treated as atomic units, so "café" and "cafe"
// are one edit apart. The result is symmetric, zero iff a == b, and
// satisfies the triangle inequality.
//
// Design decision: We use the classic two-row dynamic programming
// formulation rather than the full matrix because only the previous row is
// needed, keeping allocation at O(len(b)) for arbitrarily long inputs.
func Distance(a, b string) int {
	if a == b {
		return 0
	}

	ra := []rune(a)
	rb := []rune(b)
	if len(ra) == 0 {
		return len(rb)
	}
	if len(rb) == 0 {
		return len(ra)
	}

	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 0; i < len(ra); i++ {
		curr[0] = i + 1
		for j := 0; j < len(rb); j++ {
			cost := 1
			if ra[i] == rb[j] {
				cost = 0
			}
			curr[j+1] = min(curr[j]+1, prev[j+1]+1, prev[j]+cost)
		}
		prev, curr = curr, prev
	}

	return prev[len(rb)]
}
