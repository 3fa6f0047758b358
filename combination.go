package gmdh

import "sort"

// Combination is one candidate partial polynomial: the column indices it
// was fit on, its fitted coefficients, and its external-criterion score.
// The last entry of Indices is always the bias column.
type Combination struct {
	Indices []int
	Coeffs  []float64
	Score   float64
}

// Less orders combinations by ascending score (lower is better).
func (c Combination) Less(o Combination) bool { return c.Score < o.Score }

// Layer is an ordered set of combinations retained at one level of search.
type Layer struct {
	Combinations []Combination
}

// bestK returns the k lowest-scoring combinations from cands, stable on
// ties by original generation order. Mirrors GMDH::getBestCombinations:
// take the first k, sorted, then sweep the remainder swapping in anything
// better than the current worst.
func bestK(cands []Combination, k int) []Combination {
	if k > len(cands) {
		k = len(cands)
	}
	best := make([]Combination, k)
	copy(best, cands[:k])
	stableSortByScore(best)

	for i := k; i < len(cands); i++ {
		if cands[i].Score < best[len(best)-1].Score {
			best[len(best)-1] = cands[i]
			stableSortByScore(best)
		}
	}
	return best
}

// stableSortByScore sorts ascending by score, preserving relative order of
// equal-score entries (their original generation order).
func stableSortByScore(c []Combination) {
	sort.SliceStable(c, func(i, j int) bool { return c[i].Score < c[j].Score })
}

// meanTopP returns the mean score of the first min(p, len(sorted)) entries
// of an already-ascending-sorted slice.
func meanTopP(sorted []Combination, p int) float64 {
	if p > len(sorted) {
		p = len(sorted)
	}
	if p == 0 {
		return 0
	}
	sum := 0.0
	for i := 0; i < p; i++ {
		sum += sorted[i].Score
	}
	return sum / float64(p)
}
