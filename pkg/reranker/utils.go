package reranker

import "sort"

type indexedScore struct {
	index int
	score float64
}

// rankCandidates orders scores descending and truncates to topK. The sort is
// stable, so equal scores keep their original input order, and every
// retained index is unique and within range by construction.
func rankCandidates(scores []float64, topK int) []indexedScore {
	ranked := make([]indexedScore, len(scores))
	for i, s := range scores {
		ranked[i] = indexedScore{index: i, score: s}
	}
	sort.SliceStable(ranked, func(a, b int) bool {
		return ranked[a].score > ranked[b].score
	})
	if topK < len(ranked) {
		ranked = ranked[:topK]
	}
	return ranked
}
