package algorithms

import (
	"container/heap"
	"sort"
)

// RankedPlayer holds a player with a score, used by all top-N rankings
type RankedPlayer struct {
	Player string  `json:"player"`
	Score  float64 `json:"score"`
}

// rankedPlayerHeap implements a min-heap for RankedPlayer by score
type rankedPlayerHeap []RankedPlayer

func (h rankedPlayerHeap) Len() int { return len(h) }
func (h rankedPlayerHeap) Less(i, j int) bool {
	if h[i].Score != h[j].Score {
		return h[i].Score < h[j].Score
	}
	// Lexically larger players rank lower on equal scores, so they are
	// evicted first
	return h[i].Player > h[j].Player
}
func (h rankedPlayerHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *rankedPlayerHeap) Push(x any) {
	*h = append(*h, x.(RankedPlayer))
}

func (h *rankedPlayerHeap) Pop() any {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[0 : n-1]
	return x
}

// topPlayers returns the top n players by score using a min-heap, ordered by
// score descending with ties broken by ascending player id for determinism.
func topPlayers(scores map[string]float64, n int) []RankedPlayer {
	if n <= 0 {
		return nil
	}

	h := make(rankedPlayerHeap, 0, n)
	heap.Init(&h)

	for player, score := range scores {
		rp := RankedPlayer{Player: player, Score: score}
		if h.Len() < n {
			heap.Push(&h, rp)
		} else if rankedLess(h[0], rp) {
			heap.Pop(&h)
			heap.Push(&h, rp)
		}
	}

	result := make([]RankedPlayer, h.Len())
	for i := h.Len() - 1; i >= 0; i-- {
		result[i] = heap.Pop(&h).(RankedPlayer)
	}

	sort.SliceStable(result, func(i, j int) bool {
		if result[i].Score != result[j].Score {
			return result[i].Score > result[j].Score
		}
		return result[i].Player < result[j].Player
	})

	return result
}

// rankedLess reports whether a ranks strictly below b
func rankedLess(a, b RankedPlayer) bool {
	if a.Score != b.Score {
		return a.Score < b.Score
	}
	return a.Player > b.Player
}
