package statkit

import (
	"fmt"

	"github.com/hupe1980/statkit/internal/order"
)

// TieBreaker selects how ranks are assigned when multiple elements compare
// exactly equal.
type TieBreaker int

const (
	// TieAverage assigns tied elements the mean of the positions they span.
	TieAverage TieBreaker = iota
	// TieMin assigns tied elements the smallest position in their run.
	TieMin
	// TieMax assigns tied elements the largest position in their run.
	TieMax
	// TieFirst breaks ties by original position, so every element gets a
	// unique integer rank.
	TieFirst
)

func (tb TieBreaker) String() string {
	switch tb {
	case TieAverage:
		return "Average"
	case TieMin:
		return "Min"
	case TieMax:
		return "Max"
	case TieFirst:
		return "First"
	default:
		return fmt.Sprintf("Unknown(%d)", int(tb))
	}
}

// Ranks returns the 1-based rank of each element of data, aligned with the
// ORIGINAL input positions. Ties are resolved per tb; equality is exact
// float equality, not epsilon-based. Empty input yields an empty slice.
//
// Under TieAverage the ranks always sum to n(n+1)/2, and under TieFirst the
// result is a permutation of 1..n even when values repeat.
//
// DESTRUCTIVE: reorders data as a side effect.
func Ranks(data []float64, tb TieBreaker) []float64 {
	n := len(data)
	ranks := make([]float64, n)
	if n == 0 {
		return ranks
	}

	index := make([]int, n)
	for i := range index {
		index[i] = i
	}

	if tb == TieFirst {
		order.SortAll(data, index)
		for i, origin := range index {
			ranks[origin] = float64(i + 1)
		}

		return ranks
	}

	order.Sort(data, index)

	// Scan for runs of equal values in the sorted order and scatter the
	// resolved rank back to the original positions through index.
	prev := 0
	for i := 1; i < n; i++ {
		if data[i] == data[prev] {
			continue
		}
		if i == prev+1 {
			ranks[index[prev]] = float64(i)
		} else {
			resolveTies(ranks, index, prev, i, tb)
		}
		prev = i
	}
	resolveTies(ranks, index, prev, n, tb)

	return ranks
}

// resolveTies assigns the rank for the run of equal values spanning the
// zero-based, half-open sorted range [a, b).
func resolveTies(ranks []float64, index []int, a, b int, tb TieBreaker) {
	var rank float64
	switch tb {
	case TieAverage:
		rank = float64(b+a-1)/2 + 1
	case TieMin:
		rank = float64(a + 1)
	case TieMax:
		rank = float64(b)
	}

	for i := a; i < b; i++ {
		ranks[index[i]] = rank
	}
}
