package order

import "math"

// MinOf returns the smallest value in buf, or NaN if buf is empty.
// A NaN element poisons the result: once seen, it is carried through the
// scan because no ordinary value compares less than NaN.
func MinOf(buf []float64) float64 {
	if len(buf) == 0 {
		return math.NaN()
	}

	acc := math.Inf(1)
	for _, x := range buf {
		if x < acc || math.IsNaN(x) {
			acc = x
		}
	}

	return acc
}

// MaxOf returns the largest value in buf, or NaN if buf is empty.
// NaN propagates the same way as in MinOf.
func MaxOf(buf []float64) float64 {
	if len(buf) == 0 {
		return math.NaN()
	}

	acc := math.Inf(-1)
	for _, x := range buf {
		if x > acc || math.IsNaN(x) {
			acc = x
		}
	}

	return acc
}

// AbsMinOf returns the smallest absolute value in buf, or NaN if buf is empty.
func AbsMinOf(buf []float64) float64 {
	if len(buf) == 0 {
		return math.NaN()
	}

	acc := math.Inf(1)
	for _, v := range buf {
		x := math.Abs(v)
		if x < acc || math.IsNaN(x) {
			acc = x
		}
	}

	return acc
}

// AbsMaxOf returns the largest absolute value in buf, or NaN if buf is empty.
func AbsMaxOf(buf []float64) float64 {
	if len(buf) == 0 {
		return math.NaN()
	}

	acc := math.Inf(-1)
	for _, v := range buf {
		x := math.Abs(v)
		if x > acc || math.IsNaN(x) {
			acc = x
		}
	}

	return acc
}

// SelectInPlace returns the value that would occupy zero-based position rank
// if buf were fully sorted ascending. It reorders buf as a side effect: after
// the call, position rank holds the returned order statistic and the rest of
// the buffer is partially partitioned around it.
//
// Callers must guarantee len(buf) >= 1 and 0 <= rank < len(buf). The ranks 0
// and len(buf)-1 short-circuit to linear min/max scans, which also keeps NaN
// propagation identical to MinOf/MaxOf for the extreme ranks.
//
// The algorithm is an iterative median-of-three quickselect with Hoare
// partitioning (Numerical Recipes style) over a shrinking [low, high] window.
func SelectInPlace(buf []float64, rank int) float64 {
	if rank <= 0 {
		return MinOf(buf)
	}
	if rank >= len(buf)-1 {
		return MaxOf(buf)
	}

	low := 0
	high := len(buf) - 1

	for {
		if high <= low+1 {
			if high == low+1 && buf[high] < buf[low] {
				buf[low], buf[high] = buf[high], buf[low]
			}

			return buf[rank]
		}

		// Median-of-three over {low, middle, high}. Afterwards
		// buf[low] <= buf[low+1] <= buf[high], so buf[low] and buf[high]
		// act as sentinels for the partition scans below.
		middle := (low + high) >> 1
		buf[middle], buf[low+1] = buf[low+1], buf[middle]

		if buf[low] > buf[high] {
			buf[low], buf[high] = buf[high], buf[low]
		}
		if buf[low+1] > buf[high] {
			buf[low+1], buf[high] = buf[high], buf[low+1]
		}
		if buf[low] > buf[low+1] {
			buf[low], buf[low+1] = buf[low+1], buf[low]
		}

		begin := low + 1
		end := high
		pivot := buf[begin]

		// Hoare partition. The pre-increment scan cannot run past high
		// because buf[high] >= pivot, and the pre-decrement scan cannot run
		// below low+1 because buf[low] <= pivot; both indices therefore stay
		// inside [low, high].
		for {
			for {
				begin++
				if buf[begin] >= pivot {
					break
				}
			}
			for {
				end--
				if buf[end] <= pivot {
					break
				}
			}
			if end < begin {
				break
			}
			buf[begin], buf[end] = buf[end], buf[begin]
		}

		buf[low+1] = buf[end]
		buf[end] = pivot

		// Keep only the window that still contains rank.
		if end >= rank {
			high = end - 1
		}
		if end <= rank {
			low = begin
		}
	}
}
