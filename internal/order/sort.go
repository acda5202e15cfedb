package order

// insertionSortThreshold is the window size at or below which the dual-array
// sorts switch to insertion sort. Fewer comparisons and better cache behavior
// than quicksort on short runs.
const insertionSortThreshold = 10

const mismatchedLengths = "order: primary and secondary must be the same length"

// Sort sorts primary ascending while permuting secondary in lockstep.
// Elements of secondary follow their primary counterparts, so if secondary
// starts as the identity permutation it records where each sorted value came
// from. Ties in primary leave the relative order of secondary unspecified.
//
// Panics if the slices differ in length; that is a caller bug, not a runtime
// condition.
func Sort(primary []float64, secondary []int) {
	if len(primary) != len(secondary) {
		panic(mismatchedLengths)
	}

	n := len(primary)
	if n <= 1 {
		return
	}

	if n == 2 {
		if primary[0] > primary[1] {
			primary[0], primary[1] = primary[1], primary[0]
			secondary[0], secondary[1] = secondary[1], secondary[0]
		}

		return
	}

	if n <= insertionSortThreshold {
		insertionSort(primary, secondary)
		return
	}

	quickSort(primary, secondary, 0, n-1)
}

// SortAll sorts primary ascending, breaking ties in primary by ascending
// secondary. The resulting order is a deterministic total order, which the
// ranking layer relies on for first-come tie-breaking.
//
// Panics if the slices differ in length.
func SortAll(primary []float64, secondary []int) {
	if len(primary) != len(secondary) {
		panic(mismatchedLengths)
	}

	if len(primary) <= 1 {
		return
	}

	quickSortAll(primary, secondary, 0, len(primary)-1)
}

func insertionSort(primary []float64, secondary []int) {
	for i := 1; i < len(primary); i++ {
		key := primary[i]
		item := secondary[i]

		j := i - 1
		for j >= 0 && primary[j] > key {
			primary[j+1] = primary[j]
			secondary[j+1] = secondary[j]
			j--
		}

		primary[j+1] = key
		secondary[j+1] = item
	}
}

// quickSort sorts primary[left..right] (inclusive) with secondary permuted in
// lockstep. Median-of-three pivoting and Hoare partitioning; the smaller
// partition is sorted recursively and the larger one iteratively, bounding
// the stack depth to about log2(n).
func quickSort(primary []float64, secondary []int, left, right int) {
	for {
		a := left
		b := right
		p := a + ((b - a) >> 1)

		if primary[a] > primary[p] {
			primary[a], primary[p] = primary[p], primary[a]
			secondary[a], secondary[p] = secondary[p], secondary[a]
		}
		if primary[a] > primary[b] {
			primary[a], primary[b] = primary[b], primary[a]
			secondary[a], secondary[b] = secondary[b], secondary[a]
		}
		if primary[p] > primary[b] {
			primary[p], primary[b] = primary[b], primary[p]
			secondary[p], secondary[b] = secondary[b], secondary[p]
		}

		pivot := primary[p]

		// Hoare partitioning. The median-of-three above guarantees both scan
		// loops hit an element equal to the pivot before leaving [left, right].
		for {
			for primary[a] < pivot {
				a++
			}
			for pivot < primary[b] {
				b--
			}
			if a > b {
				break
			}
			if a < b {
				primary[a], primary[b] = primary[b], primary[a]
				secondary[a], secondary[b] = secondary[b], secondary[a]
			}

			a++
			b--

			if a > b {
				break
			}
		}

		if b-left <= right-a {
			if left < b {
				quickSort(primary, secondary, left, b)
			}
			left = a
		} else {
			if a < right {
				quickSort(primary, secondary, a, right)
			}
			right = b
		}

		if left >= right {
			return
		}
	}
}

// quickSortAll is quickSort with the comparison extended to the pair
// (primary, secondary): primary first, secondary breaks exact primary ties.
func quickSortAll(primary []float64, secondary []int, left, right int) {
	for {
		a := left
		b := right
		p := a + ((b - a) >> 1)

		if primary[a] > primary[p] ||
			primary[a] == primary[p] && secondary[a] > secondary[p] {
			primary[a], primary[p] = primary[p], primary[a]
			secondary[a], secondary[p] = secondary[p], secondary[a]
		}
		if primary[a] > primary[b] ||
			primary[a] == primary[b] && secondary[a] > secondary[b] {
			primary[a], primary[b] = primary[b], primary[a]
			secondary[a], secondary[b] = secondary[b], secondary[a]
		}
		if primary[p] > primary[b] ||
			primary[p] == primary[b] && secondary[p] > secondary[b] {
			primary[p], primary[b] = primary[b], primary[p]
			secondary[p], secondary[b] = secondary[b], secondary[p]
		}

		pivot1 := primary[p]
		pivot2 := secondary[p]

		for {
			for primary[a] < pivot1 ||
				primary[a] == pivot1 && secondary[a] < pivot2 {
				a++
			}
			for pivot1 < primary[b] ||
				pivot1 == primary[b] && pivot2 < secondary[b] {
				b--
			}
			if a > b {
				break
			}
			if a < b {
				primary[a], primary[b] = primary[b], primary[a]
				secondary[a], secondary[b] = secondary[b], secondary[a]
			}

			a++
			b--

			if a > b {
				break
			}
		}

		if b-left <= right-a {
			if left < b {
				quickSortAll(primary, secondary, left, b)
			}
			left = a
		} else {
			if a < right {
				quickSortAll(primary, secondary, a, right)
			}
			right = b
		}

		if left >= right {
			return
		}
	}
}
