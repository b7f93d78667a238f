package sort

import "cmp"

type IntArray []int

// Ordered adapts a slice of any ordered type to Sorter.
type Ordered[E cmp.Ordered] []E

type Sorter interface {
	Len() int
	Less(i, j int) bool
	Swap(i, j int)
}

func (p IntArray) Len() int { return len(p) }

func (p IntArray) Less(i, j int) bool { return p[i] < p[j] }

func (p IntArray) Swap(i, j int) { p[i], p[j] = p[j], p[i] }

func (p Ordered[E]) Len() int { return len(p) }

func (p Ordered[E]) Less(i, j int) bool { return cmp.Less(p[i], p[j]) }

func (p Ordered[E]) Swap(i, j int) { p[i], p[j] = p[j], p[i] }

// SortBubble sorts data in ascending order. Every pass moves the largest
// remaining element to the end of the unsorted prefix; all n passes run even
// when the data is already sorted. Equal elements are never swapped, so the
// sort is stable.
func SortBubble(data Sorter) {
	n := data.Len()
	for i := 0; i < n; i++ {
		for j := 0; j < n-i-1; j++ {
			if data.Less(j+1, j) {
				data.Swap(j, j+1)
			}
		}
	}
}

// SortSwap sorts data in ascending order by comparing every position with
// each later one and swapping on every inversion found. It is not stable.
func SortSwap(data Sorter) {
	n := data.Len()
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if data.Less(j, i) {
				data.Swap(i, j)
			}
		}
	}
}

// IsSorted reports whether data is in non-decreasing order.
func IsSorted(data Sorter) bool {
	for i := data.Len() - 1; i > 0; i-- {
		if data.Less(i, i-1) {
			return false
		}
	}
	return true
}

// BubbleSort sorts s in place and returns it.
func BubbleSort[E cmp.Ordered](s []E) []E {
	SortBubble(Ordered[E](s))
	return s
}

// BubbleSorted returns a sorted copy of s, leaving s untouched.
func BubbleSorted[E cmp.Ordered](s []E) []E {
	sorted := make([]E, len(s))
	copy(sorted, s)
	return BubbleSort(sorted)
}

// SwapSort sorts s in place.
func SwapSort[E cmp.Ordered](s []E) {
	SortSwap(Ordered[E](s))
}
