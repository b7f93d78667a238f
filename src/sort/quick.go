package sort

import "cmp"

// Partition records one step of QuickSortTrace: the subsequence it received,
// the pivot taken from its middle index, the elements equal to that pivot,
// and the partitions built for the smaller and greater groups.
// A partition of at most one element is a leaf and has no pivot.
type Partition[E any] struct {
	Input   []E
	Pivot   E
	Equal   []E
	Leaf    bool
	Less    *Partition[E]
	Greater *Partition[E]
}

// Depth returns the number of levels in the partition tree.
func (p *Partition[E]) Depth() int {
	if p == nil {
		return 0
	}
	return 1 + max(p.Less.Depth(), p.Greater.Depth())
}

// QuickSort returns a new slice holding the elements of s in ascending order.
// s is not modified.
func QuickSort[E cmp.Ordered](s []E) []E {
	return QuickSortFunc(s, cmp.Compare[E])
}

// QuickSortFunc is QuickSort ordered by cmp, which returns a negative number
// when a < b, zero when they are equal and a positive number otherwise.
func QuickSortFunc[E any](s []E, cmp func(a, b E) int) []E {
	sorted, _ := quickSort(s, cmp, false)
	return sorted
}

// QuickSortTrace is QuickSort that also returns the tree of partitions it
// made along the way.
func QuickSortTrace[E cmp.Ordered](s []E) ([]E, *Partition[E]) {
	return quickSort(s, cmp.Compare[E], true)
}

func quickSort[E any](s []E, cmp func(a, b E) int, trace bool) ([]E, *Partition[E]) {
	var p *Partition[E]
	if trace {
		p = &Partition[E]{Input: clone(s)}
	}
	if len(s) <= 1 {
		if p != nil {
			p.Leaf = true
		}
		return clone(s), p
	}

	pivot := s[len(s)/2]
	var less, equal, greater []E
	for _, v := range s {
		switch c := cmp(v, pivot); {
		case c < 0:
			less = append(less, v)
		case c > 0:
			greater = append(greater, v)
		default:
			equal = append(equal, v)
		}
	}

	left, lp := quickSort(less, cmp, trace)
	right, rp := quickSort(greater, cmp, trace)
	if p != nil {
		p.Pivot, p.Equal, p.Less, p.Greater = pivot, equal, lp, rp
	}

	sorted := make([]E, 0, len(s))
	sorted = append(sorted, left...)
	sorted = append(sorted, equal...)
	sorted = append(sorted, right...)
	return sorted, p
}

func clone[E any](s []E) []E {
	c := make([]E, len(s))
	copy(c, s)
	return c
}
