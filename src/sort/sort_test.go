package sort

import (
	"math"
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sample = []int{64, 34, 25, 12, 22, 11, 90}

type algorithm struct {
	name string
	sort func([]int) []int
}

var algorithms = []algorithm{
	{"bubble", func(s []int) []int { return BubbleSort(s) }},
	{"swap", func(s []int) []int { SwapSort(s); return s }},
	{"quick", QuickSort[int]},
}

func randomInts(r *rand.Rand, n, bound int) []int {
	s := make([]int, n)
	for i := range s {
		s[i] = r.Intn(bound)
	}
	return s
}

func TestSample(t *testing.T) {
	for _, alg := range algorithms {
		t.Run(alg.name, func(t *testing.T) {
			got := alg.sort(slices.Clone(sample))
			assert.Equal(t, []int{11, 12, 22, 25, 34, 64, 90}, got)
		})
	}
}

func TestBoundaries(t *testing.T) {
	for _, alg := range algorithms {
		t.Run(alg.name, func(t *testing.T) {
			assert.Empty(t, alg.sort([]int{}))
			assert.Empty(t, alg.sort(nil))
			assert.Equal(t, []int{42}, alg.sort([]int{42}))
		})
	}
}

func TestShapes(t *testing.T) {
	cases := map[string]struct {
		in, want []int
	}{
		"sorted":     {[]int{1, 2, 3, 4, 5}, []int{1, 2, 3, 4, 5}},
		"reverse":    {[]int{5, 4, 3, 2, 1}, []int{1, 2, 3, 4, 5}},
		"same":       {[]int{5, 5, 5}, []int{5, 5, 5}},
		"duplicates": {[]int{3, 1, 4, 1, 5, 9, 2, 6, 5, 3, 5}, []int{1, 1, 2, 3, 3, 4, 5, 5, 5, 6, 9}},
		"negative":   {[]int{0, -3, 7, -3, 2}, []int{-3, -3, 0, 2, 7}},
	}
	for _, alg := range algorithms {
		for name, tc := range cases {
			t.Run(alg.name+"/"+name, func(t *testing.T) {
				assert.Equal(t, tc.want, alg.sort(slices.Clone(tc.in)))
			})
		}
	}
}

func TestProperties(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	for _, alg := range algorithms {
		t.Run(alg.name, func(t *testing.T) {
			for round := 0; round < 200; round++ {
				in := randomInts(r, r.Intn(64), 20)
				want := slices.Clone(in)
				slices.Sort(want)

				got := alg.sort(slices.Clone(in))
				require.Len(t, got, len(in))
				require.True(t, IsSorted(IntArray(got)), "unsorted: %v", got)
				require.ElementsMatch(t, in, got)
				require.Equal(t, want, got)

				again := alg.sort(slices.Clone(got))
				require.Equal(t, got, again)
			}
		})
	}
}

func TestBubbleSortInPlace(t *testing.T) {
	in := slices.Clone(sample)
	out := BubbleSort(in)
	require.Len(t, out, len(in))
	assert.Same(t, &in[0], &out[0])
	assert.Equal(t, []int{11, 12, 22, 25, 34, 64, 90}, in)
}

func TestBubbleSortedCopies(t *testing.T) {
	in := slices.Clone(sample)
	out := BubbleSorted(in)
	assert.Equal(t, sample, in)
	assert.Equal(t, []int{11, 12, 22, 25, 34, 64, 90}, out)
}

func TestQuickSortDoesNotMutate(t *testing.T) {
	in := slices.Clone(sample)
	out := QuickSort(in)
	assert.Equal(t, sample, in)
	assert.Equal(t, []int{11, 12, 22, 25, 34, 64, 90}, out)

	single := []int{7}
	copied := QuickSort(single)
	copied[0] = 8
	assert.Equal(t, 7, single[0])
}

func TestSortStrings(t *testing.T) {
	in := []string{"pear", "apple", "fig", "apple"}
	want := []string{"apple", "apple", "fig", "pear"}
	assert.Equal(t, want, BubbleSort(slices.Clone(in)))
	assert.Equal(t, want, QuickSort(in))
	s := slices.Clone(in)
	SwapSort(s)
	assert.Equal(t, want, s)
}

func TestNaNKept(t *testing.T) {
	in := []float64{3, math.NaN(), 1, math.NaN(), 2}
	check := func(t *testing.T, got []float64) {
		require.Len(t, got, 5)
		assert.True(t, math.IsNaN(got[0]))
		assert.True(t, math.IsNaN(got[1]))
		assert.Equal(t, []float64{1, 2, 3}, got[2:])
	}
	t.Run("bubble", func(t *testing.T) { check(t, BubbleSort(slices.Clone(in))) })
	t.Run("swap", func(t *testing.T) {
		s := slices.Clone(in)
		SwapSort(s)
		check(t, s)
	})
	t.Run("quick", func(t *testing.T) { check(t, QuickSort(in)) })
}

type item struct {
	key int
	tag string
}

type byKey []item

func (p byKey) Len() int           { return len(p) }
func (p byKey) Less(i, j int) bool { return p[i].key < p[j].key }
func (p byKey) Swap(i, j int)      { p[i], p[j] = p[j], p[i] }

func TestStability(t *testing.T) {
	in := byKey{{2, "a"}, {2, "b"}, {1, "c"}}

	bubble := slices.Clone(in)
	SortBubble(bubble)
	assert.Equal(t, byKey{{1, "c"}, {2, "a"}, {2, "b"}}, bubble)

	swapped := slices.Clone(in)
	SortSwap(swapped)
	assert.True(t, IsSorted(swapped))
	assert.Equal(t, byKey{{1, "c"}, {2, "b"}, {2, "a"}}, swapped)
}

func TestCounter(t *testing.T) {
	cases := []struct {
		name        string
		in          []int
		comparisons int
		swaps       int
	}{
		{"same", []int{5, 5, 5}, 3, 0},
		{"reverse", []int{5, 4, 3, 2, 1}, 10, 10},
		{"sorted", []int{1, 2, 3, 4, 5}, 10, 0},
		{"empty", nil, 0, 0},
	}
	sorters := map[string]func(Sorter){"bubble": SortBubble, "swap": SortSwap}
	for name, sorter := range sorters {
		for _, tc := range cases {
			t.Run(name+"/"+tc.name, func(t *testing.T) {
				c := &Counter{Data: IntArray(slices.Clone(tc.in))}
				sorter(c)
				assert.Equal(t, tc.comparisons, c.Comparisons)
				assert.Equal(t, tc.swaps, c.Swaps)
				assert.True(t, IsSorted(c.Data))
				c.Reset()
				assert.Zero(t, c.Comparisons+c.Swaps)
			})
		}
	}
}

func TestQuickSortFunc(t *testing.T) {
	desc := func(a, b int) int { return b - a }
	assert.Equal(t, []int{90, 64, 34, 25, 22, 12, 11}, QuickSortFunc(sample, desc))
}

func TestQuickSortTrace(t *testing.T) {
	sorted, p := QuickSortTrace([]int{3, 6, 8, 10, 1, 2, 1})
	assert.Equal(t, []int{1, 1, 2, 3, 6, 8, 10}, sorted)
	require.NotNil(t, p)
	assert.False(t, p.Leaf)
	assert.Equal(t, 10, p.Pivot)
	assert.Equal(t, []int{10}, p.Equal)
	assert.Equal(t, []int{3, 6, 8, 1, 2, 1}, p.Less.Input)
	assert.True(t, p.Greater.Leaf)
	assert.Empty(t, p.Greater.Input)

	// [3 6 8 1 2 1] -> [3 6 8 2] -> [3 6 2] -> [3 2] -> leaves
	assert.Equal(t, 1, p.Less.Pivot)
	assert.Equal(t, []int{1, 1}, p.Less.Equal)
	assert.Equal(t, []int{3, 6, 8, 2}, p.Less.Greater.Input)
	assert.Equal(t, 6, p.Depth())

	_, same := QuickSortTrace([]int{5, 5, 5})
	assert.Equal(t, []int{5, 5, 5}, same.Equal)
	assert.True(t, same.Less.Leaf)
	assert.True(t, same.Greater.Leaf)
	assert.Equal(t, 2, same.Depth())
}
