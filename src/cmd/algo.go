package cmd

import (
	"fmt"
	"strings"

	"github.com/samber/lo"

	"sortdemo/src/sort"
	"sortdemo/src/utils"
)

type result struct {
	sorted      []int
	comparisons int
	swaps       int
}

type algorithm struct {
	name  string
	title string
	run   func([]int) result
}

// Bubble and swap sort work on s in place; quick sort leaves it alone.
var algorithms = []algorithm{
	{
		name:  "bubble",
		title: "Bubble sort",
		run: func(s []int) result {
			c := &sort.Counter{Data: sort.IntArray(s)}
			sort.SortBubble(c)
			return result{sorted: s, comparisons: c.Comparisons, swaps: c.Swaps}
		},
	},
	{
		name:  "swap",
		title: "Swap sort",
		run: func(s []int) result {
			c := &sort.Counter{Data: sort.IntArray(s)}
			sort.SortSwap(c)
			return result{sorted: s, comparisons: c.Comparisons, swaps: c.Swaps}
		},
	},
	{
		name:  "quick",
		title: "Quick sort",
		run: func(s []int) result {
			var n int
			sorted := sort.QuickSortFunc(s, func(a, b int) int {
				n++
				switch {
				case a < b:
					return -1
				case a > b:
					return 1
				}
				return 0
			})
			return result{sorted: sorted, comparisons: n}
		},
	},
}

func algorithmNames() []string {
	return lo.Map(algorithms, func(a algorithm, _ int) string { return a.name })
}

func findAlgorithm(name string) (algorithm, error) {
	a, ok := lo.Find(algorithms, func(a algorithm) bool { return a.name == name })
	if !ok {
		return algorithm{}, fmt.Errorf("unknown algorithm %q, want one of %s", name, strings.Join(algorithmNames(), ", "))
	}
	return a, nil
}

func partitionTree(p *sort.Partition[int]) *utils.TreeNode {
	root := utils.NewTree(partitionLabel("", p))
	addPartitions(root, p)
	return root
}

func addPartitions(node *utils.TreeNode, p *sort.Partition[int]) {
	if p == nil || p.Leaf {
		return
	}
	if !isEmpty(p.Less) {
		addPartitions(node.AddChild(partitionLabel("< ", p.Less)), p.Less)
	}
	node.AddChild(fmt.Sprintf("= %v", p.Equal))
	if !isEmpty(p.Greater) {
		addPartitions(node.AddChild(partitionLabel("> ", p.Greater)), p.Greater)
	}
}

func isEmpty(p *sort.Partition[int]) bool {
	return p == nil || len(p.Input) == 0
}

func partitionLabel(prefix string, p *sort.Partition[int]) string {
	if p.Leaf {
		return fmt.Sprintf("%s%v", prefix, p.Input)
	}
	return fmt.Sprintf("%s%v pivot %d", prefix, p.Input, p.Pivot)
}
