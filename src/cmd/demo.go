package cmd

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"sortdemo/src/sort"
)

var demoSample = []int{64, 34, 25, 12, 22, 11, 90}

func CmdDemo() *cli.Command {
	return &cli.Command{
		Name:     "demo",
		Action:   demo,
		Category: "EXAMPLE",
		Usage:    "sort a fixed sample with every algorithm",
		Description: `
Runs [64 34 25 12 22 11 90] through bubble sort, swap sort and quick sort
and prints the sequence before and after each one.

Examples:
$ sortdemo demo`,
	}
}

func demo(ctx *cli.Context) error {
	if err := setup(ctx, 0); err != nil {
		return err
	}
	w := ctx.App.Writer

	arr := make([]int, len(demoSample))
	copy(arr, demoSample)
	fmt.Fprintf(w, "Bubble sort\n  before: %v\n", arr)
	fmt.Fprintf(w, "  after:  %v\n", sort.BubbleSort(arr))

	copy(arr, demoSample)
	fmt.Fprintf(w, "Swap sort\n  before: %v\n", arr)
	sort.SwapSort(arr)
	fmt.Fprintf(w, "  after:  %v\n", arr)

	copy(arr, demoSample)
	fmt.Fprintf(w, "Quick sort\n  before: %v\n", arr)
	fmt.Fprintf(w, "  after:  %v\n", sort.QuickSort(arr))

	logger.Debugf("demo finished for %d elements", len(demoSample))
	return nil
}
