package cmd

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/samber/lo"
	"github.com/urfave/cli/v2"

	"sortdemo/src/sort"
	"sortdemo/src/store"
)

func CmdSort() *cli.Command {
	return &cli.Command{
		Name:      "sort",
		Action:    sortAction,
		Category:  "TOOL",
		Usage:     "sort integers given on the command line",
		ArgsUsage: "N [N ...]",
		Description: `
Sorts the integers with the chosen algorithm and prints them in ascending order.

Examples:
$ sortdemo sort 64 34 25 12 22 11 90
$ sortdemo sort --algo quick --tree 3 6 8 10 1 2 1
# Keep the run in MySQL
$ sortdemo sort --stats -m "mysql://sort:mypassword@(127.0.0.1:3306)/sortdemo" 5 4 3 2 1`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "algo",
				Aliases: []string{"a"},
				Value:   "bubble",
				Usage:   "algorithm to use: bubble, swap or quick",
			},
			&cli.BoolFlag{
				Name:    "stats",
				Aliases: []string{"s"},
				Usage:   "print comparison and swap counts",
			},
			&cli.BoolFlag{
				Name:    "tree",
				Aliases: []string{"t"},
				Usage:   "print the quick sort partition tree",
			},
			metaFlag(),
		},
	}
}

func parseInts(args []string) ([]int, error) {
	s := make([]int, 0, len(args))
	for _, arg := range args {
		v, err := strconv.Atoi(arg)
		if err != nil {
			return nil, fmt.Errorf("invalid number %q: %w", arg, err)
		}
		s = append(s, v)
	}
	return s, nil
}

func joinInts(s []int) string {
	return strings.Join(lo.Map(s, func(v int, _ int) string { return strconv.Itoa(v) }), " ")
}

func sortAction(ctx *cli.Context) error {
	if err := setup(ctx, 1); err != nil {
		return err
	}
	alg, err := findAlgorithm(ctx.String("algo"))
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}
	if ctx.Bool("tree") && alg.name != "quick" {
		return cli.Exit("--tree is only available with --algo quick", 1)
	}
	input, err := parseInts(ctx.Args().Slice())
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	data := make([]int, len(input))
	copy(data, input)
	start := time.Now()
	res := alg.run(data)
	elapsed := time.Since(start)
	logger.Debugf("%s sort of %d elements took %s", alg.name, len(input), elapsed)

	w := ctx.App.Writer
	fmt.Fprintln(w, joinInts(res.sorted))
	if ctx.Bool("stats") {
		if alg.name == "quick" {
			fmt.Fprintf(w, "comparisons: %d\n", res.comparisons)
		} else {
			fmt.Fprintf(w, "comparisons: %d\nswaps: %d\n", res.comparisons, res.swaps)
		}
	}
	if ctx.Bool("tree") {
		_, p := sort.QuickSortTrace(input)
		partitionTree(p).ShowTree(w, "")
	}

	if url := ctx.String("meta-url"); url != "" {
		st, err := store.Open(url)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		run := &store.Run{
			Algo:        alg.name,
			Input:       input,
			Output:      res.sorted,
			Comparisons: int64(res.comparisons),
			Swaps:       int64(res.swaps),
			Elapsed:     elapsed.Nanoseconds(),
		}
		if err = st.Record(ctx.Context, run); err != nil {
			return fmt.Errorf("record run: %w", err)
		}
		logger.Infof("recorded run %d", run.Id)
	}
	return nil
}
