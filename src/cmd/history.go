package cmd

import (
	"fmt"
	"time"

	"github.com/urfave/cli/v2"

	"sortdemo/src/store"
)

func CmdHistory() *cli.Command {
	return &cli.Command{
		Name:     "history",
		Action:   history,
		Category: "TOOL",
		Usage:    "list recorded sort runs",
		Description: `
Lists the runs recorded by "sortdemo sort --meta-url", newest first.

Examples:
$ sortdemo history -m "mysql://sort:mypassword@(127.0.0.1:3306)/sortdemo"
# A safer alternative
$ export SORTDEMO_META_URL="mysql://sort:mypassword@(127.0.0.1:3306)/sortdemo"
$ sortdemo history --algo quick --limit 5`,
		Flags: []cli.Flag{
			metaFlag(),
			&cli.IntFlag{
				Name:    "limit",
				Aliases: []string{"n"},
				Value:   20,
				Usage:   "maximum number of runs to show",
			},
			&cli.StringFlag{
				Name:  "algo",
				Usage: "only show runs of this algorithm",
			},
		},
	}
}

func history(ctx *cli.Context) error {
	if err := setup(ctx, 0); err != nil {
		return err
	}
	url := ctx.String("meta-url")
	if url == "" {
		return cli.Exit("--meta-url is required", 1)
	}
	if algo := ctx.String("algo"); algo != "" {
		if _, err := findAlgorithm(algo); err != nil {
			return cli.Exit(err.Error(), 1)
		}
	}

	st, err := store.Open(url)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	runs, err := st.Recent(ctx.Context, ctx.String("algo"), ctx.Int("limit"))
	if err != nil {
		return fmt.Errorf("query runs: %w", err)
	}
	for _, r := range runs {
		fmt.Fprintln(ctx.App.Writer, formatRun(r))
	}
	return nil
}

func formatRun(r store.Run) string {
	return fmt.Sprintf("#%d %s %s %s: [%s] -> [%s] comparisons=%d swaps=%d",
		r.Id, r.Created.Format("2006-01-02 15:04:05"), r.Algo, time.Duration(r.Elapsed),
		joinInts(r.Input), joinInts(r.Output), r.Comparisons, r.Swaps)
}
