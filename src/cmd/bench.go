package cmd

import (
	"fmt"
	"math/rand"
	"runtime"
	"sync"
	"time"

	"github.com/emirpasic/gods/maps/treemap"
	"github.com/panjf2000/ants/v2"
	"github.com/samber/lo"
	"github.com/urfave/cli/v2"

	"sortdemo/src/sort"
)

func CmdBench() *cli.Command {
	return &cli.Command{
		Name:     "bench",
		Action:   bench,
		Category: "TOOL",
		Usage:    "time every algorithm on random input and check the results",
		Description: `
Sorts random sequences with every algorithm on a worker pool. Each result is
checked to be in order and to hold exactly the elements of its input.

Examples:
$ sortdemo bench
$ sortdemo bench --size 5000 --rounds 16 --workers 4`,
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:  "size",
				Value: 1000,
				Usage: "number of elements per sequence",
			},
			&cli.IntFlag{
				Name:  "rounds",
				Value: 8,
				Usage: "number of sequences per algorithm",
			},
			&cli.IntFlag{
				Name:  "workers",
				Usage: "pool size (default: GOMAXPROCS)",
			},
			&cli.Int64Flag{
				Name:  "seed",
				Value: 1,
				Usage: "random seed",
			},
		},
	}
}

type benchStat struct {
	total    time.Duration
	failures int
}

func bench(ctx *cli.Context) error {
	if err := setup(ctx, 0); err != nil {
		return err
	}
	size, rounds := ctx.Int("size"), ctx.Int("rounds")
	if size < 0 || rounds <= 0 {
		return cli.Exit("--size must be >= 0 and --rounds > 0", 1)
	}
	workers := ctx.Int("workers")
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	r := rand.New(rand.NewSource(ctx.Int64("seed")))
	inputs := lo.Times(rounds, func(_ int) []int {
		s := make([]int, size)
		for i := range s {
			s[i] = r.Intn(size + 1)
		}
		return s
	})

	pool, err := ants.NewPool(workers)
	if err != nil {
		return fmt.Errorf("new pool: %w", err)
	}
	defer pool.Release()

	var mu sync.Mutex
	stats := make(map[string]*benchStat, len(algorithms))
	for _, alg := range algorithms {
		stats[alg.name] = &benchStat{}
	}

	var tasks []func()
	for _, alg := range algorithms {
		for i, in := range inputs {
			alg, i, in := alg, i, in
			tasks = append(tasks, func() {
				data := make([]int, len(in))
				copy(data, in)
				start := time.Now()
				res := alg.run(data)
				elapsed := time.Since(start)
				ok := sort.IsSorted(sort.IntArray(res.sorted)) && sameMultiset(in, res.sorted)
				if !ok {
					logger.Errorf("%s sort failed on round %d", alg.name, i)
				}

				mu.Lock()
				st := stats[alg.name]
				st.total += elapsed
				if !ok {
					st.failures++
				}
				mu.Unlock()
			})
		}
	}
	if err := runTasks(pool.Submit, tasks); err != nil {
		return err
	}

	var failures int
	w := ctx.App.Writer
	for _, alg := range algorithms {
		st := stats[alg.name]
		failures += st.failures
		fmt.Fprintf(w, "%-8s rounds=%d size=%d total=%s avg=%s failures=%d\n",
			alg.name, rounds, size, st.total, st.total/time.Duration(rounds), st.failures)
	}
	if failures > 0 {
		return cli.Exit(fmt.Sprintf("%d runs produced a wrong result", failures), 1)
	}
	return nil
}

// runTasks hands every task to submit and waits for the accepted ones to
// finish, even when a later submit fails.
func runTasks(submit func(func()) error, tasks []func()) error {
	var wg sync.WaitGroup
	defer wg.Wait()
	for i, task := range tasks {
		task := task
		wg.Add(1)
		if err := submit(func() {
			defer wg.Done()
			task()
		}); err != nil {
			wg.Done()
			return fmt.Errorf("submit task %d: %w", i, err)
		}
	}
	return nil
}

func multiset(s []int) *treemap.Map {
	m := treemap.NewWithIntComparator()
	for _, v := range s {
		if n, found := m.Get(v); found {
			m.Put(v, n.(int)+1)
		} else {
			m.Put(v, 1)
		}
	}
	return m
}

// sameMultiset reports whether a and b hold the same elements with the same
// multiplicities.
func sameMultiset(a, b []int) bool {
	ma, mb := multiset(a), multiset(b)
	if ma.Size() != mb.Size() {
		return false
	}
	it := ma.Iterator()
	for it.Next() {
		if n, found := mb.Get(it.Key()); !found || n != it.Value() {
			return false
		}
	}
	return true
}
