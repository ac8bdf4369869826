package main

import (
	"context"
	"fmt"
	"math/rand"
	"slices"
	"sync"
	"time"

	"github.com/spf13/cobra"
	"github.com/zhangzqs/ordering-go"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// maxInsertionBench bounds the input of the quadratic insertion sort.
const maxInsertionBench = 20000

type benchResult struct {
	name    string
	elapsed time.Duration
}

type benchCase struct {
	name string
	run  func(ctx context.Context, data []int) ([]int, error)
}

func newBenchCommand(root *rootOptions) *cobra.Command {
	var (
		n    int
		seed int64
	)

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Time every algorithm on the same random integers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if n < 0 {
				return fmt.Errorf("--n must not be negative, got %d", n)
			}
			logger, err := root.newLogger()
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			cfg := ordering.DefaultConfig()
			if root.configPath != "" {
				if cfg, err = ordering.LoadConfig(root.configPath); err != nil {
					return err
				}
			}

			results, err := runBench(cmd.Context(), logger, cfg, randomData(n, seed))
			if err != nil {
				return err
			}
			for _, r := range results {
				fmt.Fprintf(cmd.OutOrStdout(), "%-10s %v\n", r.name, r.elapsed)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&n, "n", 100000, "number of integers to sort")
	cmd.Flags().Int64Var(&seed, "seed", 1, "random seed")
	return cmd
}

func randomData(n int, seed int64) []int {
	r := rand.New(rand.NewSource(seed))
	data := make([]int, n)
	for i := range data {
		data[i] = r.Int()
	}
	return data
}

func benchCases(cfg ordering.Config, logger *zap.Logger, n int) []benchCase {
	c := ordering.Natural[int]()
	sorter := ordering.NewSorter(c, cfg)

	inPlace := func(alg ordering.Algorithm) func(context.Context, []int) ([]int, error) {
		return func(_ context.Context, data []int) ([]int, error) {
			sorter.SortWith(alg, data)
			return data, nil
		}
	}
	sorted := func(data []int) *ordering.Sorted[int] {
		return ordering.NewSorted(data, c, ordering.WithConfig(cfg), ordering.WithLogger(logger))
	}

	cases := []benchCase{
		{"merge", inPlace(ordering.AlgorithmMerge)},
		{"quick", inPlace(ordering.AlgorithmQuick)},
		{"stable", inPlace(ordering.AlgorithmStable)},
		{"parallel", func(ctx context.Context, data []int) ([]int, error) {
			return sorted(data).Parallel(ctx)
		}},
		{"mergesort", func(ctx context.Context, data []int) ([]int, error) {
			return sorted(data).MergeSort(ctx)
		}},
		{"async", func(ctx context.Context, data []int) ([]int, error) {
			return sorted(data).Async().Await(ctx)
		}},
	}
	if n <= maxInsertionBench {
		cases = append(cases, benchCase{"insertion", inPlace(ordering.AlgorithmInsertion)})
	} else {
		logger.Info("skipping insertion sort", zap.Int("n", n), zap.Int("max", maxInsertionBench))
	}
	return cases
}

// runBench runs every case concurrently on its own copy of data and verifies each result.
func runBench(ctx context.Context, logger *zap.Logger, cfg ordering.Config, data []int) ([]benchResult, error) {
	cases := benchCases(cfg, logger, len(data))
	c := ordering.Natural[int]()

	var (
		mu      sync.Mutex
		results []benchResult
	)
	g, ctx := errgroup.WithContext(ctx)
	for _, bc := range cases {
		input := slices.Clone(data)
		g.Go(func() error {
			start := time.Now()
			out, err := bc.run(ctx, input)
			if err != nil {
				return fmt.Errorf("%s: %w", bc.name, err)
			}
			elapsed := time.Since(start)
			if len(out) != len(data) || !ordering.Verify(out, c) {
				return fmt.Errorf("%s: result is not sorted", bc.name)
			}
			logger.Info("bench", zap.String("case", bc.name), zap.Int("n", len(data)), zap.Duration("elapsed", elapsed))

			mu.Lock()
			results = append(results, benchResult{name: bc.name, elapsed: elapsed})
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	slices.SortFunc(results, ordering.By(func(r benchResult) time.Duration { return r.elapsed }).Func())
	return results, nil
}
