package main

import (
	"fmt"
	"time"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/zhangzqs/ordering-go"
	"go.uber.org/zap"
)

func newSortCommand(root *rootOptions) *cobra.Command {
	lineOpts := &lineOptions{}
	var (
		algorithm string
		unique    bool
	)

	cmd := &cobra.Command{
		Use:   "sort",
		Short: "Sort lines read from stdin",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
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
			if cmd.Flags().Changed("algorithm") {
				if cfg.Algorithm, err = ordering.ParseAlgorithm(algorithm); err != nil {
					return err
				}
			}

			lines, err := readLines(cmd.InOrStdin(), lineOpts)
			if err != nil {
				return err
			}

			start := time.Now()
			ordering.NewSorter(lineOpts.comparer(), cfg).Sort(lines)
			logger.Debug("sorted",
				zap.Int("lines", len(lines)),
				zap.Stringer("algorithm", cfg.Algorithm),
				zap.Duration("elapsed", time.Since(start)),
			)

			if unique {
				lines = lo.UniqBy(lines, func(l line) string { return l.text })
			}
			if err := writeLines(cmd.OutOrStdout(), lines); err != nil {
				return fmt.Errorf("failed to write output: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&algorithm, "algorithm", "a", string(ordering.AlgorithmDefault),
		fmt.Sprintf("sort algorithm, one of %v", ordering.Algorithms))
	cmd.Flags().BoolVarP(&lineOpts.numeric, "numeric", "n", false, "compare lines by numeric value")
	cmd.Flags().BoolVarP(&lineOpts.reverse, "reverse", "r", false, "reverse the order")
	cmd.Flags().BoolVarP(&unique, "unique", "u", false, "drop repeated lines")
	cmd.Flags().BoolVar(&lineOpts.skipEmpty, "skip-empty", false, "ignore blank lines")
	return cmd
}

func newVerifyCommand(root *rootOptions) *cobra.Command {
	lineOpts := &lineOptions{}

	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Exit with an error unless the lines read from stdin are sorted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			lines, err := readLines(cmd.InOrStdin(), lineOpts)
			if err != nil {
				return err
			}
			if !ordering.Verify(lines, lineOpts.comparer()) {
				return fmt.Errorf("input is not sorted")
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&lineOpts.numeric, "numeric", "n", false, "compare lines by numeric value")
	cmd.Flags().BoolVarP(&lineOpts.reverse, "reverse", "r", false, "expect reversed order")
	cmd.Flags().BoolVar(&lineOpts.skipEmpty, "skip-empty", false, "ignore blank lines")
	return cmd
}
