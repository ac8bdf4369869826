// Command ordering sorts, verifies and benchmarks line oriented input with
// the algorithms of the ordering package.
//
// Usage:
//
//	ordering sort [--algorithm quick|merge|insertion|stable|default] [--numeric] [--reverse] [--unique] < input
//	ordering verify [--numeric] [--reverse] < input
//	ordering bench [--n 100000] [--seed 1]
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type rootOptions struct {
	verbose    bool
	configPath string
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:           "ordering",
		Short:         "Sort, verify and benchmark line oriented input",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "log debug output to stderr")
	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "YAML file tuning the sort engine")

	cmd.AddCommand(
		newSortCommand(opts),
		newVerifyCommand(opts),
		newBenchCommand(opts),
	)
	return cmd
}

// newLogger builds a development logger when verbose, a production logger otherwise.
func (o *rootOptions) newLogger() (*zap.Logger, error) {
	var (
		logger *zap.Logger
		err    error
	)
	if o.verbose {
		logger, err = zap.NewDevelopment()
	} else {
		cfg := zap.NewProductionConfig()
		cfg.OutputPaths = []string{"stderr"}
		logger, err = cfg.Build()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}
	return logger, nil
}
