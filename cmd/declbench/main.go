// declbench measures whether stating a binding's type (`var x T = f()`) instead
// of inferring it (`x := f()`) changes the cost of constructing sample records.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/appnet-org/declbench/pkg/bench"
	"github.com/appnet-org/declbench/pkg/codec"
	"github.com/appnet-org/declbench/pkg/entropy"
	"github.com/appnet-org/declbench/pkg/logging"
	"github.com/appnet-org/declbench/pkg/payload"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func main() {
	if err := logging.Init(logging.ConfigFromEnv()); err != nil {
		panic(fmt.Sprintf("Failed to initialize logging: %v", err))
	}
	defer logging.Sync()

	if err := newRootCmd(os.Stdout).Execute(); err != nil {
		logging.Error("declbench failed", zap.Error(err))
		logging.Sync()
		os.Exit(1)
	}
}

func newRootCmd(out io.Writer) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "declbench",
		Short:         "Compare explicit and inferred binding types when constructing records",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.SetOut(out)

	rootCmd.AddCommand(
		newShapeCmd(bench.ShapeUser, "Benchmark flat user records"),
		newShapeCmd(bench.ShapeTree, "Benchmark deep record trees (1,000 leaves each)"),
		newSizesCmd(),
	)
	return rootCmd
}

func newShapeCmd(shape bench.Shape, short string) *cobra.Command {
	cfg := bench.DefaultConfig(shape)
	var seed uint64

	cmd := &cobra.Command{
		Use:   string(shape),
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			src := sourceFor(seed, cmd.Flags().Changed("seed"))
			cfg.Seed = src.Seed()

			logging.Info("Benchmark configuration",
				zap.Stringer("shape", cfg.Shape),
				zap.Int("iterations", cfg.Iterations),
				zap.Uint64("seed", cfg.Seed),
				zap.Bool("shuffle", cfg.Shuffle))

			w, err := bench.NewWorkload(cfg.Shape, payload.NewGenerator(src))
			if err != nil {
				return err
			}
			_, err = bench.Run(cfg, w, cmd.OutOrStdout())
			return err
		},
	}

	cmd.Flags().IntVarP(&cfg.Iterations, "iterations", "n", cfg.Iterations, "number of records built per phase")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "random seed (picked at random when unset)")
	cmd.Flags().BoolVar(&cfg.Shuffle, "shuffle", false, "randomize which phase runs first")
	return cmd
}

func newSizesCmd() *cobra.Command {
	var seed uint64

	cmd := &cobra.Command{
		Use:   "sizes",
		Short: "Report encoded property sizes of one record tree per codec",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			root := payload.NewGenerator(sourceFor(seed, cmd.Flags().Changed("seed"))).Tree()
			_, err := bench.MeasureSizes(root, codec.DefaultRegistry, cmd.OutOrStdout())
			return err
		},
	}

	cmd.Flags().Uint64Var(&seed, "seed", 0, "random seed (picked at random when unset)")
	return cmd
}

// sourceFor returns a source for seed, or a randomly seeded one when the flag
// was not given.
func sourceFor(seed uint64, set bool) *entropy.Source {
	if !set {
		return entropy.NewRandom()
	}
	return entropy.New(seed)
}
