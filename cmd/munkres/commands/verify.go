package commands

import (
	"errors"
	"fmt"
	"math"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/munkres/generator"
	"github.com/katalvlaran/munkres/matrix"
	"github.com/katalvlaran/munkres/munkres"
	"github.com/katalvlaran/munkres/oracle"
)

var errMismatch = errors.New("verify: solver disagrees with brute force")

// verifyTolerance absorbs float summation order differences.
const verifyTolerance = 1e-9

func verifyCmd(a *app) *cobra.Command {
	var (
		size    int
		trials  int
		high    int
		seed    int64
		workers int
	)
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Cross-check the solver against brute force on random matrices",
		Long: fmt.Sprintf(`Solves seeded random matrices concurrently and compares every total
with an exhaustive permutation search (size ≤ %d).`, oracle.MaxOrder),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rc, sc := a.cfg.Random, a.cfg.Solver
			if cmd.Flags().Changed("size") {
				rc.Size = size
			}
			if cmd.Flags().Changed("trials") {
				rc.Trials = trials
			}
			if cmd.Flags().Changed("high") {
				rc.High = high
			}
			if cmd.Flags().Changed("seed") {
				rc.Seed = seed
			}
			if cmd.Flags().Changed("workers") {
				sc.Workers = workers
			}
			if rc.Size > oracle.MaxOrder {
				return fmt.Errorf("%w: size %d", oracle.ErrTooLarge, rc.Size)
			}

			batch, err := generator.Batch(rc.Seed, rc.Trials, rc.Size, rc.High)
			if err != nil {
				return err
			}
			opts := sc.Options(a.log)
			results, err := munkres.SolveAll(cmd.Context(), batch, opts, sc.Workers)
			if err != nil {
				return err
			}

			best := oracle.MinCost
			if opts.Maximize {
				best = oracle.MaxCost
			}
			var mismatches int
			for i, res := range results {
				want, err := best(batch[i])
				if err != nil {
					return err
				}
				if math.Abs(want.Cost-res.Cost) > verifyTolerance {
					mismatches++
					fields := []zap.Field{
						zap.Int("matrix", i),
						zap.Float64("solver", res.Cost),
						zap.Float64("oracle", want.Cost),
					}
					if d, ok := batch[i].(*matrix.Dense); ok {
						fields = append(fields, zap.Any("cost", d.ToRows()))
					}
					a.log.Warn("verify: mismatch", fields...)
				}
			}

			fmt.Fprintf(cmd.OutOrStdout(), "trials=%d size=%d seed=%d mismatches=%d\n",
				rc.Trials, rc.Size, rc.Seed, mismatches)
			if mismatches > 0 {
				return fmt.Errorf("%w: %d of %d", errMismatch, mismatches, rc.Trials)
			}

			return nil
		},
	}

	cmd.Flags().IntVarP(&size, "size", "n", 0, "matrix order (default from config)")
	cmd.Flags().IntVar(&trials, "trials", 0, "number of random matrices (default from config)")
	cmd.Flags().IntVar(&high, "high", 0, "exclusive upper bound of entries (default from config)")
	cmd.Flags().Int64Var(&seed, "seed", 0, "base seed; matrix i uses a stream derived from it")
	cmd.Flags().IntVar(&workers, "workers", 0, "concurrent solves (default from config)")

	return cmd
}
