package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/munkres/generator"
	"github.com/katalvlaran/munkres/matrix"
	"github.com/katalvlaran/munkres/render"
)

var errUnknownFormat = errors.New("random: unknown output format")

func randomCmd(a *app) *cobra.Command {
	var (
		size   int
		high   int
		seed   int64
		frac   bool
		format string
	)
	cmd := &cobra.Command{
		Use:   "random",
		Short: "Print a seeded random cost matrix",
		Long: `Generates an n×n matrix with entries in [0, high). The default YAML
output can be fed back into "munkres solve -f".`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rc := a.cfg.Random
			if cmd.Flags().Changed("size") {
				rc.Size = size
			}
			if cmd.Flags().Changed("high") {
				rc.High = high
			}
			if cmd.Flags().Changed("seed") {
				rc.Seed = seed
			}

			var (
				m   *matrix.Dense
				err error
				r   = generator.NewRand(rc.Seed)
			)
			if frac {
				m, err = generator.Floats(r, rc.Size, float64(rc.High))
			} else {
				m, err = generator.Ints(r, rc.Size, rc.High)
			}
			if err != nil {
				return err
			}

			var text string
			switch format {
			case "yaml":
				var b []byte
				if b, err = encodeRows(m); err != nil {
					return err
				}
				text = string(b)
			case "plain":
				text, err = render.Plain(m)
			case "latex":
				text, err = render.LaTeX(m)
				text += "\n"
			default:
				return fmt.Errorf("%w: %q (want yaml, plain or latex)", errUnknownFormat, format)
			}
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), text)

			return nil
		},
	}

	cmd.Flags().IntVarP(&size, "size", "n", 0, "matrix order (default from config)")
	cmd.Flags().IntVar(&high, "high", 0, "exclusive upper bound of entries (default from config)")
	cmd.Flags().Int64Var(&seed, "seed", 0, "RNG seed; 0 selects the default seed")
	cmd.Flags().BoolVar(&frac, "float", false, "fractional entries instead of integers")
	cmd.Flags().StringVar(&format, "format", "yaml", "output format: yaml, plain or latex")

	return cmd
}
