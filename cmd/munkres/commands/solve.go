package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/munkres/matrix"
	"github.com/katalvlaran/munkres/munkres"
	"github.com/katalvlaran/munkres/render"
)

func solveCmd(a *app) *cobra.Command {
	var (
		file     string
		maximize bool
		trace    bool
		color    bool
		latex    bool
	)
	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Solve the assignment problem in a YAML/JSON(C) file",
		Long: `Reads a square cost matrix, either as a bare list of rows or as a
document {cost: [[...]], maximize: bool}, and prints the optimal
row → column assignment with its total.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := readProblem(file, cmd.InOrStdin())
			if err != nil {
				return err
			}
			m, err := matrix.NewDenseFrom(p.Cost)
			if err != nil {
				return fmt.Errorf("%w: %v", munkres.ErrShapeMismatch, err)
			}

			// flag > file > config
			opts := a.cfg.Solver.Options(a.log)
			if p.Maximize != nil {
				opts.Maximize = *p.Maximize
			}
			if cmd.Flags().Changed("maximize") {
				opts.Maximize = maximize
			}

			out := cmd.OutOrStdout()
			if latex {
				tex, err := render.LaTeX(m)
				if err != nil {
					return err
				}
				fmt.Fprintln(out, tex)
			}
			if trace {
				opts.OnStep = func(ev munkres.Event, s munkres.Snapshot) {
					fmt.Fprintf(out, "#%d %s stars=%d\n", ev.Seq, ev.Step, ev.Stars)
					fmt.Fprint(out, render.Snapshot(s, color))
				}
			}

			res, err := munkres.Solve(m, opts)
			if err != nil {
				return err
			}

			fmt.Fprintln(out, "assignment:")
			var v float64
			for _, pair := range res.Pairs() {
				if v, err = m.At(pair.Row, pair.Col); err != nil {
					return err
				}
				fmt.Fprintf(out, "  row %d -> col %d (%g)\n", pair.Row, pair.Col, v)
			}
			fmt.Fprintf(out, "cost: %g\n", res.Cost)

			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "input file (.yaml, .yml, .json, .jsonc; - for stdin)")
	cmd.Flags().BoolVar(&maximize, "maximize", false, "maximize the total instead of minimizing it")
	cmd.Flags().BoolVar(&trace, "trace", false, "print the marked matrix after every step")
	cmd.Flags().BoolVar(&color, "color", false, "colour the trace output")
	cmd.Flags().BoolVar(&latex, "latex", false, "print the input as a LaTeX pmatrix")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}
