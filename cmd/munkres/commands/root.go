package commands

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/munkres/config"
)

// app is the state shared by subcommands once the root pre-run has finished.
type app struct {
	cfgPath string
	verbose bool

	cfg *config.Config
	log *zap.Logger
}

// Execute runs the CLI with os.Args.
func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:          "munkres",
		Short:        "Optimal square assignment with the Hungarian (Kuhn–Munkres) method",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(a.cfgPath)
			if err != nil {
				return err
			}
			if err = cfg.Validate(); err != nil {
				return err
			}
			a.cfg = cfg

			a.log, err = config.NewLogger(cfg.Log, a.verbose)

			return err
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.log != nil {
				_ = a.log.Sync()
			}
		},
	}

	root.PersistentFlags().StringVar(&a.cfgPath, "config", "", "YAML configuration file")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "debug logging")

	root.AddCommand(solveCmd(a), randomCmd(a), verifyCmd(a))

	return root
}
