package main

import (
	"fmt"
	"os"

	"github.com/logrusorgru/aurora"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/zishanyusuf/Inventory-Decision-Locally-Trained-AI-App/config"
	"github.com/zishanyusuf/Inventory-Decision-Locally-Trained-AI-App/inventory"
	"github.com/zishanyusuf/Inventory-Decision-Locally-Trained-AI-App/mdp"
	"github.com/zishanyusuf/Inventory-Decision-Locally-Trained-AI-App/report"
)

// app is the state shared by every subcommand once flags are parsed.
type app struct {
	cfg    *config.Config
	logger zerolog.Logger
	au     aurora.Aurora
}

func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "reorder",
		Short: "Learn an inventory reorder policy with tabular Q-learning",
		Long: `reorder trains a Q-learning agent on a single-item inventory problem with
Poisson demand, then compares the learned policy with an order-up-to rule.

Every flag can also be set in a config file (--config), or through the
environment with the REORDER_ prefix, e.g. REORDER_POISSON_LAMBDA=6.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.load(cmd)
		},
	}
	config.RegisterFlags(rootCmd.PersistentFlags())
	rootCmd.PersistentFlags().Bool("no-color", false, "Disable colored output")

	rootCmd.AddCommand(
		newTrainCmd(a),
		newReportCmd(a),
		newCompareCmd(a),
	)
	return rootCmd
}

func (a *app) load(cmd *cobra.Command) error {
	config.LoadDotEnv(".env")

	cfg, err := config.Load(viper.New(), cmd.Flags())
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.logger = newLogger(cfg, os.Stderr)

	noColor, _ := cmd.Flags().GetBool("no-color")
	a.au = aurora.NewAurora(!noColor && isTerminal(os.Stdout))
	return nil
}

func (a *app) modelOptions(seed uint64) []inventory.Option {
	opts := []inventory.Option{
		inventory.WithLogger(a.logger),
		inventory.WithProgressEvery(a.cfg.ProgressEvery),
	}
	if seed != 0 {
		opts = append(opts, inventory.WithSeed(seed))
	}
	return opts
}

// trained is one finished run: the model, its greedy policy and the
// comparison against the order-up-to rule.
type trained struct {
	model      *inventory.Model
	learned    mdp.PolicyTable
	simple     inventory.OrderUpTo
	comparison inventory.Comparison
}

func (a *app) train(cmd *cobra.Command) (*trained, error) {
	model, err := inventory.New(a.cfg.Params(), a.modelOptions(a.cfg.Seed)...)
	if err != nil {
		return nil, err
	}
	a.logger.Info().
		Str("run_id", model.RunID().String()).
		Uint64("seed", a.cfg.Seed).
		Msg("training reorder policy")

	if err := model.Train(cmd.Context()); err != nil {
		return nil, err
	}
	learned, err := model.OptimalPolicy()
	if err != nil {
		return nil, err
	}

	simple := inventory.OrderUpTo{Capacity: a.cfg.Capacity, TargetLevel: a.cfg.Target()}
	return &trained{
		model:      model,
		learned:    learned,
		simple:     simple,
		comparison: inventory.Compare(model, learned, simple, a.cfg.EvalSteps),
	}, nil
}

func (a *app) print(cmd *cobra.Command, t *trained) {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, a.au.Bold("Optimal order quantity (rows: on hand, columns: in transit)"))
	inventory.PrintPolicy(out, a.au, t.model.StateSpace(), t.learned)
	fmt.Fprintln(out)
	inventory.PrintComparison(out, a.au, t.comparison, a.cfg.EvalSteps)
}

func newTrainCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "train",
		Short: "Train a policy and print it",
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := a.train(cmd)
			if err != nil {
				return err
			}
			a.print(cmd, t)
			return nil
		},
	}
}

func newReportCmd(a *app) *cobra.Command {
	var out, serve string

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Train a policy and write the HTML charts and CSV",
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := a.train(cmd)
			if err != nil {
				return err
			}
			a.print(cmd, t)

			paths, err := report.WriteFiles(out, report.Run{
				RunID:      t.model.RunID().String(),
				Params:     t.model.Params(),
				Space:      t.model.StateSpace(),
				Learned:    t.learned,
				Simple:     t.simple,
				Comparison: t.comparison,
			})
			if err != nil {
				return err
			}
			for _, p := range paths {
				fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", p)
			}

			if serve == "" {
				return nil
			}
			return report.NewServer(out, a.logger).ListenAndServe(cmd.Context(), serve)
		},
	}
	cmd.Flags().StringVar(&out, "out", "charts", "Output directory")
	cmd.Flags().StringVar(&serve, "serve", "", "Serve the output directory on this address after writing, e.g. localhost:8089")
	return cmd
}

func newCompareCmd(a *app) *cobra.Command {
	var seeds int

	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Compare learned, order-up-to and max-order policies over many seeds",
		RunE: func(cmd *cobra.Command, args []string) error {
			if seeds < 1 {
				return fmt.Errorf("--seeds must be >= 1, got %d", seeds)
			}
			base := a.cfg.Seed
			if base == 0 {
				base = 1
			}
			list := make([]uint64, seeds)
			for i := range list {
				list[i] = base + uint64(i)
			}

			target := a.cfg.Capacity
			if a.cfg.TargetLevel >= 0 {
				target = a.cfg.TargetLevel
			}

			res, err := inventory.CompareSeeds(cmd.Context(), a.cfg.Params(), list, target, a.cfg.EvalSteps,
				inventory.WithLogger(a.logger), inventory.WithProgressEvery(0))
			if err != nil {
				return err
			}
			inventory.PrintSeedComparison(cmd.OutOrStdout(), a.au, res, a.cfg.EvalSteps)
			return nil
		},
	}
	cmd.Flags().IntVar(&seeds, "seeds", 10, "Number of independently seeded runs")
	return cmd
}
