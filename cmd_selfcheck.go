package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/earlgray283/segkit/internal/selfcheck"
)

func newSelfCheckCmd(a *app) *cobra.Command {
	var opts selfcheck.Options
	cmd := &cobra.Command{
		Use:   "selfcheck",
		Short: "Run the segment tree self-checks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sc := a.cfg.SelfCheck
			flags := cmd.Flags()
			if flags.Changed("seed") {
				sc.Seed = opts.Seed
			}
			if flags.Changed("rounds") {
				sc.Rounds = opts.Rounds
			}
			if flags.Changed("size") {
				sc.Size = opts.Size
			}
			a.cfg.SelfCheck = sc
			if err := a.cfg.Validate(); err != nil {
				return err
			}

			suite := selfcheck.NewSuite(a.logger, selfcheck.Default(selfcheck.Options{
				Seed:   sc.Seed,
				Rounds: sc.Rounds,
				Size:   sc.Size,
			})...)
			report, err := suite.Run(cmd.Context())
			fmt.Fprintf(cmd.OutOrStdout(), "%d passed, %d failed\n", report.Passed, report.Failed)
			return err
		},
	}
	cmd.Flags().Int64Var(&opts.Seed, "seed", 1, "random seed for the differential checks")
	cmd.Flags().IntVar(&opts.Rounds, "rounds", 200, "operations per differential check")
	cmd.Flags().IntVar(&opts.Size, "size", 32, "array length for the differential checks")
	return cmd
}
