// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/horizon/batch"
	"github.com/katalvlaran/horizon/config"
	"github.com/katalvlaran/horizon/economy"
)

func newEconomyCmd(g *globals) *cobra.Command {
	var (
		horizon   int
		first     int
		aggregate string
	)
	cmd := &cobra.Command{
		Use:   "economy BLUEPRINTS.yaml",
		Short: "Maximize the terminal resource total of each blueprint",
		Long: `Solves every blueprint in the file, prints one result per blueprint and
then the requested aggregate: sum, product or quality (Σ id × result).`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := g.setup(cmd)
			if err != nil {
				return err
			}
			if _, err := batch.Aggregate(aggregate, nil); err != nil {
				return err
			}
			if horizon >= 0 {
				rt.cfg.Economy.Horizon = horizon
			}
			bps, err := config.LoadBlueprints(args[0])
			if err != nil {
				return err
			}
			if first > 0 && first < len(bps) {
				bps = bps[:first]
			}

			opts := append(rt.batch, batch.WithEconomy(economy.WithProducerCap(rt.cfg.Economy.ProducerCap)))
			outs, err := batch.SolveBlueprints(cmd.Context(), bps, rt.cfg.Economy.Horizon, opts...)
			if err != nil {
				return err
			}
			total, err := batch.Aggregate(aggregate, outs)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			for _, o := range outs {
				fmt.Fprintf(w, "blueprint %d: %d\n", o.ID, o.Reward)
			}
			fmt.Fprintf(w, "%s: %d\n", aggregate, total)

			return rt.flush()
		},
	}
	cmd.Flags().IntVar(&horizon, "horizon", -1, "override economy.horizon")
	cmd.Flags().IntVar(&first, "first", 0, "only solve the first N blueprints (0 = all)")
	cmd.Flags().StringVar(&aggregate, "aggregate", batch.AggregateQuality, "sum, product or quality")

	return cmd
}
