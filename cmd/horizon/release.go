// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/horizon/batch"
	"github.com/katalvlaran/horizon/config"
	"github.com/katalvlaran/horizon/release"
)

func newReleaseCmd(g *globals) *cobra.Command {
	var (
		dual    bool
		horizon int
		start   string
	)
	cmd := &cobra.Command{
		Use:   "release NETWORK.yaml...",
		Short: "Maximize the reward released from one or more networks",
		Long: `Solves each network file independently and prints one reward per file
followed by the total.

With --dual two agents share the network; their horizon is the configured
horizon minus release.setup_overhead.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := g.setup(cmd)
			if err != nil {
				return err
			}
			if start == "" {
				start = rt.cfg.Release.Start
			}
			if horizon >= 0 {
				rt.cfg.Release.Horizon = horizon
				rt.cfg.Release.SetupOverhead = min(rt.cfg.Release.SetupOverhead, horizon)
			}
			h := rt.cfg.Release.Horizon
			if dual {
				h = rt.cfg.Release.DualHorizon()
			}

			nets := make([]*release.Network, len(args))
			for i, path := range args {
				if nets[i], err = config.LoadNetwork(path, start); err != nil {
					return err
				}
			}
			outs, err := batch.SolveNetworks(cmd.Context(), nets, h, dual, rt.batch...)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			for i, o := range outs {
				fmt.Fprintf(w, "%s: %d\n", args[i], o.Reward)
			}
			fmt.Fprintf(w, "total: %d\n", batch.Sum(outs))

			return rt.flush()
		},
	}
	cmd.Flags().BoolVar(&dual, "dual", false, "two cooperating agents")
	cmd.Flags().IntVar(&horizon, "horizon", -1, "override release.horizon")
	cmd.Flags().StringVar(&start, "start", "", "start site when the file names none (default release.start)")

	return cmd
}
