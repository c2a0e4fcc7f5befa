// SPDX-License-Identifier: MIT

// Command horizon solves release networks and production blueprints read
// from YAML files.
//
//	horizon release cave.yaml               # one agent, release.horizon steps
//	horizon release --dual cave.yaml        # two agents, horizon minus setup
//	horizon economy blueprints.yaml         # quality sum over all blueprints
//	horizon economy --first 3 --horizon 32 --aggregate product blueprints.yaml
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "horizon:", err)
		os.Exit(1)
	}
}
