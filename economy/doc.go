// SPDX-License-Identifier: MIT

// Package economy solves production economies: producers yield one unit of
// their resource kind per time step, and resources can be spent to build
// more producers. The reward is the amount of the terminal resource held at
// the horizon.
//
// Resource kinds are ordered by dependency (raw → intermediate → terminal):
// a producer of kind k may only cost resources of kinds ≤ k, and nothing
// ever costs the terminal resource. Vectors are fixed-size arrays so states
// are comparable values and can key the engine's expanded-set directly.
//
// Problem plugs into package bnb:
//
//   - Actions per step: build one producer of any affordable kind (pay, then
//     collect this step's production, then the producer joins), or build
//     nothing. At most one producer per step.
//   - Producer cap (optional, on by default): never own more producers of a
//     non-terminal kind than the most any single build can spend of it.
//   - Bound: simulate the remaining steps with every affordable kind built
//     each step and no cost ever paid, then cap by the "one terminal
//     producer per remaining step" triangle. Both relaxations dominate the
//     real process, so the bound never underestimates.
package economy
