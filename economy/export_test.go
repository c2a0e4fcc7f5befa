// SPDX-License-Identifier: MIT

package economy

// Optimistic exposes the bound to external tests.
func (p *Problem) Optimistic(t int, held, rate Vector) int { return p.optimistic(t, held, rate) }
