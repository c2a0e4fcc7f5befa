// SPDX-License-Identifier: MIT

package release

// Optimistic exposes the single-agent bound extra to external tests.
func (p *Problem) Optimistic(t, site int, open uint64) int { return p.optimistic(t, site, open) }
