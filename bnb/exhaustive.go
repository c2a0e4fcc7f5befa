// SPDX-License-Identifier: MIT

package bnb

// Exhaustive enumerates every path of p without bounds or deduplication
// and returns the best terminal reward (first found wins ties). It is the
// reference oracle for small instances; its cost is the full tree size.
//
// Stats.Expanded counts visited states and Stats.Terminals counts leaves.
func Exhaustive[S any, K comparable](p Problem[S, K]) (Result[S], error) {
	if p == nil {
		return Result[S]{}, ErrNilProblem
	}
	var res Result[S]
	stack := []S{p.Root()}
	var s S
	for len(stack) > 0 {
		s, stack = stack[len(stack)-1], stack[:len(stack)-1]
		res.Stats.Expanded++
		children := p.Expand(s)
		if len(children) == 0 {
			res.Stats.Terminals++
			if r := p.Reward(s); r > res.Reward {
				res.Reward, res.Best, res.Found = r, s, true
			}
			continue
		}
		res.Stats.Generated += len(children)
		// Reverse push keeps the domain's child order on pop.
		for i := len(children) - 1; i >= 0; i-- {
			stack = append(stack, children[i])
		}
		if len(stack) > res.Stats.PeakFrontier {
			res.Stats.PeakFrontier = len(stack)
		}
	}

	return res, nil
}
