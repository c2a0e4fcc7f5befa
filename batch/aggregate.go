// SPDX-License-Identifier: MIT

package batch

import "fmt"

// Sum returns Σ reward.
func Sum(outs []Outcome) int {
	var total int
	for _, o := range outs {
		total += o.Reward
	}

	return total
}

// Product returns Π reward; 1 for no outcomes.
func Product(outs []Outcome) int {
	total := 1
	for _, o := range outs {
		total *= o.Reward
	}

	return total
}

// QualitySum returns Σ id × reward.
func QualitySum(outs []Outcome) int {
	var total int
	for _, o := range outs {
		total += o.ID * o.Reward
	}

	return total
}

// Aggregate applies the named aggregation.
func Aggregate(name string, outs []Outcome) (int, error) {
	switch name {
	case AggregateSum:
		return Sum(outs), nil
	case AggregateProduct:
		return Product(outs), nil
	case AggregateQuality:
		return QualitySum(outs), nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownAggregate, name)
	}
}
