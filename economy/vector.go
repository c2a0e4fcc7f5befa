// SPDX-License-Identifier: MIT

package economy

import "fmt"

// MaxKinds is the number of resource kinds a Vector can hold.
const MaxKinds = 4

// Vector holds one non-negative amount per resource kind: either held
// resources or per-step production rates.
type Vector [MaxKinds]int

// Add returns v + o.
func (v Vector) Add(o Vector) Vector {
	for i := range v {
		v[i] += o[i]
	}

	return v
}

// Covers reports whether every component of v is at least cost's.
func (v Vector) Covers(cost Vector) bool {
	for i := range v {
		if v[i] < cost[i] {
			return false
		}
	}

	return true
}

// Pay subtracts cost from v. When v does not cover cost it returns
// ErrInsufficient and leaves v untouched.
func (v *Vector) Pay(cost Vector) error {
	if !v.Covers(cost) {
		return fmt.Errorf("%w: have %v, need %v", ErrInsufficient, *v, cost)
	}
	for i := range v {
		v[i] -= cost[i]
	}

	return nil
}

// NonNegative reports whether no component is negative.
func (v Vector) NonNegative() bool {
	for _, x := range v {
		if x < 0 {
			return false
		}
	}

	return true
}
