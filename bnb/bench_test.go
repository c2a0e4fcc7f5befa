// SPDX-License-Identifier: MIT

package bnb_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/horizon/bnb"
)

func BenchmarkSolve_Walk(b *testing.B) {
	w := randomWalk(rand.New(rand.NewSource(1)), 8, 14)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := bnb.Solve[walkState, walkKey](w); err != nil {
			b.Fatal(err)
		}
	}
}
