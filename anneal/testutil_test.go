// Package anneal_test provides lightweight testing helpers shared across *_test.go
// files in this package.
package anneal_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvlath-anneal/anneal"
	"github.com/katalvlaran/lvlath-anneal/matrix"
	"github.com/stretchr/testify/require"
)

const (
	// seedDet is a deterministic seed for RNG-based components.
	seedDet = int64(7)

	// epsTiny is the tolerance for cost comparisons after 1e-9 rounding.
	epsTiny = 1e-9
)

// unitSquare returns the four corners of the unit square in tour order.
func unitSquare() []matrix.Point {
	return []matrix.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}
}

// demoPoints are the ten locations of instance.Demo.
func demoPoints() []matrix.Point {
	xs := []float64{-2.0, -3.0, 0.0, 3.4, 1.8, -1.0, -1.6, 0.3, 1.5, 0.9}
	ys := []float64{-1.4, 1.2, 4.0, 0.8, -1.1, -0.3, 0.6, 1.3, 0.5, -0.3}
	pts := make([]matrix.Point, len(xs))
	for i := range xs {
		pts[i] = matrix.Point{X: xs[i], Y: ys[i]}
	}
	return pts
}

// scrambledLine places location 0 at x=0 and the others at x=1..n-1 in a
// fixed scrambled order, so the identity ordering is far from optimal and the
// optimum (sweep left to right) costs exactly n-1.
func scrambledLine() []matrix.Point {
	xs := []float64{0, 5, 2, 7, 1, 6, 3, 4}
	pts := make([]matrix.Point, len(xs))
	for i, x := range xs {
		pts[i] = matrix.Point{X: x}
	}
	return pts
}

func euclid(t *testing.T, pts []matrix.Point) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewEuclidean(pts)
	require.NoError(t, err)
	return m
}

// countingRand wraps *rand.Rand and counts draws per method.
type countingRand struct {
	r      *rand.Rand
	ints   int
	floats int
}

func (c *countingRand) Intn(n int) int {
	c.ints++
	return c.r.Intn(n)
}

func (c *countingRand) Float64() float64 {
	c.floats++
	return c.r.Float64()
}

// scriptedRand replays fixed draws; it fails the test when exhausted.
type scriptedRand struct {
	t      *testing.T
	ints   []int
	floats []float64
}

func (s *scriptedRand) Intn(n int) int {
	require.NotEmpty(s.t, s.ints, "scriptedRand: Intn exhausted")
	v := s.ints[0]
	s.ints = s.ints[1:]
	require.Less(s.t, v, n, "scriptedRand: draw out of range")
	return v
}

func (s *scriptedRand) Float64() float64 {
	require.NotEmpty(s.t, s.floats, "scriptedRand: Float64 exhausted")
	v := s.floats[0]
	s.floats = s.floats[1:]
	return v
}

var (
	_ anneal.Rand = (*countingRand)(nil)
	_ anneal.Rand = (*scriptedRand)(nil)
)
