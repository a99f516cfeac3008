// Package anneal - tour cost evaluator.
//
// PathCost sums distances along consecutive pairs of an open ordering; there is
// no closing edge back to the first location. The result is deterministic and
// a pure function of the configuration and the distance matrix.
//
// Design:
//   - Out-of-range indices fail fast with ErrIndexOutOfRange; they never wrap.
//   - Stable summation: rounded to 1e-9 to avoid cross-platform FP noise.
package anneal

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvlath-anneal/matrix"
)

// roundScale controls final cost stabilization precision (1e-9).
const roundScale = 1e9

// PathCost returns Σ dist(config[k-1], config[k]) for k = 1..len(config)-1.
// A single-location configuration costs 0.
//
// Errors:
//   - ErrIndexOutOfRange when an element of config is outside [0,n).
//   - matrix.ErrNilMatrix when dist is nil or a nil pointer.
//
// Complexity: O(n).
func PathCost(dist matrix.Matrix, config []int) (float64, error) {
	if err := matrix.ValidateNotNil(dist); err != nil {
		return 0, err
	}
	return sumEdges(dist.Rows(), config, dist.At)
}

// sumEdges accumulates at(u,v) over consecutive pairs with range checks.
func sumEdges(n int, config []int, at func(i, j int) (float64, error)) (float64, error) {
	var (
		sum  float64
		k    int
		u, v int
		w    float64
		err  error
	)
	for k = 0; k < len(config); k++ {
		if config[k] < 0 || config[k] >= n {
			return 0, fmt.Errorf("position %d: location %d: %w", k, config[k], ErrIndexOutOfRange)
		}
	}
	for k = 1; k < len(config); k++ {
		u = config[k-1]
		v = config[k]
		if w, err = at(u, v); err != nil {
			return 0, fmt.Errorf("edge %d→%d: %w", u, v, err)
		}
		sum += w
	}

	return round1e9(sum), nil
}

// round1e9 returns x rounded to 1e-9 absolute precision.
func round1e9(x float64) float64 {
	return math.Round(x*roundScale) / roundScale
}
