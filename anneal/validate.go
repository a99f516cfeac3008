// Package anneal - validation utilities.
//
// This file contains the up-front checks that classify configuration errors
// before the state machine starts:
//  1. Options (iteration budget, temperature, cooling step, schedule positivity).
//  2. Distance matrix (shape, diagonal, negativity, NaN/Inf, symmetry).
//
// Design principles:
//   - Deterministic, side-effect free functions.
//   - No logging, no panics on user input - only sentinel errors from types.go
//     and matrix/errors.go.
package anneal

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvlath-anneal/matrix"
)

// validateAll verifies Options + distance matrix. It returns n (matrix order) on success.
//
// Complexity: O(n²) time, O(1) extra space.
func validateAll(dist matrix.Matrix, opts Options) (int, error) {
	// Stage 1: Options-only sanity.
	if err := ValidateOptions(opts); err != nil {
		return 0, err
	}

	// Stage 2: Matrix shape/values.
	n, err := matrix.ValidateDistance(dist, matrix.DefaultTolerance)
	if err != nil {
		return 0, fmt.Errorf("distance matrix: %w", err)
	}
	if n < 2 {
		return 0, ErrTooFewLocations
	}

	return n, nil
}

// ValidateOptions checks internal consistency of Options without referencing
// a distance matrix.
//
// Errors:
//   - ErrInvalidIterations for N < 0.
//   - ErrInvalidTemperature for T0 <= 0, NaN or ±Inf.
//   - ErrInvalidCoolingStep for tau <= 0, NaN or ±Inf.
//   - ErrScheduleUnderflow when T0 − (N−1)·tau <= 0, i.e. the last
//     consulted temperature would not be positive.
//
// Complexity: O(1).
func ValidateOptions(opts Options) error {
	if opts.Iterations < 0 {
		return ErrInvalidIterations
	}
	if !(opts.InitialTemperature > 0) || math.IsInf(opts.InitialTemperature, 0) {
		return ErrInvalidTemperature
	}
	if !(opts.CoolingStep > 0) || math.IsInf(opts.CoolingStep, 0) {
		return ErrInvalidCoolingStep
	}
	if !(lastTemperature(opts.InitialTemperature, opts.CoolingStep, opts.Iterations) > 0) {
		return fmt.Errorf("%w: T0=%g tau=%g N=%d (max N=%d)", ErrScheduleUnderflow,
			opts.InitialTemperature, opts.CoolingStep, opts.Iterations,
			MaxIterations(opts.InitialTemperature, opts.CoolingStep))
	}

	return nil
}
