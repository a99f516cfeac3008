// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for distance-matrix checks.
//  - Keep solvers minimal by delegating shape/nil/symmetry checks here.
//  - Return sentinel errors wrapped with a validator tag so call sites can match via errors.Is.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing.
//  - Symmetry check runs O(n²) on the upper triangle only.
//
// Note:
//  - Each composite validator follows a fixed sequence (NotNil → Square → ...).

package matrix

import (
	"fmt"
	"math"
	"reflect"
)

// DefaultTolerance is the structural tolerance for symmetry and diagonal checks.
const DefaultTolerance = 1e-12

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// normalizeTol maps a negative tolerance to its absolute value and rejects NaN/Inf.
func normalizeTol(tag string, tol float64) (float64, error) {
	if math.IsNaN(tol) || math.IsInf(tol, 0) {
		return 0, validatorErrorf(tag, ErrNaNInf)
	}
	if tol < 0 {
		tol = -tol
	}

	return tol, nil
}

// ValidateNotNil ensures the matrix reference is non-nil.
// Returns ErrNilMatrix if m is nil or holds a nil pointer.
func ValidateNotNil(m Matrix) error {
	if isNil(m) {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// isNil also catches a nil pointer stored in a non-nil interface, e.g. (*Dense)(nil).
func isNil(m Matrix) bool {
	if m == nil {
		return true
	}
	v := reflect.ValueOf(m)

	return v.Kind() == reflect.Ptr && v.IsNil()
}

// ValidateSquare checks that m is square (Rows == Cols) and non-empty.
// Assumes m is not nil.
func ValidateSquare(m Matrix) error {
	if m.Rows() != m.Cols() || m.Rows() <= 0 {
		return validatorErrorf("ValidateSquare", ErrNonSquare)
	}

	return nil
}

// ValidateFiniteNonNegative rejects NaN/±Inf anywhere and negative off-diagonal entries.
// Assumes m is square.
//
// Complexity: O(n²).
func ValidateFiniteNonNegative(m Matrix) error {
	var (
		n    = m.Rows()
		i, j int
		v    float64
		err  error
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if v, err = m.At(i, j); err != nil {
				return validatorErrorf("ValidateFiniteNonNegative", err)
			}
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return validatorErrorf("ValidateFiniteNonNegative", ErrNaNInf)
			}
			if i != j && v < 0 {
				return validatorErrorf("ValidateFiniteNonNegative", ErrNegativeDistance)
			}
		}
	}

	return nil
}

// ValidateZeroDiagonal checks |A[i,i]| ≤ tol for every i. Assumes m is square.
//
// Complexity: O(n).
func ValidateZeroDiagonal(m Matrix, tol float64) error {
	tol, err := normalizeTol("ValidateZeroDiagonal", tol)
	if err != nil {
		return err
	}
	var (
		n = m.Rows()
		i int
		v float64
	)
	for i = 0; i < n; i++ {
		if v, err = m.At(i, i); err != nil {
			return validatorErrorf("ValidateZeroDiagonal", err)
		}
		if math.Abs(v) > tol {
			return validatorErrorf("ValidateZeroDiagonal", ErrNonZeroDiagonal)
		}
	}

	return nil
}

// ValidateSymmetric checks A is symmetric within tolerance tol:
// |A[i,j] - A[j,i]| ≤ tol for all i<j.
//
// Returns ErrNilMatrix/ErrNonSquare on structural issues, ErrNaNInf on bad tol,
// ErrAsymmetry on violation.
//
// Complexity: O(n^2) where n = Rows(A). Space: O(1).
func ValidateSymmetric(m Matrix, tol float64) error {
	if isNil(m) {
		return validatorErrorf("ValidateSymmetric", ErrNilMatrix)
	}
	if m.Rows() != m.Cols() {
		return validatorErrorf("ValidateSymmetric", ErrNonSquare)
	}
	tol, err := normalizeTol("ValidateSymmetric", tol)
	if err != nil {
		return err
	}

	n := m.Rows()
	if n <= 1 {
		return nil // nothing to compare
	}

	// Deterministic i→j order over the strict upper triangle.
	var (
		i, j int
		aij  float64
		aji  float64
	)
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			if aij, err = m.At(i, j); err != nil {
				return validatorErrorf("ValidateSymmetric", err)
			}
			if aji, err = m.At(j, i); err != nil {
				return validatorErrorf("ValidateSymmetric", err)
			}
			if math.Abs(aij-aji) > tol {
				return validatorErrorf("ValidateSymmetric", ErrAsymmetry)
			}
		}
	}

	return nil
}

// ValidateDistance is the composite check for a symmetric distance matrix:
// NotNil → Square → FiniteNonNegative → ZeroDiagonal → Symmetric.
// It returns the matrix order n on success.
//
// Complexity: O(n²).
func ValidateDistance(m Matrix, tol float64) (int, error) {
	if err := ValidateNotNil(m); err != nil {
		return 0, validatorErrorf("ValidateDistance", err)
	}
	if err := ValidateSquare(m); err != nil {
		return 0, validatorErrorf("ValidateDistance", err)
	}
	if err := ValidateFiniteNonNegative(m); err != nil {
		return 0, validatorErrorf("ValidateDistance", err)
	}
	if err := ValidateZeroDiagonal(m, tol); err != nil {
		return 0, validatorErrorf("ValidateDistance", err)
	}
	if err := ValidateSymmetric(m, tol); err != nil {
		return 0, validatorErrorf("ValidateDistance", err)
	}

	return m.Rows(), nil
}
