// SPDX-License-Identifier: MIT

// Package matrix - distance builders.
//
// Purpose:
//   - Build symmetric, zero-diagonal distance matrices from coordinates.
//   - Compute each unordered pair once and mirror it, so symmetry is exact
//     (no FP drift between a_ij and a_ji).
//
// Complexity quicksheet:
//   - NewEuclidean, NewGeodesic: O(n²) time, O(n²) space.

package matrix

import (
	"fmt"
	"math"

	"github.com/golang/geo/s2"
)

// EarthRadiusMeters is the mean Earth radius used to convert great-circle
// angles into metres.
const EarthRadiusMeters = 6371008.8

// ctx tags for builder errors.
const (
	ctxEuclid   = "NewEuclidean"
	ctxGeodesic = "NewGeodesic"
)

// pairFunc returns the distance between points i and j (i<j).
type pairFunc func(i, j int) float64

// buildSymmetric allocates an n×n Dense and fills the upper triangle via f,
// mirroring each value into the lower triangle. The diagonal stays zero.
func buildSymmetric(n int, f pairFunc) (*Dense, error) {
	m, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	var (
		i, j int
		d    float64
	)
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			d = f(i, j)
			if err = m.Set(i, j, d); err != nil {
				return nil, err
			}
			if err = m.Set(j, i, d); err != nil {
				return nil, err
			}
		}
	}

	return m, nil
}

// NewEuclidean builds the n×n matrix of straight-line distances between points.
//
// Errors:
//   - ErrInvalidDimensions when fewer than two points are supplied.
//   - ErrNaNInf when a coordinate is not finite.
func NewEuclidean(points []Point) (*Dense, error) {
	if len(points) < 2 {
		return nil, fmt.Errorf("%s: %w", ctxEuclid, ErrInvalidDimensions)
	}
	var i int
	for i = range points {
		if !finite(points[i].X) || !finite(points[i].Y) {
			return nil, fmt.Errorf("%s: point %d: %w", ctxEuclid, i, ErrNaNInf)
		}
	}

	return buildSymmetric(len(points), func(i, j int) float64 {
		return math.Hypot(points[i].X-points[j].X, points[i].Y-points[j].Y)
	})
}

// NewGeodesic builds the n×n matrix of great-circle distances in metres
// between geographic coordinates.
//
// Errors:
//   - ErrInvalidDimensions when fewer than two points are supplied.
//   - ErrNaNInf when a coordinate is not finite.
//   - ErrOutOfRange when latitude ∉ [-90,90] or longitude ∉ [-180,180].
func NewGeodesic(points []LatLng) (*Dense, error) {
	if len(points) < 2 {
		return nil, fmt.Errorf("%s: %w", ctxGeodesic, ErrInvalidDimensions)
	}
	lls := make([]s2.LatLng, len(points))

	var i int
	for i = range points {
		if !finite(points[i].Lat) || !finite(points[i].Lng) {
			return nil, fmt.Errorf("%s: point %d: %w", ctxGeodesic, i, ErrNaNInf)
		}
		lls[i] = s2.LatLngFromDegrees(points[i].Lat, points[i].Lng)
		if !lls[i].IsValid() {
			return nil, fmt.Errorf("%s: point %d: %w", ctxGeodesic, i, ErrOutOfRange)
		}
	}

	return buildSymmetric(len(points), func(i, j int) float64 {
		return lls[i].Distance(lls[j]).Radians() * EarthRadiusMeters
	})
}

func finite(x float64) bool { return !math.IsNaN(x) && !math.IsInf(x, 0) }
