package anneal

import "math"

// MetropolisFactor returns exp((currentCost − candidateCost) / temperature).
// The factor is ≥ 1 whenever the candidate is no worse and lies in (0,1)
// for a worse candidate. It may overflow to +Inf for large improvements at
// low temperature and underflow to 0 for large regressions; both compare
// correctly against a uniform draw in [0,1).
func MetropolisFactor(currentCost, candidateCost, temperature float64) float64 {
	return math.Exp((currentCost - candidateCost) / temperature)
}

// Accept applies the Metropolis criterion. It draws exactly one value
// u = rng.Float64() and accepts iff u < MetropolisFactor(...). A candidate
// with candidateCost <= currentCost is therefore always accepted.
//
// Errors:
//   - ErrNonPositiveTemperature when temperature <= 0 or NaN; no draw is consumed.
func Accept(currentCost, candidateCost, temperature float64, rng Rand) (bool, float64, error) {
	if !(temperature > 0) {
		return false, 0, ErrNonPositiveTemperature
	}
	factor := MetropolisFactor(currentCost, candidateCost, temperature)
	return rng.Float64() < factor, factor, nil
}
