package anneal

import "math"

// StepsUntil returns how many linear cooling steps of size tau it takes for
// the temperature to fall from t0 to minTemp or below. It returns 0 when
// t0 <= minTemp and -1 for a non-positive or non-finite tau.
func StepsUntil(t0, tau, minTemp float64) int {
	if !(tau > 0) || math.IsInf(tau, 0) {
		return -1
	}
	if t0 <= minTemp {
		return 0
	}
	return int(math.Ceil((t0 - minTemp) / tau))
}

// MaxIterations returns the largest iteration budget N for which every
// temperature consulted by the acceptance rule, t0 − k·tau for k = 0..N−1,
// is strictly positive. It returns 0 for invalid inputs.
func MaxIterations(t0, tau float64) int {
	if !(t0 > 0) || !(tau > 0) || math.IsInf(t0, 0) || math.IsInf(tau, 0) {
		return 0
	}
	n := StepsUntil(t0, tau, 0)
	// ceil of a noisy quotient can be off by one either way.
	for n > 0 && !(lastTemperature(t0, tau, n) > 0) {
		n--
	}
	for lastTemperature(t0, tau, n+1) > 0 {
		n++
	}
	return n
}

// temperatureAt is the temperature after k cooling steps. The controller and
// the up-front schedule check both go through it, so they agree bit for bit.
func temperatureAt(t0, tau float64, k int) float64 {
	return t0 - float64(k)*tau
}

// lastTemperature is the temperature consulted on the final iteration of an
// N-iteration run, t0 − (N−1)·tau. For N <= 1 it is t0.
func lastTemperature(t0, tau float64, n int) float64 {
	if n <= 1 {
		return t0
	}
	return temperatureAt(t0, tau, n-1)
}
