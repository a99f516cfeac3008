package anneal

// Perturb returns a copy of config with the entries at two positions swapped.
// Both positions are drawn independently and uniformly from [1, n) with two
// rng.Intn calls, so position 0 never moves. The positions may coincide, in
// which case the copy equals the source. config itself is never modified.
//
// For n < 2 there is no movable position: Perturb returns a plain copy and
// consumes no randomness.
//
// Complexity: O(n) for the copy, O(1) for the move.
func Perturb(config []int, rng Rand) []int {
	out := CopyTour(config)
	n := len(out)
	if n < 2 {
		return out
	}
	i := 1 + rng.Intn(n-1)
	j := 1 + rng.Intn(n-1)
	out[i], out[j] = out[j], out[i]
	return out
}
