// Package anneal searches for a low-cost ordering of a fixed set of locations
// with single-chain simulated annealing.
//
// A configuration is a permutation of location indices starting at 0; its
// cost is the open-path sum of distances between consecutive entries (no
// closing edge). Each iteration swaps two non-fixed positions of the current
// configuration, scores the candidate and accepts it under the Metropolis
// criterion exp((cur−cand)/T). The temperature drops by a fixed step after
// every iteration and the best configuration ever accepted is returned.
//
// Entry points:
//
//   - Run(dist, opts): validate, seed from opts.Seed, run once.
//   - NewAnnealer(dist, opts) + (*Annealer).Run(rng): reuse a validated
//     instance with an explicitly supplied random stream.
//   - PathCost, Perturb, Accept: the individual building blocks.
//
// All configuration errors (n < 2, N < 0, T0 <= 0, tau <= 0, a schedule that
// would consult a non-positive temperature, malformed matrix) are reported
// before the first iteration. The package does not log and does not panic on
// user input.
package anneal
