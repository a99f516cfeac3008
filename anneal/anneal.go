// Package anneal - annealing controller.
//
// The controller runs a single Markov chain through three states:
//
//	Initializing: current = identity, best = copy(current), T = T0.
//	Iterating   : N times: candidate = Perturb(current); score it; apply the
//	              Metropolis rule at the current T; on accept adopt the
//	              candidate and record it as best on strict improvement;
//	              then T drops by tau regardless of the decision.
//	Finalizing  : return the best-ever record, not the final current state.
//
// Ownership:
//   - The controller exclusively owns current and best for the run.
//   - Perturb returns a fresh copy that is either adopted or discarded.
//   - Best is always a copy, so later moves cannot corrupt it.
//
// Randomness: one stream, consumed as Intn, Intn, Float64 per iteration.
package anneal

import (
	"fmt"

	"github.com/katalvlaran/lvlath-anneal/matrix"
)

// Annealer holds a validated distance matrix and options. It keeps no
// per-run state, so one Annealer may serve sequential runs; concurrent runs
// need one random stream each.
type Annealer struct {
	dist matrix.Matrix
	n    int
	opts Options
}

// NewAnnealer validates dist and opts and returns a ready Annealer.
// All configuration errors surface here, before any iteration.
func NewAnnealer(dist matrix.Matrix, opts Options) (*Annealer, error) {
	n, err := validateAll(dist, opts)
	if err != nil {
		return nil, err
	}
	return &Annealer{dist: dist, n: n, opts: opts}, nil
}

// Size returns the number of locations n.
func (a *Annealer) Size() int { return a.n }

// Options returns the options the Annealer was built with.
func (a *Annealer) Options() Options { return a.opts }

// Run validates inputs and performs one run seeded from opts.Seed.
func Run(dist matrix.Matrix, opts Options) (Result, error) {
	a, err := NewAnnealer(dist, opts)
	if err != nil {
		return Result{}, err
	}
	return a.Run(NewRand(opts.Seed))
}

// Run performs one run drawing from rng. Identical rng state and inputs yield
// identical decisions and results.
//
// Errors (invariant faults, the run aborts):
//   - ErrNilRand when rng is nil.
//   - ErrNonPositiveTemperature if the temperature is not positive when consulted.
//   - ErrInvalidPermutation / ErrIndexOutOfRange if VerifyPermutations detects corruption.
func (a *Annealer) Run(rng Rand) (Result, error) {
	if rng == nil {
		return Result{}, ErrNilRand
	}

	// Initializing.
	var (
		current     = Identity(a.n)
		initial     = CopyTour(current)
		best        = CopyTour(current)
		t0          = a.opts.InitialTemperature
		temperature = t0
		tau         = a.opts.CoolingStep
		verify      = a.opts.VerifyPermutations
		observe     = a.opts.Observer
	)
	currentCost, err := PathCost(a.dist, current)
	if err != nil {
		return Result{}, err
	}
	var (
		initialCost = currentCost
		bestCost    = currentCost
		accepted    int
		improved    int
	)

	// Iterating.
	var (
		i             int
		candidate     []int
		candidateCost float64
		ok            bool
		factor        float64
	)
	for i = 0; i < a.opts.Iterations; i++ {
		temperature = temperatureAt(t0, tau, i)
		candidate = Perturb(current, rng)
		if verify {
			if err = ValidatePermutation(candidate, a.n); err != nil {
				return Result{}, fmt.Errorf("iteration %d: candidate: %w", i, err)
			}
		}
		if candidateCost, err = PathCost(a.dist, candidate); err != nil {
			return Result{}, fmt.Errorf("iteration %d: %w", i, err)
		}
		if ok, factor, err = Accept(currentCost, candidateCost, temperature, rng); err != nil {
			return Result{}, fmt.Errorf("iteration %d: T=%g: %w", i, temperature, err)
		}
		if ok {
			current, currentCost = candidate, candidateCost
			accepted++
			if currentCost < bestCost {
				best, bestCost = CopyTour(current), currentCost
				improved++
			}
		}
		if verify {
			if err = ValidatePermutation(current, a.n); err != nil {
				return Result{}, fmt.Errorf("iteration %d: current: %w", i, err)
			}
		}
		if observe != nil {
			observe(Step{
				Iteration:     i,
				Temperature:   temperature,
				CurrentCost:   currentCost,
				CandidateCost: candidateCost,
				BestCost:      bestCost,
				Factor:        factor,
				Accepted:      ok,
			})
		}
	}
	temperature = temperatureAt(t0, tau, i)

	// Finalizing.
	return Result{
		Best:             best,
		BestCost:         bestCost,
		Initial:          initial,
		InitialCost:      initialCost,
		FinalTemperature: temperature,
		Iterations:       i,
		Accepted:         accepted,
		Improved:         improved,
	}, nil
}
