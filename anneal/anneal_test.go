package anneal_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvlath-anneal/anneal"
	"github.com/katalvlaran/lvlath-anneal/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRun_ZeroIterations: the boundary run returns the identity ordering.
func TestRun_ZeroIterations(t *testing.T) {
	m := euclid(t, demoPoints())
	opts := anneal.Options{Iterations: 0, InitialTemperature: 30, CoolingStep: 0.02}

	res, err := anneal.Run(m, opts)
	require.NoError(t, err)

	idCost, err := anneal.PathCost(m, anneal.Identity(10))
	require.NoError(t, err)
	assert.Equal(t, anneal.Identity(10), res.Best)
	assert.Equal(t, idCost, res.BestCost)
	assert.Equal(t, res.Initial, res.Best)
	assert.Equal(t, idCost, res.InitialCost)
	assert.Equal(t, 30.0, res.FinalTemperature)
	assert.Zero(t, res.Iterations)
	assert.Zero(t, res.Accepted)
}

// TestRun_UnitSquare: identity already achieves the optimum 3.0, so the best
// record can never strictly improve and must stay at 0,1,2,3.
func TestRun_UnitSquare(t *testing.T) {
	m := euclid(t, unitSquare())
	opts := anneal.Options{Iterations: 2000, InitialTemperature: 10, CoolingStep: 0.005, Seed: seedDet}

	res, err := anneal.Run(m, opts)
	require.NoError(t, err)
	assert.Equal(t, 3.0, res.BestCost)
	assert.LessOrEqual(t, res.BestCost, res.InitialCost)
	assert.Equal(t, []int{0, 1, 2, 3}, res.Best)
	assert.Zero(t, res.Improved)
	assert.Equal(t, 2000, res.Iterations)
	assert.InDelta(t, 0.0, res.FinalTemperature, 1e-9)
}

// TestRun_Invariants observes every step: best never exceeds current, best is
// monotonically non-increasing, the temperature drops by tau each step, and
// permutation integrity holds after every swap.
func TestRun_Invariants(t *testing.T) {
	m := euclid(t, demoPoints())
	var steps []anneal.Step
	opts := anneal.Options{
		Iterations:         1000,
		InitialTemperature: 30,
		CoolingStep:        0.02,
		Seed:               seedDet,
		VerifyPermutations: true,
		Observer:           func(s anneal.Step) { steps = append(steps, s) },
	}

	res, err := anneal.Run(m, opts)
	require.NoError(t, err)
	require.Len(t, steps, 1000)
	require.NoError(t, anneal.ValidatePermutation(res.Best, 10))
	assert.Equal(t, 0, res.Best[0])

	prevBest, prevCurrent := res.InitialCost, res.InitialCost
	accepted := 0
	for i, s := range steps {
		require.Equal(t, i, s.Iteration)
		require.LessOrEqual(t, s.BestCost, s.CurrentCost, "step %d", i)
		require.LessOrEqual(t, s.BestCost, prevBest, "step %d", i)
		require.InDelta(t, 30-0.02*float64(i), s.Temperature, 1e-9)
		if s.CandidateCost <= prevCurrent {
			require.True(t, s.Accepted, "step %d: non-worsening move rejected", i)
		}
		if s.Accepted {
			require.Equal(t, s.CandidateCost, s.CurrentCost)
			accepted++
		} else {
			require.Equal(t, prevCurrent, s.CurrentCost)
		}
		prevBest, prevCurrent = s.BestCost, s.CurrentCost
	}
	assert.Equal(t, accepted, res.Accepted)
	assert.Equal(t, prevBest, res.BestCost)
	assert.LessOrEqual(t, res.BestCost, res.InitialCost)

	got, err := anneal.PathCost(m, res.Best)
	require.NoError(t, err)
	assert.Equal(t, res.BestCost, got, "reported cost matches the reported tour")
}

// TestRun_Deterministic: identical seed and inputs give identical decisions.
func TestRun_Deterministic(t *testing.T) {
	m := euclid(t, demoPoints())
	run := func() ([]anneal.Step, anneal.Result) {
		var steps []anneal.Step
		opts := anneal.DefaultOptions()
		opts.Seed = seedDet
		opts.Observer = func(s anneal.Step) { steps = append(steps, s) }
		res, err := anneal.Run(m, opts)
		require.NoError(t, err)
		return steps, res
	}

	s1, r1 := run()
	s2, r2 := run()
	assert.Equal(t, s1, s2)
	assert.Equal(t, r1, r2)
}

// TestAnnealer_ReusableWithExplicitStream checks that an Annealer keeps no
// per-run state: two runs from equal streams agree.
func TestAnnealer_ReusableWithExplicitStream(t *testing.T) {
	a, err := anneal.NewAnnealer(euclid(t, demoPoints()), anneal.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, 10, a.Size())
	assert.Equal(t, anneal.DefaultOptions().Iterations, a.Options().Iterations)

	r1, err := a.Run(rand.New(rand.NewSource(42)))
	require.NoError(t, err)
	r2, err := a.Run(rand.New(rand.NewSource(42)))
	require.NoError(t, err)
	assert.Equal(t, r1, r2)

	_, err = a.Run(nil)
	require.ErrorIs(t, err, anneal.ErrNilRand)
}

// TestRun_DrawAccounting: exactly two Intn draws and one Float64 draw per iteration.
func TestRun_DrawAccounting(t *testing.T) {
	a, err := anneal.NewAnnealer(euclid(t, demoPoints()), anneal.Options{
		Iterations: 250, InitialTemperature: 5, CoolingStep: 0.01,
	})
	require.NoError(t, err)

	rng := &countingRand{r: rand.New(rand.NewSource(3))}
	_, err = a.Run(rng)
	require.NoError(t, err)
	assert.Equal(t, 500, rng.ints)
	assert.Equal(t, 250, rng.floats)
}

// TestRun_ScriptedDecisions drives a 3-location instance through a fixed
// sequence of draws and checks each branch of the controller.
func TestRun_ScriptedDecisions(t *testing.T) {
	// Locations on a line at x = 0, 2, 1: identity 0,1,2 costs 3; 0,2,1 costs 2.
	m := euclid(t, []matrix.Point{{X: 0}, {X: 2}, {X: 1}})
	a, err := anneal.NewAnnealer(m, anneal.Options{Iterations: 4, InitialTemperature: 1, CoolingStep: 0.25})
	require.NoError(t, err)

	rng := &scriptedRand{
		t: t,
		ints: []int{
			0, 1, // it 0: swap positions 1,2 → 0,2,1 (cost 2), improvement
			0, 1, // it 1: back to 0,1,2 (cost 3) at T=.75, factor≈.264
			0, 0, // it 2: coinciding positions, equal cost
			1, 0, // it 3: 0,1,2 (cost 3) at T=.25, factor≈.018
		},
		floats: []float64{0.99, 0.9, 0.5, 0.01},
	}
	res, err := a.Run(rng)
	require.NoError(t, err)
	assert.Empty(t, rng.ints)
	assert.Empty(t, rng.floats)

	assert.Equal(t, []int{0, 2, 1}, res.Best, "best survives the later uphill move")
	assert.Equal(t, 2.0, res.BestCost)
	assert.Equal(t, 3.0, res.InitialCost)
	assert.Equal(t, 3, res.Accepted)
	assert.Equal(t, 1, res.Improved)
	assert.Equal(t, 0.0, res.FinalTemperature)
}

// TestRun_FindsLineOptimum: on a scrambled line the optimum is the left-to-right
// sweep of cost 7. At least one of several seeded runs must reach it.
func TestRun_FindsLineOptimum(t *testing.T) {
	m := euclid(t, scrambledLine())
	found := false
	for seed := int64(1); seed <= 5 && !found; seed++ {
		res, err := anneal.Run(m, anneal.Options{
			Iterations:         20000,
			InitialTemperature: 4,
			CoolingStep:        1.9e-4,
			Seed:               seed,
		})
		require.NoError(t, err)
		require.Equal(t, 28.0, res.InitialCost)
		require.GreaterOrEqual(t, res.BestCost, 7.0)
		require.Less(t, res.BestCost, res.InitialCost)
		found = res.BestCost == 7.0
	}
	assert.True(t, found, "no run reached the optimal sweep")
}
