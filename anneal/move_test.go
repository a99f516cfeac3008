package anneal_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvlath-anneal/anneal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPerturb_SwapsDrawnPositions(t *testing.T) {
	src := []int{0, 1, 2, 3, 4}
	rng := &scriptedRand{t: t, ints: []int{0, 3}} // positions 1 and 4

	got := anneal.Perturb(src, rng)
	assert.Equal(t, []int{0, 4, 2, 3, 1}, got)
	assert.Equal(t, []int{0, 1, 2, 3, 4}, src, "source must stay untouched")
}

func TestPerturb_CoincidingPositions(t *testing.T) {
	src := []int{0, 2, 1}
	rng := &scriptedRand{t: t, ints: []int{1, 1}}

	got := anneal.Perturb(src, rng)
	assert.Equal(t, src, got)
	got[1] = 7
	assert.Equal(t, 2, src[1], "result must be a copy even when unchanged")
}

func TestPerturb_SmallInputs(t *testing.T) {
	rng := &scriptedRand{t: t} // any draw would fail the test
	assert.Equal(t, []int{0}, anneal.Perturb([]int{0}, rng))
	assert.Empty(t, anneal.Perturb(nil, rng))
}

// TestPerturb_KeepsStartAndPermutation runs many random moves.
func TestPerturb_KeepsStartAndPermutation(t *testing.T) {
	rng := anneal.NewRand(seedDet)
	cfg := anneal.Identity(9)
	for i := 0; i < 2000; i++ {
		cfg = anneal.Perturb(cfg, rng)
		require.Equal(t, 0, cfg[0])
		require.NoError(t, anneal.ValidatePermutation(cfg, 9))
	}
}

func TestAccept_ImprovementAlwaysAccepted(t *testing.T) {
	// factor = e^0.4 > 1; even the largest draw below 1 is accepted.
	rng := &scriptedRand{t: t, floats: []float64{0, 0.5, math.Nextafter(1, 0)}}
	for i := 0; i < 3; i++ {
		ok, factor, err := anneal.Accept(10, 8, 5, rng)
		require.NoError(t, err)
		assert.True(t, ok)
		assert.InDelta(t, math.Exp(0.4), factor, 1e-12)
	}
}

func TestAccept_EqualCostAccepted(t *testing.T) {
	rng := &scriptedRand{t: t, floats: []float64{math.Nextafter(1, 0)}}
	ok, factor, err := anneal.Accept(4, 4, 0.5, rng)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 1.0, factor)
}

func TestAccept_ColdRegressionRejected(t *testing.T) {
	// factor = e^-2000 underflows to 0; no draw in [0,1) is below it.
	rng := &scriptedRand{t: t, floats: []float64{0, 1e-300}}
	for i := 0; i < 2; i++ {
		ok, factor, err := anneal.Accept(8, 10, 0.001, rng)
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Zero(t, factor)
	}
}

func TestAccept_RegressionProbability(t *testing.T) {
	// factor = e^-1 ≈ 0.3679: draws on either side decide.
	rng := &scriptedRand{t: t, floats: []float64{0.36, 0.37}}
	ok, _, err := anneal.Accept(1, 2, 1, rng)
	require.NoError(t, err)
	assert.True(t, ok)
	ok, _, err = anneal.Accept(1, 2, 1, rng)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestAccept_NonPositiveTemperature(t *testing.T) {
	rng := &scriptedRand{t: t} // must not be consulted
	for _, temp := range []float64{0, -1, math.NaN()} {
		_, _, err := anneal.Accept(10, 8, temp, rng)
		require.ErrorIs(t, err, anneal.ErrNonPositiveTemperature)
	}
}
