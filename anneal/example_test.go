// Package anneal_test provides runnable, deterministic examples.
package anneal_test

import (
	"fmt"

	"github.com/katalvlaran/lvlath-anneal/anneal"
	"github.com/katalvlaran/lvlath-anneal/matrix"
)

// ExampleRun anneals the unit square. The identity ordering is already an
// optimal open path (cost 3), so the best record stays on it.
func ExampleRun() {
	dist, err := matrix.NewEuclidean([]matrix.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	res, err := anneal.Run(dist, anneal.Options{Iterations: 2000, InitialTemperature: 10, CoolingStep: 0.005})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("initial:", anneal.DebugString(res.Initial), res.InitialCost)
	fmt.Println("best:   ", anneal.DebugString(res.Best), res.BestCost)

	// Output:
	// initial: 0 → 1 → 2 → 3 3
	// best:    0 → 1 → 2 → 3 3
}

// ExampleValidateOptions shows the schedule check rejecting a run that would
// consult a non-positive temperature.
func ExampleValidateOptions() {
	opts := anneal.Options{Iterations: 5, InitialTemperature: 1, CoolingStep: 0.25}
	fmt.Println(anneal.ValidateOptions(opts))
	fmt.Println("max iterations:", anneal.MaxIterations(1, 0.25))

	// Output:
	// anneal: schedule reaches non-positive temperature: T0=1 tau=0.25 N=5 (max N=4)
	// max iterations: 4
}
