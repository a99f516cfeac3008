// Package lvlathanneal orders a set of locations into a short open path
// with single-chain simulated annealing.
//
// 🚀 What is inside?
//
//	A small, deterministic toolkit:
//		• Distance matrices: dense storage, Euclidean and great-circle builders, validators
//		• Annealer: swap moves, Metropolis acceptance, linear cooling, best-ever tracking
//		• Instances: YAML/JSON problem files with struct-tag validation
//		• Server: HTTP API with Prometheus metrics
//		• CLI: one-shot runs with CSV traces and a progress bar
//
// ✨ Guarantees
//
//   - Location 0 is always the start of the path.
//   - The reported tour is the best ever seen, never the last state.
//   - Same seed and inputs ⇒ identical decisions.
//   - Library packages never log and never panic on user input.
//
// Layout:
//
//	matrix/   - Dense matrix, distance builders & validators
//	anneal/   - cost, neighbour move, acceptance rule, controller, RNG helpers
//	instance/ - problem files, validation, built-in demo
//	server/   - chi router, JSON rendering, metrics
//	cmd/lvlath-anneal/ - command-line entry point
//
// Quick example:
//
//	dist, _ := matrix.NewEuclidean(points)
//	res, err := anneal.Run(dist, anneal.DefaultOptions())
//	fmt.Println(anneal.DebugString(res.Best), res.BestCost)
//
//	go install github.com/katalvlaran/lvlath-anneal/cmd/lvlath-anneal@latest
package lvlathanneal
