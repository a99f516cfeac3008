package anneal

import "errors"

// Sentinel errors. Configuration errors are reported before a run starts;
// ErrNonPositiveTemperature and ErrInvalidPermutation are invariant faults
// that abort a run in progress.
var (
	// ErrTooFewLocations is returned when the distance matrix has order n < 2.
	ErrTooFewLocations = errors.New("anneal: at least two locations required")

	// ErrInvalidIterations is returned for a negative iteration budget.
	ErrInvalidIterations = errors.New("anneal: iteration budget must be >= 0")

	// ErrInvalidTemperature is returned for a non-positive or non-finite initial temperature.
	ErrInvalidTemperature = errors.New("anneal: initial temperature must be > 0")

	// ErrInvalidCoolingStep is returned for a non-positive or non-finite cooling step.
	ErrInvalidCoolingStep = errors.New("anneal: cooling step must be > 0")

	// ErrScheduleUnderflow is returned when the last temperature consulted,
	// T0 − (N−1)·tau, is not positive.
	ErrScheduleUnderflow = errors.New("anneal: schedule reaches non-positive temperature")

	// ErrNonPositiveTemperature is returned when the acceptance rule is consulted
	// with temperature <= 0 (or NaN).
	ErrNonPositiveTemperature = errors.New("anneal: temperature must be > 0")

	// ErrInvalidPermutation is returned when a configuration is not a permutation of [0,n).
	ErrInvalidPermutation = errors.New("anneal: configuration is not a permutation")

	// ErrIndexOutOfRange is returned when a configuration references a location outside [0,n).
	ErrIndexOutOfRange = errors.New("anneal: location index out of range")

	// ErrNilRand is returned when a run is started without a random stream.
	ErrNilRand = errors.New("anneal: nil random stream")
)

// Reference schedule of the ten-location demo.
const (
	DefaultIterations         = 1000
	DefaultInitialTemperature = 30.0
	DefaultCoolingStep        = 0.02
)

// Rand is the single random stream consumed by a run: two Intn draws in the
// neighbour generator and one Float64 draw in the acceptance rule per
// iteration. *math/rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
	Float64() float64
}

// Step describes one completed iteration. It is passed to Options.Observer.
type Step struct {
	Iteration     int     // zero-based iteration number
	Temperature   float64 // temperature the acceptance rule was consulted with
	CurrentCost   float64 // current cost after the decision
	CandidateCost float64 // cost of the perturbed candidate
	BestCost      float64 // best cost after the decision
	Factor        float64 // Metropolis factor exp((cur−cand)/T)
	Accepted      bool    // whether the candidate replaced the current configuration
}

// Options configures a run.
type Options struct {
	// Iterations is the fixed budget N. Zero returns the identity ordering.
	Iterations int

	// InitialTemperature is T0 (> 0).
	InitialTemperature float64

	// CoolingStep is tau (> 0); iteration i runs at T0 − i·tau.
	// Must satisfy InitialTemperature − (Iterations−1)·CoolingStep > 0.
	CoolingStep float64

	// Seed feeds the default random stream; seed==0 ⇒ defaultRNGSeed.
	Seed int64

	// VerifyPermutations re-checks current and candidate after every swap.
	VerifyPermutations bool

	// Observer, if non-nil, is called synchronously after every iteration.
	Observer func(Step)
}

// DefaultOptions returns the reference schedule (N=1000, T0=30, tau=0.02, seed 0).
func DefaultOptions() Options {
	return Options{
		Iterations:         DefaultIterations,
		InitialTemperature: DefaultInitialTemperature,
		CoolingStep:        DefaultCoolingStep,
	}
}

// Result holds the outcome of a run.
type Result struct {
	// Best is the lowest-cost configuration seen; Best[0] == 0.
	Best []int

	// BestCost is the open-path cost of Best.
	BestCost float64

	// Initial is the identity ordering the run started from.
	Initial []int

	// InitialCost is the open-path cost of Initial.
	InitialCost float64

	// FinalTemperature is T0 − N·tau.
	FinalTemperature float64

	// Iterations is the number of completed iterations (== Options.Iterations).
	Iterations int

	// Accepted counts candidates that replaced the current configuration.
	Accepted int

	// Improved counts updates of the best-found record.
	Improved int
}
