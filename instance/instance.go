// Package instance loads annealing problem instances.
//
// An instance names its locations in exactly one of three ways (planar
// points, latitude/longitude pairs, or a precomputed distance table) and may
// override the annealing schedule. Files are YAML; JSON documents are valid
// YAML and load the same way.
//
//	name: demo10
//	points: [[-2.0, -1.4], [-3.0, 1.2], ...]
//	iterations: 1000
//	initial_temperature: 30
//	cooling_step: 0.02
//	seed: 7
package instance

import (
	"errors"
	"fmt"
	"os"

	"github.com/katalvlaran/lvlath-anneal/anneal"
	"github.com/katalvlaran/lvlath-anneal/matrix"
	"gopkg.in/yaml.v3"
)

var (
	// ErrNoLocations is returned when none of points, latlng or distances is set.
	ErrNoLocations = errors.New("instance: one of points, latlng or distances is required")

	// ErrAmbiguousLocations is returned when more than one location source is set.
	ErrAmbiguousLocations = errors.New("instance: points, latlng and distances are mutually exclusive")

	// ErrSizeMismatch is returned when size is set and differs from the number of locations.
	ErrSizeMismatch = errors.New("instance: size does not match number of locations")
)

// Kind tells which location source an instance uses.
type Kind int

const (
	KindNone Kind = iota
	KindPoints
	KindLatLng
	KindDistances
)

func (k Kind) String() string {
	switch k {
	case KindPoints:
		return "points"
	case KindLatLng:
		return "latlng"
	case KindDistances:
		return "distances"
	default:
		return "none"
	}
}

// Instance is the on-disk / on-the-wire description of a problem.
type Instance struct {
	Name      string      `json:"name,omitempty" yaml:"name" validate:"omitempty,max=128"`
	Size      int         `json:"size,omitempty" yaml:"size" validate:"omitempty,min=2"`
	Points    [][]float64 `json:"points,omitempty" yaml:"points" validate:"omitempty,min=2,dive,len=2"`
	LatLng    [][]float64 `json:"latlng,omitempty" yaml:"latlng" validate:"omitempty,min=2,dive,len=2"`
	Distances [][]float64 `json:"distances,omitempty" yaml:"distances" validate:"omitempty,min=2,dive,min=2"`

	// Schedule overrides; zero values fall back to anneal.DefaultOptions.
	// Iterations is a pointer so that an explicit 0 is kept.
	Iterations         *int    `json:"iterations,omitempty" yaml:"iterations" validate:"omitempty,gte=0"`
	InitialTemperature float64 `json:"initial_temperature,omitempty" yaml:"initial_temperature" validate:"omitempty,gt=0"`
	CoolingStep        float64 `json:"cooling_step,omitempty" yaml:"cooling_step" validate:"omitempty,gt=0"`
	Seed               int64   `json:"seed,omitempty" yaml:"seed"`
}

// Load reads and validates an instance file.
func Load(path string) (*Instance, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("instance: read %s: %w", path, err)
	}
	inst, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return inst, nil
}

// Parse decodes a YAML (or JSON) document and validates it.
func Parse(data []byte) (*Instance, error) {
	var inst Instance
	if err := yaml.Unmarshal(data, &inst); err != nil {
		return nil, fmt.Errorf("instance: decode: %w", err)
	}
	if err := inst.Validate(); err != nil {
		return nil, err
	}
	return &inst, nil
}

// Kind reports which location source is set; KindNone when none or several are.
func (in *Instance) Kind() Kind {
	var (
		k     = KindNone
		count int
	)
	if len(in.Points) > 0 {
		k, count = KindPoints, count+1
	}
	if len(in.LatLng) > 0 {
		k, count = KindLatLng, count+1
	}
	if len(in.Distances) > 0 {
		k, count = KindDistances, count+1
	}
	if count != 1 {
		return KindNone
	}
	return k
}

// Len returns the number of locations described by the instance.
func (in *Instance) Len() int {
	switch in.Kind() {
	case KindPoints:
		return len(in.Points)
	case KindLatLng:
		return len(in.LatLng)
	case KindDistances:
		return len(in.Distances)
	default:
		return 0
	}
}

// Validate runs the struct-tag rules, then the cross-field rules.
func (in *Instance) Validate() error {
	if err := validate.Struct(in); err != nil {
		return err
	}
	sources := 0
	for _, l := range []int{len(in.Points), len(in.LatLng), len(in.Distances)} {
		if l > 0 {
			sources++
		}
	}
	switch {
	case sources == 0:
		return ErrNoLocations
	case sources > 1:
		return ErrAmbiguousLocations
	}
	if in.Size != 0 && in.Size != in.Len() {
		return fmt.Errorf("%w: size=%d locations=%d", ErrSizeMismatch, in.Size, in.Len())
	}
	return nil
}

// Matrix builds the distance provider for the instance.
func (in *Instance) Matrix() (matrix.Matrix, error) {
	switch in.Kind() {
	case KindPoints:
		pts := make([]matrix.Point, len(in.Points))
		for i, p := range in.Points {
			pts[i] = matrix.Point{X: p[0], Y: p[1]}
		}
		return matrix.NewEuclidean(pts)
	case KindLatLng:
		return matrix.NewGeodesic(in.Coordinates())
	case KindDistances:
		return matrix.NewDenseFromRows(in.Distances)
	default:
		return nil, ErrNoLocations
	}
}

// Coordinates returns the latitude/longitude pairs of a latlng instance, nil otherwise.
func (in *Instance) Coordinates() []matrix.LatLng {
	if in.Kind() != KindLatLng {
		return nil
	}
	out := make([]matrix.LatLng, len(in.LatLng))
	for i, p := range in.LatLng {
		out[i] = matrix.LatLng{Lat: p[0], Lng: p[1]}
	}
	return out
}

// Options merges the instance's schedule overrides over anneal.DefaultOptions.
func (in *Instance) Options() anneal.Options {
	opts := anneal.DefaultOptions()
	if in.Iterations != nil {
		opts.Iterations = *in.Iterations
	}
	if in.InitialTemperature != 0 {
		opts.InitialTemperature = in.InitialTemperature
	}
	if in.CoolingStep != 0 {
		opts.CoolingStep = in.CoolingStep
	}
	opts.Seed = in.Seed
	return opts
}

// Demo returns the built-in ten-location instance,
// annealed with N=1000, T0=30, tau=0.02.
func Demo() *Instance {
	xs := []float64{-2.0, -3.0, 0.0, 3.4, 1.8, -1.0, -1.6, 0.3, 1.5, 0.9}
	ys := []float64{-1.4, 1.2, 4.0, 0.8, -1.1, -0.3, 0.6, 1.3, 0.5, -0.3}
	pts := make([][]float64, len(xs))
	for i := range xs {
		pts[i] = []float64{xs[i], ys[i]}
	}
	iterations := anneal.DefaultIterations
	return &Instance{
		Name:               "demo10",
		Points:             pts,
		Iterations:         &iterations,
		InitialTemperature: anneal.DefaultInitialTemperature,
		CoolingStep:        anneal.DefaultCoolingStep,
	}
}
