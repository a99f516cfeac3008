package server

import (
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/render"
	"github.com/katalvlaran/lvlath-anneal/anneal"
	"github.com/katalvlaran/lvlath-anneal/instance"
	"github.com/twpayne/go-polyline"
)

// AnnealRequest is an instance document sent as JSON.
type AnnealRequest struct {
	instance.Instance
}

// Bind runs after decoding and applies the instance validation rules.
func (a *AnnealRequest) Bind(r *http.Request) error {
	return a.Validate()
}

// AnnealResponse is the outcome of one run.
type AnnealResponse struct {
	Name             string  `json:"name,omitempty"`
	Tour             []int   `json:"tour"`
	Cost             float64 `json:"cost"`
	InitialTour      []int   `json:"initial_tour"`
	InitialCost      float64 `json:"initial_cost"`
	FinalTemperature float64 `json:"final_temperature"`
	Iterations       int     `json:"iterations"`
	Accepted         int     `json:"accepted"`
	Improved         int     `json:"improved"`

	// Polyline is the encoded route through the tour, only for latlng instances.
	Polyline string `json:"polyline,omitempty"`
}

func newAnnealResponse(in *instance.Instance, res anneal.Result) *AnnealResponse {
	resp := &AnnealResponse{
		Name:             in.Name,
		Tour:             res.Best,
		Cost:             res.BestCost,
		InitialTour:      res.Initial,
		InitialCost:      res.InitialCost,
		FinalTemperature: res.FinalTemperature,
		Iterations:       res.Iterations,
		Accepted:         res.Accepted,
		Improved:         res.Improved,
	}
	if lls := in.Coordinates(); lls != nil {
		coords := make([][]float64, 0, len(res.Best))
		for _, idx := range res.Best {
			coords = append(coords, []float64{lls[idx].Lat, lls[idx].Lng})
		}
		resp.Polyline = string(polyline.EncodeCoords(coords))
	}
	return resp
}

func (s *Server) annealTour(w http.ResponseWriter, r *http.Request) {
	data := &AnnealRequest{}
	if err := render.Bind(r, data); err != nil {
		s.metrics.observeFailure("invalid")
		if instance.IsValidationError(err) {
			render.Render(w, r, ErrValidation(err, instance.Translate(err)))
			return
		}
		render.Render(w, r, ErrInvalidRequest(err))
		return
	}
	s.run(w, r, &data.Instance)
}

func (s *Server) annealDemo(w http.ResponseWriter, r *http.Request) {
	s.run(w, r, instance.Demo())
}

func (s *Server) run(w http.ResponseWriter, r *http.Request, in *instance.Instance) {
	opts := in.Options()
	if err := s.checkLimits(in.Len(), opts.Iterations); err != nil {
		s.metrics.observeFailure("rejected")
		render.Render(w, r, ErrConfiguration(err))
		return
	}

	dist, err := in.Matrix()
	if err != nil {
		s.metrics.observeFailure("rejected")
		render.Render(w, r, ErrConfiguration(err))
		return
	}
	a, err := anneal.NewAnnealer(dist, opts)
	if err != nil {
		s.metrics.observeFailure("rejected")
		render.Render(w, r, ErrConfiguration(err))
		return
	}

	start := time.Now()
	res, err := a.Run(s.streamFor(opts.Seed))
	if err != nil {
		s.metrics.observeFailure("failed")
		render.Render(w, r, ErrInternal(err))
		return
	}
	s.metrics.observeRun(a.Size(), res.InitialCost, res.BestCost, time.Since(start))

	render.Status(r, http.StatusOK)
	render.JSON(w, r, newAnnealResponse(in, res))
}

// streamFor returns the random stream for one request: the request's own
// seed when set, otherwise a fresh stream derived from the server seed.
func (s *Server) streamFor(seed int64) anneal.Rand {
	if seed != 0 {
		return anneal.NewRand(seed)
	}
	return anneal.DeriveRand(s.cfg.Seed, s.streams.Add(1))
}

func (s *Server) checkLimits(n, iterations int) error {
	if s.cfg.MaxLocations > 0 && n > s.cfg.MaxLocations {
		return fmt.Errorf("server: %d locations exceeds limit %d", n, s.cfg.MaxLocations)
	}
	if s.cfg.MaxIterations > 0 && iterations > s.cfg.MaxIterations {
		return fmt.Errorf("server: %d iterations exceeds limit %d", iterations, s.cfg.MaxIterations)
	}
	return nil
}
