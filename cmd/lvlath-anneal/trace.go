package main

import (
	"encoding/csv"
	"io"
	"strconv"
	"time"

	"github.com/k0kubun/go-ansi"
	"github.com/katalvlaran/lvlath-anneal/anneal"
	"github.com/schollz/progressbar/v3"
)

var traceHeader = []string{
	"iteration", "temperature", "current_cost", "candidate_cost", "best_cost", "factor", "accepted",
}

// traceWriter writes one CSV row per annealing step and owns the destination.
type traceWriter struct {
	w *csv.Writer
	c io.Closer
}

func newTraceWriter(wc io.WriteCloser) (*traceWriter, error) {
	tw := &traceWriter{w: csv.NewWriter(wc), c: wc}
	if err := tw.w.Write(traceHeader); err != nil {
		return nil, err
	}
	return tw, nil
}

// observe is an anneal.Observer. Write errors are sticky and surface in Close.
func (tw *traceWriter) observe(s anneal.Step) {
	_ = tw.w.Write([]string{
		strconv.Itoa(s.Iteration),
		formatFloat(s.Temperature),
		formatFloat(s.CurrentCost),
		formatFloat(s.CandidateCost),
		formatFloat(s.BestCost),
		formatFloat(s.Factor),
		strconv.FormatBool(s.Accepted),
	})
}

// Close flushes buffered rows and closes the destination. A failed close is
// reported even when every write succeeded.
func (tw *traceWriter) Close() error {
	tw.w.Flush()
	if err := tw.w.Error(); err != nil {
		_ = tw.c.Close()
		return err
	}
	return tw.c.Close()
}

func formatFloat(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }

func newProgressBar(iterations int) *progressbar.ProgressBar {
	return progressbar.NewOptions(iterations,
		progressbar.OptionSetWriter(ansi.NewAnsiStderr()),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetWidth(30),
		progressbar.OptionThrottle(65*time.Millisecond),
		progressbar.OptionShowCount(),
		progressbar.OptionSetDescription("[cyan]annealing[reset]"),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}))
}

// chain combines observers; nil entries are skipped.
func chain(obs ...func(anneal.Step)) func(anneal.Step) {
	var live []func(anneal.Step)
	for _, o := range obs {
		if o != nil {
			live = append(live, o)
		}
	}
	if len(live) == 0 {
		return nil
	}
	return func(s anneal.Step) {
		for _, o := range live {
			o(s)
		}
	}
}
