package gmdh

import (
	"fmt"

	grob "github.com/MetalBlueberry/go-plotly/graph_objects"
	"gonum.org/v1/gonum/stat"
)

// LayerSummary is one row of a fit's convergence history: the mean, best
// and worst score over every combination the model holds for that layer.
// The mean is taken over all of the layer's combinations, not only the
// top p_average the driver averaged for its stopping-rule check.
type LayerSummary struct {
	Layer     int
	MeanScore float64
	Best      float64
	Worst     float64
}

// ConvergenceHistory reduces a Model's retained layers to one LayerSummary
// per layer, letting a caller see whether (and where) the search leveled
// off. It only reads m.Layers (the pruned layers, the same data Save
// persists), so a COMBI or MULTI model yields a single entry.
func ConvergenceHistory(m *Model) []LayerSummary {
	out := make([]LayerSummary, len(m.Layers))
	for i, l := range m.Layers {
		scores := make([]float64, len(l.Combinations))
		for j, c := range l.Combinations {
			scores[j] = c.Score
		}
		mean := stat.Mean(scores, nil)
		best, worst := scores[0], scores[0]
		for _, s := range scores {
			if s < best {
				best = s
			}
			if s > worst {
				worst = s
			}
		}
		out[i] = LayerSummary{Layer: i + 1, MeanScore: mean, Best: best, Worst: worst}
	}
	return out
}

// ResidualStats summarizes actual-vs-predicted error with the usual
// regression diagnostics: mean error (bias), standard deviation of error,
// and R^2 against the actual values' own variance.
type ResidualStats struct {
	MeanError float64
	StdError  float64
	R2        float64
}

// Residuals computes ResidualStats for a set of predictions against the
// actuals they're scored against.
func Residuals(actual, predicted []float64) (ResidualStats, error) {
	if len(actual) != len(predicted) {
		return ResidualStats{}, wrap(ErrInvalidArgument, "Residuals: actual and predicted must be the same length")
	}
	if len(actual) == 0 {
		return ResidualStats{}, wrap(ErrInvalidArgument, "Residuals: actual must not be empty")
	}

	errs := make([]float64, len(actual))
	for i := range actual {
		errs[i] = actual[i] - predicted[i]
	}
	mean, std := stat.MeanStdDev(errs, nil)

	ssRes := 0.0
	for _, e := range errs {
		ssRes += e * e
	}
	meanActual := stat.Mean(actual, nil)
	ssTot := 0.0
	for _, a := range actual {
		d := a - meanActual
		ssTot += d * d
	}
	r2 := 1.0
	if ssTot != 0 {
		r2 = 1 - ssRes/ssTot
	}

	return ResidualStats{MeanError: mean, StdError: std, R2: r2}, nil
}

// PlotConvergence renders a fit's per-layer mean score as a Plotly scatter
// and writes/shows it per pd (FileName and/or Show). The x/y axis titles
// are fixed here rather than left to pd, since a convergence plot always
// means "layer index" against "mean layer score" for this model.
func PlotConvergence(m *Model, pd *PlotDef) error {
	history := ConvergenceHistory(m)
	if len(history) == 0 {
		return wrap(ErrDriver, "PlotConvergence: model has no layers")
	}

	xs := make([]float64, len(history))
	ys := make([]float64, len(history))
	for i, h := range history {
		xs[i] = float64(h.Layer)
		ys[i] = h.MeanScore
	}

	tr := &grob.Scatter{
		Type: grob.TraceTypeScatter,
		X:    xs,
		Y:    ys,
		Mode: grob.ScatterModeLines | grob.ScatterModeMarkers,
		Name: fmt.Sprintf("%s convergence", m.Family),
		Line: &grob.ScatterLine{Color: "black"},
	}
	fig := &grob.Fig{Data: grob.Traces{tr}}

	lay := &grob.Layout{
		Xaxis: &grob.LayoutXaxis{Title: &grob.LayoutXaxisTitle{Text: "Layer"}},
		Yaxis: &grob.LayoutYaxis{Title: &grob.LayoutYaxisTitle{Text: "Mean layer score"}},
	}

	return Plotter(fig, lay, pd)
}
