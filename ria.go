package gmdh

import "gonum.org/v1/gonum/mat"

// riaFamily implements RIA: layer 1 pairs up the original variables
// exactly like MIA, but every later layer pairs one original variable
// with one of the outputs accumulated so far instead of pairing outputs
// with each other, and never drops the original variables from the
// working data. Grounded on src/ria.cpp / src/ria.h.
type riaFamily struct {
	polyType PolynomialType
}

func (riaFamily) canContinue(layerIdx, currentWidth, origCols int) bool {
	if layerIdx == 1 {
		return currentWidth >= 2
	}
	return currentWidth > origCols
}

func (riaFamily) generate(layerIdx, currentWidth, origCols int, prevTop []Combination) [][]int {
	if layerIdx == 1 {
		return combinationsOfSize(origCols, 2)
	}
	var out [][]int
	for v := 0; v < origCols; v++ {
		for w := origCols; w < currentWidth; w++ {
			out = append(out, []int{v, w})
		}
	}
	return out
}

func (f riaFamily) transform(raw *mat.Dense) *mat.Dense {
	return polynomialDesign(raw, f.polyType)
}

// advance appends the retained combinations' outputs as new columns after
// everything accumulated so far (original variables included), topped
// with a fresh bias column. Unlike MIA, nothing from the previous width
// is dropped.
func (f riaFamily) advance(data *SplitData, retained []Combination, layerIdx, origCols int) {
	data.XTrain = appendOutputColumns(data.XTrain, retained, f.polyType)
	data.XTest = appendOutputColumns(data.XTest, retained, f.polyType)
}

func appendOutputColumns(x *mat.Dense, retained []Combination, pt PolynomialType) *mat.Dense {
	r, oldWidth := x.Dims()
	oldWidth-- // drop the old bias column
	newWidth := oldWidth + len(retained) + 1
	out := mat.NewDense(r, newWidth, nil)
	for j := 0; j < oldWidth; j++ {
		for i := 0; i < r; i++ {
			out.Set(i, j, x.At(i, j))
		}
	}
	for k, c := range retained {
		raw := columns(x, c.Indices)
		design := polynomialDesign(raw, pt)
		col := matVec(design, c.Coeffs)
		for i := 0; i < r; i++ {
			out.Set(i, oldWidth+k, col[i])
		}
	}
	for i := 0; i < r; i++ {
		out.Set(i, newWidth-1, 1)
	}
	return out
}

// ria working/bias sentinels used once a chain has been pruned: every
// layer past the first collapses to "one original variable, the running
// working value, the bias", always at these fixed positions.
const (
	riaWorkingSentinelOffset = 0 // origCols + riaWorkingSentinelOffset
	riaBiasSentinelOffset    = 1 // origCols + riaBiasSentinelOffset
)

// prune walks back from the single best combination in the final layer,
// tracing each "combine with a prior output" reference to the layer and
// retained-combination that produced it, and rewrites every post-layer-1
// combination to the stable [variable, working, bias] index layout so
// Predict never needs the original per-layer widths. Grounded on
// src/ria.cpp's removeExtraCombinations.
func (riaFamily) prune(layers []Layer, origCols int) []Layer {
	n := len(layers)
	if n == 0 {
		return layers
	}

	widths := make([]int, n+1)
	widths[0] = origCols
	for p := 0; p < n; p++ {
		widths[p+1] = widths[p] + len(layers[p].Combinations)
	}

	final := layers[n-1].Combinations
	bestIdx := 0
	for i := 1; i < len(final); i++ {
		if final[i].Score < final[bestIdx].Score {
			bestIdx = i
		}
	}
	cur := final[bestIdx]

	pruned := make([]Layer, n)
	p := n - 1
	for {
		if p == 0 {
			pruned[0] = Layer{Combinations: []Combination{cur}}
			break
		}

		varIdx := cur.Indices[0]
		rewritten := Combination{
			Indices: []int{varIdx, origCols + riaWorkingSentinelOffset, origCols + riaBiasSentinelOffset},
			Coeffs:  cur.Coeffs,
			Score:   cur.Score,
		}
		pruned[p] = Layer{Combinations: []Combination{rewritten}}

		w := cur.Indices[1]
		q := 0
		for widths[q+1] <= w {
			q++
		}
		within := w - widths[q]
		cur = layers[q].Combinations[within]
		p = q
	}

	// A chain that references an output from more than one layer back
	// skips the layers in between; drop them so every kept layer holds
	// exactly one combination.
	chain := make([]Layer, 0, n)
	for _, l := range pruned {
		if len(l.Combinations) > 0 {
			chain = append(chain, l)
		}
	}
	return chain
}

// FitRIA fits a Relaxation Iterative Algorithm model: like MIA it expands
// 2-variable polynomials layer by layer, but it always keeps the original
// variables available and pairs each with one of the outputs accumulated
// from earlier layers rather than pairing outputs with each other. k_best and the input variable
// count must both be >= 3.
func FitRIA(x *mat.Dense, y []float64, opts ...Option) (*Model, error) {
	if x == nil || y == nil {
		return nil, wrap(ErrInvalidArgument, "FitRIA: x and y must not be nil")
	}
	r, c := x.Dims()
	if r != len(y) {
		return nil, wrap(ErrInvalidArgument, "FitRIA: x and y row counts must match")
	}
	if err := requireColsAtLeast3(c); err != nil {
		return nil, err
	}

	cfg := defaultConfig()
	for _, o := range opts {
		o(&cfg)
	}
	if err := requireKBestAtLeast3(cfg.kBest); err != nil {
		return nil, err
	}

	return fit(RIA, riaFamily{polyType: cfg.polyType}, x, y, cfg)
}
