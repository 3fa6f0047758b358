package gmdh

import (
	"log"

	"gonum.org/v1/gonum/mat"
)

// family is the hook set the generic search driver delegates to. Each GMDH
// variant (COMBI, MULTI, MIA, RIA) provides one implementation; the driver
// itself never special-cases a family name.
type family interface {
	// canContinue reports whether another layer can be attempted, given the
	// current (non-bias) input width and the layer about to be generated.
	canContinue(layerIdx, currentWidth, origCols int) bool

	// generate produces the raw candidate column-index sets (bias excluded,
	// the driver appends it) for layerIdx, given the current input width
	// and the previous layer's retained top-k (nil at layer 1).
	generate(layerIdx, currentWidth, origCols int, prevTop []Combination) [][]int

	// transform maps a candidate's raw selected columns (bias last) into
	// the design matrix the least-squares solver sees.
	transform(raw *mat.Dense) *mat.Dense

	// advance mutates data in place into the next layer's input matrix,
	// given this (just-completed) layer's retained top-k.
	advance(data *SplitData, retained []Combination, layerIdx, origCols int)

	// prune reduces the retained layers to the minimal predicting chain.
	prune(layers []Layer, origCols int) []Layer
}

// fit runs the layered combinatorial search common to every family and
// returns the pruned model. x must not include a bias column; fit appends
// one internally.
func fit(kind FamilyKind, fam family, x *mat.Dense, y []float64, cfg fitConfig) (*Model, error) {
	_, origCols := x.Dims()

	threads := cfg.validate()
	pool := newWorkerPool(threads)

	xPlus := withBias(x)
	data := SplitDataset(xPlus, y, cfg.testSize, cfg.shuffle, cfg.seed)

	best := posInf
	var layers []Layer
	var prevTop []Combination

	layerIdx := 1
	for {
		trainCols, _ := data.XTrain.Dims()
		currentWidth := trainCols - 1 // exclude bias
		if !fam.canContinue(layerIdx, currentWidth, origCols) {
			break
		}

		rawCandidates := fam.generate(layerIdx, currentWidth, origCols, prevTop)
		if len(rawCandidates) == 0 {
			break
		}

		biasIdx := currentWidth
		combos := make([]Combination, len(rawCandidates))
		for i, c := range rawCandidates {
			idx := append(append([]int(nil), c...), biasIdx)
			combos[i] = Combination{Indices: idx}
		}

		pool.run(len(combos), func(lo, hi int) {
			for i := lo; i < hi; i++ {
				xTrainRaw := columns(data.XTrain, combos[i].Indices)
				xTestRaw := columns(data.XTest, combos[i].Indices)
				xTrainDesign := fam.transform(xTrainRaw)
				xTestDesign := fam.transform(xTestRaw)
				score, coeffs := cfg.criterion.Calculate(xTrainDesign, xTestDesign, data.YTrain, data.YTest)
				combos[i].Score = score
				combos[i].Coeffs = coeffs
			}
		})

		top := bestK(combos, cfg.kBest)

		if cfg.criterion.IsSequential() {
			for i := range top {
				xTrainRaw := columns(data.XTrain, top[i].Indices)
				xTestRaw := columns(data.XTest, top[i].Indices)
				xTrainDesign := fam.transform(xTrainRaw)
				xTestDesign := fam.transform(xTestRaw)
				top[i].Score = cfg.criterion.Recalculate(xTrainDesign, xTestDesign, data.YTrain, data.YTest, top[i].Coeffs)
			}
			stableSortByScore(top)
		}

		meanScore := meanTopP(top, cfg.pAverage)

		if cfg.verbose == 1 {
			log.Printf("gmdh: layer %d: %d candidates, mean top-%d score = %v", layerIdx, len(combos), cfg.pAverage, meanScore)
		}

		if best-meanScore <= cfg.limit {
			break
		}

		layers = append(layers, Layer{Combinations: top})
		best = meanScore
		prevTop = top

		fam.advance(&data, top, layerIdx, origCols)
		layerIdx++
	}

	if len(layers) == 0 {
		return nil, wrap(ErrDriver, "fit: no layer was accepted")
	}

	layers = fam.prune(layers, origCols)

	return &Model{
		Family:    kind,
		PolyType:  cfg.polyType,
		InputCols: origCols,
		Layers:    layers,
	}, nil
}
