package gmdh

import "gonum.org/v1/gonum/mat"

// combiFamily implements COMBI: every layer enumerates all L-sized subsets
// of the original variables (no layer ever rebuilds its input matrix), and
// the final model is the best-scoring combination from the last accepted
// layer. Grounded on src/combi.cpp / src/combi.h.
type combiFamily struct{}

func (combiFamily) canContinue(layerIdx, currentWidth, origCols int) bool {
	return layerIdx <= origCols
}

func (combiFamily) generate(layerIdx, currentWidth, origCols int, prevTop []Combination) [][]int {
	return combinationsOfSize(origCols, layerIdx)
}

func (combiFamily) transform(raw *mat.Dense) *mat.Dense { return raw }

func (combiFamily) advance(data *SplitData, retained []Combination, layerIdx, origCols int) {}

func (combiFamily) prune(layers []Layer, origCols int) []Layer {
	return pruneToBestOverall(layers)
}

// pruneToBestOverall collapses a multi-layer search down to the last
// accepted layer's own best-scoring combination, the prune rule COMBI and
// MULTI share. It is the last accepted layer specifically, not the global
// minimum across all layers: with p_average > 1 the stopping rule accepts
// a layer on its mean-of-top-p score, so an earlier layer's single best
// candidate can score lower than the accepted layer's own best without
// that earlier layer being the one the search settled on.
func pruneToBestOverall(layers []Layer) []Layer {
	if len(layers) == 0 {
		return nil
	}
	last := layers[len(layers)-1]
	if len(last.Combinations) == 0 {
		return nil
	}
	bestIdx := 0
	for i := 1; i < len(last.Combinations); i++ {
		if last.Combinations[i].Score < last.Combinations[bestIdx].Score {
			bestIdx = i
		}
	}
	return []Layer{{Combinations: []Combination{last.Combinations[bestIdx]}}}
}

// FitCOMBI fits a COMBI model: linear combinations of growing subsets of
// the original variables, scored and pruned down to the single best one.
// k_best does not apply to COMBI and WithKBest is ignored if given.
func FitCOMBI(x *mat.Dense, y []float64, opts ...Option) (*Model, error) {
	if x == nil || y == nil {
		return nil, wrap(ErrInvalidArgument, "FitCOMBI: x and y must not be nil")
	}
	r, _ := x.Dims()
	if r != len(y) {
		return nil, wrap(ErrInvalidArgument, "FitCOMBI: x and y row counts must match")
	}

	cfg := defaultConfig()
	for _, o := range opts {
		o(&cfg)
	}
	cfg.kBest = allCandidatesKBest

	return fit(COMBI, combiFamily{}, x, y, cfg)
}

// allCandidatesKBest is large enough that bestK never truncates COMBI's
// candidate set before the layer's single best combination is picked up by
// prune; COMBI never exposes k_best as a tuning knob, so the driver's
// top-k retention step still runs but simply keeps everything.
const allCandidatesKBest = 1 << 30
