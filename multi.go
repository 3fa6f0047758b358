package gmdh

import (
	"fmt"
	"gonum.org/v1/gonum/mat"
)

// multiFamily implements MULTI: layer 1 is every single variable; each
// later layer greedily extends the previous layer's retained combinations
// by one more (unused) variable, deduplicated as sets. Like COMBI the
// final model is the best combination from the last accepted layer.
// Grounded on src/multi.cpp / src/multi.h.
type multiFamily struct{}

func (multiFamily) canContinue(layerIdx, currentWidth, origCols int) bool {
	return layerIdx <= origCols
}

func (multiFamily) generate(layerIdx, currentWidth, origCols int, prevTop []Combination) [][]int {
	if layerIdx == 1 {
		return combinationsOfSize(origCols, 1)
	}

	seen := make(map[string]bool)
	var out [][]int
	for _, prev := range prevTop {
		base := prev.Indices[:len(prev.Indices)-1] // drop bias
		for v := 0; v < origCols; v++ {
			if containsInt(base, v) {
				continue
			}
			next := sortedCopy(append(append([]int(nil), base...), v))
			key := fmt.Sprint(next)
			if seen[key] {
				continue
			}
			seen[key] = true
			out = append(out, next)
		}
	}
	return out
}

func (multiFamily) transform(raw *mat.Dense) *mat.Dense { return raw }

func (multiFamily) advance(data *SplitData, retained []Combination, layerIdx, origCols int) {}

func (multiFamily) prune(layers []Layer, origCols int) []Layer {
	return pruneToBestOverall(layers)
}

// FitMULTI fits a MULTI model: a linear combination of a greedily grown
// subset of the original variables, scored and pruned down to the best
// one from the layer the search settled on.
func FitMULTI(x *mat.Dense, y []float64, opts ...Option) (*Model, error) {
	if x == nil || y == nil {
		return nil, wrap(ErrInvalidArgument, "FitMULTI: x and y must not be nil")
	}
	r, _ := x.Dims()
	if r != len(y) {
		return nil, wrap(ErrInvalidArgument, "FitMULTI: x and y row counts must match")
	}

	cfg := defaultConfig()
	for _, o := range opts {
		o(&cfg)
	}

	return fit(MULTI, multiFamily{}, x, y, cfg)
}
