package gmdh

import (
	"sort"

	"gonum.org/v1/gonum/mat"
)

// miaFamily implements MIA: every layer pairs up the current columns,
// expands each pair into a 2-variable polynomial, keeps the k_best-scoring
// pairs' fitted outputs as the next layer's columns, and finally walks the
// retained layers backward from the single best combination in the last
// layer to the minimal chain that produces it. Grounded on
// src/mia.cpp / src/mia.h.
type miaFamily struct {
	polyType PolynomialType
}

func (miaFamily) canContinue(layerIdx, currentWidth, origCols int) bool {
	return currentWidth >= 2
}

func (miaFamily) generate(layerIdx, currentWidth, origCols int, prevTop []Combination) [][]int {
	return combinationsOfSize(currentWidth, 2)
}

// transform expands a raw [x0, x1, bias] design into the configured
// 2-variable polynomial, bias last.
func (f miaFamily) transform(raw *mat.Dense) *mat.Dense {
	return polynomialDesign(raw, f.polyType)
}

func polynomialDesign(raw *mat.Dense, pt PolynomialType) *mat.Dense {
	r, _ := raw.Dims()
	x0 := denseColumnOf(raw, 0, r)
	x1 := denseColumnOf(raw, 1, r)

	var cols [][]float64
	switch pt {
	case Linear:
		cols = [][]float64{x0, x1}
	case LinearCov:
		cols = [][]float64{x0, x1, mulVec(x0, x1)}
	default: // Quadratic
		cols = [][]float64{x0, x1, mulVec(x0, x1), mulVec(x0, x0), mulVec(x1, x1)}
	}

	out := mat.NewDense(r, len(cols)+1, nil)
	for j, c := range cols {
		for i := 0; i < r; i++ {
			out.Set(i, j, c[i])
		}
	}
	for i := 0; i < r; i++ {
		out.Set(i, len(cols), 1)
	}
	return out
}

func denseColumnOf(d *mat.Dense, col, rows int) []float64 {
	out := make([]float64, rows)
	for i := 0; i < rows; i++ {
		out[i] = d.At(i, col)
	}
	return out
}

func mulVec(a, b []float64) []float64 {
	out := make([]float64, len(a))
	for i := range a {
		out[i] = a[i] * b[i]
	}
	return out
}

// advance replaces the working data with the retained combinations'
// fitted outputs (one column per retained combination) plus a fresh bias
// column; MIA never carries the original variables forward past layer 1.
func (f miaFamily) advance(data *SplitData, retained []Combination, layerIdx, origCols int) {
	data.XTrain = nextLayerColumns(data.XTrain, retained, f.polyType)
	data.XTest = nextLayerColumns(data.XTest, retained, f.polyType)
}

func nextLayerColumns(x *mat.Dense, retained []Combination, pt PolynomialType) *mat.Dense {
	r, _ := x.Dims()
	out := mat.NewDense(r, len(retained)+1, nil)
	for k, c := range retained {
		raw := columns(x, c.Indices)
		design := polynomialDesign(raw, pt)
		col := matVec(design, c.Coeffs)
		for i := 0; i < r; i++ {
			out.Set(i, k, col[i])
		}
	}
	for i := 0; i < r; i++ {
		out.Set(i, len(retained), 1)
	}
	return out
}

// prune walks back from the single best combination of the final layer,
// at each step keeping only the earlier layer's combinations that are
// actually referenced, and rewriting index references to the new
// (shrunk) positions. Grounded on src/mia.cpp's removeExtraCombinations.
func (miaFamily) prune(layers []Layer, origCols int) []Layer {
	n := len(layers)
	if n == 0 {
		return layers
	}

	final := layers[n-1].Combinations
	bestIdx := 0
	for i := 1; i < len(final); i++ {
		if final[i].Score < final[bestIdx].Score {
			bestIdx = i
		}
	}
	keep := []Combination{final[bestIdx]}

	pruned := make([]Layer, n)
	pruned[n-1] = Layer{Combinations: keep}

	for l := n - 1; l >= 1; l-- {
		used := map[int]bool{}
		for _, c := range keep {
			for _, idx := range c.Indices[:len(c.Indices)-1] {
				used[idx] = true
			}
		}

		var usedPositions []int
		for p := range used {
			usedPositions = append(usedPositions, p)
		}
		sort.Ints(usedPositions)

		prevAll := layers[l-1].Combinations
		remap := make(map[int]int, len(usedPositions))
		newPrev := make([]Combination, 0, len(usedPositions))
		for newIdx, oldPos := range usedPositions {
			if oldPos < 0 || oldPos >= len(prevAll) {
				continue
			}
			remap[oldPos] = newIdx
			newPrev = append(newPrev, prevAll[oldPos])
		}

		newBias := len(newPrev)
		for i := range keep {
			old := keep[i].Indices
			rewritten := make([]int, len(old))
			for j := 0; j < len(old)-1; j++ {
				rewritten[j] = remap[old[j]]
			}
			rewritten[len(old)-1] = newBias
			keep[i].Indices = rewritten
		}
		pruned[l] = Layer{Combinations: keep}

		keep = newPrev
		pruned[l-1] = Layer{Combinations: newPrev}
	}

	return pruned
}

// FitMIA fits a Multilayer Iterative Algorithm model: successive layers of
// 2-variable polynomial expansions over the k_best survivors of the
// previous layer. k_best and the input variable count must both be >= 3.
func FitMIA(x *mat.Dense, y []float64, opts ...Option) (*Model, error) {
	if x == nil || y == nil {
		return nil, wrap(ErrInvalidArgument, "FitMIA: x and y must not be nil")
	}
	r, c := x.Dims()
	if r != len(y) {
		return nil, wrap(ErrInvalidArgument, "FitMIA: x and y row counts must match")
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

	return fit(MIA, miaFamily{polyType: cfg.polyType}, x, y, cfg)
}
