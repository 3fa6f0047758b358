package gmdh

import "gonum.org/v1/gonum/mat"

// Predict runs x through the fitted, pruned model and returns one
// prediction per row. x must have exactly m.InputCols columns and must
// not include a bias column; Predict never mutates m.
func (m *Model) Predict(x *mat.Dense) ([]float64, error) {
	if x == nil {
		return nil, wrap(ErrInvalidArgument, "Predict: x must not be nil")
	}
	_, c := x.Dims()
	if c != m.InputCols {
		return nil, wrapf(ErrInvalidArgument, "Predict: x has %d columns, model expects %d", c, m.InputCols)
	}
	if len(m.Layers) == 0 {
		return nil, wrap(ErrDriver, "Predict: model has no layers")
	}

	switch m.Family {
	case COMBI, MULTI:
		return linearForward(m, x), nil
	case MIA:
		return miaForward(m, x), nil
	case RIA:
		return riaForward(m, x), nil
	default:
		return nil, wrap(ErrFamily, "Predict: unknown family")
	}
}

// PredictRow is a convenience wrapper over Predict for a single row.
func (m *Model) PredictRow(row []float64) (float64, error) {
	if len(row) != m.InputCols {
		return 0, wrapf(ErrInvalidArgument, "PredictRow: row has %d values, model expects %d", len(row), m.InputCols)
	}
	x := mat.NewDense(1, len(row), append([]float64(nil), row...))
	out, err := m.Predict(x)
	if err != nil {
		return 0, err
	}
	return out[0], nil
}

// Forecast generalizes RIA's long-term-forecast behavior to every family:
// it slides a window of the model's input width over seed, appending each
// prediction as the next window's last value, and returns the h
// forecasted values. seed must hold at least m.InputCols values (its most
// recent m.InputCols values seed the first window).
func (m *Model) Forecast(seed []float64, h int) ([]float64, error) {
	if len(seed) < m.InputCols {
		return nil, wrap(ErrInvalidArgument, "Forecast: seed shorter than the model's input width")
	}
	if h <= 0 {
		return nil, wrap(ErrInvalidArgument, "Forecast: h must be > 0")
	}

	series := append([]float64(nil), seed...)
	out := make([]float64, h)
	for i := 0; i < h; i++ {
		window := series[len(series)-m.InputCols:]
		pred, err := m.PredictRow(window)
		if err != nil {
			return nil, err
		}
		out[i] = pred
		series = append(series, pred)
	}
	return out, nil
}

// linearForward evaluates COMBI/MULTI's single surviving linear
// combination directly against x (with a bias column appended).
func linearForward(m *Model, x *mat.Dense) []float64 {
	xPlus := withBias(x)
	combo := m.Layers[0].Combinations[0]
	design := columns(xPlus, combo.Indices)
	return matVec(design, combo.Coeffs)
}

// miaForward replays the pruned layer DAG forward: layer 0's combinations
// read directly from x (with bias appended); every later layer's
// combinations read from the vector of outputs the previous pruned layer
// produced (plus a fresh bias column), exactly mirroring how advance/prune
// built that structure during the fit.
func miaForward(m *Model, x *mat.Dense) []float64 {
	xPlus := withBias(x)
	rows, _ := x.Dims()

	outputs := make([][]float64, len(m.Layers[0].Combinations))
	for i, c := range m.Layers[0].Combinations {
		design := polynomialDesign(columns(xPlus, c.Indices), m.PolyType)
		outputs[i] = matVec(design, c.Coeffs)
	}

	for l := 1; l < len(m.Layers); l++ {
		prevWidth := len(outputs)
		layerInput := mat.NewDense(rows, prevWidth+1, nil)
		for j, col := range outputs {
			for i := 0; i < rows; i++ {
				layerInput.Set(i, j, col[i])
			}
		}
		for i := 0; i < rows; i++ {
			layerInput.Set(i, prevWidth, 1)
		}

		next := make([][]float64, len(m.Layers[l].Combinations))
		for i, c := range m.Layers[l].Combinations {
			design := polynomialDesign(columns(layerInput, c.Indices), m.PolyType)
			next[i] = matVec(design, c.Coeffs)
		}
		outputs = next
	}

	return outputs[0]
}

// riaForward replays the pruned linear chain forward: layer 0 combines two
// original variables; every later layer combines one original variable
// with the running working value carried from the previous layer.
func riaForward(m *Model, x *mat.Dense) []float64 {
	rows, _ := x.Dims()

	first := m.Layers[0].Combinations[0]
	raw0 := withBias(columns(x, first.Indices[:2]))
	design0 := polynomialDesign(raw0, m.PolyType)
	working := matVec(design0, first.Coeffs)

	for l := 1; l < len(m.Layers); l++ {
		combo := m.Layers[l].Combinations[0]
		varCol := columns(x, []int{combo.Indices[0]})
		raw := mat.NewDense(rows, 3, nil)
		for i := 0; i < rows; i++ {
			raw.Set(i, 0, varCol.At(i, 0))
			raw.Set(i, 1, working[i])
			raw.Set(i, 2, 1)
		}
		design := polynomialDesign(raw, m.PolyType)
		working = matVec(design, combo.Coeffs)
	}

	return working
}
