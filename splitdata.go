package gmdh

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/mat"
)

// SplitData is the train/test partition a fit's whole search is based on:
// split once up front, then reused across every layer.
type SplitData struct {
	XTrain, XTest *mat.Dense
	YTrain, YTest []float64
}

// SplitDataset splits x (with bias column already appended) and y into a
// train/test partition. Row-contiguous (last testSize fraction of rows) when
// shuffle is false; a seeded Fisher-Yates shuffle otherwise. Grounded on
// src/gmdh.cpp's splitData.
func SplitDataset(x *mat.Dense, y []float64, testSize float64, shuffle bool, seed int64) SplitData {
	r, _ := x.Dims()
	nTest := int(math.Round(float64(r) * testSize))
	if nTest < 0 {
		nTest = 0
	}
	if nTest > r {
		nTest = r
	}
	nTrain := r - nTest

	var order []int
	if !shuffle {
		order = make([]int, r)
		for i := range order {
			order[i] = i
		}
	} else {
		rng := rand.New(rand.NewSource(seed))
		order = rng.Perm(r)
	}

	trainIdx := order[:nTrain]
	testIdx := order[nTrain:]

	return SplitData{
		XTrain: rowSubset(x, trainIdx),
		XTest:  rowSubset(x, testIdx),
		YTrain: rowSubsetVec(y, trainIdx),
		YTest:  rowSubsetVec(y, testIdx),
	}
}

func rowSubset(x *mat.Dense, rows []int) *mat.Dense {
	_, c := x.Dims()
	out := mat.NewDense(len(rows), c, nil)
	for i, r := range rows {
		for j := 0; j < c; j++ {
			out.Set(i, j, x.At(r, j))
		}
	}
	return out
}

func rowSubsetVec(y []float64, rows []int) []float64 {
	out := make([]float64, len(rows))
	for i, r := range rows {
		out[i] = y[r]
	}
	return out
}

// TimeSeriesTransformation builds (X, y) from a single series v with a lag
// window: X[i] = v[i:i+lags], y[i] = v[i+lags]. Grounded on
// src/gmdh.cpp's convertToTimeSeries.
func TimeSeriesTransformation(v []float64, lags int) (*mat.Dense, []float64, error) {
	if len(v) == 0 {
		return nil, nil, wrap(ErrInvalidArgument, "TimeSeriesTransformation: v must not be empty")
	}
	if lags <= 0 {
		return nil, nil, wrap(ErrInvalidArgument, "TimeSeriesTransformation: lags must be > 0")
	}
	if lags >= len(v) {
		return nil, nil, wrap(ErrInvalidArgument, "TimeSeriesTransformation: lags must be < len(v)")
	}

	n := len(v) - lags
	x := mat.NewDense(n, lags, nil)
	y := make([]float64, n)
	for i := 0; i < n; i++ {
		for j := 0; j < lags; j++ {
			x.Set(i, j, v[i+j])
		}
		y[i] = v[i+lags]
	}
	return x, y, nil
}
