package gmdh

import "gonum.org/v1/gonum/mat"

// withBias returns x augmented with a trailing column of ones (the bias
// column X⁺ = [X | 1]). The bias column index is x.cols().
func withBias(x *mat.Dense) *mat.Dense {
	r, c := x.Dims()
	out := mat.NewDense(r, c+1, nil)
	out.Slice(0, r, 0, c).(*mat.Dense).Copy(x)
	for i := 0; i < r; i++ {
		out.Set(i, c, 1)
	}
	return out
}

// columns builds the submatrix of x containing only the given column
// indices, in order. This is the Go analogue of Eigen's x(Eigen::all, comb).
func columns(x *mat.Dense, idx []int) *mat.Dense {
	r, _ := x.Dims()
	out := mat.NewDense(r, len(idx), nil)
	for j, col := range idx {
		for i := 0; i < r; i++ {
			out.Set(i, j, x.At(i, col))
		}
	}
	return out
}

// stackRows vertically concatenates a and b (same column count), used to
// build the "all" split (train stacked on test) some criteria need.
func stackRows(a, b *mat.Dense) *mat.Dense {
	ra, c := a.Dims()
	rb, _ := b.Dims()
	out := mat.NewDense(ra+rb, c, nil)
	out.Slice(0, ra, 0, c).(*mat.Dense).Copy(a)
	out.Slice(ra, ra+rb, 0, c).(*mat.Dense).Copy(b)
	return out
}

func concatVec(a, b []float64) []float64 {
	out := make([]float64, len(a)+len(b))
	copy(out, a)
	copy(out[len(a):], b)
	return out
}

// matVec multiplies x (r x c) by coeffs (len c), returning a length-r slice.
func matVec(x *mat.Dense, coeffs []float64) []float64 {
	r, c := x.Dims()
	if len(coeffs) != c {
		return nanSlice(r)
	}
	cv := mat.NewVecDense(c, coeffs)
	var out mat.VecDense
	out.MulVec(x, cv)
	res := make([]float64, r)
	for i := 0; i < r; i++ {
		res[i] = out.AtVec(i)
	}
	return res
}

func nanSlice(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = nan
	}
	return out
}

func denseFromRows(rows [][]float64) *mat.Dense {
	if len(rows) == 0 {
		return mat.NewDense(0, 0, nil)
	}
	r, c := len(rows), len(rows[0])
	out := mat.NewDense(r, c, nil)
	for i, row := range rows {
		for j, v := range row {
			out.Set(i, j, v)
		}
	}
	return out
}
