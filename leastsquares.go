package gmdh

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

var nan = math.NaN()

// Solver selects the pivoting strategy used to solve the per-candidate
// least-squares problem.
type Solver uint8

const (
	// SolverFast uses an unpivoted Householder QR. Cheapest, least robust
	// to rank-deficient designs.
	SolverFast Solver = iota
	// SolverBalanced uses gonum's general Solve (QR-based).
	SolverBalanced
	// SolverAccurate uses an SVD-based pseudoinverse solve, the most
	// robust of the three to near-singular designs.
	SolverAccurate
)

// findBestCoeffs solves beta = argmin ||x*beta - y||^2. When the fast or
// balanced solve fails on a degenerate (singular) design, or any solver
// yields a NaN/Inf coefficient, it returns a NaN-filled vector rather than
// erroring — the criterion layer turns that into a +Inf score. The SVD
// path drops singular values below 1e-12 of the largest and so returns the
// minimum-norm solution for a rank-deficient design instead of NaNs.
func findBestCoeffs(x *mat.Dense, y []float64, solver Solver) []float64 {
	_, c := x.Dims()
	yVec := mat.NewVecDense(len(y), append([]float64(nil), y...))

	switch solver {
	case SolverAccurate:
		return solveSVD(x, yVec, c)
	case SolverBalanced:
		var dst mat.Dense
		if err := dst.Solve(x, yVec); err != nil {
			return nanSlice(c)
		}
		return denseColumn(&dst, c)
	default:
		var qr mat.QR
		qr.Factorize(x)
		var dst mat.VecDense
		if err := qr.SolveVecTo(&dst, false, yVec); err != nil {
			return nanSlice(c)
		}
		return vecSlice(&dst, c)
	}
}

func solveSVD(x *mat.Dense, yVec *mat.VecDense, c int) []float64 {
	var svd mat.SVD
	if ok := svd.Factorize(x, mat.SVDThin); !ok {
		return nanSlice(c)
	}
	var u, v mat.Dense
	svd.UTo(&u)
	svd.VTo(&v)
	sv := svd.Values(nil)

	uRows, uCols := u.Dims()
	_ = uRows
	uty := mat.NewVecDense(uCols, nil)
	uty.MulVec(u.T(), yVec)

	sInv := mat.NewVecDense(len(sv), nil)
	for i, s := range sv {
		if s > 1e-12*sv[0] {
			sInv.SetVec(i, uty.AtVec(i)/s)
		}
	}

	var coeffs mat.VecDense
	coeffs.MulVec(&v, sInv)
	return vecSlice(&coeffs, c)
}

func vecSlice(v *mat.VecDense, n int) []float64 {
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		val := v.AtVec(i)
		if math.IsNaN(val) || math.IsInf(val, 0) {
			return nanSlice(n)
		}
		out[i] = val
	}
	return out
}

func denseColumn(d *mat.Dense, n int) []float64 {
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		val := d.At(i, 0)
		if math.IsNaN(val) || math.IsInf(val, 0) {
			return nanSlice(n)
		}
		out[i] = val
	}
	return out
}

func isDegenerate(coeffs []float64) bool {
	for _, v := range coeffs {
		if math.IsNaN(v) {
			return true
		}
	}
	return false
}
