package gmdh

import "gonum.org/v1/gonum/mat"

// linearDataset builds n rows of 3 columns (x0 ramps up, x1 ramps down,
// x2 is a third, linearly-independent column) and y = 3*x0 + 2*x1, a
// relationship every family should recover exactly with no noise.
func linearDataset(n int) (*mat.Dense, []float64) {
	x := mat.NewDense(n, 3, nil)
	y := make([]float64, n)
	for i := 0; i < n; i++ {
		x0 := float64(i + 1)
		x1 := float64(n - i)
		x2 := float64((i * i) % 7)
		x.Set(i, 0, x0)
		x.Set(i, 1, x1)
		x.Set(i, 2, x2)
		y[i] = 3*x0 + 2*x1
	}
	return x, y
}
