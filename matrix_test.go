package gmdh

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/mat"
)

func TestWithBias(t *testing.T) {
	x := mat.NewDense(2, 2, []float64{1, 2, 3, 4})
	out := withBias(x)
	r, c := out.Dims()
	assert.Equal(t, 2, r)
	assert.Equal(t, 3, c)
	assert.Equal(t, 1.0, out.At(0, 2))
	assert.Equal(t, 1.0, out.At(1, 2))
	assert.Equal(t, 2.0, out.At(0, 1))
}

func TestColumns(t *testing.T) {
	x := mat.NewDense(2, 3, []float64{1, 2, 3, 4, 5, 6})
	out := columns(x, []int{2, 0})
	r, c := out.Dims()
	assert.Equal(t, 2, r)
	assert.Equal(t, 2, c)
	assert.Equal(t, 3.0, out.At(0, 0))
	assert.Equal(t, 1.0, out.At(0, 1))
}

func TestStackRows(t *testing.T) {
	a := mat.NewDense(1, 2, []float64{1, 2})
	b := mat.NewDense(2, 2, []float64{3, 4, 5, 6})
	out := stackRows(a, b)
	r, c := out.Dims()
	assert.Equal(t, 3, r)
	assert.Equal(t, 2, c)
	assert.Equal(t, 5.0, out.At(2, 0))
}

func TestMatVec(t *testing.T) {
	x := mat.NewDense(2, 2, []float64{1, 2, 3, 4})
	out := matVec(x, []float64{1, 1})
	assert.Equal(t, []float64{3.0, 7.0}, out)
}

func TestMatVecWrongLengthReturnsNaN(t *testing.T) {
	x := mat.NewDense(2, 2, []float64{1, 2, 3, 4})
	out := matVec(x, []float64{1})
	for _, v := range out {
		assert.True(t, v != v) // NaN
	}
}
