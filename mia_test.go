package gmdh

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestFitMIARecoversLinearRelationship(t *testing.T) {
	x, y := linearDataset(20)

	m, err := FitMIA(x, y, WithPolynomialType(Linear), WithLimit(1e-9))
	require.NoError(t, err)
	assert.Equal(t, MIA, m.Family)

	pred, err := m.Predict(x)
	require.NoError(t, err)
	for i := range y {
		assert.InDelta(t, y[i], pred[i], 1e-4)
	}
}

func TestFitMIARequiresThreeColumns(t *testing.T) {
	x := mat.NewDense(5, 2, []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10})
	_, err := FitMIA(x, []float64{1, 2, 3, 4, 5})
	require.Error(t, err)
}

func TestFitMIARequiresKBestAtLeast3(t *testing.T) {
	x, y := linearDataset(20)
	_, err := FitMIA(x, y, WithKBest(2))
	require.Error(t, err)
}

func TestPolynomialDesignLinear(t *testing.T) {
	raw := mat.NewDense(2, 3, []float64{2, 4, 1, 3, 5, 1})
	d := polynomialDesign(raw, Linear)
	r, c := d.Dims()
	assert.Equal(t, 2, r)
	assert.Equal(t, 3, c)
	assert.Equal(t, []float64{2, 4, 1}, d.RawRowView(0))
}

func TestPolynomialDesignLinearCov(t *testing.T) {
	raw := mat.NewDense(1, 3, []float64{2, 4, 1})
	d := polynomialDesign(raw, LinearCov)
	_, c := d.Dims()
	assert.Equal(t, 4, c)
	assert.Equal(t, []float64{2, 4, 8, 1}, d.RawRowView(0))
}

func TestPolynomialDesignQuadratic(t *testing.T) {
	raw := mat.NewDense(1, 3, []float64{2, 4, 1})
	d := polynomialDesign(raw, Quadratic)
	_, c := d.Dims()
	assert.Equal(t, 6, c)
	assert.Equal(t, []float64{2, 4, 8, 4, 16, 1}, d.RawRowView(0))
}

func TestMiaPruneWalksBackThroughReferencedCombinations(t *testing.T) {
	c0 := Combination{Indices: []int{0, 1, 3}, Score: 0.1}
	c1 := Combination{Indices: []int{0, 2, 3}, Score: 5}
	c2 := Combination{Indices: []int{1, 2, 3}, Score: 7}
	d0 := Combination{Indices: []int{0, 1, 3}, Score: 0.05}
	d1 := Combination{Indices: []int{0, 2, 3}, Score: 9}

	layers := []Layer{
		{Combinations: []Combination{c0, c1, c2}},
		{Combinations: []Combination{d0, d1}},
	}

	pruned := miaFamily{}.prune(layers, 3)
	require.Len(t, pruned, 2)

	require.Len(t, pruned[0].Combinations, 2)
	assert.Equal(t, c0, pruned[0].Combinations[0])
	assert.Equal(t, c1, pruned[0].Combinations[1])

	require.Len(t, pruned[1].Combinations, 1)
	assert.Equal(t, []int{0, 1, 2}, pruned[1].Combinations[0].Indices)
	assert.Equal(t, 0.05, pruned[1].Combinations[0].Score)
}

func TestMiaCanContinue(t *testing.T) {
	f := miaFamily{}
	assert.True(t, f.canContinue(1, 3, 3))
	assert.False(t, f.canContinue(2, 1, 3))
}
