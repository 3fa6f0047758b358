package gmdh

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFitRIARecoversLinearRelationship(t *testing.T) {
	x, y := linearDataset(20)

	m, err := FitRIA(x, y, WithPolynomialType(Linear), WithLimit(1e-9))
	require.NoError(t, err)
	assert.Equal(t, RIA, m.Family)

	pred, err := m.Predict(x)
	require.NoError(t, err)
	for i := range y {
		assert.InDelta(t, y[i], pred[i], 1e-4)
	}
}

func TestFitRIARequiresKBestAndCols(t *testing.T) {
	x, y := linearDataset(20)
	_, err := FitRIA(x, y, WithKBest(2))
	require.Error(t, err)
}

func TestRiaCanContinue(t *testing.T) {
	f := riaFamily{}
	assert.True(t, f.canContinue(1, 3, 3))
	assert.False(t, f.canContinue(1, 1, 3))
	assert.True(t, f.canContinue(2, 4, 3))
	assert.False(t, f.canContinue(2, 3, 3))
}

func TestRiaGenerateLayer1IsPairsOfOriginalVars(t *testing.T) {
	f := riaFamily{}
	cands := f.generate(1, 3, 3, nil)
	assert.Len(t, cands, 3)
}

func TestRiaGenerateLaterLayerPairsVarWithWorkingOutput(t *testing.T) {
	f := riaFamily{}
	cands := f.generate(2, 4, 3, nil)
	assert.ElementsMatch(t, [][]int{{0, 3}, {1, 3}, {2, 3}}, cands)
}

func TestRiaPruneTracesBackToOriginatingLayer(t *testing.T) {
	c0 := Combination{Indices: []int{0, 1, 3}, Score: 0.1}
	c1 := Combination{Indices: []int{0, 2, 3}, Score: 5}
	c2 := Combination{Indices: []int{1, 2, 3}, Score: 7}
	d0 := Combination{Indices: []int{0, 3, 6}, Score: 0.05}
	d1 := Combination{Indices: []int{1, 4, 6}, Score: 9}

	layers := []Layer{
		{Combinations: []Combination{c0, c1, c2}},
		{Combinations: []Combination{d0, d1}},
	}

	pruned := riaFamily{}.prune(layers, 3)
	require.Len(t, pruned, 2)

	require.Len(t, pruned[0].Combinations, 1)
	assert.Equal(t, c0, pruned[0].Combinations[0])

	require.Len(t, pruned[1].Combinations, 1)
	assert.Equal(t, []int{0, 3, 4}, pruned[1].Combinations[0].Indices)
	assert.Equal(t, 0.05, pruned[1].Combinations[0].Score)
}
