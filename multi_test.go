package gmdh

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFitMULTIRecoversLinearRelationship(t *testing.T) {
	x, y := linearDataset(20)

	m, err := FitMULTI(x, y, WithKBest(3))
	require.NoError(t, err)
	assert.Equal(t, MULTI, m.Family)
	require.Len(t, m.Layers, 1)

	pred, err := m.Predict(x)
	require.NoError(t, err)
	for i := range y {
		assert.InDelta(t, y[i], pred[i], 1e-6)
	}
}

// TestFitMULTIWithPAverageAcceptsMeanImprovingLayer runs a real fit with
// WithPAverage(2), which makes the stopping rule compare mean-of-top-2
// scores layer over layer, and checks that the model still builds, prunes
// to a single layer and reproduces y. Which layer the surviving
// combination came from is covered by the pruneToBestOverall unit tests
// in combi_test.go.
func TestFitMULTIWithPAverageAcceptsMeanImprovingLayer(t *testing.T) {
	x, y := linearDataset(20)

	m, err := FitMULTI(x, y, WithKBest(3), WithPAverage(2))
	require.NoError(t, err)
	require.Len(t, m.Layers, 1)

	pred, err := m.Predict(x)
	require.NoError(t, err)
	for i := range y {
		assert.InDelta(t, y[i], pred[i], 1e-4)
	}
}

func TestMultiGenerateLayer1IsSingletons(t *testing.T) {
	f := multiFamily{}
	cands := f.generate(1, 3, 3, nil)
	assert.Len(t, cands, 3)
}

func TestMultiGenerateExtendsPrevTopWithUnusedVars(t *testing.T) {
	f := multiFamily{}
	prev := []Combination{{Indices: []int{0, 3}}} // var 0, bias at 3
	cands := f.generate(2, 3, 3, prev)
	assert.ElementsMatch(t, [][]int{{0, 1}, {0, 2}}, cands)
}

func TestMultiGenerateDedupesAcrossPrevTop(t *testing.T) {
	f := multiFamily{}
	prev := []Combination{
		{Indices: []int{0, 9}},
		{Indices: []int{1, 9}},
	}
	cands := f.generate(2, 3, 3, prev)
	// {0,1} is reachable from both prev entries but must appear once
	count := 0
	for _, c := range cands {
		if len(c) == 2 && ((c[0] == 0 && c[1] == 1) || (c[0] == 1 && c[1] == 0)) {
			count++
		}
	}
	assert.Equal(t, 1, count)
}
