package gmdh

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBestKSelectsLowestScores(t *testing.T) {
	cands := []Combination{
		{Indices: []int{0}, Score: 5},
		{Indices: []int{1}, Score: 1},
		{Indices: []int{2}, Score: 9},
		{Indices: []int{3}, Score: 2},
		{Indices: []int{4}, Score: 3},
	}
	top := bestK(cands, 3)
	assert.Len(t, top, 3)
	assert.Equal(t, 1.0, top[0].Score)
	assert.Equal(t, 2.0, top[1].Score)
	assert.Equal(t, 3.0, top[2].Score)
}

func TestBestKClampsToLength(t *testing.T) {
	cands := []Combination{{Score: 1}, {Score: 2}}
	top := bestK(cands, 10)
	assert.Len(t, top, 2)
}

func TestStableSortByScorePreservesTieOrder(t *testing.T) {
	cands := []Combination{
		{Indices: []int{0}, Score: 1},
		{Indices: []int{1}, Score: 1},
		{Indices: []int{2}, Score: 0},
	}
	stableSortByScore(cands)
	assert.Equal(t, []int{2}, cands[0].Indices)
	assert.Equal(t, []int{0}, cands[1].Indices)
	assert.Equal(t, []int{1}, cands[2].Indices)
}

func TestMeanTopP(t *testing.T) {
	sorted := []Combination{{Score: 1}, {Score: 2}, {Score: 3}}
	assert.InDelta(t, 1.5, meanTopP(sorted, 2), 1e-9)
	assert.InDelta(t, 2.0, meanTopP(sorted, 10), 1e-9)
	assert.Equal(t, 0.0, meanTopP(sorted, 0))
}
