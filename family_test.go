package gmdh

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultConfigValidateNoChanges(t *testing.T) {
	cfg := defaultConfig()
	threads := cfg.validate()
	assert.Equal(t, 1, threads)
	assert.Equal(t, 0.5, cfg.testSize)
}

func TestValidateFallsBackOnBadTestSize(t *testing.T) {
	cfg := defaultConfig()
	cfg.testSize = 1.5
	cfg.validate()
	assert.Equal(t, 0.5, cfg.testSize)
}

func TestValidateFallsBackOnBadPAverage(t *testing.T) {
	cfg := defaultConfig()
	cfg.pAverage = 0
	cfg.validate()
	assert.Equal(t, 1, cfg.pAverage)
}

func TestValidateFallsBackOnBadLimit(t *testing.T) {
	cfg := defaultConfig()
	cfg.limit = -1
	cfg.validate()
	assert.Equal(t, 0.0, cfg.limit)
}

func TestValidateThreadsAllCores(t *testing.T) {
	cfg := defaultConfig()
	cfg.threads = -1
	threads := cfg.validate()
	assert.GreaterOrEqual(t, threads, 1)
}

func TestWithOptionsApply(t *testing.T) {
	cfg := defaultConfig()
	WithKBest(5)(&cfg)
	WithTestSize(0.3)(&cfg)
	WithPAverage(2)(&cfg)
	WithThreads(2)(&cfg)
	WithPolynomialType(Linear)(&cfg)
	WithShuffle(true, 7)(&cfg)

	assert.Equal(t, 5, cfg.kBest)
	assert.Equal(t, 0.3, cfg.testSize)
	assert.Equal(t, 2, cfg.pAverage)
	assert.Equal(t, 2, cfg.threads)
	assert.Equal(t, Linear, cfg.polyType)
	assert.True(t, cfg.shuffle)
	assert.Equal(t, int64(7), cfg.seed)
}

func TestRequireKBestAtLeast3(t *testing.T) {
	assert.NoError(t, requireKBestAtLeast3(3))
	assert.Error(t, requireKBestAtLeast3(2))
}

func TestRequireColsAtLeast3(t *testing.T) {
	assert.NoError(t, requireColsAtLeast3(3))
	assert.Error(t, requireColsAtLeast3(2))
}

func TestFamilyKindString(t *testing.T) {
	assert.Equal(t, "COMBI", COMBI.String())
	assert.Equal(t, "MULTI", MULTI.String())
	assert.Equal(t, "MIA", MIA.String())
	assert.Equal(t, "RIA", RIA.String())
}
