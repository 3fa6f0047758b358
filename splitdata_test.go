package gmdh

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestSplitDatasetRowContiguousWithoutShuffle(t *testing.T) {
	x := mat.NewDense(4, 1, []float64{1, 2, 3, 4})
	y := []float64{10, 20, 30, 40}

	split := SplitDataset(x, y, 0.5, false, 0)

	assert.Equal(t, []float64{10, 20}, split.YTrain)
	assert.Equal(t, []float64{30, 40}, split.YTest)
}

func TestSplitDatasetShuffleIsDeterministicForASeed(t *testing.T) {
	x := mat.NewDense(6, 1, []float64{1, 2, 3, 4, 5, 6})
	y := []float64{1, 2, 3, 4, 5, 6}

	a := SplitDataset(x, y, 0.5, true, 42)
	b := SplitDataset(x, y, 0.5, true, 42)

	assert.Equal(t, a.YTrain, b.YTrain)
	assert.Equal(t, a.YTest, b.YTest)
}

func TestTimeSeriesTransformation(t *testing.T) {
	v := []float64{1, 2, 3, 4, 5}
	x, y, err := TimeSeriesTransformation(v, 2)
	require.NoError(t, err)

	r, c := x.Dims()
	assert.Equal(t, 3, r)
	assert.Equal(t, 2, c)
	assert.Equal(t, []float64{3, 4, 5}, y)
	assert.Equal(t, 1.0, x.At(0, 0))
	assert.Equal(t, 2.0, x.At(0, 1))
}

func TestTimeSeriesTransformationRejectsBadLags(t *testing.T) {
	_, _, err := TimeSeriesTransformation([]float64{1, 2, 3}, 0)
	require.Error(t, err)

	_, _, err = TimeSeriesTransformation([]float64{1, 2, 3}, 5)
	require.Error(t, err)

	_, _, err = TimeSeriesTransformation(nil, 1)
	require.Error(t, err)
}
