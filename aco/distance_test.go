package aco_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ringroute/aco"
)

// square3 returns a small valid symmetric matrix for reuse across tests.
func square3() [][]float64 {
	return [][]float64{
		{0, 1, 2},
		{1, 0, 3},
		{2, 3, 0},
	}
}

func TestNewDistanceMatrix_Valid(t *testing.T) {
	m, err := aco.NewDistanceMatrix(square3())
	require.NoError(t, err)
	assert.Equal(t, 3, m.Len())
	assert.True(t, m.Symmetric())

	c, err := m.Cost(1, 2)
	require.NoError(t, err)
	assert.Equal(t, 3.0, c)
}

func TestNewDistanceMatrix_RejectsNil(t *testing.T) {
	_, err := aco.NewDistanceMatrix(nil)
	assert.ErrorIs(t, err, aco.ErrNilMatrix)

	rows := square3()
	rows[1] = nil
	_, err = aco.NewDistanceMatrix(rows)
	assert.ErrorIs(t, err, aco.ErrNilMatrix)
}

func TestNewDistanceMatrix_RejectsNonSquare(t *testing.T) {
	rows := square3()
	rows[2] = []float64{2, 3} // ragged row
	_, err := aco.NewDistanceMatrix(rows)
	assert.ErrorIs(t, err, aco.ErrNonSquare)
}

func TestNewDistanceMatrix_RejectsTooFew(t *testing.T) {
	_, err := aco.NewDistanceMatrix([][]float64{{0, 1}, {1, 0}})
	assert.ErrorIs(t, err, aco.ErrTooFewWaypoints)
}

func TestNewDistanceMatrix_RejectsNegative(t *testing.T) {
	rows := square3()
	rows[0][2] = -0.5
	_, err := aco.NewDistanceMatrix(rows)
	assert.ErrorIs(t, err, aco.ErrNegativeWeight)
}

func TestNewDistanceMatrix_RejectsNonZeroDiagonal(t *testing.T) {
	rows := square3()
	rows[1][1] = 0.01
	_, err := aco.NewDistanceMatrix(rows)
	assert.ErrorIs(t, err, aco.ErrNonZeroDiagonal)
}

func TestNewDistanceMatrix_RejectsNaNInf(t *testing.T) {
	rows := square3()
	rows[0][1] = math.NaN()
	_, err := aco.NewDistanceMatrix(rows)
	assert.ErrorIs(t, err, aco.ErrNaNInf)

	rows = square3()
	rows[2][0] = math.Inf(1)
	_, err = aco.NewDistanceMatrix(rows)
	assert.ErrorIs(t, err, aco.ErrNaNInf)
}

func TestDistanceMatrix_AsymmetryDetected(t *testing.T) {
	rows := square3()
	rows[0][1] = 1.5 // one-way street: 0→1 longer than 1→0
	m, err := aco.NewDistanceMatrix(rows)
	require.NoError(t, err) // asymmetry is legal, just detected
	assert.False(t, m.Symmetric())
}

func TestDistanceMatrix_ImmutableAfterConstruction(t *testing.T) {
	rows := square3()
	m, err := aco.NewDistanceMatrix(rows)
	require.NoError(t, err)

	rows[0][1] = 999 // mutate the input after construction

	c, err := m.Cost(0, 1)
	require.NoError(t, err)
	assert.Equal(t, 1.0, c, "matrix must defensively copy its input")
}

func TestDistanceMatrix_CostOutOfRange(t *testing.T) {
	m, err := aco.NewDistanceMatrix(square3())
	require.NoError(t, err)

	_, err = m.Cost(-1, 0)
	assert.ErrorIs(t, err, aco.ErrIndexOutOfRange)
	_, err = m.Cost(0, 3)
	assert.ErrorIs(t, err, aco.ErrIndexOutOfRange)
}

func TestDistanceMatrix_Stats(t *testing.T) {
	m, err := aco.NewDistanceMatrix(square3())
	require.NoError(t, err)

	// Off-diagonal values: 1,2,1,3,2,3 → min 1, max 3, mean 2, median 2.
	s := m.Stats()
	assert.Equal(t, 1.0, s.Min)
	assert.Equal(t, 3.0, s.Max)
	assert.InDelta(t, 2.0, s.Mean, 1e-12)
	assert.InDelta(t, 2.0, s.Median, 1e-12)
	// Population stddev of {1,2,1,3,2,3}: sqrt(4/6·... ) = sqrt(2/3).
	assert.InDelta(t, math.Sqrt(2.0/3.0), s.StdDev, 1e-12)
}

func TestDistanceMatrix_NearestNeighbors(t *testing.T) {
	m, err := aco.NewDistanceMatrix(square3())
	require.NoError(t, err)

	nn, err := m.NearestNeighbors(0, 2)
	require.NoError(t, err)
	require.Len(t, nn, 2)
	assert.Equal(t, 1, nn[0].Index)
	assert.Equal(t, 1.0, nn[0].Cost)
	assert.Equal(t, 2, nn[1].Index)
	assert.Equal(t, 2.0, nn[1].Cost)

	// k larger than n-1 is clamped, self excluded.
	nn, err = m.NearestNeighbors(1, 10)
	require.NoError(t, err)
	assert.Len(t, nn, 2)

	// k ≤ 0 yields an empty slice, not an error.
	nn, err = m.NearestNeighbors(2, 0)
	require.NoError(t, err)
	assert.Empty(t, nn)

	_, err = m.NearestNeighbors(5, 1)
	assert.ErrorIs(t, err, aco.ErrIndexOutOfRange)
}
