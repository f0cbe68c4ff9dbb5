// Package matrix_test exercises ValidateDistance against well-formed and
// malformed distance matrices, matching sentinels via errors.Is.
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/antcolony/matrix"
	"github.com/stretchr/testify/require"
)

// mustDense builds a Dense from rows, failing the test on shape errors.
func mustDense(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFromRows(rows)
	require.NoError(t, err)

	return m
}

// TestValidateDistanceOK accepts a well-formed asymmetric distance matrix.
func TestValidateDistanceOK(t *testing.T) {
	m := mustDense(t, [][]float64{
		{0, 2, 9},
		{3, 0, 4}, // asymmetry is allowed by design
		{9, 4, 0},
	})
	n, err := matrix.ValidateDistance(m)
	require.NoError(t, err)
	require.Equal(t, 3, n)
}

// TestValidateDistanceNil rejects a nil matrix.
func TestValidateDistanceNil(t *testing.T) {
	_, err := matrix.ValidateDistance(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestValidateDistanceNonSquare rejects rectangular matrices.
func TestValidateDistanceNonSquare(t *testing.T) {
	m := mustDense(t, [][]float64{
		{0, 1, 2},
		{1, 0, 3},
	})
	_, err := matrix.ValidateDistance(m)
	require.ErrorIs(t, err, matrix.ErrNonSquare)
}

// TestValidateDistanceTooSmall rejects order-1 matrices (n >= 2 required).
func TestValidateDistanceTooSmall(t *testing.T) {
	m := mustDense(t, [][]float64{{0}})
	_, err := matrix.ValidateDistance(m)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

// TestValidateDistanceDirtyDiagonal rejects a non-zero diagonal beyond DiagTol
// but tolerates sub-tolerance floating noise.
func TestValidateDistanceDirtyDiagonal(t *testing.T) {
	bad := mustDense(t, [][]float64{
		{0.5, 1},
		{1, 0},
	})
	_, err := matrix.ValidateDistance(bad)
	require.ErrorIs(t, err, matrix.ErrNonZeroDiagonal)

	noisy := mustDense(t, [][]float64{
		{matrix.DiagTol / 2, 1},
		{1, 0},
	})
	_, err = matrix.ValidateDistance(noisy)
	require.NoError(t, err)
}

// TestValidateDistanceNegative rejects negative off-diagonal entries.
func TestValidateDistanceNegative(t *testing.T) {
	m := mustDense(t, [][]float64{
		{0, -1},
		{1, 0},
	})
	_, err := matrix.ValidateDistance(m)
	require.ErrorIs(t, err, matrix.ErrNegativeWeight)
}

// TestValidateDistanceNaNInf rejects NaN and ±Inf entries anywhere.
func TestValidateDistanceNaNInf(t *testing.T) {
	withNaN := mustDense(t, [][]float64{
		{0, math.NaN()},
		{1, 0},
	})
	_, err := matrix.ValidateDistance(withNaN)
	require.ErrorIs(t, err, matrix.ErrNaNInf)

	withInf := mustDense(t, [][]float64{
		{0, math.Inf(1)},
		{1, 0},
	})
	_, err = matrix.ValidateDistance(withInf)
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}
