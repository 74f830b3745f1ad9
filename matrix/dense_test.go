// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hmmtag/matrix"
)

// TestNewDense_Dimensions rejects empty shapes.
func TestNewDense_Dimensions(t *testing.T) {
	for _, sh := range [][2]int{{0, 1}, {1, 0}, {-1, 3}} {
		_, err := matrix.NewDense(sh[0], sh[1])
		assert.ErrorIs(t, err, matrix.ErrInvalidDimensions, "shape %v", sh)
	}

	m, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	r, c := m.Shape()
	assert.Equal(t, 2, r)
	assert.Equal(t, 3, c)
	assert.Equal(t, "[0, 0, 0]\n[0, 0, 0]\n", m.String())
}

// TestDense_AtSet covers bounds and the strict numeric policy.
func TestDense_AtSet(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)

	require.NoError(t, m.Set(1, 0, 0.25))
	v, err := m.At(1, 0)
	require.NoError(t, err)
	assert.Equal(t, 0.25, v)

	_, err = m.At(2, 0)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)
	assert.Contains(t, err.Error(), "Dense.At(2,0)")
	assert.ErrorIs(t, m.Set(0, -1, 1), matrix.ErrOutOfRange)
	assert.ErrorIs(t, m.Set(0, 0, math.NaN()), matrix.ErrNaNInf)
	assert.ErrorIs(t, m.Set(0, 0, math.Inf(-1)), matrix.ErrNaNInf)
}

// TestDense_RowSharesStorage verifies the no-copy fast path.
func TestDense_RowSharesStorage(t *testing.T) {
	m, err := matrix.NewDense(2, 3)
	require.NoError(t, err)

	row := m.Row(1)
	require.Len(t, row, 3)
	row[2] = 7
	v, err := m.At(1, 2)
	require.NoError(t, err)
	assert.Equal(t, 7.0, v)

	_ = append(m.Row(0), 1)
	assert.Equal(t, []float64{0, 0, 0}, m.Row(0))
	assert.Equal(t, []float64{0, 0, 7}, m.Row(1), "append on row 0 must not spill into row 1")
}

// TestDense_Apply covers the log transform under both policies.
func TestDense_Apply(t *testing.T) {
	lg := func(_, _ int, v float64) float64 { return math.Log(v) }

	strict, err := matrix.NewDense(1, 2)
	require.NoError(t, err)
	require.NoError(t, strict.Set(0, 1, 1))
	assert.ErrorIs(t, strict.Apply(lg), matrix.ErrNaNInf, "ln 0 is -Inf")

	loose, err := matrix.NewDense(1, 2, matrix.WithValidateNaNInf(false))
	require.NoError(t, err)
	require.NoError(t, loose.Set(0, 0, math.Inf(-1)))
	require.NoError(t, loose.Set(0, 1, math.E))
	require.NoError(t, loose.Apply(func(_, _ int, v float64) float64 { return v * 2 }))
	assert.True(t, math.IsInf(loose.Row(0)[0], -1))
	assert.Equal(t, 2*math.E, loose.Row(0)[1])
}
