package rbfnet

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestNewPoints(t *testing.T) {
	p, err := NewPoints(2, 3, []float64{1, 2, 3, 4, 5, 6})
	require.NoError(t, err)
	assert.Equal(t, []float64{4, 5, 6}, p.Row(1))
	assert.Equal(t, 3, p.Stride)

	_, err = NewPoints(2, 3, []float64{1, 2, 3, 4, 5})
	assert.True(t, IsDimensionMismatch(err))

	_, err = NewPoints(2, 3, make([]float64, 7))
	assert.True(t, IsDimensionMismatch(err), "extra elements are rejected for packed data")

	_, err = NewPoints(0, 0, nil)
	assert.True(t, IsDomainError(err))

	p0, err := NewPoints(0, 4, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, p0.Rows)

	_, err = NewPoints32(1, 2, []float32{1})
	assert.ErrorIs(t, err, ErrDimensionMismatch)

	// rows*cols wraps around to zero
	_, err = NewPoints(1<<32, 1<<32, nil)
	assert.True(t, IsDimensionMismatch(err), "overflowing shape: %v", err)
	_, err = NewPoints32(math.MaxInt, 2, nil)
	assert.True(t, IsDimensionMismatch(err), "overflowing shape: %v", err)
}

func TestValidateOverflow(t *testing.T) {
	tests := []struct {
		name string
		m    Points
	}{
		{"HugeStride", Points{Data: make([]float64, 8), Rows: 4, Cols: 2, Stride: 1 << 62}},
		{"StrideTimesRowsWraps", Points{Data: make([]float64, 8), Rows: 1 << 32, Cols: 2, Stride: 1 << 32}},
		{"MaxIntStride", Points{Data: make([]float64, 8), Rows: 2, Cols: 2, Stride: math.MaxInt}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.m.Validate()
			require.Error(t, err)
			assert.True(t, IsDimensionMismatch(err), "unexpected classification: %v", err)
		})
	}

	// A single row never multiplies the stride
	one := Points{Data: make([]float64, 2), Rows: 1, Cols: 2, Stride: math.MaxInt}
	assert.NoError(t, one.Validate())
}

func TestPointsFromRows(t *testing.T) {
	src := [][]float64{{1, 2}, {3, 4}, {5, 6}}
	p, err := PointsFromRows(src)
	require.NoError(t, err)
	assert.Equal(t, 3, p.Rows)
	assert.Equal(t, 2, p.Cols)
	assert.Equal(t, []float64{1, 2, 3, 4, 5, 6}, p.Data)

	// The input is copied
	src[0][0] = 100
	assert.Equal(t, 1.0, p.Row(0)[0])

	_, err = PointsFromRows([][]float64{{1, 2}, {3}})
	assert.True(t, IsDimensionMismatch(err))

	_, err = PointsFromRows(nil)
	assert.True(t, IsDomainError(err))
}

func TestPointsFromDense(t *testing.T) {
	m := mat.NewDense(3, 4, []float64{
		0, 1, 2, 3,
		4, 5, 6, 7,
		8, 9, 10, 11,
	})
	view := m.Slice(1, 3, 1, 3).(*mat.Dense)

	p := PointsFromDense(view)
	require.NoError(t, p.Validate())
	assert.Equal(t, 2, p.Rows)
	assert.Equal(t, 2, p.Cols)
	assert.Equal(t, 4, p.Stride)
	assert.Equal(t, []float64{5, 6}, p.Row(0))
	assert.Equal(t, []float64{9, 10}, p.Row(1))

	// Shares storage with the matrix
	m.Set(2, 2, -1)
	assert.Equal(t, -1.0, p.Row(1)[1])
}

func TestMatrixRowDoesNotExtend(t *testing.T) {
	p := Points{Data: []float64{1, 2, 9, 3, 4, 9}, Rows: 2, Cols: 2, Stride: 3}
	r := p.Row(0)
	assert.Len(t, r, 2)
	assert.Equal(t, 2, cap(r))

	packed := Points{Data: []float64{1, 2, 3, 4}, Rows: 2, Cols: 2}
	assert.Equal(t, []float64{3, 4}, packed.Row(1), "zero stride means packed rows")
}
