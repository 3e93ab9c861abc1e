package rbfnet

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/LynnColeArt/rbfnet/compute"
)

// Float is the set of element types an evaluation can run on.
type Float = compute.Float

// Matrix is a read-only row-major view of N points in D dimensions.
// Row i occupies Data[i*Stride : i*Stride+Cols]. A zero Stride means
// the rows are packed (Stride == Cols).
type Matrix[T Float] struct {
	Data   []T
	Rows   int
	Cols   int
	Stride int
}

// Points is a double precision point matrix.
type Points = Matrix[float64]

// Points32 is a single precision point matrix.
type Points32 = Matrix[float32]

// NewPoints wraps packed row-major data as a rows×cols point matrix.
// The slice is not copied.
func NewPoints(rows, cols int, data []float64) (Points, error) {
	return newMatrix(rows, cols, data)
}

// NewPoints32 is NewPoints for single precision data.
func NewPoints32(rows, cols int, data []float32) (Points32, error) {
	return newMatrix(rows, cols, data)
}

func newMatrix[T Float](rows, cols int, data []T) (Matrix[T], error) {
	m := Matrix[T]{Data: data, Rows: rows, Cols: cols, Stride: cols}
	if cols > 0 && rows > math.MaxInt/cols {
		return Matrix[T]{}, NewDimensionMismatchError("NewPoints",
			fmt.Sprintf("%d×%d elements overflow int", rows, cols))
	}
	if err := m.validate("NewPoints"); err != nil {
		return Matrix[T]{}, err
	}
	if len(data) != rows*cols {
		return Matrix[T]{}, NewDimensionMismatchError("NewPoints",
			fmt.Sprintf("data has %d elements, want %d×%d=%d", len(data), rows, cols, rows*cols))
	}
	return m, nil
}

// PointsFromRows copies a slice of equal-length rows into a packed matrix.
func PointsFromRows(rows [][]float64) (Points, error) {
	if len(rows) == 0 {
		return Points{}, NewDomainError("PointsFromRows", "dimension unknown for empty input")
	}
	d := len(rows[0])
	data := make([]float64, 0, len(rows)*d)
	for i, r := range rows {
		if len(r) != d {
			return Points{}, NewDimensionMismatchError("PointsFromRows",
				fmt.Sprintf("row %d has %d columns, row 0 has %d", i, len(r), d))
		}
		data = append(data, r...)
	}
	return NewPoints(len(rows), d, data)
}

// PointsFromDense returns a view of m sharing its backing storage.
// Sub-matrix views keep their parent's stride.
func PointsFromDense(m *mat.Dense) Points {
	raw := m.RawMatrix()
	return Points{Data: raw.Data, Rows: raw.Rows, Cols: raw.Cols, Stride: raw.Stride}
}

func (m Matrix[T]) stride() int {
	if m.Stride == 0 {
		return m.Cols
	}
	return m.Stride
}

// Row returns point i. The returned slice aliases the matrix.
func (m Matrix[T]) Row(i int) []T {
	off := i * m.stride()
	return m.Data[off : off+m.Cols : off+m.Cols]
}

// Validate checks that the view describes a usable N×D matrix.
func (m Matrix[T]) Validate() error {
	return m.validate("Validate")
}

func (m Matrix[T]) validate(op string) error {
	if m.Cols < 1 {
		return NewDomainError(op, fmt.Sprintf("dimension must be at least 1, got %d", m.Cols))
	}
	if m.Rows < 0 {
		return NewDimensionMismatchError(op, fmt.Sprintf("negative row count %d", m.Rows))
	}
	if m.stride() < m.Cols {
		return NewDimensionMismatchError(op,
			fmt.Sprintf("stride %d shorter than row length %d", m.Stride, m.Cols))
	}
	if m.Rows == 0 {
		return nil
	}
	// The last row must end inside an addressable slice
	if m.Rows > 1 && m.stride() > (math.MaxInt-m.Cols)/(m.Rows-1) {
		return NewDimensionMismatchError(op,
			fmt.Sprintf("%d rows with stride %d overflow int", m.Rows, m.stride()))
	}
	if need := (m.Rows-1)*m.stride() + m.Cols; len(m.Data) < need {
		return NewDimensionMismatchError(op,
			fmt.Sprintf("backing slice has %d elements, %d×%d with stride %d needs %d",
				len(m.Data), m.Rows, m.Cols, m.stride(), need))
	}
	return nil
}
