package rbfnet

import (
	"time"
	"unsafe"

	"gonum.org/v1/gonum/mat"
)

// Evaluator runs kernel evaluations with a fixed Config.
type Evaluator struct {
	cfg Config
}

var defaultEvaluator = NewEvaluator(DefaultConfig())

// NewEvaluator creates an evaluator. The config is copied.
func NewEvaluator(cfg Config) *Evaluator {
	return &Evaluator{cfg: cfg}
}

// Config returns the evaluator's configuration.
func (e *Evaluator) Config() Config {
	return e.cfg
}

// Evaluate computes the network response at every point using the default
// evaluator.
func Evaluate(points Points, weights []float64, bandwidth float64) ([]float64, error) {
	return defaultEvaluator.Evaluate(points, weights, bandwidth)
}

// Evaluate32 is Evaluate for single precision inputs.
func Evaluate32(points Points32, weights []float32, bandwidth float32) ([]float32, error) {
	return defaultEvaluator.Evaluate32(points, weights, bandwidth)
}

// EvaluateDense is Evaluate for gonum matrices.
func EvaluateDense(points *mat.Dense, weights *mat.VecDense, bandwidth float64) (*mat.VecDense, error) {
	return defaultEvaluator.EvaluateDense(points, weights, bandwidth)
}

// Evaluate computes out[i] = Σ_j weights[j]·exp(-‖p_i − p_j‖²/bandwidth).
//
// It fails with a DimensionMismatch error when points.Rows != len(weights)
// and with a Domain error when bandwidth is not finite and positive or D < 1.
// With Config.CheckFinite set, NaN or Inf inputs fail with NumericAnomaly.
// On failure the returned slice is nil and no work has been done.
func (e *Evaluator) Evaluate(points Points, weights []float64, bandwidth float64) ([]float64, error) {
	return evaluate(e, "Evaluate", points, weights, bandwidth)
}

// Evaluate32 is Evaluate for single precision inputs. Sums are carried in
// double precision and rounded once per output.
func (e *Evaluator) Evaluate32(points Points32, weights []float32, bandwidth float32) ([]float32, error) {
	return evaluate(e, "Evaluate32", points, weights, bandwidth)
}

// EvaluateDense evaluates the rows of a gonum matrix. The matrix is read in
// place; the weights are copied out of the vector.
func (e *Evaluator) EvaluateDense(points *mat.Dense, weights *mat.VecDense, bandwidth float64) (*mat.VecDense, error) {
	if points == nil || weights == nil {
		return nil, NewDomainError("EvaluateDense", "nil matrix or vector")
	}
	w := make([]float64, weights.Len())
	for i := range w {
		w[i] = weights.AtVec(i)
	}

	out, err := evaluate(e, "EvaluateDense", PointsFromDense(points), w, bandwidth)
	if err != nil {
		return nil, err
	}
	return mat.NewVecDense(len(out), out), nil
}

func evaluate[T Float](e *Evaluator, op string, points Matrix[T], weights []T, bandwidth T) ([]T, error) {
	start := time.Now()
	var zero T
	elemSize := int(unsafe.Sizeof(zero))
	precision := precisionLabel(elemSize)
	log := e.cfg.Logger

	if err := validate(op, points, weights, bandwidth, e.cfg.CheckFinite); err != nil {
		log.Warn().Err(err).Str("op", op).Msg("Evaluation rejected")
		e.cfg.Metrics.observeError(precision, err)
		return nil, err
	}

	n := points.Rows
	out := make([]T, n)
	if n == 0 {
		e.cfg.Metrics.observe(precision, 0, time.Since(start))
		return out, nil
	}

	workers := e.cfg.workers()
	rowBlock, blocks := schedule(n, points.Cols, elemSize, workers, e.cfg.RowBlock)
	tile := ColumnTileSize(points.Cols, elemSize)
	bw := float64(bandwidth)

	log.Debug().
		Str("op", op).
		Str("precision", precision).
		Int("n", n).
		Int("d", points.Cols).
		Int("row_block", rowBlock).
		Int("column_tile", tile).
		Int("blocks", blocks).
		Int("workers", min(workers, blocks)).
		Msg("Dispatching evaluation")

	forEachBlock(n, rowBlock, workers, func(lo, hi int) {
		evalBlock(points, weights, bw, tile, lo, hi, out)
	})

	e.cfg.Metrics.observe(precision, n, time.Since(start))
	return out, nil
}

func precisionLabel(elemSize int) string {
	if elemSize == 4 {
		return "float32"
	}
	return "float64"
}
