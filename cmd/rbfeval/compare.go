package main

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/LynnColeArt/rbfnet"
)

// comparisonResult holds one blocked-vs-reference run
type comparisonResult struct {
	Status string // "PASS" or "FAIL"

	ReferenceDuration time.Duration
	BlockedDuration   time.Duration
	SpeedupFactor     float64

	Verification rbfnet.VerificationResult
}

func (c *cli) runCompare(cmd *cobra.Command, _ []string) error {
	points, weights, err := c.generate()
	if err != nil {
		return err
	}

	ev := c.newEvaluator()
	comp, err := compare(ev, points, weights, c.opts.Bandwidth, rbfnet.KernelTolerance())
	logMetrics(c.logger, c.registry)
	if err != nil {
		return fmt.Errorf("evaluation failed: %w", err)
	}

	c.logger.Info().
		Str("status", comp.Status).
		Dur("reference", comp.ReferenceDuration).
		Dur("blocked", comp.BlockedDuration).
		Float64("speedup", comp.SpeedupFactor).
		Msg("Comparison complete")

	printSummary(cmd.OutOrStdout(), c.opts, comp)
	if comp.Status != "PASS" {
		return fmt.Errorf("blocked evaluator disagrees with reference in %d of %d outputs",
			comp.Verification.NumErrors, comp.Verification.TotalItems)
	}
	return nil
}

// compare times both implementations on the same inputs and verifies them
func compare(ev *rbfnet.Evaluator, points rbfnet.Points, weights []float64, bandwidth float64, tol rbfnet.ToleranceConfig) (comparisonResult, error) {
	start := time.Now()
	actual, err := ev.Evaluate(points, weights, bandwidth)
	if err != nil {
		return comparisonResult{}, err
	}
	blocked := time.Since(start)

	start = time.Now()
	expected := rbfnet.Reference{}.Evaluate(points, weights, bandwidth)
	reference := time.Since(start)

	comp := comparisonResult{
		ReferenceDuration: reference,
		BlockedDuration:   blocked,
		Verification:      rbfnet.VerifyArray(expected, actual, tol),
		Status:            "PASS",
	}
	if blocked > 0 {
		comp.SpeedupFactor = float64(reference) / float64(blocked)
	}
	if !comp.Verification.IsAcceptable() {
		comp.Status = "FAIL"
	}
	return comp, nil
}

func printSummary(w io.Writer, o options, comp comparisonResult) {
	fmt.Fprintln(w, "=== RBF Evaluator Comparison ===")
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Inputs: %s, N=%d, D=%d, bandwidth=%g, seed=%d\n", o.Inputs, o.N, o.D, o.Bandwidth, o.Seed)
	fmt.Fprintln(w)

	fmt.Fprintf(w, "%-10s %12s\n", "Impl", "Time (ms)")
	fmt.Fprintln(w, strings.Repeat("-", 23))
	fmt.Fprintf(w, "%-10s %12.3f\n", "reference", float64(comp.ReferenceDuration)/1e6)
	fmt.Fprintf(w, "%-10s %12.3f\n", "blocked", float64(comp.BlockedDuration)/1e6)
	fmt.Fprintf(w, "Speedup: %.2fx\n", comp.SpeedupFactor)
	fmt.Fprintln(w)

	fmt.Fprintln(w, comp.Verification.String())
}
