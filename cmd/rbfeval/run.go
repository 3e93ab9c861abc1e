package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/LynnColeArt/rbfnet"
	"github.com/LynnColeArt/rbfnet/internal/inputgen"
)

// generate builds the inputs described by the resolved options
func (c *cli) generate() (rbfnet.Points, []float64, error) {
	gen, err := inputgen.ByName(c.opts.Inputs, c.opts.Seed)
	if err != nil {
		return rbfnet.Points{}, nil, err
	}
	points, weights, err := gen.Generate(c.opts.N, c.opts.D)
	if err != nil {
		return rbfnet.Points{}, nil, fmt.Errorf("generating %s inputs: %w", gen.Name(), err)
	}
	c.logger.Debug().
		Str("inputs", gen.Name()).
		Uint64("seed", c.opts.Seed).
		Int("n", c.opts.N).
		Int("d", c.opts.D).
		Msg("Generated inputs")
	return points, weights, nil
}

func (c *cli) runEvaluate(cmd *cobra.Command, _ []string) error {
	points, weights, err := c.generate()
	if err != nil {
		return err
	}

	ev := c.newEvaluator()
	start := time.Now()
	out, err := ev.Evaluate(points, weights, c.opts.Bandwidth)
	logMetrics(c.logger, c.registry)
	if err != nil {
		return fmt.Errorf("evaluation failed: %w", err)
	}
	elapsed := time.Since(start)

	c.logger.Info().
		Int("n", points.Rows).
		Int("d", points.Cols).
		Float64("bandwidth", c.opts.Bandwidth).
		Dur("elapsed", elapsed).
		Msg("Evaluation complete")

	w := cmd.OutOrStdout()
	switch {
	case len(out) == 0:
		fmt.Fprintln(w, "(no points)")
	case c.opts.Print == "all":
		for i, v := range out {
			fmt.Fprintf(w, "%d\t%f\n", i, v)
		}
	default:
		fmt.Fprintf(w, "%f\n", out[0])
	}
	return nil
}
