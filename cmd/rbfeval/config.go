package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"github.com/LynnColeArt/rbfnet"
)

// options is everything a run or compare needs. It is filled from the
// defaults, then the YAML file, then any flag set on the command line.
type options struct {
	N           int     `yaml:"n"`
	D           int     `yaml:"d"`
	Bandwidth   float64 `yaml:"bandwidth"`
	Seed        uint64  `yaml:"seed"`
	Inputs      string  `yaml:"inputs"`
	Workers     int     `yaml:"workers"`
	RowBlock    int     `yaml:"row_block"`
	CheckFinite bool    `yaml:"check_finite"`
	Print       string  `yaml:"print"`
	LogLevel    string  `yaml:"log_level"`
}

// 1000 points in 5 dimensions with bandwidth 10
func defaultOptions() options {
	return options{
		N:         1000,
		D:         5,
		Bandwidth: 10,
		Inputs:    "uniform",
		Print:     "first",
		LogLevel:  "info",
	}
}

// loadFile overlays the keys present in a YAML file onto o
func loadFile(path string, o *options) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config: %w", err)
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(o); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("parsing config %s: %w", path, err)
	}
	return nil
}

// bindEvalFlags registers the evaluation flags on fs, writing into dst
func bindEvalFlags(fs *pflag.FlagSet, dst *options) {
	def := defaultOptions()
	fs.IntVar(&dst.N, "n", def.N, "number of points")
	fs.IntVar(&dst.D, "d", def.D, "point dimension")
	fs.Float64Var(&dst.Bandwidth, "bandwidth", def.Bandwidth, "kernel bandwidth (theta)")
	fs.Uint64Var(&dst.Seed, "seed", def.Seed, "seed for the uniform generator")
	fs.StringVar(&dst.Inputs, "inputs", def.Inputs, "input generator: uniform or ones")
	fs.IntVar(&dst.Workers, "workers", def.Workers, "worker goroutines (0 = GOMAXPROCS)")
	fs.IntVar(&dst.RowBlock, "row-block", def.RowBlock, "rows per block (0 = derive from cache size)")
	fs.BoolVar(&dst.CheckFinite, "check-finite", def.CheckFinite, "reject NaN/Inf inputs")
	fs.StringVar(&dst.Print, "print", def.Print, "what to print: first or all")
}

// resolve builds the effective options: defaults < file < explicit flags
func resolve(fs *pflag.FlagSet, configPath string, flagVals options) (options, error) {
	o := defaultOptions()
	if configPath != "" {
		if err := loadFile(configPath, &o); err != nil {
			return options{}, err
		}
	}

	fs.Visit(func(f *pflag.Flag) {
		switch f.Name {
		case "n":
			o.N = flagVals.N
		case "d":
			o.D = flagVals.D
		case "bandwidth":
			o.Bandwidth = flagVals.Bandwidth
		case "seed":
			o.Seed = flagVals.Seed
		case "inputs":
			o.Inputs = flagVals.Inputs
		case "workers":
			o.Workers = flagVals.Workers
		case "row-block":
			o.RowBlock = flagVals.RowBlock
		case "check-finite":
			o.CheckFinite = flagVals.CheckFinite
		case "print":
			o.Print = flagVals.Print
		case "log-level":
			o.LogLevel = flagVals.LogLevel
		}
	})

	if o.Print != "first" && o.Print != "all" {
		return options{}, fmt.Errorf("invalid --print %q (want first or all)", o.Print)
	}
	return o, nil
}

// evaluatorConfig maps options onto the library configuration
func (o options) evaluatorConfig(logger zerolog.Logger) rbfnet.Config {
	cfg := rbfnet.DefaultConfig()
	cfg.Workers = o.Workers
	cfg.RowBlock = o.RowBlock
	cfg.CheckFinite = o.CheckFinite
	cfg.Logger = logger
	return cfg
}
