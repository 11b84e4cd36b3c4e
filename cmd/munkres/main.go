// Command munkres solves rectangular assignment problems.
//
// With no -in flag it solves a set of built-in demo problems; otherwise it
// reads one problem document (JSON or CBOR, see internal/problemio) and
// writes the solution document to stdout.
package main

import (
	"flag"
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/munkres/hungarian"
	"github.com/katalvlaran/munkres/internal/problemio"
)

const usage = `Usage: munkres [flags]

Without -in, the built-in demo problems are solved and printed.

Flags:
`

type config struct {
	in       string
	inFormat string
	out      string
	mode     string
	colRed   bool
	eps      float64
	maxDim   int
	verbose  bool
	dump     bool
}

// demo is one built-in problem.
type demo struct {
	name string
	mode hungarian.Mode
	cost [][]float64
}

var demos = []demo{
	{"square 3x3", hungarian.Minimize, [][]float64{
		{1, 1, 3},
		{2, 4, 6},
		{3, 6, 9},
	}},
	{"wide 3x4", hungarian.Minimize, [][]float64{
		{3, 7, 5, 11},
		{5, 4, 6, 3},
		{6, 10, 1, 1},
	}},
	{"wide 3x4", hungarian.Maximize, [][]float64{
		{3, 7, 5, 11},
		{5, 4, 6, 3},
		{6, 10, 1, 1},
	}},
	{"tall 4x3", hungarian.Minimize, [][]float64{
		{3, 5, 6},
		{7, 4, 10},
		{5, 6, 1},
		{11, 3, 1},
	}},
	{"transport 8x10", hungarian.Minimize, [][]float64{
		{300, 290, 280, 290, 210, 300, 290, 280, 290, 210},
		{250, 310, 290, 300, 200, 250, 310, 290, 300, 200},
		{180, 190, 300, 190, 180, 180, 190, 300, 190, 180},
		{320, 180, 190, 240, 170, 320, 180, 190, 240, 170},
		{270, 210, 190, 250, 160, 270, 210, 190, 250, 160},
		{190, 200, 220, 190, 140, 190, 200, 220, 190, 140},
		{220, 300, 230, 180, 160, 220, 300, 230, 180, 160},
		{260, 190, 260, 210, 180, 260, 190, 260, 210, 180},
	}},
}

func main() {
	var cfg config
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, usage)
		flag.PrintDefaults()
	}
	flag.StringVar(&cfg.in, "in", "", "problem document to solve (.json or .cbor)")
	flag.StringVar(&cfg.inFormat, "format", "", "input format: json or cbor (default: from the file extension)")
	flag.StringVar(&cfg.out, "out", "json", "output format for -in: json or cbor")
	flag.StringVar(&cfg.mode, "mode", "", "override the document mode: min or max")
	flag.BoolVar(&cfg.colRed, "colreduce", hungarian.DefaultColumnReduction, "also subtract column minima before covering")
	flag.Float64Var(&cfg.eps, "eps", hungarian.DefaultEpsilon, "zero tolerance (0 = automatic)")
	flag.IntVar(&cfg.maxDim, "maxdim", hungarian.DefaultMaxDim, "reject problems with max(rows, cols) above this (0 = no limit)")
	flag.BoolVar(&cfg.verbose, "v", false, "log every phase transition")
	flag.BoolVar(&cfg.dump, "dump", false, "log the working matrix, marks and covers after every phase (implies -v)")
	flag.Parse()

	log := newLogger(os.Stderr, cfg)
	opts, err := cfg.options(log)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	if cfg.in == "" {
		if err = runDemos(os.Stdout, opts); err != nil {
			log.Error().Err(err).Msg("demo failed")
			os.Exit(1)
		}
		return
	}
	if err = runFile(os.Stdout, cfg, opts); err != nil {
		log.Error().Err(err).Str("in", cfg.in).Msg("solve failed")
		os.Exit(1)
	}
}

func newLogger(w io.Writer, cfg config) zerolog.Logger {
	level := zerolog.InfoLevel
	switch {
	case cfg.dump:
		level = zerolog.TraceLevel
	case cfg.verbose:
		level = zerolog.DebugLevel
	}

	return zerolog.New(zerolog.ConsoleWriter{Out: w}).Level(level).With().Timestamp().Logger()
}

// options validates the numeric flags before they reach the panicking
// option constructors.
func (cfg config) options(log zerolog.Logger) ([]hungarian.Option, error) {
	if cfg.eps < 0 || math.IsNaN(cfg.eps) || math.IsInf(cfg.eps, 0) {
		return nil, fmt.Errorf("-eps must be finite and >= 0, got %g", cfg.eps)
	}
	if cfg.maxDim < 0 {
		return nil, fmt.Errorf("-maxdim must be >= 0, got %d", cfg.maxDim)
	}

	return []hungarian.Option{
		hungarian.WithLogger(log),
		hungarian.WithColumnReduction(cfg.colRed),
		hungarian.WithEpsilon(cfg.eps),
		hungarian.WithMaxDim(cfg.maxDim),
	}, nil
}

func runDemos(w io.Writer, opts []hungarian.Option) error {
	for _, d := range demos {
		res, err := hungarian.Solve(d.cost, len(d.cost), len(d.cost[0]), d.mode, opts...)
		if err != nil {
			return fmt.Errorf("%s: %w", d.name, err)
		}
		fmt.Fprintf(w, "%s (%s)\n", d.name, d.mode)
		printMatrix(w, d.cost, res.Assignment)
		fmt.Fprintf(w, "cost: %g\nassignment: %v\n\n", res.Cost, res.Assignment)
	}

	return nil
}

// printMatrix prints cost with the assigned cell of each row bracketed.
func printMatrix(w io.Writer, cost [][]float64, assignment []int) {
	var sb strings.Builder
	for i, row := range cost {
		sb.Reset()
		for j, v := range row {
			if assignment[i] == j {
				fmt.Fprintf(&sb, "[%5g]", v)
			} else {
				fmt.Fprintf(&sb, " %5g ", v)
			}
		}
		fmt.Fprintln(w, sb.String())
	}
}

func runFile(w io.Writer, cfg config, opts []hungarian.Option) error {
	var (
		in  problemio.Format
		out problemio.Format
		err error
	)
	if cfg.inFormat != "" {
		in, err = problemio.ParseFormat(cfg.inFormat)
	} else {
		in, err = problemio.FormatFromPath(cfg.in)
	}
	if err != nil {
		return err
	}
	if out, err = problemio.ParseFormat(cfg.out); err != nil {
		return err
	}

	data, err := os.ReadFile(cfg.in)
	if err != nil {
		return err
	}
	p, err := problemio.Decode(data, in)
	if err != nil {
		return err
	}
	if cfg.mode != "" {
		if p.Mode, err = hungarian.ParseMode(cfg.mode); err != nil {
			return err
		}
	}

	s, err := p.Solve(opts...)
	if err != nil {
		return err
	}

	return problemio.Encode(w, out, s)
}
