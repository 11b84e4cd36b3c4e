// Package problemio reads assignment problems and writes their solutions.
//
// Two encodings are supported:
//
//   - JSON, decoded with gjson so that numbers, strings and shapes can be
//     checked field by field with precise error messages;
//   - CBOR, for compact machine-to-machine exchange.
//
// Every document carries a semantic version. Documents from another major
// version are rejected; an absent version means FormatVersion.
//
// A problem document looks like:
//
//	{
//	  "version": "1.0.0",
//	  "mode": "minimize",          // or "maximize", or 0 / 1
//	  "rows": 3, "cols": 4,        // optional, default to the shape of cost
//	  "cost": [[3, 7, 5, 11], [5, 4, 6, 3], [6, 10, 1, 1]]
//	}
package problemio

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/blang/semver/v4"

	"github.com/katalvlaran/munkres/hungarian"
)

// FormatVersion is the document version written by this package.
const FormatVersion = "1.0.0"

var (
	// ErrBadDocument is returned for syntactically or structurally invalid documents.
	ErrBadDocument = errors.New("problemio: bad document")

	// ErrUnsupportedVersion is returned for documents of another major version.
	ErrUnsupportedVersion = errors.New("problemio: unsupported document version")

	// ErrUnknownFormat is returned for an unrecognized encoding name or extension.
	ErrUnknownFormat = errors.New("problemio: unknown format")
)

// currentVersion is FormatVersion parsed once.
var currentVersion = semver.MustParse(FormatVersion)

// Format selects the document encoding.
type Format int

const (
	// JSON is the default, human-editable encoding.
	JSON Format = iota

	// CBOR is the binary encoding (RFC 8949).
	CBOR
)

// String returns the canonical name of f.
func (f Format) String() string {
	switch f {
	case JSON:
		return "json"
	case CBOR:
		return "cbor"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// ParseFormat maps "json" / "cbor" (any case) to a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json":
		return JSON, nil
	case "cbor":
		return CBOR, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// FormatFromPath picks the format from a file extension (.json, .cbor).
func FormatFromPath(path string) (Format, error) {
	return ParseFormat(strings.TrimPrefix(filepath.Ext(path), "."))
}

// Problem is one decoded assignment problem.
type Problem struct {
	Version string         `json:"version" cbor:"version"`
	Mode    hungarian.Mode `json:"mode" cbor:"mode"`
	Rows    int            `json:"rows" cbor:"rows"`
	Cols    int            `json:"cols" cbor:"cols"`
	Cost    [][]float64    `json:"cost" cbor:"cost"`
}

// NewProblem builds a Problem for cost with the current version and the
// shape taken from cost.
func NewProblem(cost [][]float64, mode hungarian.Mode) Problem {
	p := Problem{Version: FormatVersion, Mode: mode, Rows: len(cost), Cost: cost}
	if len(cost) > 0 {
		p.Cols = len(cost[0])
	}

	return p
}

// Solve runs the solver on p. Shape and mode problems surface as the
// hungarian sentinels.
func (p Problem) Solve(opts ...hungarian.Option) (Solution, error) {
	res, err := hungarian.Solve(p.Cost, p.Rows, p.Cols, p.Mode, opts...)
	if err != nil {
		return Solution{}, err
	}

	return Solution{
		Version:    FormatVersion,
		Mode:       p.Mode.String(),
		Cost:       res.Cost,
		Assignment: res.Assignment,
		Stats:      res.Stats,
	}, nil
}

// Solution is the document written for a solved problem.
type Solution struct {
	Version    string          `json:"version" cbor:"version"`
	Mode       string          `json:"mode" cbor:"mode"`
	Cost       float64         `json:"cost" cbor:"cost"`
	Assignment []int           `json:"assignment" cbor:"assignment"`
	Stats      hungarian.Stats `json:"stats" cbor:"stats"`
}

// checkVersion accepts an empty version or any version with the current major.
func checkVersion(v string) (string, error) {
	if v == "" {
		return FormatVersion, nil
	}
	parsed, err := semver.ParseTolerant(v)
	if err != nil {
		return "", fmt.Errorf("%w: version %q: %w", ErrBadDocument, v, err)
	}
	if parsed.Major != currentVersion.Major {
		return "", fmt.Errorf("%w: %s (supported %d.x)", ErrUnsupportedVersion, parsed, currentVersion.Major)
	}

	return parsed.String(), nil
}

// Decode reads a problem in format f.
func Decode(data []byte, f Format) (Problem, error) {
	switch f {
	case JSON:
		return DecodeJSON(data)
	case CBOR:
		return DecodeCBOR(data)
	default:
		return Problem{}, fmt.Errorf("%w: %s", ErrUnknownFormat, f)
	}
}
