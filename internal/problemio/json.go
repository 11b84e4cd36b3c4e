package problemio

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/tidwall/gjson"

	"github.com/katalvlaran/munkres/hungarian"
)

// DecodeJSON parses a JSON problem document.
//
// Errors:
//   - ErrBadDocument for invalid JSON, a missing or non-array cost, a
//     non-numeric cell, or non-integer rows/cols.
//   - ErrUnsupportedVersion for another major version.
//   - hungarian.ErrInvalidMode for an unknown mode name.
//
// Shape consistency between rows/cols and cost is left to the solver.
func DecodeJSON(data []byte) (Problem, error) {
	if !gjson.ValidBytes(data) {
		return Problem{}, fmt.Errorf("%w: invalid JSON", ErrBadDocument)
	}
	doc := gjson.ParseBytes(data)
	if !doc.IsObject() {
		return Problem{}, fmt.Errorf("%w: top level must be an object", ErrBadDocument)
	}

	var (
		p   Problem
		err error
	)
	if p.Version, err = checkVersion(doc.Get("version").String()); err != nil {
		return Problem{}, err
	}
	if p.Mode, err = jsonMode(doc.Get("mode")); err != nil {
		return Problem{}, err
	}
	if p.Cost, err = jsonCost(doc.Get("cost")); err != nil {
		return Problem{}, err
	}

	p.Rows = len(p.Cost)
	if len(p.Cost) > 0 {
		p.Cols = len(p.Cost[0])
	}
	if p.Rows, err = jsonDim(doc.Get("rows"), "rows", p.Rows); err != nil {
		return Problem{}, err
	}
	if p.Cols, err = jsonDim(doc.Get("cols"), "cols", p.Cols); err != nil {
		return Problem{}, err
	}

	return p, nil
}

// jsonMode accepts a mode name, a number, or nothing (Minimize).
func jsonMode(v gjson.Result) (hungarian.Mode, error) {
	switch v.Type {
	case gjson.Null:
		return hungarian.Minimize, nil
	case gjson.String:
		return hungarian.ParseMode(v.Str)
	case gjson.Number:
		if v.Num != float64(int(v.Num)) {
			return 0, fmt.Errorf("%w: mode %s is not an integer", ErrBadDocument, v.Raw)
		}
		return hungarian.Mode(int(v.Num)), nil // range is the solver's call
	default:
		return 0, fmt.Errorf("%w: mode must be a string or number", ErrBadDocument)
	}
}

// jsonCost reads an array of numeric arrays. Rows may be ragged here.
func jsonCost(v gjson.Result) ([][]float64, error) {
	if !v.Exists() {
		return nil, fmt.Errorf("%w: missing cost", ErrBadDocument)
	}
	if !v.IsArray() {
		return nil, fmt.Errorf("%w: cost must be an array", ErrBadDocument)
	}

	var (
		rows = v.Array()
		out  = make([][]float64, len(rows))
	)
	for i, row := range rows {
		if !row.IsArray() {
			return nil, fmt.Errorf("%w: cost[%d] must be an array", ErrBadDocument, i)
		}
		cells := row.Array()
		out[i] = make([]float64, len(cells))
		for j, cell := range cells {
			if cell.Type != gjson.Number {
				return nil, fmt.Errorf("%w: cost[%d][%d] = %s is not a number", ErrBadDocument, i, j, cell.Raw)
			}
			out[i][j] = cell.Num
		}
	}

	return out, nil
}

// jsonDim reads an optional non-negative integer, defaulting to def.
func jsonDim(v gjson.Result, name string, def int) (int, error) {
	if !v.Exists() {
		return def, nil
	}
	if v.Type != gjson.Number || v.Num != float64(int(v.Num)) {
		return 0, fmt.Errorf("%w: %s must be an integer", ErrBadDocument, name)
	}

	return int(v.Num), nil
}

// EncodeJSON writes s as indented JSON followed by a newline.
func EncodeJSON(w io.Writer, s Solution) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(s)
}
