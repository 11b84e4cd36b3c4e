package problemio

import (
	"fmt"
	"io"

	"github.com/fxamacker/cbor/v2"
)

// encMode emits deterministic (core deterministic encoding) CBOR so equal
// solutions produce equal bytes.
var encMode = func() cbor.EncMode {
	em, err := cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic(err)
	}

	return em
}()

// DecodeCBOR parses a CBOR problem document.
//
// Errors: ErrBadDocument for undecodable input, ErrUnsupportedVersion for
// another major version.
func DecodeCBOR(data []byte) (Problem, error) {
	var p Problem
	if err := cbor.Unmarshal(data, &p); err != nil {
		return Problem{}, fmt.Errorf("%w: %w", ErrBadDocument, err)
	}
	v, err := checkVersion(p.Version)
	if err != nil {
		return Problem{}, err
	}
	p.Version = v

	return p, nil
}

// EncodeProblemCBOR returns the CBOR encoding of p.
func EncodeProblemCBOR(p Problem) ([]byte, error) {
	return encMode.Marshal(p)
}

// EncodeCBOR writes s as CBOR.
func EncodeCBOR(w io.Writer, s Solution) error {
	return encMode.NewEncoder(w).Encode(s)
}

// Encode writes s in format f.
func Encode(w io.Writer, f Format, s Solution) error {
	switch f {
	case JSON:
		return EncodeJSON(w, s)
	case CBOR:
		return EncodeCBOR(w, s)
	default:
		return fmt.Errorf("%w: %s", ErrUnknownFormat, f)
	}
}

// DecodeSolutionCBOR parses a CBOR solution document.
func DecodeSolutionCBOR(data []byte) (Solution, error) {
	var s Solution
	if err := cbor.Unmarshal(data, &s); err != nil {
		return Solution{}, fmt.Errorf("%w: %w", ErrBadDocument, err)
	}
	if _, err := checkVersion(s.Version); err != nil {
		return Solution{}, err
	}

	return s, nil
}
