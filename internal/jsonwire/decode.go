// Package jsonwire holds the JSON wire-format details shared by the mapper
// and the CLI: whole-document decoding with json.Number preservation and
// deterministic, declaration-ordered encoding.
package jsonwire

import (
	"bytes"
	"errors"
	"io"

	json "github.com/goccy/go-json"
)

// ErrTrailingData reports extra content after the first JSON value.
var ErrTrailingData = errors.New("jsonwire: trailing data after first JSON value")

// DecodeDocument decodes exactly one JSON value from r. Numbers are preserved
// as json.Number; anything after the first value is rejected.
func DecodeDocument(r io.Reader) (any, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	if dec.More() {
		return nil, ErrTrailingData
	}
	return v, nil
}

// DecodeBytes decodes exactly one JSON value from b.
func DecodeBytes(b []byte) (any, error) {
	return DecodeDocument(bytes.NewReader(b))
}
