// Package codec reads and writes DFA documents. Documents are plain data in
// JSON, YAML or CBOR; decoding never evaluates input and every decoded
// definition is validated before it is returned.
package codec

import (
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/fxamacker/cbor/v2"
	"gopkg.in/yaml.v3"

	"github.com/geange/dfamin"
)

// Format names a document encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatCBOR Format = "cbor"
)

// ParseFormat maps a format name to a Format.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "cbor":
		return FormatCBOR, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, name)
	}
}

// FormatFromPath picks a Format from the extension of path.
func FormatFromPath(path string) (Format, error) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return "", fmt.Errorf("%w: %q has no extension", ErrUnknownFormat, path)
	}
	return ParseFormat(ext)
}

var cborDecMode = func() cbor.DecMode {
	dm, err := cbor.DecOptions{
		DupMapKey:         cbor.DupMapKeyEnforcedAPF,
		ExtraReturnErrors: cbor.ExtraDecErrorUnknownField,
	}.DecMode()
	if err != nil {
		panic(err)
	}
	return dm
}()

var cborEncMode = func() cbor.EncMode {
	em, err := cbor.EncOptions{
		// Make sure that maps have ordered keys
		Sort: cbor.SortCoreDeterministic,
	}.EncMode()
	if err != nil {
		panic(err)
	}
	return em
}()

// DecodeDefinition reads a raw definition from r without validating it.
func DecodeDefinition(r io.Reader, f Format) (dfamin.Definition, error) {
	var def dfamin.Definition
	var err error
	switch f {
	case FormatJSON:
		err = decodeJSON(r, &def)
	case FormatYAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		err = dec.Decode(&def)
	case FormatCBOR:
		err = cborDecMode.NewDecoder(r).Decode(&def)
	default:
		return def, fmt.Errorf("%w: %q", ErrUnknownFormat, f)
	}
	if err != nil {
		return dfamin.Definition{}, &ParseError{Format: f, Err: err}
	}
	return def, nil
}

// Decode reads and validates a DFA from r.
func Decode(r io.Reader, f Format) (*dfamin.DFA, error) {
	def, err := DecodeDefinition(r, f)
	if err != nil {
		return nil, err
	}
	return dfamin.NewDFA(def)
}

// Encode writes d to w.
func Encode(w io.Writer, d *dfamin.DFA, f Format) error {
	def := d.Definition()
	switch f {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(def)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(def); err != nil {
			return err
		}
		return enc.Close()
	case FormatCBOR:
		return cborEncMode.NewEncoder(w).Encode(def)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, f)
	}
}
