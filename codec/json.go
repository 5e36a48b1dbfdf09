package codec

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
)

type jsonFrame struct {
	// keys is nil for arrays.
	keys      map[string]struct{}
	expectKey bool
}

// checkDuplicateKeys walks the first JSON value in data and fails on any
// object that names the same key twice.
func checkDuplicateKeys(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	var stack []*jsonFrame
	for {
		tok, err := dec.Token()
		if err != nil {
			if err == io.EOF {
				err = io.ErrUnexpectedEOF
			}
			return err
		}

		var top *jsonFrame
		if len(stack) > 0 {
			top = stack[len(stack)-1]
		}

		if delim, ok := tok.(json.Delim); ok && (delim == '}' || delim == ']') {
			stack = stack[:len(stack)-1]
			if len(stack) == 0 {
				return nil
			}
			continue
		}

		if top != nil && top.keys != nil {
			if top.expectKey {
				key := tok.(string)
				if _, dup := top.keys[key]; dup {
					return fmt.Errorf("duplicate key %q at offset %d", key, dec.InputOffset())
				}
				top.keys[key] = struct{}{}
				top.expectKey = false
				continue
			}
			top.expectKey = true
		}

		switch tok {
		case json.Delim('{'):
			stack = append(stack, &jsonFrame{keys: make(map[string]struct{}), expectKey: true})
		case json.Delim('['):
			stack = append(stack, &jsonFrame{})
		default:
			if len(stack) == 0 {
				return nil
			}
		}
	}
}

func decodeJSON(r io.Reader, def any) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	if err := checkDuplicateKeys(data); err != nil {
		return err
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	return dec.Decode(def)
}
