package codec

import (
	"errors"
	"fmt"
	"os"

	"github.com/geange/dfamin"
)

// LoadFile reads a DFA from path, choosing the codec from the extension.
func LoadFile(path string) (*dfamin.DFA, error) {
	f, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	return LoadFileAs(path, f)
}

// LoadFileAs reads a DFA from path using the given format.
func LoadFileAs(path string, f Format) (*dfamin.DFA, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Join(ErrSourceUnavailable, fmt.Errorf("open %s: %w", path, err))
	}
	defer file.Close()

	d, err := Decode(file, f)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return d, nil
}

// SaveFile writes d to path, replacing any existing file.
func SaveFile(path string, d *dfamin.DFA, f Format) (err error) {
	file, err := os.Create(path)
	if err != nil {
		return errors.Join(ErrSourceUnavailable, fmt.Errorf("create %s: %w", path, err))
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = errors.Join(ErrSourceUnavailable, fmt.Errorf("close %s: %w", path, cerr))
		}
	}()

	if err := Encode(file, d, f); err != nil {
		if errors.Is(err, ErrUnknownFormat) {
			return err
		}
		return errors.Join(ErrSourceUnavailable, fmt.Errorf("write %s: %w", path, err))
	}
	return nil
}
