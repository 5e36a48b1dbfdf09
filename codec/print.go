package codec

import (
	"io"

	"github.com/kr/pretty"

	"github.com/geange/dfamin"
)

// Fprint writes a human-readable dump of d to w.
func Fprint(w io.Writer, d *dfamin.DFA) error {
	_, err := pretty.Fprintf(w, "%# v\n", d.Definition())
	return err
}
