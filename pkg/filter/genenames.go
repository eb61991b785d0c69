package filter

import (
	"bufio"
	"fmt"
	"io"

	"github.com/yumyai/gbprep/pkg/tabfile"
)

// FixGeneNames echoes every row, blanking the gene name when the probe
// start and end columns hold the same text. Returns the number of names
// blanked.
func FixGeneNames(r *tabfile.Reader, w io.Writer, cols ProbeColumns) (int, error) {
	out := bufio.NewWriter(w)
	fixed := 0

	if err := writeEchoedHeader(r, out); err != nil {
		return 0, err
	}

	err := r.Each(func(rec tabfile.Record) error {
		// Genes without a probe have both columns empty or missing.
		if rec.FieldOrEmpty(cols.ProbeStart) == rec.FieldOrEmpty(cols.ProbeEnd) {
			rec.Set(cols.GeneName, "")
			fixed++
		}
		_, err := fmt.Fprintln(out, rec.String())
		return err
	})
	return fixed, flush(out, err)
}

// flush writes out whatever rows were accepted before err.
func flush(out *bufio.Writer, err error) error {
	if ferr := out.Flush(); err == nil {
		err = ferr
	}
	return err
}

func writeEchoedHeader(r *tabfile.Reader, out io.Writer) error {
	if r.Mode() != tabfile.HeaderEcho {
		return nil
	}
	if h, ok := r.Header(); ok {
		_, err := fmt.Fprintln(out, h.String())
		return err
	}
	return nil
}
