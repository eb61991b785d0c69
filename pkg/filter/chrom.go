package filter

import (
	"bufio"
	"fmt"
	"io"

	"github.com/yumyai/gbprep/pkg/tabfile"
)

// SelectByChr keeps the rows on the given molecule and strand. Returns the
// number of rows kept, not counting an echoed header.
func SelectByChr(r *tabfile.Reader, w io.Writer, cols ProbeColumns, chr, strand string) (int, error) {
	out := bufio.NewWriter(w)
	kept := 0

	if err := writeEchoedHeader(r, out); err != nil {
		return 0, err
	}

	err := r.Each(func(rec tabfile.Record) error {
		// Short and blank rows have no molecule to match.
		if rec.Len() <= cols.Molecule || rec.Len() <= cols.Strand {
			return nil
		}
		if rec.Fields[cols.Molecule] != chr || rec.Fields[cols.Strand] != strand {
			return nil
		}
		kept++
		_, err := fmt.Fprintln(out, rec.String())
		return err
	})
	return kept, flush(out, err)
}
