package filter

import (
	"bufio"
	"fmt"
	"io"

	"github.com/yumyai/gbprep/pkg/genome"
	"github.com/yumyai/gbprep/pkg/tabfile"
)

// FindBadProbes writes the gene id of every row whose probe does not fall
// entirely within its gene. Returns the number of ids written.
func FindBadProbes(r *tabfile.Reader, w io.Writer, cols ProbeColumns) (int, error) {
	out := bufio.NewWriter(w)
	bad := 0

	err := r.Each(func(rec tabfile.Record) error {
		gene, err := pairInterval(rec, cols.GeneStart, cols.GeneEnd)
		if err != nil {
			return err
		}
		probe, err := pairInterval(rec, cols.ProbeStart, cols.ProbeEnd)
		if err != nil {
			return err
		}
		if gene.Contains(probe) {
			return nil
		}
		id, err := rec.Field(cols.Gene)
		if err != nil {
			return err
		}
		bad++
		_, err = fmt.Fprintln(out, id)
		return err
	})
	return bad, flush(out, err)
}

func pairInterval(rec tabfile.Record, startCol, endCol int) (genome.Interval, error) {
	start, err := rec.Int(startCol)
	if err != nil {
		return genome.Interval{}, err
	}
	end, err := rec.Int(endCol)
	if err != nil {
		return genome.Interval{}, err
	}
	return genome.FromPair(start, end), nil
}
