package ucsc

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"sort"

	"github.com/yumyai/gbprep/pkg/genome"
	"github.com/yumyai/gbprep/pkg/tabfile"
)

// GeneColumns is the layout of the halo.genes style table.
type GeneColumns struct {
	Molecule int
	Strand   int
	Start    int
	End      int
}

var DefaultGeneColumns = GeneColumns{Molecule: 2, Strand: 3, Start: 4, End: 5}

// Gene table molecule names to browser sequence names.
var MoleculeNames = map[string]string{
	"chr":             "chromosome",
	"plasmid_pNRC200": "pNRC200",
	"plasmid_pNRC100": "pNRC100",
}

const MatrixColumns = 4

type matrixRow struct {
	molecule string
	strand   string
	pos1     int
	iv       genome.Interval
}

// WriteSineMatrix writes a synthetic quantitative matrix over the genes of
// a gene table, one row per gene ordered by molecule then first position:
// "<seq><strand>:<from>-<to>" followed by MatrixColumns phase-shifted sine
// values. Coordinates are written in strand order.
func WriteSineMatrix(r *tabfile.Reader, w io.Writer, cols GeneColumns) (int, error) {
	var rows []matrixRow

	err := r.Each(func(rec tabfile.Record) error {
		mol, err := rec.Field(cols.Molecule)
		if err != nil {
			return err
		}
		strand, err := rec.Field(cols.Strand)
		if err != nil {
			return err
		}
		p1, err := rec.Int(cols.Start)
		if err != nil {
			return err
		}
		p2, err := rec.Int(cols.End)
		if err != nil {
			return err
		}
		rows = append(rows, matrixRow{molecule: mol, strand: strand, pos1: p1, iv: genome.FromPair(p1, p2)})
		return nil
	})
	if err != nil {
		return 0, err
	}

	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].molecule != rows[j].molecule {
			return rows[i].molecule < rows[j].molecule
		}
		return rows[i].pos1 < rows[j].pos1
	})

	out := bufio.NewWriter(w)
	theta := 0.0
	for _, row := range rows {
		seq, ok := MoleculeNames[row.molecule]
		if !ok {
			seq = row.molecule
		}
		from, to := row.iv.Start, row.iv.End
		if row.strand != string(genome.Forward) {
			from, to = to, from
		}

		theta += 0.1
		if _, err := fmt.Fprintf(out, "%s%s:%d-%d", seq, row.strand, from, to); err != nil {
			return 0, err
		}
		for i := 0; i < MatrixColumns; i++ {
			if _, err := fmt.Fprintf(out, "\t%f", math.Sin(theta+float64(i)/4.0)); err != nil {
				return 0, err
			}
		}
		if err := out.WriteByte('\n'); err != nil {
			return 0, err
		}
	}
	return len(rows), out.Flush()
}
