package model

import (
	"math"
	"strings"

	"github.com/yumyai/gbprep/pkg/genome"
	"github.com/yumyai/gbprep/pkg/tabfile"
)

// ScanLoci reads the (pos1, pos2) pairs of a report line up to the first
// (0, 0) pair. Missing or blank positions count as 0. Loci longer than
// MaxLocusSpan come back separately in oversized.
func (l SpectraLayout) ScanLoci(rec tabfile.Record) (loci, oversized []genome.Interval, err error) {
	for col := l.FirstLocus; col < l.LocusBound; col += 2 {
		pos1, err := rec.IntOrZero(col)
		if err != nil {
			return nil, nil, err
		}
		pos2, err := rec.IntOrZero(col + 1)
		if err != nil {
			return nil, nil, err
		}
		if pos1 == 0 && pos2 == 0 {
			break
		}

		iv := genome.FromPair(pos1, pos2)
		if iv.Span() > l.MaxLocusSpan {
			oversized = append(oversized, iv)
			continue
		}
		loci = append(loci, iv)
	}
	return loci, oversized, nil
}

// ParseSpectraRecord extracts name, fraction scores and loci from a line.
func (l SpectraLayout) ParseSpectraRecord(rec tabfile.Record, nfractions int) (PeptideHit, error) {
	hit := PeptideHit{Line: rec.Line}

	name, err := rec.Field(l.NameColumn)
	if err != nil {
		return hit, err
	}
	hit.Name = name

	hit.Fractions = make([]int, nfractions)
	for i := range hit.Fractions {
		v, err := fractionAt(rec, l.FirstFraction+i)
		if err != nil {
			return hit, err
		}
		hit.Fractions[i] = v
	}

	hit.Loci, hit.Oversized, err = l.ScanLoci(rec)
	return hit, err
}

// Spectral counts are integers but some exports write them as "3.0".
func fractionAt(rec tabfile.Record, col int) (int, error) {
	if col >= rec.Len() || strings.TrimSpace(rec.Fields[col]) == "" {
		return 0, nil
	}
	if v, err := rec.Int(col); err == nil {
		return v, nil
	}
	f, err := rec.Float(col)
	if err != nil {
		return 0, err
	}
	return int(math.Trunc(f)), nil
}
