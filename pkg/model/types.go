package model

import (
	"github.com/yumyai/gbprep/pkg/db"
	"github.com/yumyai/gbprep/pkg/genome"
)

// SpectraLayout locates the fields of a peptide spectra report line.
type SpectraLayout struct {
	NameColumn    int
	FirstFraction int
	FirstLocus    int // (pos1, pos2) pairs run from here
	LocusBound    int // no pair starts at or past this column
	MaxLocusSpan  int
}

var DefaultSpectraLayout = SpectraLayout{
	NameColumn:    0,
	FirstFraction: 1,
	FirstLocus:    33,
	LocusBound:    200,
	MaxLocusSpan:  10000,
}

// PeptideHit is one parsed report line.
type PeptideHit struct {
	Line      int
	Name      string
	Fractions []int
	Loci      []genome.Interval
	Oversized []genome.Interval
}

// Score is the peptide's total over all fractions.
func (p PeptideHit) Score() int {
	total := 0
	for _, f := range p.Fractions {
		total += f
	}
	return total
}

type TrackStyle struct {
	Color  string
	Height float64
	Offset int
	Top    float64
	Viewer string
	Groups string
}

func (s TrackStyle) Attributes() []db.Attribute {
	attrs := []db.Attribute{
		{Key: "color", Value: s.Color},
		{Key: "height", Value: s.Height},
		{Key: "offset", Value: s.Offset},
		{Key: "top", Value: s.Top},
		{Key: "viewer", Value: s.Viewer},
	}
	if s.Groups != "" {
		attrs = append(attrs, db.Attribute{Key: "groups", Value: s.Groups})
	}
	return attrs
}

var (
	AllFractionsStyle = TrackStyle{Color: "0x80ff8080", Height: 0.2, Offset: 70, Top: 0.4, Viewer: "Peptide"}
	ExperimentStyle   = TrackStyle{Color: "0x80ff8080", Height: 0.2, Offset: 58, Top: 0.4, Viewer: "Peptide", Groups: "peptides"}
)

type PeptideSummary struct {
	Dataset          db.Dataset
	Lines            int
	LinesWithoutLoci int
	OversizedLoci    int
	StagedRows       int
	FractionRows     int64
	ExperimentRows   map[string]int64
	Tracks           []db.Track
}

type FastaSummary struct {
	SequenceID int
	Headers    int
	Rows       int
	Bases      int
}
