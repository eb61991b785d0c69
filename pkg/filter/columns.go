package filter

// ProbeColumns names the positions in the gene/probe tables the filters read.
type ProbeColumns struct {
	Gene       int
	GeneName   int
	Molecule   int
	GeneStart  int
	GeneEnd    int
	Strand     int
	ProbeStart int
	ProbeEnd   int
}

var DefaultProbeColumns = ProbeColumns{
	Gene:       0,
	GeneName:   1,
	Molecule:   2,
	GeneStart:  3,
	GeneEnd:    4,
	Strand:     5,
	ProbeStart: 6,
	ProbeEnd:   7,
}
