package genome

import "fmt"

type Strand string

const (
	Forward Strand = "+"
	Reverse Strand = "-"
)

// Interval is a closed range of positions on one strand. Start <= End always.
type Interval struct {
	Start  int
	End    int
	Strand Strand
}

// FromPair orients a raw coordinate pair. Positions given high-to-low map to
// the reverse strand, as do equal positions.
func FromPair(pos1, pos2 int) Interval {
	if pos1 < pos2 {
		return Interval{Start: pos1, End: pos2, Strand: Forward}
	}
	return Interval{Start: pos2, End: pos1, Strand: Reverse}
}

// Span is End - Start, the measure the peptide importer compares to its limit.
func (iv Interval) Span() int {
	return iv.End - iv.Start
}

// Contains reports whether other lies fully inside iv, ignoring strand.
func (iv Interval) Contains(other Interval) bool {
	return other.Start >= iv.Start && other.End <= iv.End
}

func (iv Interval) String() string {
	return fmt.Sprintf("%s:%d-%d", iv.Strand, iv.Start, iv.End)
}
