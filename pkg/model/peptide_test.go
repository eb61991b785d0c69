package model

import (
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yumyai/gbprep/pkg/genome"
	"github.com/yumyai/gbprep/pkg/tabfile"
)

// spectraFields builds a report line: name, fractions, padding up to the
// first locus column, then the flattened locus pairs.
func spectraFields(name string, fractions []int, pairs ...int) []string {
	fields := []string{name}
	for _, f := range fractions {
		fields = append(fields, strconv.Itoa(f))
	}
	for len(fields) < DefaultSpectraLayout.FirstLocus {
		fields = append(fields, "x")
	}
	for _, p := range pairs {
		fields = append(fields, strconv.Itoa(p))
	}
	return fields
}

func TestScanLociStopsAtZeroPair(t *testing.T) {
	fields := spectraFields("PEP", nil, 3, 7, 0, 0)
	// Garbage after the terminator must never be read.
	fields = append(fields, "not-a-number", "junk")

	loci, oversized, err := DefaultSpectraLayout.ScanLoci(tabfile.Record{Line: 2, Fields: fields})
	require.NoError(t, err)
	assert.Empty(t, oversized)
	assert.Equal(t, []genome.Interval{{Start: 3, End: 7, Strand: genome.Forward}}, loci)
}

func TestScanLociOversized(t *testing.T) {
	rec := tabfile.Record{Line: 5, Fields: spectraFields("PEP", nil, 100000, 50)}

	loci, oversized, err := DefaultSpectraLayout.ScanLoci(rec)
	require.NoError(t, err)
	assert.Empty(t, loci)
	assert.Equal(t, []genome.Interval{{Start: 50, End: 100000, Strand: genome.Reverse}}, oversized)
}

func TestScanLociEndOfLine(t *testing.T) {
	// No terminator: the line simply ends, missing fields read as zero.
	rec := tabfile.Record{Fields: spectraFields("PEP", nil, 900, 870, 10, 20, 5000)}

	loci, _, err := DefaultSpectraLayout.ScanLoci(rec)
	require.NoError(t, err)
	assert.Equal(t, []genome.Interval{
		{Start: 870, End: 900, Strand: genome.Reverse},
		{Start: 10, End: 20, Strand: genome.Forward},
		{Start: 0, End: 5000, Strand: genome.Reverse},
	}, loci)
}

func TestScanLociBound(t *testing.T) {
	layout := DefaultSpectraLayout
	layout.LocusBound = layout.FirstLocus + 2

	loci, _, err := layout.ScanLoci(tabfile.Record{Fields: spectraFields("PEP", nil, 1, 2, 3, 4)})
	require.NoError(t, err)
	assert.Len(t, loci, 1)
}

func TestScanLociMalformed(t *testing.T) {
	fields := spectraFields("PEP", nil, 1, 2)
	fields[DefaultSpectraLayout.FirstLocus+1] = "2kb"

	_, _, err := DefaultSpectraLayout.ScanLoci(tabfile.Record{Line: 9, Fields: fields})
	var ferr *tabfile.FieldError
	require.ErrorAs(t, err, &ferr)
	assert.Equal(t, 9, ferr.Line)
	assert.Equal(t, DefaultSpectraLayout.FirstLocus+1, ferr.Column)
}

func TestParseSpectraRecord(t *testing.T) {
	fields := spectraFields("SSO0001.pep", []int{2, 0, 5}, 10, 40, 0, 0)
	fields[2] = "0.0"

	hit, err := DefaultSpectraLayout.ParseSpectraRecord(tabfile.Record{Line: 3, Fields: fields}, 3)
	require.NoError(t, err)
	assert.Equal(t, "SSO0001.pep", hit.Name)
	assert.Equal(t, []int{2, 0, 5}, hit.Fractions)
	assert.Equal(t, 7, hit.Score())
	assert.Len(t, hit.Loci, 1)
	assert.Equal(t, 3, hit.Line)

	fields[3] = "many"
	_, err = DefaultSpectraLayout.ParseSpectraRecord(tabfile.Record{Line: 3, Fields: fields}, 3)
	assert.Error(t, err)
}

func TestFeatureTableName(t *testing.T) {
	assert.Equal(t, "features_peptides_SMW_Anaerobic_DEAE1_Mar_03_2007", FeatureTableName("SMW-Anaerobic_DEAE1_Mar_03_2007"))
	assert.Equal(t, "peptides: s-MEM_SLayer_July_9_2009", ExperimentTrackName("s-MEM_SLayer_July_9_2009"))
	assert.Len(t, DefaultExperiments, 27)
}

func TestTrackStyleAttributes(t *testing.T) {
	keys := func(s TrackStyle) []string {
		var ks []string
		for _, a := range s.Attributes() {
			ks = append(ks, a.Key)
		}
		return ks
	}
	assert.Equal(t, []string{"color", "height", "offset", "top", "viewer"}, keys(AllFractionsStyle))
	assert.Equal(t, []string{"color", "height", "offset", "top", "viewer", "groups"}, keys(ExperimentStyle))
}

func TestParseSpectraRecordBlankName(t *testing.T) {
	line := strings.Join(spectraFields("", []int{0, 4}, 200, 260, 0, 0), "\t")
	rec, err := tabfile.NewReader(strings.NewReader(line+"\n"), tabfile.HeaderData, tabfile.KeepEdges).Next()
	require.NoError(t, err)

	hit, err := DefaultSpectraLayout.ParseSpectraRecord(rec, 2)
	require.NoError(t, err)
	assert.Equal(t, "", hit.Name)
	assert.Equal(t, []int{0, 4}, hit.Fractions)
	assert.Equal(t, []genome.Interval{{Start: 200, End: 260, Strand: genome.Forward}}, hit.Loci)
}
