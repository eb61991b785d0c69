package filter

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yumyai/gbprep/pkg/tabfile"
)

// gene, name, molecule, gene start, gene end, strand, probe start, probe end
const probeTable = "VNG0001\tdnaA\tchr\t100\t500\t+\t150\t300\n" +
	"VNG0002\tgyrB\tchr\t900\t600\t-\t650\t700\n" +
	"VNG0003\tabc\tchr\t100\t500\t+\t50\t300\n" +
	"VNG0004\txyz\tplasmid_pNRC200\t100\t500\t-\t450\t501\n" +
	"VNG0005\tqq\tchr\t1000\t2000\t-\t1500\t1500\n"

func reader(s string, mode tabfile.HeaderMode) *tabfile.Reader {
	return tabfile.NewReader(strings.NewReader(s), mode)
}

func TestFindBadProbes(t *testing.T) {
	var out bytes.Buffer
	n, err := FindBadProbes(reader(probeTable, tabfile.HeaderData), &out, DefaultProbeColumns)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, "VNG0003\nVNG0004\n", out.String())
}

func TestFindBadProbesMalformed(t *testing.T) {
	var out bytes.Buffer
	_, err := FindBadProbes(reader("g\tn\tchr\tstart\t500\t+\t1\t2\n", tabfile.HeaderData), &out, DefaultProbeColumns)
	var ferr *tabfile.FieldError
	require.ErrorAs(t, err, &ferr)
	assert.Equal(t, 1, ferr.Line)
	assert.Equal(t, 3, ferr.Column)
}

func TestFindRange(t *testing.T) {
	rng, err := FindRange(reader("a\t1.5\nb\t-3\nc\t12\n", tabfile.HeaderData), 1)
	require.NoError(t, err)
	assert.Equal(t, -3.0, rng.Min)
	assert.Equal(t, 12.0, rng.Max)
	assert.Equal(t, 3, rng.Count)
	assert.Equal(t, "min=-3 max=12", rng.String())
}

func TestFindRangeSkipsHeader(t *testing.T) {
	rng, err := FindRange(reader("name\tvalue\nb\t2000000\nc\t7\n", tabfile.HeaderSkip), 1)
	require.NoError(t, err)
	assert.Equal(t, 7.0, rng.Min)
	assert.Equal(t, 2000000.0, rng.Max)

	_, err = FindRange(reader("name\tvalue\nb\t2\n", tabfile.HeaderData), 1)
	var ferr *tabfile.FieldError
	assert.ErrorAs(t, err, &ferr)
}

func TestFindRangeEmpty(t *testing.T) {
	_, err := FindRange(reader("header only\n", tabfile.HeaderSkip), 0)
	assert.ErrorIs(t, err, ErrNoValues)
}

func TestFixGeneNames(t *testing.T) {
	var out bytes.Buffer
	n, err := FixGeneNames(reader(probeTable, tabfile.HeaderData), &out, DefaultProbeColumns)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	lines := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, "VNG0005\t\tchr\t1000\t2000\t-\t1500\t1500", lines[4])

	in := strings.Split(strings.TrimSuffix(probeTable, "\n"), "\n")
	for i := 0; i < 4; i++ {
		assert.Equal(t, in[i], lines[i])
	}
}

func TestSelectByChr(t *testing.T) {
	input := "gene\tname\tmolecule\tstart\tend\tstrand\tpstart\tpend\n" + probeTable

	var out bytes.Buffer
	n, err := SelectByChr(reader(input, tabfile.HeaderEcho), &out, DefaultProbeColumns, "chr", "+")
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	lines := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "gene\tname"))
	assert.True(t, strings.HasPrefix(lines[1], "VNG0001"))
	assert.True(t, strings.HasPrefix(lines[2], "VNG0003"))
}

func TestSelectByChrSkipHeader(t *testing.T) {
	var out bytes.Buffer
	n, err := SelectByChr(reader(probeTable, tabfile.HeaderSkip), &out, DefaultProbeColumns, "plasmid_pNRC200", "-")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.True(t, strings.HasPrefix(out.String(), "VNG0004\t"))
}

func TestFixGeneNamesWithoutProbe(t *testing.T) {
	input := "VNG1\tdnaA\tchr\t1\t2\t+\t\t\n" +
		"VNG2\tgyrB\tchr\t5\t9\t+\t6\t7\n" +
		"\n"

	var out bytes.Buffer
	n, err := FixGeneNames(reader(input, tabfile.HeaderData), &out, DefaultProbeColumns)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, "VNG1\t\tchr\t1\t2\t+\n"+
		"VNG2\tgyrB\tchr\t5\t9\t+\t6\t7\n"+
		"\t\n", out.String())
}

func TestSelectByChrShortRows(t *testing.T) {
	input := "h\n\nVNG1\tdnaA\tchr\t1\t2\t+\t1\t2\nVNG9\tshort\n"

	var out bytes.Buffer
	n, err := SelectByChr(reader(input, tabfile.HeaderSkip), &out, DefaultProbeColumns, "chr", "+")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Equal(t, "VNG1\tdnaA\tchr\t1\t2\t+\t1\t2\n", out.String())
}

func TestFindRangeNonFinite(t *testing.T) {
	for _, v := range []string{"NaN", "+Inf", "-inf"} {
		t.Run(v, func(t *testing.T) {
			_, err := FindRange(reader("a\t1\nb\t"+v+"\nc\t5\n", tabfile.HeaderData), 1)
			require.ErrorIs(t, err, ErrNotFinite)
			var ferr *tabfile.FieldError
			require.ErrorAs(t, err, &ferr)
			assert.Equal(t, 2, ferr.Line)
			assert.Equal(t, v, ferr.Value)
		})
	}
}

func TestFindBadProbesWritesRowsBeforeError(t *testing.T) {
	input := "VNG0003\tabc\tchr\t100\t500\t+\t50\t300\n" +
		"VNG0009\tx\tchr\tbad\t500\t+\t1\t2\n"

	var out bytes.Buffer
	n, err := FindBadProbes(reader(input, tabfile.HeaderData), &out, DefaultProbeColumns)
	require.Error(t, err)
	assert.Equal(t, 1, n)
	assert.Equal(t, "VNG0003\n", out.String())
}
