package tabfile

import (
	"io"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReaderHeaderModes(t *testing.T) {
	input := "h1\th2\n1\t2\n3\t4\n"

	tests := []struct {
		mode      HeaderMode
		rows      int
		hasHeader bool
		firstLine int
	}{
		{HeaderData, 3, false, 1},
		{HeaderSkip, 2, true, 2},
		{HeaderEcho, 2, true, 2},
	}

	for _, tt := range tests {
		t.Run(tt.mode.String(), func(t *testing.T) {
			r := NewReader(strings.NewReader(input), tt.mode)
			var recs []Record
			require.NoError(t, r.Each(func(rec Record) error {
				recs = append(recs, rec)
				return nil
			}))
			assert.Len(t, recs, tt.rows)
			assert.Equal(t, tt.firstLine, recs[0].Line)

			h, ok := r.Header()
			assert.Equal(t, tt.hasHeader, ok)
			if ok {
				assert.Equal(t, "h1\th2", h.String())
			}
		})
	}
}

func TestReaderHeaderBeforeNext(t *testing.T) {
	r := NewReader(strings.NewReader("a\tb\nc\td\n"), HeaderEcho)
	h, ok := r.Header()
	require.True(t, ok)
	assert.Equal(t, []string{"a", "b"}, h.Fields)

	rec, err := r.Next()
	require.NoError(t, err)
	assert.Equal(t, []string{"c", "d"}, rec.Fields)

	_, err = r.Next()
	assert.ErrorIs(t, err, io.EOF)
}

func TestReaderTrimsLines(t *testing.T) {
	r := NewReader(strings.NewReader("  x\ty  \r\n"), HeaderData)
	rec, err := r.Next()
	require.NoError(t, err)
	assert.Equal(t, []string{"x", "y"}, rec.Fields)
}

func TestRecordAccessors(t *testing.T) {
	rec := Record{Line: 7, Fields: []string{"gene", " 42 ", "3.5", "", "abc"}}

	v, err := rec.Int(1)
	require.NoError(t, err)
	assert.Equal(t, 42, v)

	f, err := rec.Float(2)
	require.NoError(t, err)
	assert.Equal(t, 3.5, f)

	z, err := rec.IntOrZero(3)
	require.NoError(t, err)
	assert.Zero(t, z)

	z, err = rec.IntOrZero(99)
	require.NoError(t, err)
	assert.Zero(t, z)

	_, err = rec.Int(4)
	var ferr *FieldError
	require.ErrorAs(t, err, &ferr)
	assert.Equal(t, 7, ferr.Line)
	assert.Equal(t, 4, ferr.Column)
	assert.Equal(t, "abc", ferr.Value)
	assert.ErrorIs(t, err, strconv.ErrSyntax)

	_, err = rec.Field(10)
	assert.ErrorIs(t, err, ErrMissingField)
}

func TestParseHeaderMode(t *testing.T) {
	for in, want := range map[string]HeaderMode{"data": HeaderData, "SKIP": HeaderSkip, "echo": HeaderEcho} {
		got, err := ParseHeaderMode(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	_, err := ParseHeaderMode("sometimes")
	assert.Error(t, err)
}

func TestReaderKeepEdges(t *testing.T) {
	r := NewReader(strings.NewReader("\tx\t \r\n\n"), HeaderData, KeepEdges)

	rec, err := r.Next()
	require.NoError(t, err)
	assert.Equal(t, []string{"", "x", " "}, rec.Fields)
	assert.False(t, rec.Blank())

	rec, err = r.Next()
	require.NoError(t, err)
	assert.True(t, rec.Blank())
}

func TestRecordFieldOrEmptyAndSet(t *testing.T) {
	rec := Record{Fields: []string{"a", "b"}}
	assert.Equal(t, "b", rec.FieldOrEmpty(1))
	assert.Equal(t, "", rec.FieldOrEmpty(5))
	assert.Equal(t, "", rec.FieldOrEmpty(-1))

	rec.Set(3, "d")
	assert.Equal(t, []string{"a", "b", "", "d"}, rec.Fields)
	rec.Set(0, "")
	assert.Equal(t, "\tb\t\td", rec.String())
}
