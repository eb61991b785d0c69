package gff

import (
	"bufio"
	"io"
	"strconv"
	"strings"
)

// Feature is one GFF row. An empty Frame drops the eighth column, which is
// how the synthetic tiling files were always written.
type Feature struct {
	Seqname string
	Source  string
	Name    string
	Start   int
	End     int
	Score   float64
	Strand  string
	Frame   string
}

func (f Feature) String() string {
	cols := []string{
		f.Seqname,
		f.Source,
		f.Name,
		strconv.Itoa(f.Start),
		strconv.Itoa(f.End),
		strconv.FormatFloat(f.Score, 'f', -1, 64),
		f.Strand,
	}
	if f.Frame != "" {
		cols = append(cols, f.Frame)
	}
	return strings.Join(cols, "\t")
}

type Writer struct {
	w *bufio.Writer
	n int
}

func NewWriter(w io.Writer) *Writer {
	return &Writer{w: bufio.NewWriter(w)}
}

func (gw *Writer) Write(f Feature) error {
	if _, err := gw.w.WriteString(f.String()); err != nil {
		return err
	}
	gw.n++
	return gw.w.WriteByte('\n')
}

// Count is the number of features written so far.
func (gw *Writer) Count() int {
	return gw.n
}

func (gw *Writer) Flush() error {
	return gw.w.Flush()
}
