package gff

import (
	"math"

	"github.com/yumyai/gbprep/pkg/tabfile"
)

type TranscodeOptions struct {
	Seqname string
	Source  string
	Name    string
	Scale   float64
	Strand  string
}

var DefaultTranscodeOptions = TranscodeOptions{
	Seqname: "chr",
	Source:  "tiling",
	Name:    "ts",
	Scale:   50,
	Strand:  "+",
}

// Transcode turns (start, end, value) rows into GFF features with the value
// scaled and floored to an integer score.
func Transcode(r *tabfile.Reader, w *Writer, opts TranscodeOptions) error {
	err := r.Each(func(rec tabfile.Record) error {
		start, err := rec.Int(0)
		if err != nil {
			return err
		}
		end, err := rec.Int(1)
		if err != nil {
			return err
		}
		v, err := rec.Float(2)
		if err != nil {
			return err
		}
		score := math.Floor(v * opts.Scale)
		if score == 0 {
			score = 0 // drop the sign of -0
		}
		return w.Write(Feature{
			Seqname: opts.Seqname,
			Source:  opts.Source,
			Name:    opts.Name,
			Start:   start,
			End:     end,
			Score:   score,
			Strand:  opts.Strand,
			Frame:   ".",
		})
	})
	if ferr := w.Flush(); err == nil {
		err = ferr
	}
	return err
}
