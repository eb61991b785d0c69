package filter

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/yumyai/gbprep/pkg/tabfile"
)

var (
	ErrNoValues  = errors.New("no values in column")
	ErrNotFinite = errors.New("value is not a finite number")
)

type Range struct {
	Column int
	Min    float64
	Max    float64
	Count  int
}

func (r Range) String() string {
	return fmt.Sprintf("min=%s max=%s",
		strconv.FormatFloat(r.Min, 'f', -1, 64),
		strconv.FormatFloat(r.Max, 'f', -1, 64))
}

// FindRange scans one numeric column and returns its extremes.
func FindRange(r *tabfile.Reader, col int) (Range, error) {
	rng := Range{Column: col, Min: math.Inf(1), Max: math.Inf(-1)}

	err := r.Each(func(rec tabfile.Record) error {
		v, err := rec.Float(col)
		if err != nil {
			return err
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return &tabfile.FieldError{Line: rec.Line, Column: col, Value: rec.FieldOrEmpty(col), Err: ErrNotFinite}
		}
		rng.Min = math.Min(rng.Min, v)
		rng.Max = math.Max(rng.Max, v)
		rng.Count++
		return nil
	})
	if err != nil {
		return rng, err
	}
	if rng.Count == 0 {
		return rng, fmt.Errorf("%w %d", ErrNoValues, col)
	}
	return rng, nil
}
