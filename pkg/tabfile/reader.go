// Line-oriented reader for tab-delimited tables.

package tabfile

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Spectra reports run to a few hundred columns per line.
const maxLineSize = 4 * 1024 * 1024

type HeaderMode int

const (
	HeaderData HeaderMode = iota // first line is an ordinary row
	HeaderSkip
	HeaderEcho // consumed like HeaderSkip; callers copy it to their output
)

func (m HeaderMode) String() string {
	switch m {
	case HeaderData:
		return "data"
	case HeaderSkip:
		return "skip"
	case HeaderEcho:
		return "echo"
	default:
		return "unknown"
	}
}

func ParseHeaderMode(s string) (HeaderMode, error) {
	switch strings.ToLower(s) {
	case "data", "none":
		return HeaderData, nil
	case "skip":
		return HeaderSkip, nil
	case "echo":
		return HeaderEcho, nil
	}
	return HeaderData, fmt.Errorf("unknown header mode %q (want data, skip or echo)", s)
}

// FieldError reports a missing or unparsable field.
type FieldError struct {
	Line   int
	Column int
	Value  string
	Err    error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("line %d, column %d (%q): %v", e.Line, e.Column, e.Value, e.Err)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

var ErrMissingField = errors.New("missing field")

type Record struct {
	Line   int
	Fields []string
}

func (r Record) Len() int {
	return len(r.Fields)
}

func (r Record) Field(col int) (string, error) {
	if col < 0 || col >= len(r.Fields) {
		return "", &FieldError{Line: r.Line, Column: col, Err: ErrMissingField}
	}
	return r.Fields[col], nil
}

// FieldOrEmpty reads a missing column as "".
func (r Record) FieldOrEmpty(col int) string {
	if col < 0 || col >= len(r.Fields) {
		return ""
	}
	return r.Fields[col]
}

// Set stores v at col, padding the row with empty fields as needed.
func (r *Record) Set(col int, v string) {
	for len(r.Fields) <= col {
		r.Fields = append(r.Fields, "")
	}
	r.Fields[col] = v
}

// Blank reports whether the line held nothing but whitespace.
func (r Record) Blank() bool {
	for _, f := range r.Fields {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}

func (r Record) Int(col int) (int, error) {
	s, err := r.Field(col)
	if err != nil {
		return 0, err
	}
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, &FieldError{Line: r.Line, Column: col, Value: s, Err: err}
	}
	return v, nil
}

// IntOrZero reads a missing or blank field as 0.
func (r Record) IntOrZero(col int) (int, error) {
	if col >= len(r.Fields) || strings.TrimSpace(r.Fields[col]) == "" {
		return 0, nil
	}
	return r.Int(col)
}

func (r Record) Float(col int) (float64, error) {
	s, err := r.Field(col)
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, &FieldError{Line: r.Line, Column: col, Value: s, Err: err}
	}
	return v, nil
}

func (r Record) String() string {
	return strings.Join(r.Fields, "\t")
}

// Option adjusts how a Reader splits lines.
type Option func(*Reader)

// KeepEdges only strips the line ending, so a blank leading or trailing
// field keeps its position.
func KeepEdges(r *Reader) {
	r.keepEdges = true
}

type Reader struct {
	sc        *bufio.Scanner
	mode      HeaderMode
	keepEdges bool
	line      int
	header    Record
	hasHeader bool
	started   bool
}

// NewReader trims surrounding whitespace from each line before splitting it
// on tabs unless KeepEdges is given.
func NewReader(r io.Reader, mode HeaderMode, opts ...Option) *Reader {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), maxLineSize)
	tr := &Reader{sc: sc, mode: mode}
	for _, opt := range opts {
		opt(tr)
	}
	return tr
}

func (r *Reader) Mode() HeaderMode {
	return r.mode
}

// Header returns the consumed first line. It reads ahead if Next has not
// been called yet.
func (r *Reader) Header() (Record, bool) {
	if !r.started {
		if err := r.start(); err != nil {
			return Record{}, false
		}
	}
	return r.header, r.hasHeader
}

func (r *Reader) start() error {
	r.started = true
	if r.mode == HeaderData {
		return nil
	}
	rec, err := r.scan()
	if err != nil {
		return err
	}
	r.header = rec
	r.hasHeader = true
	return nil
}

func (r *Reader) scan() (Record, error) {
	if !r.sc.Scan() {
		if err := r.sc.Err(); err != nil {
			return Record{}, fmt.Errorf("read line %d: %w", r.line+1, err)
		}
		return Record{}, io.EOF
	}
	r.line++
	text := r.sc.Text()
	if r.keepEdges {
		text = strings.TrimSuffix(text, "\r")
	} else {
		text = strings.TrimSpace(text)
	}
	return Record{Line: r.line, Fields: strings.Split(text, "\t")}, nil
}

// Next returns the next data row, or io.EOF.
func (r *Reader) Next() (Record, error) {
	if !r.started {
		if err := r.start(); err != nil {
			return Record{}, err
		}
	}
	return r.scan()
}

// Each calls fn for every data row and stops at the first error.
func (r *Reader) Each(fn func(Record) error) error {
	for {
		rec, err := r.Next()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		if err := fn(rec); err != nil {
			return err
		}
	}
}
