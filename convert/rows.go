package convert

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/electrolens/electrolens/schema"
)

// rowSink receives per-entity rows one at a time and produces the DataBlock
// once the source is exhausted. Two implementations exist: inline (rows kept
// in memory under data) and file (rows streamed as CSV, block records the
// absolute path under dataFilename). The two are mutually exclusive by
// construction.
type rowSink interface {
	emit(r Row) error
	finish() (*DataBlock, error)
}

// newRowSink picks the sink from the options: a file sink when an output
// handle was supplied, an inline sink otherwise.
func newRowSink(opts Options, columns []string) (rowSink, error) {
	if opts.Output != nil {
		return newFileSink(opts.Output, columns)
	}
	return &inlineSink{}, nil
}

// columnsFor returns the schema's columns with the species column appended
// exactly once. This is the column order of CSV side-car files.
func columnsFor(p schema.Properties) []string {
	cols := p.Columns()
	for _, c := range cols {
		if c == schema.SpeciesColumn {
			return cols
		}
	}
	return append(cols, schema.SpeciesColumn)
}

// baseRow builds a row with every declared column present, filled with empty
// strings. Converters overwrite the columns they have values for; columns the
// input carries no value for stay empty, matching the side-car file shape.
func baseRow(columns []string) Row {
	r := make(Row, len(columns))
	for _, c := range columns {
		r[c] = ""
	}
	return r
}

type inlineSink struct {
	rows []Row
}

func (s *inlineSink) emit(r Row) error {
	s.rows = append(s.rows, r)
	return nil
}

func (s *inlineSink) finish() (*DataBlock, error) {
	return &DataBlock{Data: s.rows}, nil
}

type fileSink struct {
	w       *csv.Writer
	columns []string
	name    string
}

func newFileSink(f *os.File, columns []string) (*fileSink, error) {
	abs, err := filepath.Abs(f.Name())
	if err != nil {
		return nil, fmt.Errorf("convert: resolve data file path: %w", err)
	}
	s := &fileSink{w: csv.NewWriter(f), columns: columns, name: filepath.ToSlash(abs)}
	if err := s.w.Write(columns); err != nil {
		return nil, fmt.Errorf("convert: write data file header: %w", err)
	}
	return s, nil
}

func (s *fileSink) emit(r Row) error {
	rec := make([]string, len(s.columns))
	for i, c := range s.columns {
		rec[i] = formatCell(r[c])
	}
	if err := s.w.Write(rec); err != nil {
		return fmt.Errorf("convert: write data row: %w", err)
	}
	return nil
}

func (s *fileSink) finish() (*DataBlock, error) {
	s.w.Flush()
	if err := s.w.Error(); err != nil {
		return nil, fmt.Errorf("convert: flush data file %s: %w", s.name, err)
	}
	return &DataBlock{DataFilename: s.name}, nil
}

func formatCell(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case float64:
		return strconv.FormatFloat(x, 'g', -1, 64)
	case int:
		return strconv.Itoa(x)
	default:
		return fmt.Sprint(x)
	}
}
