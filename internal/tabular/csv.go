package tabular

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
)

// ReadCSV parses comma-separated text. Vendor exports are messy: quoting is
// lazy, row widths drift, and the first header cell often carries a BOM, so
// the reader is permissive and reshapes every row to the header width.
func ReadCSV(filename string, r io.Reader) (Table, error) {
	cr := csv.NewReader(r)
	cr.LazyQuotes = true
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return Table{}, fmt.Errorf("read csv %s: file is empty", filename)
		}
		return Table{}, fmt.Errorf("read csv %s: header: %w", filename, err)
	}

	columns := make([]string, len(header))
	for i, h := range header {
		columns[i] = cleanHeader(h)
	}

	var rows [][]string
	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return Table{}, fmt.Errorf("read csv %s: row %d: %w", filename, len(rows)+2, err)
		}
		rows = append(rows, shape(row, len(columns)))
	}

	return Table{Name: filename, Columns: columns, Rows: rows}, nil
}
