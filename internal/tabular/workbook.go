package tabular

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

// ReadWorkbook parses a spreadsheet workbook. Data is taken from the first
// sheet; the first row is the header, everything after is data.
func ReadWorkbook(filename string, r io.Reader) (Table, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return Table{}, fmt.Errorf("open workbook %s: %w", filename, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return Table{}, fmt.Errorf("read workbook %s: no sheets", filename)
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return Table{}, fmt.Errorf("read workbook %s: sheet %s: %w", filename, sheets[0], err)
	}
	if len(rows) == 0 {
		return Table{}, fmt.Errorf("read workbook %s: sheet %s is empty", filename, sheets[0])
	}

	columns := make([]string, len(rows[0]))
	for i, h := range rows[0] {
		columns[i] = cleanHeader(h)
	}

	data := make([][]string, 0, len(rows)-1)
	for _, row := range rows[1:] {
		data = append(data, shape(row, len(columns)))
	}

	return Table{Name: filename, Columns: columns, Rows: data}, nil
}
