package canonical

import (
	"encoding/csv"
	"io"
)

// Table is the merged, deduplicated output of one processing run. Its column
// set and order are always the canonical header, even when it has no rows.
type Table struct {
	Records []Record
}

// Len returns the number of records.
func (t *Table) Len() int { return len(t.Records) }

// Empty reports whether the table has no records.
func (t *Table) Empty() bool { return len(t.Records) == 0 }

// WriteCSV serializes the table as delimited text: the canonical header row
// followed by one row per record.
func (t *Table) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header()); err != nil {
		return err
	}
	for i := range t.Records {
		if err := cw.Write(t.Records[i].Row()); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
