package tabular

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadCSV(t *testing.T) {
	input := "Address,City,Phone 1\n1 Elm St,Springfield,555-1000\n2 Oak St,Shelbyville,\n"

	table, err := ReadCSV("leads.csv", strings.NewReader(input))
	require.NoError(t, err)

	assert.Equal(t, "leads.csv", table.Name)
	assert.Equal(t, []string{"Address", "City", "Phone 1"}, table.Columns)
	require.Len(t, table.Rows, 2)
	assert.Equal(t, []string{"1 Elm St", "Springfield", "555-1000"}, table.Rows[0])
	assert.Equal(t, []string{"2 Oak St", "Shelbyville", ""}, table.Rows[1])
}

func TestReadCSVStripsBOM(t *testing.T) {
	input := "\uFEFFAddress,City\n1 Elm St,Springfield\n"

	table, err := ReadCSV("bom.csv", strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, "Address", table.Columns[0])
}

func TestReadCSVCollapsesHeaderWhitespace(t *testing.T) {
	input := "Phone  1, City \nx,y\n"

	table, err := ReadCSV("ws.csv", strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, []string{"Phone 1", "City"}, table.Columns)
}

func TestReadCSVReshapesRaggedRows(t *testing.T) {
	input := "A,B,C\n1,2\n1,2,3,4\n"

	table, err := ReadCSV("ragged.csv", strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2", ""}, table.Rows[0], "short rows padded")
	assert.Equal(t, []string{"1", "2", "3"}, table.Rows[1], "long rows truncated")
}

func TestReadCSVMissingSentinels(t *testing.T) {
	input := "A,B,C,D\nNaN,n/a,NULL,real\n"

	table, err := ReadCSV("sentinels.csv", strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, []string{"", "", "", "real"}, table.Rows[0])
}

func TestReadCSVEmptyFile(t *testing.T) {
	_, err := ReadCSV("empty.csv", strings.NewReader(""))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty")
}

func TestReadCSVHeaderOnly(t *testing.T) {
	table, err := ReadCSV("headeronly.csv", strings.NewReader("Address,City\n"))
	require.NoError(t, err)
	assert.Len(t, table.Columns, 2)
	assert.Empty(t, table.Rows)
}

func TestReadDispatch(t *testing.T) {
	table, err := Read("leads.csv", strings.NewReader("A\n1\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"A"}, table.Columns)

	_, err = Read("report.pdf", strings.NewReader("x"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported file type")
}

func TestReadWorkbookRejectsGarbage(t *testing.T) {
	_, err := ReadWorkbook("fake.xlsx", strings.NewReader("not a zip archive"))
	require.Error(t, err)
}

func TestSupported(t *testing.T) {
	tests := []struct {
		filename string
		want     bool
	}{
		{"leads.csv", true},
		{"LEADS.CSV", true},
		{"book.xlsx", true},
		{"legacy.xls", true},
		{"report.pdf", false},
		{"noext", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			assert.Equal(t, tt.want, Supported(tt.filename))
		})
	}
}
