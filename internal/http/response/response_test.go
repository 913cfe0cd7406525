package response

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chesapeakestays/propdata-server/internal/canonical"
	"github.com/chesapeakestays/propdata-server/internal/errors"
)

func TestSuccessEnvelope(t *testing.T) {
	rec := httptest.NewRecorder()
	Success(rec, map[string]int{"records_count": 3}, nil)

	assert.Equal(t, 200, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "application/json")

	var env Envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	assert.True(t, env.Success)
	assert.Empty(t, env.Error)
}

func TestErrorEnvelope(t *testing.T) {
	rec := httptest.NewRecorder()
	BadRequest(rec, "no files provided", nil)

	assert.Equal(t, 400, rec.Code)

	var env Envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	assert.False(t, env.Success)
	assert.Equal(t, "no files provided", env.Error)
}

func TestHandleErrorDomainMapping(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"validation", errors.Validation("bad input"), 400},
		{"unsupported file", errors.UnsupportedFile("bad ext"), 400},
		{"no usable data", errors.NoUsableData("nothing kept"), 400},
		{"too large", errors.TooLarge("50MB limit"), 413},
		{"internal", errors.Internal("boom"), 500},
		{"unknown", assert.AnError, 500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			HandleError(rec, tt.err, nil)
			assert.Equal(t, tt.status, rec.Code)
		})
	}
}

func TestCSVAttachment(t *testing.T) {
	var r canonical.Record
	r.Set(canonical.StreetAddress, "1 Elm St")
	table := canonical.Table{Records: []canonical.Record{r}}

	rec := httptest.NewRecorder()
	CSVAttachment(rec, "out.csv", &table, nil)

	assert.Equal(t, 200, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/csv")
	assert.Contains(t, rec.Header().Get("Content-Disposition"), `filename="out.csv"`)
	assert.Contains(t, rec.Body.String(), "Street Address")
	assert.Contains(t, rec.Body.String(), "1 Elm St")
}
