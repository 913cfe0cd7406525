package api

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chesapeakestays/propdata-server/internal/config"
	"github.com/chesapeakestays/propdata-server/internal/engine"
	"github.com/chesapeakestays/propdata-server/internal/logger"
)

func newTestServer(maxBytes int64) *Server {
	log := logger.New(logger.Config{Writer: io.Discard})
	cfg := &config.Config{
		App:    config.AppConfig{Environment: "development"},
		Upload: config.UploadConfig{MaxBytes: maxBytes},
	}
	return NewServer(engine.New(log, 2), cfg, log)
}

type uploadFile struct {
	name    string
	content string
}

func multipartBody(t *testing.T, files []uploadFile) (*bytes.Buffer, string) {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for _, f := range files {
		fw, err := w.CreateFormFile(uploadField, f.name)
		require.NoError(t, err)
		_, err = io.WriteString(fw, f.content)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	return &buf, w.FormDataContentType()
}

func postFiles(t *testing.T, s *Server, path string, files []uploadFile) *httptest.ResponseRecorder {
	t.Helper()

	body, contentType := multipartBody(t, files)
	req := httptest.NewRequest(http.MethodPost, path, body)
	req.Header.Set("Content-Type", contentType)

	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)
	return rec
}

func TestHealthCheck(t *testing.T) {
	rec := httptest.NewRecorder()
	newTestServer(50 << 20).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"healthy"`)
}

func TestGetConfig(t *testing.T) {
	rec := httptest.NewRecorder()
	newTestServer(50 << 20).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/config", nil))

	assert.Equal(t, http.StatusOK, rec.Code)

	var envelope struct {
		Data struct {
			AllowedExtensions []string `json:"allowed_extensions"`
			MaxUploadMB       int64    `json:"max_upload_mb"`
		} `json:"data"`
		Success bool `json:"success"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.True(t, envelope.Success)
	assert.Equal(t, []string{"csv", "xlsx", "xls"}, envelope.Data.AllowedExtensions)
	assert.Equal(t, int64(50), envelope.Data.MaxUploadMB)
}

func TestProcessReturnsCSVAttachment(t *testing.T) {
	rec := postFiles(t, newTestServer(50<<20), "/process", []uploadFile{
		{
			name: "vendor-a.csv",
			content: "Address,City,State,Zip,Owner 1 First Name,Owner 1 Last Name,Phone 1\n" +
				"1 Elm St,Dover,DE,19901,Ann,Lee,555-1000\n",
		},
		{
			name: "vendor-b.csv",
			content: "Property Address,City,State,Zip,First Name,Last Name,Cell 1\n" +
				"1 ELM ST,Dover,DE,19901,ann,lee,555-2000\n",
		},
	})

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/csv; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Regexp(t,
		regexp.MustCompile(`attachment; filename="real_estate_data_[0-9a-f-]{36}\.csv"`),
		rec.Header().Get("Content-Disposition"))

	lines := strings.Split(strings.TrimSpace(rec.Body.String()), "\n")
	require.Len(t, lines, 2) // header plus the single merged record
	assert.True(t, strings.HasPrefix(lines[0], "Street Address,"))
	assert.Contains(t, lines[1], "1 Elm St")
	assert.Contains(t, lines[1], "555-1000")
	assert.NotContains(t, lines[1], "555-2000")
}

func TestProcessSyncReturnsJSON(t *testing.T) {
	rec := postFiles(t, newTestServer(50<<20), "/process-sync", []uploadFile{
		{
			name:    "leads.csv",
			content: "Street Address,First Name,Email\n2 Oak Ave,Bea,bea@example.com\n",
		},
	})

	require.Equal(t, http.StatusOK, rec.Code)

	var envelope struct {
		Data struct {
			RecordsCount int                 `json:"records_count"`
			Records      []map[string]string `json:"records"`
		} `json:"data"`
		Success bool `json:"success"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.True(t, envelope.Success)
	assert.Equal(t, 1, envelope.Data.RecordsCount)
	require.Len(t, envelope.Data.Records, 1)
	assert.Equal(t, "2 Oak Ave", envelope.Data.Records[0]["Street Address"])
	assert.Equal(t, "bea@example.com", envelope.Data.Records[0]["Email"])
}

func TestProcessRejectsUnsupportedExtension(t *testing.T) {
	rec := postFiles(t, newTestServer(50<<20), "/process", []uploadFile{
		{name: "leads.pdf", content: "not a spreadsheet"},
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "unsupported file type")
}

func TestProcessRejectsMissingFilesField(t *testing.T) {
	rec := postFiles(t, newTestServer(50<<20), "/process", nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "no files uploaded")
}

func TestProcessRejectsOversizedUpload(t *testing.T) {
	rec := postFiles(t, newTestServer(64), "/process", []uploadFile{
		{name: "big.csv", content: strings.Repeat("x,y,z\n", 100)},
	})

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}

func TestProcessSkipsUnparseableFile(t *testing.T) {
	rec := postFiles(t, newTestServer(50<<20), "/process-sync", []uploadFile{
		{name: "empty.csv", content: ""},
		{name: "good.csv", content: "Street Address,Phone 1\n3 Birch Ln,555-3000\n"},
	})

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"records_count":1`)
}

func TestProcessNoUsableData(t *testing.T) {
	// Rows without any phone, email, or mailing address are dropped, leaving
	// nothing to return.
	rec := postFiles(t, newTestServer(50<<20), "/process", []uploadFile{
		{name: "sparse.csv", content: "Street Address,City\n4 Cedar Ct,Dover\n"},
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "no records with contact information")
}
