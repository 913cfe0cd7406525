package api

import (
	"fmt"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/chesapeakestays/propdata-server/internal/canonical"
	"github.com/chesapeakestays/propdata-server/internal/errors"
	"github.com/chesapeakestays/propdata-server/internal/http/response"
	"github.com/chesapeakestays/propdata-server/internal/tabular"
)

// uploadField is the multipart form field carrying input files.
const uploadField = "files"

// multipartMemory bounds how much of a parsed upload stays in memory before
// spilling to temp files.
const multipartMemory = 8 << 20

// handleProcess merges the uploaded files and streams the result back as a
// downloadable CSV.
func (s *Server) handleProcess(w http.ResponseWriter, r *http.Request) {
	merged, err := s.processUploads(w, r)
	if err != nil {
		response.HandleError(w, err, s.logger.Logger)
		return
	}

	filename := fmt.Sprintf("real_estate_data_%s.csv", uuid.New())
	response.CSVAttachment(w, filename, &merged, s.logger.Logger)
}

// syncResult is the JSON body returned by the synchronous processing endpoint.
type syncResult struct {
	RecordsCount int                `json:"records_count"`
	Records      []canonical.Record `json:"records"`
}

// handleProcessSync merges the uploaded files and returns the records as JSON
// instead of a file download.
func (s *Server) handleProcessSync(w http.ResponseWriter, r *http.Request) {
	merged, err := s.processUploads(w, r)
	if err != nil {
		response.HandleError(w, err, s.logger.Logger)
		return
	}

	response.Success(w, syncResult{
		RecordsCount: merged.Len(),
		Records:      merged.Records,
	}, s.logger.Logger)
}

// processUploads validates the multipart upload, parses every file, and runs
// the merge pipeline. Individual files that fail to parse are logged and
// skipped; the request only fails when nothing usable remains.
func (s *Server) processUploads(w http.ResponseWriter, r *http.Request) (canonical.Table, error) {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.Upload.MaxBytes)

	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return canonical.Table{}, errors.TooLarge(
				fmt.Sprintf("upload exceeds the %d MB limit", s.cfg.Upload.MaxBytes/(1024*1024)))
		}
		return canonical.Table{}, errors.Validation("malformed multipart request").WithCause(err)
	}

	files := r.MultipartForm.File[uploadField]
	if len(files) == 0 {
		return canonical.Table{}, errors.Validationf("no files uploaded under the %q field", uploadField)
	}

	// Reject unsupported extensions up front so a bad file never wastes work
	// on the rest of the batch.
	for _, fh := range files {
		if !tabular.Supported(fh.Filename) {
			return canonical.Table{}, errors.UnsupportedFilef(
				"unsupported file type %q, allowed: %s", fh.Filename, strings.Join(tabular.Extensions, ", "))
		}
	}

	tables := make([]tabular.Table, 0, len(files))
	for _, fh := range files {
		table, err := s.parseUpload(fh)
		if err != nil {
			s.logger.Warn("skipping unparseable upload", "filename", fh.Filename, "error", err)
			continue
		}
		tables = append(tables, table)
	}

	if len(tables) == 0 {
		return canonical.Table{}, errors.NoUsableData("none of the uploaded files could be parsed")
	}

	merged, err := s.engine.Process(r.Context(), tables)
	if err != nil {
		return canonical.Table{}, errors.Wrap(err, errors.CodeInternal, "processing failed")
	}

	if merged.Empty() {
		return canonical.Table{}, errors.NoUsableData("no records with contact information found in the uploaded files")
	}

	return merged, nil
}

// parseUpload opens and parses one uploaded file.
func (s *Server) parseUpload(fh *multipart.FileHeader) (tabular.Table, error) {
	f, err := fh.Open()
	if err != nil {
		return tabular.Table{}, fmt.Errorf("open upload: %w", err)
	}
	defer f.Close()

	return tabular.Read(fh.Filename, f)
}
