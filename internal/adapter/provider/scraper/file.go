package scraper

import (
	"context"
	"os"

	"github.com/flight-search/flight-normalization-service/internal/domain"
)

// FileSourceName identifies the file-backed source.
const FileSourceName = "file"

// FileSource serves a scraped payload stored on disk. It is used in
// development and tests in place of the scraping service.
type FileSource struct {
	path string
}

// NewFileSource creates a FileSource reading the given payload file.
func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

// Name implements domain.FlightSource.
func (s *FileSource) Name() string {
	return FileSourceName
}

// Fetch implements domain.FlightSource. The query is not used to select data.
func (s *FileSource) Fetch(ctx context.Context, _ domain.SearchQuery) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, domain.NewSourceError(FileSourceName, err)
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, domain.NewRetryableSourceError(FileSourceName, err)
	}
	return data, nil
}

var _ domain.FlightSource = (*FileSource)(nil)
