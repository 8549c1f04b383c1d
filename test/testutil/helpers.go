// Package testutil provides test helper functions for unit and integration tests.
package testutil

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"
)

// ScraperMockFile is the sample scraper payload shipped in docs/response-mock.
const ScraperMockFile = "scraper_flights.json"

// ProjectRoot returns the repository root, derived from this file's location.
func ProjectRoot(t *testing.T) string {
	t.Helper()

	_, currentFile, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("Failed to get current file path")
	}

	// testutil is in test/testutil
	return filepath.Join(filepath.Dir(currentFile), "..", "..")
}

// MockPath returns the absolute path of a file in docs/response-mock.
func MockPath(t *testing.T, filename string) string {
	t.Helper()
	return filepath.Join(ProjectRoot(t), "docs", "response-mock", filename)
}

// LoadMockJSON loads a JSON file from the docs/response-mock directory.
func LoadMockJSON(t *testing.T, filename string) []byte {
	t.Helper()

	data, err := os.ReadFile(MockPath(t, filename))
	if err != nil {
		t.Fatalf("Failed to load mock file %s: %v", filename, err)
	}
	return data
}

// MustParseTime parses a time string in RFC3339 format.
// It fails the test if parsing fails.
func MustParseTime(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.Parse(time.RFC3339, value)
	if err != nil {
		t.Fatalf("Failed to parse time %s: %v", value, err)
	}
	return parsed
}

// Ptr returns a pointer to the given value.
// Useful for creating pointers to literals in tests.
func Ptr[T any](v T) *T {
	return &v
}
