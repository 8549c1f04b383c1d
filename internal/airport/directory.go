// Package airport resolves IATA codes to the city and state labels used to
// name and sort destination groups.
package airport

import (
	"bytes"
	"context"
	_ "embed"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/jszwec/csvutil"

	"github.com/flight-search/flight-normalization-service/internal/domain"
	"github.com/flight-search/flight-normalization-service/internal/infrastructure/logger"
)

//go:embed airports.csv
var embeddedCSV []byte

// ParseCSV decodes an airport table with the header code,city,state,name.
// Rows without a code are ignored; codes are upper-cased.
func ParseCSV(r io.Reader) ([]domain.Airport, error) {
	dec, err := csvutil.NewDecoder(csv.NewReader(r))
	if err != nil {
		return nil, fmt.Errorf("create airport csv decoder: %w", err)
	}

	var rows []domain.Airport
	if err := dec.Decode(&rows); err != nil {
		return nil, fmt.Errorf("decode airport csv: %w", err)
	}

	airports := make([]domain.Airport, 0, len(rows))
	for _, a := range rows {
		a.Code = strings.ToUpper(strings.TrimSpace(a.Code))
		if a.Code == "" {
			continue
		}
		a.City = strings.TrimSpace(a.City)
		a.State = strings.TrimSpace(a.State)
		a.Name = strings.TrimSpace(a.Name)
		airports = append(airports, a)
	}
	return airports, nil
}

// Directory is an in-memory airport table. The table is replaced wholesale by
// Refresh and read under a lock, so lookups never observe a partial reload.
type Directory struct {
	path string
	log  *logger.Logger

	mu     sync.RWMutex
	byCode map[string]domain.Airport
}

// NewDirectory loads the directory from the CSV file at path, or from the
// built-in table when path is empty.
func NewDirectory(path string, log *logger.Logger) (*Directory, error) {
	if log == nil {
		log = logger.Nop()
	}
	d := &Directory{path: path, log: log.WithComponent("airport-directory")}
	if err := d.Refresh(context.Background()); err != nil {
		return nil, err
	}
	return d, nil
}

// NewDirectoryFrom builds a fixed directory from the given airports.
// Refresh on such a directory reloads the built-in table.
func NewDirectoryFrom(airports []domain.Airport) *Directory {
	d := &Directory{log: logger.Nop()}
	d.swap(airports)
	return d
}

// Refresh reloads the table from its source. On failure the current table
// stays in place.
func (d *Directory) Refresh(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := d.read()
	if err != nil {
		return err
	}
	airports, err := ParseCSV(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("load airports from %s: %w", d.source(), err)
	}

	d.swap(airports)
	d.log.Info().Str("source", d.source()).Int("airports", len(airports)).Msg("airport directory loaded")
	return nil
}

// Lookup implements domain.AirportLookup.
func (d *Directory) Lookup(_ context.Context, code string) (domain.Airport, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	a, ok := d.byCode[strings.ToUpper(strings.TrimSpace(code))]
	return a, ok
}

// Len returns the number of airports in the table.
func (d *Directory) Len() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.byCode)
}

func (d *Directory) read() ([]byte, error) {
	if d.path == "" {
		return embeddedCSV, nil
	}
	data, err := os.ReadFile(d.path)
	if err != nil {
		return nil, fmt.Errorf("read airport table: %w", err)
	}
	return data, nil
}

func (d *Directory) source() string {
	if d.path == "" {
		return "embedded"
	}
	return d.path
}

func (d *Directory) swap(airports []domain.Airport) {
	byCode := make(map[string]domain.Airport, len(airports))
	for _, a := range airports {
		if _, dup := byCode[a.Code]; !dup {
			byCode[a.Code] = a
		}
	}

	d.mu.Lock()
	d.byCode = byCode
	d.mu.Unlock()
}

var _ domain.AirportLookup = (*Directory)(nil)
