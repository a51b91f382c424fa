// Package csvsource reads price tables from CSV files.
//
// A price table has a Date,Price header followed by one row per trading day.
// Parsing of the values themselves is left to the preparer so that the file
// adapter stays a thin reader.
package csvsource

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"energy_backend/internal/feature/prices/domain"
	"energy_backend/internal/feature/prices/usecase"
)

// Source reads raw price rows from CSV files on disk.
type Source struct{}

// NewSource creates a new CSV price source.
func NewSource() *Source {
	return &Source{}
}

// ReadRows reads all data rows from the price table at path.
// The header must contain Date and Price columns, in that order.
func (s *Source) ReadRows(path string) ([]usecase.RawRow, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open price table: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1 // row width is validated below, per row

	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("%w: missing header in %s", domain.ErrDataFormat, path)
	}
	if len(header) < 2 || strings.TrimSpace(header[0]) != "Date" || strings.TrimSpace(header[1]) != "Price" {
		return nil, fmt.Errorf("%w: expected Date,Price header in %s", domain.ErrDataFormat, path)
	}

	rows := make([]usecase.RawRow, 0, 256)
	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrDataFormat, err)
		}
		if len(rec) == 1 && strings.TrimSpace(rec[0]) == "" {
			continue
		}
		if len(rec) < 2 {
			return nil, fmt.Errorf("%w: short row in %s", domain.ErrDataFormat, path)
		}
		rows = append(rows, usecase.RawRow{Date: rec[0], Price: rec[1]})
	}
	return rows, nil
}
