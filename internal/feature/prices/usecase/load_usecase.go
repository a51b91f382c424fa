package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"energy_backend/internal/feature/forecast/sarima"
	"energy_backend/internal/feature/prices/domain/entity"
)

// RawSource reads raw rows from a persisted price table.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type RawSource interface {
	ReadRows(path string) ([]RawRow, error)
}

// SeriesWriter accepts a fully prepared series for publication to readers.
type SeriesWriter interface {
	Load(name string, records []entity.PriceRecord, aggregates []entity.MonthlyAggregate, model *sarima.Model)
}

// ForecastInvalidator drops cached forecast output for a series after its
// underlying data changed.
type ForecastInvalidator interface {
	Invalidate(ctx context.Context, series string) error
}

// SeriesFile names one price table to load.
type SeriesFile struct {
	Name string // series name, e.g. "Oil"
	Path string // CSV file path
}

// LoadUsecase reads, prepares and fits price series, then publishes them to
// the store. Fitting is CPU-bound, so loads belong at startup or on the
// scheduler goroutine, never on a request goroutine.
type LoadUsecase struct {
	source      RawSource
	store       SeriesWriter
	invalidator ForecastInvalidator
}

// NewLoadUsecase creates a new LoadUsecase. invalidator may be nil when no
// forecast cache is configured.
func NewLoadUsecase(source RawSource, store SeriesWriter, invalidator ForecastInvalidator) *LoadUsecase {
	return &LoadUsecase{source: source, store: store, invalidator: invalidator}
}

// LoadOne loads a single series: read, prepare, fit, publish. The new entry
// becomes visible to readers only once it is complete.
func (lu *LoadUsecase) LoadOne(ctx context.Context, name, path string) error {
	rows, err := lu.source.ReadRows(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", name, err)
	}

	records, aggregates, err := Prepare(rows)
	if err != nil {
		return fmt.Errorf("prepare %s: %w", name, err)
	}

	prices := make([]float64, len(records))
	for i, r := range records {
		prices[i] = r.Price
	}
	model, err := sarima.Fit(prices)
	if err != nil {
		return fmt.Errorf("fit %s: %w", name, err)
	}

	lu.store.Load(name, records, aggregates, model)

	if lu.invalidator != nil {
		// Best effort: a stale cache entry expires at the day boundary anyway.
		if err := lu.invalidator.Invalidate(ctx, name); err != nil {
			slog.Warn("forecast cache invalidation failed", "series", name, "error", err)
		}
	}

	slog.Info("series loaded", "series", name, "records", len(records), "months", len(aggregates))
	return nil
}

// LoadAll loads every listed series. A failure on one series is logged and
// does not stop the others; the first error is returned after all attempts.
func (lu *LoadUsecase) LoadAll(ctx context.Context, files []SeriesFile) error {
	var firstErr error
	for _, f := range files {
		if err := lu.LoadOne(ctx, f.Name, f.Path); err != nil {
			slog.Error("failed to load series", "series", f.Name, "path", f.Path, "error", err)
			if firstErr == nil {
				firstErr = err
			}
		}
	}
	return firstErr
}
