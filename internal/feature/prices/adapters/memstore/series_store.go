// Package memstore holds loaded price series and their fitted models in memory.
package memstore

import (
	"fmt"
	"sync"
	"time"

	"energy_backend/internal/feature/forecast/sarima"
	"energy_backend/internal/feature/prices/domain"
	"energy_backend/internal/feature/prices/domain/entity"
)

// seriesEntry is one fully prepared series. Entries are built completely
// before being placed into the store, so readers never see a partial one.
type seriesEntry struct {
	records    []entity.PriceRecord
	aggregates []entity.MonthlyAggregate
	model      *sarima.Model
}

// SeriesStore is a concurrency-safe registry of prepared series keyed by name.
// Load replaces an entry atomically; once Load returns, every subsequent
// Prices/Aggregates/Model call observes the new data.
type SeriesStore struct {
	mu     sync.RWMutex
	series map[string]seriesEntry
}

// NewSeriesStore creates an empty SeriesStore.
func NewSeriesStore() *SeriesStore {
	return &SeriesStore{series: make(map[string]seriesEntry)}
}

// Load stores a prepared series under the given name, replacing any previous entry.
func (s *SeriesStore) Load(name string, records []entity.PriceRecord, aggregates []entity.MonthlyAggregate, model *sarima.Model) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.series[name] = seriesEntry{records: records, aggregates: aggregates, model: model}
}

// Prices returns the daily records for a loaded series.
func (s *SeriesStore) Prices(name string) ([]entity.PriceRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.series[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownSeries, name)
	}
	return e.records, nil
}

// Aggregates returns the monthly aggregate table for a loaded series.
func (s *SeriesStore) Aggregates(name string) ([]entity.MonthlyAggregate, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.series[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownSeries, name)
	}
	return e.aggregates, nil
}

// Model returns the fitted model and the last observed date for a loaded series.
func (s *SeriesStore) Model(name string) (*sarima.Model, time.Time, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.series[name]
	if !ok || len(e.records) == 0 {
		return nil, time.Time{}, fmt.Errorf("%w: %q", domain.ErrUnknownSeries, name)
	}
	return e.model, e.records[len(e.records)-1].Date, nil
}
