package usecase

import (
	"context"

	"energy_backend/internal/feature/prices/domain/entity"
)

// SeriesRepository abstracts the store of prepared price series.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type SeriesRepository interface {
	Prices(name string) ([]entity.PriceRecord, error)
	Aggregates(name string) ([]entity.MonthlyAggregate, error)
}

// Query carries the optional per-request restrictions on a price query.
type Query struct {
	FromDate string // inclusive ISO lower bound, empty for unbounded
	ToDate   string // inclusive ISO upper bound, empty for unbounded
	ShowMax  bool   // include the maximum price of the filtered window
}

// QueryResult is the outcome of a price query.
type QueryResult struct {
	Records []entity.PriceRecord
	Max     *float64 // highest price in Records, only when requested
}

// PricesUsecase serves read queries over loaded price series.
type PricesUsecase struct {
	repo SeriesRepository
}

// NewPricesUsecase creates a new PricesUsecase with the given repository.
func NewPricesUsecase(repo SeriesRepository) *PricesUsecase {
	return &PricesUsecase{repo: repo}
}

// GetPrices returns the named series restricted to the query's date window.
func (u *PricesUsecase) GetPrices(ctx context.Context, name string, q Query) (QueryResult, error) {
	records, err := u.repo.Prices(name)
	if err != nil {
		return QueryResult{}, err
	}

	records, err = Filter(records, q.FromDate, q.ToDate)
	if err != nil {
		return QueryResult{}, err
	}

	result := QueryResult{Records: records}
	if q.ShowMax && len(records) > 0 {
		max := records[0].Price
		for _, r := range records[1:] {
			if r.Price > max {
				max = r.Price
			}
		}
		result.Max = &max
	}
	return result, nil
}

// GetMonthly returns the monthly aggregate table for the named series.
func (u *PricesUsecase) GetMonthly(ctx context.Context, name string) ([]entity.MonthlyAggregate, error) {
	return u.repo.Aggregates(name)
}
