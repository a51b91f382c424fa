// Package usecase implements the business logic for price forecasting.
package usecase

import (
	"context"
	"time"

	"energy_backend/internal/feature/forecast/domain"
	"energy_backend/internal/feature/forecast/domain/entity"
	"energy_backend/internal/feature/forecast/sarima"
)

// ModelProvider resolves the fitted model and the last observed date for a
// loaded series.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type ModelProvider interface {
	Model(name string) (*sarima.Model, time.Time, error)
}

// ForecastUsecase projects future prices from the fitted per-series models.
type ForecastUsecase struct {
	models ModelProvider
}

// NewForecastUsecase creates a new ForecastUsecase with the given provider.
func NewForecastUsecase(models ModelProvider) *ForecastUsecase {
	return &ForecastUsecase{models: models}
}

// Forecast returns days sequential forecast points for the named series.
// Dates are generated by adding 1, 2, ... days calendar days to the last
// observed date; the stepper does not skip weekends or holidays even when the
// underlying market data does.
func (u *ForecastUsecase) Forecast(ctx context.Context, series string, days int) ([]entity.ForecastPoint, error) {
	if days < 1 {
		return nil, domain.ErrInvalidArgument
	}

	model, lastDate, err := u.models.Model(series)
	if err != nil {
		return nil, err
	}

	values, err := model.Forecast(days)
	if err != nil {
		return nil, err
	}

	points := make([]entity.ForecastPoint, len(values))
	for i, v := range values {
		points[i] = entity.ForecastPoint{
			Date:  lastDate.AddDate(0, 0, i+1),
			Price: v,
		}
	}
	return points, nil
}
