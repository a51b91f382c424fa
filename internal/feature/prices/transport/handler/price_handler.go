// Package handler provides the HTTP handlers for the prices feature.
package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	forecastdomain "energy_backend/internal/feature/forecast/domain"
	forecastentity "energy_backend/internal/feature/forecast/domain/entity"
	"energy_backend/internal/feature/prices/domain"
	"energy_backend/internal/feature/prices/domain/entity"
	"energy_backend/internal/feature/prices/transport/http/dto"
	"energy_backend/internal/feature/prices/usecase"
)

const isoLayout = "2006-01-02"

// PricesUsecase defines the price query operations used by the handlers.
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type PricesUsecase interface {
	GetPrices(ctx context.Context, name string, q usecase.Query) (usecase.QueryResult, error)
	GetMonthly(ctx context.Context, name string) ([]entity.MonthlyAggregate, error)
}

// Forecaster projects future prices for a loaded series.
type Forecaster interface {
	Forecast(ctx context.Context, series string, days int) ([]forecastentity.ForecastPoint, error)
}

// PriceHandler handles the legacy /fuelprice endpoint and the monthly table.
type PriceHandler struct {
	uc         PricesUsecase
	forecaster Forecaster
	// seriesByQuery maps wire series names ("OilPrice") to store names ("Oil").
	seriesByQuery map[string]string
	// maxForecastDays caps the forecast horizon accepted on the wire.
	maxForecastDays int
}

// NewPriceHandler creates a new PriceHandler.
func NewPriceHandler(uc PricesUsecase, forecaster Forecaster, seriesByQuery map[string]string, maxForecastDays int) *PriceHandler {
	return &PriceHandler{
		uc:              uc,
		forecaster:      forecaster,
		seriesByQuery:   seriesByQuery,
		maxForecastDays: maxForecastDays,
	}
}

// GetFuelPrice handles:
//
//	GET /fuelprice?series=OilPrice[&from_date=][&to_date=][&show_max=True][&MA90=True][&Forecast=n]
//
// The "True" literals and the response key casing are part of the legacy wire
// contract. A request without a series parameter answers an empty object, as
// the reference did.
func (h *PriceHandler) GetFuelPrice(c *gin.Context) {
	wireName := c.Query("series")
	if wireName == "" {
		c.JSON(http.StatusOK, gin.H{})
		return
	}
	name, ok := h.seriesByQuery[wireName]
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown series"})
		return
	}

	result, err := h.uc.GetPrices(c.Request.Context(), name, usecase.Query{
		FromDate: c.Query("from_date"),
		ToDate:   c.Query("to_date"),
		ShowMax:  c.Query("show_max") == "True",
	})
	if err != nil {
		h.writeError(c, err)
		return
	}

	resp := dto.PriceQueryResponse{Series: name, Max: result.Max}

	if raw := c.Query("Forecast"); raw != "" {
		days, err := strconv.Atoi(raw)
		if err != nil || days > h.maxForecastDays {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid forecast horizon"})
			return
		}
		points, err := h.forecaster.Forecast(c.Request.Context(), name, days)
		if err != nil {
			h.writeError(c, err)
			return
		}
		resp.Forecast = make([]dto.ForecastPoint, len(points))
		for i, p := range points {
			resp.Forecast[i] = dto.ForecastPoint{Date: p.Date.Format(isoLayout), Price: p.Price}
		}
	}

	withMA := c.Query("MA90") == "True"
	resp.Prices = make([]dto.PricePoint, len(result.Records))
	for i, r := range result.Records {
		p := dto.PricePoint{Date: r.Date.Format(isoLayout), Price: r.Price}
		if withMA {
			p.MA90 = r.MA90
		}
		resp.Prices[i] = p
	}

	c.JSON(http.StatusOK, resp)
}

// GetMonthly handles GET /fuelprice/monthly?series=OilPrice.
// The route sits behind the session middleware.
func (h *PriceHandler) GetMonthly(c *gin.Context) {
	wireName := c.Query("series")
	name, ok := h.seriesByQuery[wireName]
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown series"})
		return
	}

	aggregates, err := h.uc.GetMonthly(c.Request.Context(), name)
	if err != nil {
		h.writeError(c, err)
		return
	}

	resp := dto.MonthlyResponse{Series: name, Months: make([]dto.MonthlyRow, len(aggregates))}
	for i, a := range aggregates {
		resp.Months[i] = dto.MonthlyRow{
			Month:     a.Month,
			First:     a.First,
			Last:      a.Last,
			Change:    a.ChangePct,
			Averages:  a.Average,
			PctChange: a.AvgChangePct,
			SD:        a.StdDev,
			High:      a.High,
			Min:       a.Low,
		}
	}

	c.JSON(http.StatusOK, resp)
}

// writeError maps domain errors to HTTP statuses with a plain error envelope.
func (h *PriceHandler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrUnknownSeries):
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown series"})
	case errors.Is(err, domain.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date bound"})
	case errors.Is(err, forecastdomain.ErrInvalidArgument):
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid forecast horizon"})
	case errors.Is(err, forecastdomain.ErrModelFit):
		c.JSON(http.StatusInternalServerError, gin.H{"error": "forecast unavailable"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
