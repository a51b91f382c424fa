// Package entity defines the domain models for the forecast feature.
package entity

import "time"

// ForecastPoint is one projected price for a date strictly after the last
// observed date of the fitted series.
type ForecastPoint struct {
	Date  time.Time
	Price float64
}
