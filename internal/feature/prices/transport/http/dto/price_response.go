// Package dto defines data transfer objects for the prices feature's HTTP transport layer.
//
// The JSON key casing reproduces the legacy wire contract: the dashboard
// client indexes columns by these exact names.
package dto

// PricePoint is one daily observation in a price query response.
type PricePoint struct {
	Date  string   `json:"Date"`
	Price float64  `json:"Price"`
	MA90  *float64 `json:"MA90,omitempty"`
}

// ForecastPoint is one projected observation. Unlike PricePoint its keys are
// lowercase; the reference emitted forecast rows that way.
type ForecastPoint struct {
	Date  string  `json:"date"`
	Price float64 `json:"price"`
}

// PriceQueryResponse is the body of a /fuelprice response.
type PriceQueryResponse struct {
	Series   string          `json:"series"`
	Max      *float64        `json:"Max,omitempty"`
	Forecast []ForecastPoint `json:"Forecast,omitempty"`
	Prices   []PricePoint    `json:"Prices"`
}

// MonthlyRow is one month of the aggregate table. Column names follow the
// reference table (High/Min asymmetry included).
type MonthlyRow struct {
	Month     string   `json:"Month"`
	First     float64  `json:"First"`
	Last      float64  `json:"Last"`
	Change    float64  `json:"Change"`
	Averages  float64  `json:"Averages"`
	PctChange *float64 `json:"PCT_Change"`
	SD        *float64 `json:"SD"`
	High      float64  `json:"High"`
	Min       float64  `json:"Min"`
}

// MonthlyResponse is the body of a /fuelprice/monthly response.
type MonthlyResponse struct {
	Series string       `json:"series"`
	Months []MonthlyRow `json:"Months"`
}
