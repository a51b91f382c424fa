// Package entity defines the domain models for the prices feature.
package entity

import "time"

// PriceRecord represents one daily price observation for an energy instrument.
type PriceRecord struct {
	Date     time.Time // Trading date for this observation
	Price    float64   // Daily market average price
	MA90     *float64  // Trailing 90-day moving average; nil for the first 89 positions
	Forecast float64   // Mirrors Price until replaced by actual forecast output
}

// MonthlyAggregate is one summary row per calendar month distilled from a
// daily price series.
type MonthlyAggregate struct {
	Month        string   // Month label, "YYYY/MM", lexicographically sortable
	First        float64  // Opening price of the month
	Last         float64  // Closing price of the month
	ChangePct    float64  // (Last-First)/First * 100, rounded to 3 decimals
	Average      float64  // Mean of the month's daily prices
	AvgChangePct *float64 // Percent change of Average vs the prior month; nil for the first month
	StdDev       *float64 // Sample standard deviation; nil for single-record months
	High         float64  // Highest daily price in the month
	Low          float64  // Lowest daily price in the month
}
