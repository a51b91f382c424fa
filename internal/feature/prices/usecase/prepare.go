// Package usecase implements the business logic for price series operations.
package usecase

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
	"time"

	"energy_backend/internal/feature/prices/domain"
	"energy_backend/internal/feature/prices/domain/entity"
)

const (
	// MovingAverageWindow is the trailing window for the MA90 column.
	MovingAverageWindow = 90

	// dayFirstLayout is the day-first numeric date format, e.g. "31/12/2020".
	dayFirstLayout = "02/01/2006"
	// isoLayout is the ISO date format, e.g. "2020-12-31".
	isoLayout = "2006-01-02"
	// monthLayout is the month grouping label, e.g. "2020/12".
	monthLayout = "2006/01"
)

// RawRow is one unparsed record from a price table.
type RawRow struct {
	Date  string
	Price string
}

// ParseRecordDate parses a raw date string, accepting the day-first numeric
// format first and falling back to ISO.
func ParseRecordDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if d, err := time.Parse(dayFirstLayout, s); err == nil {
		return d, nil
	}
	d, err := time.Parse(isoLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: date %q", domain.ErrDataFormat, s)
	}
	return d, nil
}

// Prepare parses raw daily price rows and derives the trailing moving average
// and the monthly aggregate table. Rows are expected in ascending date order
// and are not re-sorted or deduplicated. Prepare is a pure transformation:
// identical input always yields identical output.
func Prepare(rows []RawRow) ([]entity.PriceRecord, []entity.MonthlyAggregate, error) {
	records := make([]entity.PriceRecord, 0, len(rows))
	for _, row := range rows {
		date, err := ParseRecordDate(row.Date)
		if err != nil {
			return nil, nil, err
		}
		price, err := strconv.ParseFloat(strings.TrimSpace(row.Price), 64)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: price %q", domain.ErrDataFormat, row.Price)
		}
		records = append(records, entity.PriceRecord{Date: date, Price: price, Forecast: price})
	}

	attachMovingAverage(records)
	return records, aggregateMonthly(records), nil
}

// attachMovingAverage fills the MA90 column with the arithmetic mean of the
// trailing MovingAverageWindow values, current value included. Positions
// before the window is full stay nil.
func attachMovingAverage(records []entity.PriceRecord) {
	var sum float64
	for i := range records {
		sum += records[i].Price
		if i >= MovingAverageWindow {
			sum -= records[i-MovingAverageWindow].Price
		}
		if i >= MovingAverageWindow-1 {
			ma := sum / float64(MovingAverageWindow)
			records[i].MA90 = &ma
		}
	}
}

// aggregateMonthly groups records by calendar month and computes one summary
// row per month. The month-over-month percent change is computed from the
// monthly mean price series, not the closing price; this matches the observed
// behavior of the reference tables and is kept as-is.
func aggregateMonthly(records []entity.PriceRecord) []entity.MonthlyAggregate {
	type bucket struct {
		prices []float64
	}
	buckets := map[string]*bucket{}
	labels := make([]string, 0)
	for _, r := range records {
		label := r.Date.Format(monthLayout)
		b, ok := buckets[label]
		if !ok {
			b = &bucket{}
			buckets[label] = b
			labels = append(labels, label)
		}
		b.prices = append(b.prices, r.Price)
	}
	sort.Strings(labels)

	out := make([]entity.MonthlyAggregate, 0, len(labels))
	var prevAverage float64
	for i, label := range labels {
		prices := buckets[label].prices
		agg := entity.MonthlyAggregate{
			Month: label,
			First: prices[0],
			Last:  prices[len(prices)-1],
			High:  math.Inf(-1),
			Low:   math.Inf(1),
		}
		var sum float64
		for _, p := range prices {
			sum += p
			if p > agg.High {
				agg.High = p
			}
			if p < agg.Low {
				agg.Low = p
			}
		}
		agg.Average = sum / float64(len(prices))
		agg.ChangePct = round3((agg.Last - agg.First) / agg.First * 100)
		if sd, ok := sampleStdDev(prices, agg.Average); ok {
			agg.StdDev = &sd
		}
		if i > 0 {
			pct := (agg.Average - prevAverage) / prevAverage * 100
			agg.AvgChangePct = &pct
		}
		prevAverage = agg.Average
		out = append(out, agg)
	}
	return out
}

// sampleStdDev returns the sample standard deviation (n-1 denominator).
// It is undefined for fewer than two values.
func sampleStdDev(values []float64, mean float64) (float64, bool) {
	if len(values) < 2 {
		return 0, false
	}
	var ss float64
	for _, v := range values {
		d := v - mean
		ss += d * d
	}
	return math.Sqrt(ss / float64(len(values)-1)), true
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
