package usecase

import (
	"fmt"
	"time"

	"energy_backend/internal/feature/prices/domain"
	"energy_backend/internal/feature/prices/domain/entity"
)

// Filter restricts a daily series to an inclusive date window. Both bounds are
// optional ISO date strings; an empty bound means unbounded on that side.
// The comparison is made on the ISO-formatted date, so it matches the wire
// representation exactly. The input slice is not mutated; the result is a new
// slice preserving the original order.
func Filter(records []entity.PriceRecord, fromDate, toDate string) ([]entity.PriceRecord, error) {
	if fromDate != "" {
		if _, err := time.Parse(isoLayout, fromDate); err != nil {
			return nil, fmt.Errorf("%w: from_date %q", domain.ErrValidation, fromDate)
		}
	}
	if toDate != "" {
		if _, err := time.Parse(isoLayout, toDate); err != nil {
			return nil, fmt.Errorf("%w: to_date %q", domain.ErrValidation, toDate)
		}
	}

	out := make([]entity.PriceRecord, 0, len(records))
	for _, r := range records {
		iso := r.Date.Format(isoLayout)
		if fromDate != "" && iso < fromDate {
			continue
		}
		if toDate != "" && iso > toDate {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}
