// Package usecase implements the terminology lookup for the glossary feature.
package usecase

import (
	"fmt"

	"energy_backend/internal/feature/glossary/domain"
)

// terminology is the fixed glossary served verbatim to clients. The wording,
// including the external link, is part of the response contract.
var terminology = map[string]string{
	"MA90":     "Moving Average over the last 90 days",
	"Forecast": "ARIMA used: more info on https://www.investopedia.com/terms/a/autoregressive-integrated-moving-average-arima.asp about how this works",
	"GasPrice": "Daily market averages",
	"OilPrice": "Daily market averages",
}

// GlossaryUsecase resolves domain jargon to human-readable definitions.
type GlossaryUsecase struct{}

// NewGlossaryUsecase creates a new GlossaryUsecase.
func NewGlossaryUsecase() *GlossaryUsecase {
	return &GlossaryUsecase{}
}

// Lookup returns the definition for a term, or domain.ErrUnknownTerm.
func (u *GlossaryUsecase) Lookup(term string) (string, error) {
	def, ok := terminology[term]
	if !ok {
		return "", fmt.Errorf("%w: %q", domain.ErrUnknownTerm, term)
	}
	return def, nil
}
