// Package domain defines domain-level errors for the forecast feature.
package domain

import "errors"

var (
	// ErrModelFit indicates that the model could not be fitted, typically
	// because the historical series is empty or too short for the seasonal period.
	ErrModelFit = errors.New("model fit failed")

	// ErrInvalidArgument indicates a forecast request with a horizon below one day.
	ErrInvalidArgument = errors.New("invalid forecast horizon")
)
