// Package domain defines domain-level errors for the prices feature.
package domain

import "errors"

// Domain errors for price series operations.
// These errors represent business logic failures and should be handled appropriately by upper layers.
var (
	// ErrDataFormat indicates that a raw row could not be parsed, either
	// because its date matches neither accepted format or its price is not numeric.
	ErrDataFormat = errors.New("unparseable price record")

	// ErrUnknownSeries indicates that no price series is loaded under the requested name.
	ErrUnknownSeries = errors.New("unknown price series")

	// ErrValidation indicates that a supplied filter bound is not a valid date.
	ErrValidation = errors.New("invalid filter bound")
)
