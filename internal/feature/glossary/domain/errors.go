// Package domain defines domain-level errors for the glossary feature.
package domain

import "errors"

// ErrUnknownTerm indicates a lookup for a term that is not in the glossary.
// Unknown terms are a lookup failure, never an empty success.
var ErrUnknownTerm = errors.New("unknown term")
