package cache

import (
	"time"
)

// TimeUntilMidnightUTC returns the duration until the next UTC day rollover.
// Session tokens and cached forecasts both stop being valid at that boundary.
func TimeUntilMidnightUTC() time.Duration {
	now := time.Now().UTC()
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC).Add(24 * time.Hour)
	return midnight.Sub(now)
}
