package services

import "time"

const dateLayout = "2006-01-02"

// recentCutoff returns the oldest date string still inside an n-day window
// ending today. Dates sort lexicographically, so range filters compare
// strings directly.
func recentCutoff(now time.Time, n int) string {
	if n < 1 {
		n = 1
	}
	return now.AddDate(0, 0, -(n - 1)).Format(dateLayout)
}
