package utils

import "time"

const ShortDashDateLayout = "2006-01-02"

// HistoryWindowDays is how far back portfolio history queries reach.
const HistoryWindowDays = 30

// HistoryWindowStart returns the lower bound for history queries relative to now.
func HistoryWindowStart(now time.Time) time.Time {
	return now.AddDate(0, 0, -HistoryWindowDays)
}
