package delivery

import "time"

const (
	DailyDeliveryLimit = 5

	pickupWindowStartHour = 8
	pickupWindowEndHour   = 18
)

// IsWithinPickupWindow: [08:00:00, 18:00:00] включительно, в часовом поясе now
func IsWithinPickupWindow(now time.Time) bool {
	// границы по настенным часам: в дни перехода на летнее время сутки не равны 24h
	year, month, day := now.Date()
	windowStart := time.Date(year, month, day, pickupWindowStartHour, 0, 0, 0, now.Location())
	windowEnd := time.Date(year, month, day, pickupWindowEndHour, 0, 0, 0, now.Location())

	return !now.Before(windowStart) && !now.After(windowEnd)
}

func IsQuotaExhausted(startedToday int64) bool {
	return startedToday >= DailyDeliveryLimit
}

func startOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}
