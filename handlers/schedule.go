// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import "time"

// EventDateFormat is the wire format for event dates.
const EventDateFormat = "2006-01-02"

// NextWednesday returns the date of the upcoming movie night: the next
// Wednesday, or today if today is Wednesday, formatted as YYYY-MM-DD.
func NextWednesday(now time.Time) string {
	days := (int(time.Wednesday) - int(now.Weekday()) + 7) % 7
	return now.AddDate(0, 0, days).Format(EventDateFormat)
}
