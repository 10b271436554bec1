package pricing

import "fmt"

// FormatPrice renders an amount as a US dollar string, e.g. "$97.50"
func FormatPrice(amount float64) string {
	return fmt.Sprintf("$%.2f", amount)
}

// FormatTime renders an "HH:MM" string as 12-hour clock time, e.g. "7:00 PM"
func FormatTime(t string) string {
	hour, minute, err := parseClock(t)
	if err != nil {
		return t
	}
	period := "AM"
	if hour >= 12 {
		period = "PM"
	}
	displayHour := hour % 12
	if displayHour == 0 {
		displayHour = 12
	}
	return fmt.Sprintf("%d:%02d %s", displayHour, minute, period)
}
