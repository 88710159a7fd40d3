// Package format renders monetary amounts and dates for the Indonesian
// locale. Amounts are integers in the smallest currency unit and the Rupiah
// has no fractional digits.
package format

import (
	"fmt"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.Indonesian)

var days = [...]string{
	"Minggu", "Senin", "Selasa", "Rabu", "Kamis", "Jumat", "Sabtu",
}

var months = [...]string{
	"Januari", "Februari", "Maret", "April", "Mei", "Juni",
	"Juli", "Agustus", "September", "Oktober", "November", "Desember",
}

// Rupiah renders an amount with locale-aware digit grouping, e.g.
// Rupiah(1500000) == "Rp1.500.000".
func Rupiah(amount int64) string {
	return printer.Sprintf("Rp%d", amount)
}

// LongDate renders the long Indonesian form: weekday, day, month, year,
// e.g. "Senin, 5 Januari 2026". The year is not digit-grouped.
func LongDate(t time.Time) string {
	return fmt.Sprintf("%s, %d %s %d",
		days[int(t.Weekday())], t.Day(), months[int(t.Month())-1], t.Year())
}

// DayName returns the Indonesian weekday name for a schedule day-of-week
// (0=Sunday through 6=Saturday).
func DayName(dayOfWeek int) string {
	if dayOfWeek < 0 || dayOfWeek > 6 {
		return ""
	}
	return days[dayOfWeek]
}
