package poll

import (
	"fmt"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	weekdaysEN = [7]string{"sunday", "monday", "tuesday", "wednesday", "thursday", "friday", "saturday"}
	weekdaysPT = [7]string{"domingo", "segunda", "terça", "quarta", "quinta", "sexta", "sábado"}
)

// DateGivenDay resolves a bare day-of-month against a reference date. A day
// at or after the reference day stays in the current month; a smaller day
// rolls over to the next month when that month has it. Anything else leaves
// the reference date untouched.
func DateGivenDay(date time.Time, day int) time.Time {
	if day >= date.Day() && day <= daysInMonth(date.Year(), date.Month()) {
		return time.Date(date.Year(), date.Month(), day, 0, 0, 0, 0, date.Location())
	}

	next := time.Date(date.Year(), date.Month(), 1, 0, 0, 0, 0, date.Location()).AddDate(0, 1, 0)

	if day > 0 && day < date.Day() && day <= daysInMonth(next.Year(), next.Month()) {
		return time.Date(next.Year(), next.Month(), day, 0, 0, 0, 0, date.Location())
	}

	return date
}

// EndOfWeek returns the Sunday at or after the given date.
func EndOfWeek(date time.Time) time.Time {
	remaining := (7 - int(date.Weekday())) % 7
	return date.AddDate(0, 0, remaining)
}

// WeeklyOptions produces one option label per day between start and end,
// inclusive, named after the weekday in the requested language.
func WeeklyOptions(start, end time.Time, portuguese bool) []string {
	names := weekdaysEN
	title := cases.Title(language.English)

	if portuguese {
		names = weekdaysPT
		title = cases.Title(language.Portuguese)
	}

	options := make([]string, 0)

	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		name := title.String(names[day.Weekday()])
		options = append(options, fmt.Sprintf("%s (%d)", name, day.Day()))
	}

	return options
}

func daysInMonth(year int, month time.Month) int {
	return time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 1, -1).Day()
}
