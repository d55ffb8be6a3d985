package dateutil

import (
	"time"
)

// CurrentYear returns the calendar year for a given instant. The engine core
// never calls this; it exists so presentation layers can supply an explicit
// as-of year to the engine.
func CurrentYear(now time.Time) int {
	return now.Year()
}

// PeriodToCalendarYear maps an abstract period index onto the calendar,
// anchored at the supplied as-of year.
func PeriodToCalendarYear(asOfYear, periodIndex int) int {
	return asOfYear + periodIndex
}

// YearsBetween returns the whole-year distance from one calendar year to
// another, floored at zero for targets in the past.
func YearsBetween(fromYear, toYear int) int {
	if toYear < fromYear {
		return 0
	}
	return toYear - fromYear
}

// DaysInYear returns the number of days in a calendar year
func DaysInYear(year int) int {
	if IsLeapYear(year) {
		return 366
	}
	return 365
}

// IsLeapYear reports whether a calendar year is a leap year
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}
