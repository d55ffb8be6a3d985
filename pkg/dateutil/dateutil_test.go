package dateutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCurrentYear(t *testing.T) {
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, 2026, CurrentYear(now))
}

func TestPeriodToCalendarYear(t *testing.T) {
	assert.Equal(t, 2026, PeriodToCalendarYear(2026, 0))
	assert.Equal(t, 2037, PeriodToCalendarYear(2026, 11))
	assert.Equal(t, 2076, PeriodToCalendarYear(2026, 50))
}

func TestYearsBetween(t *testing.T) {
	assert.Equal(t, 11, YearsBetween(2026, 2037))
	assert.Equal(t, 0, YearsBetween(2026, 2026))
	assert.Equal(t, 0, YearsBetween(2026, 2020))
}

func TestDaysInYear(t *testing.T) {
	assert.Equal(t, 366, DaysInYear(2024))
	assert.Equal(t, 365, DaysInYear(2026))
	assert.Equal(t, 365, DaysInYear(1900))
	assert.Equal(t, 366, DaysInYear(2000))
}

func TestIsLeapYear(t *testing.T) {
	assert.True(t, IsLeapYear(2024))
	assert.False(t, IsLeapYear(2026))
	assert.False(t, IsLeapYear(1900))
	assert.True(t, IsLeapYear(2000))
}
