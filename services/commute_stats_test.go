package services

import (
	"testing"

	"github.com/Henry-L/hl-apps/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func entry(day, departure string, duration int) models.CommuteEntry {
	return models.CommuteEntry{
		DayOfWeek:       day,
		DepartureTime:   departure,
		DurationMinutes: duration,
	}
}

func TestComputeDuration(t *testing.T) {
	d, err := ComputeDuration("08:05", "08:47")
	require.NoError(t, err)
	assert.Equal(t, 42, d)

	d, err = ComputeDuration("09:00", "09:00")
	require.NoError(t, err)
	assert.Equal(t, 0, d)
}

func TestComputeDurationArrivalBeforeDeparture(t *testing.T) {
	_, err := ComputeDuration("09:30", "09:00")
	assert.ErrorIs(t, err, ErrArrivalBeforeDeparture)

	// Midnight-crossing commutes are rejected, not wrapped
	_, err = ComputeDuration("23:50", "00:10")
	assert.ErrorIs(t, err, ErrArrivalBeforeDeparture)
}

func TestComputeDurationInvalidInput(t *testing.T) {
	for _, bad := range []string{"8am", "25:00", "08:60", "0800", ""} {
		_, err := ComputeDuration(bad, "09:00")
		assert.Error(t, err, "departure %q", bad)
	}
}

func TestDayOfWeek(t *testing.T) {
	day, err := DayOfWeek("2024-01-01")
	require.NoError(t, err)
	assert.Equal(t, "Monday", day)

	day, err = DayOfWeek("2024-01-07")
	require.NoError(t, err)
	assert.Equal(t, "Sunday", day)

	_, err = DayOfWeek("01/01/2024")
	assert.Error(t, err)
}

func TestComputeOverallStatsEmpty(t *testing.T) {
	stats := ComputeOverallStats(nil)
	assert.Equal(t, models.OverallStats{}, stats)
}

func TestComputeOverallStats(t *testing.T) {
	records := []models.CommuteEntry{
		entry("Monday", "08:00", 30),
		entry("Monday", "08:15", 32),
		entry("Tuesday", "08:30", 40),
	}
	stats := ComputeOverallStats(records)
	assert.Equal(t, 34, stats.AvgDuration)
	assert.Equal(t, 30, stats.BestCommuteDuration)
	assert.Equal(t, 3, stats.TotalCommutes)
}

func TestDayStatsOptimalWindow(t *testing.T) {
	// avg 34, threshold 30 + (34-30)*0.3 = 31.2, only the 30-minute
	// commute qualifies
	commutes := []models.CommuteEntry{
		entry("Monday", "08:10", 30),
		entry("Monday", "07:45", 32),
		entry("Monday", "08:30", 40),
	}
	ds := dayStats("Monday", commutes)
	assert.Equal(t, 34, ds.AvgDuration)
	assert.Equal(t, 30, ds.MinDuration)
	assert.Equal(t, 40, ds.MaxDuration)
	assert.Equal(t, 3, ds.TotalCommutes)
	assert.Equal(t, "08:10", ds.OptimalDepartureStart)
	assert.Equal(t, "08:10", ds.OptimalDepartureEnd)
}

func TestDayStatsEqualDurations(t *testing.T) {
	// Threshold degenerates to the shared duration; the comparison is
	// inclusive so every commute is good
	commutes := []models.CommuteEntry{
		entry("Friday", "08:20", 25),
		entry("Friday", "07:55", 25),
	}
	ds := dayStats("Friday", commutes)
	assert.Equal(t, "07:55", ds.OptimalDepartureStart)
	assert.Equal(t, "08:20", ds.OptimalDepartureEnd)
}

func TestDayStatsNoRecords(t *testing.T) {
	ds := dayStats("Wednesday", nil)
	assert.Equal(t, "Wednesday", ds.Day)
	assert.Zero(t, ds.AvgDuration)
	assert.Zero(t, ds.TotalCommutes)
	assert.Equal(t, NoOptimalTime, ds.OptimalDepartureStart)
	assert.Equal(t, NoOptimalTime, ds.OptimalDepartureEnd)
}

func TestComputeByDayStats(t *testing.T) {
	records := []models.CommuteEntry{
		entry("Wednesday", "08:00", 35),
		entry("Monday", "08:10", 30),
		entry("Saturday", "10:00", 20),
	}
	stats := ComputeByDayStats(records)

	// Weekday order is fixed, empty days and weekends are dropped
	require.Len(t, stats, 2)
	assert.Equal(t, "Monday", stats[0].Day)
	assert.Equal(t, "Wednesday", stats[1].Day)
}

func TestMinutesToTimePadding(t *testing.T) {
	assert.Equal(t, "08:05", minutesToTime(8*60+5))
	assert.Equal(t, "00:00", minutesToTime(0))
	assert.Equal(t, "23:59", minutesToTime(23*60+59))
}
