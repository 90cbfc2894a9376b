package services

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/Henry-L/hl-apps/models"
)

// goodCommuteFactor defines "good" commutes as those within the bottom 30%
// of the [min, avg] duration range for a weekday. Policy constant, not
// configurable.
const goodCommuteFactor = 0.3

// NoOptimalTime is the sentinel rendered when a weekday has no departure
// recommendation.
const NoOptimalTime = "--:--"

// analysisDays limits by-day stats to commute days. Weekends are skipped.
var analysisDays = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"}

var weekdayNames = [7]string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}

// ErrArrivalBeforeDeparture is returned when a commute would have a
// negative duration. Commutes crossing midnight are not supported and are
// rejected rather than wrapped.
var ErrArrivalBeforeDeparture = errors.New("arrival time must be after departure time")

// ComputeDuration returns the commute length in minutes from two HH:MM
// times on the same day.
func ComputeDuration(departureTime, arrivalTime string) (int, error) {
	dep, err := timeToMinutes(departureTime)
	if err != nil {
		return 0, err
	}
	arr, err := timeToMinutes(arrivalTime)
	if err != nil {
		return 0, err
	}
	duration := arr - dep
	if duration < 0 {
		return 0, ErrArrivalBeforeDeparture
	}
	return duration, nil
}

// DayOfWeek returns the English weekday name for a YYYY-MM-DD date.
func DayOfWeek(date string) (string, error) {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return "", fmt.Errorf("invalid date %q: %w", date, err)
	}
	return weekdayNames[int(t.Weekday())], nil
}

// ComputeOverallStats aggregates every record a user has logged. An empty
// record set yields a zero-valued result so callers can render a "no data
// yet" state.
func ComputeOverallStats(records []models.CommuteEntry) models.OverallStats {
	if len(records) == 0 {
		return models.OverallStats{}
	}
	total := 0
	best := records[0].DurationMinutes
	for _, r := range records {
		total += r.DurationMinutes
		if r.DurationMinutes < best {
			best = r.DurationMinutes
		}
	}
	avg := int(math.Round(float64(total) / float64(len(records))))
	return models.OverallStats{
		AvgDuration:         avg,
		BestCommuteDuration: best,
		TotalCommutes:       len(records),
	}
}

// ComputeByDayStats returns per-weekday stats for Monday through Friday, in
// that order, skipping weekdays with no records.
func ComputeByDayStats(records []models.CommuteEntry) []models.DayStats {
	byDay := make(map[string][]models.CommuteEntry)
	for _, r := range records {
		byDay[r.DayOfWeek] = append(byDay[r.DayOfWeek], r)
	}

	stats := make([]models.DayStats, 0, len(analysisDays))
	for _, day := range analysisDays {
		ds := dayStats(day, byDay[day])
		if ds.TotalCommutes == 0 {
			continue
		}
		stats = append(stats, ds)
	}
	return stats
}

// dayStats computes one weekday's stats, including the optimal departure
// window over that day's good commutes.
func dayStats(day string, commutes []models.CommuteEntry) models.DayStats {
	if len(commutes) == 0 {
		return models.DayStats{
			Day:                   day,
			OptimalDepartureStart: NoOptimalTime,
			OptimalDepartureEnd:   NoOptimalTime,
		}
	}

	total := 0
	min := commutes[0].DurationMinutes
	max := commutes[0].DurationMinutes
	for _, c := range commutes {
		total += c.DurationMinutes
		if c.DurationMinutes < min {
			min = c.DurationMinutes
		}
		if c.DurationMinutes > max {
			max = c.DurationMinutes
		}
	}
	avg := float64(total) / float64(len(commutes))

	ds := models.DayStats{
		Day:                   day,
		AvgDuration:           int(math.Round(avg)),
		MinDuration:           min,
		MaxDuration:           max,
		OptimalDepartureStart: NoOptimalTime,
		OptimalDepartureEnd:   NoOptimalTime,
		TotalCommutes:         len(commutes),
	}

	threshold := float64(min) + (avg-float64(min))*goodCommuteFactor
	earliest, latest := -1, -1
	for _, c := range commutes {
		if float64(c.DurationMinutes) > threshold {
			continue
		}
		dep, err := timeToMinutes(c.DepartureTime)
		if err != nil {
			continue
		}
		if earliest == -1 || dep < earliest {
			earliest = dep
		}
		if latest == -1 || dep > latest {
			latest = dep
		}
	}
	if earliest != -1 {
		ds.OptimalDepartureStart = minutesToTime(earliest)
		ds.OptimalDepartureEnd = minutesToTime(latest)
	}
	return ds
}

func timeToMinutes(t string) (int, error) {
	parts := strings.Split(t, ":")
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid time %q: want HH:MM", t)
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("invalid time %q: %w", t, err)
	}
	min, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("invalid time %q: %w", t, err)
	}
	if hour < 0 || hour > 23 || min < 0 || min > 59 {
		return 0, fmt.Errorf("invalid time %q: out of range", t)
	}
	return hour*60 + min, nil
}

func minutesToTime(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}
