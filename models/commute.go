package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CommuteEntry is one logged commute. Entries are immutable once stored;
// duration and day_of_week are derived at creation time and never edited.
type CommuteEntry struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID          string             `bson:"user_id" json:"user_id"`
	Date            string             `bson:"date" json:"date"`                     // YYYY-MM-DD
	DepartureTime   string             `bson:"departure_time" json:"departure_time"` // HH:MM
	ArrivalTime     string             `bson:"arrival_time" json:"arrival_time"`     // HH:MM
	DurationMinutes int                `bson:"duration_minutes" json:"duration_minutes"`
	DayOfWeek       string             `bson:"day_of_week" json:"day_of_week"`
	CreatedAt       time.Time          `bson:"created_at" json:"created_at"`
}

// CommuteInput is the payload accepted when logging a commute.
type CommuteInput struct {
	Date          string `json:"date" validate:"required,datetime=2006-01-02"`
	DepartureTime string `json:"departure_time" validate:"required,datetime=15:04"`
	ArrivalTime   string `json:"arrival_time" validate:"required,datetime=15:04"`
}

// OverallStats summarizes every commute a user has logged.
type OverallStats struct {
	AvgDuration         int `json:"avg_duration"`
	BestCommuteDuration int `json:"best_commute_duration"`
	TotalCommutes       int `json:"total_commutes"`
}

// DayStats summarizes one weekday's commutes, including the recommended
// departure window. Time fields hold "--:--" when no recommendation exists.
type DayStats struct {
	Day                   string `json:"day"`
	AvgDuration           int    `json:"avg_duration"`
	MinDuration           int    `json:"min_duration"`
	MaxDuration           int    `json:"max_duration"`
	OptimalDepartureStart string `json:"optimal_departure_start"`
	OptimalDepartureEnd   string `json:"optimal_departure_end"`
	TotalCommutes         int    `json:"total_commutes"`
}

// StatsResponse is what the stats endpoint returns.
type StatsResponse struct {
	Overall OverallStats `json:"overall"`
	ByDay   []DayStats   `json:"by_day"`
}
