package services

import (
	"context"
	"errors"
	"time"

	"github.com/Henry-L/hl-apps/config"
	"github.com/Henry-L/hl-apps/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const commutesCollection = "commutes"

var ErrCommuteNotFound = errors.New("commute entry not found")

// CreateCommute derives duration and weekday from the input, rejecting
// invalid times before anything is stored.
func CreateCommute(userID string, input models.CommuteInput) (*models.CommuteEntry, error) {
	duration, err := ComputeDuration(input.DepartureTime, input.ArrivalTime)
	if err != nil {
		return nil, err
	}
	dayOfWeek, err := DayOfWeek(input.Date)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	coll := config.OpenCollection(commutesCollection)

	entry := &models.CommuteEntry{
		ID:              primitive.NewObjectID(),
		UserID:          userID,
		Date:            input.Date,
		DepartureTime:   input.DepartureTime,
		ArrivalTime:     input.ArrivalTime,
		DurationMinutes: duration,
		DayOfWeek:       dayOfWeek,
		CreatedAt:       time.Now(),
	}
	_, err = coll.InsertOne(ctx, entry)
	return entry, err
}

// GetCommutesByUser returns a user's entries, newest date first.
func GetCommutesByUser(userID string) ([]models.CommuteEntry, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	coll := config.OpenCollection(commutesCollection)
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})
	cursor, err := coll.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)
	var out []models.CommuteEntry
	err = cursor.All(ctx, &out)
	return out, err
}

// DeleteCommute removes one entry, but only if it belongs to userID.
func DeleteCommute(userID, entryID string) error {
	objectID, err := primitive.ObjectIDFromHex(entryID)
	if err != nil {
		return ErrCommuteNotFound
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	coll := config.OpenCollection(commutesCollection)

	res, err := coll.DeleteOne(ctx, bson.M{"_id": objectID, "user_id": userID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrCommuteNotFound
	}
	return nil
}

// GetStatsForUser fetches the user's full record set and runs the stats
// engine over it.
func GetStatsForUser(userID string) (*models.StatsResponse, error) {
	records, err := GetCommutesByUser(userID)
	if err != nil {
		return nil, err
	}
	return &models.StatsResponse{
		Overall: ComputeOverallStats(records),
		ByDay:   ComputeByDayStats(records),
	}, nil
}
