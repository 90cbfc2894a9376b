package controllers

import (
	"errors"
	"net/http"

	"github.com/Henry-L/hl-apps/helpers"
	"github.com/Henry-L/hl-apps/models"
	"github.com/Henry-L/hl-apps/services"

	"github.com/gin-gonic/gin"
)

func getUserID(c *gin.Context) string {
	claimsVal, ok := c.Get("claims")
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return ""
	}
	claims, ok := claimsVal.(*helpers.Claims)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid claims"})
		return ""
	}
	return claims.UserID
}

// CreateCommute logs one commute for the current user. Entries whose
// arrival precedes departure are rejected before anything is stored.
func CreateCommute() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := getUserID(c)
		if userID == "" {
			return
		}
		var input models.CommuteInput
		if err := c.BindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Date, departure time, and arrival time are required"})
			return
		}
		if err := validate.Struct(input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		entry, err := services.CreateCommute(userID, input)
		if errors.Is(err, services.ErrArrivalBeforeDeparture) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Arrival time must be after departure time"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create commute entry"})
			return
		}
		c.JSON(http.StatusCreated, gin.H{
			"message": "Commute logged successfully",
			"entry":   entry,
		})
	}
}

// GetMyCommutes returns the current user's commute history.
func GetMyCommutes() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := getUserID(c)
		if userID == "" {
			return
		}
		commutes, err := services.GetCommutesByUser(userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		if commutes == nil {
			commutes = []models.CommuteEntry{}
		}
		c.JSON(http.StatusOK, commutes)
	}
}

// DeleteCommute removes one of the current user's entries.
func DeleteCommute() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := getUserID(c)
		if userID == "" {
			return
		}
		err := services.DeleteCommute(userID, c.Param("id"))
		if errors.Is(err, services.ErrCommuteNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Commute entry not found"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Commute deleted"})
	}
}

// GetMyStats returns overall and per-weekday stats with the optimal
// departure window recommendation.
func GetMyStats() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := getUserID(c)
		if userID == "" {
			return
		}
		stats, err := services.GetStatsForUser(userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to calculate statistics"})
			return
		}
		c.JSON(http.StatusOK, stats)
	}
}
