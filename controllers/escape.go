package controllers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/Henry-L/hl-apps/data"
	"github.com/Henry-L/hl-apps/models"
	"github.com/Henry-L/hl-apps/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var escapeStore services.EscapeSessionStore = services.NewMongoEscapeSessionStore()

// SetEscapeStore swaps the session store, used by tests.
func SetEscapeStore(store services.EscapeSessionStore) {
	escapeStore = store
}

// escapeItemView is an Item plus per-session solved state. Answers stay
// server-side.
type escapeItemView struct {
	models.Item
	Solved bool `json:"solved"`
}

// CreateEscapeSession starts a playthrough for player 1 or 2 and returns
// the session ID the client presents on every later call.
func CreateEscapeSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		var body struct {
			Player int `json:"player"`
		}
		if err := c.BindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid session payload"})
			return
		}
		if data.CatalogForPlayer(body.Player) == nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Player must be 1 or 2"})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()

		now := time.Now()
		session := &models.EscapeSession{
			SessionID: uuid.NewString(),
			Player:    body.Player,
			Solved:    []string{},
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := escapeStore.Create(ctx, session); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create session"})
			return
		}
		c.JSON(http.StatusCreated, gin.H{
			"session_id": session.SessionID,
			"player":     session.Player,
		})
	}
}

// GetEscapeItems returns the items the player can currently see, their
// solved flags, and the win state.
func GetEscapeItems() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()

		session, ok := loadSession(ctx, c)
		if !ok {
			return
		}
		catalog := data.CatalogForPlayer(session.Player)
		solved := models.NewSolvedSet(session.Solved...)

		visible := services.VisibleItems(catalog, solved)
		items := make([]escapeItemView, 0, len(visible))
		for _, item := range visible {
			items = append(items, escapeItemView{
				Item:   item,
				Solved: item.HasInput && solved.Has(item.ID),
			})
		}
		solvedCount, total := services.CountSolvedPuzzles(catalog, solved)

		c.JSON(http.StatusOK, gin.H{
			"items":        items,
			"solved_count": solvedCount,
			"puzzle_count": total,
			"won":          services.IsGameWon(catalog, solved),
		})
	}
}

// SubmitEscapeAnswer checks an answer and persists progress on success. A
// wrong answer and an answer for an unknown or still-locked item look the
// same to the player.
func SubmitEscapeAnswer() gin.HandlerFunc {
	return func(c *gin.Context) {
		var body struct {
			ItemID string `json:"item_id"`
			Answer string `json:"answer"`
		}
		if err := c.BindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid answer payload"})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()

		session, ok := loadSession(ctx, c)
		if !ok {
			return
		}
		catalog := data.CatalogForPlayer(session.Player)
		solved := models.NewSolvedSet(session.Solved...)

		accepted := services.SubmitAnswer(catalog, solved, body.ItemID, body.Answer)
		if accepted {
			if err := escapeStore.SaveSolved(ctx, session.SessionID, solved); err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save progress"})
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{
			"accepted": accepted,
			"won":      services.IsGameWon(catalog, solved),
		})
	}
}

// ResetEscapeSession clears solved state so the room can be replayed.
func ResetEscapeSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()

		session, ok := loadSession(ctx, c)
		if !ok {
			return
		}
		if err := escapeStore.SaveSolved(ctx, session.SessionID, services.ResetProgress()); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reset session"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Session reset"})
	}
}

func loadSession(ctx context.Context, c *gin.Context) (*models.EscapeSession, bool) {
	session, err := escapeStore.Get(ctx, c.Param("id"))
	if errors.Is(err, services.ErrSessionNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Session not found"})
		return nil, false
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return nil, false
	}
	return session, true
}
