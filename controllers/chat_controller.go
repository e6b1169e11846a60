package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"ser-backend/middleware"
	"ser-backend/services"
)

// ChatController serves the simulated anonymous-chat endpoints.
// Tidak ada pencocokan sungguhan: partner dan statistik dibuat acak.
type ChatController struct {
	auth *services.AuthService
	chat *services.ChatService
}

// NewChatController creates a new ChatController.
func NewChatController(auth *services.AuthService, chat *services.ChatService) *ChatController {
	return &ChatController{auth: auth, chat: chat}
}

// requireUser memastikan user di session masih ada di database.
// Mengembalikan false kalau response error sudah ditulis.
func (ctl *ChatController) requireUser(c *gin.Context) (string, bool) {
	userID := c.GetString(middleware.ContextUserID)

	if _, err := ctl.auth.GetByID(userID); errors.Is(err, services.ErrUserNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return "", false
	} else if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return "", false
	}

	return userID, true
}

// StartSession hands out a random partner and remembers it in the session
func (ctl *ChatController) StartSession(c *gin.Context) {
	if _, ok := ctl.requireUser(c); !ok {
		return
	}

	partner := ctl.chat.RandomPartner()

	if err := middleware.SetPartner(c, partner); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to start chat session"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "connected",
		"message": "Partner found!",
		"partner": partner,
	})
}

// EndSession drops the partner from the session; always succeeds once authenticated
func (ctl *ChatController) EndSession(c *gin.Context) {
	if _, ok := ctl.requireUser(c); !ok {
		return
	}

	if err := middleware.ClearPartner(c); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to end chat session"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "ended",
		"message": "Chat session ended successfully",
	})
}

// GetSessionStatus reports the partner currently stored in the session, if any
func (ctl *ChatController) GetSessionStatus(c *gin.Context) {
	if _, ok := ctl.requireUser(c); !ok {
		return
	}

	if partner, ok := middleware.GetPartner(c); ok {
		c.JSON(http.StatusOK, gin.H{
			"status":  "connected",
			"partner": partner,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "none",
		"partner": nil,
	})
}

// Report accepts a report payload; isinya tidak disimpan di mana pun
func (ctl *ChatController) Report(c *gin.Context) {
	if _, ok := ctl.requireUser(c); !ok {
		return
	}

	var payload map[string]interface{}
	if err := c.ShouldBindJSON(&payload); err != nil || len(payload) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No data provided"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Report submitted successfully"})
}

// GetStats returns placeholder chat statistics
func (ctl *ChatController) GetStats(c *gin.Context) {
	if _, ok := ctl.requireUser(c); !ok {
		return
	}

	c.JSON(http.StatusOK, ctl.chat.RandomStats())
}
