package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/guildtools/fortress-scheduler-api/pkg/models"
)

// ValidateRoster handles the JSON-based roster validation request
func (h *Handler) ValidateRoster(c *gin.Context) {
	var input struct {
		Players []models.Player `json:"players"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"valid": false,
			"error": err.Error(),
		})
		return
	}

	if len(input.Players) == 0 {
		c.JSON(http.StatusOK, gin.H{
			"valid": false,
			"error": "At least one player is required",
		})
		return
	}

	// Check for duplicate IDs
	ids := make(map[string]bool)
	captains := 0
	for _, p := range input.Players {
		if ids[p.ID] {
			c.JSON(http.StatusOK, gin.H{"valid": false, "error": "Duplicate player ID: " + p.ID})
			return
		}
		ids[p.ID] = true

		if p.Name == "" {
			c.JSON(http.StatusOK, gin.H{"valid": false, "error": "Player " + p.ID + " has no name"})
			return
		}
		if p.IsCapitan {
			captains++
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"valid": true,
		"stats": gin.H{
			"player_count":  len(input.Players),
			"captain_count": captains,
		},
	})
}
