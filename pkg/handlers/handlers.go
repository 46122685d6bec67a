package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/guildtools/fortress-scheduler-api/pkg/auth"
	"github.com/guildtools/fortress-scheduler-api/pkg/database"
	"github.com/guildtools/fortress-scheduler-api/pkg/models"
)

// Handler contains dependencies for the route handlers
type Handler struct {
	DB *gorm.DB
}

// AuthMiddleware verifies the JWT token for API routes
func (h *Handler) AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader("Authorization")
		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			c.Abort()
			return
		}

		// Strip "Bearer " if present
		if len(token) > 7 && token[:7] == "Bearer " {
			token = token[7:]
		}

		claims, err := auth.VerifyToken(token)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			c.Abort()
			return
		}

		c.Set("username", claims.Username)
		c.Next()
	}
}

// Login handles admin login
func (h *Handler) Login(c *gin.Context) {
	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var user database.MasterUser
	if err := h.DB.Where("username = ?", req.Username).First(&user).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	token, err := auth.CreateToken(user.Username)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not create token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"access_token": token, "token_type": "bearer"})
}

// loadRoster reads the full roster as engine-facing players
func (h *Handler) loadRoster() ([]models.Player, error) {
	var entries []database.RosterEntry
	if err := h.DB.Order("created_at").Find(&entries).Error; err != nil {
		return nil, err
	}

	players := make([]models.Player, len(entries))
	for i := range entries {
		players[i] = entries[i].ToPlayer()
	}
	return players, nil
}

// ListPlayers returns the full roster
func (h *Handler) ListPlayers(c *gin.Context) {
	players, err := h.loadRoster()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not load roster"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"players": players})
}

// CreatePlayer adds a player to the roster, assigning an id server-side
func (h *Handler) CreatePlayer(c *gin.Context) {
	var player models.Player
	if err := c.ShouldBindJSON(&player); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if player.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name is required"})
		return
	}

	player.ID = uuid.NewString()
	entry := database.FromPlayer(player)
	if err := h.DB.Create(&entry).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not create player"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"player": entry.ToPlayer()})
}

// UpdatePlayer replaces a roster entry's attributes
func (h *Handler) UpdatePlayer(c *gin.Context) {
	id := c.Param("id")

	var existing database.RosterEntry
	if err := h.DB.Where("id = ?", id).First(&existing).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Player not found"})
		return
	}

	var player models.Player
	if err := c.ShouldBindJSON(&player); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	player.ID = id
	entry := database.FromPlayer(player)
	entry.CreatedAt = existing.CreatedAt
	if err := h.DB.Save(&entry).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not update player"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"player": entry.ToPlayer()})
}

// DeletePlayer removes a roster entry
func (h *Handler) DeletePlayer(c *gin.Context) {
	id := c.Param("id")
	if err := h.DB.Delete(&database.RosterEntry{}, "id = ?", id).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not delete player"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Player removed"})
}
