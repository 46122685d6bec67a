package main

import (
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/guildtools/fortress-scheduler-api/pkg/auth"
	"github.com/guildtools/fortress-scheduler-api/pkg/database"
	"github.com/guildtools/fortress-scheduler-api/pkg/handlers"
)

func main() {
	// Load .env if it exists
	// Try root and parent directories for flexibility
	envPaths := []string{".env", "../.env", "../../.env"}
	for _, p := range envPaths {
		if _, err := os.Stat(p); err == nil {
			_ = godotenv.Load(p)
			break
		}
	}

	if os.Getenv("GIN_MODE") == "" {
		gin.SetMode(gin.ReleaseMode)
	}

	db := database.InitDB()
	_ = auth.EnsureAdminExists(db)
	h := &handlers.Handler{DB: db}

	r := gin.Default()

	// Routes
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "Fortress Defense Scheduler API",
			"version": "1.0.0",
		})
	})

	r.POST("/admin/login", h.Login)

	// Admin console API
	api := r.Group("/api")
	api.Use(h.AuthMiddleware())
	{
		api.GET("/players", h.ListPlayers)
		api.POST("/players", h.CreatePlayer)
		api.PUT("/players/:id", h.UpdatePlayer)
		api.DELETE("/players/:id", h.DeletePlayer)
		api.POST("/roster/validate", h.ValidateRoster)

		api.GET("/schedules/:date", h.GetSchedule)
		api.PUT("/schedules/:date", h.SaveSchedule)
		api.POST("/schedules/:date/assign", h.AutoAssignSchedule)

		api.POST("/slots/eligible-captains", h.EligibleCaptains)
		api.POST("/slots/eligible-players", h.EligiblePlayers)
		api.POST("/slots/validate", h.ValidateSlot)
		api.POST("/slots/clear", h.ClearSlot)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}

	log.Printf("Server starting on port %s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("could not run server: %v", err)
	}
}
