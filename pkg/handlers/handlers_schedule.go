package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/guildtools/fortress-scheduler-api/pkg/allocator"
	"github.com/guildtools/fortress-scheduler-api/pkg/database"
	"github.com/guildtools/fortress-scheduler-api/pkg/models"
)

// defaultSettings apply to a schedule created fresh for an event date
var defaultSettings = models.Settings{ShiftDuration: 4}

// loadSchedule fetches the schedule document for an event date, or returns a
// fresh empty one when the date has no document yet
func (h *Handler) loadSchedule(date string) (*models.Schedule, error) {
	var doc database.ScheduleDoc
	err := h.DB.Where("event_date = ?", date).First(&doc).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &models.Schedule{EventDate: date, Settings: defaultSettings}, nil
	}
	if err != nil {
		return nil, err
	}

	var sched models.Schedule
	if err := json.Unmarshal(doc.Doc, &sched); err != nil {
		return nil, fmt.Errorf("schedule document for %s is corrupt: %w", date, err)
	}
	return &sched, nil
}

// saveSchedule upserts the schedule document for its event date
func (h *Handler) saveSchedule(sched *models.Schedule) error {
	raw, err := json.Marshal(sched)
	if err != nil {
		return err
	}

	return h.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "event_date"}},
		DoUpdates: clause.AssignmentColumns([]string{"doc", "updated_at"}),
	}).Create(&database.ScheduleDoc{
		EventDate: sched.EventDate,
		Doc:       raw,
	}).Error
}

// GetSchedule returns the schedule document for an event date
func (h *Handler) GetSchedule(c *gin.Context) {
	sched, err := h.loadSchedule(c.Param("date"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, sched)
}

// SaveSchedule persists a hand-edited schedule document. Every assigned
// player id is re-resolved against the current roster first; a stale
// reference rejects the whole save with the offending slot named, so a
// deleted player can never be silently dropped or corrupt other slots.
// Overflowing slots are allowed through: overflow is advisory.
func (h *Handler) SaveSchedule(c *gin.Context) {
	var sched models.Schedule
	if err := c.ShouldBindJSON(&sched); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	sched.EventDate = c.Param("date")

	roster, err := h.loadRoster()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not load roster"})
		return
	}

	for i, slot := range sched.Buildings {
		resolved, err := allocator.ResolveAssignment(slot, roster)
		if err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": fmt.Sprintf("slot %s/%d: %v", slot.BuildingName, slot.Shift, err),
			})
			return
		}
		sched.Buildings[i] = resolved
	}

	if err := h.saveSchedule(&sched); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not save schedule"})
		return
	}

	c.JSON(http.StatusOK, sched)
}

// AutoAssignSchedule runs the allocation engine over the event date's
// schedule: existing captains and rally snapshots are kept, open slots get
// captains, and every rally is refilled from the current roster. The result
// replaces the stored document (last write wins).
func (h *Handler) AutoAssignSchedule(c *gin.Context) {
	date := c.Param("date")

	sched, err := h.loadSchedule(date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	roster, err := h.loadRoster()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not load roster"})
		return
	}

	cfg := allocator.ConfigFrom(sched.Settings)
	sched.Buildings = allocator.AutoAssign(sched.Buildings, roster, cfg)

	if err := h.saveSchedule(sched); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not save schedule"})
		return
	}

	c.JSON(http.StatusOK, sched)
}
