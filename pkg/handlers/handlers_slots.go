package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/guildtools/fortress-scheduler-api/pkg/allocator"
	"github.com/guildtools/fortress-scheduler-api/pkg/models"
)

// The slot endpoints are stateless: the UI posts the slot being edited, its
// sibling slots and the roster snapshot, and gets the recomputed pools back.
// Nothing is persisted until the schedule itself is saved.

// EligibleCaptains returns the captains assignable to the posted slot,
// in priority order
func (h *Handler) EligibleCaptains(c *gin.Context) {
	var q models.SlotQuery
	if err := c.ShouldBindJSON(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	cfg := allocator.ConfigFrom(q.Settings)
	captains := allocator.EligibleCaptains(q.Slot, q.OtherSlots, q.Roster, cfg)

	resp := gin.H{"captains": captains}
	if len(captains) == 0 {
		resp["message"] = "no captains are available for this slot: all are committed this shift or unavailable"
	}
	c.JSON(http.StatusOK, resp)
}

// EligiblePlayers recomputes the regular-player pool for the posted slot
// under its current captain, and names any previously-assigned players the
// captain change pushed out of the pool
func (h *Handler) EligiblePlayers(c *gin.Context) {
	var q models.SlotQuery
	if err := c.ShouldBindJSON(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	cfg := allocator.ConfigFrom(q.Settings)
	eligible, dropped, breakdown := allocator.EligiblePlayersForEdit(q.Slot, q.OtherSlots, q.Roster, cfg)

	resp := models.EligiblePlayersResponse{
		Eligible:       eligible,
		DroppedPlayers: dropped,
	}
	if len(eligible) == 0 {
		resp.Reasons = breakdown.Reasons()
	}
	c.JSON(http.StatusOK, resp)
}

// ValidateSlot runs the advisory overflow check on the posted slot. An
// overflowing slot is a warning, never a rejected save.
func (h *Handler) ValidateSlot(c *gin.Context) {
	var q models.SlotQuery
	if err := c.ShouldBindJSON(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	excess, overflowing := allocator.Overflow(q.Slot)
	c.JSON(http.StatusOK, models.SlotValidationResponse{
		Overflow:      overflowing,
		Excess:        excess,
		AssignedMarch: q.Slot.AssignedMarchSum(),
		RallySize:     q.Slot.RallySize,
	})
}

// ClearSlot returns the posted slot reset to empty; siblings are untouched
func (h *Handler) ClearSlot(c *gin.Context) {
	var q models.SlotQuery
	if err := c.ShouldBindJSON(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"slot": allocator.Clear(q.Slot)})
}
