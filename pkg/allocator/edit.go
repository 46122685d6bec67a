package allocator

import (
	"fmt"

	"github.com/guildtools/fortress-scheduler-api/pkg/models"
)

// EligiblePlayersForEdit recomputes a slot's player pool for interactive
// editing, using the slot's current captain as the filter. It also names the
// previously-assigned players no longer in the pool (typically after a
// captain swap changed the troop-type filter) so the UI can tell the admin
// exactly why the slot shrank instead of dropping them silently.
func EligiblePlayersForEdit(slot models.Assignment, others []models.Assignment, roster []models.Player, cfg Config) ([]models.Player, []string, Breakdown) {
	eligible, breakdown := EligiblePlayersDetail(slot, others, roster, slot.Capitan, cfg)

	inPool := make(map[string]bool, len(eligible))
	for _, p := range eligible {
		inPool[p.ID] = true
	}

	var dropped []string
	for _, ap := range slot.Players {
		if !inPool[ap.Player.ID] {
			dropped = append(dropped, ap.Player.Name)
		}
	}

	return eligible, dropped, breakdown
}

// Overflow reports whether the march committed to a slot exceeds its rally
// size, and by how much. Overflow is advisory: a hand-edited slot may be
// saved overflowing, the admin just gets warned.
func Overflow(slot models.Assignment) (excess int, overflowing bool) {
	excess = slot.AssignedMarchSum() - slot.RallySize
	if excess <= 0 {
		return 0, false
	}
	return excess, true
}

// Clear resets a slot to the empty state: no captain, zero rally, no players.
// Sibling slots are untouched.
func Clear(slot models.Assignment) models.Assignment {
	return models.Assignment{
		BuildingName: slot.BuildingName,
		Shift:        slot.Shift,
	}
}

// ResolveAssignment re-resolves every player referenced by a slot against the
// current roster at save time, refreshing the embedded records. A referenced
// id that no longer exists rejects the save of this slot; other slots are
// unaffected by the failure.
func ResolveAssignment(slot models.Assignment, roster []models.Player) (models.Assignment, error) {
	byID := make(map[string]models.Player, len(roster))
	for _, p := range roster {
		byID[p.ID] = p
	}

	out := slot

	if slot.Capitan != nil {
		current, ok := byID[slot.Capitan.ID]
		if !ok {
			return models.Assignment{}, fmt.Errorf("captain %q (%s) is no longer on the roster", slot.Capitan.Name, slot.Capitan.ID)
		}
		out.Capitan = &current
	}

	out.Players = make([]models.AssignedPlayer, len(slot.Players))
	for i, ap := range slot.Players {
		current, ok := byID[ap.Player.ID]
		if !ok {
			return models.Assignment{}, fmt.Errorf("player %q (%s) is no longer on the roster", ap.Player.Name, ap.Player.ID)
		}
		out.Players[i] = models.AssignedPlayer{
			Player:        current,
			March:         ap.March,
			WasNormalized: ap.WasNormalized,
		}
	}

	return out, nil
}
