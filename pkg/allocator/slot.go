package allocator

import (
	"sort"

	"github.com/guildtools/fortress-scheduler-api/pkg/models"
)

// sortByCaptainPriority orders candidates by troop tier descending, then
// normalized rally size descending. Stable so equal candidates keep the
// roster's input order.
func sortByCaptainPriority(players []models.Player) {
	sort.SliceStable(players, func(i, j int) bool {
		if players[i].TroopTier != players[j].TroopTier {
			return players[i].TroopTier > players[j].TroopTier
		}
		ri, _ := NormalizeMagnitude(players[i].RallySize)
		rj, _ := NormalizeMagnitude(players[j].RallySize)
		return ri > rj
	})
}

// sortByMarchPriority orders players by troop tier descending, then
// normalized march size descending. Stable for the same reason.
func sortByMarchPriority(players []models.Player) {
	sort.SliceStable(players, func(i, j int) bool {
		if players[i].TroopTier != players[j].TroopTier {
			return players[i].TroopTier > players[j].TroopTier
		}
		mi, _ := NormalizeMagnitude(players[i].MarchSize)
		mj, _ := NormalizeMagnitude(players[j].MarchSize)
		return mi > mj
	})
}

// FillSlot fills one (building, shift) slot: picks the best available captain
// when the slot has none, then greedily packs eligible players into the rally
// capacity. The input slot is not mutated; a new Assignment is returned.
// A pre-existing captain keeps their rally-size snapshot untouched.
func FillSlot(slot models.Assignment, roster []models.Player, others []models.Assignment, cfg Config) models.Assignment {
	out := slot
	out.Players = nil

	if out.Capitan == nil {
		candidates := EligibleCaptains(out, others, roster, cfg)
		if len(candidates) == 0 {
			out.RallySize = 0
			return out
		}
		chosen := candidates[0]
		out.Capitan = &chosen
		out.RallySize, _ = NormalizeMagnitude(chosen.RallySize)
	}

	out.Players = fillPlayers(out, roster, others, cfg)
	return out
}

// fillPlayers walks the eligible players in priority order and commits
// min(march, remaining capacity) to each until the rally is full. A partially
// committed player is still fully used for the shift.
func fillPlayers(slot models.Assignment, roster []models.Player, others []models.Assignment, cfg Config) []models.AssignedPlayer {
	if slot.Capitan == nil || slot.RallySize <= 0 || !slot.Capitan.HasTroopType() {
		return nil
	}

	eligible := EligiblePlayers(slot, others, roster, slot.Capitan, cfg)
	sortByMarchPriority(eligible)

	remaining := slot.RallySize
	var assigned []models.AssignedPlayer

	for _, p := range eligible {
		if remaining <= 0 {
			break
		}
		march, adjusted := NormalizeMagnitude(p.MarchSize)
		if march <= 0 {
			continue
		}
		if march > remaining {
			march = remaining
		}
		assigned = append(assigned, models.AssignedPlayer{
			Player:        p,
			March:         march,
			WasNormalized: adjusted,
		})
		remaining -= march
	}

	return assigned
}
