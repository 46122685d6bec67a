// Package allocator implements the shift-building allocation engine for the
// recurring guild defense event: a single-pass greedy heuristic that assigns
// at most one captain per (building, shift) slot and packs compatible players
// into each captain's rally capacity. It is pure computation; persistence is
// the caller's concern.
package allocator

import "github.com/guildtools/fortress-scheduler-api/pkg/models"

// buildGrid lays out one Assignment per (building, shift) in canonical order,
// carrying over the captain and rally snapshot from any matching existing
// slot. Player lists are not carried: AutoAssign recomputes every fill.
func buildGrid(existing []models.Assignment, topo models.Topology) []models.Assignment {
	type key struct {
		building string
		shift    int
	}
	byKey := make(map[key]models.Assignment, len(existing))
	for _, a := range existing {
		byKey[key{a.BuildingName, a.Shift}] = a
	}

	slots := make([]models.Assignment, 0, len(topo.BuildingNames)*topo.ShiftCount)
	for _, name := range topo.BuildingNames {
		for shift := 0; shift < topo.ShiftCount; shift++ {
			slot := models.Assignment{BuildingName: name, Shift: shift}
			if prev, ok := byKey[key{name, shift}]; ok {
				slot.Capitan = prev.Capitan
				slot.RallySize = prev.RallySize
			}
			slots = append(slots, slot)
		}
	}
	return slots
}

// othersExcept returns every slot but the one at index i
func othersExcept(slots []models.Assignment, i int) []models.Assignment {
	others := make([]models.Assignment, 0, len(slots)-1)
	others = append(others, slots[:i]...)
	others = append(others, slots[i+1:]...)
	return others
}

// AutoAssign runs the full two-pass allocation over every (building, shift)
// slot and returns a new slot list; the inputs are treated as a snapshot and
// never mutated. Pass one resolves captains for every open slot, marking each
// choice used immediately so no later slot in the same shift can reuse them.
// Pass two fills players against the settled captain set, so every slot's
// exclusion set already contains every captain of its shift. Slots whose
// captain was set before the call keep that captain and rally snapshot.
func AutoAssign(existing []models.Assignment, roster []models.Player, cfg Config) []models.Assignment {
	slots := buildGrid(existing, cfg.Topology)

	// pass 1: captains
	for i := range slots {
		if slots[i].Capitan != nil {
			continue
		}
		candidates := EligibleCaptains(slots[i], othersExcept(slots, i), roster, cfg)
		if len(candidates) == 0 {
			slots[i].RallySize = 0
			continue
		}
		chosen := candidates[0]
		slots[i].Capitan = &chosen
		slots[i].RallySize, _ = NormalizeMagnitude(chosen.RallySize)
	}

	// pass 2: players
	for i := range slots {
		if slots[i].Capitan == nil {
			continue
		}
		slots[i].Players = fillPlayers(slots[i], roster, othersExcept(slots, i), cfg)
	}

	return slots
}
