package allocator

import (
	"fmt"

	"github.com/guildtools/fortress-scheduler-api/pkg/models"
)

// Config carries the slot grid and pool options the engine needs
type Config struct {
	Topology           models.Topology
	AllowAttackPlayers bool
}

// ConfigFrom derives the engine configuration from schedule settings
func ConfigFrom(settings models.Settings) Config {
	return Config{
		Topology:           settings.Topology(),
		AllowAttackPlayers: settings.AllowAttackPlayersInDefense,
	}
}

// Breakdown counts why roster players were filtered out of a slot's pool,
// so the UI can distinguish "everyone is committed this shift" from
// "troop types don't match the chosen captain"
type Breakdown struct {
	CommittedElsewhere int
	ShiftUnavailable   int
	TroopMismatch      int
	AttackExcluded     int
}

// Reasons renders the breakdown as human-readable messages
func (b Breakdown) Reasons() []string {
	var reasons []string
	if b.CommittedElsewhere > 0 {
		reasons = append(reasons, fmt.Sprintf("%d players are already committed elsewhere in this shift", b.CommittedElsewhere))
	}
	if b.ShiftUnavailable > 0 {
		reasons = append(reasons, fmt.Sprintf("%d players are not available for this shift", b.ShiftUnavailable))
	}
	if b.TroopMismatch > 0 {
		reasons = append(reasons, fmt.Sprintf("%d players do not share a troop type with the captain", b.TroopMismatch))
	}
	if b.AttackExcluded > 0 {
		reasons = append(reasons, fmt.Sprintf("%d attack-pool players are excluded from defense", b.AttackExcluded))
	}
	return reasons
}

// usedInShift collects every player id occupying a sibling slot of the same
// shift index. Slots at other shift indices are independent namespaces.
func usedInShift(others []models.Assignment, shift int) map[string]bool {
	used := make(map[string]bool)
	for i := range others {
		if others[i].Shift != shift {
			continue
		}
		for _, id := range others[i].UsedIDs() {
			used[id] = true
		}
	}
	return used
}

// EligiblePlayers computes the regular players legally assignable to a slot
// given an optional candidate captain. See EligiblePlayersDetail.
func EligiblePlayers(slot models.Assignment, others []models.Assignment, roster []models.Player, captain *models.Player, cfg Config) []models.Player {
	eligible, _ := EligiblePlayersDetail(slot, others, roster, captain, cfg)
	return eligible
}

// EligiblePlayersDetail filters the roster down to the players assignable to
// the slot: not committed in any sibling slot of the shift, not the captain
// themselves, available for the slot's shift window, and (when a captain is
// set) sharing at least one troop type with them. Roster order is preserved;
// callers apply their own priority sort. The breakdown reports why the rest
// were excluded.
func EligiblePlayersDetail(slot models.Assignment, others []models.Assignment, roster []models.Player, captain *models.Player, cfg Config) ([]models.Player, Breakdown) {
	used := usedInShift(others, slot.Shift)

	var eligible []models.Player
	var breakdown Breakdown

	for _, p := range roster {
		if captain != nil && p.ID == captain.ID {
			// a captain cannot also march in their own rally
			continue
		}
		if p.IsAttack && !cfg.AllowAttackPlayers {
			breakdown.AttackExcluded++
			continue
		}

		free := !used[p.ID]
		available := p.AvailableForShift(slot.Shift, cfg.Topology.ShiftCount)
		matches := captain == nil || !captain.HasTroopType() || captain.SharesTroopType(&p)

		if free && available && matches {
			eligible = append(eligible, p)
			continue
		}
		if !free {
			breakdown.CommittedElsewhere++
		}
		if !available {
			breakdown.ShiftUnavailable++
		}
		if !matches {
			breakdown.TroopMismatch++
		}
	}

	return eligible, breakdown
}

// EligibleCaptains returns the captains assignable to a slot, sorted by
// priority: troop tier descending, then normalized rally size descending.
// Ties keep roster order.
func EligibleCaptains(slot models.Assignment, others []models.Assignment, roster []models.Player, cfg Config) []models.Player {
	used := usedInShift(others, slot.Shift)

	var candidates []models.Player
	for _, p := range roster {
		if !p.IsCapitan {
			continue
		}
		if p.IsAttack && !cfg.AllowAttackPlayers {
			continue
		}
		if used[p.ID] {
			continue
		}
		if !p.AvailableForShift(slot.Shift, cfg.Topology.ShiftCount) {
			continue
		}
		candidates = append(candidates, p)
	}

	sortByCaptainPriority(candidates)
	return candidates
}
