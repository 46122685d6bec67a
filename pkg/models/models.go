package models

import "time"

// Player represents a guild member on the event roster
type Player struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Alliance     string    `json:"alliance,omitempty"`
	TroopTier    int       `json:"troopTier"`
	TroopFighter bool      `json:"troopFighter"`
	TroopShooter bool      `json:"troopShooter"`
	TroopRider   bool      `json:"troopRider"`
	IsCapitan    bool      `json:"isCapitan"`
	MarchSize    int       `json:"marchSize"`
	RallySize    int       `json:"rallySize"`
	FirstShift   bool      `json:"firstShift"`
	SecondShift  bool      `json:"secondShift"`
	IsAttack     bool      `json:"isAttack"`
	CreatedAt    time.Time `json:"createdAt,omitempty"`
	UpdatedAt    time.Time `json:"updatedAt,omitempty"`
}

// HasTroopType reports whether the player has any troop-type flag set
func (p *Player) HasTroopType() bool {
	return p.TroopFighter || p.TroopShooter || p.TroopRider
}

// SharesTroopType reports whether two players share at least one troop type
func (p *Player) SharesTroopType(other *Player) bool {
	return (p.TroopFighter && other.TroopFighter) ||
		(p.TroopShooter && other.TroopShooter) ||
		(p.TroopRider && other.TroopRider)
}

// AvailableForShift maps a shift index onto the player's availability flags.
// With 2 shifts per day the index is the half directly; with 4 shifts the
// first two indices fall in the first half and the last two in the second.
func (p *Player) AvailableForShift(shift, shiftCount int) bool {
	if shiftCount == 4 {
		if shift < 2 {
			return p.FirstShift
		}
		return p.SecondShift
	}
	if shift == 0 {
		return p.FirstShift
	}
	return p.SecondShift
}

// AssignedPlayer is one regular player committed to a slot's rally
type AssignedPlayer struct {
	Player        Player `json:"player"`
	March         int    `json:"march"`
	WasNormalized bool   `json:"wasNormalized"`
}

// Assignment is the state of one (building, shift) slot.
// Capitan is nil while the slot has no captain.
type Assignment struct {
	BuildingName string           `json:"buildingName"`
	Shift        int              `json:"shift"`
	Capitan      *Player          `json:"capitan"`
	RallySize    int              `json:"rallySize"`
	Players      []AssignedPlayer `json:"players"`
}

// AssignedMarchSum returns the total march committed to the slot
func (a *Assignment) AssignedMarchSum() int {
	total := 0
	for _, ap := range a.Players {
		total += ap.March
	}
	return total
}

// UsedIDs returns every player id occupying the slot, captain included
func (a *Assignment) UsedIDs() []string {
	var ids []string
	if a.Capitan != nil {
		ids = append(ids, a.Capitan.ID)
	}
	for _, ap := range a.Players {
		ids = append(ids, ap.Player.ID)
	}
	return ids
}

// Topology describes the slot grid for one event day
type Topology struct {
	BuildingNames []string `json:"buildingNames"`
	ShiftCount    int      `json:"shiftCount"`
}

// DefaultBuildingNames are the five defensive buildings of the event
var DefaultBuildingNames = []string{
	"Stronghold",
	"North Tower",
	"East Tower",
	"South Tower",
	"West Tower",
}

// TabInfo holds the free-text notes shown above each pool tab
type TabInfo struct {
	Defense string `json:"defense,omitempty"`
	Attack  string `json:"attack,omitempty"`
}

// Settings are the per-schedule global options
type Settings struct {
	ShiftDuration               int     `json:"shiftDuration"` // hours: 4 -> 2 shifts/day, 2 -> 4 shifts/day
	AllowAttackPlayersInDefense bool    `json:"allowAttackPlayersInDefense"`
	TabInfo                     TabInfo `json:"tabInfo,omitempty"`
}

// Topology derives the slot grid from the shift-duration setting
func (s Settings) Topology() Topology {
	shifts := 2
	if s.ShiftDuration == 2 {
		shifts = 4
	}
	return Topology{BuildingNames: DefaultBuildingNames, ShiftCount: shifts}
}

// AttackPlayerSummary is an informational attack-pool entry; attack players
// are not subject to the defense pool's same-shift exclusivity rule
type AttackPlayerSummary struct {
	Player Player `json:"player"`
	Note   string `json:"note,omitempty"`
}

// Schedule is the persisted aggregate for one event date
type Schedule struct {
	EventDate     string                `json:"eventDate"`
	Buildings     []Assignment          `json:"buildings"`
	AttackPlayers []AttackPlayerSummary `json:"attackPlayers,omitempty"`
	Settings      Settings              `json:"settings"`
}

// SlotQuery is the input shape for the stateless slot-edit endpoints:
// the slot being edited, its sibling slots in the same shift, the roster
// snapshot and the schedule settings.
type SlotQuery struct {
	Slot       Assignment   `json:"slot"`
	OtherSlots []Assignment `json:"otherSlots"`
	Roster     []Player     `json:"roster"`
	Settings   Settings     `json:"settings"`
}

// EligiblePlayersResponse reports the recomputed pool for a slot plus the
// names of previously-assigned players the new captain no longer accepts
type EligiblePlayersResponse struct {
	Eligible       []Player `json:"eligible"`
	DroppedPlayers []string `json:"droppedPlayers,omitempty"`
	Reasons        []string `json:"reasons,omitempty"`
}

// SlotValidationResponse carries the advisory overflow check for one slot
type SlotValidationResponse struct {
	Overflow      bool `json:"overflow"`
	Excess        int  `json:"excess"`
	AssignedMarch int  `json:"assignedMarch"`
	RallySize     int  `json:"rallySize"`
}
