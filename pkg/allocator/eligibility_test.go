package allocator

import (
	"testing"

	"github.com/guildtools/fortress-scheduler-api/pkg/models"
)

func TestEligiblePlayers_ExcludesCommittedAndUnavailable(t *testing.T) {
	busy := fighter("f1", "Busy", 12, 150000)
	free := fighter("f2", "Free", 12, 150000)
	offShift := fighter("f3", "OffShift", 12, 150000)
	offShift.FirstShift = false
	offShift.SecondShift = true
	roster := []models.Player{busy, free, offShift}

	others := []models.Assignment{
		{
			BuildingName: "North Tower", Shift: 0,
			Players: []models.AssignedPlayer{{Player: busy, March: 150000}},
		},
		// same building name but a different shift index: independent namespace
		{
			BuildingName: "North Tower", Shift: 1,
			Players: []models.AssignedPlayer{{Player: free, March: 150000}},
		},
	}

	slot := models.Assignment{BuildingName: "HUB", Shift: 0}
	eligible, breakdown := EligiblePlayersDetail(slot, others, roster, nil, singleBuilding("HUB", "North Tower"))

	if len(eligible) != 1 || eligible[0].ID != "f2" {
		t.Fatalf("expected only f2 eligible, got %+v", eligible)
	}
	if breakdown.CommittedElsewhere != 1 {
		t.Errorf("expected 1 committed elsewhere, got %d", breakdown.CommittedElsewhere)
	}
	if breakdown.ShiftUnavailable != 1 {
		t.Errorf("expected 1 shift-unavailable, got %d", breakdown.ShiftUnavailable)
	}
}

func TestEligiblePlayers_NoCaptainMeansNoTroopFilter(t *testing.T) {
	roster := []models.Player{
		fighter("f1", "F1", 12, 150000),
		{ID: "s1", Name: "S1", TroopTier: 12, TroopShooter: true, MarchSize: 150000, FirstShift: true},
		{ID: "r1", Name: "R1", TroopTier: 12, TroopRider: true, MarchSize: 150000, FirstShift: true},
	}

	slot := models.Assignment{BuildingName: "HUB", Shift: 0}
	eligible := EligiblePlayers(slot, nil, roster, nil, singleBuilding())

	if len(eligible) != 3 {
		t.Errorf("expected all troop types to pass without a captain, got %d", len(eligible))
	}
}

func TestEligiblePlayers_CaptainExcludedFromOwnPool(t *testing.T) {
	capt := fighterCaptain("c1", "Cap", 12, 400000)
	capt.MarchSize = 150000
	roster := []models.Player{capt, fighter("f1", "F1", 12, 150000)}

	slot := models.Assignment{BuildingName: "HUB", Shift: 0, Capitan: &capt, RallySize: 400000}
	eligible := EligiblePlayers(slot, nil, roster, &capt, singleBuilding())

	for _, p := range eligible {
		if p.ID == capt.ID {
			t.Errorf("captain must not appear in their own regular-player pool")
		}
	}
}

func TestEligiblePlayers_TroopTypeOverlapIsAnyMatch(t *testing.T) {
	capt := fighterCaptain("c1", "Cap", 12, 400000)
	capt.TroopShooter = true
	hybrid := models.Player{
		ID: "h1", Name: "Hybrid", TroopTier: 12,
		TroopShooter: true, TroopRider: true,
		MarchSize: 150000, FirstShift: true,
	}
	rider := models.Player{
		ID: "r1", Name: "Rider", TroopTier: 12, TroopRider: true,
		MarchSize: 150000, FirstShift: true,
	}
	roster := []models.Player{capt, hybrid, rider}

	slot := models.Assignment{BuildingName: "HUB", Shift: 0, Capitan: &capt}
	eligible, breakdown := EligiblePlayersDetail(slot, nil, roster, &capt, singleBuilding())

	if len(eligible) != 1 || eligible[0].ID != "h1" {
		t.Fatalf("expected only the hybrid to match, got %+v", eligible)
	}
	if breakdown.TroopMismatch != 1 {
		t.Errorf("expected 1 troop mismatch, got %d", breakdown.TroopMismatch)
	}
}

func TestEligiblePlayers_FourShiftMode(t *testing.T) {
	firstHalf := fighter("f1", "FirstHalf", 12, 150000)
	secondHalf := fighter("f2", "SecondHalf", 12, 150000)
	secondHalf.FirstShift = false
	secondHalf.SecondShift = true
	roster := []models.Player{firstHalf, secondHalf}

	cfg := Config{Topology: models.Topology{BuildingNames: []string{"HUB"}, ShiftCount: 4}}

	for shift := 0; shift < 4; shift++ {
		slot := models.Assignment{BuildingName: "HUB", Shift: shift}
		eligible := EligiblePlayers(slot, nil, roster, nil, cfg)
		if len(eligible) != 1 {
			t.Fatalf("shift %d: expected exactly 1 eligible player, got %d", shift, len(eligible))
		}
		want := "f1"
		if shift >= 2 {
			want = "f2"
		}
		if eligible[0].ID != want {
			t.Errorf("shift %d: expected %s, got %s", shift, want, eligible[0].ID)
		}
	}
}

func TestEligibleCaptains_PriorityOrder(t *testing.T) {
	lowTier := fighterCaptain("c1", "LowTier", 11, 900000)
	bigRally := fighterCaptain("c2", "BigRally", 12, 500) // abbreviated: 500000
	smallRally := fighterCaptain("c3", "SmallRally", 12, 400000)
	notCaptain := fighter("f1", "F1", 13, 200000)
	roster := []models.Player{lowTier, smallRally, bigRally, notCaptain}

	slot := models.Assignment{BuildingName: "HUB", Shift: 0}
	captains := EligibleCaptains(slot, nil, roster, singleBuilding())

	want := []string{"c2", "c3", "c1"}
	if len(captains) != len(want) {
		t.Fatalf("expected %d captains, got %d", len(want), len(captains))
	}
	for i, id := range want {
		if captains[i].ID != id {
			t.Errorf("position %d: expected %s, got %s", i, id, captains[i].ID)
		}
	}
}

func TestBreakdownReasons(t *testing.T) {
	b := Breakdown{CommittedElsewhere: 2, TroopMismatch: 1}
	reasons := b.Reasons()
	if len(reasons) != 2 {
		t.Fatalf("expected 2 reasons, got %d: %v", len(reasons), reasons)
	}
}
