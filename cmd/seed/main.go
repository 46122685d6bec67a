package main

import (
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"github.com/guildtools/fortress-scheduler-api/pkg/auth"
	"github.com/guildtools/fortress-scheduler-api/pkg/database"
	"github.com/guildtools/fortress-scheduler-api/pkg/models"
)

// Seeds the bootstrap admin and a small demo roster for local development.
// Safe to re-run: it does nothing if the roster already has entries.
func main() {
	_ = godotenv.Load(".env")
	_ = godotenv.Load("../.env")

	db := database.InitDB()

	if err := auth.EnsureAdminExists(db); err != nil {
		log.Fatalf("could not ensure admin: %v", err)
	}

	var count int64
	db.Model(&database.RosterEntry{}).Count(&count)
	if count > 0 {
		fmt.Printf("Roster already has %d entries, nothing to seed\n", count)
		return
	}

	demo := []models.Player{
		{Name: "Kael", Alliance: "VLK", TroopTier: 13, TroopFighter: true, IsCapitan: true, RallySize: 2300000, MarchSize: 280000, FirstShift: true, SecondShift: true},
		{Name: "Mirra", Alliance: "VLK", TroopTier: 12, TroopShooter: true, IsCapitan: true, RallySize: 1800, MarchSize: 250, FirstShift: true},
		{Name: "Dorn", Alliance: "VLK", TroopTier: 12, TroopFighter: true, MarchSize: 264, FirstShift: true},
		{Name: "Sable", Alliance: "VLK", TroopTier: 12, TroopShooter: true, MarchSize: 240000, FirstShift: true, SecondShift: true},
		{Name: "Ivo", Alliance: "VLK", TroopTier: 11, TroopRider: true, MarchSize: 220000, SecondShift: true},
		{Name: "Tessa", Alliance: "VLK", TroopTier: 11, TroopFighter: true, MarchSize: 200, SecondShift: true},
		{Name: "Brant", Alliance: "VLK", TroopTier: 10, TroopShooter: true, MarchSize: 180000, FirstShift: true, IsAttack: true},
	}

	for _, p := range demo {
		p.ID = uuid.NewString()
		entry := database.FromPlayer(p)
		if err := db.Create(&entry).Error; err != nil {
			log.Fatalf("could not seed player %s: %v", p.Name, err)
		}
	}

	fmt.Printf("Seeded %d demo players\n", len(demo))
}
