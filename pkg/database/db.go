package database

import (
	"log"
	"os"
	"time"

	"gorm.io/datatypes"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/guildtools/fortress-scheduler-api/pkg/models"
)

// RosterEntry represents the roster_entries table
type RosterEntry struct {
	ID           string    `gorm:"primaryKey" json:"id"`
	Name         string    `gorm:"not null" json:"name"`
	Alliance     string    `json:"alliance"`
	TroopTier    int       `json:"troop_tier"`
	TroopFighter bool      `json:"troop_fighter"`
	TroopShooter bool      `json:"troop_shooter"`
	TroopRider   bool      `json:"troop_rider"`
	IsCapitan    bool      `json:"is_capitan"`
	MarchSize    int       `json:"march_size"`
	RallySize    int       `json:"rally_size"`
	FirstShift   bool      `json:"first_shift"`
	SecondShift  bool      `json:"second_shift"`
	IsAttack     bool      `json:"is_attack"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// ToPlayer converts a roster row into the engine's player shape
func (e *RosterEntry) ToPlayer() models.Player {
	return models.Player{
		ID:           e.ID,
		Name:         e.Name,
		Alliance:     e.Alliance,
		TroopTier:    e.TroopTier,
		TroopFighter: e.TroopFighter,
		TroopShooter: e.TroopShooter,
		TroopRider:   e.TroopRider,
		IsCapitan:    e.IsCapitan,
		MarchSize:    e.MarchSize,
		RallySize:    e.RallySize,
		FirstShift:   e.FirstShift,
		SecondShift:  e.SecondShift,
		IsAttack:     e.IsAttack,
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    e.UpdatedAt,
	}
}

// FromPlayer converts the engine's player shape into a roster row
func FromPlayer(p models.Player) RosterEntry {
	return RosterEntry{
		ID:           p.ID,
		Name:         p.Name,
		Alliance:     p.Alliance,
		TroopTier:    p.TroopTier,
		TroopFighter: p.TroopFighter,
		TroopShooter: p.TroopShooter,
		TroopRider:   p.TroopRider,
		IsCapitan:    p.IsCapitan,
		MarchSize:    p.MarchSize,
		RallySize:    p.RallySize,
		FirstShift:   p.FirstShift,
		SecondShift:  p.SecondShift,
		IsAttack:     p.IsAttack,
	}
}

// ScheduleDoc represents the schedule_docs table: one JSON schedule document
// per event date, read and written whole
type ScheduleDoc struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	EventDate string         `gorm:"uniqueIndex;not null" json:"event_date"`
	Doc       datatypes.JSON `gorm:"not null" json:"doc"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

// MasterUser represents the master_users table
type MasterUser struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Username     string    `gorm:"unique;not null" json:"username"`
	PasswordHash string    `gorm:"not null" json:"password_hash"`
	CreatedAt    time.Time `json:"created_at"`
}

// InitDB initializes the database connection and migrates the schema
func InitDB() *gorm.DB {
	var db *gorm.DB
	var err error

	dsn := os.Getenv("DATABASE_URL")
	if dsn != "" {
		db, err = gorm.Open(postgres.New(postgres.Config{
			DSN:                  dsn,
			PreferSimpleProtocol: true,
		}), &gorm.Config{
			PrepareStmt: false,
		})
	} else {
		dbPath := os.Getenv("DATA_PATH")
		if dbPath == "" {
			dbPath = "scheduler.db"
		}
		db, err = gorm.Open(sqlite.Open(dbPath), &gorm.Config{})
	}

	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	// Auto Migration
	db.AutoMigrate(&RosterEntry{}, &ScheduleDoc{}, &MasterUser{})

	return db
}
