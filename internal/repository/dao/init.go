package dao

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func InitTables(db *gorm.DB) error {
	if err := db.SetupJoinTable(&Event{}, "Participants", &EventParticipant{}); err != nil {
		return err
	}
	if err := db.SetupJoinTable(&Participant{}, "Events", &EventParticipant{}); err != nil {
		return err
	}

	return db.AutoMigrate(
		&Participant{},
		&Event{},
		&Logistics{},
		&EventParticipant{},
	)
}

// save inserts value when id is zero and updates it otherwise. Associations
// are never written, and updates leave created_at untouched.
func save(tx *gorm.DB, id uint, value any) *gorm.DB {
	omits := []string{clause.Associations}
	if id != 0 {
		omits = append(omits, "CreatedAt")
	}

	return tx.Omit(omits...).Save(value)
}
