package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

var (
	ErrParticipantNotFound = errors.New("participant not found")
)

type Participant struct {
	ID        uint    `gorm:"primaryKey"`
	Nom       string  `gorm:"not null"`
	Prenom    string  `gorm:"not null"`
	Tache     string  `gorm:"not null;index"` // "ORGANISATEUR", "INTERVENANT" or "VISITEUR"
	Events    []Event `gorm:"many2many:event_participants;"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

type ParticipantDAO struct {
	db *gorm.DB
}

func NewParticipantDAO(db *gorm.DB) *ParticipantDAO {
	return &ParticipantDAO{
		db: db,
	}
}

func (d *ParticipantDAO) Save(ctx context.Context, participant Participant) (Participant, error) {
	result := save(d.db.WithContext(ctx), participant.ID, &participant)
	if result.Error != nil {
		return Participant{}, result.Error
	}

	return participant, nil
}

func (d *ParticipantDAO) FindByID(ctx context.Context, id uint) (Participant, error) {
	var participant Participant

	result := d.db.WithContext(ctx).Preload("Events").First(&participant, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Participant{}, ErrParticipantNotFound
		}

		return Participant{}, result.Error
	}

	return participant, nil
}
