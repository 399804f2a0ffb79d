package dao

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrEventNotFound          = errors.New("event not found")
	ErrEventDescriptionExists = errors.New("event description already exists")
)

type Event struct {
	ID           uint          `gorm:"primaryKey"`
	Description  string        `gorm:"unique;not null"`
	DateDebut    time.Time     `gorm:"not null;index"`
	DateFin      time.Time     `gorm:"not null"`
	Cout         float64       `gorm:"not null;default:0"`
	Participants []Participant `gorm:"many2many:event_participants;"`
	Logistics    []Logistics   `gorm:"foreignKey:EventID"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// EventParticipant is the join row between events and participants. The
// composite primary key makes membership a set.
type EventParticipant struct {
	EventID       uint `gorm:"primaryKey"`
	ParticipantID uint `gorm:"primaryKey"`
	CreatedAt     time.Time
}

func (EventParticipant) TableName() string {
	return "event_participants"
}

type EventDAO struct {
	db *gorm.DB
}

func NewEventDAO(db *gorm.DB) *EventDAO {
	return &EventDAO{
		db: db,
	}
}

// Save upserts the event row and adds any missing participant memberships.
// Logistics rows are written by LogisticsDAO.
func (d *EventDAO) Save(ctx context.Context, event Event) (Event, error) {
	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := save(tx, event.ID, &event).Error; err != nil {
			return err
		}

		if len(event.Participants) == 0 {
			return nil
		}

		rows := make([]EventParticipant, 0, len(event.Participants))
		for _, p := range event.Participants {
			rows = append(rows, EventParticipant{EventID: event.ID, ParticipantID: p.ID})
		}

		return tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&rows).Error
	})
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) &&
			pgErr.Code == pgerrcode.UniqueViolation &&
			strings.Contains(pgErr.Message, `"uni_events_description"`) {
			return Event{}, ErrEventDescriptionExists
		}

		return Event{}, err
	}

	return event, nil
}

func (d *EventDAO) FindByID(ctx context.Context, id uint) (Event, error) {
	var event Event

	result := d.withRelations(ctx).First(&event, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Event{}, ErrEventNotFound
		}

		return Event{}, result.Error
	}

	return event, nil
}

func (d *EventDAO) FindByDescription(ctx context.Context, description string) (Event, error) {
	var event Event

	result := d.withRelations(ctx).First(&event, "description = ?", description)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Event{}, ErrEventNotFound
		}

		return Event{}, result.Error
	}

	return event, nil
}

// FindByDateDebutBetween returns events whose start date lies in [start, end].
func (d *EventDAO) FindByDateDebutBetween(ctx context.Context, start, end time.Time) ([]Event, error) {
	var events []Event

	result := d.withRelations(ctx).
		Where("date_debut BETWEEN ? AND ?", start, end).
		Order("date_debut").
		Find(&events)
	if result.Error != nil {
		return nil, result.Error
	}

	return events, nil
}

func (d *EventDAO) FindByParticipantNomAndPrenomAndTache(ctx context.Context, nom, prenom, tache string) ([]Event, error) {
	var events []Event

	members := d.db.WithContext(ctx).
		Table("event_participants AS ep").
		Select("ep.event_id").
		Joins("JOIN participants AS p ON p.id = ep.participant_id").
		Where("p.nom = ? AND p.prenom = ? AND p.tache = ?", nom, prenom, tache)

	result := d.withRelations(ctx).
		Where("id IN (?)", members).
		Order("id").
		Find(&events)
	if result.Error != nil {
		return nil, result.Error
	}

	return events, nil
}

func (d *EventDAO) withRelations(ctx context.Context) *gorm.DB {
	return d.db.WithContext(ctx).
		Preload("Participants").
		Preload("Logistics", func(db *gorm.DB) *gorm.DB { return db.Order("id") })
}
