package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/esprit/eventsproject/internal/domain"
	"github.com/esprit/eventsproject/internal/repository/dao"
)

var (
	ErrEventNotFound          = dao.ErrEventNotFound
	ErrEventDescriptionExists = dao.ErrEventDescriptionExists
)

type EventDAO interface {
	Save(ctx context.Context, event dao.Event) (dao.Event, error)
	FindByID(ctx context.Context, id uint) (dao.Event, error)
	FindByDescription(ctx context.Context, description string) (dao.Event, error)
	FindByDateDebutBetween(ctx context.Context, start, end time.Time) ([]dao.Event, error)
	FindByParticipantNomAndPrenomAndTache(ctx context.Context, nom, prenom, tache string) ([]dao.Event, error)
}

type EventRepository struct {
	dao EventDAO
}

func NewEventRepository(dao EventDAO) *EventRepository {
	return &EventRepository{
		dao: dao,
	}
}

// Save persists the event row and its participant memberships. The returned
// event keeps the logistics set of the argument since logistics rows are
// saved through LogisticsRepository.
func (r *EventRepository) Save(ctx context.Context, event domain.Event) (domain.Event, error) {
	saved, err := r.dao.Save(ctx, r.domainToDao(event))
	if err != nil {
		return domain.Event{}, fmt.Errorf("r.dao.Save -> %w", err)
	}

	result := r.daoToDomain(saved)
	result.Logistics = event.Logistics

	return result, nil
}

func (r *EventRepository) FindByID(ctx context.Context, id uint) (domain.Event, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Event{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *EventRepository) FindByDescription(ctx context.Context, description string) (domain.Event, error) {
	found, err := r.dao.FindByDescription(ctx, description)
	if err != nil {
		return domain.Event{}, fmt.Errorf("r.dao.FindByDescription -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *EventRepository) FindByStartDateBetween(ctx context.Context, start, end time.Time) ([]domain.Event, error) {
	found, err := r.dao.FindByDateDebutBetween(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindByDateDebutBetween -> %w", err)
	}

	return r.daosToDomain(found), nil
}

func (r *EventRepository) FindByParticipantNameAndRole(ctx context.Context, lastName, firstName string, role domain.Role) ([]domain.Event, error) {
	found, err := r.dao.FindByParticipantNomAndPrenomAndTache(ctx, lastName, firstName, string(role))
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindByParticipantNomAndPrenomAndTache -> %w", err)
	}

	return r.daosToDomain(found), nil
}

func (r *EventRepository) domainToDao(e domain.Event) dao.Event {
	participants := make([]dao.Participant, len(e.ParticipantIDs))
	for i, id := range e.ParticipantIDs {
		participants[i] = dao.Participant{ID: id}
	}

	return dao.Event{
		ID:           e.ID,
		Description:  e.Description,
		DateDebut:    e.StartDate,
		DateFin:      e.EndDate,
		Cout:         e.Cost,
		Participants: participants,
	}
}

func (r *EventRepository) daoToDomain(e dao.Event) domain.Event {
	event := domain.Event{
		ID:          e.ID,
		Description: e.Description,
		StartDate:   e.DateDebut,
		EndDate:     e.DateFin,
		Cost:        e.Cout,
		Logistics:   logisticsDaosToDomain(e.Logistics),
	}

	for _, p := range e.Participants {
		event.AddParticipant(p.ID)
	}

	return event
}

func (r *EventRepository) daosToDomain(daoEvents []dao.Event) []domain.Event {
	events := make([]domain.Event, len(daoEvents))
	for i, e := range daoEvents {
		events[i] = r.daoToDomain(e)
	}
	return events
}
