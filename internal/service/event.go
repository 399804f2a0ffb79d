package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/esprit/eventsproject/internal/domain"
	"github.com/esprit/eventsproject/internal/repository"
)

var (
	ErrParticipantNotFound    = repository.ErrParticipantNotFound
	ErrEventNotFound          = repository.ErrEventNotFound
	ErrEventDescriptionExists = repository.ErrEventDescriptionExists
)

type ParticipantRepository interface {
	FindByID(ctx context.Context, id uint) (domain.Participant, error)
	Save(ctx context.Context, participant domain.Participant) (domain.Participant, error)
}

type EventRepository interface {
	FindByID(ctx context.Context, id uint) (domain.Event, error)
	FindByDescription(ctx context.Context, description string) (domain.Event, error)
	FindByStartDateBetween(ctx context.Context, start, end time.Time) ([]domain.Event, error)
	FindByParticipantNameAndRole(ctx context.Context, lastName, firstName string, role domain.Role) ([]domain.Event, error)
	Save(ctx context.Context, event domain.Event) (domain.Event, error)
}

type LogisticsRepository interface {
	Save(ctx context.Context, logistics domain.Logistics) (domain.Logistics, error)
}

type EventService struct {
	eventRepo       EventRepository
	participantRepo ParticipantRepository
	logisticsRepo   LogisticsRepository
}

func NewEventService(eventRepo EventRepository, participantRepo ParticipantRepository, logisticsRepo LogisticsRepository) *EventService {
	return &EventService{
		eventRepo:       eventRepo,
		participantRepo: participantRepo,
		logisticsRepo:   logisticsRepo,
	}
}

func (s *EventService) AddParticipant(ctx context.Context, participant domain.Participant) (domain.Participant, error) {
	saved, err := s.participantRepo.Save(ctx, participant)
	if err != nil {
		return domain.Participant{}, fmt.Errorf("s.participantRepo.Save -> %w", err)
	}

	return saved, nil
}

func (s *EventService) GetParticipant(ctx context.Context, id uint) (domain.Participant, error) {
	participant, err := s.participantRepo.FindByID(ctx, id)
	if err != nil {
		return domain.Participant{}, fmt.Errorf("s.participantRepo.FindByID -> %w", err)
	}

	return participant, nil
}

// AffectEventToParticipant makes the participant a member of the event and
// saves the event. An unknown participant is skipped: the event is still
// saved, without the membership. An event with an ID must already exist.
func (s *EventService) AffectEventToParticipant(ctx context.Context, event domain.Event, participantID uint) (domain.Event, error) {
	event, err := s.loadEvent(ctx, event)
	if err != nil {
		return domain.Event{}, err
	}

	participant, err := s.participantRepo.FindByID(ctx, participantID)
	switch {
	case err == nil:
		event.AddParticipant(participant.ID)
	case errors.Is(err, repository.ErrParticipantNotFound):
		zap.L().Warn("participant not found, event saved without it",
			zap.Uint("participantID", participantID),
			zap.String("event", event.Description))
	default:
		return domain.Event{}, fmt.Errorf("s.participantRepo.FindByID -> %w", err)
	}

	saved, err := s.eventRepo.Save(ctx, event)
	if err != nil {
		return domain.Event{}, fmt.Errorf("s.eventRepo.Save -> %w", err)
	}

	return saved, nil
}

// AffectEventToParticipants keeps the participants listed on the event that
// exist and saves the event once.
func (s *EventService) AffectEventToParticipants(ctx context.Context, event domain.Event) (domain.Event, error) {
	requested := event.ParticipantIDs
	event.ParticipantIDs = nil

	event, err := s.loadEvent(ctx, event)
	if err != nil {
		return domain.Event{}, err
	}

	for _, id := range requested {
		participant, err := s.participantRepo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrParticipantNotFound) {
				zap.L().Warn("participant not found, skipping",
					zap.Uint("participantID", id),
					zap.String("event", event.Description))
				continue
			}
			return domain.Event{}, fmt.Errorf("s.participantRepo.FindByID -> %w", err)
		}
		event.AddParticipant(participant.ID)
	}

	saved, err := s.eventRepo.Save(ctx, event)
	if err != nil {
		return domain.Event{}, fmt.Errorf("s.eventRepo.Save -> %w", err)
	}

	return saved, nil
}

// loadEvent returns event as is when it has no ID. Otherwise it returns the
// stored event with the description, dates and participants of event applied
// over it.
func (s *EventService) loadEvent(ctx context.Context, event domain.Event) (domain.Event, error) {
	if event.ID == 0 {
		return event, nil
	}

	stored, err := s.eventRepo.FindByID(ctx, event.ID)
	if err != nil {
		return domain.Event{}, fmt.Errorf("s.eventRepo.FindByID -> %w", err)
	}

	if event.Description != "" {
		stored.Description = event.Description
	}
	if !event.StartDate.IsZero() {
		stored.StartDate = event.StartDate
		stored.EndDate = event.EndDate
	}
	for _, id := range event.ParticipantIDs {
		stored.AddParticipant(id)
	}

	return stored, nil
}

func (s *EventService) AffectLogistics(ctx context.Context, logistics domain.Logistics, description string) (domain.Logistics, error) {
	event, err := s.eventRepo.FindByDescription(ctx, description)
	if err != nil {
		return domain.Logistics{}, fmt.Errorf("s.eventRepo.FindByDescription -> %w", err)
	}

	logistics.EventID = event.ID
	event.AddLogistics(logistics)

	if _, err = s.eventRepo.Save(ctx, event); err != nil {
		return domain.Logistics{}, fmt.Errorf("s.eventRepo.Save -> %w", err)
	}

	saved, err := s.logisticsRepo.Save(ctx, logistics)
	if err != nil {
		return domain.Logistics{}, fmt.Errorf("s.logisticsRepo.Save -> %w", err)
	}

	return saved, nil
}

// GetLogisticsDates returns the reserved logistics of every event starting
// between start and end.
func (s *EventService) GetLogisticsDates(ctx context.Context, start, end time.Time) ([]domain.Logistics, error) {
	events, err := s.eventRepo.FindByStartDateBetween(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("s.eventRepo.FindByStartDateBetween -> %w", err)
	}

	logistics := []domain.Logistics{}
	for _, e := range events {
		logistics = append(logistics, e.ReservedLogistics()...)
	}

	return logistics, nil
}

// CalculateCost recomputes and saves the cost of every event the organizer
// takes part in.
func (s *EventService) CalculateCost(ctx context.Context, organizer domain.Organizer) error {
	events, err := s.eventRepo.FindByParticipantNameAndRole(ctx, organizer.LastName, organizer.FirstName, organizer.Role)
	if err != nil {
		return fmt.Errorf("s.eventRepo.FindByParticipantNameAndRole -> %w", err)
	}

	for _, event := range events {
		event.Cost = event.ReservedCost()

		if _, err = s.eventRepo.Save(ctx, event); err != nil {
			return fmt.Errorf("s.eventRepo.Save -> %w", err)
		}

		zap.L().Info("event cost updated",
			zap.String("event", event.Description),
			zap.Float64("cost", event.Cost))
	}

	return nil
}
