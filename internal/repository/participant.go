package repository

import (
	"context"
	"fmt"

	"github.com/esprit/eventsproject/internal/domain"
	"github.com/esprit/eventsproject/internal/repository/dao"
)

var (
	ErrParticipantNotFound = dao.ErrParticipantNotFound
)

type ParticipantDAO interface {
	Save(ctx context.Context, participant dao.Participant) (dao.Participant, error)
	FindByID(ctx context.Context, id uint) (dao.Participant, error)
}

type ParticipantRepository struct {
	dao ParticipantDAO
}

func NewParticipantRepository(dao ParticipantDAO) *ParticipantRepository {
	return &ParticipantRepository{
		dao: dao,
	}
}

func (r *ParticipantRepository) Save(ctx context.Context, participant domain.Participant) (domain.Participant, error) {
	saved, err := r.dao.Save(ctx, r.domainToDao(participant))
	if err != nil {
		return domain.Participant{}, fmt.Errorf("r.dao.Save -> %w", err)
	}

	// Memberships are owned by the event side and are not written here.
	result := r.daoToDomain(saved)
	result.EventIDs = participant.EventIDs

	return result, nil
}

func (r *ParticipantRepository) FindByID(ctx context.Context, id uint) (domain.Participant, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Participant{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *ParticipantRepository) domainToDao(p domain.Participant) dao.Participant {
	return dao.Participant{
		ID:     p.ID,
		Nom:    p.LastName,
		Prenom: p.FirstName,
		Tache:  string(p.Role),
	}
}

func (r *ParticipantRepository) daoToDomain(p dao.Participant) domain.Participant {
	participant := domain.Participant{
		ID:        p.ID,
		LastName:  p.Nom,
		FirstName: p.Prenom,
		Role:      domain.Role(p.Tache),
	}

	for _, e := range p.Events {
		participant.JoinEvent(e.ID)
	}

	return participant
}
