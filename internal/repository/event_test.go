package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/esprit/eventsproject/internal/domain"
	"github.com/esprit/eventsproject/internal/repository/dao"
)

func TestEventRepository_Save(t *testing.T) {
	ctx := context.Background()
	start := time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)
	d := new(mockEventDAO)
	d.On("Save", ctx, mock.MatchedBy(func(e dao.Event) bool {
		return e.Description == "Conference" &&
			len(e.Participants) == 2 &&
			e.Participants[0].ID == 1 &&
			e.Participants[1].ID == 2 &&
			len(e.Logistics) == 0
	})).Return(dao.Event{
		ID:           5,
		Description:  "Conference",
		DateDebut:    start,
		DateFin:      start,
		Participants: []dao.Participant{{ID: 1}, {ID: 2}},
	}, nil)

	logistics := []domain.Logistics{{Description: "Badges", Reserved: true}}
	saved, err := NewEventRepository(d).Save(ctx, domain.Event{
		Description:    "Conference",
		StartDate:      start,
		EndDate:        start,
		ParticipantIDs: []uint{1, 2},
		Logistics:      logistics,
	})

	require.NoError(t, err)
	assert.Equal(t, uint(5), saved.ID)
	assert.Equal(t, []uint{1, 2}, saved.ParticipantIDs)
	assert.Equal(t, logistics, saved.Logistics)
	d.AssertExpectations(t)
}

func TestEventRepository_FindByID(t *testing.T) {
	ctx := context.Background()
	eventID := uint(6)
	d := new(mockEventDAO)
	d.On("FindByID", ctx, eventID).Return(dao.Event{
		ID:           eventID,
		Description:  "Hackathon",
		Participants: []dao.Participant{{ID: 1}, {ID: 3}},
		Logistics:    []dao.Logistics{{ID: 2, Description: "Tables", EventID: &eventID}},
	}, nil)
	d.On("FindByID", ctx, uint(7)).Return(dao.Event{}, dao.ErrEventNotFound)
	r := NewEventRepository(d)

	found, err := r.FindByID(ctx, eventID)
	require.NoError(t, err)
	assert.Equal(t, []uint{1, 3}, found.ParticipantIDs)
	require.Len(t, found.Logistics, 1)
	assert.Equal(t, eventID, found.Logistics[0].EventID)

	_, err = r.FindByID(ctx, 7)
	assert.ErrorIs(t, err, ErrEventNotFound)
}

func TestEventRepository_FindByDescription(t *testing.T) {
	ctx := context.Background()
	eventID := uint(4)
	d := new(mockEventDAO)
	d.On("FindByDescription", ctx, "Gala").Return(dao.Event{
		ID:          eventID,
		Description: "Gala",
		Cout:        12.5,
		Logistics: []dao.Logistics{
			{ID: 1, Description: "Lights", Reserve: true, PrixUnit: 12.5, Quantite: 1, EventID: &eventID},
		},
	}, nil)

	found, err := NewEventRepository(d).FindByDescription(ctx, "Gala")

	require.NoError(t, err)
	assert.Equal(t, 12.5, found.Cost)
	require.Len(t, found.Logistics, 1)
	assert.Equal(t, domain.Logistics{
		ID:          1,
		Description: "Lights",
		Reserved:    true,
		UnitPrice:   12.5,
		Quantity:    1,
		EventID:     eventID,
	}, found.Logistics[0])
}

func TestEventRepository_FindByDescription_NotFound(t *testing.T) {
	ctx := context.Background()
	d := new(mockEventDAO)
	d.On("FindByDescription", ctx, "missing").Return(dao.Event{}, dao.ErrEventNotFound)

	_, err := NewEventRepository(d).FindByDescription(ctx, "missing")

	assert.ErrorIs(t, err, ErrEventNotFound)
}

func TestEventRepository_FindByParticipantNameAndRole(t *testing.T) {
	ctx := context.Background()
	d := new(mockEventDAO)
	d.On("FindByParticipantNomAndPrenomAndTache", ctx, "Tounsi", "Ahmed", "ORGANISATEUR").
		Return([]dao.Event{{ID: 1}, {ID: 2}}, nil)

	found, err := NewEventRepository(d).FindByParticipantNameAndRole(ctx, "Tounsi", "Ahmed", domain.RoleOrganisateur)

	require.NoError(t, err)
	assert.Len(t, found, 2)
	d.AssertExpectations(t)
}

func TestEventRepository_FindByStartDateBetween(t *testing.T) {
	ctx := context.Background()
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)
	d := new(mockEventDAO)
	d.On("FindByDateDebutBetween", ctx, start, end).Return([]dao.Event{}, nil)

	found, err := NewEventRepository(d).FindByStartDateBetween(ctx, start, end)

	require.NoError(t, err)
	assert.Empty(t, found)
	assert.NotNil(t, found)
}
