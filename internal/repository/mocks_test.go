package repository

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/esprit/eventsproject/internal/repository/dao"
)

type mockParticipantDAO struct {
	mock.Mock
}

func (m *mockParticipantDAO) Save(ctx context.Context, participant dao.Participant) (dao.Participant, error) {
	args := m.Called(ctx, participant)
	return args.Get(0).(dao.Participant), args.Error(1)
}

func (m *mockParticipantDAO) FindByID(ctx context.Context, id uint) (dao.Participant, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(dao.Participant), args.Error(1)
}

type mockEventDAO struct {
	mock.Mock
}

func (m *mockEventDAO) Save(ctx context.Context, event dao.Event) (dao.Event, error) {
	args := m.Called(ctx, event)
	return args.Get(0).(dao.Event), args.Error(1)
}

func (m *mockEventDAO) FindByID(ctx context.Context, id uint) (dao.Event, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(dao.Event), args.Error(1)
}

func (m *mockEventDAO) FindByDescription(ctx context.Context, description string) (dao.Event, error) {
	args := m.Called(ctx, description)
	return args.Get(0).(dao.Event), args.Error(1)
}

func (m *mockEventDAO) FindByDateDebutBetween(ctx context.Context, start, end time.Time) ([]dao.Event, error) {
	args := m.Called(ctx, start, end)
	return args.Get(0).([]dao.Event), args.Error(1)
}

func (m *mockEventDAO) FindByParticipantNomAndPrenomAndTache(ctx context.Context, nom, prenom, tache string) ([]dao.Event, error) {
	args := m.Called(ctx, nom, prenom, tache)
	return args.Get(0).([]dao.Event), args.Error(1)
}

type mockLogisticsDAO struct {
	mock.Mock
}

func (m *mockLogisticsDAO) Save(ctx context.Context, logistics dao.Logistics) (dao.Logistics, error) {
	args := m.Called(ctx, logistics)
	return args.Get(0).(dao.Logistics), args.Error(1)
}
