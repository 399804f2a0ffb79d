package service

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/esprit/eventsproject/internal/domain"
)

type mockParticipantRepository struct {
	mock.Mock
}

func (m *mockParticipantRepository) FindByID(ctx context.Context, id uint) (domain.Participant, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Participant), args.Error(1)
}

func (m *mockParticipantRepository) Save(ctx context.Context, participant domain.Participant) (domain.Participant, error) {
	args := m.Called(ctx, participant)
	if fn, ok := args.Get(0).(func(context.Context, domain.Participant) domain.Participant); ok {
		return fn(ctx, participant), args.Error(1)
	}
	return args.Get(0).(domain.Participant), args.Error(1)
}

type mockEventRepository struct {
	mock.Mock
}

func (m *mockEventRepository) FindByID(ctx context.Context, id uint) (domain.Event, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Event), args.Error(1)
}

func (m *mockEventRepository) FindByDescription(ctx context.Context, description string) (domain.Event, error) {
	args := m.Called(ctx, description)
	return args.Get(0).(domain.Event), args.Error(1)
}

func (m *mockEventRepository) FindByStartDateBetween(ctx context.Context, start, end time.Time) ([]domain.Event, error) {
	args := m.Called(ctx, start, end)
	return args.Get(0).([]domain.Event), args.Error(1)
}

func (m *mockEventRepository) FindByParticipantNameAndRole(ctx context.Context, lastName, firstName string, role domain.Role) ([]domain.Event, error) {
	args := m.Called(ctx, lastName, firstName, role)
	return args.Get(0).([]domain.Event), args.Error(1)
}

func (m *mockEventRepository) Save(ctx context.Context, event domain.Event) (domain.Event, error) {
	args := m.Called(ctx, event)
	if fn, ok := args.Get(0).(func(context.Context, domain.Event) domain.Event); ok {
		return fn(ctx, event), args.Error(1)
	}
	return args.Get(0).(domain.Event), args.Error(1)
}

type mockLogisticsRepository struct {
	mock.Mock
}

func (m *mockLogisticsRepository) Save(ctx context.Context, logistics domain.Logistics) (domain.Logistics, error) {
	args := m.Called(ctx, logistics)
	if fn, ok := args.Get(0).(func(context.Context, domain.Logistics) domain.Logistics); ok {
		return fn(ctx, logistics), args.Error(1)
	}
	return args.Get(0).(domain.Logistics), args.Error(1)
}

type testRepos struct {
	events       *mockEventRepository
	participants *mockParticipantRepository
	logistics    *mockLogisticsRepository
}

func newTestEventService() (*EventService, testRepos) {
	repos := testRepos{
		events:       new(mockEventRepository),
		participants: new(mockParticipantRepository),
		logistics:    new(mockLogisticsRepository),
	}

	return NewEventService(repos.events, repos.participants, repos.logistics), repos
}

func echoEvent(_ context.Context, e domain.Event) domain.Event {
	return e
}
