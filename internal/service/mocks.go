package service

import (
	"context"
	"time"

	"github.com/rosterhq/tournament-roster/internal/domain"
	"github.com/rosterhq/tournament-roster/internal/repository"
	"github.com/stretchr/testify/mock"
)

type MockTournamentRepository struct {
	mock.Mock
}

func (m *MockTournamentRepository) GetByID(ctx context.Context, id int) (*domain.Tournament, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Tournament), args.Error(1)
}

func (m *MockTournamentRepository) GetByIDForUpdate(ctx context.Context, id int) (*domain.Tournament, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Tournament), args.Error(1)
}

func (m *MockTournamentRepository) ReplaceSeeds(ctx context.Context, tournamentID int, teamIDs []int) error {
	args := m.Called(ctx, tournamentID, teamIDs)
	return args.Error(0)
}

type MockOrganizationRepository struct {
	mock.Mock
}

func (m *MockOrganizationRepository) GetByID(ctx context.Context, id int) (*domain.Organization, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Organization), args.Error(1)
}

type MockTeamRepository struct {
	mock.Mock
}

func (m *MockTeamRepository) GetByIDForUpdate(ctx context.Context, id int) (*domain.Team, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Team), args.Error(1)
}

func (m *MockTeamRepository) GetByInviteCodeForUpdate(ctx context.Context, tournamentID int, inviteCode string) (*domain.Team, error) {
	args := m.Called(ctx, tournamentID, inviteCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Team), args.Error(1)
}

func (m *MockTeamRepository) ListByTournament(ctx context.Context, tournamentID int) ([]*domain.Team, error) {
	args := m.Called(ctx, tournamentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Team), args.Error(1)
}

func (m *MockTeamRepository) ListIDsByTournament(ctx context.Context, tournamentID int) ([]int, error) {
	args := m.Called(ctx, tournamentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int), args.Error(1)
}

func (m *MockTeamRepository) AddMember(ctx context.Context, tournamentID, teamID, userID int, joinedAt time.Time) error {
	args := m.Called(ctx, tournamentID, teamID, userID, joinedAt)
	return args.Error(0)
}

func (m *MockTeamRepository) RemoveMember(ctx context.Context, teamID, userID int) error {
	args := m.Called(ctx, teamID, userID)
	return args.Error(0)
}

func (m *MockTeamRepository) SetCheckedInAt(ctx context.Context, teamID int, checkedInAt *time.Time) error {
	args := m.Called(ctx, teamID, checkedInAt)
	return args.Error(0)
}

func (m *MockTeamRepository) SetInviteCode(ctx context.Context, teamID int, inviteCode string) error {
	args := m.Called(ctx, teamID, inviteCode)
	return args.Error(0)
}

type MockTrustRepository struct {
	mock.Mock
}

func (m *MockTrustRepository) Upsert(ctx context.Context, trusterID, trustedID int) error {
	args := m.Called(ctx, trusterID, trustedID)
	return args.Error(0)
}

type MockStatsRepository struct {
	mock.Mock
}

func (m *MockStatsRepository) GetTeamStats(ctx context.Context, tournamentID int) ([]*domain.TeamStat, error) {
	args := m.Called(ctx, tournamentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.TeamStat), args.Error(1)
}

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) ListMemberships(ctx context.Context, userID int) ([]*domain.Membership, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Membership), args.Error(1)
}

// FakeUnitOfWork вызывает fn с мок-репозиториями без реальной транзакции.
// Calls и Commits считают вызовы Do и успешные завершения.
type FakeUnitOfWork struct {
	Repos   repository.Repositories
	Calls   int
	Commits int
	// BeginErr, если задан, возвращается вместо вызова fn
	BeginErr error
}

func (u *FakeUnitOfWork) Do(ctx context.Context, fn func(ctx context.Context, repos repository.Repositories) error) error {
	u.Calls++
	if u.BeginErr != nil {
		return u.BeginErr
	}
	if err := fn(ctx, u.Repos); err != nil {
		return err
	}
	u.Commits++
	return nil
}
