package service

import (
	"testing"
	"time"

	"github.com/rosterhq/tournament-roster/internal/domain"
	"github.com/rosterhq/tournament-roster/internal/repository"
	"github.com/stretchr/testify/mock"
)

var fixedNow = time.Date(2026, 5, 1, 17, 0, 0, 0, time.UTC)

func clockAt(now time.Time) Clock {
	return func() time.Time { return now }
}

type fixture struct {
	tournaments *MockTournamentRepository
	orgs        *MockOrganizationRepository
	teams       *MockTeamRepository
	trust       *MockTrustRepository
	uow         *FakeUnitOfWork
}

func newFixture() *fixture {
	f := &fixture{
		tournaments: new(MockTournamentRepository),
		orgs:        new(MockOrganizationRepository),
		teams:       new(MockTeamRepository),
		trust:       new(MockTrustRepository),
	}
	f.uow = &FakeUnitOfWork{Repos: repository.Repositories{
		Tournaments:   f.tournaments,
		Organizations: f.orgs,
		Teams:         f.teams,
		Trust:         f.trust,
	}}
	return f
}

func (f *fixture) assertExpectations(t *testing.T) {
	t.Helper()
	f.tournaments.AssertExpectations(t)
	f.orgs.AssertExpectations(t)
	f.teams.AssertExpectations(t)
	f.trust.AssertExpectations(t)
}

// newTeam создает команду турнира 1: капитан captainID, затем остальные участники
func newTeam(id, captainID int, others ...int) *domain.Team {
	team := &domain.Team{
		ID:           id,
		TournamentID: 1,
		Name:         "Team",
		InviteCode:   "abc",
		Members:      []domain.TeamMember{{UserID: captainID, IsCaptain: true}},
	}
	for _, userID := range others {
		team.Members = append(team.Members, domain.TeamMember{UserID: userID})
	}
	return team
}

func newTournament(start time.Time) *domain.Tournament {
	return &domain.Tournament{ID: 1, OrganizationID: 2, Name: "Spring Cup", StartTime: start}
}

// организация 2: владелец 100, админ 101
func newOrganization() *domain.Organization {
	return &domain.Organization{ID: 2, OwnerID: 100, AdminIDs: []int{101}}
}

func timeEqual(expected time.Time) interface{} {
	return mock.MatchedBy(func(actual *time.Time) bool {
		return actual != nil && actual.Equal(expected)
	})
}
