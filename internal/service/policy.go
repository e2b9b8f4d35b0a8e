package service

import (
	"context"
	"time"

	"github.com/rosterhq/tournament-roster/internal/domain"
)

// Clock - источник текущего времени; в тестах подменяется фиксированным
type Clock func() time.Time

// TournamentPhaseGuard может запретить изменение состава или чек-ин в
// зависимости от фазы турнира (например, после старта). nil - без ограничений.
type TournamentPhaseGuard func(t *domain.Tournament, now time.Time) error

// JoinGuard вызывается перед вступлением по инвайт-коду. nil - без ограничений.
type JoinGuard func(ctx context.Context, t *domain.Tournament, team *domain.Team, userID int) error

type Policy struct {
	RosterCap                     int
	CheckInClosesMinutesFromStart int
	PhaseGuard                    TournamentPhaseGuard
	JoinGuard                     JoinGuard
}

func DefaultPolicy() Policy {
	return Policy{
		RosterCap:                     domain.DefaultRosterCap,
		CheckInClosesMinutesFromStart: 10,
	}
}

func (p Policy) checkPhase(t *domain.Tournament, now time.Time) error {
	if p.PhaseGuard == nil {
		return nil
	}
	return p.PhaseGuard(t, now)
}

func (p Policy) checkJoin(ctx context.Context, t *domain.Tournament, team *domain.Team, userID int) error {
	if p.JoinGuard == nil {
		return nil
	}
	return p.JoinGuard(ctx, t, team, userID)
}

// Права доступа. Админ организации - владелец или пользователь из списка админов.

func canManageRoster(team *domain.Team, userID int) bool {
	return team.IsCaptain(userID)
}

func canCheckIn(team *domain.Team, org *domain.Organization, userID int) bool {
	return domain.IsAdmin(userID, org) || team.IsCaptain(userID)
}

func canCheckOut(org *domain.Organization, userID int) bool {
	return domain.IsAdmin(userID, org)
}

func canUpdateSeeds(org *domain.Organization, userID int) bool {
	return domain.IsAdmin(userID, org)
}
