package service

import (
	"context"

	"github.com/rosterhq/tournament-roster/internal/domain"
	"github.com/rosterhq/tournament-roster/internal/repository"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

type checkInService struct {
	uow    repository.UnitOfWork
	policy Policy
	clock  Clock
	log    *zap.Logger
}

func NewCheckInService(uow repository.UnitOfWork, policy Policy, clock Clock, log *zap.Logger) CheckInService {
	return &checkInService{
		uow:    uow,
		policy: policy,
		clock:  clock,
		log:    log,
	}
}

// loadTeamContext загружает команду с блокировкой, ее турнир и организацию.
// Команда без турнира или организации для чек-ина не существует: InvalidTeam.
func loadTeamContext(ctx context.Context, repos repository.Repositories, teamID int) (*domain.Team, *domain.Tournament, *domain.Organization, error) {
	team, err := repos.Teams.GetByIDForUpdate(ctx, teamID)
	if err != nil {
		return nil, nil, nil, storeError(err, domain.ErrInvalidTeam)
	}

	tournament, err := repos.Tournaments.GetByID(ctx, team.TournamentID)
	if err != nil {
		return nil, nil, nil, storeError(err, domain.ErrInvalidTeam)
	}

	org, err := repos.Organizations.GetByID(ctx, tournament.OrganizationID)
	if err != nil {
		return nil, nil, nil, storeError(err, domain.ErrInvalidTeam)
	}

	return team, tournament, org, nil
}

func (s *checkInService) CheckIn(ctx context.Context, teamID, userID int) (*domain.Team, error) {
	ctx, span := tracer.Start(ctx, "CheckInService.CheckIn", trace.WithAttributes(
		attribute.Int("team.id", teamID),
		attribute.Int("user.id", userID),
	))
	defer span.End()

	var updated *domain.Team
	err := s.uow.Do(ctx, func(ctx context.Context, repos repository.Repositories) error {
		team, tournament, org, err := loadTeamContext(ctx, repos, teamID)
		if err != nil {
			return err
		}

		if !canCheckIn(team, org, userID) {
			return domain.ErrNotCaptain
		}

		now := s.clock()
		// админ может зачекинить команду в любой момент
		if !domain.IsAdmin(userID, org) &&
			domain.IsCheckInClosed(tournament.StartTime, s.policy.CheckInClosesMinutesFromStart, now) {
			return domain.ErrCheckInClosed
		}

		if err := s.policy.checkPhase(tournament, now); err != nil {
			return err
		}

		if err := repos.Teams.SetCheckedInAt(ctx, team.ID, &now); err != nil {
			return storeError(err, domain.ErrInvalidTeam)
		}

		team.CheckedInAt = &now
		updated = team
		return nil
	})
	if err != nil {
		return nil, finish(s.log, span, "check_in", err)
	}

	s.log.Info("team checked in", zap.Int("team_id", teamID), zap.Int("user_id", userID))
	return updated, nil
}

func (s *checkInService) CheckOut(ctx context.Context, teamID, userID int) (*domain.Team, error) {
	ctx, span := tracer.Start(ctx, "CheckInService.CheckOut", trace.WithAttributes(
		attribute.Int("team.id", teamID),
		attribute.Int("user.id", userID),
	))
	defer span.End()

	var updated *domain.Team
	err := s.uow.Do(ctx, func(ctx context.Context, repos repository.Repositories) error {
		team, tournament, org, err := loadTeamContext(ctx, repos, teamID)
		if err != nil {
			return err
		}

		if !canCheckOut(org, userID) {
			return domain.ErrNotAdmin
		}

		if err := s.policy.checkPhase(tournament, s.clock()); err != nil {
			return err
		}

		if err := repos.Teams.SetCheckedInAt(ctx, team.ID, nil); err != nil {
			return storeError(err, domain.ErrInvalidTeam)
		}

		team.CheckedInAt = nil
		updated = team
		return nil
	})
	if err != nil {
		return nil, finish(s.log, span, "check_out", err)
	}

	s.log.Info("team checked out", zap.Int("team_id", teamID), zap.Int("user_id", userID))
	return updated, nil
}
