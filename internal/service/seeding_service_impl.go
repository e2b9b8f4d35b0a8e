package service

import (
	"context"

	"github.com/rosterhq/tournament-roster/internal/domain"
	"github.com/rosterhq/tournament-roster/internal/repository"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

type seedingService struct {
	uow repository.UnitOfWork
	log *zap.Logger
}

func NewSeedingService(uow repository.UnitOfWork, log *zap.Logger) SeedingService {
	return &seedingService{uow: uow, log: log}
}

func (s *seedingService) UpdateSeeds(ctx context.Context, tournamentID, userID int, seeds []int) (*domain.Tournament, error) {
	ctx, span := tracer.Start(ctx, "SeedingService.UpdateSeeds", trace.WithAttributes(
		attribute.Int("tournament.id", tournamentID),
		attribute.Int("user.id", userID),
		attribute.Int("seeds.count", len(seeds)),
	))
	defer span.End()

	var updated *domain.Tournament
	err := s.uow.Do(ctx, func(ctx context.Context, repos repository.Repositories) error {
		tournament, err := repos.Tournaments.GetByIDForUpdate(ctx, tournamentID)
		if err != nil {
			return storeError(err, domain.ErrInvalidTournament)
		}

		org, err := repos.Organizations.GetByID(ctx, tournament.OrganizationID)
		if err != nil {
			return storeError(err, domain.ErrInvalidTournament)
		}

		if !canUpdateSeeds(org, userID) {
			return domain.ErrNotAdmin
		}

		teamIDs, err := repos.Teams.ListIDsByTournament(ctx, tournament.ID)
		if err != nil {
			return storeError(err, domain.ErrInvalidTournament)
		}

		if err := domain.ValidateSeeds(seeds, teamIDs); err != nil {
			return err
		}

		if err := repos.Tournaments.ReplaceSeeds(ctx, tournament.ID, seeds); err != nil {
			return storeError(err, domain.ErrInvalidTournament)
		}

		tournament.SeedTeamIDs = seeds
		updated = tournament
		return nil
	})
	if err != nil {
		return nil, finish(s.log, span, "update_seeds", err)
	}

	s.log.Info("seeds updated", zap.Int("tournament_id", tournamentID), zap.Int("user_id", userID), zap.Ints("seeds", seeds))
	return updated, nil
}
