package service

import (
	"context"

	"github.com/rosterhq/tournament-roster/internal/domain"
	"github.com/rosterhq/tournament-roster/internal/repository"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

type statsService struct {
	tournamentRepo repository.TournamentRepository
	statsRepo      repository.StatsRepository
	rosterCap      int
	log            *zap.Logger
}

func NewStatsService(tournamentRepo repository.TournamentRepository, statsRepo repository.StatsRepository, rosterCap int, log *zap.Logger) StatsService {
	return &statsService{
		tournamentRepo: tournamentRepo,
		statsRepo:      statsRepo,
		rosterCap:      rosterCap,
		log:            log,
	}
}

func (s *statsService) GetTournamentStats(ctx context.Context, tournamentID int) (*domain.TournamentStats, error) {
	ctx, span := tracer.Start(ctx, "StatsService.GetTournamentStats", trace.WithAttributes(
		attribute.Int("tournament.id", tournamentID),
	))
	defer span.End()

	if _, err := s.tournamentRepo.GetByID(ctx, tournamentID); err != nil {
		return nil, finish(s.log, span, "tournament_stats", storeError(err, domain.ErrInvalidTournament))
	}

	teams, err := s.statsRepo.GetTeamStats(ctx, tournamentID)
	if err != nil {
		return nil, finish(s.log, span, "tournament_stats", err)
	}

	stats := &domain.TournamentStats{
		TournamentID: tournamentID,
		TeamsTotal:   len(teams),
		Teams:        teams,
	}
	for _, team := range teams {
		stats.PlayersTotal += team.MemberCount
		if team.CheckedIn {
			stats.TeamsCheckedIn++
		}
		if team.MemberCount >= s.rosterCap {
			stats.FullTeams++
		}
	}

	span.SetAttributes(attribute.Int("teams.total", stats.TeamsTotal))
	s.log.Debug("tournament stats computed",
		zap.Int("tournament_id", tournamentID),
		zap.Int("teams_total", stats.TeamsTotal),
		zap.Int("players_total", stats.PlayersTotal),
	)
	return stats, nil
}
