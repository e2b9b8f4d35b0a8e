package service

import (
	"context"

	"github.com/rosterhq/tournament-roster/internal/domain"
)

type StatsService interface {
	GetTournamentStats(ctx context.Context, tournamentID int) (*domain.TournamentStats, error)
}
