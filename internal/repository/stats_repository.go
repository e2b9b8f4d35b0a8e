package repository

import (
	"context"

	"github.com/rosterhq/tournament-roster/internal/domain"
)

type StatsRepository interface {
	GetTeamStats(ctx context.Context, tournamentID int) ([]*domain.TeamStat, error)
}
