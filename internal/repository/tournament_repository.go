package repository

import (
	"context"

	"github.com/rosterhq/tournament-roster/internal/domain"
)

type TournamentRepository interface {
	// GetByID загружает турнир вместе с посевом
	GetByID(ctx context.Context, id int) (*domain.Tournament, error)
	// GetByIDForUpdate то же, но блокирует строку турнира до конца транзакции
	GetByIDForUpdate(ctx context.Context, id int) (*domain.Tournament, error)
	ReplaceSeeds(ctx context.Context, tournamentID int, teamIDs []int) error
}
