package service

import (
	"context"

	"github.com/rosterhq/tournament-roster/internal/domain"
)

type SeedingService interface {
	// UpdateSeeds заменяет посев турнира; seeds - перестановка id всех его команд
	UpdateSeeds(ctx context.Context, tournamentID, userID int, seeds []int) (*domain.Tournament, error)
}
