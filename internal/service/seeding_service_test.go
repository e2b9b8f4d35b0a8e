package service

import (
	"context"
	"testing"

	"github.com/rosterhq/tournament-roster/internal/domain"
	"github.com/rosterhq/tournament-roster/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestSeedingService_UpdateSeeds(t *testing.T) {
	ctx := context.Background()

	t.Run("админ задает посев", func(t *testing.T) {
		f := newFixture()
		service := NewSeedingService(f.uow, zap.NewNop())

		f.tournaments.On("GetByIDForUpdate", mock.Anything, 1).Return(newTournament(fixedNow), nil).Once()
		f.orgs.On("GetByID", mock.Anything, 2).Return(newOrganization(), nil).Once()
		f.teams.On("ListIDsByTournament", mock.Anything, 1).Return([]int{1, 2, 3}, nil).Once()
		f.tournaments.On("ReplaceSeeds", mock.Anything, 1, []int{3, 1, 2}).Return(nil).Once()

		tournament, err := service.UpdateSeeds(ctx, 1, 101, []int{3, 1, 2})

		require.NoError(t, err)
		assert.Equal(t, []int{3, 1, 2}, tournament.SeedTeamIDs)
		f.assertExpectations(t)
	})

	t.Run("ошибка: посев без одной из команд", func(t *testing.T) {
		f := newFixture()
		service := NewSeedingService(f.uow, zap.NewNop())

		f.tournaments.On("GetByIDForUpdate", mock.Anything, 1).Return(newTournament(fixedNow), nil).Once()
		f.orgs.On("GetByID", mock.Anything, 2).Return(newOrganization(), nil).Once()
		f.teams.On("ListIDsByTournament", mock.Anything, 1).Return([]int{1, 2, 3}, nil).Once()

		_, err := service.UpdateSeeds(ctx, 1, 100, []int{3, 1})

		assert.ErrorIs(t, err, domain.ErrInvalidSeedSet)
		f.tournaments.AssertNotCalled(t, "ReplaceSeeds", mock.Anything, mock.Anything, mock.Anything)
		f.assertExpectations(t)
	})

	t.Run("ошибка: не админ", func(t *testing.T) {
		f := newFixture()
		service := NewSeedingService(f.uow, zap.NewNop())

		f.tournaments.On("GetByIDForUpdate", mock.Anything, 1).Return(newTournament(fixedNow), nil).Once()
		f.orgs.On("GetByID", mock.Anything, 2).Return(newOrganization(), nil).Once()

		_, err := service.UpdateSeeds(ctx, 1, 10, []int{1, 2, 3})

		assert.ErrorIs(t, err, domain.ErrNotAdmin)
		f.teams.AssertNotCalled(t, "ListIDsByTournament", mock.Anything, mock.Anything)
		f.assertExpectations(t)
	})

	t.Run("ошибка: турнир не найден", func(t *testing.T) {
		f := newFixture()
		service := NewSeedingService(f.uow, zap.NewNop())

		f.tournaments.On("GetByIDForUpdate", mock.Anything, 9).Return(nil, repository.ErrNotFound).Once()

		_, err := service.UpdateSeeds(ctx, 9, 100, []int{1})

		assert.ErrorIs(t, err, domain.ErrInvalidTournament)
		f.assertExpectations(t)
	})
}
