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
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestStatsService_GetTournamentStats(t *testing.T) {
	ctx := context.Background()

	t.Run("сводка по турниру", func(t *testing.T) {
		tournaments := new(MockTournamentRepository)
		stats := new(MockStatsRepository)
		service := NewStatsService(tournaments, stats, 6, zap.NewNop())

		tournaments.On("GetByID", mock.Anything, 1).Return(newTournament(fixedNow), nil).Once()
		stats.On("GetTeamStats", mock.Anything, 1).Return([]*domain.TeamStat{
			{TeamID: 1, TeamName: "Alpha", MemberCount: 6, CheckedIn: true},
			{TeamID: 2, TeamName: "Bravo", MemberCount: 3, CheckedIn: true},
			{TeamID: 3, TeamName: "Charlie", MemberCount: 1},
		}, nil).Once()

		result, err := service.GetTournamentStats(ctx, 1)

		require.NoError(t, err)
		assert.Equal(t, 3, result.TeamsTotal)
		assert.Equal(t, 2, result.TeamsCheckedIn)
		assert.Equal(t, 1, result.FullTeams)
		assert.Equal(t, 10, result.PlayersTotal)
		tournaments.AssertExpectations(t)
		stats.AssertExpectations(t)
	})

	t.Run("ошибка: турнир не найден", func(t *testing.T) {
		tournaments := new(MockTournamentRepository)
		stats := new(MockStatsRepository)
		service := NewStatsService(tournaments, stats, 6, zap.NewNop())

		tournaments.On("GetByID", mock.Anything, 9).Return(nil, repository.ErrNotFound).Once()

		_, err := service.GetTournamentStats(ctx, 9)

		assert.ErrorIs(t, err, domain.ErrInvalidTournament)
		stats.AssertNotCalled(t, "GetTeamStats", mock.Anything, mock.Anything)
	})

	t.Run("сбой хранилища пишется в warn", func(t *testing.T) {
		tournaments := new(MockTournamentRepository)
		stats := new(MockStatsRepository)
		core, logs := observer.New(zapcore.DebugLevel)
		service := NewStatsService(tournaments, stats, 6, zap.New(core))

		tournaments.On("GetByID", mock.Anything, 1).Return(newTournament(fixedNow), nil).Once()
		stats.On("GetTeamStats", mock.Anything, 1).Return(nil, repository.ErrUnavailable).Once()

		_, err := service.GetTournamentStats(ctx, 1)

		assert.ErrorIs(t, err, domain.ErrTransient)
		entries := logs.FilterLevelExact(zapcore.WarnLevel).All()
		require.Len(t, entries, 1)
		assert.Equal(t, "tournament_stats", entries[0].ContextMap()["op"])
	})
}
