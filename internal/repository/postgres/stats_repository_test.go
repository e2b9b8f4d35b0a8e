package postgres

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatsRepository_GetTeamStats(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewStatsRepository(db)

	mock.ExpectQuery("FROM teams t\\s+LEFT JOIN team_members tm").
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "member_count", "checked_in"}).
			AddRow(1, "Alpha", 6, true).
			AddRow(2, "Bravo", 1, false))

	stats, err := repo.GetTeamStats(context.Background(), 1)

	require.NoError(t, err)
	require.Len(t, stats, 2)
	assert.Equal(t, 6, stats[0].MemberCount)
	assert.True(t, stats[0].CheckedIn)
	assert.Equal(t, "Bravo", stats[1].TeamName)
	assert.NoError(t, mock.ExpectationsWereMet())
}
