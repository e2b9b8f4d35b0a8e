package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepository_ListMemberships(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewUserRepository(db)
	now := time.Now()

	mock.ExpectQuery("FROM team_members tm\\s+INNER JOIN teams t").
		WithArgs(42).
		WillReturnRows(sqlmock.NewRows([]string{"id", "tournament_id", "name", "is_captain", "joined_at"}).
			AddRow(3, 2, "Charlie", true, now).
			AddRow(1, 1, "Alpha", false, now.Add(-time.Hour)))

	memberships, err := repo.ListMemberships(context.Background(), 42)

	require.NoError(t, err)
	require.Len(t, memberships, 2)
	assert.Equal(t, 3, memberships[0].TeamID)
	assert.True(t, memberships[0].IsCaptain)
	assert.Equal(t, 1, memberships[1].TournamentID)
	assert.NoError(t, mock.ExpectationsWereMet())
}
