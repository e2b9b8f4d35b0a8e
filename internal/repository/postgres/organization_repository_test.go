package postgres

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/rosterhq/tournament-roster/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrganizationRepository_GetByID(t *testing.T) {
	ctx := context.Background()

	t.Run("организация с админами", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewOrganizationRepository(db)

		mock.ExpectQuery("SELECT id, name, name_for_url, owner_id\\s+FROM organizations").
			WithArgs(2).
			WillReturnRows(sqlmock.NewRows([]string{"id", "name", "name_for_url", "owner_id"}).AddRow(2, "Org", "org", 100))
		mock.ExpectQuery("SELECT user_id FROM organization_admins").
			WithArgs(2).
			WillReturnRows(sqlmock.NewRows([]string{"user_id"}).AddRow(101).AddRow(102))

		org, err := repo.GetByID(ctx, 2)

		require.NoError(t, err)
		assert.Equal(t, 100, org.OwnerID)
		assert.Equal(t, []int{101, 102}, org.AdminIDs)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("организация не найдена", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewOrganizationRepository(db)

		mock.ExpectQuery("FROM organizations").
			WithArgs(3).
			WillReturnRows(sqlmock.NewRows([]string{"id", "name", "name_for_url", "owner_id"}))

		_, err := repo.GetByID(ctx, 3)

		assert.ErrorIs(t, err, repository.ErrNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
