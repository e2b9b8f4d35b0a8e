//go:build integration
// +build integration

package integration

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

func setupTestDB(t *testing.T) *sql.DB {
	ctx := context.Background()

	// Создаём контейнер Postgres через testcontainers
	postgresContainer, err := postgres.Run(ctx, "postgres:17.7",
		postgres.WithDatabase("test_db"),
		postgres.WithUsername("test"),
		postgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	require.NoError(t, err)

	connStr, err := postgresContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := sql.Open("pgx", connStr)
	require.NoError(t, err)
	require.NoError(t, db.Ping())

	applyMigrations(t, db)

	t.Cleanup(func() {
		db.Close()
		require.NoError(t, postgresContainer.Terminate(ctx))
	})

	return db
}

func applyMigrations(t *testing.T, db *sql.DB) {
	var migrationSQL []byte
	var err error

	paths := []string{
		filepath.Join("..", "..", "migrations", "000001_init.up.sql"),
		filepath.Join("migrations", "000001_init.up.sql"),
		filepath.Join("..", "migrations", "000001_init.up.sql"),
	}

	for _, path := range paths {
		migrationSQL, err = os.ReadFile(path)
		if err == nil {
			break
		}
	}
	require.NoError(t, err, "не удалось прочитать файл миграции. Проверьте, что файл migrations/000001_init.up.sql существует")

	_, err = db.Exec(string(migrationSQL))
	require.NoError(t, err, "не удалось применить миграцию")
}

// Команды и турниры создаются вне сервиса, поэтому тестовые данные пишем напрямую

func createOrganization(t *testing.T, db *sql.DB, ownerID int, adminIDs ...int) int {
	t.Helper()
	var id int
	err := db.QueryRow(
		`INSERT INTO organizations (name, name_for_url, owner_id) VALUES ($1, $2, $3) RETURNING id`,
		"Org", fmt.Sprintf("org-%d", ownerID), ownerID,
	).Scan(&id)
	require.NoError(t, err)

	for _, adminID := range adminIDs {
		_, err := db.Exec(`INSERT INTO organization_admins (organization_id, user_id) VALUES ($1, $2)`, id, adminID)
		require.NoError(t, err)
	}
	return id
}

func createTournament(t *testing.T, db *sql.DB, orgID int, start time.Time) int {
	t.Helper()
	var id int
	err := db.QueryRow(
		`INSERT INTO tournaments (organization_id, name, name_for_url, start_time) VALUES ($1, $2, $3, $4) RETURNING id`,
		orgID, "Spring Cup", fmt.Sprintf("spring-cup-%d", start.UnixNano()), start,
	).Scan(&id)
	require.NoError(t, err)
	return id
}

func createTeam(t *testing.T, db *sql.DB, tournamentID int, name, inviteCode string, captainID int) int {
	t.Helper()
	var id int
	err := db.QueryRow(
		`INSERT INTO teams (tournament_id, name, invite_code) VALUES ($1, $2, $3) RETURNING id`,
		tournamentID, name, inviteCode,
	).Scan(&id)
	require.NoError(t, err)

	_, err = db.Exec(
		`INSERT INTO team_members (team_id, tournament_id, user_id, is_captain) VALUES ($1, $2, $3, TRUE)`,
		id, tournamentID, captainID,
	)
	require.NoError(t, err)
	return id
}
