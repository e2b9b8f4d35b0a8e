package postgres

import (
	"context"
	"database/sql"

	"github.com/rosterhq/tournament-roster/internal/domain"
)

type tournamentRepository struct {
	executor DBExecutor
}

func NewTournamentRepository(db *sql.DB) *tournamentRepository {
	return &tournamentRepository{executor: db}
}

func NewTournamentRepositoryWithTx(tx *sql.Tx) *tournamentRepository {
	return &tournamentRepository{executor: tx}
}

func (r *tournamentRepository) GetByID(ctx context.Context, id int) (*domain.Tournament, error) {
	query := `
		SELECT id, organization_id, name, name_for_url, start_time, created_at
		FROM tournaments
		WHERE id = $1
	`
	return r.get(ctx, query, id)
}

func (r *tournamentRepository) GetByIDForUpdate(ctx context.Context, id int) (*domain.Tournament, error) {
	query := `
		SELECT id, organization_id, name, name_for_url, start_time, created_at
		FROM tournaments
		WHERE id = $1
		FOR UPDATE
	`
	return r.get(ctx, query, id)
}

func (r *tournamentRepository) get(ctx context.Context, query string, id int) (*domain.Tournament, error) {
	tournament := &domain.Tournament{}
	err := r.executor.QueryRowContext(ctx, query, id).Scan(
		&tournament.ID,
		&tournament.OrganizationID,
		&tournament.Name,
		&tournament.NameForURL,
		&tournament.StartTime,
		&tournament.CreatedAt,
	)
	if err != nil {
		return nil, mapError(err)
	}

	seeds, err := r.getSeeds(ctx, tournament.ID)
	if err != nil {
		return nil, err
	}
	tournament.SeedTeamIDs = seeds

	return tournament, nil
}

func (r *tournamentRepository) getSeeds(ctx context.Context, tournamentID int) ([]int, error) {
	query := `
		SELECT team_id
		FROM tournament_seeds
		WHERE tournament_id = $1
		ORDER BY position
	`

	rows, err := r.executor.QueryContext(ctx, query, tournamentID)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	seeds := make([]int, 0)
	for rows.Next() {
		var teamID int
		if err := rows.Scan(&teamID); err != nil {
			return nil, mapError(err)
		}
		seeds = append(seeds, teamID)
	}

	return seeds, mapError(rows.Err())
}

// ReplaceSeeds перезаписывает посев целиком; вызывать внутри транзакции
func (r *tournamentRepository) ReplaceSeeds(ctx context.Context, tournamentID int, teamIDs []int) error {
	if _, err := r.executor.ExecContext(ctx, `DELETE FROM tournament_seeds WHERE tournament_id = $1`, tournamentID); err != nil {
		return mapError(err)
	}

	query := `
		INSERT INTO tournament_seeds (tournament_id, position, team_id)
		VALUES ($1, $2, $3)
	`
	for position, teamID := range teamIDs {
		if _, err := r.executor.ExecContext(ctx, query, tournamentID, position, teamID); err != nil {
			return mapError(err)
		}
	}

	return nil
}
