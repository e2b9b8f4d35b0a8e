package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/rosterhq/tournament-roster/internal/domain"
	"github.com/rosterhq/tournament-roster/internal/repository"
)

const teamColumns = `id, tournament_id, name, invite_code, checked_in_at, created_at`

type teamRepository struct {
	executor DBExecutor
}

func NewTeamRepository(db *sql.DB) *teamRepository {
	return &teamRepository{executor: db}
}

func NewTeamRepositoryWithTx(tx *sql.Tx) *teamRepository {
	return &teamRepository{executor: tx}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTeam(row rowScanner) (*domain.Team, error) {
	team := &domain.Team{}
	var checkedInAt sql.NullTime
	err := row.Scan(
		&team.ID,
		&team.TournamentID,
		&team.Name,
		&team.InviteCode,
		&checkedInAt,
		&team.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if checkedInAt.Valid {
		team.CheckedInAt = &checkedInAt.Time
	} else {
		team.CheckedInAt = nil
	}

	return team, nil
}

func (r *teamRepository) getOne(ctx context.Context, query string, args ...any) (*domain.Team, error) {
	team, err := scanTeam(r.executor.QueryRowContext(ctx, query, args...))
	if err != nil {
		return nil, mapError(err)
	}

	members, err := r.getMembers(ctx, team.ID)
	if err != nil {
		return nil, err
	}
	team.Members = members

	return team, nil
}

// GetByID читает команду без блокировки; сервисы работают через GetByIDForUpdate
func (r *teamRepository) GetByID(ctx context.Context, id int) (*domain.Team, error) {
	query := `SELECT ` + teamColumns + ` FROM teams WHERE id = $1`
	return r.getOne(ctx, query, id)
}

func (r *teamRepository) GetByIDForUpdate(ctx context.Context, id int) (*domain.Team, error) {
	query := `SELECT ` + teamColumns + ` FROM teams WHERE id = $1 FOR UPDATE`
	return r.getOne(ctx, query, id)
}

func (r *teamRepository) GetByInviteCodeForUpdate(ctx context.Context, tournamentID int, inviteCode string) (*domain.Team, error) {
	query := `
		SELECT ` + teamColumns + `
		FROM teams
		WHERE tournament_id = $1 AND invite_code = $2
		FOR UPDATE
	`
	return r.getOne(ctx, query, tournamentID, inviteCode)
}

func (r *teamRepository) getMembers(ctx context.Context, teamID int) ([]domain.TeamMember, error) {
	query := `
		SELECT user_id, is_captain, joined_at
		FROM team_members
		WHERE team_id = $1
		ORDER BY joined_at, user_id
	`

	rows, err := r.executor.QueryContext(ctx, query, teamID)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	members := make([]domain.TeamMember, 0)
	for rows.Next() {
		var m domain.TeamMember
		if err := rows.Scan(&m.UserID, &m.IsCaptain, &m.JoinedAt); err != nil {
			return nil, mapError(err)
		}
		members = append(members, m)
	}

	return members, mapError(rows.Err())
}

func (r *teamRepository) ListByTournament(ctx context.Context, tournamentID int) ([]*domain.Team, error) {
	query := `SELECT ` + teamColumns + ` FROM teams WHERE tournament_id = $1 ORDER BY id`

	rows, err := r.executor.QueryContext(ctx, query, tournamentID)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	teams := make([]*domain.Team, 0)
	byID := make(map[int]*domain.Team)
	for rows.Next() {
		team, err := scanTeam(rows)
		if err != nil {
			return nil, mapError(err)
		}
		team.Members = make([]domain.TeamMember, 0)
		teams = append(teams, team)
		byID[team.ID] = team
	}
	if err := rows.Err(); err != nil {
		return nil, mapError(err)
	}
	rows.Close()

	memberQuery := `
		SELECT team_id, user_id, is_captain, joined_at
		FROM team_members
		WHERE tournament_id = $1
		ORDER BY joined_at, user_id
	`

	memberRows, err := r.executor.QueryContext(ctx, memberQuery, tournamentID)
	if err != nil {
		return nil, mapError(err)
	}
	defer memberRows.Close()

	for memberRows.Next() {
		var teamID int
		var m domain.TeamMember
		if err := memberRows.Scan(&teamID, &m.UserID, &m.IsCaptain, &m.JoinedAt); err != nil {
			return nil, mapError(err)
		}
		if team, ok := byID[teamID]; ok {
			team.Members = append(team.Members, m)
		}
	}

	return teams, mapError(memberRows.Err())
}

func (r *teamRepository) ListIDsByTournament(ctx context.Context, tournamentID int) ([]int, error) {
	rows, err := r.executor.QueryContext(ctx, `SELECT id FROM teams WHERE tournament_id = $1 ORDER BY id`, tournamentID)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	ids := make([]int, 0)
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			return nil, mapError(err)
		}
		ids = append(ids, id)
	}

	return ids, mapError(rows.Err())
}

func (r *teamRepository) AddMember(ctx context.Context, tournamentID, teamID, userID int, joinedAt time.Time) error {
	query := `
		INSERT INTO team_members (team_id, tournament_id, user_id, is_captain, joined_at)
		VALUES ($1, $2, $3, FALSE, $4)
	`

	_, err := r.executor.ExecContext(ctx, query, teamID, tournamentID, userID, joinedAt)
	return mapError(err)
}

// RemoveMember не трогает капитана: удаление капитана этим путем невозможно
func (r *teamRepository) RemoveMember(ctx context.Context, teamID, userID int) error {
	query := `
		DELETE FROM team_members
		WHERE team_id = $1 AND user_id = $2 AND NOT is_captain
	`

	result, err := r.executor.ExecContext(ctx, query, teamID, userID)
	if err != nil {
		return mapError(err)
	}

	return checkRowsAffected(result)
}

func (r *teamRepository) SetCheckedInAt(ctx context.Context, teamID int, checkedInAt *time.Time) error {
	var value sql.NullTime
	if checkedInAt != nil {
		value = sql.NullTime{Time: *checkedInAt, Valid: true}
	}

	result, err := r.executor.ExecContext(ctx, `UPDATE teams SET checked_in_at = $2 WHERE id = $1`, teamID, value)
	if err != nil {
		return mapError(err)
	}

	return checkRowsAffected(result)
}

func (r *teamRepository) SetInviteCode(ctx context.Context, teamID int, inviteCode string) error {
	result, err := r.executor.ExecContext(ctx, `UPDATE teams SET invite_code = $2 WHERE id = $1`, teamID, inviteCode)
	if err != nil {
		return mapError(err)
	}

	return checkRowsAffected(result)
}

func checkRowsAffected(result sql.Result) error {
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check affected rows: %w", err)
	}
	if rowsAffected == 0 {
		return repository.ErrNotFound
	}
	return nil
}
