package postgres

import (
	"context"
	"database/sql"

	"github.com/rosterhq/tournament-roster/internal/domain"
)

type userRepository struct {
	executor DBExecutor
}

func NewUserRepository(db *sql.DB) *userRepository {
	return &userRepository{executor: db}
}

func (r *userRepository) ListMemberships(ctx context.Context, userID int) ([]*domain.Membership, error) {
	query := `
		SELECT t.id, t.tournament_id, t.name, tm.is_captain, tm.joined_at
		FROM team_members tm
		INNER JOIN teams t ON t.id = tm.team_id
		WHERE tm.user_id = $1
		ORDER BY tm.joined_at DESC, t.id
	`

	rows, err := r.executor.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	memberships := make([]*domain.Membership, 0)
	for rows.Next() {
		m := &domain.Membership{}
		if err := rows.Scan(&m.TeamID, &m.TournamentID, &m.TeamName, &m.IsCaptain, &m.JoinedAt); err != nil {
			return nil, mapError(err)
		}
		memberships = append(memberships, m)
	}

	return memberships, mapError(rows.Err())
}
