package postgres

import (
	"context"
	"database/sql"

	"github.com/rosterhq/tournament-roster/internal/domain"
)

type statsRepository struct {
	executor DBExecutor
}

func NewStatsRepository(db *sql.DB) *statsRepository {
	return &statsRepository{executor: db}
}

func (r *statsRepository) GetTeamStats(ctx context.Context, tournamentID int) ([]*domain.TeamStat, error) {
	query := `
		SELECT t.id, t.name, COUNT(tm.user_id) AS member_count, t.checked_in_at IS NOT NULL AS checked_in
		FROM teams t
		LEFT JOIN team_members tm ON tm.team_id = t.id
		WHERE t.tournament_id = $1
		GROUP BY t.id, t.name, t.checked_in_at
		ORDER BY t.id
	`

	rows, err := r.executor.QueryContext(ctx, query, tournamentID)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	stats := make([]*domain.TeamStat, 0)
	for rows.Next() {
		stat := &domain.TeamStat{}
		if err := rows.Scan(&stat.TeamID, &stat.TeamName, &stat.MemberCount, &stat.CheckedIn); err != nil {
			return nil, mapError(err)
		}
		stats = append(stats, stat)
	}

	return stats, mapError(rows.Err())
}
