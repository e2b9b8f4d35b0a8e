package postgres

import (
	"context"
	"database/sql"

	"github.com/rosterhq/tournament-roster/internal/domain"
)

type organizationRepository struct {
	executor DBExecutor
}

func NewOrganizationRepository(db *sql.DB) *organizationRepository {
	return &organizationRepository{executor: db}
}

func NewOrganizationRepositoryWithTx(tx *sql.Tx) *organizationRepository {
	return &organizationRepository{executor: tx}
}

func (r *organizationRepository) GetByID(ctx context.Context, id int) (*domain.Organization, error) {
	query := `
		SELECT id, name, name_for_url, owner_id
		FROM organizations
		WHERE id = $1
	`

	org := &domain.Organization{}
	err := r.executor.QueryRowContext(ctx, query, id).Scan(&org.ID, &org.Name, &org.NameForURL, &org.OwnerID)
	if err != nil {
		return nil, mapError(err)
	}

	rows, err := r.executor.QueryContext(ctx,
		`SELECT user_id FROM organization_admins WHERE organization_id = $1 ORDER BY user_id`, id)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	org.AdminIDs = make([]int, 0)
	for rows.Next() {
		var userID int
		if err := rows.Scan(&userID); err != nil {
			return nil, mapError(err)
		}
		org.AdminIDs = append(org.AdminIDs, userID)
	}

	return org, mapError(rows.Err())
}
