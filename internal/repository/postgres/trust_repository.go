package postgres

import (
	"context"
	"database/sql"
)

type trustRepository struct {
	executor DBExecutor
}

func NewTrustRepository(db *sql.DB) *trustRepository {
	return &trustRepository{executor: db}
}

func NewTrustRepositoryWithTx(tx *sql.Tx) *trustRepository {
	return &trustRepository{executor: tx}
}

func (r *trustRepository) Upsert(ctx context.Context, trusterID, trustedID int) error {
	query := `
		INSERT INTO trust_relationships (truster_id, trusted_id)
		VALUES ($1, $2)
		ON CONFLICT (truster_id, trusted_id) DO NOTHING
	`

	_, err := r.executor.ExecContext(ctx, query, trusterID, trustedID)
	return mapError(err)
}

// Exists - проверка ребра для чтения вне транзакций сервисов
func (r *trustRepository) Exists(ctx context.Context, trusterID, trustedID int) (bool, error) {
	query := `
		SELECT EXISTS(
			SELECT 1 FROM trust_relationships
			WHERE truster_id = $1 AND trusted_id = $2
		)
	`

	var exists bool
	if err := r.executor.QueryRowContext(ctx, query, trusterID, trustedID).Scan(&exists); err != nil {
		return false, mapError(err)
	}
	return exists, nil
}
