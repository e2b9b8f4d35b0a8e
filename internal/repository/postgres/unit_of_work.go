package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/rosterhq/tournament-roster/internal/repository"
)

type unitOfWork struct {
	db      *sql.DB
	timeout time.Duration
}

// NewUnitOfWork - timeout ограничивает всю транзакцию целиком; 0 - без ограничения
func NewUnitOfWork(db *sql.DB, timeout time.Duration) *unitOfWork {
	return &unitOfWork{db: db, timeout: timeout}
}

func (u *unitOfWork) Do(ctx context.Context, fn func(ctx context.Context, repos repository.Repositories) error) error {
	if u.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, u.timeout)
		defer cancel()
	}

	tx, err := u.db.BeginTx(ctx, nil)
	if err != nil {
		return mapError(err)
	}
	defer tx.Rollback()

	repos := repository.Repositories{
		Tournaments:   NewTournamentRepositoryWithTx(tx),
		Organizations: NewOrganizationRepositoryWithTx(tx),
		Teams:         NewTeamRepositoryWithTx(tx),
		Trust:         NewTrustRepositoryWithTx(tx),
	}

	if err := fn(ctx, repos); err != nil {
		return err
	}

	return mapError(tx.Commit())
}
