package repository

import "context"

// Repositories - набор репозиториев, привязанных к одной транзакции
type Repositories struct {
	Tournaments   TournamentRepository
	Organizations OrganizationRepository
	Teams         TeamRepository
	Trust         TrustRepository
}

// UnitOfWork выполняет fn в одной транзакции: коммит, только если fn вернула nil
type UnitOfWork interface {
	Do(ctx context.Context, fn func(ctx context.Context, repos Repositories) error) error
}
