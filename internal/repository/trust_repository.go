package repository

import "context"

type TrustRepository interface {
	// Upsert идемпотентен: повторная вставка существующего ребра не ошибка
	Upsert(ctx context.Context, trusterID, trustedID int) error
}
