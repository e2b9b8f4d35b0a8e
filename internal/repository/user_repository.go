package repository

import (
	"context"

	"github.com/rosterhq/tournament-roster/internal/domain"
)

type UserRepository interface {
	// ListMemberships возвращает все команды пользователя, новые первыми
	ListMemberships(ctx context.Context, userID int) ([]*domain.Membership, error)
}
