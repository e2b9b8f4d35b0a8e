package service

import (
	"context"

	"github.com/rosterhq/tournament-roster/internal/domain"
)

type UserService interface {
	// ListMemberships получает все команды пользователя во всех турнирах
	ListMemberships(ctx context.Context, userID int) ([]*domain.Membership, error)
}
