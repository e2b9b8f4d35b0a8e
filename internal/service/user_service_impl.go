package service

import (
	"context"

	"github.com/rosterhq/tournament-roster/internal/domain"
	"github.com/rosterhq/tournament-roster/internal/repository"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

type userService struct {
	userRepo repository.UserRepository
	log      *zap.Logger
}

func NewUserService(userRepo repository.UserRepository, log *zap.Logger) UserService {
	return &userService{userRepo: userRepo, log: log}
}

func (s *userService) ListMemberships(ctx context.Context, userID int) ([]*domain.Membership, error) {
	ctx, span := tracer.Start(ctx, "UserService.ListMemberships", trace.WithAttributes(
		attribute.Int("user.id", userID),
	))
	defer span.End()

	memberships, err := s.userRepo.ListMemberships(ctx, userID)
	if err != nil {
		return nil, finish(s.log, span, "list_memberships", err)
	}

	s.log.Debug("memberships listed", zap.Int("user_id", userID), zap.Int("count", len(memberships)))
	return memberships, nil
}
