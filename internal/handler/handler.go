package handler

import (
	"context"

	"github.com/rosterhq/tournament-roster/internal/service"
	"go.uber.org/zap"
)

// HealthChecker - хранилище, доступность которого проверяет /healthz
type HealthChecker interface {
	PingContext(ctx context.Context) error
}

type Handler struct {
	rosterService  service.RosterService
	checkInService service.CheckInService
	seedingService service.SeedingService
	statsService   service.StatsService
	userService    service.UserService
	health         HealthChecker
	log            *zap.Logger
}

func NewHandler(
	rosterService service.RosterService,
	checkInService service.CheckInService,
	seedingService service.SeedingService,
	statsService service.StatsService,
	userService service.UserService,
	health HealthChecker,
	log *zap.Logger,
) *Handler {
	return &Handler{
		rosterService:  rosterService,
		checkInService: checkInService,
		seedingService: seedingService,
		statsService:   statsService,
		userService:    userService,
		health:         health,
		log:            log,
	}
}
