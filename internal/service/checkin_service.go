package service

import (
	"context"

	"github.com/rosterhq/tournament-roster/internal/domain"
)

type CheckInService interface {
	// CheckIn подтверждает участие команды; после этого состав заморожен
	CheckIn(ctx context.Context, teamID, userID int) (*domain.Team, error)

	// CheckOut снимает чек-ин; доступно только админам организации
	CheckOut(ctx context.Context, teamID, userID int) (*domain.Team, error)
}
