package repository

import (
	"context"

	"github.com/rosterhq/tournament-roster/internal/domain"
)

type OrganizationRepository interface {
	GetByID(ctx context.Context, id int) (*domain.Organization, error)
}
