package repository

import (
	"context"
	"time"

	"github.com/rosterhq/tournament-roster/internal/domain"
)

type TeamRepository interface {
	// GetByIDForUpdate блокирует строку команды: все изменения состава и
	// чек-ина одной команды выполняются последовательно
	GetByIDForUpdate(ctx context.Context, id int) (*domain.Team, error)
	GetByInviteCodeForUpdate(ctx context.Context, tournamentID int, inviteCode string) (*domain.Team, error)
	ListByTournament(ctx context.Context, tournamentID int) ([]*domain.Team, error)
	ListIDsByTournament(ctx context.Context, tournamentID int) ([]int, error)
	AddMember(ctx context.Context, tournamentID, teamID, userID int, joinedAt time.Time) error
	RemoveMember(ctx context.Context, teamID, userID int) error
	SetCheckedInAt(ctx context.Context, teamID int, checkedInAt *time.Time) error
	SetInviteCode(ctx context.Context, teamID int, inviteCode string) error
}
