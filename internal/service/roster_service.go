package service

import (
	"context"

	"github.com/rosterhq/tournament-roster/internal/domain"
)

type RosterService interface {
	// JoinViaInviteCode добавляет пользователя в команду по инвайт-коду и
	// записывает доверие вступившего к капитану
	JoinViaInviteCode(ctx context.Context, tournamentID int, inviteCode string, userID int) (*domain.Team, error)

	// AddPlayer - капитан добавляет игрока напрямую
	AddPlayer(ctx context.Context, teamID, captainID, newPlayerID int) (*domain.Team, error)

	// RemovePlayer - капитан удаляет игрока; невозможно после чек-ина
	RemovePlayer(ctx context.Context, teamID, captainID, playerID int) (*domain.Team, error)

	// ResetInviteCode - капитан выпускает новый инвайт-код, старый перестает работать
	ResetInviteCode(ctx context.Context, teamID, captainID int) (*domain.Team, error)

	// ListTeams возвращает команды турнира в порядке посева
	ListTeams(ctx context.Context, tournamentID int) ([]*domain.Team, error)
}
