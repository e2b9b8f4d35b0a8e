package service

import (
	"context"
	"errors"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rosterhq/tournament-roster/internal/domain"
	"github.com/rosterhq/tournament-roster/internal/repository"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

const (
	inviteCodeLength      = 12
	maxInviteCodeAttempts = 3
)

var errInviteCodeTaken = errors.New("invite code already taken")

type rosterService struct {
	uow     repository.UnitOfWork
	policy  Policy
	clock   Clock
	log     *zap.Logger
	newCode func() string
}

// NewRosterService создает новый экземпляр RosterService
func NewRosterService(uow repository.UnitOfWork, policy Policy, clock Clock, log *zap.Logger) RosterService {
	return &rosterService{
		uow:     uow,
		policy:  policy,
		clock:   clock,
		log:     log,
		newCode: newInviteCode,
	}
}

func newInviteCode() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:inviteCodeLength]
}

func (s *rosterService) JoinViaInviteCode(ctx context.Context, tournamentID int, inviteCode string, userID int) (*domain.Team, error) {
	ctx, span := tracer.Start(ctx, "RosterService.JoinViaInviteCode", trace.WithAttributes(
		attribute.Int("tournament.id", tournamentID),
		attribute.Int("user.id", userID),
	))
	defer span.End()

	var joined *domain.Team
	err := s.uow.Do(ctx, func(ctx context.Context, repos repository.Repositories) error {
		tournament, err := repos.Tournaments.GetByID(ctx, tournamentID)
		if err != nil {
			return storeError(err, domain.ErrInvalidTournament)
		}

		team, err := repos.Teams.GetByInviteCodeForUpdate(ctx, tournament.ID, inviteCode)
		if err != nil {
			return storeError(err, domain.ErrInvalidInviteCode)
		}

		// без капитана вступать не к кому: код не ведет в рабочую команду
		captain, ok := team.Captain()
		if !ok {
			return domain.ErrInvalidInviteCode
		}

		if team.IsFull(s.policy.RosterCap) {
			return domain.ErrTeamFull
		}

		now := s.clock()
		if err := s.policy.checkPhase(tournament, now); err != nil {
			return err
		}
		if err := s.policy.checkJoin(ctx, tournament, team, userID); err != nil {
			return err
		}

		if err := repos.Teams.AddMember(ctx, tournament.ID, team.ID, userID, now); err != nil {
			return memberWriteError(err)
		}

		// вступивший доверяет капитану; запись в той же транзакции
		if err := repos.Trust.Upsert(ctx, userID, captain.UserID); err != nil {
			return storeError(err, domain.ErrInvalidTeam)
		}

		team.Members = append(team.Members, domain.TeamMember{UserID: userID, JoinedAt: now})
		joined = team
		return nil
	})
	if err != nil {
		return nil, finish(s.log, span, "join", err)
	}

	s.log.Info("player joined team",
		zap.Int("tournament_id", tournamentID),
		zap.Int("team_id", joined.ID),
		zap.Int("user_id", userID),
	)
	return joined, nil
}

func (s *rosterService) AddPlayer(ctx context.Context, teamID, captainID, newPlayerID int) (*domain.Team, error) {
	ctx, span := tracer.Start(ctx, "RosterService.AddPlayer", trace.WithAttributes(
		attribute.Int("team.id", teamID),
		attribute.Int("user.id", captainID),
	))
	defer span.End()

	var updated *domain.Team
	err := s.uow.Do(ctx, func(ctx context.Context, repos repository.Repositories) error {
		team, err := repos.Teams.GetByIDForUpdate(ctx, teamID)
		if err != nil {
			return storeError(err, domain.ErrInvalidTeam)
		}

		if team.IsFull(s.policy.RosterCap) {
			return domain.ErrTeamFull
		}

		if !canManageRoster(team, captainID) {
			return domain.ErrNotCaptain
		}

		now := s.clock()
		if err := s.checkPhase(ctx, repos, team, now); err != nil {
			return err
		}

		if err := repos.Teams.AddMember(ctx, team.TournamentID, team.ID, newPlayerID, now); err != nil {
			return memberWriteError(err)
		}

		team.Members = append(team.Members, domain.TeamMember{UserID: newPlayerID, JoinedAt: now})
		updated = team
		return nil
	})
	if err != nil {
		return nil, finish(s.log, span, "add_player", err)
	}

	s.log.Info("player added to team",
		zap.Int("team_id", teamID),
		zap.Int("captain_id", captainID),
		zap.Int("user_id", newPlayerID),
	)
	return updated, nil
}

func (s *rosterService) RemovePlayer(ctx context.Context, teamID, captainID, playerID int) (*domain.Team, error) {
	ctx, span := tracer.Start(ctx, "RosterService.RemovePlayer", trace.WithAttributes(
		attribute.Int("team.id", teamID),
		attribute.Int("user.id", captainID),
	))
	defer span.End()

	if playerID == captainID {
		return nil, finish(s.log, span, "remove_player", domain.ErrCannotRemoveCaptain)
	}

	var (
		updated *domain.Team
		removed bool
	)
	err := s.uow.Do(ctx, func(ctx context.Context, repos repository.Repositories) error {
		team, err := repos.Teams.GetByIDForUpdate(ctx, teamID)
		if err != nil {
			return storeError(err, domain.ErrInvalidTeam)
		}

		if team.IsCheckedIn() {
			return domain.ErrAlreadyCheckedIn
		}

		if !canManageRoster(team, captainID) {
			return domain.ErrNotCaptain
		}

		if err := s.checkPhase(ctx, repos, team, s.clock()); err != nil {
			return err
		}

		updated = team
		// удалять некого: повторное удаление не ошибка
		if !team.HasMember(playerID) {
			return nil
		}

		if err := repos.Teams.RemoveMember(ctx, team.ID, playerID); err != nil {
			return storeError(err, domain.ErrInvalidTeam)
		}

		team.Members = slices.DeleteFunc(team.Members, func(m domain.TeamMember) bool {
			return m.UserID == playerID
		})
		removed = true
		return nil
	})
	if err != nil {
		return nil, finish(s.log, span, "remove_player", err)
	}
	if !removed {
		return updated, nil
	}

	s.log.Info("player removed from team",
		zap.Int("team_id", teamID),
		zap.Int("captain_id", captainID),
		zap.Int("user_id", playerID),
	)
	return updated, nil
}

func (s *rosterService) ResetInviteCode(ctx context.Context, teamID, captainID int) (*domain.Team, error) {
	ctx, span := tracer.Start(ctx, "RosterService.ResetInviteCode", trace.WithAttributes(
		attribute.Int("team.id", teamID),
		attribute.Int("user.id", captainID),
	))
	defer span.End()

	var (
		team *domain.Team
		err  error
	)
	// каждая попытка - отдельная транзакция: после нарушения уникальности
	// postgres не дает продолжить текущую
	for attempt := 0; attempt < maxInviteCodeAttempts; attempt++ {
		team, err = s.resetInviteCodeOnce(ctx, teamID, captainID)
		if !errors.Is(err, errInviteCodeTaken) {
			break
		}
		s.log.Debug("invite code collision, retrying", zap.Int("team_id", teamID), zap.Int("attempt", attempt+1))
	}
	if errors.Is(err, errInviteCodeTaken) {
		err = domain.NewTransientError(err)
	}
	if err != nil {
		return nil, finish(s.log, span, "reset_invite_code", err)
	}

	s.log.Info("invite code reset", zap.Int("team_id", teamID), zap.Int("captain_id", captainID))
	return team, nil
}

func (s *rosterService) resetInviteCodeOnce(ctx context.Context, teamID, captainID int) (*domain.Team, error) {
	var updated *domain.Team
	err := s.uow.Do(ctx, func(ctx context.Context, repos repository.Repositories) error {
		team, err := repos.Teams.GetByIDForUpdate(ctx, teamID)
		if err != nil {
			return storeError(err, domain.ErrInvalidTeam)
		}

		if !canManageRoster(team, captainID) {
			return domain.ErrNotCaptain
		}

		code := s.newCode()
		if err := repos.Teams.SetInviteCode(ctx, team.ID, code); err != nil {
			if errors.Is(err, repository.ErrConflict) {
				return errInviteCodeTaken
			}
			return storeError(err, domain.ErrInvalidTeam)
		}

		team.InviteCode = code
		updated = team
		return nil
	})
	return updated, err
}

func (s *rosterService) ListTeams(ctx context.Context, tournamentID int) ([]*domain.Team, error) {
	ctx, span := tracer.Start(ctx, "RosterService.ListTeams", trace.WithAttributes(
		attribute.Int("tournament.id", tournamentID),
	))
	defer span.End()

	var teams []*domain.Team
	err := s.uow.Do(ctx, func(ctx context.Context, repos repository.Repositories) error {
		tournament, err := repos.Tournaments.GetByID(ctx, tournamentID)
		if err != nil {
			return storeError(err, domain.ErrInvalidTournament)
		}

		teams, err = repos.Teams.ListByTournament(ctx, tournament.ID)
		if err != nil {
			return storeError(err, domain.ErrInvalidTournament)
		}

		domain.SortTeamsBySeeds(teams, tournament.SeedTeamIDs)
		return nil
	})
	if err != nil {
		return nil, finish(s.log, span, "list_teams", err)
	}

	return teams, nil
}

// checkPhase загружает турнир только если задан PhaseGuard
func (s *rosterService) checkPhase(ctx context.Context, repos repository.Repositories, team *domain.Team, now time.Time) error {
	if s.policy.PhaseGuard == nil {
		return nil
	}

	tournament, err := repos.Tournaments.GetByID(ctx, team.TournamentID)
	if err != nil {
		return storeError(err, domain.ErrInvalidTournament)
	}
	return s.policy.checkPhase(tournament, now)
}
