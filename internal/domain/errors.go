package domain

import "fmt"

const (
	CodeInvalidTournament   = "INVALID_TOURNAMENT"
	CodeInvalidTeam         = "INVALID_TEAM"
	CodeInvalidInviteCode   = "INVALID_INVITE_CODE"
	CodeTeamFull            = "TEAM_FULL"
	CodeNotCaptain          = "NOT_CAPTAIN"
	CodeNotAdmin            = "NOT_ADMIN"
	CodeCannotRemoveCaptain = "CANNOT_REMOVE_CAPTAIN"
	CodeAlreadyCheckedIn    = "ALREADY_CHECKED_IN"
	CodeCheckInClosed       = "CHECK_IN_CLOSED"
	CodeInvalidSeedSet      = "INVALID_SEED_SET"
	CodeAlreadyOnTeam       = "ALREADY_ON_TEAM"
	CodeTransient           = "TRANSIENT"
	CodeBadRequest          = "BAD_REQUEST"
	CodeUnauthenticated     = "UNAUTHENTICATED"
)

type DomainError struct {
	Code    string
	Message string
	Err     error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Это позволяет использовать errors.Is()
func (e *DomainError) Is(target error) bool {
	if t, ok := target.(*DomainError); ok {
		return e.Code == t.Code
	}
	return false
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

var (
	// ErrInvalidTournament - турнир не найден
	ErrInvalidTournament = &DomainError{
		Code:    CodeInvalidTournament,
		Message: "invalid tournament",
	}

	// ErrInvalidTeam - команда не найдена
	ErrInvalidTeam = &DomainError{
		Code:    CodeInvalidTeam,
		Message: "invalid team",
	}

	// ErrInvalidInviteCode - ни у одной команды турнира нет такого кода
	ErrInvalidInviteCode = &DomainError{
		Code:    CodeInvalidInviteCode,
		Message: "invalid invite code",
	}

	ErrTeamFull = &DomainError{
		Code:    CodeTeamFull,
		Message: "team is full",
	}

	ErrNotCaptain = &DomainError{
		Code:    CodeNotCaptain,
		Message: "only the team captain can perform this action",
	}

	ErrNotAdmin = &DomainError{
		Code:    CodeNotAdmin,
		Message: "only a tournament organizer admin can perform this action",
	}

	ErrCannotRemoveCaptain = &DomainError{
		Code:    CodeCannotRemoveCaptain,
		Message: "captain cannot remove themselves from the team",
	}

	// ErrAlreadyCheckedIn - состав заморожен после чек-ина
	ErrAlreadyCheckedIn = &DomainError{
		Code:    CodeAlreadyCheckedIn,
		Message: "cannot change roster after the team has checked in",
	}

	ErrCheckInClosed = &DomainError{
		Code:    CodeCheckInClosed,
		Message: "check-in time has passed",
	}

	ErrInvalidSeedSet = &DomainError{
		Code:    CodeInvalidSeedSet,
		Message: "seeds must list every team of the tournament exactly once",
	}

	// ErrAlreadyOnTeam - пользователь уже состоит в этой команде
	ErrAlreadyOnTeam = &DomainError{
		Code:    CodeAlreadyOnTeam,
		Message: "user is already a member of this team",
	}

	ErrUnauthenticated = &DomainError{
		Code:    CodeUnauthenticated,
		Message: "authentication required",
	}

	ErrTransient = &DomainError{
		Code:    CodeTransient,
		Message: "temporarily unavailable, retry later",
	}
)

// NewTransientError оборачивает таймаут хранилища в повторяемую ошибку
func NewTransientError(err error) *DomainError {
	return &DomainError{
		Code:    CodeTransient,
		Message: ErrTransient.Message,
		Err:     err,
	}
}

// NewBadRequestError создает ошибку BAD_REQUEST с описанием
func NewBadRequestError(message string) *DomainError {
	return &DomainError{
		Code:    CodeBadRequest,
		Message: message,
	}
}
