package domain

import "time"

// Membership - участие пользователя в команде какого-либо турнира
type Membership struct {
	TeamID       int
	TournamentID int
	TeamName     string
	IsCaptain    bool
	JoinedAt     time.Time
}
