package domain

import "time"

// DefaultRosterCap - максимальный размер состава по умолчанию
const DefaultRosterCap = 6

type Team struct {
	ID           int
	TournamentID int
	Name         string
	InviteCode   string
	CheckedInAt  *time.Time
	Members      []TeamMember
	CreatedAt    time.Time
}

type TeamMember struct {
	UserID    int
	IsCaptain bool
	JoinedAt  time.Time
}

// Captain возвращает капитана команды; ok=false для пустой команды
func (t *Team) Captain() (TeamMember, bool) {
	for _, m := range t.Members {
		if m.IsCaptain {
			return m, true
		}
	}
	return TeamMember{}, false
}

func (t *Team) IsCaptain(userID int) bool {
	captain, ok := t.Captain()
	return ok && captain.UserID == userID
}

func (t *Team) HasMember(userID int) bool {
	for _, m := range t.Members {
		if m.UserID == userID {
			return true
		}
	}
	return false
}

func (t *Team) IsFull(rosterCap int) bool {
	return len(t.Members) >= rosterCap
}

func (t *Team) IsCheckedIn() bool {
	return t.CheckedInAt != nil
}
