package domain

import (
	"cmp"
	"slices"
	"time"
)

// CheckInGraceBuffer сдвигает серверный дедлайн чек-ина относительно того,
// что показывает клиент, чтобы кнопка в UI не вела к отказу сервера.
const CheckInGraceBuffer = 2 * time.Minute

type Tournament struct {
	ID             int
	OrganizationID int
	Name           string
	NameForURL     string
	StartTime      time.Time
	SeedTeamIDs    []int
	CreatedAt      time.Time
}

type Organization struct {
	ID         int
	Name       string
	NameForURL string
	OwnerID    int
	AdminIDs   []int
}

// IsAdmin - может ли пользователь управлять турнирами организации
func IsAdmin(userID int, org *Organization) bool {
	if org == nil {
		return false
	}
	if org.OwnerID == userID {
		return true
	}
	return slices.Contains(org.AdminIDs, userID)
}

// CheckInDeadline - последний момент, когда капитан еще может зачекиниться
func CheckInDeadline(startTime time.Time, closesMinutesFromStart int) time.Time {
	cutoff := time.Duration(closesMinutesFromStart)*time.Minute - CheckInGraceBuffer
	return startTime.Add(-cutoff)
}

// IsCheckInClosed: start - (cutoff - 2 min) < now
func IsCheckInClosed(startTime time.Time, closesMinutesFromStart int, now time.Time) bool {
	return CheckInDeadline(startTime, closesMinutesFromStart).Before(now)
}

// ValidateSeeds проверяет, что seeds - перестановка id команд турнира
func ValidateSeeds(seeds []int, teamIDs []int) error {
	if len(seeds) != len(teamIDs) {
		return ErrInvalidSeedSet
	}

	remaining := make(map[int]struct{}, len(teamIDs))
	for _, id := range teamIDs {
		remaining[id] = struct{}{}
	}

	for _, id := range seeds {
		if _, ok := remaining[id]; !ok {
			// чужая команда либо повтор
			return ErrInvalidSeedSet
		}
		delete(remaining, id)
	}

	return nil
}

// SortTeamsBySeeds упорядочивает команды по позиции в посеве.
// Команды без посева идут после посеянных, по возрастанию id.
func SortTeamsBySeeds(teams []*Team, seeds []int) {
	if len(seeds) == 0 {
		return
	}

	position := make(map[int]int, len(seeds))
	for i, id := range seeds {
		position[id] = i
	}

	slices.SortStableFunc(teams, func(a, b *Team) int {
		pa, aSeeded := position[a.ID]
		pb, bSeeded := position[b.ID]
		switch {
		case aSeeded && bSeeded:
			return cmp.Compare(pa, pb)
		case aSeeded:
			return -1
		case bSeeded:
			return 1
		default:
			return cmp.Compare(a.ID, b.ID)
		}
	})
}
