package domain

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDomainError_Is(t *testing.T) {
	wrapped := fmt.Errorf("join: %w", ErrTeamFull)

	assert.True(t, errors.Is(wrapped, ErrTeamFull))
	assert.False(t, errors.Is(wrapped, ErrInvalidTeam))

	cause := errors.New("i/o timeout")
	transient := NewTransientError(cause)
	assert.True(t, errors.Is(transient, ErrTransient))
	assert.True(t, errors.Is(transient, cause), "причина должна быть доступна через Unwrap")
	assert.Contains(t, transient.Error(), "i/o timeout")

	var domainErr *DomainError
	require.True(t, errors.As(wrapped, &domainErr))
	assert.Equal(t, CodeTeamFull, domainErr.Code)
}

func TestTeam_Captain(t *testing.T) {
	team := &Team{
		Members: []TeamMember{
			{UserID: 2},
			{UserID: 1, IsCaptain: true},
		},
	}

	captain, ok := team.Captain()
	require.True(t, ok)
	assert.Equal(t, 1, captain.UserID)
	assert.True(t, team.IsCaptain(1))
	assert.False(t, team.IsCaptain(2))
	assert.True(t, team.HasMember(2))
	assert.False(t, team.HasMember(3))

	empty := &Team{}
	_, ok = empty.Captain()
	assert.False(t, ok)
	assert.False(t, empty.IsCaptain(0))
}

func TestTeam_IsFull(t *testing.T) {
	team := &Team{}
	for i := 1; i <= 5; i++ {
		team.Members = append(team.Members, TeamMember{UserID: i})
	}

	assert.False(t, team.IsFull(6))
	team.Members = append(team.Members, TeamMember{UserID: 6})
	assert.True(t, team.IsFull(6))
}

func TestIsAdmin(t *testing.T) {
	org := &Organization{ID: 1, OwnerID: 10, AdminIDs: []int{11}}

	assert.True(t, IsAdmin(10, org))
	assert.True(t, IsAdmin(11, org))
	assert.False(t, IsAdmin(12, org))
	assert.False(t, IsAdmin(10, nil))
}

func TestIsCheckInClosed(t *testing.T) {
	start := time.Date(2026, 5, 1, 18, 0, 0, 0, time.UTC)
	const closes = 10

	deadline := CheckInDeadline(start, closes)
	assert.Equal(t, start.Add(-8*time.Minute), deadline)

	tests := []struct {
		name   string
		now    time.Time
		closed bool
	}{
		{"задолго до старта", start.Add(-time.Hour), false},
		{"за cutoff-1 минут до старта", start.Add(-(closes - 1) * time.Minute), false},
		{"ровно на дедлайне", deadline, false},
		{"через секунду после дедлайна", deadline.Add(time.Second), true},
		{"за cutoff-3 минут до старта", start.Add(-(closes - 3) * time.Minute), true},
		{"после старта", start.Add(time.Minute), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.closed, IsCheckInClosed(start, closes, tt.now))
		})
	}
}

func TestValidateSeeds(t *testing.T) {
	teamIDs := []int{1, 2, 3}

	assert.NoError(t, ValidateSeeds([]int{3, 1, 2}, teamIDs))
	assert.NoError(t, ValidateSeeds(nil, nil))

	assert.ErrorIs(t, ValidateSeeds([]int{1, 2}, teamIDs), ErrInvalidSeedSet, "не хватает команды")
	assert.ErrorIs(t, ValidateSeeds([]int{1, 2, 2}, teamIDs), ErrInvalidSeedSet, "дубликат")
	assert.ErrorIs(t, ValidateSeeds([]int{1, 2, 4}, teamIDs), ErrInvalidSeedSet, "чужая команда")
	assert.ErrorIs(t, ValidateSeeds([]int{1, 2, 3, 4}, teamIDs), ErrInvalidSeedSet, "лишняя команда")
}

func TestSortTeamsBySeeds(t *testing.T) {
	ids := func(teams []*Team) []int {
		out := make([]int, 0, len(teams))
		for _, team := range teams {
			out = append(out, team.ID)
		}
		return out
	}

	t.Run("все команды посеяны", func(t *testing.T) {
		teams := []*Team{{ID: 1}, {ID: 2}, {ID: 3}}
		SortTeamsBySeeds(teams, []int{2, 3, 1})
		assert.Equal(t, []int{2, 3, 1}, ids(teams))
	})

	t.Run("непосеянные идут в конце по id", func(t *testing.T) {
		teams := []*Team{{ID: 5}, {ID: 1}, {ID: 4}, {ID: 2}}
		SortTeamsBySeeds(teams, []int{4, 1})
		assert.Equal(t, []int{4, 1, 2, 5}, ids(teams))
	})

	t.Run("без посева порядок не меняется", func(t *testing.T) {
		teams := []*Team{{ID: 3}, {ID: 1}}
		SortTeamsBySeeds(teams, nil)
		assert.Equal(t, []int{3, 1}, ids(teams))
	})
}
