//go:build integration
// +build integration

package integration

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatsIntegration(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	now := time.Now().UTC()

	orgID := createOrganization(t, db, 100)
	tournamentID := createTournament(t, db, orgID, now.Add(time.Hour))
	alpha := createTeam(t, db, tournamentID, "Alpha", "a", 10)
	createTeam(t, db, tournamentID, "Bravo", "b", 20)

	svc := newServices(db, now)

	for userID := 11; userID <= 15; userID++ {
		_, err := svc.roster.JoinViaInviteCode(ctx, tournamentID, "a", userID)
		require.NoError(t, err)
	}
	_, err := svc.checkIn.CheckIn(ctx, alpha, 10)
	require.NoError(t, err)

	stats, err := svc.stats.GetTournamentStats(ctx, tournamentID)
	require.NoError(t, err)

	assert.Equal(t, 2, stats.TeamsTotal)
	assert.Equal(t, 1, stats.TeamsCheckedIn)
	assert.Equal(t, 1, stats.FullTeams)
	assert.Equal(t, 7, stats.PlayersTotal)
	require.Len(t, stats.Teams, 2)
	assert.Equal(t, 6, stats.Teams[0].MemberCount)
}
