package handler

import (
	"time"

	"github.com/rosterhq/tournament-roster/internal/domain"
)

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}

// domainTeamToHTTP: инвайт-код отдается только капитану
func domainTeamToHTTP(team *domain.Team, withInviteCode bool) TeamResponse {
	members := make([]TeamMemberResponse, 0, len(team.Members))
	for _, member := range team.Members {
		members = append(members, TeamMemberResponse{
			UserID:    member.UserID,
			IsCaptain: member.IsCaptain,
			JoinedAt:  formatTime(member.JoinedAt),
		})
	}

	var checkedInAt *string
	if team.CheckedInAt != nil {
		checkedInAtStr := formatTime(*team.CheckedInAt)
		checkedInAt = &checkedInAtStr
	}

	resp := TeamResponse{
		TeamID:       team.ID,
		TournamentID: team.TournamentID,
		TeamName:     team.Name,
		CheckedInAt:  checkedInAt,
		Members:      members,
	}
	if withInviteCode {
		resp.InviteCode = team.InviteCode
	}
	return resp
}

func domainTeamsToHTTP(teams []*domain.Team) []TeamResponse {
	result := make([]TeamResponse, 0, len(teams))
	for _, team := range teams {
		result = append(result, domainTeamToHTTP(team, false))
	}
	return result
}

func domainStatsToHTTP(stats *domain.TournamentStats) StatsResponse {
	teams := make([]TeamStatResponse, 0, len(stats.Teams))
	for _, team := range stats.Teams {
		teams = append(teams, TeamStatResponse{
			TeamID:      team.TeamID,
			TeamName:    team.TeamName,
			MemberCount: team.MemberCount,
			CheckedIn:   team.CheckedIn,
		})
	}

	return StatsResponse{
		TournamentID:   stats.TournamentID,
		TeamsTotal:     stats.TeamsTotal,
		TeamsCheckedIn: stats.TeamsCheckedIn,
		FullTeams:      stats.FullTeams,
		PlayersTotal:   stats.PlayersTotal,
		Teams:          teams,
	}
}

func domainMembershipsToHTTP(memberships []*domain.Membership) []MembershipResponse {
	result := make([]MembershipResponse, 0, len(memberships))
	for _, m := range memberships {
		result = append(result, MembershipResponse{
			TeamID:       m.TeamID,
			TournamentID: m.TournamentID,
			TeamName:     m.TeamName,
			IsCaptain:    m.IsCaptain,
			JoinedAt:     formatTime(m.JoinedAt),
		})
	}
	return result
}
