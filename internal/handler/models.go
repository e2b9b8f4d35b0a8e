package handler

type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type JoinRequest struct {
	InviteCode string `json:"invite_code"`
}

type AddPlayerRequest struct {
	UserID int `json:"user_id"`
}

type UpdateSeedsRequest struct {
	TeamIDs []int `json:"team_ids"`
}

type TeamMemberResponse struct {
	UserID    int    `json:"user_id"`
	IsCaptain bool   `json:"is_captain"`
	JoinedAt  string `json:"joined_at,omitempty"`
}

type TeamResponse struct {
	TeamID       int                  `json:"team_id"`
	TournamentID int                  `json:"tournament_id"`
	TeamName     string               `json:"team_name"`
	InviteCode   string               `json:"invite_code,omitempty"`
	CheckedInAt  *string              `json:"checked_in_at"`
	Members      []TeamMemberResponse `json:"members"`
}

type TeamEnvelope struct {
	Team TeamResponse `json:"team"`
}

type ListTeamsResponse struct {
	TournamentID int            `json:"tournament_id"`
	Teams        []TeamResponse `json:"teams"`
}

type SeedsResponse struct {
	TournamentID int   `json:"tournament_id"`
	TeamIDs      []int `json:"team_ids"`
}

type TeamStatResponse struct {
	TeamID      int    `json:"team_id"`
	TeamName    string `json:"team_name"`
	MemberCount int    `json:"member_count"`
	CheckedIn   bool   `json:"checked_in"`
}

type StatsResponse struct {
	TournamentID   int                `json:"tournament_id"`
	TeamsTotal     int                `json:"teams_total"`
	TeamsCheckedIn int                `json:"teams_checked_in"`
	FullTeams      int                `json:"full_teams"`
	PlayersTotal   int                `json:"players_total"`
	Teams          []TeamStatResponse `json:"teams"`
}

type MembershipResponse struct {
	TeamID       int    `json:"team_id"`
	TournamentID int    `json:"tournament_id"`
	TeamName     string `json:"team_name"`
	IsCaptain    bool   `json:"is_captain"`
	JoinedAt     string `json:"joined_at"`
}

type MembershipsResponse struct {
	UserID int                  `json:"user_id"`
	Teams  []MembershipResponse `json:"teams"`
}
