package domain

// TeamStat - сводка по одной команде турнира
type TeamStat struct {
	TeamID      int
	TeamName    string
	MemberCount int
	CheckedIn   bool
}

type TournamentStats struct {
	TournamentID   int
	TeamsTotal     int
	TeamsCheckedIn int
	FullTeams      int
	PlayersTotal   int
	Teams          []*TeamStat
}
