package models

// MatchSummary is one row of the match list view.
type MatchSummary struct {
	ID               int         `json:"id"`
	HomeTeamID       int         `json:"home_team_id"`
	AwayTeamID       int         `json:"away_team_id"`
	HomeTeamName     string      `json:"home_team_name"`
	AwayTeamName     string      `json:"away_team_name"`
	HomeScore        *int        `json:"home_score"`
	AwayScore        *int        `json:"away_score"`
	Status           MatchStatus `json:"status"`
	MatchDate        *string     `json:"match_date"`
	ScheduledKickoff *string     `json:"scheduled_kickoff"`
}

func (m *MatchSummary) IsLive() bool {
	return m.Status == MatchLive
}
