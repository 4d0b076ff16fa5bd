package models

// Round is one level of the fixed three-round single-elimination bracket.
type Round string

const (
	RoundQuarterfinal Round = "quarterfinal"
	RoundSemifinal    Round = "semifinal"
	RoundFinal        Round = "final"
)

// BracketRounds lists the rounds in play order.
var BracketRounds = []Round{RoundQuarterfinal, RoundSemifinal, RoundFinal}

type MatchStatus string

const (
	MatchScheduled MatchStatus = "scheduled"
	MatchLive      MatchStatus = "live"
	MatchCompleted MatchStatus = "completed"
	MatchForfeit   MatchStatus = "forfeit"
	MatchPostponed MatchStatus = "postponed"
	MatchCancelled MatchStatus = "cancelled"
)

type Side string

const (
	SideHome Side = "home"
	SideAway Side = "away"
)

func (s Side) Opposite() Side {
	if s == SideHome {
		return SideAway
	}
	return SideHome
}

// BracketSlot is one cell of the tournament tree. Slots exist before their
// feeding matches resolve, so either side (and the underlying match) may be
// unset. The backend bracket generator owns slot identity and topology; this
// tier only reads slots and requests changes to the match behind them.
type BracketSlot struct {
	ID              int    `json:"id"`
	BracketTier     string `json:"bracket_tier"`
	Round           Round  `json:"round"`
	BracketPosition int    `json:"bracket_position"`

	HomeTeamID   *int    `json:"home_team_id"`
	AwayTeamID   *int    `json:"away_team_id"`
	HomeTeamName *string `json:"home_team_name"`
	AwayTeamName *string `json:"away_team_name"`
	HomeClubID   *int    `json:"home_club_id"`
	AwayClubID   *int    `json:"away_club_id"`
	HomeSeed     *int    `json:"home_seed,omitempty"`
	AwaySeed     *int    `json:"away_seed,omitempty"`

	HomeScore *int `json:"home_score"`
	AwayScore *int `json:"away_score"`

	MatchID     *int        `json:"match_id"`
	MatchStatus MatchStatus `json:"match_status"`

	// MatchDate is the calendar date (YYYY-MM-DD); ScheduledKickoff is the
	// precise kickoff instant as a UTC RFC 3339 string, when one is set.
	MatchDate        *string `json:"match_date"`
	ScheduledKickoff *string `json:"scheduled_kickoff"`
}

func (s *BracketSlot) TeamID(side Side) *int {
	if side == SideHome {
		return s.HomeTeamID
	}
	return s.AwayTeamID
}

func (s *BracketSlot) ClubID(side Side) *int {
	if side == SideHome {
		return s.HomeClubID
	}
	return s.AwayClubID
}

func (s *BracketSlot) Score(side Side) *int {
	if side == SideHome {
		return s.HomeScore
	}
	return s.AwayScore
}

// HasBothTeams reports whether neither side is still a TBD placeholder.
func (s *BracketSlot) HasBothTeams() bool {
	return s.HomeTeamID != nil && s.AwayTeamID != nil
}

func (s *BracketSlot) HasBothScores() bool {
	return s.HomeScore != nil && s.AwayScore != nil
}
