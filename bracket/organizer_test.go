package bracket

import (
	"testing"

	"github.com/pitchside/league-web/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ip(v int) *int { return &v }

func slot(id int, tier string, round models.Round, pos int) models.BracketSlot {
	return models.BracketSlot{
		ID:              id,
		BracketTier:     tier,
		Round:           round,
		BracketPosition: pos,
		MatchStatus:     models.MatchScheduled,
	}
}

func TestTiersSortedAndDistinct(t *testing.T) {
	slots := []models.BracketSlot{
		slot(1, "U12 Gold", models.RoundQuarterfinal, 1),
		slot(2, "U10 Silver", models.RoundQuarterfinal, 1),
		slot(3, "U12 Gold", models.RoundSemifinal, 1),
		slot(4, "U10 Silver", models.RoundFinal, 1),
	}

	assert.Equal(t, []string{"U10 Silver", "U12 Gold"}, Tiers(slots))
}

func TestSlotsInRoundOrderIndependentOfInput(t *testing.T) {
	a := slot(1, "U12", models.RoundQuarterfinal, 3)
	b := slot(2, "U12", models.RoundQuarterfinal, 1)
	c := slot(3, "U12", models.RoundQuarterfinal, 2)
	other := slot(4, "U10", models.RoundQuarterfinal, 1)
	semi := slot(5, "U12", models.RoundSemifinal, 1)

	got := SlotsInRound([]models.BracketSlot{a, b, c, other, semi}, "U12", models.RoundQuarterfinal)
	require.Len(t, got, 3)
	assert.Equal(t, []int{2, 3, 1}, []int{got[0].ID, got[1].ID, got[2].ID})

	// Same set in a different fetch order yields the same display order.
	got = SlotsInRound([]models.BracketSlot{semi, c, other, a, b}, "U12", models.RoundQuarterfinal)
	require.Len(t, got, 3)
	assert.Equal(t, []int{2, 3, 1}, []int{got[0].ID, got[1].ID, got[2].ID})
}

// Two slots sharing a bracket_position have no documented relative order.
// The sort is stable, so the boundary behavior is: fetch order is preserved.
func TestSlotsInRoundEqualPositionsKeepFetchOrder(t *testing.T) {
	a := slot(10, "U12", models.RoundQuarterfinal, 1)
	b := slot(11, "U12", models.RoundQuarterfinal, 1)

	got := SlotsInRound([]models.BracketSlot{a, b}, "U12", models.RoundQuarterfinal)
	require.Len(t, got, 2)
	assert.Equal(t, 10, got[0].ID)
	assert.Equal(t, 11, got[1].ID)
}

func TestIsWinner(t *testing.T) {
	cases := []struct {
		name       string
		status     models.MatchStatus
		home, away *int
		wantHome   bool
		wantAway   bool
	}{
		{"completed home win", models.MatchCompleted, ip(2), ip(1), true, false},
		{"completed away win", models.MatchCompleted, ip(0), ip(4), false, true},
		{"forfeit counts as finished", models.MatchForfeit, ip(0), ip(3), false, true},
		{"completed tie has no winner", models.MatchCompleted, ip(1), ip(1), false, false},
		{"forfeit tie has no winner", models.MatchForfeit, ip(2), ip(2), false, false},
		{"scheduled never has a winner", models.MatchScheduled, ip(2), ip(1), false, false},
		{"live never has a winner", models.MatchLive, ip(2), ip(1), false, false},
		{"postponed never has a winner", models.MatchPostponed, ip(2), ip(1), false, false},
		{"missing home score", models.MatchCompleted, nil, ip(1), false, false},
		{"missing away score", models.MatchCompleted, ip(2), nil, false, false},
		{"missing both scores", models.MatchCompleted, nil, nil, false, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := slot(1, "U12", models.RoundQuarterfinal, 1)
			s.MatchStatus = tc.status
			s.HomeScore = tc.home
			s.AwayScore = tc.away

			assert.Equal(t, tc.wantHome, IsWinner(&s, models.SideHome), "home")
			assert.Equal(t, tc.wantAway, IsWinner(&s, models.SideAway), "away")
		})
	}
}

func TestWinningSideAndWinnerTeamID(t *testing.T) {
	s := slot(1, "U12", models.RoundQuarterfinal, 1)
	s.MatchStatus = models.MatchCompleted
	s.HomeScore = ip(2)
	s.AwayScore = ip(1)
	s.HomeTeamID = ip(7)
	s.AwayTeamID = ip(9)

	side, ok := WinningSide(&s)
	require.True(t, ok)
	assert.Equal(t, models.SideHome, side)
	require.NotNil(t, WinnerTeamID(&s))
	assert.Equal(t, 7, *WinnerTeamID(&s))

	s.AwayScore = ip(2)
	_, ok = WinningSide(&s)
	assert.False(t, ok)
	assert.Nil(t, WinnerTeamID(&s))
}

func TestIsForfeitTeam(t *testing.T) {
	cases := []struct {
		name       string
		status     models.MatchStatus
		home, away *int
		wantHome   bool
		wantAway   bool
	}{
		{"home forfeited", models.MatchForfeit, ip(0), ip(3), true, false},
		{"away forfeited", models.MatchForfeit, ip(3), ip(0), false, true},
		{"completed 0:3 is not a forfeit", models.MatchCompleted, ip(0), ip(3), false, false},
		{"forfeit with other scores is not structural", models.MatchForfeit, ip(1), ip(3), false, false},
		{"forfeit 0:0", models.MatchForfeit, ip(0), ip(0), false, false},
		{"forfeit missing score", models.MatchForfeit, nil, ip(3), false, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := slot(1, "U12", models.RoundSemifinal, 1)
			s.MatchStatus = tc.status
			s.HomeScore = tc.home
			s.AwayScore = tc.away

			assert.Equal(t, tc.wantHome, IsForfeitTeam(&s, models.SideHome), "home")
			assert.Equal(t, tc.wantAway, IsForfeitTeam(&s, models.SideAway), "away")
		})
	}
}

// Scenario from the bracket view: a 0:3 forfeit marks home as the forfeiting
// side and away as the winner, from the same two score fields.
func TestForfeitWinnerDerivation(t *testing.T) {
	s := slot(1, "U12", models.RoundQuarterfinal, 1)
	s.MatchStatus = models.MatchForfeit
	s.HomeScore = ip(0)
	s.AwayScore = ip(3)

	assert.True(t, IsForfeitTeam(&s, models.SideHome))
	assert.False(t, IsForfeitTeam(&s, models.SideAway))
	assert.True(t, IsWinner(&s, models.SideAway))
	assert.False(t, IsWinner(&s, models.SideHome))
}
