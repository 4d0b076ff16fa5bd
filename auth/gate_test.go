package auth

import (
	"testing"

	"github.com/pitchside/league-web/models"
	"github.com/stretchr/testify/assert"
)

func ip(v int) *int { return &v }

func playableSlot() models.BracketSlot {
	return models.BracketSlot{
		ID:              1,
		BracketTier:     "U12",
		Round:           models.RoundQuarterfinal,
		BracketPosition: 1,
		HomeTeamID:      ip(10),
		AwayTeamID:      ip(20),
		HomeClubID:      ip(100),
		AwayClubID:      ip(200),
		MatchStatus:     models.MatchScheduled,
	}
}

func completedSlot(home, away int) models.BracketSlot {
	s := playableSlot()
	s.MatchStatus = models.MatchCompleted
	s.HomeScore = ip(home)
	s.AwayScore = ip(away)
	return s
}

func admin() *models.Actor {
	return &models.Actor{UserID: 1, Role: models.RoleAdmin}
}

func teamManager(teamID int) *models.Actor {
	return &models.Actor{UserID: 2, Role: models.RoleTeamManager, TeamID: ip(teamID)}
}

func clubManager(clubID int) *models.Actor {
	return &models.Actor{UserID: 3, Role: models.RoleClubManager, ClubID: ip(clubID)}
}

func TestCanManageSlot(t *testing.T) {
	s := playableSlot()

	assert.False(t, CanManageSlot(&s, nil), "unauthenticated")
	assert.True(t, CanManageSlot(&s, admin()))

	assert.True(t, CanManageSlot(&s, teamManager(10)), "home team manager")
	assert.True(t, CanManageSlot(&s, teamManager(20)), "away team manager")
	// Scenario: an authenticated team manager whose team plays elsewhere.
	assert.False(t, CanManageSlot(&s, teamManager(30)))
	assert.False(t, CanManageSlot(&s, &models.Actor{UserID: 2, Role: models.RoleTeamManager}), "manager without a team")

	assert.True(t, CanManageSlot(&s, clubManager(100)), "home club manager")
	assert.True(t, CanManageSlot(&s, clubManager(200)), "away club manager")
	assert.False(t, CanManageSlot(&s, clubManager(300)))

	assert.False(t, CanManageSlot(&s, &models.Actor{UserID: 4, Role: models.RolePlayer}))
}

func TestCanManageSlotTBDSides(t *testing.T) {
	s := playableSlot()
	s.HomeTeamID = nil
	s.HomeClubID = nil

	assert.True(t, CanManageSlot(&s, teamManager(20)))
	assert.False(t, CanManageSlot(&s, teamManager(10)))
	assert.True(t, CanManageSlot(&s, admin()))
}

func TestCanAdvanceSlot(t *testing.T) {
	home := completedSlot(2, 1)

	assert.True(t, CanAdvanceSlot(&home, admin()))
	assert.True(t, CanAdvanceSlot(&home, teamManager(10)), "winning team's manager")
	assert.False(t, CanAdvanceSlot(&home, teamManager(20)), "losing team's manager")
	assert.True(t, CanAdvanceSlot(&home, clubManager(100)), "winning club's manager")
	assert.False(t, CanAdvanceSlot(&home, clubManager(200)), "losing club's manager")
	assert.False(t, CanAdvanceSlot(&home, nil))
}

func TestCanAdvanceSlotFinalRoundBlocksEveryone(t *testing.T) {
	s := completedSlot(3, 1)
	s.Round = models.RoundFinal

	// The final has nothing to advance into, even for administrators.
	assert.False(t, CanAdvanceSlot(&s, admin()))
	assert.False(t, CanAdvanceSlot(&s, teamManager(10)))
}

func TestCanAdvanceSlotTieBlocksEveryone(t *testing.T) {
	s := completedSlot(2, 2)

	assert.False(t, CanAdvanceSlot(&s, admin()))
	assert.False(t, CanAdvanceSlot(&s, teamManager(10)))
	assert.False(t, CanAdvanceSlot(&s, clubManager(100)))
}

func TestCanAdvanceSlotStatusAndScorePreconditions(t *testing.T) {
	scheduled := playableSlot()
	assert.False(t, CanAdvanceSlot(&scheduled, admin()), "scheduled")

	live := playableSlot()
	live.MatchStatus = models.MatchLive
	live.HomeScore = ip(1)
	live.AwayScore = ip(0)
	assert.False(t, CanAdvanceSlot(&live, admin()), "live")

	missing := playableSlot()
	missing.MatchStatus = models.MatchCompleted
	missing.HomeScore = ip(2)
	assert.False(t, CanAdvanceSlot(&missing, admin()), "missing away score")

	forfeited := playableSlot()
	forfeited.MatchStatus = models.MatchForfeit
	forfeited.HomeScore = ip(0)
	forfeited.AwayScore = ip(3)
	assert.True(t, CanAdvanceSlot(&forfeited, admin()), "forfeit is advanceable")
	assert.True(t, CanAdvanceSlot(&forfeited, teamManager(20)), "non-forfeiting side advances")
	assert.False(t, CanAdvanceSlot(&forfeited, teamManager(10)), "forfeiting side does not")
}

func TestCanForfeitSlot(t *testing.T) {
	scheduled := playableSlot()
	assert.True(t, CanForfeitSlot(&scheduled, admin()))
	assert.True(t, CanForfeitSlot(&scheduled, teamManager(10)))
	assert.False(t, CanForfeitSlot(&scheduled, teamManager(30)))

	live := playableSlot()
	live.MatchStatus = models.MatchLive
	assert.True(t, CanForfeitSlot(&live, admin()))

	// A finished match cannot be forfeited, regardless of actor.
	completed := completedSlot(2, 1)
	assert.False(t, CanForfeitSlot(&completed, admin()))
	assert.False(t, CanForfeitSlot(&completed, teamManager(10)))

	forfeited := playableSlot()
	forfeited.MatchStatus = models.MatchForfeit
	assert.False(t, CanForfeitSlot(&forfeited, admin()), "cannot re-forfeit")

	tbd := playableSlot()
	tbd.AwayTeamID = nil
	assert.False(t, CanForfeitSlot(&tbd, admin()), "no forfeiting a TBD matchup")
}

func TestCanManageTeam(t *testing.T) {
	team := models.Team{ID: 10, ClubID: 100}

	assert.True(t, CanManageTeam(&team, admin()))
	assert.True(t, CanManageTeam(&team, teamManager(10)))
	assert.False(t, CanManageTeam(&team, teamManager(11)))
	assert.True(t, CanManageTeam(&team, clubManager(100)))
	assert.False(t, CanManageTeam(&team, clubManager(101)))
	assert.False(t, CanManageTeam(&team, nil))
}
