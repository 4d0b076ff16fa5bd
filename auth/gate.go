// Package auth decides which bracket controls an actor may use. These checks
// shape the UI only; the upstream league API re-validates every request and
// remains the actual security boundary.
package auth

import (
	"github.com/pitchside/league-web/bracket"
	"github.com/pitchside/league-web/models"
)

// CanManageSlot reports whether the actor may operate on the slot at all.
// Roles are tested in priority order: administrators manage everything, team
// managers manage slots their team plays in, club managers manage slots one
// of their club's teams plays in.
func CanManageSlot(slot *models.BracketSlot, actor *models.Actor) bool {
	if !actor.Authenticated() {
		return false
	}
	switch actor.Role {
	case models.RoleAdmin:
		return true
	case models.RoleTeamManager:
		if actor.TeamID == nil {
			return false
		}
		return matchesPtr(slot.HomeTeamID, *actor.TeamID) || matchesPtr(slot.AwayTeamID, *actor.TeamID)
	case models.RoleClubManager:
		if actor.ClubID == nil {
			return false
		}
		return matchesPtr(slot.HomeClubID, *actor.ClubID) || matchesPtr(slot.AwayClubID, *actor.ClubID)
	default:
		return false
	}
}

// CanAdvanceSlot reports whether the actor may push the slot's winner into
// the next round. The final has no next round, so it is never advanceable,
// for any role. A tie blocks advancement entirely; it has to be resolved by
// an administrator out of band.
func CanAdvanceSlot(slot *models.BracketSlot, actor *models.Actor) bool {
	if !CanManageSlot(slot, actor) {
		return false
	}
	if slot.Round == models.RoundFinal {
		return false
	}
	if slot.MatchStatus != models.MatchCompleted && slot.MatchStatus != models.MatchForfeit {
		return false
	}
	winnerSide, ok := bracket.WinningSide(slot)
	if !ok {
		return false
	}

	switch actor.Role {
	case models.RoleAdmin:
		return true
	case models.RoleTeamManager:
		return matchesPtr(slot.TeamID(winnerSide), *actor.TeamID)
	case models.RoleClubManager:
		return matchesPtr(slot.ClubID(winnerSide), *actor.ClubID)
	default:
		return false
	}
}

// CanForfeitSlot reports whether the actor may start the forfeit flow for the
// slot. Only an upcoming or in-play match between two known teams can be
// forfeited; a finished or already-forfeited match cannot be re-forfeited.
func CanForfeitSlot(slot *models.BracketSlot, actor *models.Actor) bool {
	if !CanManageSlot(slot, actor) {
		return false
	}
	if slot.MatchStatus != models.MatchScheduled && slot.MatchStatus != models.MatchLive {
		return false
	}
	return slot.HasBothTeams()
}

// CanManageTeam gates the roster admin panel (crest upload, invites).
func CanManageTeam(team *models.Team, actor *models.Actor) bool {
	if !actor.Authenticated() {
		return false
	}
	switch actor.Role {
	case models.RoleAdmin:
		return true
	case models.RoleTeamManager:
		return actor.TeamID != nil && *actor.TeamID == team.ID
	case models.RoleClubManager:
		return actor.ClubID != nil && *actor.ClubID == team.ClubID
	default:
		return false
	}
}

func matchesPtr(p *int, v int) bool {
	return p != nil && *p == v
}
