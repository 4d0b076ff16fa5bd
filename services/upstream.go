package services

import (
	"context"

	"github.com/pitchside/league-web/league"
	"github.com/pitchside/league-web/models"
)

// LeagueAPI is the slice of the upstream client the services consume.
// *league.Client satisfies it; tests substitute a fake.
type LeagueAPI interface {
	FetchBracket(ctx context.Context, token string, q league.BracketQuery) ([]models.BracketSlot, error)
	AdvanceWinner(ctx context.Context, token string, role models.Role, slotID int) error
	RecordForfeit(ctx context.Context, token string, role models.Role, slotID, forfeitTeamID int) error
	UpdateMatch(ctx context.Context, token string, matchID int, patch league.MatchPatch) error

	FetchReferenceData(ctx context.Context, token string) (*models.ReferenceData, error)
	FetchStandings(ctx context.Context, token string, q league.BracketQuery) ([]models.Standing, error)
	FetchMatches(ctx context.Context, token string, q league.BracketQuery) ([]models.MatchSummary, error)
	FetchTeam(ctx context.Context, token string, teamID int) (*models.Team, error)
	FetchRoster(ctx context.Context, token string, teamID int) (*models.Roster, error)
	UpdateTeamCrest(ctx context.Context, token string, teamID int, crestURL string) error
	FetchInvites(ctx context.Context, token string) ([]models.Invite, error)
	AcceptInvite(ctx context.Context, token string, inviteID int) error
}

var _ LeagueAPI = (*league.Client)(nil)

// Broadcaster pushes refresh hints to browsers watching a bracket.
// Implemented by *live.Hub.
type Broadcaster interface {
	BroadcastToRoom(room string, message interface{})
	Rooms() []string
}

func actorToken(actor *models.Actor) string {
	if actor == nil {
		return ""
	}
	return actor.Token
}

func actorRole(actor *models.Actor) models.Role {
	if actor == nil {
		return ""
	}
	return actor.Role
}
