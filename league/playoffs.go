package league

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/pitchside/league-web/models"
)

// BracketQuery identifies one bracket: a league/season/age-group triple.
type BracketQuery struct {
	LeagueID   int
	SeasonID   int
	AgeGroupID int
}

func (q BracketQuery) values() url.Values {
	v := url.Values{}
	v.Set("league_id", strconv.Itoa(q.LeagueID))
	v.Set("season_id", strconv.Itoa(q.SeasonID))
	v.Set("age_group_id", strconv.Itoa(q.AgeGroupID))
	return v
}

// Room returns the live-refresh room key for this bracket.
func (q BracketQuery) Room() string {
	return fmt.Sprintf("bracket:%d:%d:%d", q.LeagueID, q.SeasonID, q.AgeGroupID)
}

// FetchBracket loads the flattened slot list for one bracket.
func (c *Client) FetchBracket(ctx context.Context, token string, q BracketQuery) ([]models.BracketSlot, error) {
	var slots []models.BracketSlot
	path := "/api/playoffs/bracket?" + q.values().Encode()
	if err := c.do(ctx, http.MethodGet, path, token, nil, &slots); err != nil {
		return nil, err
	}
	return slots, nil
}

// AdvanceWinner asks the backend to propagate the slot's winner into the
// next-round slot. The backend locates the downstream slot and owns the
// actual state transition; nothing is patched locally.
func (c *Client) AdvanceWinner(ctx context.Context, token string, role models.Role, slotID int) error {
	body := map[string]int{"slot_id": slotID}
	return c.do(ctx, http.MethodPost, playoffPath(role, "advance"), token, body, nil)
}

// RecordForfeit asks the backend to record a forfeit by the named team. The
// backend applies the fixed 3:0 encoding and the status transition.
func (c *Client) RecordForfeit(ctx context.Context, token string, role models.Role, slotID, forfeitTeamID int) error {
	body := map[string]int{
		"slot_id":         slotID,
		"forfeit_team_id": forfeitTeamID,
	}
	return c.do(ctx, http.MethodPost, playoffPath(role, "forfeit"), token, body, nil)
}

// MatchPatch is a partial update of a match's schedule; nil fields are
// omitted from the request entirely.
type MatchPatch struct {
	MatchDate        *string `json:"match_date,omitempty"`
	ScheduledKickoff *string `json:"scheduled_kickoff,omitempty"`
}

func (p MatchPatch) Empty() bool {
	return p.MatchDate == nil && p.ScheduledKickoff == nil
}

// UpdateMatch applies a partial schedule update to the match behind a slot.
func (c *Client) UpdateMatch(ctx context.Context, token string, matchID int, patch MatchPatch) error {
	path := fmt.Sprintf("/api/matches/%d", matchID)
	return c.do(ctx, http.MethodPatch, path, token, patch, nil)
}
