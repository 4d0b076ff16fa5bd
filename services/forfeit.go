package services

import (
	"context"

	"github.com/pitchside/league-web/league"
	"github.com/pitchside/league-web/models"
)

// ForfeitStage is the UI-local state of the two-step forfeit flow. At most
// one slot has a flow open at a time; beginning a flow on another slot
// abandons the previous, unconfirmed selection (safe: nothing was sent).
type ForfeitStage string

const (
	ForfeitIdle       ForfeitStage = "idle"
	ForfeitSelecting  ForfeitStage = "selecting"
	ForfeitConfirming ForfeitStage = "confirming"
)

// ForfeitFlow is a value; transitions return the next state rather than
// mutating, which keeps the single-active-slot invariant visible in one
// place.
type ForfeitFlow struct {
	Stage  ForfeitStage `json:"stage"`
	SlotID int          `json:"slot_id,omitempty"`
	TeamID *int         `json:"team_id,omitempty"`
}

func IdleForfeitFlow() ForfeitFlow {
	return ForfeitFlow{Stage: ForfeitIdle}
}

// Begin opens the flow for a slot, discarding any selection in progress on
// another slot.
func (f ForfeitFlow) Begin(slotID int) ForfeitFlow {
	return ForfeitFlow{Stage: ForfeitSelecting, SlotID: slotID}
}

// SelectTeam records which team is forfeiting. It is an error outside an
// open flow.
func (f ForfeitFlow) SelectTeam(teamID int) (ForfeitFlow, error) {
	if f.Stage != ForfeitSelecting {
		return f, ErrNoForfeitInProgress
	}
	next := f
	next.TeamID = &teamID
	return next, nil
}

// Cancel discards the flow from any stage.
func (f ForfeitFlow) Cancel() ForfeitFlow {
	return IdleForfeitFlow()
}

type ForfeitService interface {
	// Confirm sends the forfeit request for the flow's slot and team. Until a
	// team is selected the confirm control is disabled, so confirming without
	// one is rejected without issuing anything. On success the flow resets to
	// idle and the refetched bracket is returned; on failure the flow stays
	// open (still selecting) so the user can retry.
	Confirm(ctx context.Context, actor *models.Actor, q league.BracketQuery, flow ForfeitFlow) (ForfeitFlow, *BracketView, error)

	// Forfeit runs the whole flow for a single request, validating the
	// selected team against a fresh fetch of the slot first.
	Forfeit(ctx context.Context, actor *models.Actor, q league.BracketQuery, slotID, teamID int) (*BracketView, error)
}

type forfeitService struct {
	api LeagueAPI
	hub Broadcaster
}

func NewForfeitService(api LeagueAPI, hub Broadcaster) ForfeitService {
	return &forfeitService{api: api, hub: hub}
}

func (s *forfeitService) Confirm(ctx context.Context, actor *models.Actor, q league.BracketQuery, flow ForfeitFlow) (ForfeitFlow, *BracketView, error) {
	if flow.Stage != ForfeitSelecting || flow.TeamID == nil {
		return flow, nil, ErrForfeitTeamNotSelected
	}

	inFlight := flow
	inFlight.Stage = ForfeitConfirming

	if err := s.api.RecordForfeit(ctx, actorToken(actor), actorRole(actor), flow.SlotID, *flow.TeamID); err != nil {
		// Keep the dialog open with the selection intact for a retry.
		return flow, nil, err
	}

	slots, err := s.api.FetchBracket(ctx, actorToken(actor), q)
	if err != nil {
		// The forfeit was recorded; only the refresh failed.
		return IdleForfeitFlow(), nil, err
	}
	s.hub.BroadcastToRoom(q.Room(), RefreshHint{Type: "BRACKET_UPDATED", Room: q.Room()})
	return IdleForfeitFlow(), assembleView(slots, actor), nil
}

func (s *forfeitService) Forfeit(ctx context.Context, actor *models.Actor, q league.BracketQuery, slotID, teamID int) (*BracketView, error) {
	slots, err := s.api.FetchBracket(ctx, actorToken(actor), q)
	if err != nil {
		return nil, err
	}
	slot, err := findSlot(slots, slotID)
	if err != nil {
		return nil, err
	}
	if !slotHasTeam(slot, teamID) {
		return nil, ErrForfeitTeamNotInSlot
	}

	flow, err := IdleForfeitFlow().Begin(slotID).SelectTeam(teamID)
	if err != nil {
		return nil, err
	}
	_, view, err := s.Confirm(ctx, actor, q, flow)
	return view, err
}

func slotHasTeam(slot *models.BracketSlot, teamID int) bool {
	for _, side := range []models.Side{models.SideHome, models.SideAway} {
		if id := slot.TeamID(side); id != nil && *id == teamID {
			return true
		}
	}
	return false
}
