package services

import (
	"context"

	"github.com/pitchside/league-web/auth"
	"github.com/pitchside/league-web/bracket"
	"github.com/pitchside/league-web/league"
	"github.com/pitchside/league-web/models"
)

// SlotView is one slot enriched with everything the page derives per slot:
// the winner/forfeit predicates and which controls this actor gets.
type SlotView struct {
	models.BracketSlot

	WinnerSide  *models.Side `json:"winner_side,omitempty"`
	ForfeitSide *models.Side `json:"forfeit_side,omitempty"`

	CanManage  bool `json:"can_manage"`
	CanAdvance bool `json:"can_advance"`
	CanForfeit bool `json:"can_forfeit"`
}

type RoundView struct {
	Round models.Round `json:"round"`
	Slots []SlotView   `json:"slots"`
}

type TierView struct {
	Tier   string      `json:"tier"`
	Rounds []RoundView `json:"rounds"`
}

type BracketView struct {
	Tiers []TierView `json:"tiers"`
}

type BracketService interface {
	View(ctx context.Context, actor *models.Actor, q league.BracketQuery) (*BracketView, error)
	Advance(ctx context.Context, actor *models.Actor, q league.BracketQuery, slotID int) (*BracketView, error)
}

type bracketService struct {
	api LeagueAPI
	hub Broadcaster
}

func NewBracketService(api LeagueAPI, hub Broadcaster) BracketService {
	return &bracketService{api: api, hub: hub}
}

// View fetches the bracket and organizes it for display: tiers sorted
// lexicographically, each with the three rounds in play order, slots ordered
// by bracket_position.
func (s *bracketService) View(ctx context.Context, actor *models.Actor, q league.BracketQuery) (*BracketView, error) {
	slots, err := s.api.FetchBracket(ctx, actorToken(actor), q)
	if err != nil {
		return nil, err
	}
	return assembleView(slots, actor), nil
}

// Advance issues the advancement request and refetches the whole bracket, so
// the returned view always reflects the server's authoritative state. No
// guard is repeated here beyond what the backend enforces; the gate already
// decided whether the control was offered.
func (s *bracketService) Advance(ctx context.Context, actor *models.Actor, q league.BracketQuery, slotID int) (*BracketView, error) {
	if err := s.api.AdvanceWinner(ctx, actorToken(actor), actorRole(actor), slotID); err != nil {
		return nil, err
	}
	view, err := s.View(ctx, actor, q)
	if err != nil {
		return nil, err
	}
	s.hub.BroadcastToRoom(q.Room(), RefreshHint{Type: "BRACKET_UPDATED", Room: q.Room()})
	return view, nil
}

// RefreshHint tells connected browsers to refetch; it carries no bracket
// data of its own.
type RefreshHint struct {
	Type string `json:"type"`
	Room string `json:"room_id"`
}

func assembleView(slots []models.BracketSlot, actor *models.Actor) *BracketView {
	view := &BracketView{Tiers: make([]TierView, 0, 4)}
	for _, tier := range bracket.Tiers(slots) {
		tv := TierView{Tier: tier, Rounds: make([]RoundView, 0, len(models.BracketRounds))}
		for _, round := range models.BracketRounds {
			rv := RoundView{Round: round}
			for _, slot := range bracket.SlotsInRound(slots, tier, round) {
				rv.Slots = append(rv.Slots, newSlotView(slot, actor))
			}
			tv.Rounds = append(tv.Rounds, rv)
		}
		view.Tiers = append(view.Tiers, tv)
	}
	return view
}

func newSlotView(slot models.BracketSlot, actor *models.Actor) SlotView {
	sv := SlotView{
		BracketSlot: slot,
		CanManage:   auth.CanManageSlot(&slot, actor),
		CanAdvance:  auth.CanAdvanceSlot(&slot, actor),
		CanForfeit:  auth.CanForfeitSlot(&slot, actor),
	}
	if side, ok := bracket.WinningSide(&slot); ok {
		sv.WinnerSide = &side
	}
	for _, side := range []models.Side{models.SideHome, models.SideAway} {
		if bracket.IsForfeitTeam(&slot, side) {
			s := side
			sv.ForfeitSide = &s
			break
		}
	}
	return sv
}

// findSlot locates a slot by id in a freshly fetched bracket.
func findSlot(slots []models.BracketSlot, slotID int) (*models.BracketSlot, error) {
	for i := range slots {
		if slots[i].ID == slotID {
			return &slots[i], nil
		}
	}
	return nil, ErrSlotNotFound
}
