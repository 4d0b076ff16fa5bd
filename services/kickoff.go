package services

import (
	"context"
	"time"

	"github.com/pitchside/league-web/league"
	"github.com/pitchside/league-web/models"
)

const (
	editDateLayout = "2006-01-02"
	editTimeLayout = "15:04"
)

// KickoffEdit holds the inline editor's local fields: a calendar date and a
// wall-clock time, exactly as typed.
type KickoffEdit struct {
	SlotID int    `json:"slot_id"`
	Date   string `json:"date"`
	Time   string `json:"time"`
}

// StartKickoffEdit seeds the editor from the slot's current schedule. The
// stored kickoff is a UTC instant; the editable time is its projection into
// this process's local zone.
func StartKickoffEdit(slot *models.BracketSlot) (KickoffEdit, error) {
	if slot.MatchID == nil {
		return KickoffEdit{}, ErrNoMatchForSlot
	}
	edit := KickoffEdit{SlotID: slot.ID}
	if slot.MatchDate != nil {
		edit.Date = *slot.MatchDate
	}
	if slot.ScheduledKickoff != nil {
		if instant, err := time.Parse(time.RFC3339, *slot.ScheduledKickoff); err == nil {
			edit.Time = instant.In(time.Local).Format(editTimeLayout)
		}
	}
	return edit, nil
}

// Patch composes the partial update: match_date when a date was entered, and
// scheduled_kickoff only when both date and time are present. The instant is
// built by interpreting the typed date+time in the local zone and serializing
// to UTC, so the same wall-clock input yields different stored instants in
// different zones. Known limitation, preserved deliberately.
func (e KickoffEdit) Patch() (league.MatchPatch, error) {
	var patch league.MatchPatch
	if e.Date != "" {
		d := e.Date
		patch.MatchDate = &d
	}
	if e.Date != "" && e.Time != "" {
		local, err := time.ParseInLocation(editDateLayout+" "+editTimeLayout, e.Date+" "+e.Time, time.Local)
		if err != nil {
			return league.MatchPatch{}, err
		}
		kickoff := local.UTC().Format(time.RFC3339)
		patch.ScheduledKickoff = &kickoff
	}
	if patch.Empty() {
		return league.MatchPatch{}, ErrNothingToSave
	}
	return patch, nil
}

type KickoffService interface {
	// Start seeds the inline editor from the slot's current schedule.
	Start(ctx context.Context, actor *models.Actor, q league.BracketQuery, slotID int) (KickoffEdit, error)

	// Save applies the edit to the match behind the slot, then refetches the
	// bracket. The slot is located in a fresh fetch so a stale edit against a
	// removed slot fails cleanly.
	Save(ctx context.Context, actor *models.Actor, q league.BracketQuery, edit KickoffEdit) (*BracketView, error)
}

type kickoffService struct {
	api LeagueAPI
	hub Broadcaster
}

func NewKickoffService(api LeagueAPI, hub Broadcaster) KickoffService {
	return &kickoffService{api: api, hub: hub}
}

func (s *kickoffService) Start(ctx context.Context, actor *models.Actor, q league.BracketQuery, slotID int) (KickoffEdit, error) {
	slots, err := s.api.FetchBracket(ctx, actorToken(actor), q)
	if err != nil {
		return KickoffEdit{}, err
	}
	slot, err := findSlot(slots, slotID)
	if err != nil {
		return KickoffEdit{}, err
	}
	return StartKickoffEdit(slot)
}

func (s *kickoffService) Save(ctx context.Context, actor *models.Actor, q league.BracketQuery, edit KickoffEdit) (*BracketView, error) {
	patch, err := edit.Patch()
	if err != nil {
		return nil, err
	}

	slots, err := s.api.FetchBracket(ctx, actorToken(actor), q)
	if err != nil {
		return nil, err
	}
	slot, err := findSlot(slots, edit.SlotID)
	if err != nil {
		return nil, err
	}
	if slot.MatchID == nil {
		return nil, ErrNoMatchForSlot
	}

	if err := s.api.UpdateMatch(ctx, actorToken(actor), *slot.MatchID, patch); err != nil {
		return nil, err
	}

	slots, err = s.api.FetchBracket(ctx, actorToken(actor), q)
	if err != nil {
		return nil, err
	}
	s.hub.BroadcastToRoom(q.Room(), RefreshHint{Type: "BRACKET_UPDATED", Room: q.Room()})
	return assembleView(slots, actor), nil
}
