package services

import (
	"context"
	"io"

	"github.com/pitchside/league-web/league"
	"github.com/pitchside/league-web/models"
	"github.com/pitchside/league-web/storage"
)

func ip(v int) *int { return &v }

// fakeAPI records calls and plays back canned data, standing in for the
// upstream league API.
type fakeAPI struct {
	slots   []models.BracketSlot
	matches []models.MatchSummary
	team    *models.Team

	calls     []string
	lastPatch league.MatchPatch

	fetchErr   error
	advanceErr error
	forfeitErr error
	updateErr  error
}

func (f *fakeAPI) FetchBracket(_ context.Context, _ string, _ league.BracketQuery) ([]models.BracketSlot, error) {
	f.calls = append(f.calls, "fetch")
	if f.fetchErr != nil {
		return nil, f.fetchErr
	}
	return f.slots, nil
}

func (f *fakeAPI) AdvanceWinner(_ context.Context, _ string, _ models.Role, _ int) error {
	f.calls = append(f.calls, "advance")
	return f.advanceErr
}

func (f *fakeAPI) RecordForfeit(_ context.Context, _ string, _ models.Role, _, _ int) error {
	f.calls = append(f.calls, "forfeit")
	return f.forfeitErr
}

func (f *fakeAPI) UpdateMatch(_ context.Context, _ string, _ int, patch league.MatchPatch) error {
	f.calls = append(f.calls, "update")
	f.lastPatch = patch
	return f.updateErr
}

func (f *fakeAPI) FetchReferenceData(_ context.Context, _ string) (*models.ReferenceData, error) {
	return &models.ReferenceData{}, nil
}

func (f *fakeAPI) FetchStandings(_ context.Context, _ string, _ league.BracketQuery) ([]models.Standing, error) {
	return nil, nil
}

func (f *fakeAPI) FetchMatches(_ context.Context, _ string, _ league.BracketQuery) ([]models.MatchSummary, error) {
	f.calls = append(f.calls, "matches")
	return f.matches, nil
}

func (f *fakeAPI) FetchTeam(_ context.Context, _ string, _ int) (*models.Team, error) {
	return f.team, nil
}

func (f *fakeAPI) FetchRoster(_ context.Context, _ string, _ int) (*models.Roster, error) {
	return &models.Roster{}, nil
}

func (f *fakeAPI) UpdateTeamCrest(_ context.Context, _ string, _ int, _ string) error {
	f.calls = append(f.calls, "crest")
	return nil
}

func (f *fakeAPI) FetchInvites(_ context.Context, _ string) ([]models.Invite, error) {
	return nil, nil
}

func (f *fakeAPI) AcceptInvite(_ context.Context, _ string, _ int) error {
	return nil
}

type fakeHub struct {
	rooms     []string
	broadcast []string
}

func (h *fakeHub) BroadcastToRoom(room string, _ interface{}) {
	h.broadcast = append(h.broadcast, room)
}

func (h *fakeHub) Rooms() []string { return h.rooms }

type fakeUploader struct {
	uploaded []string
	deleted  []string
	err      error
}

func (u *fakeUploader) Upload(_ context.Context, key, _ string, _ io.Reader) (*storage.UploadResult, error) {
	if u.err != nil {
		return nil, u.err
	}
	u.uploaded = append(u.uploaded, key)
	return &storage.UploadResult{Key: key, Location: "https://cdn.example/" + key}, nil
}

func (u *fakeUploader) Delete(_ context.Context, key string) error {
	u.deleted = append(u.deleted, key)
	return nil
}

func (u *fakeUploader) GetPublicURL(key string) string {
	return "https://cdn.example/" + key
}
