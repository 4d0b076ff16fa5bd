package services

import (
	"context"
	"testing"

	"github.com/pitchside/league-web/league"
	"github.com/pitchside/league-web/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestForfeitFlowTransitions(t *testing.T) {
	flow := IdleForfeitFlow()
	assert.Equal(t, ForfeitIdle, flow.Stage)

	flow = flow.Begin(7)
	assert.Equal(t, ForfeitSelecting, flow.Stage)
	assert.Equal(t, 7, flow.SlotID)
	assert.Nil(t, flow.TeamID)

	flow, err := flow.SelectTeam(10)
	require.NoError(t, err)
	require.NotNil(t, flow.TeamID)
	assert.Equal(t, 10, *flow.TeamID)

	flow = flow.Cancel()
	assert.Equal(t, ForfeitIdle, flow.Stage)
	assert.Zero(t, flow.SlotID)
	assert.Nil(t, flow.TeamID)
}

func TestForfeitFlowSelectRequiresOpenFlow(t *testing.T) {
	_, err := IdleForfeitFlow().SelectTeam(10)
	assert.ErrorIs(t, err, ErrNoForfeitInProgress)
}

// Opening the flow on a second slot abandons the first slot's unconfirmed
// selection; nothing was sent for it, so this is safe.
func TestForfeitFlowBeginOnAnotherSlotAbandonsSelection(t *testing.T) {
	flow := IdleForfeitFlow().Begin(7)
	flow, err := flow.SelectTeam(10)
	require.NoError(t, err)

	flow = flow.Begin(8)
	assert.Equal(t, 8, flow.SlotID)
	assert.Nil(t, flow.TeamID, "previous selection discarded")
}

func TestConfirmIsNoOpWithoutSelection(t *testing.T) {
	api := &fakeAPI{slots: sampleSlots()}
	svc := NewForfeitService(api, &fakeHub{})

	flow := IdleForfeitFlow().Begin(7)
	got, view, err := svc.Confirm(context.Background(), nil, league.BracketQuery{}, flow)

	assert.ErrorIs(t, err, ErrForfeitTeamNotSelected)
	assert.Nil(t, view)
	assert.Equal(t, flow, got, "flow unchanged")
	assert.Empty(t, api.calls, "nothing was sent")
}

func TestConfirmSendsForfeitAndRefetches(t *testing.T) {
	api := &fakeAPI{slots: sampleSlots()}
	hub := &fakeHub{}
	svc := NewForfeitService(api, hub)
	manager := &models.Actor{UserID: 2, Role: models.RoleTeamManager, TeamID: ip(1), Token: "tok"}

	flow := IdleForfeitFlow().Begin(1)
	flow, err := flow.SelectTeam(1)
	require.NoError(t, err)

	got, view, err := svc.Confirm(context.Background(), manager, league.BracketQuery{LeagueID: 1, SeasonID: 2, AgeGroupID: 3}, flow)
	require.NoError(t, err)
	require.NotNil(t, view)

	assert.Equal(t, ForfeitIdle, got.Stage, "selection cleared on success")
	assert.Equal(t, []string{"forfeit", "fetch"}, api.calls)
	assert.Equal(t, []string{"bracket:1:2:3"}, hub.broadcast)
}

func TestConfirmFailureKeepsDialogOpen(t *testing.T) {
	api := &fakeAPI{slots: sampleSlots(), forfeitErr: league.ErrAccessDenied}
	svc := NewForfeitService(api, &fakeHub{})

	flow := IdleForfeitFlow().Begin(1)
	flow, err := flow.SelectTeam(1)
	require.NoError(t, err)

	got, view, err := svc.Confirm(context.Background(), nil, league.BracketQuery{}, flow)
	assert.ErrorIs(t, err, league.ErrAccessDenied)
	assert.Nil(t, view)

	// Still selecting, selection intact, ready for a retry.
	assert.Equal(t, ForfeitSelecting, got.Stage)
	require.NotNil(t, got.TeamID)
	assert.Equal(t, 1, *got.TeamID)
}

func TestForfeitRejectsTeamOutsideSlot(t *testing.T) {
	api := &fakeAPI{slots: sampleSlots()}
	svc := NewForfeitService(api, &fakeHub{})

	_, err := svc.Forfeit(context.Background(), nil, league.BracketQuery{}, 1, 99)
	assert.ErrorIs(t, err, ErrForfeitTeamNotInSlot)
	assert.Equal(t, []string{"fetch"}, api.calls, "rejected before anything was sent")
}

func TestForfeitValidatesAndConfirms(t *testing.T) {
	api := &fakeAPI{slots: sampleSlots()}
	hub := &fakeHub{}
	svc := NewForfeitService(api, hub)

	view, err := svc.Forfeit(context.Background(), nil, league.BracketQuery{LeagueID: 1, SeasonID: 2, AgeGroupID: 3}, 1, 2)
	require.NoError(t, err)
	require.NotNil(t, view)
	assert.Equal(t, []string{"fetch", "forfeit", "fetch"}, api.calls)
	assert.Equal(t, []string{"bracket:1:2:3"}, hub.broadcast)
}

func TestConfirmRefetchFailureStillResets(t *testing.T) {
	api := &fakeAPI{slots: sampleSlots(), fetchErr: league.ErrUpstream}
	svc := NewForfeitService(api, &fakeHub{})

	flow := IdleForfeitFlow().Begin(1)
	flow, err := flow.SelectTeam(1)
	require.NoError(t, err)

	got, view, err := svc.Confirm(context.Background(), nil, league.BracketQuery{}, flow)
	assert.ErrorIs(t, err, league.ErrUpstream)
	assert.Nil(t, view)
	// The forfeit itself was recorded; the flow must not stay open.
	assert.Equal(t, ForfeitIdle, got.Stage)
}
