package handlers

import (
	"net/http"

	"github.com/pitchside/league-web/middleware"
	"github.com/pitchside/league-web/services"
)

type BracketHandler struct {
	brackets services.BracketService
	forfeits services.ForfeitService
	kickoffs services.KickoffService
}

func NewBracketHandler(bs services.BracketService, fs services.ForfeitService, ks services.KickoffService) *BracketHandler {
	return &BracketHandler{
		brackets: bs,
		forfeits: fs,
		kickoffs: ks,
	}
}

// GetBracket returns the organized playoff view for a league/season/age-group
// triple. Works for anonymous visitors; authenticated actors additionally get
// their per-slot permissions.
func (h *BracketHandler) GetBracket(w http.ResponseWriter, r *http.Request) {
	q, err := bracketQueryFromRequest(r)
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	actor := middleware.ActorFromContext(r.Context())
	view, err := h.brackets.View(r.Context(), actor, q)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"bracket": view}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

type advanceInput struct {
	SlotID int `json:"slot_id"`
}

func (h *BracketHandler) AdvanceWinner(w http.ResponseWriter, r *http.Request) {
	q, err := bracketQueryFromRequest(r)
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	var input advanceInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	actor := middleware.ActorFromContext(r.Context())
	view, err := h.brackets.Advance(r.Context(), actor, q, input.SlotID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"bracket": view}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

type forfeitInput struct {
	SlotID int `json:"slot_id"`
	TeamID int `json:"team_id"`
}

func (h *BracketHandler) RecordForfeit(w http.ResponseWriter, r *http.Request) {
	q, err := bracketQueryFromRequest(r)
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	var input forfeitInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	actor := middleware.ActorFromContext(r.Context())
	view, err := h.forfeits.Forfeit(r.Context(), actor, q, input.SlotID, input.TeamID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"bracket": view}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// StartKickoffEdit seeds the inline kickoff editor for a slot.
func (h *BracketHandler) StartKickoffEdit(w http.ResponseWriter, r *http.Request) {
	q, err := bracketQueryFromRequest(r)
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	slotID, err := getIDFromURL(r, "slotID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	actor := middleware.ActorFromContext(r.Context())
	edit, err := h.kickoffs.Start(r.Context(), actor, q, slotID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"edit": edit}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *BracketHandler) SaveKickoff(w http.ResponseWriter, r *http.Request) {
	q, err := bracketQueryFromRequest(r)
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	var edit services.KickoffEdit
	if err := readJSON(w, r, &edit); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	actor := middleware.ActorFromContext(r.Context())
	view, err := h.kickoffs.Save(r.Context(), actor, q, edit)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"bracket": view}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
