package handlers

import (
	"net/http"

	"github.com/pitchside/league-web/middleware"
	"github.com/pitchside/league-web/services"
)

type InviteHandler struct {
	invites services.InviteService
}

func NewInviteHandler(is services.InviteService) *InviteHandler {
	return &InviteHandler{invites: is}
}

func (h *InviteHandler) ListInvites(w http.ResponseWriter, r *http.Request) {
	actor := middleware.ActorFromContext(r.Context())
	invites, err := h.invites.List(r.Context(), actor)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"invites": invites}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *InviteHandler) AcceptInvite(w http.ResponseWriter, r *http.Request) {
	inviteID, err := getIDFromURL(r, "inviteID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	actor := middleware.ActorFromContext(r.Context())
	if err := h.invites.Accept(r.Context(), actor, inviteID); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"status": "accepted"}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
