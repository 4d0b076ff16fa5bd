package handlers

import (
	"net/http"

	"github.com/pitchside/league-web/middleware"
	"github.com/pitchside/league-web/services"
)

type MatchHandler struct {
	matches services.MatchService
}

func NewMatchHandler(ms services.MatchService) *MatchHandler {
	return &MatchHandler{matches: ms}
}

func (h *MatchHandler) ListMatches(w http.ResponseWriter, r *http.Request) {
	q, err := bracketQueryFromRequest(r)
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	actor := middleware.ActorFromContext(r.Context())
	list, err := h.matches.List(r.Context(), actor, q)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"matches": list.Matches, "any_live": list.AnyLive}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
