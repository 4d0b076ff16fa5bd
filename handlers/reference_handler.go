package handlers

import (
	"net/http"

	"github.com/pitchside/league-web/middleware"
	"github.com/pitchside/league-web/services"
)

type ReferenceHandler struct {
	reference services.ReferenceService
}

func NewReferenceHandler(rs services.ReferenceService) *ReferenceHandler {
	return &ReferenceHandler{reference: rs}
}

// GetReferenceData returns the selector data (leagues, seasons, age groups,
// divisions) the page needs before it can ask for a bracket.
func (h *ReferenceHandler) GetReferenceData(w http.ResponseWriter, r *http.Request) {
	actor := middleware.ActorFromContext(r.Context())
	data, err := h.reference.ReferenceData(r.Context(), actor)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"reference": data}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *ReferenceHandler) GetStandings(w http.ResponseWriter, r *http.Request) {
	q, err := bracketQueryFromRequest(r)
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	actor := middleware.ActorFromContext(r.Context())
	standings, err := h.reference.Standings(r.Context(), actor, q)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"standings": standings}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
