package handlers

import (
	"errors"
	"net/http"

	"github.com/pitchside/league-web/middleware"
	"github.com/pitchside/league-web/services"
)

const maxCrestUploadSize = 5 << 20 // 5MB

type TeamHandler struct {
	teams services.TeamService
}

func NewTeamHandler(ts services.TeamService) *TeamHandler {
	return &TeamHandler{teams: ts}
}

func (h *TeamHandler) GetRoster(w http.ResponseWriter, r *http.Request) {
	teamID, err := getIDFromURL(r, "teamID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	actor := middleware.ActorFromContext(r.Context())
	roster, err := h.teams.Roster(r.Context(), actor, teamID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"roster": roster}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// UploadCrest replaces the team's crest image. Expects a multipart form with
// a "crest" file part.
func (h *TeamHandler) UploadCrest(w http.ResponseWriter, r *http.Request) {
	teamID, err := getIDFromURL(r, "teamID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxCrestUploadSize)
	file, header, err := r.FormFile("crest")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		badRequestResponse(w, r, errors.New("content type required"))
		return
	}

	actor := middleware.ActorFromContext(r.Context())
	crestURL, err := h.teams.UploadCrest(r.Context(), actor, teamID, contentType, file)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"crest_url": crestURL}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
