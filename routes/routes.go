package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/pitchside/league-web/handlers"
	"github.com/pitchside/league-web/middleware"
)

// SetupRoutes mounts the browser-facing API. Viewing is public; everything
// that writes goes through the authenticated group.
func SetupRoutes(
	router *chi.Mux,
	jwtSecret []byte,
	allowedOrigins []string,
	bracketHandler *handlers.BracketHandler,
	matchHandler *handlers.MatchHandler,
	referenceHandler *handlers.ReferenceHandler,
	teamHandler *handlers.TeamHandler,
	inviteHandler *handlers.InviteHandler,
	webSocketHandler *handlers.WebSocketHandler,
) {
	router.Use(chiMiddleware.RequestID)
	router.Use(chiMiddleware.RealIP)
	router.Use(chiMiddleware.Logger)
	router.Use(chiMiddleware.Recoverer)

	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	router.Use(middleware.Authenticate(jwtSecret))

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	router.Route("/api", func(r chi.Router) {
		// Public: anyone can browse the bracket and results.
		r.Get("/reference", referenceHandler.GetReferenceData)
		r.Get("/standings", referenceHandler.GetStandings)
		r.Get("/brackets", bracketHandler.GetBracket)
		r.Get("/matches", matchHandler.ListMatches)
		r.Get("/teams/{teamID}/roster", teamHandler.GetRoster)

		// Authenticated: everything that writes, plus per-user data.
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAuthenticated)

			r.Post("/brackets/advance", bracketHandler.AdvanceWinner)
			r.Post("/brackets/forfeit", bracketHandler.RecordForfeit)
			r.Get("/brackets/slots/{slotID}/kickoff", bracketHandler.StartKickoffEdit)
			r.Put("/brackets/kickoff", bracketHandler.SaveKickoff)

			r.Put("/teams/{teamID}/crest", teamHandler.UploadCrest)

			r.Get("/invites", inviteHandler.ListInvites)
			r.Post("/invites/{inviteID}/accept", inviteHandler.AcceptInvite)
		})
	})

	router.Get("/ws/bracket", webSocketHandler.ServeBracket)
}
