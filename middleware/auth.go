package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v4"
	"github.com/pitchside/league-web/models"
)

type contextKey string

const actorContextKey contextKey = "actor"

// Authenticate derives the Actor from the bearer token, when one is
// present. Requests without a token proceed unauthenticated, since the
// bracket is publicly viewable. A token that fails verification is rejected
// with the session-expired message; a stale session should re-login rather
// than silently degrade to read-only.
func Authenticate(jwtSecret []byte) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				next.ServeHTTP(w, r)
				return
			}

			raw := strings.TrimPrefix(header, "Bearer ")
			if raw == header {
				unauthorized(w, "invalid authorization header")
				return
			}

			claims := jwt.MapClaims{}
			_, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
				if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, jwt.ErrSignatureInvalid
				}
				return jwtSecret, nil
			})
			if err != nil {
				unauthorized(w, "session expired, please log in again")
				return
			}

			actor := actorFromClaims(claims, raw)
			ctx := context.WithValue(r.Context(), actorContextKey, actor)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAuthenticated guards the mutating routes.
func RequireAuthenticated(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !ActorFromContext(r.Context()).Authenticated() {
			unauthorized(w, "please log in to perform this action")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// ActorFromContext returns the request's actor, or nil for an
// unauthenticated request.
func ActorFromContext(ctx context.Context) *models.Actor {
	actor, _ := ctx.Value(actorContextKey).(*models.Actor)
	return actor
}

// WithActor is a test helper for seeding the context.
func WithActor(ctx context.Context, actor *models.Actor) context.Context {
	return context.WithValue(ctx, actorContextKey, actor)
}

func actorFromClaims(claims jwt.MapClaims, token string) *models.Actor {
	actor := &models.Actor{Token: token}
	if v, ok := claims["user_id"].(float64); ok {
		actor.UserID = int(v)
	}
	if v, ok := claims["role"].(string); ok {
		actor.Role = models.Role(v)
	}
	if v, ok := claims["team_id"].(float64); ok {
		id := int(v)
		actor.TeamID = &id
	}
	if v, ok := claims["club_id"].(float64); ok {
		id := int(v)
		actor.ClubID = &id
	}
	return actor
}

func unauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
