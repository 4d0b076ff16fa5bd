package models

type Role string

const (
	RoleAdmin       Role = "admin"
	RoleClubManager Role = "club_manager"
	RoleTeamManager Role = "team_manager"
	RolePlayer      Role = "player"
)

// Actor is the authenticated caller as derived from the session token. A nil
// Actor means the request carried no credentials at all.
type Actor struct {
	UserID int    `json:"user_id"`
	Role   Role   `json:"role"`
	TeamID *int   `json:"team_id,omitempty"`
	ClubID *int   `json:"club_id,omitempty"`
	Token  string `json:"-"`
}

func (a *Actor) Authenticated() bool {
	return a != nil && a.UserID != 0
}

func (a *Actor) IsAdmin() bool {
	return a != nil && a.Role == RoleAdmin
}
