package models

import "time"

type InviteStatus string

const (
	InvitePending  InviteStatus = "pending"
	InviteAccepted InviteStatus = "accepted"
	InviteExpired  InviteStatus = "expired"
)

type Invite struct {
	ID        int          `json:"id"`
	TeamID    int          `json:"team_id"`
	TeamName  string       `json:"team_name"`
	Email     string       `json:"email"`
	Status    InviteStatus `json:"status"`
	ExpiresAt time.Time    `json:"expires_at"`
}
