package player

import (
	"time"
)

type PlayerRole string

const (
	PlayerRoleUser  PlayerRole = "user"
	PlayerRoleAdmin PlayerRole = "admin"
)

func (r PlayerRole) String() string {
	return string(r)
}

func ParsePlayerRole(s string) PlayerRole {
	if s == string(PlayerRoleAdmin) {
		return PlayerRoleAdmin
	}
	return PlayerRoleUser
}

type Statistics struct {
	WorldsCreated        int `json:"worlds_created"`
	CivilizationsEvolved int `json:"civilizations_evolved"`
	SystemsDiscovered    int `json:"systems_discovered"`
}

// Player is an explorer. Anonymous explorers have no email and sign in again only while their
// cookie is valid.
type Player struct {
	ID           int        `json:"id"`
	Username     string     `json:"username"`
	Email        *string    `json:"email"`
	DisplayName  string     `json:"display_name"`
	AvatarURL    *string    `json:"avatar_url"`
	Role         PlayerRole `json:"role"`
	Anonymous    bool       `json:"anonymous"`
	GalacticYear int        `json:"galactic_year"`
	Statistics   Statistics `json:"statistics"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}
