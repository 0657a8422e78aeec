package models

import (
	"encoding/json"
	"time"
)

// Role tags mirror the role enum owned by the backend. They drive which
// routes and controllers are reachable for the session user.
type Role string

const (
	RoleStudent     Role = "student"
	RoleCampusPOC   Role = "campus_poc"
	RoleCoordinator Role = "coordinator"
	RoleManager     Role = "manager"
)

// User is the session identity returned by the auth endpoints.
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      Role      `json:"role"`
	Campus    string    `json:"campus"`
	School    string    `json:"school"`
	AvatarURL string    `json:"avatarUrl"`
	CreatedAt time.Time `json:"createdAt"`
}

func (u User) MarshalBinary() ([]byte, error) {
	return json.Marshal(u)
}

func (u *User) UnmarshalBinary(data []byte) error {
	return json.Unmarshal(data, u)
}

// StudentProfile is the read-mostly profile document behind the profile screen.
type StudentProfile struct {
	UserID    string   `json:"userId"`
	Name      string   `json:"name"`
	Campus    string   `json:"campus"`
	School    string   `json:"school"`
	AvatarURL string   `json:"avatarUrl"`
	Skills    []Skill  `json:"skills"`
	Links     Links    `json:"links"`
	Batch     string   `json:"batch"`
	Tags      []string `json:"tags"`
}

// Links holds the external portfolio links a student attaches to their profile.
type Links struct {
	CodeRepo  string `json:"codeRepo"`
	LinkedIn  string `json:"linkedin"`
	Resume    string `json:"resume"`
	Portfolio string `json:"portfolio"`
}
