package domain

import (
	"strings"
	"time"

	token "guidelight/pkg/token"
)

// Profile is the public member document in Mongo. The chat service
// reads the same collection for its mentor directory, so field names
// here are load-bearing.
type Profile struct {
	UserID        string   `bson:"_id" json:"user_id"`
	Username      string   `bson:"username" json:"username"`
	UsernameLower string   `bson:"username_lower" json:"-"`
	Email         string   `bson:"email" json:"email"`
	AvatarURL     string   `bson:"avatar_url,omitempty" json:"avatar_url,omitempty"`
	Role          string   `bson:"role" json:"role"`
	Online        bool     `bson:"online" json:"online"`
	LastSeen      int64    `bson:"last_seen" json:"last_seen"`
	Bio           string   `bson:"bio,omitempty" json:"bio,omitempty"`
	Skills        []string `bson:"skills,omitempty" json:"skills,omitempty"`
	CreatedAt     int64    `bson:"created_at" json:"created_at"`
}

// UsernameReservation claims a handle. The _id is the lowercase
// handle, so a second insert for the same spelling fails as a
// duplicate key regardless of casing.
type UsernameReservation struct {
	Handle     string `bson:"_id"`
	UserID     string `bson:"user_id"`
	ReservedAt int64  `bson:"reserved_at"`
}

// NewReservation builds the reservation for a raw handle.
func NewReservation(username, userID string) UsernameReservation {
	return UsernameReservation{
		Handle:     strings.ToLower(strings.TrimSpace(username)),
		UserID:     userID,
		ReservedAt: time.Now().UnixMilli(),
	}
}

// KnownRoleTag reports whether a role tag is one the product knows.
func KnownRoleTag(role string) bool {
	switch role {
	case string(token.RoleStudent), string(token.RoleTeacher), string(token.RoleProfessional):
		return true
	}
	return false
}
