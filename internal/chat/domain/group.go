package domain

import (
	"fmt"
	"strings"
)

// Group definition group conversation
type Group struct {
	ID          string   `bson:"_id,omitempty" json:"id"`
	Name        string   `bson:"name" json:"name"`
	Description string   `bson:"description,omitempty" json:"description,omitempty"`
	Members     []string `bson:"members" json:"members"`
	Admins      []string `bson:"admins" json:"admins"`
	CreatedBy   string   `bson:"created_by" json:"created_by"`
	CreatedAt   int64    `bson:"created_at" json:"created_at"`
	UpdatedAt   int64    `bson:"updated_at" json:"updated_at"`
}

// GroupRole member standing inside a group
type GroupRole string

const (
	// GroupRoleAdmin may add members
	GroupRoleAdmin GroupRole = "admin"
	// GroupRoleMember ordinary member
	GroupRoleMember GroupRole = "member"
)

// GroupMember is one membership record, unique per (group_id, user_id).
type GroupMember struct {
	GroupID  string    `bson:"group_id" json:"group_id"`
	UserID   string    `bson:"user_id" json:"user_id"`
	Username string    `bson:"username" json:"username"`
	Role     GroupRole `bson:"role" json:"role"`
	JoinedAt int64     `bson:"joined_at" json:"joined_at"`
}

// IsAdmin reports whether uid may manage the group.
func (g *Group) IsAdmin(uid string) bool {
	for _, a := range g.Admins {
		if a == uid {
			return true
		}
	}
	return false
}

// HasMember reports whether uid belongs to the group.
func (g *Group) HasMember(uid string) bool {
	for _, m := range g.Members {
		if m == uid {
			return true
		}
	}
	return false
}

// SystemCreated builds the notice posted when a group is created.
func SystemCreated(creatorName string) string {
	return fmt.Sprintf("%s created the group", creatorName)
}

// SystemAdded builds the notice posted when members are added.
func SystemAdded(actorName string, addedNames []string) string {
	return fmt.Sprintf("%s added %s", actorName, strings.Join(addedNames, ", "))
}

// SystemLeft builds the notice posted when a member leaves.
func SystemLeft(name string) string {
	return fmt.Sprintf("%s left the group", name)
}
