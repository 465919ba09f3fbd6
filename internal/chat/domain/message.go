package domain

import (
	"sort"
	"strings"
)

// MessageKind marks regular user messages apart from system entries.
type MessageKind string

const (
	// KindMessage is a user-authored chat message
	KindMessage MessageKind = "message"
	// KindSystem is a service-generated membership notice
	KindSystem MessageKind = "system"
)

// SystemSenderID is the sender id on system messages.
const SystemSenderID = "system"

// ScopeKind tells which collection a conversation lives in.
type ScopeKind string

const (
	// ScopeDirect 1 on 1 conversation
	ScopeDirect ScopeKind = "direct"
	// ScopeGroup group conversation
	ScopeGroup ScopeKind = "group"
)

// Scope identifies one conversation, direct or group.
type Scope struct {
	Kind ScopeKind `json:"kind"`
	ID   string    `json:"id"`
}

// DirectConversationID derives the shared id for a 1 on 1 chat.
// Both sides must compute the same id regardless of argument order.
func DirectConversationID(uidA, uidB string) string {
	ids := []string{uidA, uidB}
	sort.Strings(ids)
	return strings.Join(ids, "_")
}

// ReplyRef is the denormalized snippet of the message being replied to.
type ReplyRef struct {
	MessageID  string `bson:"message_id" json:"message_id"`
	Content    string `bson:"content" json:"content"`
	SenderID   string `bson:"sender_id" json:"sender_id"`
	SenderName string `bson:"sender_name" json:"sender_name"`
}

// ChatMessage is one immutable feed entry.
type ChatMessage struct {
	ID             string      `bson:"id" json:"id"`
	ConversationID string      `bson:"conversation_id" json:"conversation_id"`
	Participants   []string    `bson:"participants,omitempty" json:"participants,omitempty"`
	SenderID       string      `bson:"sender_id" json:"sender_id"`
	SenderName     string      `bson:"sender_name" json:"sender_name"`
	Content        string      `bson:"content" json:"content"`
	Kind           MessageKind `bson:"kind" json:"kind"`
	ReplyTo        *ReplyRef   `bson:"reply_to,omitempty" json:"reply_to,omitempty"`
	CreatedAt      int64       `bson:"created_at" json:"created_at"`
}
