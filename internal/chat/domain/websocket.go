package domain

import "fmt"

// Action websocket request action
type Action string

const (
	// EnterConversation websocket action enter_conversation
	EnterConversation Action = "enter_conversation"
	// LeaveConversation websocket action leave_conversation
	LeaveConversation Action = "leave_conversation"

	// SendMessage websocket action send_message
	SendMessage Action = "send_message"

	// Typing websocket action typing
	Typing Action = "typing"
	// StopTyping websocket action stop_typing
	StopTyping Action = "stop_typing"

	// CreateGroup websocket action create_group
	CreateGroup Action = "create_group"
	// AddMembers websocket action add_members
	AddMembers Action = "add_members"
	// LeaveGroup websocket action leave_group
	LeaveGroup Action = "leave_group"
	// ListMembers websocket action list_members
	ListMembers Action = "list_members"
	// ListGroups websocket action list_groups
	ListGroups Action = "list_groups"

	// ListMentors websocket action list_mentors
	ListMentors Action = "list_mentors"
	// OpenDirect websocket action open_direct
	OpenDirect Action = "open_direct"

	// NotifyMessage push action notify_message, carries a feed snapshot
	NotifyMessage Action = "notify_message"
	// TypingStatus push action typing_status
	TypingStatus Action = "typing_status"
)

// FeedChannel is the Redis pub/sub channel for one conversation's feed.
func FeedChannel(scope Scope) string {
	return fmt.Sprintf("feed:%s:%s", scope.Kind, scope.ID)
}

// TypingChannel is the Redis pub/sub channel for typing nudges.
func TypingChannel(conversationID string) string {
	return fmt.Sprintf("typing:%s", conversationID)
}

// TypingHashKey is the Redis hash holding typing records per member.
func TypingHashKey(conversationID string) string {
	return fmt.Sprintf("typing:hash:%s", conversationID)
}

// WSRequest websocket Request
type WSRequest struct {
	Action         string    `json:"action"`
	ScopeKind      string    `json:"scope_kind"`
	ConversationID string    `json:"conversation_id"`
	GroupID        string    `json:"group_id"`
	GroupName      string    `json:"group_name"`
	Members        []string  `json:"members"`
	MemberNames    []string  `json:"member_names"`
	PeerID         string    `json:"peer_id"`
	Content        string    `json:"content"`
	ReplyTo        *ReplyRef `json:"reply_to"`
	Role           string    `json:"role"`
	Search         string    `json:"search"`
}

// WSResponse websocket Response
type WSResponse struct {
	Action  string                 `json:"action"`
	Success bool                   `json:"success"`
	Payload map[string]interface{} `json:"payload,omitempty"`
	Error   string                 `json:"error,omitempty"`
}
