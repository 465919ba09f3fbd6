package domain

// TypingState is one member's typing record inside a conversation,
// stored as a Redis hash field keyed by user id.
type TypingState struct {
	UserID    string `json:"user_id"`
	Username  string `json:"username"`
	IsTyping  bool   `json:"is_typing"`
	UpdatedAt int64  `json:"updated_at"` // unix millis
}

// FeedEvent is the nudge published after a feed-changing write.
// Listeners reload the full conversation rather than merging payloads.
type FeedEvent struct {
	Scope     Scope  `json:"scope"`
	MessageID string `json:"message_id,omitempty"`
}

// NotificationEvent is the record pushed to the notification topic
// after a successful send.
type NotificationEvent struct {
	Scope      Scope  `json:"scope"`
	MessageID  string `json:"message_id"`
	SenderID   string `json:"sender_id"`
	SenderName string `json:"sender_name"`
	Preview    string `json:"preview"`
	CreatedAt  int64  `json:"created_at"`
}
