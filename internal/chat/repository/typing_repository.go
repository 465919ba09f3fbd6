package repository

import (
	"context"
	"encoding/json"

	"guidelight/internal/chat/domain"

	"github.com/go-redis/redis/v8"
)

// TypingRepository stores ephemeral typing records in a Redis hash,
// one field per member of the conversation.
type TypingRepository interface {
	SetTyping(ctx context.Context, conversationID string, state domain.TypingState) error
	ClearTyping(ctx context.Context, conversationID, userID string) error
	GetTyping(ctx context.Context, conversationID string) ([]domain.TypingState, error)
}

type redisTypingRepository struct {
	client *redis.Client
}

// NewRedisTypingRepository create typing repository
func NewRedisTypingRepository(client *redis.Client) TypingRepository {
	return &redisTypingRepository{client: client}
}

func (r *redisTypingRepository) SetTyping(ctx context.Context, conversationID string, state domain.TypingState) error {
	data, err := json.Marshal(state)
	if err != nil {
		return err
	}
	return r.client.HSet(ctx, domain.TypingHashKey(conversationID), state.UserID, data).Err()
}

// ClearTyping removes the member's record. A missing field is fine.
func (r *redisTypingRepository) ClearTyping(ctx context.Context, conversationID, userID string) error {
	return r.client.HDel(ctx, domain.TypingHashKey(conversationID), userID).Err()
}

func (r *redisTypingRepository) GetTyping(ctx context.Context, conversationID string) ([]domain.TypingState, error) {
	fields, err := r.client.HGetAll(ctx, domain.TypingHashKey(conversationID)).Result()
	if err != nil {
		return nil, err
	}

	states := make([]domain.TypingState, 0, len(fields))
	for _, raw := range fields {
		var state domain.TypingState
		if err := json.Unmarshal([]byte(raw), &state); err != nil {
			// A corrupt field never breaks the whole snapshot.
			continue
		}
		states = append(states, state)
	}
	return states, nil
}
