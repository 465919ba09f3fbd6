package app

import (
	"context"
	"fmt"
	"sync"
	"time"

	"guidelight/internal/chat/domain"
	"guidelight/internal/chat/repository"
	"guidelight/pkg/logger"
)

const (
	defaultTypingDebounce  = 3 * time.Second
	defaultTypingHardClear = 5 * time.Second
)

// TypingTracker keeps one member's typing state for one conversation.
// Create one per connection, never share across sessions.
type TypingTracker struct {
	repo   repository.TypingRepository
	pubsub repository.PubSub

	conversationID string
	userID         string
	username       string

	// Both timers are single slot, a new keystroke replaces the
	// pending one instead of stacking.
	mu            sync.Mutex
	debounceTimer *time.Timer
	hardTimer     *time.Timer

	debounceDelay  time.Duration
	hardClearDelay time.Duration
	staleAfter     time.Duration
}

// NewTypingTracker init typing tracker for one member in one conversation
func NewTypingTracker(
	repo repository.TypingRepository,
	pubsub repository.PubSub,
	conversationID, userID, username string,
) *TypingTracker {
	return &TypingTracker{
		repo:           repo,
		pubsub:         pubsub,
		conversationID: conversationID,
		userID:         userID,
		username:       username,
		debounceDelay:  defaultTypingDebounce,
		hardClearDelay: defaultTypingHardClear,
		staleAfter:     defaultTypingHardClear,
	}
}

// SetTyping marks the member as actively typing and re-arms the hard
// clear so a dead client cannot stay "typing" forever. Store errors
// are logged and swallowed, typing state is best effort.
func (t *TypingTracker) SetTyping(ctx context.Context) {
	state := domain.TypingState{
		UserID:    t.userID,
		Username:  t.username,
		IsTyping:  true,
		UpdatedAt: time.Now().UnixMilli(),
	}
	if err := t.repo.SetTyping(ctx, t.conversationID, state); err != nil {
		logger.Log.Errorf("set typing failed: ", err)
		return
	}
	t.nudge()

	t.mu.Lock()
	defer t.mu.Unlock()
	if t.hardTimer != nil {
		t.hardTimer.Stop()
	}
	t.hardTimer = time.AfterFunc(t.hardClearDelay, func() {
		t.ClearTyping(context.Background())
	})
}

// DebounceTyping is the keystroke entry point: mark active now, then
// clear after the debounce window unless another keystroke re-arms it.
func (t *TypingTracker) DebounceTyping(ctx context.Context) {
	t.SetTyping(ctx)

	t.mu.Lock()
	defer t.mu.Unlock()
	if t.debounceTimer != nil {
		t.debounceTimer.Stop()
	}
	t.debounceTimer = time.AfterFunc(t.debounceDelay, func() {
		t.ClearTyping(context.Background())
	})
}

// ClearTyping drops the record and cancels pending timers. A record
// that is already gone is not an error.
func (t *TypingTracker) ClearTyping(ctx context.Context) {
	t.mu.Lock()
	if t.debounceTimer != nil {
		t.debounceTimer.Stop()
		t.debounceTimer = nil
	}
	if t.hardTimer != nil {
		t.hardTimer.Stop()
		t.hardTimer = nil
	}
	t.mu.Unlock()

	if err := t.repo.ClearTyping(ctx, t.conversationID, t.userID); err != nil {
		logger.Log.Errorf("clear typing failed: ", err)
		return
	}
	t.nudge()
}

// ListenToTyping subscribes to typing nudges and calls cb with the
// usernames currently typing, excluding the tracker's own member.
func (t *TypingTracker) ListenToTyping(ctx context.Context, cb func(usernames []string)) error {
	// Deliver the current state once before the first nudge.
	cb(t.snapshot(ctx))

	channel := domain.TypingChannel(t.conversationID)
	return t.pubsub.Subscribe(ctx, channel, func(_ []byte) {
		cb(t.snapshot(ctx))
	})
}

// Close cancels timers and clears the record best effort.
func (t *TypingTracker) Close() {
	t.ClearTyping(context.Background())
}

func (t *TypingTracker) snapshot(ctx context.Context) []string {
	states, err := t.repo.GetTyping(ctx, t.conversationID)
	if err != nil {
		logger.Log.Errorf("read typing failed: ", err)
		return nil
	}

	now := time.Now().UnixMilli()
	usernames := make([]string, 0, len(states))
	for _, s := range states {
		if s.UserID == t.userID || !s.IsTyping {
			continue
		}
		// Drop records a crashed client never cleared.
		if now-s.UpdatedAt > t.staleAfter.Milliseconds() {
			continue
		}
		usernames = append(usernames, s.Username)
	}
	return usernames
}

func (t *TypingTracker) nudge() {
	channel := domain.TypingChannel(t.conversationID)
	if err := t.pubsub.Publish(channel, struct{}{}); err != nil {
		logger.Log.Error(fmt.Sprintf("typing nudge publish failed on %s: %v", channel, err))
	}
}
