package app

import (
	"context"
	"strings"
	"sync"
	"time"

	"guidelight/internal/chat/domain"
	"guidelight/internal/chat/repository"
	"guidelight/pkg"
	"guidelight/pkg/logger"

	"github.com/google/uuid"
)

const (
	defaultScrollDebounce = 100 * time.Millisecond
	replySnippetLimit     = 50
)

// Notifier receives the feed's sound cues. MessageSent fires only on
// the sending session, MessageReceived only on snapshot growth from
// someone else.
type Notifier interface {
	MessageReceived()
	MessageSent()
}

// MessageFeed mirrors one conversation for one session. The store
// owns ordering: every change replaces the local slice wholesale, the
// feed never merges or reorders locally.
type MessageFeed struct {
	msgRepo  repository.MessageRepository
	pubsub   repository.PubSub
	notifier Notifier
	events   repository.NotificationPublisher

	scope        domain.Scope
	selfID       string
	selfName     string
	participants []string

	mu          sync.Mutex
	messages    []domain.ChatMessage
	sending     bool
	reply       *domain.ReplyRef
	scrollTimer *time.Timer
	scrollDelay time.Duration

	onChange func(messages []domain.ChatMessage)
	onScroll func()
}

// NewMessageFeed init a feed for one member in one conversation.
// events may be nil when no notification topic is wired.
func NewMessageFeed(
	msgRepo repository.MessageRepository,
	pubsub repository.PubSub,
	notifier Notifier,
	events repository.NotificationPublisher,
	scope domain.Scope,
	selfID, selfName string,
	participants []string,
) *MessageFeed {
	return &MessageFeed{
		msgRepo:      msgRepo,
		pubsub:       pubsub,
		notifier:     notifier,
		events:       events,
		scope:        scope,
		selfID:       selfID,
		selfName:     selfName,
		participants: participants,
		scrollDelay:  defaultScrollDebounce,
	}
}

// Open loads the feed and subscribes for nudges. onChange gets every
// snapshot, onScroll fires debounced after changes settle.
func (f *MessageFeed) Open(ctx context.Context, onChange func([]domain.ChatMessage), onScroll func()) error {
	f.mu.Lock()
	f.onChange = onChange
	f.onScroll = onScroll
	f.mu.Unlock()

	if err := f.reload(ctx); err != nil {
		return err
	}

	channel := domain.FeedChannel(f.scope)
	return f.pubsub.Subscribe(ctx, channel, func(_ []byte) {
		if err := f.reload(ctx); err != nil {
			logger.Log.Errorf("feed reload failed: ", err)
		}
	})
}

// Snapshot returns the current ordered view.
func (f *MessageFeed) Snapshot() []domain.ChatMessage {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]domain.ChatMessage, len(f.messages))
	copy(out, f.messages)
	return out
}

// StageReply stores the snippet attached to the next send.
func (f *MessageFeed) StageReply(msg domain.ChatMessage) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.reply = &domain.ReplyRef{
		MessageID:  msg.ID,
		Content:    pkg.Truncate(msg.Content, replySnippetLimit),
		SenderID:   msg.SenderID,
		SenderName: msg.SenderName,
	}
}

// ClearReply drops the staged snippet.
func (f *MessageFeed) ClearReply() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.reply = nil
}

// Send writes one message. Whitespace-only content is a silent no-op.
// Concurrent submits while one is in flight are dropped. The staged
// reply is consumed before the write resolves and is not restored on
// failure.
func (f *MessageFeed) Send(ctx context.Context, content string) error {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil
	}

	f.mu.Lock()
	if f.sending {
		f.mu.Unlock()
		return nil
	}
	f.sending = true
	reply := f.reply
	f.reply = nil
	f.mu.Unlock()

	defer func() {
		f.mu.Lock()
		f.sending = false
		f.mu.Unlock()
	}()

	msg := &domain.ChatMessage{
		ID:             uuid.New().String(),
		ConversationID: f.scope.ID,
		Participants:   f.participants,
		SenderID:       f.selfID,
		SenderName:     f.selfName,
		Content:        content,
		Kind:           domain.KindMessage,
		ReplyTo:        reply,
		CreatedAt:      time.Now().UnixMilli(),
	}

	if err := f.msgRepo.InsertMessage(ctx, f.scope, msg); err != nil {
		logger.Log.Errorf("send message failed: ", err)
		return err
	}

	f.notifier.MessageSent()

	channel := domain.FeedChannel(f.scope)
	if err := f.pubsub.Publish(channel, domain.FeedEvent{Scope: f.scope, MessageID: msg.ID}); err != nil {
		logger.Log.Errorf("feed publish failed: ", err)
	}

	if f.events != nil {
		event := domain.NotificationEvent{
			Scope:      f.scope,
			MessageID:  msg.ID,
			SenderID:   f.selfID,
			SenderName: f.selfName,
			Preview:    pkg.Truncate(content, replySnippetLimit),
			CreatedAt:  msg.CreatedAt,
		}
		if err := f.events.PublishNotification(ctx, event); err != nil {
			logger.Log.Errorf("notification publish failed: ", err)
		}
	}

	return nil
}

func (f *MessageFeed) reload(ctx context.Context) error {
	messages, err := f.msgRepo.ListMessages(ctx, f.scope)
	if err != nil {
		return err
	}
	f.applySnapshot(messages)
	return nil
}

// applySnapshot replaces the local slice and derives the cues: growth
// caused by someone else's non-system message plays exactly one
// received cue, and the scroll callback is re-debounced. The initial
// load is silent, the cue marks messages arriving while the feed is
// open, not history.
func (f *MessageFeed) applySnapshot(next []domain.ChatMessage) {
	f.mu.Lock()
	grew := len(f.messages) > 0 && len(next) > len(f.messages)
	f.messages = next
	onChange := f.onChange

	var notify bool
	if grew && len(next) > 0 {
		last := next[len(next)-1]
		notify = last.SenderID != f.selfID && last.Kind != domain.KindSystem
	}

	if f.onScroll != nil {
		if f.scrollTimer != nil {
			f.scrollTimer.Stop()
		}
		onScroll := f.onScroll
		f.scrollTimer = time.AfterFunc(f.scrollDelay, onScroll)
	}
	f.mu.Unlock()

	if notify {
		f.notifier.MessageReceived()
	}
	if onChange != nil {
		onChange(next)
	}
}
