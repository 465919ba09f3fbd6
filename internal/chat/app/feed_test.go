package app

import (
	"context"
	"errors"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"guidelight/internal/chat/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newTestFeed(msgRepo *MockMessageRepository, pubsub *MockPubSub, notifier Notifier, events *MockNotificationPublisher) *MessageFeed {
	scope := domain.Scope{Kind: domain.ScopeDirect, ID: "alice_bob"}
	feed := NewMessageFeed(msgRepo, pubsub, notifier, nil, scope, "alice", "Alice", []string{"alice", "bob"})
	if events != nil {
		feed.events = events
	}
	return feed
}

func TestMessageFeed_SendTrimmedEmptyIsNoOp(t *testing.T) {
	ctx := context.Background()
	msgRepo := new(MockMessageRepository)
	pubsub := new(MockPubSub)
	notifier := &countingNotifier{}

	feed := newTestFeed(msgRepo, pubsub, notifier, nil)

	err := feed.Send(ctx, "   \n\t ")

	assert.NoError(t, err)
	msgRepo.AssertNotCalled(t, "InsertMessage", mock.Anything, mock.Anything, mock.Anything)
	pubsub.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
	_, sent := notifier.counts()
	assert.Equal(t, 0, sent)
}

func TestMessageFeed_SendWritesAndNotifies(t *testing.T) {
	ctx := context.Background()
	msgRepo := new(MockMessageRepository)
	pubsub := new(MockPubSub)
	events := new(MockNotificationPublisher)
	notifier := &countingNotifier{}

	feed := newTestFeed(msgRepo, pubsub, notifier, events)

	var inserted *domain.ChatMessage
	msgRepo.On("InsertMessage", ctx, feed.scope, mock.Anything).Run(func(args mock.Arguments) {
		inserted = args.Get(2).(*domain.ChatMessage)
	}).Return(nil)
	pubsub.On("Publish", domain.FeedChannel(feed.scope), mock.Anything).Return(nil)
	events.On("PublishNotification", ctx, mock.Anything).Return(nil)

	err := feed.Send(ctx, "  hello mentor  ")

	assert.NoError(t, err)
	assert.NotNil(t, inserted)
	assert.Equal(t, "hello mentor", inserted.Content)
	assert.Equal(t, "alice", inserted.SenderID)
	assert.Equal(t, domain.KindMessage, inserted.Kind)

	received, sent := notifier.counts()
	assert.Equal(t, 1, sent)
	assert.Equal(t, 0, received)

	msgRepo.AssertExpectations(t)
	pubsub.AssertExpectations(t)
	events.AssertExpectations(t)
}

func TestMessageFeed_SendAttachesTruncatedReplyAndClearsIt(t *testing.T) {
	ctx := context.Background()
	msgRepo := new(MockMessageRepository)
	pubsub := new(MockPubSub)
	notifier := &countingNotifier{}

	feed := newTestFeed(msgRepo, pubsub, notifier, nil)

	longText := strings.Repeat("x", 80)
	feed.StageReply(domain.ChatMessage{
		ID:         uuid.New().String(),
		Content:    longText,
		SenderID:   "bob",
		SenderName: "Bob",
	})

	var inserted *domain.ChatMessage
	msgRepo.On("InsertMessage", ctx, feed.scope, mock.Anything).Run(func(args mock.Arguments) {
		inserted = args.Get(2).(*domain.ChatMessage)
	}).Return(nil)
	pubsub.On("Publish", mock.Anything, mock.Anything).Return(nil)

	assert.NoError(t, feed.Send(ctx, "replying"))

	assert.NotNil(t, inserted.ReplyTo)
	assert.Equal(t, strings.Repeat("x", 50)+"...", inserted.ReplyTo.Content)
	assert.Equal(t, "Bob", inserted.ReplyTo.SenderName)

	// The staged reply is consumed by the send.
	feed.mu.Lock()
	assert.Nil(t, feed.reply)
	feed.mu.Unlock()
}

func TestMessageFeed_SendFailureKeepsReplyCleared(t *testing.T) {
	ctx := context.Background()
	msgRepo := new(MockMessageRepository)
	pubsub := new(MockPubSub)
	notifier := &countingNotifier{}

	feed := newTestFeed(msgRepo, pubsub, notifier, nil)
	feed.StageReply(domain.ChatMessage{ID: "m1", Content: "original", SenderID: "bob", SenderName: "Bob"})

	msgRepo.On("InsertMessage", ctx, feed.scope, mock.Anything).Return(errors.New("mongo down"))

	err := feed.Send(ctx, "will fail")

	assert.Error(t, err)
	// The optimistic clear is not rolled back on failure.
	feed.mu.Lock()
	assert.Nil(t, feed.reply)
	assert.False(t, feed.sending)
	feed.mu.Unlock()

	_, sent := notifier.counts()
	assert.Equal(t, 0, sent)
	pubsub.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
}

func TestMessageFeed_SendSingleFlight(t *testing.T) {
	ctx := context.Background()
	msgRepo := new(MockMessageRepository)
	pubsub := new(MockPubSub)
	notifier := &countingNotifier{}

	feed := newTestFeed(msgRepo, pubsub, notifier, nil)

	release := make(chan struct{})
	msgRepo.On("InsertMessage", ctx, feed.scope, mock.Anything).Run(func(mock.Arguments) {
		<-release
	}).Return(nil).Once()
	pubsub.On("Publish", mock.Anything, mock.Anything).Return(nil)

	done := make(chan error, 1)
	go func() {
		done <- feed.Send(ctx, "first")
	}()

	// Wait until the first send holds the in-flight flag.
	assert.Eventually(t, func() bool {
		feed.mu.Lock()
		defer feed.mu.Unlock()
		return feed.sending
	}, time.Second, 5*time.Millisecond)

	// The concurrent submit is dropped without a second insert.
	assert.NoError(t, feed.Send(ctx, "second"))

	close(release)
	assert.NoError(t, <-done)

	msgRepo.AssertNumberOfCalls(t, "InsertMessage", 1)
	_, sent := notifier.counts()
	assert.Equal(t, 1, sent)
}

func TestMessageFeed_SnapshotGrowthPlaysReceivedOnce(t *testing.T) {
	msgRepo := new(MockMessageRepository)
	pubsub := new(MockPubSub)
	notifier := &countingNotifier{}

	feed := newTestFeed(msgRepo, pubsub, notifier, nil)

	history := domain.ChatMessage{ID: "m0", SenderID: "bob", SenderName: "Bob", Content: "old", Kind: domain.KindMessage}
	fromBob := domain.ChatMessage{ID: "m1", SenderID: "bob", SenderName: "Bob", Content: "hi", Kind: domain.KindMessage}

	// Initial load is history, not an arrival: silent even when the
	// newest entry is the peer's.
	feed.applySnapshot([]domain.ChatMessage{history})
	received, _ := notifier.counts()
	assert.Equal(t, 0, received)

	feed.applySnapshot([]domain.ChatMessage{history, fromBob})
	received, _ = notifier.counts()
	assert.Equal(t, 1, received)

	// Same snapshot again: no growth, no cue.
	feed.applySnapshot([]domain.ChatMessage{history, fromBob})
	received, _ = notifier.counts()
	assert.Equal(t, 1, received)
}

func TestMessageFeed_OwnAndSystemGrowthStaysSilent(t *testing.T) {
	msgRepo := new(MockMessageRepository)
	pubsub := new(MockPubSub)
	notifier := &countingNotifier{}

	feed := newTestFeed(msgRepo, pubsub, notifier, nil)

	own := domain.ChatMessage{ID: "m1", SenderID: "alice", Kind: domain.KindMessage}
	feed.applySnapshot([]domain.ChatMessage{own})

	system := domain.ChatMessage{ID: "m2", SenderID: domain.SystemSenderID, Kind: domain.KindSystem}
	feed.applySnapshot([]domain.ChatMessage{own, system})

	received, _ := notifier.counts()
	assert.Equal(t, 0, received)
}

func TestMessageFeed_ScrollDebounceCollapsesBursts(t *testing.T) {
	msgRepo := new(MockMessageRepository)
	pubsub := new(MockPubSub)
	notifier := &countingNotifier{}

	feed := newTestFeed(msgRepo, pubsub, notifier, nil)
	feed.scrollDelay = 20 * time.Millisecond

	var scrolls int32
	feed.mu.Lock()
	feed.onScroll = func() { atomic.AddInt32(&scrolls, 1) }
	feed.mu.Unlock()

	msgs := []domain.ChatMessage{}
	for i := 0; i < 3; i++ {
		msgs = append(msgs, domain.ChatMessage{ID: uuid.New().String(), SenderID: "alice", Kind: domain.KindMessage})
		feed.applySnapshot(append([]domain.ChatMessage{}, msgs...))
	}

	assert.Eventually(t, func() bool {
		return atomic.LoadInt32(&scrolls) == 1
	}, time.Second, 5*time.Millisecond)

	// Give a stray second fire a chance to show up.
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, int32(1), atomic.LoadInt32(&scrolls))
}

func TestMessageFeed_WholesaleReplaceKeepsStoreOrder(t *testing.T) {
	msgRepo := new(MockMessageRepository)
	pubsub := new(MockPubSub)
	notifier := &countingNotifier{}

	feed := newTestFeed(msgRepo, pubsub, notifier, nil)

	first := []domain.ChatMessage{
		{ID: "a", SenderID: "alice", CreatedAt: 1},
		{ID: "b", SenderID: "bob", CreatedAt: 2},
	}
	feed.applySnapshot(first)

	// The store re-ordered: local view follows it verbatim.
	second := []domain.ChatMessage{
		{ID: "b", SenderID: "bob", CreatedAt: 2},
		{ID: "a", SenderID: "alice", CreatedAt: 3},
	}
	feed.applySnapshot(second)

	snap := feed.Snapshot()
	assert.Equal(t, "b", snap[0].ID)
	assert.Equal(t, "a", snap[1].ID)
}
