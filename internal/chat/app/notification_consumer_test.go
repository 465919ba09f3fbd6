package app

import (
	"context"
	"encoding/json"
	"io"
	"strings"
	"testing"

	"guidelight/internal/chat/domain"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// queueReader hands out the queued messages then reports EOF.
type queueReader struct {
	messages []kafka.Message
}

func (r *queueReader) ReadMessage(context.Context) (kafka.Message, error) {
	if len(r.messages) == 0 {
		return kafka.Message{}, io.EOF
	}
	m := r.messages[0]
	r.messages = r.messages[1:]
	return m, nil
}

func eventMessage(t *testing.T, event domain.NotificationEvent) kafka.Message {
	t.Helper()
	b, err := json.Marshal(event)
	assert.NoError(t, err)
	return kafka.Message{Key: []byte(event.Scope.ID), Value: b}
}

func TestNotificationConsumer_MailsOfflineDirectPeer(t *testing.T) {
	groupRepo := new(MockGroupRepository)
	dirRepo := new(MockDirectoryRepository)
	mail := new(MockMailSender)

	dirRepo.On("FindByID", mock.Anything, "bob").Return(&domain.MentorProfile{
		UserID: "bob", Username: "Bob", Email: "bob@example.com", Online: false,
	}, nil)
	mail.On("Send", "bob@example.com", offlineMailSubject, mock.MatchedBy(func(body string) bool {
		return strings.Contains(body, "Alice") && strings.Contains(body, "hello")
	})).Return(nil)

	reader := &queueReader{messages: []kafka.Message{eventMessage(t, domain.NotificationEvent{
		Scope:      domain.Scope{Kind: domain.ScopeDirect, ID: "alice_bob"},
		MessageID:  "m1",
		SenderID:   "alice",
		SenderName: "Alice",
		Preview:    "hello",
	})}}

	c := NewNotificationConsumer(reader, groupRepo, dirRepo, mail)
	assert.NoError(t, c.Run(context.Background()))

	mail.AssertNumberOfCalls(t, "Send", 1)
	groupRepo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
}

func TestNotificationConsumer_SkipsOnlineAndMissingEmail(t *testing.T) {
	groupRepo := new(MockGroupRepository)
	dirRepo := new(MockDirectoryRepository)
	mail := new(MockMailSender)

	groupRepo.On("FindByID", mock.Anything, "g1").Return(&domain.Group{
		ID:      "g1",
		Members: []string{"alice", "bob", "carol"},
	}, nil)
	dirRepo.On("FindByID", mock.Anything, "bob").Return(&domain.MentorProfile{
		UserID: "bob", Email: "bob@example.com", Online: true,
	}, nil)
	dirRepo.On("FindByID", mock.Anything, "carol").Return(&domain.MentorProfile{
		UserID: "carol", Online: false,
	}, nil)

	reader := &queueReader{messages: []kafka.Message{eventMessage(t, domain.NotificationEvent{
		Scope:      domain.Scope{Kind: domain.ScopeGroup, ID: "g1"},
		SenderID:   "alice",
		SenderName: "Alice",
		Preview:    "meeting moved",
	})}}

	c := NewNotificationConsumer(reader, groupRepo, dirRepo, mail)
	assert.NoError(t, c.Run(context.Background()))

	// Sender is never looked up, online bob and mail-less carol get nothing.
	dirRepo.AssertNotCalled(t, "FindByID", mock.Anything, "alice")
	mail.AssertNotCalled(t, "Send", mock.Anything, mock.Anything, mock.Anything)
}

func TestNotificationConsumer_SkipsUndecodablePayloads(t *testing.T) {
	groupRepo := new(MockGroupRepository)
	dirRepo := new(MockDirectoryRepository)
	mail := new(MockMailSender)

	// writer connection probes are plain "ping" frames
	reader := &queueReader{messages: []kafka.Message{
		{Key: []byte("ping"), Value: []byte("ping")},
	}}

	c := NewNotificationConsumer(reader, groupRepo, dirRepo, mail)
	assert.NoError(t, c.Run(context.Background()))

	mail.AssertNotCalled(t, "Send", mock.Anything, mock.Anything, mock.Anything)
}

func TestNotificationConsumer_StopsOnContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	reader := cancelledReader{ctxErr: ctx}
	c := NewNotificationConsumer(reader, new(MockGroupRepository), new(MockDirectoryRepository), new(MockMailSender))

	assert.NoError(t, c.Run(ctx))
}

type cancelledReader struct {
	ctxErr context.Context
}

func (r cancelledReader) ReadMessage(context.Context) (kafka.Message, error) {
	return kafka.Message{}, r.ctxErr.Err()
}
