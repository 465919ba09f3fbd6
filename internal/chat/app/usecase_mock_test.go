package app

import (
	"context"
	"os"
	"sync"
	"testing"

	"guidelight/internal/chat/domain"
	"guidelight/pkg/logger"

	"github.com/stretchr/testify/mock"
)

func TestMain(m *testing.M) {
	logger.SetNewNop()
	os.Exit(m.Run())
}

// MockMessageRepository Mock MessageRepository
type MockMessageRepository struct {
	mock.Mock
}

// InsertMessage mock insert msg
func (m *MockMessageRepository) InsertMessage(ctx context.Context, scope domain.Scope, msg *domain.ChatMessage) error {
	args := m.Called(ctx, scope, msg)
	return args.Error(0)
}

// ListMessages mock list conversation feed
func (m *MockMessageRepository) ListMessages(ctx context.Context, scope domain.Scope) ([]domain.ChatMessage, error) {
	args := m.Called(ctx, scope)
	if args.Get(0) != nil {
		return args.Get(0).([]domain.ChatMessage), args.Error(1)
	}
	return nil, args.Error(1)
}

// MockGroupRepository Mock GroupRepository
type MockGroupRepository struct {
	mock.Mock
}

// CreateGroup mock create group
func (m *MockGroupRepository) CreateGroup(ctx context.Context, group *domain.Group) error {
	args := m.Called(ctx, group)
	return args.Error(0)
}

// DeleteGroup mock delete group
func (m *MockGroupRepository) DeleteGroup(ctx context.Context, groupID string) error {
	args := m.Called(ctx, groupID)
	return args.Error(0)
}

// FindByID mock find group by id
func (m *MockGroupRepository) FindByID(ctx context.Context, groupID string) (*domain.Group, error) {
	args := m.Called(ctx, groupID)
	if args.Get(0) != nil {
		return args.Get(0).(*domain.Group), args.Error(1)
	}
	return nil, args.Error(1)
}

// AddMembers mock union members
func (m *MockGroupRepository) AddMembers(ctx context.Context, groupID string, memberIDs []string) error {
	args := m.Called(ctx, groupID, memberIDs)
	return args.Error(0)
}

// RemoveMember mock remove member
func (m *MockGroupRepository) RemoveMember(ctx context.Context, groupID, userID string) error {
	args := m.Called(ctx, groupID, userID)
	return args.Error(0)
}

// ListGroupsFor mock list groups
func (m *MockGroupRepository) ListGroupsFor(ctx context.Context, userID string) ([]domain.Group, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) != nil {
		return args.Get(0).([]domain.Group), args.Error(1)
	}
	return nil, args.Error(1)
}

// InsertMemberRecords mock insert member records
func (m *MockGroupRepository) InsertMemberRecords(ctx context.Context, records []domain.GroupMember) error {
	args := m.Called(ctx, records)
	return args.Error(0)
}

// DeleteMemberRecord mock delete one member record
func (m *MockGroupRepository) DeleteMemberRecord(ctx context.Context, groupID, userID string) error {
	args := m.Called(ctx, groupID, userID)
	return args.Error(0)
}

// DeleteMemberRecordsByGroup mock wipe member records
func (m *MockGroupRepository) DeleteMemberRecordsByGroup(ctx context.Context, groupID string) error {
	args := m.Called(ctx, groupID)
	return args.Error(0)
}

// ListMemberRecords mock list member records
func (m *MockGroupRepository) ListMemberRecords(ctx context.Context, groupID string) ([]domain.GroupMember, error) {
	args := m.Called(ctx, groupID)
	if args.Get(0) != nil {
		return args.Get(0).([]domain.GroupMember), args.Error(1)
	}
	return nil, args.Error(1)
}

// MockTypingRepository Mock TypingRepository
type MockTypingRepository struct {
	mock.Mock
}

// SetTyping mock set typing record
func (m *MockTypingRepository) SetTyping(ctx context.Context, conversationID string, state domain.TypingState) error {
	args := m.Called(ctx, conversationID, state)
	return args.Error(0)
}

// ClearTyping mock clear typing record
func (m *MockTypingRepository) ClearTyping(ctx context.Context, conversationID, userID string) error {
	args := m.Called(ctx, conversationID, userID)
	return args.Error(0)
}

// GetTyping mock read typing records
func (m *MockTypingRepository) GetTyping(ctx context.Context, conversationID string) ([]domain.TypingState, error) {
	args := m.Called(ctx, conversationID)
	if args.Get(0) != nil {
		return args.Get(0).([]domain.TypingState), args.Error(1)
	}
	return nil, args.Error(1)
}

// MockPubSub Mock PubSub
type MockPubSub struct {
	mock.Mock
}

// Publish mock publisher
func (m *MockPubSub) Publish(channel string, message interface{}) error {
	args := m.Called(channel, message)
	return args.Error(0)
}

// Subscribe mock subscriber
func (m *MockPubSub) Subscribe(ctx context.Context, channel string, handler func(payload []byte)) error {
	args := m.Called(channel, handler)
	return args.Error(0)
}

// MockNotificationPublisher Mock NotificationPublisher
type MockNotificationPublisher struct {
	mock.Mock
}

// PublishNotification mock notification publish
func (m *MockNotificationPublisher) PublishNotification(ctx context.Context, event domain.NotificationEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

// MockDirectoryRepository Mock DirectoryRepository
type MockDirectoryRepository struct {
	mock.Mock
}

// FindMentors mock find mentors
func (m *MockDirectoryRepository) FindMentors(ctx context.Context, roles []string) ([]domain.MentorProfile, error) {
	args := m.Called(ctx, roles)
	if args.Get(0) != nil {
		return args.Get(0).([]domain.MentorProfile), args.Error(1)
	}
	return nil, args.Error(1)
}

// FindByID mock find profile
func (m *MockDirectoryRepository) FindByID(ctx context.Context, userID string) (*domain.MentorProfile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) != nil {
		return args.Get(0).(*domain.MentorProfile), args.Error(1)
	}
	return nil, args.Error(1)
}

// MockMailSender Mock mailer.Sender
type MockMailSender struct {
	mock.Mock
}

// Send mock mail delivery
func (m *MockMailSender) Send(to, subject, htmlBody string) error {
	args := m.Called(to, subject, htmlBody)
	return args.Error(0)
}

// countingNotifier records sound cues for assertions.
type countingNotifier struct {
	mu       sync.Mutex
	received int
	sent     int
}

func (n *countingNotifier) MessageReceived() {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.received++
}

func (n *countingNotifier) MessageSent() {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.sent++
}

func (n *countingNotifier) counts() (int, int) {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.received, n.sent
}
