package app

import (
	"context"
	"strings"
	"time"

	"guidelight/internal/chat/domain"
	"guidelight/internal/chat/repository"
	errprocess "guidelight/pkg/err"
	"guidelight/pkg/logger"

	"github.com/google/uuid"
)

// GroupUseCase manages group lifecycle and membership. Membership
// changes always leave a system message in the group feed.
type GroupUseCase struct {
	groupRepo repository.GroupRepository
	msgRepo   repository.MessageRepository
	pubsub    repository.PubSub
}

// NewGroupUseCase init group use case
func NewGroupUseCase(
	groupRepo repository.GroupRepository,
	msgRepo repository.MessageRepository,
	pubsub repository.PubSub,
) *GroupUseCase {
	return &GroupUseCase{
		groupRepo: groupRepo,
		msgRepo:   msgRepo,
		pubsub:    pubsub,
	}
}

// CreateGroup creates the group doc, one member record per member and
// the "created the group" system message. Any failure after the group
// doc exists rolls the partial writes back.
func (uc *GroupUseCase) CreateGroup(
	ctx context.Context,
	creatorID, creatorName, name string,
	invitees []domain.GroupMember,
) (*domain.Group, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errprocess.Set("group name is required")
	}
	if len(invitees) == 0 {
		return nil, errprocess.Set("group needs at least one invitee")
	}

	now := time.Now().UnixMilli()
	group := &domain.Group{
		ID:        uuid.New().String(),
		Name:      name,
		Members:   []string{creatorID},
		Admins:    []string{creatorID},
		CreatedBy: creatorID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	records := []domain.GroupMember{{
		GroupID:  group.ID,
		UserID:   creatorID,
		Username: creatorName,
		Role:     domain.GroupRoleAdmin,
		JoinedAt: now,
	}}
	seen := map[string]bool{creatorID: true}
	for _, inv := range invitees {
		if seen[inv.UserID] {
			continue
		}
		seen[inv.UserID] = true
		group.Members = append(group.Members, inv.UserID)
		records = append(records, domain.GroupMember{
			GroupID:  group.ID,
			UserID:   inv.UserID,
			Username: inv.Username,
			Role:     domain.GroupRoleMember,
			JoinedAt: now,
		})
	}

	if err := uc.groupRepo.CreateGroup(ctx, group); err != nil {
		return nil, err
	}

	if err := uc.groupRepo.InsertMemberRecords(ctx, records); err != nil {
		uc.compensateCreate(ctx, group.ID)
		return nil, err
	}

	if err := uc.postSystemMessage(ctx, group.ID, domain.SystemCreated(creatorName)); err != nil {
		uc.compensateCreate(ctx, group.ID)
		return nil, err
	}

	return group, nil
}

// AddMembers unions new members in. Only admins may add, the check
// lives here rather than trusting the client.
func (uc *GroupUseCase) AddMembers(
	ctx context.Context,
	actorID, actorName, groupID string,
	newMembers []domain.GroupMember,
) error {
	if len(newMembers) == 0 {
		return errprocess.Set("no members to add")
	}

	group, err := uc.groupRepo.FindByID(ctx, groupID)
	if err != nil {
		return err
	}
	if !group.IsAdmin(actorID) {
		return errprocess.Set("only group admins can add members")
	}

	now := time.Now().UnixMilli()
	ids := make([]string, 0, len(newMembers))
	names := make([]string, 0, len(newMembers))
	records := make([]domain.GroupMember, 0, len(newMembers))
	seen := map[string]bool{}
	for _, m := range newMembers {
		if group.HasMember(m.UserID) || seen[m.UserID] {
			continue
		}
		seen[m.UserID] = true
		ids = append(ids, m.UserID)
		names = append(names, m.Username)
		records = append(records, domain.GroupMember{
			GroupID:  groupID,
			UserID:   m.UserID,
			Username: m.Username,
			Role:     domain.GroupRoleMember,
			JoinedAt: now,
		})
	}
	if len(ids) == 0 {
		return nil
	}

	if err := uc.groupRepo.AddMembers(ctx, groupID, ids); err != nil {
		return err
	}
	if err := uc.groupRepo.InsertMemberRecords(ctx, records); err != nil {
		return err
	}

	return uc.postSystemMessage(ctx, groupID, domain.SystemAdded(actorName, names))
}

// LeaveGroup removes the member, posts the departure notice, then
// invokes onDone. onDone always runs after the removal completed.
func (uc *GroupUseCase) LeaveGroup(
	ctx context.Context,
	userID, username, groupID string,
	onDone func(),
) error {
	if err := uc.groupRepo.DeleteMemberRecord(ctx, groupID, userID); err != nil {
		return err
	}
	if err := uc.groupRepo.RemoveMember(ctx, groupID, userID); err != nil {
		return err
	}

	if err := uc.postSystemMessage(ctx, groupID, domain.SystemLeft(username)); err != nil {
		return err
	}

	if onDone != nil {
		onDone()
	}
	return nil
}

// ListMembers list the membership records of a group
func (uc *GroupUseCase) ListMembers(ctx context.Context, groupID string) ([]domain.GroupMember, error) {
	return uc.groupRepo.ListMemberRecords(ctx, groupID)
}

// ListGroupsFor list the groups the member belongs to
func (uc *GroupUseCase) ListGroupsFor(ctx context.Context, userID string) ([]domain.Group, error) {
	return uc.groupRepo.ListGroupsFor(ctx, userID)
}

func (uc *GroupUseCase) postSystemMessage(ctx context.Context, groupID, content string) error {
	scope := domain.Scope{Kind: domain.ScopeGroup, ID: groupID}
	msg := &domain.ChatMessage{
		ID:             uuid.New().String(),
		ConversationID: groupID,
		SenderID:       domain.SystemSenderID,
		SenderName:     domain.SystemSenderID,
		Content:        content,
		Kind:           domain.KindSystem,
		CreatedAt:      time.Now().UnixMilli(),
	}
	if err := uc.msgRepo.InsertMessage(ctx, scope, msg); err != nil {
		return err
	}

	if err := uc.pubsub.Publish(domain.FeedChannel(scope), domain.FeedEvent{Scope: scope, MessageID: msg.ID}); err != nil {
		logger.Log.Errorf("feed publish failed: ", err)
	}
	return nil
}

// compensateCreate undoes a half-created group. Cleanup failures are
// logged, the original error still surfaces to the caller.
func (uc *GroupUseCase) compensateCreate(ctx context.Context, groupID string) {
	if err := uc.groupRepo.DeleteMemberRecordsByGroup(ctx, groupID); err != nil {
		logger.Log.Errorf("group create compensation (member records) failed: ", err)
	}
	if err := uc.groupRepo.DeleteGroup(ctx, groupID); err != nil {
		logger.Log.Errorf("group create compensation (group doc) failed: ", err)
	}
}
