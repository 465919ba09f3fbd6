package repository

import (
	"context"
	"time"

	"guidelight/internal/chat/domain"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// GroupRepository definition group conversations and membership
type GroupRepository interface {
	CreateGroup(ctx context.Context, group *domain.Group) error
	DeleteGroup(ctx context.Context, groupID string) error
	FindByID(ctx context.Context, groupID string) (*domain.Group, error)
	AddMembers(ctx context.Context, groupID string, memberIDs []string) error
	RemoveMember(ctx context.Context, groupID, userID string) error
	ListGroupsFor(ctx context.Context, userID string) ([]domain.Group, error)

	InsertMemberRecords(ctx context.Context, records []domain.GroupMember) error
	DeleteMemberRecord(ctx context.Context, groupID, userID string) error
	DeleteMemberRecordsByGroup(ctx context.Context, groupID string) error
	ListMemberRecords(ctx context.Context, groupID string) ([]domain.GroupMember, error)
}

type groupRepository struct {
	groupsColl  *mongo.Collection
	membersColl *mongo.Collection
}

// NewMongoGroupRepository create new mongo group repository
func NewMongoGroupRepository(db *mongo.Database) GroupRepository {
	return &groupRepository{
		groupsColl:  db.Collection("groups"),
		membersColl: db.Collection("group_members"),
	}
}

// CreateGroup create group
func (r *groupRepository) CreateGroup(ctx context.Context, group *domain.Group) error {
	_, err := r.groupsColl.InsertOne(ctx, group)
	return err
}

// DeleteGroup delete group doc, used by create compensation
func (r *groupRepository) DeleteGroup(ctx context.Context, groupID string) error {
	_, err := r.groupsColl.DeleteOne(ctx, bson.M{"_id": groupID})
	return err
}

// FindByID find group by id
func (r *groupRepository) FindByID(ctx context.Context, groupID string) (*domain.Group, error) {
	var group domain.Group
	err := r.groupsColl.FindOne(ctx, bson.M{"_id": groupID}).Decode(&group)
	if err != nil {
		return nil, err
	}
	return &group, nil
}

// AddMembers union new members into the group doc
func (r *groupRepository) AddMembers(ctx context.Context, groupID string, memberIDs []string) error {
	filter := bson.M{"_id": groupID}
	update := bson.M{
		"$addToSet": bson.M{"members": bson.M{"$each": memberIDs}},
		"$set":      bson.M{"updated_at": time.Now().UnixMilli()},
	}
	_, err := r.groupsColl.UpdateOne(ctx, filter, update)
	return err
}

// RemoveMember pull the member out of members and admins
func (r *groupRepository) RemoveMember(ctx context.Context, groupID, userID string) error {
	filter := bson.M{"_id": groupID}
	update := bson.M{
		"$pull": bson.M{"members": userID, "admins": userID},
		"$set":  bson.M{"updated_at": time.Now().UnixMilli()},
	}
	_, err := r.groupsColl.UpdateOne(ctx, filter, update)
	return err
}

// ListGroupsFor list groups the user belongs to
func (r *groupRepository) ListGroupsFor(ctx context.Context, userID string) ([]domain.Group, error) {
	filter := bson.M{"members": userID}
	opts := options.Find()
	opts.SetSort(bson.M{"updated_at": -1})

	cur, err := r.groupsColl.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}

	var groups []domain.Group
	if err := cur.All(ctx, &groups); err != nil {
		return nil, err
	}
	return groups, nil
}

func (r *groupRepository) InsertMemberRecords(ctx context.Context, records []domain.GroupMember) error {
	docs := make([]interface{}, 0, len(records))
	for _, rec := range records {
		docs = append(docs, rec)
	}
	_, err := r.membersColl.InsertMany(ctx, docs)
	return err
}

func (r *groupRepository) DeleteMemberRecord(ctx context.Context, groupID, userID string) error {
	_, err := r.membersColl.DeleteOne(ctx, bson.M{"group_id": groupID, "user_id": userID})
	return err
}

// DeleteMemberRecordsByGroup wipe all member records of a group,
// used by create compensation
func (r *groupRepository) DeleteMemberRecordsByGroup(ctx context.Context, groupID string) error {
	_, err := r.membersColl.DeleteMany(ctx, bson.M{"group_id": groupID})
	return err
}

func (r *groupRepository) ListMemberRecords(ctx context.Context, groupID string) ([]domain.GroupMember, error) {
	cur, err := r.membersColl.Find(ctx, bson.M{"group_id": groupID})
	if err != nil {
		return nil, err
	}

	var records []domain.GroupMember
	if err := cur.All(ctx, &records); err != nil {
		return nil, err
	}
	return records, nil
}
