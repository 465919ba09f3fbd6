package repository

import (
	"context"

	"guidelight/internal/chat/domain"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MessageRepository persists conversation feeds. Messages are
// immutable after insert and always read back in created_at order.
type MessageRepository interface {
	InsertMessage(ctx context.Context, scope domain.Scope, msg *domain.ChatMessage) error
	// ListMessages returns the whole ordered feed for one conversation.
	ListMessages(ctx context.Context, scope domain.Scope) ([]domain.ChatMessage, error)
}

type mongoMessageRepository struct {
	direct *mongo.Collection
	group  *mongo.Collection
}

// NewMongoMessageRepository create a MessageRepository over the
// direct_messages and group_messages collections.
func NewMongoMessageRepository(db *mongo.Database) MessageRepository {
	return &mongoMessageRepository{
		direct: db.Collection("direct_messages"),
		group:  db.Collection("group_messages"),
	}
}

func (r *mongoMessageRepository) collection(scope domain.Scope) *mongo.Collection {
	if scope.Kind == domain.ScopeGroup {
		return r.group
	}
	return r.direct
}

func (r *mongoMessageRepository) InsertMessage(ctx context.Context, scope domain.Scope, msg *domain.ChatMessage) error {
	_, err := r.collection(scope).InsertOne(ctx, msg)
	return err
}

func (r *mongoMessageRepository) ListMessages(ctx context.Context, scope domain.Scope) ([]domain.ChatMessage, error) {
	filter := bson.M{"conversation_id": scope.ID}

	opts := options.Find()
	opts.SetSort(bson.M{"created_at": 1})

	cur, err := r.collection(scope).Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}

	var messages []domain.ChatMessage
	if err := cur.All(ctx, &messages); err != nil {
		return nil, err
	}
	return messages, nil
}
