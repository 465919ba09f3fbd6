package repository

import (
	"context"

	"guidelight/internal/chat/domain"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// DirectoryRepository reads mentor profiles out of the shared
// profiles collection maintained by the member service.
type DirectoryRepository interface {
	FindMentors(ctx context.Context, roles []string) ([]domain.MentorProfile, error)
	FindByID(ctx context.Context, userID string) (*domain.MentorProfile, error)
}

type directoryRepository struct {
	coll *mongo.Collection
}

// NewMongoDirectoryRepository create directory repository
func NewMongoDirectoryRepository(db *mongo.Database) DirectoryRepository {
	return &directoryRepository{
		coll: db.Collection("profiles"),
	}
}

// FindByID find one profile by user id
func (r *directoryRepository) FindByID(ctx context.Context, userID string) (*domain.MentorProfile, error) {
	var profile domain.MentorProfile
	err := r.coll.FindOne(ctx, bson.M{"_id": userID}).Decode(&profile)
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *directoryRepository) FindMentors(ctx context.Context, roles []string) ([]domain.MentorProfile, error) {
	filter := bson.M{"role": bson.M{"$in": roles}}
	opts := options.Find()
	opts.SetSort(bson.M{"username": 1})

	cur, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}

	var mentors []domain.MentorProfile
	if err := cur.All(ctx, &mentors); err != nil {
		return nil, err
	}
	return mentors, nil
}
