package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"guidelight/internal/member/domain"
)

// ErrUsernameTaken is returned when the handle reservation loses the
// exclusive insert.
var ErrUsernameTaken = errors.New("username already taken")

// ProfileRepository owns the profiles and usernames collections.
type ProfileRepository interface {
	ReserveUsername(ctx context.Context, username, userID string) error
	ReleaseUsername(ctx context.Context, username string) error
	CreateProfile(ctx context.Context, profile *domain.Profile) error
	FindByID(ctx context.Context, userID string) (*domain.Profile, error)
	FindByIDs(ctx context.Context, userIDs []string) ([]domain.Profile, error)
	FindByRoles(ctx context.Context, roles []string) ([]domain.Profile, error)
	SetOnline(ctx context.Context, userID string, online bool) error
	UpdateRole(ctx context.Context, userID, role string) error
	SetAvatarURL(ctx context.Context, userID, url string) error
}

type profileRepository struct {
	profiles  *mongo.Collection
	usernames *mongo.Collection
}

// NewMongoProfileRepository create a ProfileRepository
func NewMongoProfileRepository(db *mongo.Database) ProfileRepository {
	return &profileRepository{
		profiles:  db.Collection("profiles"),
		usernames: db.Collection("usernames"),
	}
}

// ReserveUsername claims a handle by inserting its lowercase form as
// the document _id. Mongo's unique _id makes this the exclusivity
// check: the second writer gets a duplicate key error.
func (r *profileRepository) ReserveUsername(ctx context.Context, username, userID string) error {
	_, err := r.usernames.InsertOne(ctx, domain.NewReservation(username, userID))
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrUsernameTaken
		}
		return err
	}
	return nil
}

func (r *profileRepository) ReleaseUsername(ctx context.Context, username string) error {
	_, err := r.usernames.DeleteOne(ctx, bson.M{"_id": strings.ToLower(strings.TrimSpace(username))})
	return err
}

func (r *profileRepository) CreateProfile(ctx context.Context, profile *domain.Profile) error {
	_, err := r.profiles.InsertOne(ctx, profile)
	return err
}

func (r *profileRepository) FindByID(ctx context.Context, userID string) (*domain.Profile, error) {
	var profile domain.Profile
	if err := r.profiles.FindOne(ctx, bson.M{"_id": userID}).Decode(&profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *profileRepository) FindByIDs(ctx context.Context, userIDs []string) ([]domain.Profile, error) {
	cur, err := r.profiles.Find(ctx, bson.M{"_id": bson.M{"$in": userIDs}})
	if err != nil {
		return nil, err
	}

	var profiles []domain.Profile
	if err := cur.All(ctx, &profiles); err != nil {
		return nil, err
	}
	return profiles, nil
}

func (r *profileRepository) FindByRoles(ctx context.Context, roles []string) ([]domain.Profile, error) {
	opts := options.Find()
	opts.SetSort(bson.M{"username": 1})

	cur, err := r.profiles.Find(ctx, bson.M{"role": bson.M{"$in": roles}}, opts)
	if err != nil {
		return nil, err
	}

	var profiles []domain.Profile
	if err := cur.All(ctx, &profiles); err != nil {
		return nil, err
	}
	return profiles, nil
}

// SetOnline flips the presence flag and stamps last_seen.
func (r *profileRepository) SetOnline(ctx context.Context, userID string, online bool) error {
	_, err := r.profiles.UpdateOne(ctx,
		bson.M{"_id": userID},
		bson.M{"$set": bson.M{"online": online, "last_seen": time.Now().UnixMilli()}})
	return err
}

func (r *profileRepository) UpdateRole(ctx context.Context, userID, role string) error {
	_, err := r.profiles.UpdateOne(ctx,
		bson.M{"_id": userID},
		bson.M{"$set": bson.M{"role": role}})
	return err
}

func (r *profileRepository) SetAvatarURL(ctx context.Context, userID, url string) error {
	_, err := r.profiles.UpdateOne(ctx,
		bson.M{"_id": userID},
		bson.M{"$set": bson.M{"avatar_url": url}})
	return err
}
