package userRepo

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"salonbook/database"
	"salonbook/models"
)

// MongoProfileRepo implements ProfileRepository using MongoDB.
type MongoProfileRepo struct {
	coll *mongo.Collection
}

// NewMongoProfileRepo creates a new ProfileRepository using MongoDB.
func NewMongoProfileRepo(db *mongo.Database, logger *zap.Logger) ProfileRepository {
	repo := &MongoProfileRepo{coll: db.Collection(database.ProfilesCollection)}
	if err := repo.ensureIndexes(); err != nil {
		logger.Warn("Failed to create profile indexes", zap.Error(err))
	}
	return repo
}

// newContext creates a context with the given timeout.
func newContext(parent context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(parent, timeout)
}

func (r *MongoProfileRepo) ensureIndexes() error {
	ctx, cancel := newContext(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
	}
	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

func (r *MongoProfileRepo) Create(ctx context.Context, profile *models.Profile) error {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	if profile.ID == "" {
		profile.ID = uuid.New().String()
	}
	profile.Email = strings.ToLower(profile.Email)
	now := time.Now()
	profile.CreatedAt = now
	profile.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, profile); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrEmailExists
		}
		return fmt.Errorf("failed to insert profile: %w", err)
	}
	return nil
}

func (r *MongoProfileRepo) GetByID(ctx context.Context, id string) (*models.Profile, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	var p models.Profile
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&p); err != nil {
		return nil, fmt.Errorf("failed to fetch profile with id %s: %w", id, err)
	}
	return &p, nil
}

func (r *MongoProfileRepo) GetByEmail(ctx context.Context, email string) (*models.Profile, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	var p models.Profile
	if err := r.coll.FindOne(ctx, bson.M{"email": strings.ToLower(email)}).Decode(&p); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch profile with email %s: %w", email, err)
	}
	return &p, nil
}

func (r *MongoProfileRepo) Update(ctx context.Context, id string, update models.ProfileUpdate) (*models.Profile, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	set := bson.M{"updatedAt": time.Now()}
	if update.FullName != nil {
		set["fullName"] = *update.FullName
	}
	if update.Phone != nil {
		set["phone"] = *update.Phone
	}
	if update.AvatarURL != nil {
		set["avatarUrl"] = *update.AvatarURL
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var p models.Profile
	if err := r.coll.FindOneAndUpdate(ctx, bson.M{"id": id}, bson.M{"$set": set}, opts).Decode(&p); err != nil {
		return nil, fmt.Errorf("failed to update profile %s: %w", id, err)
	}
	return &p, nil
}

func (r *MongoProfileRepo) SetTokenHash(ctx context.Context, id, hash string) error {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": bson.M{"tokenHash": hash}})
	if err != nil {
		return fmt.Errorf("failed to store token hash for %s: %w", id, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("profile %s: %w", id, mongo.ErrNoDocuments)
	}
	return nil
}

func (r *MongoProfileRepo) IncrementPoints(ctx context.Context, id string, delta int) (int, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{
		"$inc": bson.M{"loyaltyPoints": delta},
		"$set": bson.M{"updatedAt": time.Now()},
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var p models.Profile
	if err := r.coll.FindOneAndUpdate(ctx, bson.M{"id": id}, update, opts).Decode(&p); err != nil {
		return 0, fmt.Errorf("failed to add points for %s: %w", id, err)
	}
	return p.LoyaltyPoints, nil
}

func (r *MongoProfileRepo) DecrementPointsIfEnough(ctx context.Context, id string, points int) (int, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"id": id, "loyaltyPoints": bson.M{"$gte": points}}
	update := bson.M{
		"$inc": bson.M{"loyaltyPoints": -points},
		"$set": bson.M{"updatedAt": time.Now()},
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var p models.Profile
	err := r.coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&p)
	if err == nil {
		return p.LoyaltyPoints, nil
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return 0, fmt.Errorf("failed to redeem points for %s: %w", id, err)
	}

	// either the profile is missing or the balance is too low
	current, getErr := r.GetByID(ctx, id)
	if getErr != nil {
		return 0, getErr
	}
	return current.LoyaltyPoints, ErrInsufficientPoints
}
