package recordsRepo

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"salonbook/database"
	"salonbook/models"
)

type mongoLoyaltyHistoryRepo struct {
	coll *mongo.Collection
}

// NewMongoLoyaltyHistoryRepo returns a LoyaltyHistoryRepository backed by loyalty_history.
func NewMongoLoyaltyHistoryRepo(db *mongo.Database, logger *zap.Logger) LoyaltyHistoryRepository {
	coll := db.Collection(database.LoyaltyHistoryCollection)
	if err := ensureUserIndex(coll); err != nil {
		logger.Warn("Failed to create loyalty history indexes", zap.Error(err))
	}
	return &mongoLoyaltyHistoryRepo{coll: coll}
}

func (r *mongoLoyaltyHistoryRepo) Create(ctx context.Context, entry *models.LoyaltyEntry) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}
	entry.CreatedAt = time.Now()

	if _, err := r.coll.InsertOne(ctx, entry); err != nil {
		return fmt.Errorf("failed to insert loyalty entry: %w", err)
	}
	return nil
}

func (r *mongoLoyaltyHistoryRepo) ListByUser(ctx context.Context, userID string, limit int64) ([]models.LoyaltyEntry, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	if limit > 0 {
		opts.SetLimit(limit)
	}
	cursor, err := r.coll.Find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve loyalty history: %w", err)
	}
	defer cursor.Close(ctx)

	entries := []models.LoyaltyEntry{}
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, fmt.Errorf("failed to decode loyalty history: %w", err)
	}
	return entries, nil
}

type mongoNoteRepo struct {
	coll *mongo.Collection
}

// NewMongoNoteRepo returns a NoteRepository backed by customer_notes.
func NewMongoNoteRepo(db *mongo.Database, logger *zap.Logger) NoteRepository {
	coll := db.Collection(database.CustomerNotesCollection)
	if err := ensureUserIndex(coll); err != nil {
		logger.Warn("Failed to create customer note indexes", zap.Error(err))
	}
	return &mongoNoteRepo{coll: coll}
}

func (r *mongoNoteRepo) Create(ctx context.Context, note *models.CustomerNote) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if note.ID == "" {
		note.ID = uuid.New().String()
	}
	note.CreatedAt = time.Now()

	if _, err := r.coll.InsertOne(ctx, note); err != nil {
		return fmt.Errorf("failed to insert customer note: %w", err)
	}
	return nil
}

func (r *mongoNoteRepo) ListByUser(ctx context.Context, userID string) ([]models.CustomerNote, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve customer notes: %w", err)
	}
	defer cursor.Close(ctx)

	notes := []models.CustomerNote{}
	if err := cursor.All(ctx, &notes); err != nil {
		return nil, fmt.Errorf("failed to decode customer notes: %w", err)
	}
	return notes, nil
}

func ensureUserIndex(coll *mongo.Collection) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "userId", Value: 1}, {Key: "createdAt", Value: -1}}},
	}
	if _, err := coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}
