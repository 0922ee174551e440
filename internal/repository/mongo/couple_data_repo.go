package mongo

import (
	"context"
	"errors"
	"time"

	"evermore/couple-app/internal/domain"
	"evermore/couple-app/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const coupleDataCollectionName = "couple_data"

// mongoCoupleDataRepository implements repository.CoupleDataRepository using MongoDB.
type mongoCoupleDataRepository struct {
	collection *mongo.Collection
}

// NewMongoCoupleDataRepository creates a new instance of mongoCoupleDataRepository.
// It expects a connected *mongo.Database instance.
func NewMongoCoupleDataRepository(db *mongo.Database) repository.CoupleDataRepository {
	return &mongoCoupleDataRepository{
		collection: db.Collection(coupleDataCollectionName),
	}
}

// GetByCoupleID retrieves the progress state for a couple identifier.
func (r *mongoCoupleDataRepository) GetByCoupleID(ctx context.Context, coupleID string) (*domain.CoupleData, error) {
	var data domain.CoupleData
	filter := bson.M{"coupleId": coupleID}

	err := r.collection.FindOne(ctx, filter).Decode(&data)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &data, nil
}

// Create inserts a fresh state document for a couple.
func (r *mongoCoupleDataRepository) Create(ctx context.Context, data *domain.CoupleData) error {
	if data.CoupleID == "" {
		return errors.New("couple id is required")
	}

	data.ID = primitive.NewObjectID()
	data.UpdatedAt = time.Now().UTC()
	if data.ActivityHistory == nil {
		data.ActivityHistory = []domain.ActivityEntry{}
	}

	_, err := r.collection.InsertOne(ctx, data)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return repository.ErrDuplicate
		}
		return err
	}
	return nil
}

// Update writes the full state document back, replacing the stored one.
// The whole document goes back as a single write so progress, streak, slot
// flags and the appended history entry land together.
func (r *mongoCoupleDataRepository) Update(ctx context.Context, data *domain.CoupleData) error {
	filter := bson.M{"coupleId": data.CoupleID}

	result, err := r.collection.ReplaceOne(ctx, filter, data)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// EnsureCoupleDataIndexes creates necessary indexes for the couple_data collection.
// Call this once during application startup.
func EnsureCoupleDataIndexes(ctx context.Context, collection *mongo.Collection) {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "coupleId", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	}

	_, _ = collection.Indexes().CreateMany(ctx, indexes)
}
