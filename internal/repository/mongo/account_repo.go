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

const accountCollectionName = "users"

// mongoAccountRepository implements repository.AccountRepository using MongoDB.
type mongoAccountRepository struct {
	collection *mongo.Collection
}

// NewMongoAccountRepository creates a new instance of mongoAccountRepository.
func NewMongoAccountRepository(db *mongo.Database) repository.AccountRepository {
	return &mongoAccountRepository{
		collection: db.Collection(accountCollectionName),
	}
}

// Create inserts a new couple account.
func (r *mongoAccountRepository) Create(ctx context.Context, account *domain.CoupleAccount) error {
	if account.Email == "" {
		return errors.New("account email is required")
	}

	account.ID = primitive.NewObjectID()
	account.CreatedAt = time.Now().UTC()

	_, err := r.collection.InsertOne(ctx, account)
	if err != nil {
		// The unique email index turns a racing duplicate signup into this error.
		if mongo.IsDuplicateKeyError(err) {
			return repository.ErrDuplicate
		}
		return err
	}
	return nil
}

// GetByEmail retrieves an account by its registered email address.
func (r *mongoAccountRepository) GetByEmail(ctx context.Context, email string) (*domain.CoupleAccount, error) {
	var account domain.CoupleAccount
	filter := bson.M{"email": email}

	err := r.collection.FindOne(ctx, filter).Decode(&account)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &account, nil
}

// EnsureAccountIndexes creates necessary indexes for the users collection.
// Call this once during application startup.
func EnsureAccountIndexes(ctx context.Context, collection *mongo.Collection) {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "coupleId", Value: 1}},
			Options: options.Index(),
		},
	}

	_, _ = collection.Indexes().CreateMany(ctx, indexes)
}
