package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"salescall/internal/model"
)

// CustomerRepo handles MongoDB operations for customer records. It is the
// preference store of the language engine: GetPreference and ConfirmLanguage
// are the only two operations the engine depends on.
type CustomerRepo interface {
	Create(ctx context.Context, customer *model.Customer) error
	GetByID(ctx context.Context, id string) (*model.Customer, error)
	GetPreference(ctx context.Context, id string) (*model.CustomerLanguagePreference, error)
	ConfirmLanguage(ctx context.Context, id string, code model.LanguageCode) error
}

type customerRepo struct {
	collection *mongo.Collection
}

// NewCustomerRepo creates a new customer repository
func NewCustomerRepo(db *mongo.Database) CustomerRepo {
	return &customerRepo{
		collection: db.Collection("customers"),
	}
}

func (r *customerRepo) Create(ctx context.Context, customer *model.Customer) error {
	if customer.ID == "" {
		customer.ID = "c_" + uuid.New().String()[:8]
	}
	now := time.Now()
	customer.CreatedAt = now
	customer.UpdatedAt = now

	_, err := r.collection.InsertOne(ctx, customer)
	return err
}

func (r *customerRepo) GetByID(ctx context.Context, id string) (*model.Customer, error) {
	var customer model.Customer
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&customer)
	if err == mongo.ErrNoDocuments {
		return nil, fmt.Errorf("customer %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &customer, nil
}

func (r *customerRepo) GetPreference(ctx context.Context, id string) (*model.CustomerLanguagePreference, error) {
	customer, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &model.CustomerLanguagePreference{
		CustomerID:   customer.ID,
		LanguageCode: customer.LanguageCode,
		Confirmed:    customer.LanguageConfirmed,
	}, nil
}

// ConfirmLanguage persists the confirmed preference. The $set update is
// idempotent: repeating the call with the same code leaves the record as-is.
func (r *customerRepo) ConfirmLanguage(ctx context.Context, id string, code model.LanguageCode) error {
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{
		"$set": bson.M{
			"languageCode":      code,
			"languageConfirmed": true,
			"updatedAt":         time.Now(),
		},
	})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("customer %s: %w", id, ErrNotFound)
	}
	return nil
}
