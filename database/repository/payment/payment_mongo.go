package paymentRepo

import (
	"context"
	"errors"
	"fmt"

	"hotelier/models"
	"hotelier/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoPaymentRepo implements PaymentRepository using MongoDB.
type MongoPaymentRepo struct {
	coll *mongo.Collection
}

// NewMongoPaymentRepo creates the repository and makes sure its indexes exist.
// The unique index must be in place before any webhook is processed.
func NewMongoPaymentRepo(db *mongo.Database) (*MongoPaymentRepo, error) {
	repo := &MongoPaymentRepo{coll: db.Collection("payments")}
	if err := repo.ensureIndexes(); err != nil {
		return nil, err
	}
	return repo, nil
}

// InsertIfAbsent upserts with $setOnInsert keyed on the payment intent, so an
// existing record is never touched. Two concurrent upserts for the same key
// can race to the unique index; the loser gets a duplicate key error, which
// means the record exists.
func (r *MongoPaymentRepo) InsertIfAbsent(ctx context.Context, payment *models.Payment) (bool, error) {
	filter := bson.M{"paymentIntentId": payment.PaymentIntentID}
	update := bson.M{"$setOnInsert": payment}
	opts := options.Update().SetUpsert(true)

	result, err := r.coll.UpdateOne(ctx, filter, update, opts)
	if mongo.IsDuplicateKeyError(err) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to record payment %s: %w", payment.PaymentIntentID, err)
	}
	return result.UpsertedCount == 1, nil
}

// GetByIntentID retrieves a payment by its payment intent ID.
func (r *MongoPaymentRepo) GetByIntentID(ctx context.Context, intentID string) (*models.Payment, error) {
	var payment models.Payment
	err := r.coll.FindOne(ctx, bson.M{"paymentIntentId": intentID}).Decode(&payment)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, utils.NewNotFound("payment", intentID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch payment %s: %w", intentID, err)
	}
	return &payment, nil
}

// List returns payments sorted by creation time, newest first.
func (r *MongoPaymentRepo) List(ctx context.Context) ([]models.Payment, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}
	defer cursor.Close(ctx)

	payments := []models.Payment{}
	if err := cursor.All(ctx, &payments); err != nil {
		return nil, fmt.Errorf("failed to decode payments: %w", err)
	}
	return payments, nil
}
