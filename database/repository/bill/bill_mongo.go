package billRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"hotelier/models"
	"hotelier/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoBillRepo implements BillRepository using MongoDB.
type MongoBillRepo struct {
	coll *mongo.Collection
}

// NewMongoBillRepo creates the repository and makes sure its indexes exist.
func NewMongoBillRepo(db *mongo.Database) (*MongoBillRepo, error) {
	repo := &MongoBillRepo{coll: db.Collection("bills")}
	if err := repo.ensureIndexes(); err != nil {
		return nil, err
	}
	return repo, nil
}

// Create inserts a new bill document.
func (r *MongoBillRepo) Create(ctx context.Context, bill *models.Bill) error {
	if _, err := r.coll.InsertOne(ctx, bill); err != nil {
		return fmt.Errorf("failed to create bill: %w", err)
	}
	return nil
}

// GetByID retrieves a bill by its ID.
func (r *MongoBillRepo) GetByID(ctx context.Context, id string) (*models.Bill, error) {
	var bill models.Bill
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&bill)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, utils.NewNotFound("bill", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch bill with id %s: %w", id, err)
	}
	return &bill, nil
}

// List returns bills sorted by creation time, newest first.
func (r *MongoBillRepo) List(ctx context.Context, criteria BillSearchCriteria) ([]models.Bill, error) {
	filter := bson.M{}
	if criteria.BookingID != "" {
		filter["bookingId"] = criteria.BookingID
	}
	if criteria.UserID != "" {
		filter["userId"] = criteria.UserID
	}
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list bills: %w", err)
	}
	defer cursor.Close(ctx)

	bills := []models.Bill{}
	if err := cursor.All(ctx, &bills); err != nil {
		return nil, fmt.Errorf("failed to decode bills: %w", err)
	}
	return bills, nil
}

// UpdateFields sets the given fields and increments the version atomically.
func (r *MongoBillRepo) UpdateFields(ctx context.Context, id string, fields bson.M, expectedVersion *int64) (*models.Bill, error) {
	filter := bson.M{"id": id}
	if expectedVersion != nil {
		filter["version"] = *expectedVersion
	}

	set := bson.M{"updatedAt": time.Now()}
	for k, v := range fields {
		set[k] = v
	}
	update := bson.M{
		"$set": set,
		"$inc": bson.M{"version": 1},
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var bill models.Bill
	err := r.coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&bill)
	if errors.Is(err, mongo.ErrNoDocuments) {
		if expectedVersion == nil {
			return nil, utils.NewNotFound("bill", id)
		}
		return nil, r.versionMiss(ctx, id, *expectedVersion)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update bill with id %s: %w", id, err)
	}
	return &bill, nil
}

// versionMiss tells a missing bill apart from a stale version.
func (r *MongoBillRepo) versionMiss(ctx context.Context, id string, expected int64) error {
	n, err := r.coll.CountDocuments(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to check bill %s: %w", id, err)
	}
	if n == 0 {
		return utils.NewNotFound("bill", id)
	}
	return utils.NewConflict(fmt.Sprintf("bill %s was modified since version %d", id, expected))
}

// Delete removes a bill document by its ID.
func (r *MongoBillRepo) Delete(ctx context.Context, id string) error {
	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete bill with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return utils.NewNotFound("bill", id)
	}
	return nil
}
