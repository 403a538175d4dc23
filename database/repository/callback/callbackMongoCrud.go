// File: database/repository/callback/callbackMongoCrud.go
package callbackRepo

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"roofline/models"
)

// ErrNotFound is returned when no callback matches the given id.
var ErrNotFound = errors.New("callback not found")

func (r *mongoCallbackRepo) List(ctx context.Context, status string) ([]models.Callback, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{}
	if status != "" {
		filter["status"] = status
	}
	cursor, err := r.coll.Find(ctx, filter,
		options.Find().SetSort(bson.D{{Key: "callback_date", Value: 1}, {Key: "callback_time", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var callbacks []models.Callback
	if err := cursor.All(ctx, &callbacks); err != nil {
		return nil, err
	}
	return callbacks, nil
}

func (r *mongoCallbackRepo) Create(ctx context.Context, cb *models.Callback) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if cb.ID == "" {
		cb.ID = uuid.New().String()
	}
	if cb.Status == "" {
		cb.Status = models.CallbackPending
	}
	if cb.CreatedAt.IsZero() {
		cb.CreatedAt = time.Now().UTC()
	}
	_, err := r.coll.InsertOne(ctx, cb)
	return err
}

func (r *mongoCallbackRepo) UpdateStatus(ctx context.Context, id, status string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": bson.M{"status": status}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *mongoCallbackRepo) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
