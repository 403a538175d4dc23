// File: database/repository/callback/interface.go
package callbackRepo

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"

	"roofline/database"
	"roofline/models"
)

// CallbackRepository is the callback-tracker access contract.
type CallbackRepository interface {
	List(ctx context.Context, status string) ([]models.Callback, error)
	Create(ctx context.Context, cb *models.Callback) error
	UpdateStatus(ctx context.Context, id, status string) error
	Delete(ctx context.Context, id string) error
}

type mongoCallbackRepo struct {
	coll *mongo.Collection
}

// NewMongoCallbackRepo constructs the MongoDB-backed repository.
func NewMongoCallbackRepo() CallbackRepository {
	db := database.MongoClient.Database(database.DBName)
	return &mongoCallbackRepo{coll: db.Collection("callbacks")}
}
