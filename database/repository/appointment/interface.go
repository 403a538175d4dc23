// File: database/repository/appointment/interface.go
package appointmentRepo

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"roofline/database"
	"roofline/models"
	"roofline/utils"
)

// Filter narrows List calls. Zero values mean "no constraint".
type Filter struct {
	State    string
	DateFrom string // inclusive, lexicographic on the date string
	DateTo   string // exclusive
}

// AppointmentRepository is the booking index access contract. Writes are
// atomic request/response operations; a failed write leaves the store
// unchanged and the caller's local state must be rolled back by the
// caller, not here.
type AppointmentRepository interface {
	List(ctx context.Context, f Filter) ([]models.Appointment, error)
	GetByID(ctx context.Context, id string) (*models.Appointment, error)
	Create(ctx context.Context, appt *models.Appointment) error
	UpdateSummary(ctx context.Context, id, text string) error
	Delete(ctx context.Context, id string) error
}

type mongoAppointmentRepo struct {
	coll *mongo.Collection
}

// NewMongoAppointmentRepo constructs the MongoDB-backed repository.
func NewMongoAppointmentRepo() AppointmentRepository {
	db := database.MongoClient.Database(database.DBName)
	repo := &mongoAppointmentRepo{coll: db.Collection("appointments")}
	if err := repo.ensureIndexes(); err != nil {
		utils.GetLogger().Warn("appointment index bootstrap failed", zap.Error(err))
	}
	return repo
}
