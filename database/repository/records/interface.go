package recordsRepo

import (
	"context"
	"errors"

	"quickdrop/database"
	"quickdrop/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ErrNotFound is returned when no booking or POD exists for a booking ID.
// Callers must be able to tell a missing record apart from a lookup failure.
var ErrNotFound = errors.New("record not found")

// BookingRecordRepository persists confirmed bookings and their
// proof-of-delivery records, both keyed by booking ID. Writes are
// save-or-overwrite by key; there is no delete surface and no listing
// surface (any holder of a booking ID can read, nobody can enumerate).
type BookingRecordRepository interface {
	SaveBooking(ctx context.Context, record *models.BookingRecord) error
	GetBooking(ctx context.Context, bookingID string) (*models.BookingRecord, error)
	UpdateJobStatus(ctx context.Context, bookingID string, status models.JobStatus) error
	SavePOD(ctx context.Context, pod *models.ProofOfDelivery) error
	GetPOD(ctx context.Context, bookingID string) (*models.ProofOfDelivery, error)
}

type mongoRecordRepo struct {
	bookings *mongo.Collection
	pods     *mongo.Collection
}

// NewMongoRecordRepo returns a BookingRecordRepository backed by MongoDB.
func NewMongoRecordRepo() BookingRecordRepository {
	db := database.MongoClient.Database("quickdrop")
	return &mongoRecordRepo{
		bookings: db.Collection("bookings"),
		pods:     db.Collection("pods"),
	}
}
