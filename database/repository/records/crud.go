package recordsRepo

import (
	"context"
	"errors"

	"quickdrop/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// SaveBooking inserts or overwrites the record under its booking ID.
func (r *mongoRecordRepo) SaveBooking(ctx context.Context, record *models.BookingRecord) error {
	opts := options.Replace().SetUpsert(true)
	_, err := r.bookings.ReplaceOne(ctx, bson.M{"booking_id": record.BookingID}, record, opts)
	return err
}

// GetBooking returns the booking record for the given ID.
func (r *mongoRecordRepo) GetBooking(ctx context.Context, bookingID string) (*models.BookingRecord, error) {
	var record models.BookingRecord
	err := r.bookings.FindOne(ctx, bson.M{"booking_id": bookingID}).Decode(&record)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// UpdateJobStatus moves the booking's job status without touching the rest
// of the snapshot.
func (r *mongoRecordRepo) UpdateJobStatus(ctx context.Context, bookingID string, status models.JobStatus) error {
	res, err := r.bookings.UpdateOne(ctx,
		bson.M{"booking_id": bookingID},
		bson.M{"$set": bson.M{"job_status": status}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// SavePOD inserts or overwrites the proof-of-delivery under its booking ID.
func (r *mongoRecordRepo) SavePOD(ctx context.Context, pod *models.ProofOfDelivery) error {
	opts := options.Replace().SetUpsert(true)
	_, err := r.pods.ReplaceOne(ctx, bson.M{"booking_id": pod.BookingID}, pod, opts)
	return err
}

// GetPOD returns the proof-of-delivery for the given booking ID.
func (r *mongoRecordRepo) GetPOD(ctx context.Context, bookingID string) (*models.ProofOfDelivery, error) {
	var pod models.ProofOfDelivery
	err := r.pods.FindOne(ctx, bson.M{"booking_id": bookingID}).Decode(&pod)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &pod, nil
}
