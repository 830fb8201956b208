package pod

import (
	"context"
	"time"

	recordsRepo "quickdrop/database/repository/records"
	"quickdrop/models"
)

// DriverSubmission is everything the driver hands over when marking a job
// complete. All three proof artifacts are required; a submission is stored
// whole or not at all.
type DriverSubmission struct {
	PhotoURLs    []string         `json:"photoUrls"`
	SignatureURL string           `json:"signatureUrl"`
	Location     *models.GeoPoint `json:"location"`
}

// CustomerDecision is the customer's verdict on a driver-completed job.
// A dispute must carry a reason.
type CustomerDecision struct {
	Approved      bool   `json:"approved"`
	SignatureURL  string `json:"signatureUrl,omitempty"`
	DisputeReason string `json:"disputeReason,omitempty"`
}

// PODService drives the two-party proof-of-delivery protocol: the driver
// submits proof first, then the customer approves or disputes. Each step
// checks the booking's job status so the protocol cannot be replayed out of
// order.
type PODService interface {
	MarkInTransit(ctx context.Context, bookingID string) (*models.BookingRecord, error)
	EnsureDriverCompletionAllowed(ctx context.Context, bookingID string) error
	RecordDriverCompletion(ctx context.Context, bookingID string, sub DriverSubmission) (*models.ProofOfDelivery, error)
	RecordCustomerDecision(ctx context.Context, bookingID string, decision CustomerDecision) (*models.ProofOfDelivery, error)
	GetPOD(ctx context.Context, bookingID string) (*models.ProofOfDelivery, error)
}

// DefaultPODService implements PODService against the booking record store.
type DefaultPODService struct {
	Records recordsRepo.BookingRecordRepository

	// Now is injectable for deterministic approval timestamps in tests.
	Now func() time.Time
}

func (s *DefaultPODService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}
