package tracking

import (
	"context"
	"errors"
	"fmt"

	recordsRepo "quickdrop/database/repository/records"
	"quickdrop/models"
)

// ErrNotFound is returned when no booking exists for the given tracking
// number. A missing proof-of-delivery record is normal before the driver
// phase and never causes a lookup failure.
var ErrNotFound = errors.New("booking not found")

// Service answers public tracking queries by booking ID.
type Service struct {
	Records recordsRepo.BookingRecordRepository
}

// NewService returns a tracking service over the booking record store.
func NewService(records recordsRepo.BookingRecordRepository) *Service {
	return &Service{Records: records}
}

// Track returns the booking, its proof-of-delivery if one exists, and a
// customer-facing status line derived from the job status.
func (s *Service) Track(ctx context.Context, bookingID string) (*models.TrackingView, error) {
	record, err := s.Records.GetBooking(ctx, bookingID)
	if errors.Is(err, recordsRepo.ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	proof, err := s.Records.GetPOD(ctx, bookingID)
	if err != nil && !errors.Is(err, recordsRepo.ErrNotFound) {
		return nil, err
	}

	return &models.TrackingView{
		Booking:    record,
		POD:        proof,
		StatusText: statusText(record, proof),
	}, nil
}

// statusText mirrors the wording shown on the customer tracking page.
func statusText(record *models.BookingRecord, proof *models.ProofOfDelivery) string {
	switch record.JobStatus {
	case models.JobCompleted, models.JobCustomerApproved:
		completionDate := "recently"
		if proof != nil && proof.ApprovalTimestamp != nil {
			completionDate = proof.ApprovalTimestamp.Format("1/2/2006")
		}
		return fmt.Sprintf("Job Completed on %s.", completionDate)
	case models.JobDriverApproved:
		return "Driver has completed the job. Awaiting your final approval."
	case models.JobDisputed:
		return "Job Disputed. A representative will contact you shortly."
	case models.JobScheduled:
		return fmt.Sprintf("Scheduled for %s (%s).", record.DateRequested, record.TimeWindow)
	case models.JobInTransit:
		if proof != nil && proof.DriverLocation != nil {
			return fmt.Sprintf("Driver is en route and nearing the delivery area. Last updated: %s.",
				proof.DriverLocation.Timestamp.Format("3:04:05 PM"))
		}
		return "Driver is in transit. Expected within your selected time window."
	default:
		return "Status unknown. Please contact support if you need further assistance."
	}
}
