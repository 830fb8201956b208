package pod

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	recordsRepo "quickdrop/database/repository/records"
	"quickdrop/models"
	"quickdrop/utils"
)

// MarkInTransit moves a scheduled booking into transit. Only the Scheduled
// state may transition here.
func (s *DefaultPODService) MarkInTransit(ctx context.Context, bookingID string) (*models.BookingRecord, error) {
	record, err := s.getBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if record.JobStatus != models.JobScheduled {
		return nil, NewValidationError(fmt.Sprintf("booking %s is %s, not %s", bookingID, record.JobStatus, models.JobScheduled))
	}
	if err := s.Records.UpdateJobStatus(ctx, bookingID, models.JobInTransit); err != nil {
		return nil, err
	}
	record.JobStatus = models.JobInTransit
	utils.GetLogger().Info("booking in transit", zap.String("booking_id", bookingID))
	return record, nil
}

// EnsureDriverCompletionAllowed reports whether a booking can still accept a
// driver proof submission. Callers check it before uploading proof artifacts
// so a rejected submission leaves nothing behind in storage.
func (s *DefaultPODService) EnsureDriverCompletionAllowed(ctx context.Context, bookingID string) error {
	record, err := s.getBooking(ctx, bookingID)
	if err != nil {
		return err
	}
	if record.JobStatus == models.JobCompleted || record.JobStatus == models.JobDisputed {
		return NewValidationError(fmt.Sprintf("booking %s is already %s", bookingID, record.JobStatus))
	}
	return nil
}

// RecordDriverCompletion stores the driver's proof bundle and advances the
// booking to Driver Approved. The bundle is validated before anything is
// written; a rejected submission leaves no partial proof behind.
func (s *DefaultPODService) RecordDriverCompletion(ctx context.Context, bookingID string, sub DriverSubmission) (*models.ProofOfDelivery, error) {
	if err := s.EnsureDriverCompletionAllowed(ctx, bookingID); err != nil {
		return nil, err
	}
	if len(sub.PhotoURLs) == 0 {
		return nil, NewValidationError("at least one delivery photo is required")
	}
	if strings.TrimSpace(sub.SignatureURL) == "" {
		return nil, NewValidationError("driver signature is required")
	}
	if sub.Location == nil {
		return nil, NewValidationError("driver location is required")
	}

	proof := &models.ProofOfDelivery{
		BookingID:          bookingID,
		DriverApproved:     true,
		PhotoURLs:          sub.PhotoURLs,
		DriverSignatureURL: sub.SignatureURL,
		DriverLocation:     sub.Location,
		CreatedAt:          s.now(),
	}
	if err := s.Records.SavePOD(ctx, proof); err != nil {
		return nil, err
	}
	if err := s.Records.UpdateJobStatus(ctx, bookingID, models.JobDriverApproved); err != nil {
		return nil, err
	}
	utils.GetLogger().Info("driver completion recorded",
		zap.String("booking_id", bookingID),
		zap.Int("photos", len(sub.PhotoURLs)),
	)
	return proof, nil
}

// RecordCustomerDecision resolves a driver-approved job. Approval is
// idempotent: re-approving a completed job returns the stored proof with its
// original timestamp. A dispute requires a reason and marks the job Disputed.
// Completed and Disputed are terminal; once either is reached the only call
// still accepted is a repeat approval of an approved job.
func (s *DefaultPODService) RecordCustomerDecision(ctx context.Context, bookingID string, decision CustomerDecision) (*models.ProofOfDelivery, error) {
	record, err := s.getBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	proof, err := s.GetPOD(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if !proof.DriverApproved {
		return nil, NewValidationError("driver has not completed this job yet")
	}
	if record.JobStatus == models.JobCompleted || record.JobStatus == models.JobCustomerApproved || record.JobStatus == models.JobDisputed {
		if decision.Approved && proof.CustomerApproved {
			return proof, nil
		}
		return nil, NewValidationError(fmt.Sprintf("booking %s is already %s", bookingID, record.JobStatus))
	}

	if decision.Approved {
		now := s.now()
		proof.CustomerApproved = true
		proof.ApprovalTimestamp = &now
		proof.DisputeReason = ""
		if decision.SignatureURL != "" {
			proof.CustomerSignatureURL = decision.SignatureURL
		}
		if err := s.Records.SavePOD(ctx, proof); err != nil {
			return nil, err
		}
		if err := s.Records.UpdateJobStatus(ctx, bookingID, models.JobCompleted); err != nil {
			return nil, err
		}
		utils.GetLogger().Info("customer approved delivery", zap.String("booking_id", bookingID))
		return proof, nil
	}

	if strings.TrimSpace(decision.DisputeReason) == "" {
		return nil, NewValidationError("a dispute reason is required")
	}
	proof.CustomerApproved = false
	proof.ApprovalTimestamp = nil
	proof.DisputeReason = decision.DisputeReason
	if err := s.Records.SavePOD(ctx, proof); err != nil {
		return nil, err
	}
	if err := s.Records.UpdateJobStatus(ctx, bookingID, models.JobDisputed); err != nil {
		return nil, err
	}
	utils.GetLogger().Warn("customer disputed delivery",
		zap.String("booking_id", bookingID),
		zap.String("reason", decision.DisputeReason),
	)
	return proof, nil
}

// GetPOD returns the proof-of-delivery record for a booking.
func (s *DefaultPODService) GetPOD(ctx context.Context, bookingID string) (*models.ProofOfDelivery, error) {
	proof, err := s.Records.GetPOD(ctx, bookingID)
	if errors.Is(err, recordsRepo.ErrNotFound) {
		return nil, NewNotFoundError(fmt.Sprintf("no proof of delivery for booking %s", bookingID))
	}
	if err != nil {
		return nil, err
	}
	return proof, nil
}

func (s *DefaultPODService) getBooking(ctx context.Context, bookingID string) (*models.BookingRecord, error) {
	record, err := s.Records.GetBooking(ctx, bookingID)
	if errors.Is(err, recordsRepo.ErrNotFound) {
		return nil, NewNotFoundError(fmt.Sprintf("booking %s not found", bookingID))
	}
	if err != nil {
		return nil, err
	}
	return record, nil
}
