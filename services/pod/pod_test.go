package pod

import (
	"context"
	"testing"
	"time"

	recordsRepo "quickdrop/database/repository/records"
	"quickdrop/models"
)

type fakeRecords struct {
	bookings map[string]*models.BookingRecord
	pods     map[string]*models.ProofOfDelivery
}

func newFakeRecords() *fakeRecords {
	return &fakeRecords{
		bookings: make(map[string]*models.BookingRecord),
		pods:     make(map[string]*models.ProofOfDelivery),
	}
}

func (r *fakeRecords) SaveBooking(ctx context.Context, record *models.BookingRecord) error {
	r.bookings[record.BookingID] = record
	return nil
}

func (r *fakeRecords) GetBooking(ctx context.Context, bookingID string) (*models.BookingRecord, error) {
	record, ok := r.bookings[bookingID]
	if !ok {
		return nil, recordsRepo.ErrNotFound
	}
	copied := *record
	return &copied, nil
}

func (r *fakeRecords) UpdateJobStatus(ctx context.Context, bookingID string, status models.JobStatus) error {
	record, ok := r.bookings[bookingID]
	if !ok {
		return recordsRepo.ErrNotFound
	}
	record.JobStatus = status
	return nil
}

func (r *fakeRecords) SavePOD(ctx context.Context, pod *models.ProofOfDelivery) error {
	copied := *pod
	r.pods[pod.BookingID] = &copied
	return nil
}

func (r *fakeRecords) GetPOD(ctx context.Context, bookingID string) (*models.ProofOfDelivery, error) {
	pod, ok := r.pods[bookingID]
	if !ok {
		return nil, recordsRepo.ErrNotFound
	}
	copied := *pod
	return &copied, nil
}

func seedBooking(r *fakeRecords, bookingID string, status models.JobStatus) {
	draft := models.NewBookingDraft("session-" + bookingID)
	record := models.NewBookingRecord(draft, bookingID, time.Now())
	record.JobStatus = status
	r.bookings[bookingID] = record
}

func newTestService(r *fakeRecords) *DefaultPODService {
	return &DefaultPODService{
		Records: r,
		Now:     func() time.Time { return time.Date(2026, 9, 1, 15, 30, 0, 0, time.UTC) },
	}
}

func validSubmission() DriverSubmission {
	return DriverSubmission{
		PhotoURLs:    []string{"https://cdn.example.com/pod/QDS-1/photos/1.jpg"},
		SignatureURL: "https://cdn.example.com/pod/QDS-1/signatures/driver.png",
		Location:     &models.GeoPoint{Latitude: 32.7157, Longitude: -117.1611, Timestamp: time.Now()},
	}
}

func TestMarkInTransit(t *testing.T) {
	ctx := context.Background()
	records := newFakeRecords()
	seedBooking(records, "QDS-1", models.JobScheduled)
	s := newTestService(records)

	record, err := s.MarkInTransit(ctx, "QDS-1")
	if err != nil {
		t.Fatalf("MarkInTransit() error = %v", err)
	}
	if record.JobStatus != models.JobInTransit {
		t.Errorf("returned status = %q, want %q", record.JobStatus, models.JobInTransit)
	}
	if records.bookings["QDS-1"].JobStatus != models.JobInTransit {
		t.Errorf("stored status = %q, want %q", records.bookings["QDS-1"].JobStatus, models.JobInTransit)
	}
}

func TestMarkInTransitWrongState(t *testing.T) {
	ctx := context.Background()
	for _, status := range []models.JobStatus{models.JobInTransit, models.JobDriverApproved, models.JobCompleted, models.JobDisputed} {
		records := newFakeRecords()
		seedBooking(records, "QDS-1", status)
		s := newTestService(records)

		if _, err := s.MarkInTransit(ctx, "QDS-1"); !IsValidation(err) {
			t.Errorf("MarkInTransit(from %q) error = %v, want validation", status, err)
		}
	}
}

func TestMarkInTransitMissingBooking(t *testing.T) {
	s := newTestService(newFakeRecords())
	if _, err := s.MarkInTransit(context.Background(), "QDS-404"); !IsNotFound(err) {
		t.Errorf("MarkInTransit(missing) error = %v, want not-found", err)
	}
}

func TestRecordDriverCompletion(t *testing.T) {
	ctx := context.Background()
	records := newFakeRecords()
	seedBooking(records, "QDS-1", models.JobInTransit)
	s := newTestService(records)

	proof, err := s.RecordDriverCompletion(ctx, "QDS-1", validSubmission())
	if err != nil {
		t.Fatalf("RecordDriverCompletion() error = %v", err)
	}
	if !proof.DriverApproved {
		t.Error("proof not marked driver approved")
	}
	if proof.CustomerApproved {
		t.Error("fresh proof already customer approved")
	}
	if records.bookings["QDS-1"].JobStatus != models.JobDriverApproved {
		t.Errorf("job status = %q, want %q", records.bookings["QDS-1"].JobStatus, models.JobDriverApproved)
	}
}

func TestRecordDriverCompletionRejectsIncompleteProof(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name   string
		mutate func(sub *DriverSubmission)
	}{
		{"no photos", func(sub *DriverSubmission) { sub.PhotoURLs = nil }},
		{"no signature", func(sub *DriverSubmission) { sub.SignatureURL = "  " }},
		{"no location", func(sub *DriverSubmission) { sub.Location = nil }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records := newFakeRecords()
			seedBooking(records, "QDS-1", models.JobInTransit)
			s := newTestService(records)

			sub := validSubmission()
			tt.mutate(&sub)
			if _, err := s.RecordDriverCompletion(ctx, "QDS-1", sub); !IsValidation(err) {
				t.Fatalf("RecordDriverCompletion() error = %v, want validation", err)
			}
			if len(records.pods) != 0 {
				t.Error("rejected submission left a partial proof behind")
			}
			if records.bookings["QDS-1"].JobStatus != models.JobInTransit {
				t.Error("rejected submission advanced the job status")
			}
		})
	}
}

func TestRecordDriverCompletionFinalizedBooking(t *testing.T) {
	ctx := context.Background()
	for _, status := range []models.JobStatus{models.JobCompleted, models.JobDisputed} {
		records := newFakeRecords()
		seedBooking(records, "QDS-1", status)
		s := newTestService(records)

		if _, err := s.RecordDriverCompletion(ctx, "QDS-1", validSubmission()); !IsValidation(err) {
			t.Errorf("RecordDriverCompletion(on %q) error = %v, want validation", status, err)
		}
	}
}

func TestRecordCustomerApproval(t *testing.T) {
	ctx := context.Background()
	records := newFakeRecords()
	seedBooking(records, "QDS-1", models.JobInTransit)
	s := newTestService(records)

	if _, err := s.RecordDriverCompletion(ctx, "QDS-1", validSubmission()); err != nil {
		t.Fatalf("RecordDriverCompletion() error = %v", err)
	}

	proof, err := s.RecordCustomerDecision(ctx, "QDS-1", CustomerDecision{Approved: true})
	if err != nil {
		t.Fatalf("RecordCustomerDecision() error = %v", err)
	}
	if !proof.CustomerApproved {
		t.Error("proof not marked customer approved")
	}
	if proof.ApprovalTimestamp == nil {
		t.Fatal("approval timestamp not set")
	}
	if records.bookings["QDS-1"].JobStatus != models.JobCompleted {
		t.Errorf("job status = %q, want %q", records.bookings["QDS-1"].JobStatus, models.JobCompleted)
	}
}

func TestRecordCustomerApprovalIdempotent(t *testing.T) {
	ctx := context.Background()
	records := newFakeRecords()
	seedBooking(records, "QDS-1", models.JobInTransit)

	firstClock := time.Date(2026, 9, 1, 15, 30, 0, 0, time.UTC)
	s := &DefaultPODService{Records: records, Now: func() time.Time { return firstClock }}

	if _, err := s.RecordDriverCompletion(ctx, "QDS-1", validSubmission()); err != nil {
		t.Fatalf("RecordDriverCompletion() error = %v", err)
	}
	first, err := s.RecordCustomerDecision(ctx, "QDS-1", CustomerDecision{Approved: true})
	if err != nil {
		t.Fatalf("RecordCustomerDecision() error = %v", err)
	}

	// A later re-approval must not move the recorded timestamp.
	s.Now = func() time.Time { return firstClock.Add(2 * time.Hour) }
	second, err := s.RecordCustomerDecision(ctx, "QDS-1", CustomerDecision{Approved: true})
	if err != nil {
		t.Fatalf("RecordCustomerDecision(again) error = %v", err)
	}
	if !second.ApprovalTimestamp.Equal(*first.ApprovalTimestamp) {
		t.Errorf("re-approval moved the timestamp from %v to %v", first.ApprovalTimestamp, second.ApprovalTimestamp)
	}
}

func TestRecordCustomerDisputeAfterApproval(t *testing.T) {
	ctx := context.Background()
	records := newFakeRecords()
	seedBooking(records, "QDS-1", models.JobInTransit)
	s := newTestService(records)

	if _, err := s.RecordDriverCompletion(ctx, "QDS-1", validSubmission()); err != nil {
		t.Fatalf("RecordDriverCompletion() error = %v", err)
	}
	if _, err := s.RecordCustomerDecision(ctx, "QDS-1", CustomerDecision{Approved: true}); err != nil {
		t.Fatalf("RecordCustomerDecision(approve) error = %v", err)
	}

	if _, err := s.RecordCustomerDecision(ctx, "QDS-1", CustomerDecision{
		Approved:      false,
		DisputeReason: "Changed my mind",
	}); !IsValidation(err) {
		t.Fatalf("RecordCustomerDecision(dispute after approval) error = %v, want validation", err)
	}
	if !records.pods["QDS-1"].CustomerApproved {
		t.Error("late dispute revoked the customer approval")
	}
	if records.bookings["QDS-1"].JobStatus != models.JobCompleted {
		t.Errorf("job status = %q, want %q", records.bookings["QDS-1"].JobStatus, models.JobCompleted)
	}
}

func TestRecordCustomerDecisionOnDisputedJob(t *testing.T) {
	ctx := context.Background()
	records := newFakeRecords()
	seedBooking(records, "QDS-1", models.JobInTransit)
	s := newTestService(records)

	if _, err := s.RecordDriverCompletion(ctx, "QDS-1", validSubmission()); err != nil {
		t.Fatalf("RecordDriverCompletion() error = %v", err)
	}
	if _, err := s.RecordCustomerDecision(ctx, "QDS-1", CustomerDecision{
		Approved:      false,
		DisputeReason: "Wrong item delivered",
	}); err != nil {
		t.Fatalf("RecordCustomerDecision(dispute) error = %v", err)
	}

	if _, err := s.RecordCustomerDecision(ctx, "QDS-1", CustomerDecision{
		Approved:      false,
		DisputeReason: "Still the wrong item",
	}); !IsValidation(err) {
		t.Errorf("re-dispute error = %v, want validation", err)
	}
	if _, err := s.RecordCustomerDecision(ctx, "QDS-1", CustomerDecision{Approved: true}); !IsValidation(err) {
		t.Errorf("approval after dispute error = %v, want validation", err)
	}
	if records.pods["QDS-1"].DisputeReason != "Wrong item delivered" {
		t.Errorf("dispute reason = %q, want the original one kept", records.pods["QDS-1"].DisputeReason)
	}
}

func TestEnsureDriverCompletionAllowed(t *testing.T) {
	ctx := context.Background()
	records := newFakeRecords()
	seedBooking(records, "QDS-1", models.JobCompleted)
	seedBooking(records, "QDS-2", models.JobInTransit)
	s := newTestService(records)

	if err := s.EnsureDriverCompletionAllowed(ctx, "QDS-1"); !IsValidation(err) {
		t.Errorf("EnsureDriverCompletionAllowed(completed) error = %v, want validation", err)
	}
	if err := s.EnsureDriverCompletionAllowed(ctx, "QDS-404"); !IsNotFound(err) {
		t.Errorf("EnsureDriverCompletionAllowed(missing) error = %v, want not-found", err)
	}
	if err := s.EnsureDriverCompletionAllowed(ctx, "QDS-2"); err != nil {
		t.Errorf("EnsureDriverCompletionAllowed(open) error = %v", err)
	}
}

func TestRecordCustomerDispute(t *testing.T) {
	ctx := context.Background()
	records := newFakeRecords()
	seedBooking(records, "QDS-1", models.JobInTransit)
	s := newTestService(records)

	if _, err := s.RecordDriverCompletion(ctx, "QDS-1", validSubmission()); err != nil {
		t.Fatalf("RecordDriverCompletion() error = %v", err)
	}

	proof, err := s.RecordCustomerDecision(ctx, "QDS-1", CustomerDecision{
		Approved:      false,
		DisputeReason: "Wrong item delivered",
	})
	if err != nil {
		t.Fatalf("RecordCustomerDecision() error = %v", err)
	}
	if proof.CustomerApproved {
		t.Error("disputed proof marked customer approved")
	}
	if proof.DisputeReason != "Wrong item delivered" {
		t.Errorf("dispute reason = %q, want it persisted", proof.DisputeReason)
	}
	if records.bookings["QDS-1"].JobStatus != models.JobDisputed {
		t.Errorf("job status = %q, want %q", records.bookings["QDS-1"].JobStatus, models.JobDisputed)
	}
}

func TestRecordCustomerDisputeRequiresReason(t *testing.T) {
	ctx := context.Background()
	records := newFakeRecords()
	seedBooking(records, "QDS-1", models.JobInTransit)
	s := newTestService(records)

	if _, err := s.RecordDriverCompletion(ctx, "QDS-1", validSubmission()); err != nil {
		t.Fatalf("RecordDriverCompletion() error = %v", err)
	}
	if _, err := s.RecordCustomerDecision(ctx, "QDS-1", CustomerDecision{Approved: false, DisputeReason: "  "}); !IsValidation(err) {
		t.Errorf("RecordCustomerDecision(blank reason) error = %v, want validation", err)
	}
}

func TestRecordCustomerDecisionBeforeDriver(t *testing.T) {
	ctx := context.Background()
	records := newFakeRecords()
	seedBooking(records, "QDS-1", models.JobInTransit)
	s := newTestService(records)

	if _, err := s.RecordCustomerDecision(ctx, "QDS-1", CustomerDecision{Approved: true}); !IsNotFound(err) {
		t.Errorf("RecordCustomerDecision(no proof) error = %v, want not-found", err)
	}
}
