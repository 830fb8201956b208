package booking

import (
	"context"
	"errors"
	"math/rand"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"

	recordsRepo "quickdrop/database/repository/records"
	"quickdrop/models"
	"quickdrop/services/catalog"
	"quickdrop/services/pricing"
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
	r.pods[pod.BookingID] = pod
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

type stubGateway struct {
	approved bool
	err      error
}

func (g *stubGateway) Charge(ctx context.Context, req models.PaymentRequest) (*models.PaymentResult, error) {
	if g.err != nil {
		return nil, g.err
	}
	return &models.PaymentResult{PaymentID: "stub", Approved: g.approved, ProcessedAt: time.Now()}, nil
}

type fakeNotifier struct {
	records []*models.BookingRecord
}

func (n *fakeNotifier) EnqueueBookingConfirmation(record *models.BookingRecord) {
	n.records = append(n.records, record)
}

func completeDeliveryDraft(sessionID string) *models.BookingDraft {
	cat := catalog.New()
	pkg, _ := cat.Package(models.ServiceTypeDelivery, "Medium Package")
	d := models.NewBookingDraft(sessionID)
	d.SelectedPackage = &pkg
	d.PickupAddress = "123 Warehouse Way, San Diego, CA"
	d.DeliveryAddress = "456 Home St, San Diego, CA"
	d.DateRequested = "2026-09-15"
	d.TimeWindow = "8 AM - 12 PM"
	d.PickupLocationType = models.PickupPrivateResidence
	d.OrderPaymentStatus = models.OrderPrePaid
	d.OrderConfirmationName = "Jordan Reyes"
	d.OrderReceiptNumber = "RCPT-1001"
	d.RecipientName = "Jordan Reyes"
	d.BookingItems = []models.BookingItem{{ID: "item-1", Name: "Dining Table"}}
	d.CustomerEmail = "jordan@example.com"
	d.CustomerPhone = "+16195550123"
	return d
}

func newTestCheckoutEngine(store DraftStore, records *fakeRecords, gateway PaymentGateway, notifier *fakeNotifier) *CheckoutEngine {
	cat := catalog.New()
	return &CheckoutEngine{
		Drafts:         store,
		Engine:         pricing.NewEngine(cat),
		Records:        records,
		Gateway:        gateway,
		OfflineGateway: gateway,
		Notifier:       notifier,
		Now:            func() time.Time { return time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC) },
	}
}

func TestValidateDraftOrder(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(d *models.BookingDraft)
		wantMsg string
	}{
		{"no package", func(d *models.BookingDraft) { d.SelectedPackage = nil }, "select a package"},
		{"no pickup address", func(d *models.BookingDraft) { d.PickupAddress = " " }, "Pickup address"},
		{"no delivery address", func(d *models.BookingDraft) { d.DeliveryAddress = "" }, "Delivery address"},
		{"no date", func(d *models.BookingDraft) { d.DateRequested = "" }, "date is required"},
		{"no time window", func(d *models.BookingDraft) { d.TimeWindow = "" }, "time window"},
		{"no pickup location type", func(d *models.BookingDraft) { d.PickupLocationType = "" }, "Pickup location type"},
		{"no order payment status", func(d *models.BookingDraft) { d.OrderPaymentStatus = "" }, "Order payment status"},
		{"no confirmation name", func(d *models.BookingDraft) { d.OrderConfirmationName = "" }, "Order confirmation name"},
		{"no receipt number", func(d *models.BookingDraft) { d.OrderReceiptNumber = "" }, "receipt number"},
		{"no recipient", func(d *models.BookingDraft) { d.RecipientName = "" }, "Recipient name"},
		{
			"store pickup needs store name",
			func(d *models.BookingDraft) { d.PickupLocationType = models.PickupStoreRetailer; d.StoreName = "" },
			"Store name",
		},
		{"no items", func(d *models.BookingDraft) { d.BookingItems = nil }, "at least one item"},
		{
			"unnamed item",
			func(d *models.BookingDraft) { d.BookingItems = []models.BookingItem{{ID: "x", Name: "  "}} },
			"needs a name",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := completeDeliveryDraft("s1")
			tt.mutate(d)
			err := ValidateDraft(d)
			if !IsValidation(err) {
				t.Fatalf("ValidateDraft() error = %v, want validation", err)
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("ValidateDraft() = %q, want it to mention %q", err.Error(), tt.wantMsg)
			}
		})
	}
}

func TestValidateDraftRemovalSkipsDeliveryFields(t *testing.T) {
	cat := catalog.New()
	pkg, _ := cat.Package(models.ServiceTypeRemoval, "Small Removal")
	d := models.NewBookingDraft("s1")
	d.ServiceType = models.ServiceTypeRemoval
	d.SelectedPackage = &pkg
	d.PickupAddress = "789 Curb Ave, San Diego, CA"
	d.DateRequested = "2026-09-20"
	d.TimeWindow = "12 PM - 4 PM"
	d.BookingItems = []models.BookingItem{{ID: "item-1", Name: "Old Sofa"}}

	if err := ValidateDraft(d); err != nil {
		t.Errorf("ValidateDraft(removal) error = %v, want nil", err)
	}
}

func TestCheckoutCardSuccess(t *testing.T) {
	ctx := context.Background()
	store := newMemoryDraftStore()
	records := newFakeRecords()
	notifier := &fakeNotifier{}
	engine := newTestCheckoutEngine(store, records, &stubGateway{approved: true}, notifier)

	draft := completeDeliveryDraft("s1")
	if err := store.Save(ctx, draft); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	result, err := engine.Checkout(ctx, "s1", models.PaymentMethodCard)
	if err != nil {
		t.Fatalf("Checkout() error = %v", err)
	}
	if result.State != models.CheckoutSucceeded {
		t.Fatalf("Checkout() state = %q, want %q", result.State, models.CheckoutSucceeded)
	}
	if !strings.HasPrefix(result.Booking.BookingID, "QDS-") {
		t.Errorf("booking ID = %q, want QDS- prefix", result.Booking.BookingID)
	}
	if result.Booking.PaymentStatus != models.PaymentPaid {
		t.Errorf("booking payment status = %q, want %q", result.Booking.PaymentStatus, models.PaymentPaid)
	}
	if result.Booking.JobStatus != models.JobScheduled {
		t.Errorf("booking job status = %q, want %q", result.Booking.JobStatus, models.JobScheduled)
	}
	if _, err := records.GetBooking(ctx, result.Booking.BookingID); err != nil {
		t.Errorf("booking record not persisted: %v", err)
	}
	if len(notifier.records) != 1 {
		t.Errorf("notifier called %d times, want 1", len(notifier.records))
	}

	stored, err := store.Get(ctx, "s1")
	if err != nil {
		t.Fatalf("Get() after checkout error = %v", err)
	}
	if stored.PaymentStatus != models.PaymentPaid || stored.BookingID != result.Booking.BookingID {
		t.Errorf("draft after success = {%q, %q}, want paid with the booking ID", stored.PaymentStatus, stored.BookingID)
	}
}

func TestCheckoutCardDeclined(t *testing.T) {
	ctx := context.Background()
	store := newMemoryDraftStore()
	records := newFakeRecords()
	notifier := &fakeNotifier{}
	engine := newTestCheckoutEngine(store, records, &stubGateway{approved: false}, notifier)

	draft := completeDeliveryDraft("s1")
	if err := store.Save(ctx, draft); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	result, err := engine.Checkout(ctx, "s1", models.PaymentMethodCard)
	if err != nil {
		t.Fatalf("Checkout() error = %v", err)
	}
	if result.State != models.CheckoutFailed {
		t.Fatalf("Checkout() state = %q, want %q", result.State, models.CheckoutFailed)
	}
	if result.Reason == "" {
		t.Error("declined checkout carries no reason")
	}
	if len(records.bookings) != 0 {
		t.Errorf("declined checkout persisted a booking: %+v", records.bookings)
	}
	if len(notifier.records) != 0 {
		t.Error("declined checkout queued notifications")
	}

	stored, err := store.Get(ctx, "s1")
	if err != nil {
		t.Fatalf("Get() after decline error = %v", err)
	}
	if stored.PaymentStatus != models.PaymentFailed {
		t.Errorf("draft payment status = %q, want %q", stored.PaymentStatus, models.PaymentFailed)
	}
	if stored.SelectedPackage == nil || len(stored.BookingItems) == 0 {
		t.Error("declined checkout wiped the draft's selections")
	}
}

func TestCheckoutValidationStopsBeforeCharge(t *testing.T) {
	ctx := context.Background()
	store := newMemoryDraftStore()
	engine := newTestCheckoutEngine(store, newFakeRecords(), &stubGateway{err: errors.New("gateway should not be reached")}, &fakeNotifier{})

	draft := completeDeliveryDraft("s1")
	draft.SelectedPackage = nil
	if err := store.Save(ctx, draft); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	if _, err := engine.Checkout(ctx, "s1", models.PaymentMethodCard); !IsValidation(err) {
		t.Errorf("Checkout(incomplete) error = %v, want validation", err)
	}
}

func TestCheckoutPeerTransferFlow(t *testing.T) {
	ctx := context.Background()
	store := newMemoryDraftStore()
	records := newFakeRecords()
	notifier := &fakeNotifier{}
	engine := newTestCheckoutEngine(store, records, &stubGateway{approved: true}, notifier)

	draft := completeDeliveryDraft("s1")
	if err := store.Save(ctx, draft); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	result, err := engine.Checkout(ctx, "s1", models.PaymentMethodPeerTransfer)
	if err != nil {
		t.Fatalf("Checkout() error = %v", err)
	}
	if result.State != models.CheckoutAwaitingOfflineConfirmation {
		t.Fatalf("Checkout() state = %q, want %q", result.State, models.CheckoutAwaitingOfflineConfirmation)
	}
	if len(records.bookings) != 0 {
		t.Error("peer transfer settled before confirmation")
	}

	confirmed, err := engine.ConfirmOfflinePayment(ctx, "s1")
	if err != nil {
		t.Fatalf("ConfirmOfflinePayment() error = %v", err)
	}
	if confirmed.State != models.CheckoutSucceeded {
		t.Errorf("ConfirmOfflinePayment() state = %q, want %q", confirmed.State, models.CheckoutSucceeded)
	}
	if len(notifier.records) != 1 {
		t.Errorf("notifier called %d times, want 1", len(notifier.records))
	}
}

func TestCheckoutUnknownMethod(t *testing.T) {
	ctx := context.Background()
	store := newMemoryDraftStore()
	engine := newTestCheckoutEngine(store, newFakeRecords(), &stubGateway{approved: true}, &fakeNotifier{})

	if err := store.Save(ctx, completeDeliveryDraft("s1")); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if _, err := engine.Checkout(ctx, "s1", "barter"); !IsValidation(err) {
		t.Errorf("Checkout(unknown method) error = %v, want validation", err)
	}
}

func TestResendNotifications(t *testing.T) {
	ctx := context.Background()
	records := newFakeRecords()
	notifier := &fakeNotifier{}
	engine := newTestCheckoutEngine(newMemoryDraftStore(), records, &stubGateway{approved: true}, notifier)

	record := models.NewBookingRecord(completeDeliveryDraft("s1"), "QDS-42", time.Now())
	if err := records.SaveBooking(ctx, record); err != nil {
		t.Fatalf("SaveBooking() error = %v", err)
	}

	if err := engine.ResendNotifications(ctx, "QDS-42"); err != nil {
		t.Fatalf("ResendNotifications() error = %v", err)
	}
	if len(notifier.records) != 1 {
		t.Errorf("notifier called %d times, want 1", len(notifier.records))
	}

	if err := engine.ResendNotifications(ctx, "QDS-404"); !IsNotFound(err) {
		t.Errorf("ResendNotifications(missing) error = %v, want not-found", err)
	}
}

func TestSimulatedGatewayOutcomes(t *testing.T) {
	logger := zap.NewNop()

	approveAll := NewSimulatedGateway(0, 1.0, rand.NewSource(1), logger)
	result, err := approveAll.Charge(context.Background(), models.PaymentRequest{SessionID: "s1", Amount: 100})
	if err != nil {
		t.Fatalf("Charge() error = %v", err)
	}
	if !result.Approved {
		t.Error("success rate 1.0 produced a decline")
	}

	declineAll := NewSimulatedGateway(0, 0.0, rand.NewSource(1), logger)
	result, err = declineAll.Charge(context.Background(), models.PaymentRequest{SessionID: "s1", Amount: 100})
	if err != nil {
		t.Fatalf("Charge() error = %v", err)
	}
	if result.Approved {
		t.Error("success rate 0.0 produced an approval")
	}
}

func TestSimulatedGatewayHonorsContext(t *testing.T) {
	gateway := NewSimulatedGateway(time.Hour, 1.0, rand.NewSource(1), zap.NewNop())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := gateway.Charge(ctx, models.PaymentRequest{SessionID: "s1"}); !errors.Is(err, context.Canceled) {
		t.Errorf("Charge(cancelled) error = %v, want context.Canceled", err)
	}
}
