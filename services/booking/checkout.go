package booking

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	recordsRepo "quickdrop/database/repository/records"
	"quickdrop/models"
	"quickdrop/services/pricing"
	"quickdrop/utils"
)

// ConfirmationNotifier dispatches post-payment confirmations. Enqueueing is
// fire-and-forget: a notification failure never fails a paid checkout.
type ConfirmationNotifier interface {
	EnqueueBookingConfirmation(record *models.BookingRecord)
}

// CheckoutResult reports the terminal state of a checkout attempt. A declined
// charge is a result, not an error.
type CheckoutResult struct {
	State   models.CheckoutState  `json:"state"`
	Booking *models.BookingRecord `json:"booking,omitempty"`
	Reason  string                `json:"reason,omitempty"`
}

// CheckoutEngine runs the validate-charge-persist-notify pipeline. Card
// payments settle through Gateway; peer transfers pause for an explicit
// confirmation and then settle through OfflineGateway.
type CheckoutEngine struct {
	Drafts         DraftStore
	Engine         *pricing.Engine
	Records        recordsRepo.BookingRecordRepository
	Gateway        PaymentGateway
	OfflineGateway PaymentGateway
	Notifier       ConfirmationNotifier

	// Now is injectable for deterministic booking IDs in tests.
	Now func() time.Time
}

func (e *CheckoutEngine) now() time.Time {
	if e.Now != nil {
		return e.Now()
	}
	return time.Now()
}

// Checkout validates the session's draft and, for card payments, charges it
// immediately. Peer transfers return awaiting_offline_confirmation without
// touching the draft; the charge happens in ConfirmOfflinePayment.
func (e *CheckoutEngine) Checkout(ctx context.Context, sessionID string, method models.PaymentMethod) (*CheckoutResult, error) {
	draft, err := e.Drafts.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if err := ValidateDraft(draft); err != nil {
		return nil, err
	}

	switch method {
	case models.PaymentMethodCard:
		return e.settle(ctx, draft, method, e.Gateway)
	case models.PaymentMethodPeerTransfer:
		return &CheckoutResult{State: models.CheckoutAwaitingOfflineConfirmation}, nil
	default:
		return nil, NewValidationError(fmt.Sprintf("unknown payment method %q", method))
	}
}

// ConfirmOfflinePayment completes a peer-transfer checkout after the customer
// reports the transfer as sent. The draft is re-validated because it may have
// changed while awaiting confirmation.
func (e *CheckoutEngine) ConfirmOfflinePayment(ctx context.Context, sessionID string) (*CheckoutResult, error) {
	draft, err := e.Drafts.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if err := ValidateDraft(draft); err != nil {
		return nil, err
	}
	return e.settle(ctx, draft, models.PaymentMethodPeerTransfer, e.OfflineGateway)
}

// settle charges the draft total and, on approval, persists the booking
// record and queues confirmations. On a decline the draft keeps its selections
// with paymentStatus=Failed so the customer can retry.
func (e *CheckoutEngine) settle(ctx context.Context, draft *models.BookingDraft, method models.PaymentMethod, gateway PaymentGateway) (*CheckoutResult, error) {
	logger := utils.GetLogger().With(zap.String("session", draft.SessionID))

	// The charge amount is always re-derived from the stored draft.
	draft.TotalPrice = e.Engine.TotalOf(draft)

	result, err := gateway.Charge(ctx, models.PaymentRequest{
		SessionID:   draft.SessionID,
		Amount:      draft.TotalPrice,
		Currency:    "usd",
		Method:      method,
		Description: fmt.Sprintf("QuickDrop %s booking", draft.ServiceType),
		Metadata:    map[string]string{"session_id": draft.SessionID},
	})
	if err != nil {
		return nil, fmt.Errorf("payment gateway unavailable: %w", err)
	}

	if !result.Approved {
		draft.PaymentStatus = models.PaymentFailed
		if err := e.Drafts.Save(ctx, draft); err != nil {
			return nil, err
		}
		logger.Info("payment declined", zap.String("payment_id", result.PaymentID))
		return &CheckoutResult{
			State:  models.CheckoutFailed,
			Reason: "Payment failed. Please try again or use a different payment method.",
		}, nil
	}

	bookingID := fmt.Sprintf("QDS-%d", e.now().UnixMilli())
	record := models.NewBookingRecord(draft, bookingID, e.now())
	if err := e.Records.SaveBooking(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to persist booking %s: %w", bookingID, err)
	}

	draft.PaymentStatus = models.PaymentPaid
	draft.JobStatus = models.JobScheduled
	draft.BookingID = bookingID
	if err := e.Drafts.Save(ctx, draft); err != nil {
		logger.Warn("paid booking persisted but draft update failed", zap.Error(err))
	}

	if e.Notifier != nil {
		e.Notifier.EnqueueBookingConfirmation(record)
	}
	logger.Info("checkout succeeded",
		zap.String("booking_id", bookingID),
		zap.String("payment_id", result.PaymentID),
		zap.Float64("amount", draft.TotalPrice),
	)
	return &CheckoutResult{State: models.CheckoutSucceeded, Booking: record}, nil
}

// ResendNotifications re-queues the confirmation email and SMS for a paid
// booking.
func (e *CheckoutEngine) ResendNotifications(ctx context.Context, bookingID string) error {
	record, err := e.Records.GetBooking(ctx, bookingID)
	if errors.Is(err, recordsRepo.ErrNotFound) {
		return NewNotFoundError(fmt.Sprintf("booking %s not found", bookingID))
	}
	if err != nil {
		return err
	}
	if e.Notifier == nil {
		return NewValidationError("notifications are not configured")
	}
	e.Notifier.EnqueueBookingConfirmation(record)
	return nil
}

// ValidateDraft checks that a draft is complete enough to pay for. Checks run
// in funnel order so the first failure points at the earliest unfinished step.
func ValidateDraft(d *models.BookingDraft) error {
	if d.SelectedPackage == nil {
		return NewValidationError("Please select a package before checking out.")
	}
	if strings.TrimSpace(d.PickupAddress) == "" {
		return NewValidationError("Pickup address is required.")
	}
	if d.ServiceType == models.ServiceTypeDelivery && strings.TrimSpace(d.DeliveryAddress) == "" {
		return NewValidationError("Delivery address is required.")
	}
	if strings.TrimSpace(d.DateRequested) == "" {
		return NewValidationError("A requested date is required.")
	}
	if strings.TrimSpace(d.TimeWindow) == "" {
		return NewValidationError("A time window is required.")
	}
	if d.ServiceType == models.ServiceTypeDelivery {
		if d.PickupLocationType == "" {
			return NewValidationError("Pickup location type is required.")
		}
		if d.OrderPaymentStatus == "" {
			return NewValidationError("Order payment status is required.")
		}
		if strings.TrimSpace(d.OrderConfirmationName) == "" {
			return NewValidationError("Order confirmation name is required.")
		}
		if strings.TrimSpace(d.OrderReceiptNumber) == "" {
			return NewValidationError("Order or receipt number is required.")
		}
		if strings.TrimSpace(d.RecipientName) == "" {
			return NewValidationError("Recipient name is required.")
		}
		if d.PickupLocationType == models.PickupStoreRetailer && strings.TrimSpace(d.StoreName) == "" {
			return NewValidationError("Store name is required for store or retailer pickups.")
		}
	}
	if len(d.BookingItems) == 0 {
		return NewValidationError("Add at least one item to your booking.")
	}
	for _, item := range d.BookingItems {
		if strings.TrimSpace(item.Name) == "" {
			return NewValidationError("Every item needs a name.")
		}
	}
	return nil
}
