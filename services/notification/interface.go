package notification

import (
	"context"

	"quickdrop/models"
)

// NotificationService delivers booking confirmations to the customer. The
// channel implementations are simulated; delivery is a structured log line
// shaped like the real message.
type NotificationService interface {
	SendBookingConfirmationEmail(ctx context.Context, record *models.BookingRecord) error
	SendBookingConfirmationSMS(ctx context.Context, phone, bookingID string) error
}
