package notification

import (
	"encoding/json"
	"time"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"

	"quickdrop/models"
	"quickdrop/utils"
)

const (
	// TypeConfirmationEmail carries a full booking record snapshot so the
	// worker can render the receipt without a database round trip.
	TypeConfirmationEmail = "notification:email"
	// TypeConfirmationSMS carries only the phone number and booking ID.
	TypeConfirmationSMS = "notification:sms"
)

// EmailPayload is the queued form of a confirmation email task.
type EmailPayload struct {
	Record *models.BookingRecord `json:"record"`
}

// SMSPayload is the queued form of a confirmation SMS task.
type SMSPayload struct {
	Phone     string `json:"phone"`
	BookingID string `json:"bookingId"`
}

// Dispatcher enqueues confirmation tasks onto the async queue. Enqueueing is
// fire-and-forget; failures are logged and never surfaced to the checkout
// path that triggered them.
type Dispatcher struct {
	client *asynq.Client
}

// NewDispatcher wraps an asynq client for confirmation dispatch.
func NewDispatcher(client *asynq.Client) *Dispatcher {
	return &Dispatcher{client: client}
}

// EnqueueBookingConfirmation queues the confirmation email and SMS for a paid
// booking. Channels without a customer address on file are skipped.
func (d *Dispatcher) EnqueueBookingConfirmation(record *models.BookingRecord) {
	logger := utils.GetLogger().With(zap.String("booking_id", record.BookingID))

	if record.CustomerEmail != "" {
		payload, err := json.Marshal(EmailPayload{Record: record})
		if err != nil {
			logger.Error("failed to marshal email payload", zap.Error(err))
		} else {
			d.enqueue(logger, asynq.NewTask(TypeConfirmationEmail, payload))
		}
	} else {
		logger.Warn("no customer email on booking, skipping email confirmation")
	}

	if record.CustomerPhone != "" {
		payload, err := json.Marshal(SMSPayload{Phone: record.CustomerPhone, BookingID: record.BookingID})
		if err != nil {
			logger.Error("failed to marshal SMS payload", zap.Error(err))
		} else {
			d.enqueue(logger, asynq.NewTask(TypeConfirmationSMS, payload))
		}
	} else {
		logger.Warn("no customer phone on booking, skipping SMS confirmation")
	}
}

func (d *Dispatcher) enqueue(logger *zap.Logger, task *asynq.Task) {
	info, err := d.client.Enqueue(task,
		asynq.MaxRetry(5),
		asynq.Timeout(30*time.Second),
	)
	if err != nil {
		logger.Error("failed to enqueue notification task",
			zap.String("type", task.Type()), zap.Error(err))
		return
	}
	logger.Info("notification task enqueued",
		zap.String("type", task.Type()), zap.String("task_id", info.ID))
}
