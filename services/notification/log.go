package notification

import (
	"context"

	"go.uber.org/zap"

	"quickdrop/config"
	"quickdrop/models"
	"quickdrop/utils"
)

// LogNotificationService renders the full confirmation messages and emits
// them as log lines instead of calling a mail or SMS provider.
type LogNotificationService struct{}

// NewLogNotificationService returns the simulated notification channel.
func NewLogNotificationService() NotificationService {
	return &LogNotificationService{}
}

func (s *LogNotificationService) SendBookingConfirmationEmail(ctx context.Context, record *models.BookingRecord) error {
	logger := utils.GetLogger()
	if record.CustomerEmail == "" || record.BookingID == "" {
		logger.Warn("skipping email send: missing customer email or booking ID",
			zap.String("booking_id", record.BookingID))
		return nil
	}

	logger.Info("simulated email sent",
		zap.String("to", record.CustomerEmail),
		zap.String("bcc", config.AppConfig.ContactEmail),
		zap.String("subject", ConfirmationEmailSubject(record.BookingID)),
		zap.String("body", ConfirmationEmailBody(record)),
	)
	return nil
}

func (s *LogNotificationService) SendBookingConfirmationSMS(ctx context.Context, phone, bookingID string) error {
	logger := utils.GetLogger()
	if phone == "" || bookingID == "" {
		logger.Warn("skipping SMS send: missing customer phone or booking ID",
			zap.String("booking_id", bookingID))
		return nil
	}

	logger.Info("simulated SMS sent",
		zap.String("to", phone),
		zap.String("message", ConfirmationSMSBody(bookingID)),
	)
	return nil
}
