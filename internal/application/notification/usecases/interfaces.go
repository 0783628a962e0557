package usecases

import (
	"context"
	"time"
)

// EmailSender delivers one notification email.
type EmailSender interface {
	SendNotificationEmail(to, subject, htmlBody, plainBody string) error
}

// ReminderLedger remembers which reservations already got a reminder.
// MarkSent reports false when the reservation was marked before.
type ReminderLedger interface {
	MarkSent(ctx context.Context, reservationID uint, ttl time.Duration) (bool, error)
}
