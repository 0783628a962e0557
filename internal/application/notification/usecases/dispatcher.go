package usecases

import (
	"context"
	"fmt"

	"github.com/spacebook/spacebook/internal/application/notification/dto"
	"github.com/spacebook/spacebook/internal/domain/notification"
	"github.com/spacebook/spacebook/internal/domain/user"
	"github.com/spacebook/spacebook/internal/shared/goroutine"
	"github.com/spacebook/spacebook/internal/shared/logger"
)

// Dispatcher stores in-app notifications and mirrors them by email when a
// sender is configured. Email goes out in the background; its failures are
// only logged.
type Dispatcher struct {
	repo     notification.Repository
	users    user.Directory
	email    EmailSender
	markdown dto.MarkdownService
	logger   logger.Interface
	async    bool
}

func NewDispatcher(
	repo notification.Repository,
	users user.Directory,
	email EmailSender,
	markdown dto.MarkdownService,
	logger logger.Interface,
) *Dispatcher {
	return &Dispatcher{
		repo:     repo,
		users:    users,
		email:    email,
		markdown: markdown,
		logger:   logger,
		async:    true,
	}
}

// Notify implements notification.Sink.
func (d *Dispatcher) Notify(ctx context.Context, msg notification.Message) error {
	n, err := notification.NewNotification(msg.UserID, msg.Type, msg.Title, msg.Body, msg.ReservationID)
	if err != nil {
		return fmt.Errorf("invalid notification: %w", err)
	}
	if err := d.repo.Create(ctx, n); err != nil {
		return fmt.Errorf("failed to store notification: %w", err)
	}

	if d.email == nil {
		return nil
	}
	u, err := d.users.GetByID(ctx, msg.UserID)
	if err != nil {
		d.logger.Warnw("notification email skipped, user lookup failed", "user_id", msg.UserID, "error", err)
		return nil
	}
	if u.Email() == "" {
		return nil
	}

	to := u.Email()
	send := func() { d.sendEmail(to, msg) }
	if d.async {
		goroutine.SafeGo(d.logger, "notification-email", send)
	} else {
		send()
	}
	return nil
}

func (d *Dispatcher) sendEmail(to string, msg notification.Message) {
	html := msg.Body
	if d.markdown != nil {
		if out, err := d.markdown.ToHTML(msg.Body); err == nil {
			html = out
		} else {
			d.logger.Warnw("failed to render notification body", "error", err)
		}
	}
	if err := d.email.SendNotificationEmail(to, msg.Title, html, msg.Body); err != nil {
		d.logger.Warnw("failed to send notification email",
			"user_id", msg.UserID,
			"type", msg.Type,
			"error", err)
		return
	}
	d.logger.Debugw("notification email sent", "user_id", msg.UserID, "type", msg.Type)
}
