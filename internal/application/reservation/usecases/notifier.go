package usecases

import (
	"context"
	"fmt"

	"github.com/spacebook/spacebook/internal/domain/notification"
	"github.com/spacebook/spacebook/internal/domain/reservation"
	"github.com/spacebook/spacebook/internal/domain/space"
	"github.com/spacebook/spacebook/internal/domain/user"
	"github.com/spacebook/spacebook/internal/shared/authorization"
	"github.com/spacebook/spacebook/internal/shared/biztime"
	"github.com/spacebook/spacebook/internal/shared/logger"
)

const notificationTimeLayout = "2006-01-02 15:04"

// lifecycleNotifier composes the messages sent on reservation transitions.
// Delivery is best effort: failures are logged and dropped.
type lifecycleNotifier struct {
	sink   notification.Sink
	users  user.Directory
	spaces space.Repository
	logger logger.Interface
}

func newLifecycleNotifier(sink notification.Sink, users user.Directory, spaces space.Repository, log logger.Interface) *lifecycleNotifier {
	return &lifecycleNotifier{sink: sink, users: users, spaces: spaces, logger: log}
}

func (n *lifecycleNotifier) Created(ctx context.Context, r *reservation.Reservation, spaceName string) {
	when := describePeriod(r)
	n.send(ctx, notification.Message{
		UserID: r.UserID(),
		Type:   notification.TypeRequestReceived,
		Title:  "Reservation request received",
		Body: fmt.Sprintf("Your request for **%s** on %s was received and is pending review.",
			spaceName, when),
		ReservationID: idPtr(r),
	})

	staff, err := n.users.FindActiveByRoles(ctx, authorization.StaffRoles()...)
	if err != nil {
		n.logger.Warnw("failed to load staff for notification", "reservation_id", r.ID(), "error", err)
		return
	}
	for _, u := range staff {
		n.send(ctx, notification.Message{
			UserID: u.ID(),
			Type:   notification.TypeNewRequestAdmin,
			Title:  "New reservation request",
			Body: fmt.Sprintf("A new request for **%s** on %s (%s, %d attendees) is waiting for review.",
				spaceName, when, r.Category(), r.Attendees()),
			ReservationID: idPtr(r),
		})
	}
}

func (n *lifecycleNotifier) Approved(ctx context.Context, r *reservation.Reservation) {
	n.send(ctx, notification.Message{
		UserID:        r.UserID(),
		Type:          notification.TypeRequestApproved,
		Title:         "Reservation approved",
		Body:          fmt.Sprintf("Your reservation for **%s** on %s was approved.", n.spaceName(ctx, r), describePeriod(r)),
		ReservationID: idPtr(r),
	})
}

func (n *lifecycleNotifier) Rejected(ctx context.Context, r *reservation.Reservation) {
	reason := ""
	if r.RejectionReason() != nil {
		reason = *r.RejectionReason()
	}
	n.send(ctx, notification.Message{
		UserID: r.UserID(),
		Type:   notification.TypeRequestRejected,
		Title:  "Reservation rejected",
		Body: fmt.Sprintf("Your reservation for **%s** on %s was rejected.\n\nReason: %s",
			n.spaceName(ctx, r), describePeriod(r), reason),
		ReservationID: idPtr(r),
	})
}

func (n *lifecycleNotifier) send(ctx context.Context, msg notification.Message) {
	if n.sink == nil {
		return
	}
	if err := n.sink.Notify(ctx, msg); err != nil {
		n.logger.Warnw("failed to deliver notification",
			"user_id", msg.UserID,
			"type", msg.Type,
			"error", err)
	}
}

func (n *lifecycleNotifier) spaceName(ctx context.Context, r *reservation.Reservation) string {
	s, err := n.spaces.GetByID(ctx, r.SpaceID())
	if err != nil {
		return fmt.Sprintf("space #%d", r.SpaceID())
	}
	return s.Name()
}

func describePeriod(r *reservation.Reservation) string {
	return fmt.Sprintf("%s to %s",
		biztime.FormatInBizTimezone(r.Start(), notificationTimeLayout),
		biztime.FormatInBizTimezone(r.End(), notificationTimeLayout))
}

func idPtr(r *reservation.Reservation) *uint {
	id := r.ID()
	return &id
}
