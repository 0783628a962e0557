package usecases

import (
	"context"
	"fmt"
	"time"

	"github.com/spacebook/spacebook/internal/domain/notification"
	"github.com/spacebook/spacebook/internal/domain/reservation"
	"github.com/spacebook/spacebook/internal/domain/setting"
	"github.com/spacebook/spacebook/internal/domain/space"
	"github.com/spacebook/spacebook/internal/shared/biztime"
	"github.com/spacebook/spacebook/internal/shared/logger"
)

const reminderTimeLayout = "2006-01-02 15:04"

// ProcessRemindersUseCase sends one event_reminder per approved reservation
// that starts within the configured number of days.
type ProcessRemindersUseCase struct {
	resRepo   reservation.Repository
	spaceRepo space.Repository
	sink      notification.Sink
	settings  setting.Provider
	ledger    ReminderLedger
	logger    logger.Interface
	now       func() time.Time
}

func NewProcessRemindersUseCase(
	resRepo reservation.Repository,
	spaceRepo space.Repository,
	sink notification.Sink,
	settings setting.Provider,
	ledger ReminderLedger,
	logger logger.Interface,
) *ProcessRemindersUseCase {
	return &ProcessRemindersUseCase{
		resRepo:   resRepo,
		spaceRepo: spaceRepo,
		sink:      sink,
		settings:  settings,
		ledger:    ledger,
		logger:    logger,
		now:       biztime.NowUTC,
	}
}

// ProcessReminders runs one pass for the scheduler.
func (uc *ProcessRemindersUseCase) ProcessReminders(ctx context.Context) error {
	_, err := uc.Execute(ctx)
	return err
}

// Execute returns how many reminders were sent.
func (uc *ProcessRemindersUseCase) Execute(ctx context.Context) (int, error) {
	now := uc.now()
	days := uc.settings.GetInt(ctx, setting.KeyReminderDays, setting.DefaultReminderDays)
	if days <= 0 {
		return 0, nil
	}
	until := now.Add(time.Duration(days) * 24 * time.Hour)

	upcoming, err := uc.resRepo.FindUpcomingApproved(ctx, now, until)
	if err != nil {
		return 0, fmt.Errorf("failed to load upcoming reservations: %w", err)
	}

	sent := 0
	for _, r := range upcoming {
		// keep the mark until a day after the event has started
		ttl := r.Start().Sub(now) + 24*time.Hour
		first, err := uc.ledger.MarkSent(ctx, r.ID(), ttl)
		if err != nil {
			uc.logger.Warnw("reminder ledger unavailable, skipping", "reservation_id", r.ID(), "error", err)
			continue
		}
		if !first {
			continue
		}

		id := r.ID()
		err = uc.sink.Notify(ctx, notification.Message{
			UserID: r.UserID(),
			Type:   notification.TypeEventReminder,
			Title:  "Upcoming event reminder",
			Body: fmt.Sprintf("Your reservation for **%s** starts on %s.",
				uc.spaceName(ctx, r.SpaceID()),
				biztime.FormatInBizTimezone(r.Start(), reminderTimeLayout)),
			ReservationID: &id,
		})
		if err != nil {
			uc.logger.Warnw("failed to send reminder", "reservation_id", r.ID(), "error", err)
			continue
		}
		sent++
	}

	if sent > 0 {
		uc.logger.Infow("event reminders sent", "count", sent, "window_days", days)
	}
	return sent, nil
}

func (uc *ProcessRemindersUseCase) spaceName(ctx context.Context, id uint) string {
	s, err := uc.spaceRepo.GetByID(ctx, id)
	if err != nil {
		return fmt.Sprintf("space #%d", id)
	}
	return s.Name()
}
