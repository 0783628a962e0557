package usecases

import (
	"context"
	"fmt"
	"time"

	"github.com/spacebook/spacebook/internal/domain/reservation"
	vo "github.com/spacebook/spacebook/internal/domain/reservation/valueobjects"
)

func appendHistory(
	ctx context.Context,
	repo reservation.HistoryRepository,
	r *reservation.Reservation,
	action vo.HistoryAction,
	actorID uint,
	details map[string]any,
	note string,
) error {
	entry, err := reservation.NewHistoryEntry(r.ID(), action, actorID, details, note)
	if err != nil {
		return err
	}
	if err := repo.Append(ctx, entry); err != nil {
		return fmt.Errorf("failed to append %s history entry: %w", action, err)
	}
	return nil
}

func periodDetails(p vo.TimeRange) map[string]any {
	return map[string]any{
		"start": p.Start().UTC().Format(time.RFC3339),
		"end":   p.End().UTC().Format(time.RFC3339),
	}
}
