package usecases

import (
	"context"

	"github.com/spacebook/spacebook/internal/shared/db"
	apperrors "github.com/spacebook/spacebook/internal/shared/errors"
	"github.com/spacebook/spacebook/internal/shared/logger"
)

// bookingWriter runs reservation writes. Every write is one transaction;
// writes that can create or revive a calendar slot also hold the space
// lock around that transaction.
type bookingWriter struct {
	locker SpaceLocker
	tx     TransactionRunner
	logger logger.Interface
}

func newBookingWriter(locker SpaceLocker, tx TransactionRunner, log logger.Interface) *bookingWriter {
	return &bookingWriter{locker: locker, tx: tx, logger: log}
}

// InTx runs fn in a transaction and runs it once more when the first
// attempt was aborted by lock contention. fn must not keep state between
// attempts.
func (w *bookingWriter) InTx(ctx context.Context, fn func(ctx context.Context) error) error {
	err := w.tx.RunInTransaction(ctx, fn)
	if !db.IsRetryable(err) {
		return err
	}
	w.logger.Warnw("transaction aborted, retrying once", "error", err)
	err = w.tx.RunInTransaction(ctx, fn)
	if db.IsRetryable(err) {
		w.logger.Warnw("transaction aborted twice", "error", err)
		return apperrors.NewConflictError(msgConcurrentWriters, "retry_exhausted")
	}
	return err
}

// Locked holds the space lock while running fn through InTx.
func (w *bookingWriter) Locked(ctx context.Context, spaceID uint, fn func(ctx context.Context) error) error {
	release, err := w.locker.Acquire(ctx, spaceID)
	if err != nil {
		w.logger.Warnw("space lock not acquired", "space_id", spaceID, "error", err)
		return apperrors.NewConflictError(msgConcurrentWriters, "lock_timeout")
	}
	defer release()
	return w.InTx(ctx, fn)
}
