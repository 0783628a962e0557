package usecases

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spacebook/spacebook/internal/domain/notification"
	"github.com/spacebook/spacebook/internal/domain/reservation"
	vo "github.com/spacebook/spacebook/internal/domain/reservation/valueobjects"
	"github.com/spacebook/spacebook/internal/domain/setting"
	"github.com/spacebook/spacebook/internal/infrastructure/lock"
	"github.com/spacebook/spacebook/internal/shared/authorization"
	apperrors "github.com/spacebook/spacebook/internal/shared/errors"
)

func TestCreateReservation_Scenarios(t *testing.T) {
	h := newHarness(t)
	uc := h.createUseCase()
	ctx := context.Background()

	a, err := uc.Execute(ctx, validCommand(10, 12))
	require.NoError(t, err)
	assert.Equal(t, "pending", a.Status)
	assert.True(t, a.IsActive)

	_, err = uc.Execute(ctx, validCommand(11, 13))
	require.Error(t, err)
	assert.True(t, apperrors.IsConflictError(err))
	assert.Equal(t, reservation.MsgSpaceAlreadyBooked, apperrors.GetAppError(err).Message)
	assert.Equal(t, string(reservation.RuleOverlap), apperrors.GetAppError(err).Details)

	c, err := uc.Execute(ctx, validCommand(12, 14))
	require.NoError(t, err)
	assert.NotEqual(t, a.ID, c.ID)

	assert.Equal(t, 2, h.res.count())
	assert.Equal(t, []vo.HistoryAction{vo.ActionCreated}, h.history.actions(a.ID))
	assert.Equal(t, 1, h.metrics.rejected[reservation.RuleOverlap])
	assert.Equal(t, 2, h.metrics.admitted)
}

func TestCreateReservation_LocksSpaceRowInsideTransaction(t *testing.T) {
	h := newHarness(t)
	h.mustCreate(t, 10, 12)

	assert.Equal(t, 1, h.spaces.lockCalls)
	assert.Equal(t, 1, h.tx.calls)
}

func TestCreateReservation_Notifications(t *testing.T) {
	h := newHarness(t)
	id := h.mustCreate(t, 10, 12)

	assert.Equal(t, []notification.Type{
		notification.TypeRequestReceived,
		notification.TypeNewRequestAdmin,
		notification.TypeNewRequestAdmin,
	}, h.sink.types())
	assert.Equal(t, requesterID, h.sink.messages[0].UserID)
	assert.Equal(t, adminID, h.sink.messages[1].UserID)
	assert.Equal(t, operatorID, h.sink.messages[2].UserID)
	require.NotNil(t, h.sink.messages[0].ReservationID)
	assert.Equal(t, id, *h.sink.messages[0].ReservationID)
	assert.Contains(t, h.sink.messages[0].Body, "Auditorium")
}

func TestCreateReservation_NotificationFailureDoesNotFail(t *testing.T) {
	h := newHarness(t)
	h.sink.err = errors.New("smtp down")

	_, err := h.createUseCase().Execute(context.Background(), validCommand(10, 12))

	require.NoError(t, err)
	assert.Equal(t, 1, h.res.count())
}

func TestCreateReservation_RejectedAndInactiveDoNotBlock(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	first := h.mustCreate(t, 10, 12)
	_, err := h.rejectUseCase().Execute(ctx, admin, first, "room double booked")
	require.NoError(t, err)

	second := h.mustCreate(t, 10, 12)
	_, err = h.deactivateUseCase().Execute(ctx, admin, second, "")
	require.NoError(t, err)

	h.mustCreate(t, 11, 13)
}

func TestCreateReservation_RetriesOnceOnLockContention(t *testing.T) {
	h := newHarness(t)
	h.tx.failures = []error{errors.New("database is locked")}

	out, err := h.createUseCase().Execute(context.Background(), validCommand(10, 12))

	require.NoError(t, err)
	assert.NotZero(t, out.ID)
	assert.Equal(t, 2, h.tx.calls)
	assert.Equal(t, 1, h.res.count())
}

func TestCreateReservation_SecondAbortIsConflict(t *testing.T) {
	h := newHarness(t)
	h.tx.failures = []error{errors.New("database is locked"), errors.New("database is locked")}

	_, err := h.createUseCase().Execute(context.Background(), validCommand(10, 12))

	require.Error(t, err)
	assert.True(t, apperrors.IsConflictError(err))
	assert.Equal(t, "retry_exhausted", apperrors.GetAppError(err).Details)
	assert.Equal(t, 0, h.res.count())
}

func TestCreateReservation_LockTimeoutIsConflict(t *testing.T) {
	h := newHarness(t)
	h.locker = failingLocker{err: lock.ErrLockTimeout}

	_, err := h.createUseCase().Execute(context.Background(), validCommand(10, 12))

	require.Error(t, err)
	assert.True(t, apperrors.IsConflictError(err))
	assert.Equal(t, "lock_timeout", apperrors.GetAppError(err).Details)
	assert.Equal(t, 0, h.tx.calls)
}

func TestCreateReservation_StorageFailureIsInternal(t *testing.T) {
	h := newHarness(t)
	h.res.CreateErr = errors.New("connection reset")

	_, err := h.createUseCase().Execute(context.Background(), validCommand(10, 12))

	require.Error(t, err)
	appErr := apperrors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, apperrors.ErrorTypeInternal, appErr.Type)
	assert.NotContains(t, appErr.Message, "connection reset")
}

func TestCreateReservation_ConcurrentOverlappingRequests(t *testing.T) {
	h := newHarness(t)
	uc := h.createUseCase()

	const workers = 12
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		succeeded int
		conflicts int
	)
	start := make(chan struct{})
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(offset int) {
			defer wg.Done()
			<-start
			cmd := validCommand(10, 12)
			cmd.Start = cmd.Start.Add(time.Duration(offset) * time.Minute)
			cmd.End = cmd.End.Add(time.Duration(offset) * time.Minute)
			_, err := uc.Execute(context.Background(), cmd)

			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				succeeded++
			case apperrors.IsConflictError(err):
				conflicts++
			}
		}(i)
	}
	close(start)
	wg.Wait()

	assert.Equal(t, 1, succeeded)
	assert.Equal(t, workers-1, conflicts)
	assert.Equal(t, 1, h.res.count())
}

func TestApproveReservation(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	id := h.mustCreate(t, 10, 12)

	out, err := h.approveUseCase().Execute(ctx, operator, id, "")

	require.NoError(t, err)
	assert.Equal(t, "approved", out.Status)
	assert.Nil(t, out.RejectionReason)
	require.NotNil(t, out.ApprovedBy)
	assert.Equal(t, operatorID, *out.ApprovedBy)
	assert.Equal(t, []vo.HistoryAction{vo.ActionCreated, vo.ActionApproved}, h.history.actions(id))

	last := h.sink.messages[len(h.sink.messages)-1]
	assert.Equal(t, notification.TypeRequestApproved, last.Type)
	assert.Equal(t, requesterID, last.UserID)
}

func TestApproveReservation_Errors(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	id := h.mustCreate(t, 10, 12)

	_, err := h.approveUseCase().Execute(ctx, requester, id, "")
	assert.True(t, apperrors.IsForbiddenError(err))

	_, err = h.approveUseCase().Execute(ctx, admin, 404, "")
	assert.True(t, apperrors.IsNotFoundError(err))

	_, err = h.approveUseCase().Execute(ctx, admin, id, "")
	require.NoError(t, err)
	_, err = h.approveUseCase().Execute(ctx, admin, id, "")
	require.Error(t, err)
	assert.True(t, apperrors.IsValidationError(err))
	assert.Equal(t, msgNotPending, apperrors.GetAppError(err).Message)
	assert.Equal(t, []vo.HistoryAction{vo.ActionCreated, vo.ActionApproved}, h.history.actions(id))
}

func TestRejectReservation(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	id := h.mustCreate(t, 10, 12)

	out, err := h.rejectUseCase().Execute(ctx, admin, id, "<b>space</b> is closed that day")

	require.NoError(t, err)
	assert.Equal(t, "rejected", out.Status)
	require.NotNil(t, out.RejectionReason)
	assert.Equal(t, "space is closed that day", *out.RejectionReason)
	assert.Equal(t, []vo.HistoryAction{vo.ActionCreated, vo.ActionRejected}, h.history.actions(id))

	last := h.sink.messages[len(h.sink.messages)-1]
	assert.Equal(t, notification.TypeRequestRejected, last.Type)
	assert.Contains(t, last.Body, "space is closed that day")
}

func TestRejectReservation_RequiresReason(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	id := h.mustCreate(t, 10, 12)
	calls := h.tx.calls

	for _, reason := range []string{"", "   ", "<i></i>"} {
		_, err := h.rejectUseCase().Execute(ctx, admin, id, reason)
		require.Error(t, err)
		assert.True(t, apperrors.IsValidationError(err))
		assert.Equal(t, reservation.ErrRejectionReasonRequired.Error(), apperrors.GetAppError(err).Message)
	}

	r, err := h.res.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, vo.StatusPending, r.Status())
	assert.Equal(t, calls, h.tx.calls)
	assert.Equal(t, []vo.HistoryAction{vo.ActionCreated}, h.history.actions(id))
}

func TestCancelReservation(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	id := h.mustCreate(t, 10, 12)
	sent := len(h.sink.messages)

	out, err := h.cancelUseCase().Execute(ctx, requester, id)

	require.NoError(t, err)
	assert.Equal(t, "rejected", out.Status)
	require.NotNil(t, out.RejectionReason)
	assert.Equal(t, reservation.CancellationReason, *out.RejectionReason)
	require.NotNil(t, out.CancelledBy)
	assert.Equal(t, requesterID, *out.CancelledBy)
	assert.Len(t, h.sink.messages, sent)

	_, err = h.cancelUseCase().Execute(ctx, requester, id)
	require.Error(t, err)
	assert.True(t, apperrors.IsValidationError(err))
	assert.Equal(t, msgCancelNotPending, apperrors.GetAppError(err).Message)
	assert.Equal(t, []vo.HistoryAction{vo.ActionCreated, vo.ActionCancelled}, h.history.actions(id))
}

func TestCancelReservation_OwnerOnly(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	id := h.mustCreate(t, 10, 12)

	_, err := h.cancelUseCase().Execute(ctx, otherUser, id)
	assert.True(t, apperrors.IsForbiddenError(err))

	_, err = h.cancelUseCase().Execute(ctx, admin, id)
	assert.True(t, apperrors.IsForbiddenError(err))

	r, err := h.res.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, vo.StatusPending, r.Status())
}

func TestCancelReservation_ApprovedIsNotCancellable(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	id := h.mustCreate(t, 10, 12)
	_, err := h.approveUseCase().Execute(ctx, admin, id, "")
	require.NoError(t, err)

	_, err = h.cancelUseCase().Execute(ctx, requester, id)

	require.Error(t, err)
	assert.Equal(t, msgCancelNotPending, apperrors.GetAppError(err).Message)
}

func TestDeactivateReservation_Idempotent(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	id := h.mustCreate(t, 10, 12)

	for i := 0; i < 2; i++ {
		out, err := h.deactivateUseCase().Execute(ctx, admin, id, "")
		require.NoError(t, err)
		assert.False(t, out.IsActive)
	}

	assert.Equal(t, []vo.HistoryAction{vo.ActionCreated, vo.ActionDeactivated}, h.history.actions(id))

	for _, actor := range []authorization.Principal{requester, operator} {
		_, err := h.deactivateUseCase().Execute(ctx, actor, id, "")
		assert.True(t, apperrors.IsForbiddenError(err), actor.Role)
	}
}

func TestReactivateReservation(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	id := h.mustCreate(t, 10, 12)
	_, err := h.deactivateUseCase().Execute(ctx, admin, id, "")
	require.NoError(t, err)

	out, err := h.reactivateUseCase().Execute(ctx, admin, id, "restored after review")

	require.NoError(t, err)
	assert.True(t, out.IsActive)
	assert.Equal(t, []vo.HistoryAction{vo.ActionCreated, vo.ActionDeactivated, vo.ActionReactivated}, h.history.actions(id))

	// already active: nothing recorded
	_, err = h.reactivateUseCase().Execute(ctx, admin, id, "")
	require.NoError(t, err)
	assert.Len(t, h.history.actions(id), 3)
}

func TestReactivateReservation_OverlapIsConflict(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	first := h.mustCreate(t, 10, 12)
	_, err := h.deactivateUseCase().Execute(ctx, admin, first, "")
	require.NoError(t, err)
	h.mustCreate(t, 11, 13)

	_, err = h.reactivateUseCase().Execute(ctx, admin, first, "")

	require.Error(t, err)
	assert.True(t, apperrors.IsConflictError(err))
	r, err := h.res.GetByID(ctx, first)
	require.NoError(t, err)
	assert.False(t, r.IsActive())
}

func TestReactivateReservation_RejectedSkipsOverlapCheck(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	first := h.mustCreate(t, 10, 12)
	_, err := h.rejectUseCase().Execute(ctx, admin, first, "duplicate")
	require.NoError(t, err)
	_, err = h.deactivateUseCase().Execute(ctx, admin, first, "")
	require.NoError(t, err)
	h.mustCreate(t, 10, 12)

	out, err := h.reactivateUseCase().Execute(ctx, admin, first, "")

	require.NoError(t, err)
	assert.True(t, out.IsActive)
	assert.Equal(t, "rejected", out.Status)
}

func TestUpdateReservation_Reschedule(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	id := h.mustCreate(t, 10, 12)
	start, end := eventAt(14), eventAt(16)

	out, err := h.updateUseCase().Execute(ctx, admin, id, UpdateReservationCommand{
		Start: &start,
		End:   &end,
		Note:  "moved to the afternoon",
	})

	require.NoError(t, err)
	assert.Equal(t, start, out.Start)
	assert.Equal(t, end, out.End)

	entries, err := h.history.ListByReservation(ctx, id)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	modified := entries[1]
	assert.Equal(t, vo.ActionModified, modified.Action())
	assert.Equal(t, "moved to the afternoon", modified.Note())
	assert.Contains(t, modified.Details(), "period")
	assert.NotContains(t, modified.Details(), "attendees")
}

func TestUpdateReservation_OverlapExcludesItself(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	id := h.mustCreate(t, 10, 12)
	h.mustCreate(t, 14, 16)

	end := eventAt(13)
	_, err := h.updateUseCase().Execute(ctx, admin, id, UpdateReservationCommand{End: &end})
	require.NoError(t, err)

	end = eventAt(15)
	_, err = h.updateUseCase().Execute(ctx, admin, id, UpdateReservationCommand{End: &end})
	require.Error(t, err)
	assert.True(t, apperrors.IsConflictError(err))

	r, err := h.res.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, eventAt(13), r.End())
}

func TestUpdateReservation_LeadTimeOnlyWhenStartMoves(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	id := h.mustCreate(t, 10, 12)
	h.settings.ints = map[string]int{setting.KeyMinLeadDays: 10}

	attendees := 30
	out, err := h.updateUseCase().Execute(ctx, admin, id, UpdateReservationCommand{Attendees: &attendees})
	require.NoError(t, err)
	assert.Equal(t, 30, out.Attendees)

	start := eventAt(9)
	_, err = h.updateUseCase().Execute(ctx, admin, id, UpdateReservationCommand{Start: &start})
	require.Error(t, err)
	assert.Equal(t, string(reservation.RuleLeadTime), apperrors.GetAppError(err).Details)
}

func TestUpdateReservation_Validation(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	id := h.mustCreate(t, 10, 12)

	category := "party"
	_, err := h.updateUseCase().Execute(ctx, requester, id, UpdateReservationCommand{Category: &category})
	assert.True(t, apperrors.IsForbiddenError(err))

	_, err = h.updateUseCase().Execute(ctx, admin, id, UpdateReservationCommand{Category: &category})
	require.Error(t, err)
	assert.Equal(t, "invalid event type", apperrors.GetAppError(err).Message)

	over := 500
	_, err = h.updateUseCase().Execute(ctx, admin, id, UpdateReservationCommand{Attendees: &over})
	require.Error(t, err)
	assert.Equal(t, string(reservation.RuleSpaceAvailability), apperrors.GetAppError(err).Details)

	_, err = h.cancelUseCase().Execute(ctx, requester, id)
	require.NoError(t, err)
	sports := "sports"
	_, err = h.updateUseCase().Execute(ctx, admin, id, UpdateReservationCommand{Category: &sports})
	require.Error(t, err)
	assert.Equal(t, reservation.ErrNotEditable.Error(), apperrors.GetAppError(err).Message)
}

func TestUpdateReservation_DocumentsOnly(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	id := h.mustCreate(t, 10, 12)

	docs := []string{"permit.pdf", " permit.pdf ", "plan.pdf"}
	out, err := h.updateUseCase().Execute(ctx, admin, id, UpdateReservationCommand{Documents: &docs})

	require.NoError(t, err)
	assert.Equal(t, []string{"permit.pdf", "plan.pdf"}, out.Documents)
	assert.Equal(t, []vo.HistoryAction{vo.ActionCreated, vo.ActionModified}, h.history.actions(id))

	_, err = h.updateUseCase().Execute(ctx, admin, id, UpdateReservationCommand{Documents: &docs})
	require.NoError(t, err)
	assert.Len(t, h.history.actions(id), 2)
}
