package usecases

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spacebook/spacebook/internal/domain/reservation"
	vo "github.com/spacebook/spacebook/internal/domain/reservation/valueobjects"
	"github.com/spacebook/spacebook/internal/domain/setting"
	"github.com/spacebook/spacebook/internal/domain/space"
	"github.com/spacebook/spacebook/internal/domain/user"
	"github.com/spacebook/spacebook/internal/shared/biztime"
	apperrors "github.com/spacebook/spacebook/internal/shared/errors"
	"github.com/spacebook/spacebook/internal/shared/logger"
)

// AdmissionInput is a booking request before validation. Zero values mean
// "not provided".
type AdmissionInput struct {
	UserID    uint
	SpaceID   uint
	Start     time.Time
	End       time.Time
	Category  string
	Attendees int
}

// Admitted is a request that passed every lock-free check.
type Admitted struct {
	User      *user.User
	Space     *space.Space
	Period    vo.TimeRange
	Category  vo.EventCategory
	Attendees int
}

// AdmitOptions relaxes checks for edits of existing reservations.
type AdmitOptions struct {
	// SkipLeadTime is set when an edit keeps the original start.
	SkipLeadTime bool
}

// AdmissionEngine runs the ordered admission checks. The first failing
// check decides the error. Admit covers everything up to the space state;
// CheckConflicts is the overlap check and must run while the space is
// locked.
type AdmissionEngine struct {
	users    user.Directory
	spaces   space.Repository
	resRepo  reservation.Repository
	settings setting.Provider
	metrics  Metrics
	logger   logger.Interface
	location func() *time.Location
}

func NewAdmissionEngine(
	users user.Directory,
	spaces space.Repository,
	resRepo reservation.Repository,
	settings setting.Provider,
	metrics Metrics,
	logger logger.Interface,
) *AdmissionEngine {
	if metrics == nil {
		metrics = nopMetrics{}
	}
	return &AdmissionEngine{
		users:    users,
		spaces:   spaces,
		resRepo:  resRepo,
		settings: settings,
		metrics:  metrics,
		logger:   logger,
		location: biztime.Location,
	}
}

// WithLocation fixes the timezone operating hours are read in.
func (e *AdmissionEngine) WithLocation(loc *time.Location) *AdmissionEngine {
	e.location = func() *time.Location { return loc }
	return e
}

func (e *AdmissionEngine) Admit(ctx context.Context, in AdmissionInput, now time.Time) (*Admitted, error) {
	return e.AdmitWithOptions(ctx, in, now, AdmitOptions{})
}

func (e *AdmissionEngine) AdmitWithOptions(ctx context.Context, in AdmissionInput, now time.Time, opts AdmitOptions) (*Admitted, error) {
	admitted, err := e.admit(ctx, in, now, opts)
	if err != nil {
		var v *reservation.RuleViolation
		if errors.As(err, &v) {
			e.metrics.ObserveAdmission(v.Rule, false)
			e.logger.Infow("reservation request rejected",
				"rule", v.Rule,
				"user_id", in.UserID,
				"space_id", in.SpaceID,
				"reason", v.Message)
			return nil, violationError(v)
		}
		return nil, err
	}
	return admitted, nil
}

func (e *AdmissionEngine) admit(ctx context.Context, in AdmissionInput, now time.Time, opts AdmitOptions) (*Admitted, error) {
	// 1. required fields
	if missing := missingFields(in); len(missing) > 0 {
		return nil, &reservation.RuleViolation{
			Rule:    reservation.RuleRequiredFields,
			Message: "missing required fields: " + strings.Join(missing, ", "),
		}
	}

	// 2. user exists
	u, err := e.users.GetByID(ctx, in.UserID)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return nil, &reservation.RuleViolation{Rule: reservation.RuleUserExists, Message: "user not found"}
		}
		e.logger.Errorw("failed to load user for admission", "user_id", in.UserID, "error", err)
		return nil, apperrors.NewInternalError("failed to validate reservation")
	}

	// 3. space exists
	sp, err := e.spaces.GetByID(ctx, in.SpaceID)
	if err != nil {
		if errors.Is(err, space.ErrSpaceNotFound) {
			return nil, &reservation.RuleViolation{Rule: reservation.RuleSpaceExists, Message: "space not found"}
		}
		e.logger.Errorw("failed to load space for admission", "space_id", in.SpaceID, "error", err)
		return nil, apperrors.NewInternalError("failed to validate reservation")
	}

	// 4. event category
	category, err := vo.ParseEventCategory(in.Category)
	if err != nil {
		return nil, &reservation.RuleViolation{Rule: reservation.RuleEventCategory, Message: "invalid event type"}
	}

	// 5. attendees
	if in.Attendees <= 0 {
		return nil, &reservation.RuleViolation{Rule: reservation.RuleAttendees, Message: reservation.ErrInvalidAttendees.Error()}
	}

	// 6. start before end
	period, err := vo.NewTimeRange(in.Start, in.End)
	if err != nil {
		return nil, &reservation.RuleViolation{Rule: reservation.RuleTimeOrder, Message: err.Error()}
	}

	// 7. lead time
	if !opts.SkipLeadTime {
		minDays := e.settings.GetInt(ctx, setting.KeyMinLeadDays, setting.DefaultMinLeadDays)
		if err := reservation.CheckLeadTime(now, period.Start(), minDays); err != nil {
			return nil, err
		}
	}

	// 8. duration
	maxHours := e.settings.GetFloat(ctx, setting.KeyMaxDurationHours, setting.DefaultMaxDurationHours)
	if err := reservation.CheckDuration(period, maxHours); err != nil {
		return nil, err
	}

	// 9. operating hours
	if err := reservation.CheckOperatingHours(period, sp.Window(), e.location()); err != nil {
		return nil, err
	}

	// 10. space state and capacity
	if !sp.IsBookable() {
		return nil, &reservation.RuleViolation{
			Rule:    reservation.RuleSpaceAvailability,
			Message: "space is not available for booking",
		}
	}
	if in.Attendees > sp.Capacity() {
		return nil, &reservation.RuleViolation{
			Rule:    reservation.RuleSpaceAvailability,
			Message: fmt.Sprintf("attendees exceed the space capacity of %d", sp.Capacity()),
		}
	}

	return &Admitted{
		User:      u,
		Space:     sp,
		Period:    period,
		Category:  category,
		Attendees: in.Attendees,
	}, nil
}

// CheckConflicts is the final admission step. Call it inside the booking
// transaction after the space row is locked; excludeIDs lets an edited
// reservation ignore itself.
func (e *AdmissionEngine) CheckConflicts(ctx context.Context, spaceID uint, period vo.TimeRange, excludeIDs ...uint) error {
	existing, err := e.resRepo.FindConflicting(ctx, spaceID, period,
		[]vo.ReservationStatus{vo.StatusRejected}, excludeIDs...)
	if err != nil {
		return fmt.Errorf("failed to check conflicting reservations: %w", err)
	}
	if err := reservation.CheckNoOverlap(period, existing); err != nil {
		var v *reservation.RuleViolation
		if errors.As(err, &v) {
			e.metrics.ObserveAdmission(v.Rule, false)
			return violationError(v)
		}
		return err
	}
	return nil
}

// Accepted records a request that made it through every check.
func (e *AdmissionEngine) Accepted() {
	e.metrics.ObserveAdmission("", true)
}

func missingFields(in AdmissionInput) []string {
	var missing []string
	if in.UserID == 0 {
		missing = append(missing, "user_id")
	}
	if in.SpaceID == 0 {
		missing = append(missing, "space_id")
	}
	if in.Start.IsZero() {
		missing = append(missing, "start")
	}
	if in.End.IsZero() {
		missing = append(missing, "end")
	}
	if strings.TrimSpace(in.Category) == "" {
		missing = append(missing, "event_category")
	}
	if in.Attendees == 0 {
		missing = append(missing, "attendees")
	}
	return missing
}

// violationError maps a rule violation to the error kind callers expect.
func violationError(v *reservation.RuleViolation) error {
	rule := string(v.Rule)
	switch v.Rule {
	case reservation.RuleUserExists, reservation.RuleSpaceExists:
		return apperrors.NewNotFoundError(v.Message, rule)
	case reservation.RuleOverlap:
		return apperrors.NewConflictError(v.Message, rule)
	default:
		return apperrors.NewValidationError(v.Message, rule)
	}
}
