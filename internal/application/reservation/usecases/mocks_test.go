package usecases

import (
	"context"
	"slices"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/spacebook/spacebook/internal/domain/notification"
	"github.com/spacebook/spacebook/internal/domain/reservation"
	vo "github.com/spacebook/spacebook/internal/domain/reservation/valueobjects"
	"github.com/spacebook/spacebook/internal/domain/space"
	spacevo "github.com/spacebook/spacebook/internal/domain/space/valueobjects"
	"github.com/spacebook/spacebook/internal/domain/user"
	"github.com/spacebook/spacebook/internal/infrastructure/lock"
	"github.com/spacebook/spacebook/internal/shared/authorization"
	"github.com/spacebook/spacebook/internal/shared/logger"
)

// memReservationRepository keeps reservations in a map. Loaded values are
// shared pointers, like rows read inside a single transaction.
type memReservationRepository struct {
	mu     sync.Mutex
	rows   map[uint]*reservation.Reservation
	nextID uint

	CreateErr error
}

func newMemReservationRepository() *memReservationRepository {
	return &memReservationRepository{rows: map[uint]*reservation.Reservation{}}
}

func (m *memReservationRepository) Create(_ context.Context, r *reservation.Reservation) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.CreateErr != nil {
		return m.CreateErr
	}
	m.nextID++
	r.SetID(m.nextID)
	m.rows[r.ID()] = r
	return nil
}

func (m *memReservationRepository) GetByID(_ context.Context, id uint) (*reservation.Reservation, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.rows[id]
	if !ok {
		return nil, reservation.ErrReservationNotFound
	}
	return r, nil
}

func (m *memReservationRepository) GetByIDForUpdate(ctx context.Context, id uint) (*reservation.Reservation, error) {
	return m.GetByID(ctx, id)
}

func (m *memReservationRepository) Update(_ context.Context, r *reservation.Reservation) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.rows[r.ID()]; !ok {
		return reservation.ErrReservationNotFound
	}
	m.rows[r.ID()] = r
	return nil
}

func (m *memReservationRepository) FindConflicting(_ context.Context, spaceID uint, period vo.TimeRange, excludeStatuses []vo.ReservationStatus, excludeIDs ...uint) ([]*reservation.Reservation, error) {
	return m.filter(func(r *reservation.Reservation) bool {
		return r.IsActive() &&
			r.SpaceID() == spaceID &&
			r.Overlaps(period) &&
			!slices.Contains(excludeStatuses, r.Status()) &&
			!slices.Contains(excludeIDs, r.ID())
	}), nil
}

func (m *memReservationRepository) FindByUser(_ context.Context, userID uint) ([]*reservation.Reservation, error) {
	list := m.filter(func(r *reservation.Reservation) bool {
		return r.IsActive() && r.UserID() == userID
	})
	sort.Slice(list, func(i, j int) bool { return list[i].Start().After(list[j].Start()) })
	return list, nil
}

func (m *memReservationRepository) FindByFilters(_ context.Context, f reservation.Filter) ([]*reservation.Reservation, error) {
	return m.filter(func(r *reservation.Reservation) bool {
		return r.IsActive() &&
			(f.SpaceID == nil || *f.SpaceID == r.SpaceID()) &&
			(f.UserID == nil || *f.UserID == r.UserID()) &&
			(f.Status == nil || *f.Status == r.Status())
	}), nil
}

func (m *memReservationRepository) FindAvailabilityWindow(_ context.Context, spaceID uint, window vo.TimeRange) ([]*reservation.Reservation, error) {
	list := m.filter(func(r *reservation.Reservation) bool {
		return r.IsActive() && r.SpaceID() == spaceID && r.Status() == vo.StatusApproved && r.Overlaps(window)
	})
	sort.Slice(list, func(i, j int) bool { return list[i].Start().Before(list[j].Start()) })
	return list, nil
}

func (m *memReservationRepository) FindUpcomingApproved(_ context.Context, from, to time.Time) ([]*reservation.Reservation, error) {
	return m.filter(func(r *reservation.Reservation) bool {
		return r.IsActive() && r.Status() == vo.StatusApproved &&
			!r.Start().Before(from) && r.Start().Before(to)
	}), nil
}

func (m *memReservationRepository) filter(keep func(r *reservation.Reservation) bool) []*reservation.Reservation {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*reservation.Reservation
	for _, r := range m.rows {
		if keep(r) {
			out = append(out, r)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].ID() < out[j].ID() })
	return out
}

func (m *memReservationRepository) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.rows)
}

type memHistoryRepository struct {
	mu      sync.Mutex
	entries []*reservation.HistoryEntry
}

func (m *memHistoryRepository) Append(_ context.Context, e *reservation.HistoryEntry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	e.SetID(uint(len(m.entries) + 1))
	m.entries = append(m.entries, e)
	return nil
}

func (m *memHistoryRepository) ListByReservation(_ context.Context, id uint) ([]*reservation.HistoryEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*reservation.HistoryEntry
	for _, e := range m.entries {
		if e.ReservationID() == id {
			out = append(out, e)
		}
	}
	return out, nil
}

func (m *memHistoryRepository) actions(id uint) []vo.HistoryAction {
	list, _ := m.ListByReservation(context.Background(), id)
	out := make([]vo.HistoryAction, 0, len(list))
	for _, e := range list {
		out = append(out, e.Action())
	}
	return out
}

type mockSpaceRepository struct {
	mu     sync.Mutex
	spaces map[uint]*space.Space

	LockForBookingFunc func(ctx context.Context, id uint) error
	lockCalls          int
}

func (m *mockSpaceRepository) Create(_ context.Context, s *space.Space) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	s.SetID(uint(len(m.spaces) + 1))
	m.spaces[s.ID()] = s
	return nil
}

func (m *mockSpaceRepository) GetByID(_ context.Context, id uint) (*space.Space, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.spaces[id]
	if !ok {
		return nil, space.ErrSpaceNotFound
	}
	return s, nil
}

func (m *mockSpaceRepository) Update(_ context.Context, s *space.Space) error { return nil }

func (m *mockSpaceRepository) ListActive(_ context.Context) ([]*space.Space, error) { return nil, nil }

func (m *mockSpaceRepository) ListAll(_ context.Context) ([]*space.Space, error) { return nil, nil }

func (m *mockSpaceRepository) LockForBooking(ctx context.Context, id uint) error {
	m.mu.Lock()
	m.lockCalls++
	m.mu.Unlock()
	if m.LockForBookingFunc != nil {
		return m.LockForBookingFunc(ctx, id)
	}
	return nil
}

type fakeUserDirectory struct {
	users map[uint]*user.User
}

func (f *fakeUserDirectory) GetByID(_ context.Context, id uint) (*user.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, user.ErrUserNotFound
	}
	return u, nil
}

func (f *fakeUserDirectory) FindActiveByRoles(_ context.Context, roles ...authorization.UserRole) ([]*user.User, error) {
	var out []*user.User
	for _, u := range f.users {
		if u.IsActive() && slices.Contains(roles, u.Role()) {
			out = append(out, u)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID() < out[j].ID() })
	return out, nil
}

type staticSettings struct {
	ints   map[string]int
	floats map[string]float64
}

func (s *staticSettings) GetInt(_ context.Context, key string, def int) int {
	if v, ok := s.ints[key]; ok {
		return v
	}
	return def
}

func (s *staticSettings) GetFloat(_ context.Context, key string, def float64) float64 {
	if v, ok := s.floats[key]; ok {
		return v
	}
	return def
}

func (s *staticSettings) GetBool(_ context.Context, _ string, def bool) bool { return def }

func (s *staticSettings) GetString(_ context.Context, _ string, def string) string { return def }

func (s *staticSettings) GetDuration(_ context.Context, _ string, def time.Duration) time.Duration {
	return def
}

type recordingSink struct {
	mu       sync.Mutex
	messages []notification.Message
	err      error
}

func (s *recordingSink) Notify(_ context.Context, msg notification.Message) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.messages = append(s.messages, msg)
	return s.err
}

func (s *recordingSink) types() []notification.Type {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]notification.Type, 0, len(s.messages))
	for _, m := range s.messages {
		out = append(out, m.Type)
	}
	return out
}

type recordingMetrics struct {
	mu          sync.Mutex
	rejected    map[reservation.Rule]int
	admitted    int
	transitions []vo.HistoryAction
}

func (m *recordingMetrics) ObserveAdmission(rule reservation.Rule, admitted bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if admitted {
		m.admitted++
		return
	}
	if m.rejected == nil {
		m.rejected = map[reservation.Rule]int{}
	}
	m.rejected[rule]++
}

func (m *recordingMetrics) ObserveTransition(action vo.HistoryAction) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.transitions = append(m.transitions, action)
}

// fakeTxRunner calls fn directly. Errors queued in failures are returned
// instead of running fn, one per call.
type fakeTxRunner struct {
	mu       sync.Mutex
	calls    int
	failures []error
}

func (f *fakeTxRunner) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	f.mu.Lock()
	f.calls++
	var injected error
	if len(f.failures) > 0 {
		injected, f.failures = f.failures[0], f.failures[1:]
	}
	f.mu.Unlock()
	if injected != nil {
		return injected
	}
	return fn(ctx)
}

type failingLocker struct{ err error }

func (f failingLocker) Acquire(context.Context, uint) (func(), error) { return nil, f.err }

type tagStripper struct{}

func (tagStripper) PlainText(s string) string {
	out := []rune{}
	inTag := false
	for _, r := range s {
		switch {
		case r == '<':
			inTag = true
		case r == '>':
			inTag = false
		case !inTag:
			out = append(out, r)
		}
	}
	return string(out)
}

const (
	requesterID uint = 1
	otherUserID uint = 2
	adminID     uint = 10
	operatorID  uint = 11

	mainSpaceID        uint = 1
	maintenanceSpaceID uint = 2
	windowedSpaceID    uint = 3
)

var (
	requester = authorization.Principal{UserID: requesterID, Role: authorization.RoleUser}
	otherUser = authorization.Principal{UserID: otherUserID, Role: authorization.RoleUser}
	admin     = authorization.Principal{UserID: adminID, Role: authorization.RoleAdmin}
	operator  = authorization.Principal{UserID: operatorID, Role: authorization.RoleOperator}
)

// testNow is a fixed clock. eventDay is five days later.
var testNow = time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)

func eventAt(hour int) time.Time {
	return time.Date(2026, 5, 6, hour, 0, 0, 0, time.UTC)
}

type harness struct {
	users    *fakeUserDirectory
	spaces   *mockSpaceRepository
	res      *memReservationRepository
	history  *memHistoryRepository
	settings *staticSettings
	sink     *recordingSink
	metrics  *recordingMetrics
	tx       *fakeTxRunner
	locker   SpaceLocker
	engine   *AdmissionEngine
	log      logger.Interface
}

func newHarness(t *testing.T) *harness {
	t.Helper()

	mkUser := func(id uint, role authorization.UserRole, active bool) *user.User {
		return user.ReconstructUser(id, "Test", "User", "user@example.edu", role, "student", active, testNow)
	}
	users := &fakeUserDirectory{users: map[uint]*user.User{
		requesterID: mkUser(requesterID, authorization.RoleUser, true),
		otherUserID: mkUser(otherUserID, authorization.RoleUser, true),
		adminID:     mkUser(adminID, authorization.RoleAdmin, true),
		operatorID:  mkUser(operatorID, authorization.RoleOperator, true),
		12:          mkUser(12, authorization.RoleOperator, false),
	}}

	unrestricted, err := spacevo.NewOperatingWindow(nil, nil)
	require.NoError(t, err)
	daytime, err := spacevo.ParseOperatingWindow("08:00", "18:00")
	require.NoError(t, err)

	mkSpace := func(id uint, name string, window spacevo.OperatingWindow, status spacevo.SpaceStatus) *space.Space {
		s, err := space.ReconstructSpace(id, name, "Block A", 50, nil, space.DefaultKind, window, status, true, testNow, testNow)
		require.NoError(t, err)
		return s
	}
	spaces := &mockSpaceRepository{spaces: map[uint]*space.Space{
		mainSpaceID:        mkSpace(mainSpaceID, "Auditorium", unrestricted, spacevo.StatusAvailable),
		maintenanceSpaceID: mkSpace(maintenanceSpaceID, "Lab", unrestricted, spacevo.StatusUnderMaintenance),
		windowedSpaceID:    mkSpace(windowedSpaceID, "Classroom", daytime, spacevo.StatusAvailable),
	}}

	h := &harness{
		users:    users,
		spaces:   spaces,
		res:      newMemReservationRepository(),
		history:  &memHistoryRepository{},
		settings: &staticSettings{},
		sink:     &recordingSink{},
		metrics:  &recordingMetrics{},
		tx:       &fakeTxRunner{},
		locker:   lock.NewMemoryLocker(2 * time.Second),
		log:      logger.NewNop(),
	}
	h.engine = NewAdmissionEngine(h.users, h.spaces, h.res, h.settings, h.metrics, h.log).
		WithLocation(time.UTC)
	return h
}

func (h *harness) createUseCase() *CreateReservationUseCase {
	return NewCreateReservationUseCase(h.engine, h.res, h.history, h.spaces, h.users,
		h.locker, h.tx, h.sink, h.metrics, h.log).
		WithClock(func() time.Time { return testNow })
}

func (h *harness) approveUseCase() *ApproveReservationUseCase {
	uc := NewApproveReservationUseCase(h.res, h.history, h.spaces, h.users, h.locker, h.tx, h.sink, h.metrics, h.log)
	uc.now = func() time.Time { return testNow }
	return uc
}

func (h *harness) rejectUseCase() *RejectReservationUseCase {
	uc := NewRejectReservationUseCase(h.res, h.history, h.spaces, h.users, h.locker, h.tx, h.sink,
		tagStripper{}, h.metrics, h.log)
	uc.now = func() time.Time { return testNow }
	return uc
}

func (h *harness) cancelUseCase() *CancelReservationUseCase {
	uc := NewCancelReservationUseCase(h.res, h.history, h.locker, h.tx, h.metrics, h.log)
	uc.now = func() time.Time { return testNow }
	return uc
}

func (h *harness) deactivateUseCase() *DeactivateReservationUseCase {
	uc := NewDeactivateReservationUseCase(h.res, h.history, h.locker, h.tx, h.metrics, h.log)
	uc.now = func() time.Time { return testNow }
	return uc
}

func (h *harness) reactivateUseCase() *ReactivateReservationUseCase {
	uc := NewReactivateReservationUseCase(h.engine, h.res, h.history, h.spaces, h.locker, h.tx, h.metrics, h.log)
	uc.now = func() time.Time { return testNow }
	return uc
}

func (h *harness) updateUseCase() *UpdateReservationUseCase {
	return NewUpdateReservationUseCase(h.engine, h.res, h.history, h.spaces, h.locker, h.tx,
		tagStripper{}, h.metrics, h.log).
		WithClock(func() time.Time { return testNow })
}

func validCommand(startHour, endHour int) CreateReservationCommand {
	return CreateReservationCommand{
		UserID:    requesterID,
		SpaceID:   mainSpaceID,
		Start:     eventAt(startHour),
		End:       eventAt(endHour),
		Category:  "academic",
		Attendees: 20,
	}
}

// mustCreate stores a pending reservation through the create use case.
func (h *harness) mustCreate(t *testing.T, startHour, endHour int) uint {
	t.Helper()
	out, err := h.createUseCase().Execute(context.Background(), validCommand(startHour, endHour))
	require.NoError(t, err)
	return out.ID
}
