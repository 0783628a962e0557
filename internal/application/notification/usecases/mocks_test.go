package usecases

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/spacebook/spacebook/internal/domain/notification"
	"github.com/spacebook/spacebook/internal/domain/reservation"
	"github.com/spacebook/spacebook/internal/domain/space"
	"github.com/spacebook/spacebook/internal/domain/user"
	"github.com/spacebook/spacebook/internal/shared/authorization"
)

type memNotificationRepository struct {
	mu        sync.Mutex
	rows      []*notification.Notification
	CreateErr error
	ListErr   error
}

func (m *memNotificationRepository) Create(_ context.Context, n *notification.Notification) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.CreateErr != nil {
		return m.CreateErr
	}
	n.SetID(uint(len(m.rows) + 1))
	m.rows = append(m.rows, n)
	return nil
}

func (m *memNotificationRepository) GetByID(_ context.Context, id uint) (*notification.Notification, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, n := range m.rows {
		if n.ID() == id {
			return n, nil
		}
	}
	return nil, notification.ErrNotificationNotFound
}

func (m *memNotificationRepository) Update(_ context.Context, _ *notification.Notification) error {
	return nil
}

func (m *memNotificationRepository) ListByUser(_ context.Context, userID uint, unreadOnly bool) ([]*notification.Notification, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	var out []*notification.Notification
	for _, n := range m.rows {
		if n.UserID() == userID && (!unreadOnly || !n.IsRead()) {
			out = append(out, n)
		}
	}
	return out, nil
}

type fakeUsers struct {
	users map[uint]*user.User
}

func (f *fakeUsers) GetByID(_ context.Context, id uint) (*user.User, error) {
	if u, ok := f.users[id]; ok {
		return u, nil
	}
	return nil, user.ErrUserNotFound
}

func (f *fakeUsers) FindActiveByRoles(context.Context, ...authorization.UserRole) ([]*user.User, error) {
	return nil, nil
}

type sentEmail struct {
	to, subject, html, plain string
}

type recordingEmail struct {
	mu   sync.Mutex
	sent []sentEmail
	err  error
}

func (r *recordingEmail) SendNotificationEmail(to, subject, htmlBody, plainBody string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sent = append(r.sent, sentEmail{to, subject, htmlBody, plainBody})
	return r.err
}

type paragraphMarkdown struct{}

func (paragraphMarkdown) ToHTML(s string) (string, error) {
	if s == "" {
		return "", errors.New("empty")
	}
	return "<p>" + s + "</p>", nil
}

type mockReservationRepository struct {
	reservation.Repository
	upcoming []*reservation.Reservation
	from, to time.Time
}

func (m *mockReservationRepository) FindUpcomingApproved(_ context.Context, from, to time.Time) ([]*reservation.Reservation, error) {
	m.from, m.to = from, to
	return m.upcoming, nil
}

type mockSpaceRepository struct {
	space.Repository
}

func (mockSpaceRepository) GetByID(context.Context, uint) (*space.Space, error) {
	return nil, space.ErrSpaceNotFound
}

type recordingSink struct {
	messages []notification.Message
}

func (s *recordingSink) Notify(_ context.Context, msg notification.Message) error {
	s.messages = append(s.messages, msg)
	return nil
}

type memLedger struct {
	seen map[uint]time.Duration
	err  error
}

func (l *memLedger) MarkSent(_ context.Context, id uint, ttl time.Duration) (bool, error) {
	if l.err != nil {
		return false, l.err
	}
	if l.seen == nil {
		l.seen = map[uint]time.Duration{}
	}
	if _, ok := l.seen[id]; ok {
		return false, nil
	}
	l.seen[id] = ttl
	return true, nil
}

type staticSettings struct {
	reminderDays int
}

func (s staticSettings) GetInt(_ context.Context, _ string, def int) int {
	if s.reminderDays != 0 {
		return s.reminderDays
	}
	return def
}
func (staticSettings) GetFloat(_ context.Context, _ string, def float64) float64 { return def }
func (staticSettings) GetBool(_ context.Context, _ string, def bool) bool       { return def }
func (staticSettings) GetString(_ context.Context, _ string, def string) string { return def }
func (staticSettings) GetDuration(_ context.Context, _ string, def time.Duration) time.Duration {
	return def
}
