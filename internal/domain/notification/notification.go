// Package notification models in-app messages sent to users about their
// reservations.
package notification

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spacebook/spacebook/internal/shared/biztime"
)

type Type string

const (
	TypeRequestReceived Type = "request_received"
	TypeRequestApproved Type = "request_approved"
	TypeRequestRejected Type = "request_rejected"
	TypeEventReminder   Type = "event_reminder"
	TypeNewRequestAdmin Type = "new_request_admin"
)

func (t Type) IsValid() bool {
	switch t {
	case TypeRequestReceived, TypeRequestApproved, TypeRequestRejected, TypeEventReminder, TypeNewRequestAdmin:
		return true
	}
	return false
}

var ErrNotificationNotFound = errors.New("notification not found")

type Notification struct {
	id            uint
	userID        uint
	kind          Type
	title         string
	message       string
	reservationID *uint
	read          bool
	readAt        *time.Time
	createdAt     time.Time
}

func NewNotification(userID uint, kind Type, title, message string, reservationID *uint) (*Notification, error) {
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if !kind.IsValid() {
		return nil, fmt.Errorf("invalid notification type: %s", kind)
	}
	if strings.TrimSpace(title) == "" {
		return nil, fmt.Errorf("title is required")
	}
	return &Notification{
		userID:        userID,
		kind:          kind,
		title:         title,
		message:       message,
		reservationID: reservationID,
		createdAt:     biztime.NowUTC(),
	}, nil
}

func ReconstructNotification(id, userID uint, kind Type, title, message string, reservationID *uint, read bool, readAt *time.Time, createdAt time.Time) *Notification {
	return &Notification{
		id:            id,
		userID:        userID,
		kind:          kind,
		title:         title,
		message:       message,
		reservationID: reservationID,
		read:          read,
		readAt:        readAt,
		createdAt:     createdAt,
	}
}

func (n *Notification) ID() uint             { return n.id }
func (n *Notification) UserID() uint         { return n.userID }
func (n *Notification) Type() Type           { return n.kind }
func (n *Notification) Title() string        { return n.title }
func (n *Notification) Message() string      { return n.message }
func (n *Notification) ReservationID() *uint { return n.reservationID }
func (n *Notification) IsRead() bool         { return n.read }
func (n *Notification) ReadAt() *time.Time   { return n.readAt }
func (n *Notification) CreatedAt() time.Time { return n.createdAt }
func (n *Notification) SetID(id uint)        { n.id = id }

// MarkRead is idempotent; the first read time is kept.
func (n *Notification) MarkRead(at time.Time) {
	if n.read {
		return
	}
	n.read = true
	n.readAt = &at
}

type Repository interface {
	Create(ctx context.Context, n *Notification) error
	GetByID(ctx context.Context, id uint) (*Notification, error)
	Update(ctx context.Context, n *Notification) error
	ListByUser(ctx context.Context, userID uint, unreadOnly bool) ([]*Notification, error)
}

// Message is what lifecycle operations hand to a Sink.
type Message struct {
	UserID        uint
	Type          Type
	Title         string
	Body          string
	ReservationID *uint
}

// Sink delivers messages to users. Callers treat delivery as best effort:
// an error is logged and never undoes the operation that triggered it.
type Sink interface {
	Notify(ctx context.Context, msg Message) error
}
