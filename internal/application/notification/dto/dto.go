package dto

import (
	"time"

	"github.com/spacebook/spacebook/internal/domain/notification"
)

// MarkdownService renders notification bodies to HTML.
type MarkdownService interface {
	ToHTML(markdown string) (string, error)
}

type NotificationResponse struct {
	ID            uint       `json:"id"`
	Type          string     `json:"type"`
	Title         string     `json:"title"`
	Message       string     `json:"message"`
	MessageHTML   string     `json:"message_html"`
	ReservationID *uint      `json:"reservation_id,omitempty"`
	Read          bool       `json:"read"`
	ReadAt        *time.Time `json:"read_at,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
}

type ListNotificationsRequest struct {
	UserID     uint `json:"-"`
	UnreadOnly bool `form:"unread"`
}

type ListResponse struct {
	Items  []*NotificationResponse `json:"items"`
	Total  int                     `json:"total"`
	Unread int                     `json:"unread"`
}

// ToNotificationResponse converts n. A rendering failure leaves MessageHTML
// empty.
func ToNotificationResponse(n *notification.Notification, markdownSvc MarkdownService) *NotificationResponse {
	if n == nil {
		return nil
	}
	html := ""
	if markdownSvc != nil {
		if out, err := markdownSvc.ToHTML(n.Message()); err == nil {
			html = out
		}
	}
	return &NotificationResponse{
		ID:            n.ID(),
		Type:          string(n.Type()),
		Title:         n.Title(),
		Message:       n.Message(),
		MessageHTML:   html,
		ReservationID: n.ReservationID(),
		Read:          n.IsRead(),
		ReadAt:        n.ReadAt(),
		CreatedAt:     n.CreatedAt(),
	}
}

func ToNotificationResponseList(list []*notification.Notification, markdownSvc MarkdownService) []*NotificationResponse {
	out := make([]*NotificationResponse, 0, len(list))
	for _, n := range list {
		out = append(out, ToNotificationResponse(n, markdownSvc))
	}
	return out
}
