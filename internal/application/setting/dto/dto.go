package dto

import (
	"time"

	"github.com/spacebook/spacebook/internal/domain/setting"
)

// SettingResponse represents a single configuration entry.
type SettingResponse struct {
	Key         string    `json:"key"`
	Value       string    `json:"value"`
	ValueType   string    `json:"value_type"`
	Description string    `json:"description"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// UpsertSettingRequest creates or replaces an entry. ValueType defaults to
// the existing entry's type, or text for new keys.
type UpsertSettingRequest struct {
	Value       string  `json:"value" binding:"required"`
	ValueType   string  `json:"value_type" binding:"omitempty,oneof=number text boolean json time"`
	Description *string `json:"description" binding:"omitempty,max=500"`
}

func ToSettingResponse(s *setting.Setting) *SettingResponse {
	return &SettingResponse{
		Key:         s.Key(),
		Value:       s.Value(),
		ValueType:   string(s.ValueType()),
		Description: s.Description(),
		UpdatedAt:   s.UpdatedAt(),
	}
}

func ToSettingResponses(list []*setting.Setting) []*SettingResponse {
	out := make([]*SettingResponse, 0, len(list))
	for _, s := range list {
		out = append(out, ToSettingResponse(s))
	}
	return out
}
