package dto

import (
	"time"

	"github.com/spacebook/spacebook/internal/domain/space"
)

type SpaceDTO struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	Location    string    `json:"location"`
	Capacity    int       `json:"capacity"`
	Equipment   []string  `json:"equipment"`
	Kind        string    `json:"kind"`
	OpeningTime *string   `json:"opening_time,omitempty"`
	ClosingTime *string   `json:"closing_time,omitempty"`
	Status      string    `json:"status"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CreateSpaceRequest is the body of POST /spaces.
type CreateSpaceRequest struct {
	Name        string   `json:"name" binding:"required,max=100"`
	Location    string   `json:"location" binding:"required,max=200"`
	Capacity    int      `json:"capacity"`
	Equipment   []string `json:"equipment"`
	Kind        string   `json:"kind" binding:"omitempty,max=50"`
	OpeningTime string   `json:"opening_time"`
	ClosingTime string   `json:"closing_time"`
}

// UpdateSpaceRequest is a partial update; nil fields are left unchanged.
// An empty opening or closing time clears that bound.
type UpdateSpaceRequest struct {
	Name        *string   `json:"name" binding:"omitempty,max=100"`
	Location    *string   `json:"location" binding:"omitempty,max=200"`
	Capacity    *int      `json:"capacity"`
	Equipment   *[]string `json:"equipment"`
	Kind        *string   `json:"kind" binding:"omitempty,max=50"`
	OpeningTime *string   `json:"opening_time"`
	ClosingTime *string   `json:"closing_time"`
	Status      *string   `json:"status" binding:"omitempty,oneof=available under_maintenance"`
}

func ToSpaceDTO(s *space.Space) *SpaceDTO {
	out := &SpaceDTO{
		ID:        s.ID(),
		Name:      s.Name(),
		Location:  s.Location(),
		Capacity:  s.Capacity(),
		Equipment: s.Equipment(),
		Kind:      s.Kind(),
		Status:    s.Status().String(),
		IsActive:  s.IsActive(),
		CreatedAt: s.CreatedAt(),
		UpdatedAt: s.UpdatedAt(),
	}
	if out.Equipment == nil {
		out.Equipment = []string{}
	}
	if o := s.Window().Opening(); o != nil {
		v := o.String()
		out.OpeningTime = &v
	}
	if c := s.Window().Closing(); c != nil {
		v := c.String()
		out.ClosingTime = &v
	}
	return out
}

func ToSpaceDTOs(list []*space.Space) []*SpaceDTO {
	out := make([]*SpaceDTO, 0, len(list))
	for _, s := range list {
		out = append(out, ToSpaceDTO(s))
	}
	return out
}
