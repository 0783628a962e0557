package space

import (
	"fmt"
	"strings"
	"time"

	vo "github.com/spacebook/spacebook/internal/domain/space/valueobjects"
	"github.com/spacebook/spacebook/internal/shared/biztime"
)

// DefaultKind is assigned when a space is created without a kind.
const DefaultKind = "general"

// Space is a bookable room, auditorium or field.
type Space struct {
	id        uint
	name      string
	location  string
	capacity  int
	equipment []string
	kind      string
	window    vo.OperatingWindow
	status    vo.SpaceStatus
	isActive  bool
	createdAt time.Time
	updatedAt time.Time
}

func NewSpace(name, location string, capacity int, equipment []string, kind string, window vo.OperatingWindow) (*Space, error) {
	name = strings.TrimSpace(name)
	location = strings.TrimSpace(location)
	if name == "" {
		return nil, ErrNameRequired
	}
	if location == "" {
		return nil, ErrLocationRequired
	}
	if capacity <= 0 {
		return nil, ErrInvalidCapacity
	}
	if strings.TrimSpace(kind) == "" {
		kind = DefaultKind
	}

	now := biztime.NowUTC()
	return &Space{
		name:      name,
		location:  location,
		capacity:  capacity,
		equipment: normalizeEquipment(equipment),
		kind:      strings.TrimSpace(kind),
		window:    window,
		status:    vo.StatusAvailable,
		isActive:  true,
		createdAt: now,
		updatedAt: now,
	}, nil
}

// ReconstructSpace rebuilds a Space from persistence.
func ReconstructSpace(
	id uint,
	name, location string,
	capacity int,
	equipment []string,
	kind string,
	window vo.OperatingWindow,
	status vo.SpaceStatus,
	isActive bool,
	createdAt, updatedAt time.Time,
) (*Space, error) {
	if id == 0 {
		return nil, fmt.Errorf("space ID cannot be zero")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid space status: %s", status)
	}
	return &Space{
		id:        id,
		name:      name,
		location:  location,
		capacity:  capacity,
		equipment: equipment,
		kind:      kind,
		window:    window,
		status:    status,
		isActive:  isActive,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}, nil
}

func (s *Space) ID() uint                   { return s.id }
func (s *Space) Name() string               { return s.name }
func (s *Space) Location() string           { return s.location }
func (s *Space) Capacity() int              { return s.capacity }
func (s *Space) Equipment() []string        { return s.equipment }
func (s *Space) Kind() string               { return s.kind }
func (s *Space) Window() vo.OperatingWindow { return s.window }
func (s *Space) Status() vo.SpaceStatus     { return s.status }
func (s *Space) IsActive() bool             { return s.isActive }
func (s *Space) CreatedAt() time.Time       { return s.createdAt }
func (s *Space) UpdatedAt() time.Time       { return s.updatedAt }

func (s *Space) SetID(id uint) {
	s.id = id
}

// IsBookable reports whether new reservations may target the space.
func (s *Space) IsBookable() bool {
	return s.isActive && s.status == vo.StatusAvailable
}

func (s *Space) Rename(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrNameRequired
	}
	s.name = name
	s.touch()
	return nil
}

func (s *Space) Relocate(location string) error {
	location = strings.TrimSpace(location)
	if location == "" {
		return ErrLocationRequired
	}
	s.location = location
	s.touch()
	return nil
}

func (s *Space) SetCapacity(capacity int) error {
	if capacity <= 0 {
		return ErrInvalidCapacity
	}
	s.capacity = capacity
	s.touch()
	return nil
}

func (s *Space) SetEquipment(equipment []string) {
	s.equipment = normalizeEquipment(equipment)
	s.touch()
}

func (s *Space) SetKind(kind string) {
	if strings.TrimSpace(kind) == "" {
		kind = DefaultKind
	}
	s.kind = strings.TrimSpace(kind)
	s.touch()
}

func (s *Space) SetWindow(w vo.OperatingWindow) {
	s.window = w
	s.touch()
}

func (s *Space) SetStatus(status vo.SpaceStatus) error {
	if !status.IsValid() {
		return fmt.Errorf("invalid space status: %s", status)
	}
	s.status = status
	s.touch()
	return nil
}

// Deactivate soft-deletes the space. It returns false when the space was
// already inactive.
func (s *Space) Deactivate() bool {
	if !s.isActive {
		return false
	}
	s.isActive = false
	s.touch()
	return true
}

func (s *Space) touch() {
	s.updatedAt = biztime.NowUTC()
}

// normalizeEquipment trims tags and drops blanks and duplicates, keeping
// first-seen order.
func normalizeEquipment(tags []string) []string {
	seen := make(map[string]struct{}, len(tags))
	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		tag = strings.TrimSpace(tag)
		if tag == "" {
			continue
		}
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		out = append(out, tag)
	}
	return out
}
