package valueobjects

import "fmt"

// SpaceStatus is the operational status of a space. Soft deletion is a
// separate flag on the entity.
type SpaceStatus string

const (
	StatusAvailable        SpaceStatus = "available"
	StatusUnderMaintenance SpaceStatus = "under_maintenance"
)

func (s SpaceStatus) String() string {
	return string(s)
}

func (s SpaceStatus) IsValid() bool {
	return s == StatusAvailable || s == StatusUnderMaintenance
}

func ParseSpaceStatus(s string) (SpaceStatus, error) {
	status := SpaceStatus(s)
	if !status.IsValid() {
		return "", fmt.Errorf("invalid space status: %s", s)
	}
	return status, nil
}
