package value_objects

import "fmt"

type Resource string

const (
	ResourceSpace        Resource = "space"
	ResourceReservation  Resource = "reservation"
	ResourceSetting      Resource = "setting"
	ResourceNotification Resource = "notification"
)

var validResources = map[Resource]bool{
	ResourceSpace:        true,
	ResourceReservation:  true,
	ResourceSetting:      true,
	ResourceNotification: true,
}

func NewResource(resource string) (Resource, error) {
	if resource == "" {
		return "", fmt.Errorf("resource cannot be empty")
	}
	r := Resource(resource)
	if !validResources[r] {
		return "", fmt.Errorf("unknown resource: %s", resource)
	}
	return r, nil
}

func (r Resource) String() string {
	return string(r)
}
