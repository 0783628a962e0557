package valueobjects

import (
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// EventCategory classifies what a reservation is for.
type EventCategory string

const (
	CategoryAcademic       EventCategory = "academic"
	CategorySports         EventCategory = "sports"
	CategoryCultural       EventCategory = "cultural"
	CategoryAdministrative EventCategory = "administrative"
)

// categoryAliases maps accent-folded, lower-cased input to a category.
// The Spanish names are the values older clients and stored rows use.
var categoryAliases = map[string]EventCategory{
	"academic":       CategoryAcademic,
	"academico":      CategoryAcademic,
	"sports":         CategorySports,
	"sport":          CategorySports,
	"deportivo":      CategorySports,
	"cultural":       CategoryCultural,
	"administrative": CategoryAdministrative,
	"administrativo": CategoryAdministrative,
}

func (c EventCategory) String() string {
	return string(c)
}

func (c EventCategory) IsValid() bool {
	switch c {
	case CategoryAcademic, CategorySports, CategoryCultural, CategoryAdministrative:
		return true
	}
	return false
}

// ParseEventCategory accepts the canonical names and their Spanish forms,
// ignoring case, accents and surrounding space.
func ParseEventCategory(s string) (EventCategory, error) {
	if c, ok := categoryAliases[foldAccents(s)]; ok {
		return c, nil
	}
	return "", fmt.Errorf("invalid event type: %q", s)
}

func foldAccents(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		folded = s
	}
	return strings.ToLower(strings.TrimSpace(folded))
}
