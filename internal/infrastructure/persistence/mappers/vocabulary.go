package mappers

import "fmt"

// vocabulary translates enum values between the domain (English) and the
// stored legacy values (Spanish) that existing rows and reports use.
type vocabulary struct {
	name     string
	toStored map[string]string
	toDomain map[string]string
}

func newVocabulary(name string, pairs map[string]string) vocabulary {
	v := vocabulary{name: name, toStored: pairs, toDomain: make(map[string]string, len(pairs))}
	for domain, stored := range pairs {
		v.toDomain[stored] = domain
	}
	return v
}

func (v vocabulary) stored(domain string) string {
	if s, ok := v.toStored[domain]; ok {
		return s
	}
	return domain
}

// domain accepts stored values and, for rows written by newer code paths,
// domain values as well.
func (v vocabulary) domain(stored string) (string, error) {
	if d, ok := v.toDomain[stored]; ok {
		return d, nil
	}
	if _, ok := v.toStored[stored]; ok {
		return stored, nil
	}
	return "", fmt.Errorf("unknown %s value %q", v.name, stored)
}

var (
	reservationStatusVocab = newVocabulary("reservation status", map[string]string{
		"pending":  "pendiente",
		"approved": "aprobada",
		"rejected": "rechazada",
	})
	eventCategoryVocab = newVocabulary("event category", map[string]string{
		"academic":       "académico",
		"sports":         "deportivo",
		"cultural":       "cultural",
		"administrative": "administrativo",
	})
	historyActionVocab = newVocabulary("history action", map[string]string{
		"created":     "creada",
		"approved":    "aprobada",
		"rejected":    "rechazada",
		"cancelled":   "cancelada",
		"modified":    "modificada",
		"reactivated": "reactivada",
		"deactivated": "desactivada",
	})
	spaceStatusVocab = newVocabulary("space status", map[string]string{
		"available":         "disponible",
		"under_maintenance": "mantenimiento",
	})
	settingTypeVocab = newVocabulary("setting type", map[string]string{
		"number":  "numero",
		"text":    "texto",
		"boolean": "booleano",
		"json":    "json",
		"time":    "tiempo",
	})
	notificationTypeVocab = newVocabulary("notification type", map[string]string{
		"request_received":  "solicitud_recibida",
		"request_approved":  "solicitud_aprobada",
		"request_rejected":  "solicitud_rechazada",
		"event_reminder":    "recordatorio_evento",
		"new_request_admin": "nueva_solicitud_admin",
	})
	roleVocab = newVocabulary("role", map[string]string{
		"admin":    "admin",
		"operator": "encargado",
		"user":     "usuario",
	})
)

// StoredReservationStatus is used by repositories to build filters.
func StoredReservationStatus(domain string) string {
	return reservationStatusVocab.stored(domain)
}

// StoredRole is used by repositories to build filters.
func StoredRole(domain string) string {
	return roleVocab.stored(domain)
}
