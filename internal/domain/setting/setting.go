// Package setting models typed configuration entries stored in the database.
// Admission thresholds are read from here so administrators can tune them
// without a restart.
package setting

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/spacebook/spacebook/internal/domain/shared/clock"
	"github.com/spacebook/spacebook/internal/shared/biztime"
)

// ValueType defines how a stored value is parsed.
type ValueType string

const (
	ValueTypeNumber  ValueType = "number"
	ValueTypeText    ValueType = "text"
	ValueTypeBoolean ValueType = "boolean"
	ValueTypeJSON    ValueType = "json"
	ValueTypeTime    ValueType = "time"
)

func (t ValueType) IsValid() bool {
	switch t {
	case ValueTypeNumber, ValueTypeText, ValueTypeBoolean, ValueTypeJSON, ValueTypeTime:
		return true
	}
	return false
}

// Well-known keys.
const (
	KeyMinLeadDays         = "dias_anticipacion_minima"
	KeyMaxDurationHours    = "duracion_maxima_horas"
	KeyReminderDays        = "dias_recordatorio_evento"
	KeyDefaultOpening      = "horario_apertura_default"
	KeyDefaultClosing      = "horario_cierre_default"
	KeyAcademicEventsFirst = "prioridad_eventos_academicos"
)

// wholeNumberKeys hold day counts and must be stored as integers.
var wholeNumberKeys = map[string]bool{
	KeyMinLeadDays:  true,
	KeyReminderDays: true,
}

// IsWholeNumberKey reports whether key only accepts integral numbers.
func IsWholeNumberKey(key string) bool {
	return wholeNumberKeys[key]
}

// Defaults applied when a key is missing or unparsable.
const (
	DefaultMinLeadDays      = 2
	DefaultMaxDurationHours = 8.0
	DefaultReminderDays     = 1
)

// Setting is a single configuration entry.
type Setting struct {
	id          uint
	key         string
	value       string
	valueType   ValueType
	description string
	createdAt   time.Time
	updatedAt   time.Time
}

func NewSetting(key, value string, valueType ValueType, description string) (*Setting, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return nil, ErrInvalidSettingKey
	}
	if !valueType.IsValid() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidValueType, valueType)
	}
	if err := validateValue(key, valueType, value); err != nil {
		return nil, err
	}
	now := biztime.NowUTC()
	return &Setting{
		key:         key,
		value:       value,
		valueType:   valueType,
		description: description,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func ReconstructSetting(id uint, key, value string, valueType ValueType, description string, createdAt, updatedAt time.Time) *Setting {
	return &Setting{
		id:          id,
		key:         key,
		value:       value,
		valueType:   valueType,
		description: description,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

func (s *Setting) ID() uint             { return s.id }
func (s *Setting) Key() string          { return s.key }
func (s *Setting) Value() string        { return s.value }
func (s *Setting) ValueType() ValueType { return s.valueType }
func (s *Setting) Description() string  { return s.description }
func (s *Setting) CreatedAt() time.Time { return s.createdAt }
func (s *Setting) UpdatedAt() time.Time { return s.updatedAt }

func (s *Setting) SetID(id uint) { s.id = id }

// UpdateValue replaces the value after checking it parses as the entry's type.
func (s *Setting) UpdateValue(value string) error {
	if err := validateValue(s.key, s.valueType, value); err != nil {
		return err
	}
	s.value = value
	s.updatedAt = biztime.NowUTC()
	return nil
}

// Float parses a number entry.
func (s *Setting) Float() (float64, error) {
	if s.valueType != ValueTypeNumber {
		return 0, fmt.Errorf("%w: %s is %s", ErrInvalidValueType, s.key, s.valueType)
	}
	return strconv.ParseFloat(strings.TrimSpace(s.value), 64)
}

// Bool parses a boolean entry. "1" and "0" are accepted.
func (s *Setting) Bool() (bool, error) {
	if s.valueType != ValueTypeBoolean {
		return false, fmt.Errorf("%w: %s is %s", ErrInvalidValueType, s.key, s.valueType)
	}
	return strconv.ParseBool(strings.TrimSpace(s.value))
}

// Clock parses a time entry.
func (s *Setting) Clock() (clock.Time, error) {
	if s.valueType != ValueTypeTime {
		return clock.Time{}, fmt.Errorf("%w: %s is %s", ErrInvalidValueType, s.key, s.valueType)
	}
	return clock.Parse(s.value)
}

// JSON unmarshals a json entry into target.
func (s *Setting) JSON(target any) error {
	if s.valueType != ValueTypeJSON {
		return fmt.Errorf("%w: %s is %s", ErrInvalidValueType, s.key, s.valueType)
	}
	return json.Unmarshal([]byte(s.value), target)
}

func validateValue(key string, t ValueType, value string) error {
	var err error
	switch t {
	case ValueTypeNumber:
		var f float64
		f, err = strconv.ParseFloat(strings.TrimSpace(value), 64)
		if err == nil && IsWholeNumberKey(key) && f != math.Trunc(f) {
			return fmt.Errorf("%w: %s must be a whole number, got %q", ErrInvalidValue, key, value)
		}
	case ValueTypeBoolean:
		_, err = strconv.ParseBool(strings.TrimSpace(value))
	case ValueTypeTime:
		_, err = clock.Parse(value)
	case ValueTypeJSON:
		if !json.Valid([]byte(value)) {
			err = fmt.Errorf("malformed json")
		}
	}
	if err != nil {
		return fmt.Errorf("%w: value %q is not a valid %s", ErrInvalidValue, value, t)
	}
	return nil
}
