package models

import (
	"time"

	"gorm.io/datatypes"
)

// ReservationModel maps the reservas table.
type ReservationModel struct {
	ID              uint                        `gorm:"primaryKey"`
	UserID          uint                        `gorm:"column:usuario_id;not null;index"`
	SpaceID         uint                        `gorm:"column:espacio_id;not null;index:idx_reservas_espacio_periodo,priority:1"`
	StartTime       time.Time                   `gorm:"column:fecha_inicio;not null;index:idx_reservas_espacio_periodo,priority:2"`
	EndTime         time.Time                   `gorm:"column:fecha_fin;not null"`
	EventCategory   string                      `gorm:"column:tipo_evento;size:30;not null"`
	Attendees       int                         `gorm:"column:asistentes;not null"`
	Status          string                      `gorm:"column:estado;size:20;not null;default:'pendiente';index"`
	RejectionReason *string                     `gorm:"column:motivo_rechazo;type:text"`
	Documents       datatypes.JSONSlice[string] `gorm:"column:documentos"`
	ApprovedBy      *uint                       `gorm:"column:aprobado_por"`
	RejectedBy      *uint                       `gorm:"column:rechazado_por"`
	CancelledBy     *uint                       `gorm:"column:cancelado_por"`
	ApprovedAt      *time.Time                  `gorm:"column:fecha_aprobacion"`
	RejectedAt      *time.Time                  `gorm:"column:fecha_rechazo"`
	CancelledAt     *time.Time                  `gorm:"column:fecha_cancelacion"`
	IsActive        bool                        `gorm:"column:is_active;not null;index"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func (ReservationModel) TableName() string {
	return "reservas"
}

// ReservationHistoryModel maps historial_reservas. Rows are never updated.
type ReservationHistoryModel struct {
	ID            uint              `gorm:"primaryKey"`
	ReservationID uint              `gorm:"column:reserva_id;not null;index"`
	Action        string            `gorm:"column:accion;size:20;not null"`
	UserID        uint              `gorm:"column:usuario_id;not null"`
	Details       datatypes.JSONMap `gorm:"column:detalles"`
	Note          string            `gorm:"column:observaciones;type:text"`
	CreatedAt     time.Time
}

func (ReservationHistoryModel) TableName() string {
	return "historial_reservas"
}
