package models

import (
	"time"

	"gorm.io/datatypes"
)

// SpaceModel maps the espacios table. Column names are shared with the
// legacy schema.
type SpaceModel struct {
	ID          uint                        `gorm:"primaryKey"`
	Name        string                      `gorm:"column:nombre;size:100;not null"`
	Location    string                      `gorm:"column:ubicacion;size:200;not null"`
	Capacity    int                         `gorm:"column:capacidad;not null"`
	Equipment   datatypes.JSONSlice[string] `gorm:"column:equipamiento"`
	Status      string                      `gorm:"column:estado;size:20;not null;default:'disponible'"`
	OpeningTime *string                     `gorm:"column:hora_apertura;size:8"`
	ClosingTime *string                     `gorm:"column:hora_cierre;size:8"`
	Kind        string                      `gorm:"column:tipo;size:50;not null;default:'general'"`
	IsActive    bool                        `gorm:"column:is_active;not null;index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (SpaceModel) TableName() string {
	return "espacios"
}
