package models

import "time"

type SettingModel struct {
	ID          uint   `gorm:"primaryKey"`
	Key         string `gorm:"column:clave;size:100;not null;uniqueIndex"`
	Value       string `gorm:"column:valor;type:text;not null"`
	Description string `gorm:"column:descripcion;size:500"`
	ValueType   string `gorm:"column:tipo;size:20;not null;default:'texto'"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (SettingModel) TableName() string {
	return "configuraciones"
}
