package models

import "time"

type NotificationModel struct {
	ID            uint       `gorm:"primaryKey"`
	UserID        uint       `gorm:"column:usuario_id;not null;index"`
	Type          string     `gorm:"column:tipo;size:30;not null"`
	Title         string     `gorm:"column:titulo;size:200;not null"`
	Message       string     `gorm:"column:mensaje;type:text;not null"`
	ReservationID *uint      `gorm:"column:reserva_id"`
	Read          bool       `gorm:"column:leida;not null;default:false"`
	ReadAt        *time.Time `gorm:"column:fecha_leida"`
	CreatedAt     time.Time
}

func (NotificationModel) TableName() string {
	return "notificaciones"
}
