package models

import "time"

type UserModel struct {
	ID        uint   `gorm:"primaryKey"`
	FirstName string `gorm:"column:nombre;size:100;not null"`
	LastName  string `gorm:"column:apellido;size:100"`
	Email     string `gorm:"column:correo;size:150;not null;uniqueIndex"`
	Role      string `gorm:"column:role;size:20;not null;default:'usuario';index"`
	UserType  string `gorm:"column:user_type;size:20"`
	IsActive  bool   `gorm:"column:is_active;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (UserModel) TableName() string {
	return "usuarios"
}
