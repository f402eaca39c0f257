package models

import "time"

type User struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Email        string `gorm:"column:email;size:100;uniqueIndex;not null" json:"email"`
	Name         string `gorm:"column:nome;size:100;not null" json:"nome"`
	PasswordHash string `gorm:"column:senha;size:255;not null" json:"-"`

	RoleID uint `gorm:"column:tipo_id;not null" json:"tipo_id"`
	Role   Role `gorm:"foreignKey:RoleID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"tipo"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (User) TableName() string {
	return "usuario"
}
