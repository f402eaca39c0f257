package models

import "time"

type Area struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name        string `gorm:"column:nome;size:100;uniqueIndex;not null" json:"nome"`
	Description string `gorm:"column:descricao;size:255" json:"descricao"`
	Lighting    string `gorm:"column:iluminacao;size:50" json:"iluminacao"`
	FloorType   string `gorm:"column:tipo_piso;size:50" json:"tipo_piso"`
	Covered     string `gorm:"column:covered;size:20" json:"covered"`
	PhotoURL    string `gorm:"column:foto_url;size:255" json:"foto_url"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Area) TableName() string {
	return "areas"
}
