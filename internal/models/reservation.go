package models

import "time"

type Reservation struct {
	ID uint `gorm:"primaryKey" json:"id"`

	AreaID uint `gorm:"column:area_id" json:"area_id"`
	Area   Area `gorm:"foreignKey:AreaID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"area"`

	UserID uint `gorm:"column:usuario_id" json:"usuario_id"`
	User   User `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"usuario"`

	// Data é a chave de agrupamento do dia; início/fim são os horários reais.
	Date      time.Time `gorm:"column:reserva_data;type:date" json:"reserva_data"`
	StartTime time.Time `gorm:"column:hora_inicio" json:"hora_inicio"`
	EndTime   time.Time `gorm:"column:hora_fim" json:"hora_fim"`

	Justification string `gorm:"column:justificacao;size:255" json:"justificacao"`
	Kind          string `gorm:"column:reserva_tipo;size:50" json:"reserva_tipo"`

	Status string `gorm:"column:status;size:20;default:'pendente'" json:"status"`
	Value  int    `gorm:"column:valor" json:"valor"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Reservation) TableName() string {
	return "reservations"
}
