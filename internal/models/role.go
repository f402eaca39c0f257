package models

// Papéis canônicos, seedados no bootstrap (1 = administrador, 2 = cliente)
const (
	RoleAdministrador = "administrador"
	RoleCliente       = "cliente"
)

type Role struct {
	ID    uint   `gorm:"primaryKey" json:"id"`
	Label string `gorm:"column:tipo;size:50;not null" json:"tipo"`
}

func (Role) TableName() string {
	return "tipouser"
}
