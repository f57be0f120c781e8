package model

import (
	"time"

	"github.com/google/uuid"
)

// Usuario is an account of the procurement system
type Usuario struct {
	ID           uuid.UUID   `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Nome         string      `gorm:"type:varchar(255);not null" json:"nome"`
	Email        string      `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Cargo        string      `gorm:"type:varchar(50);not null" json:"cargo"`
	NivelAcesso  NivelAcesso `gorm:"type:varchar(20);not null" json:"nivel_acesso"` // derived from Cargo
	Ativo        bool        `gorm:"not null;default:true" json:"ativo"`
	Departamento string      `gorm:"type:varchar(100)" json:"departamento"`
	Senha        string      `gorm:"type:varchar(255);not null" json:"-"` // bcrypt hash
	Matricula    string      `gorm:"type:varchar(50)" json:"matricula"`
	CreatedAt    time.Time   `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time   `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Usuario) TableName() string { return "usuarios" }
