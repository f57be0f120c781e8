package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Fornecedor is a supplier that can answer quote requests
type Fornecedor struct {
	ID        uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Nome      string         `gorm:"type:varchar(255);not null;index" json:"nome"`
	Categoria string         `gorm:"type:varchar(100)" json:"categoria"`
	Contato   string         `gorm:"type:varchar(255)" json:"contato"`
	Telefone  string         `gorm:"type:varchar(50)" json:"telefone"`
	Email     string         `gorm:"type:varchar(255)" json:"email"`
	Endereco  string         `gorm:"type:text" json:"endereco"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Fornecedor) TableName() string { return "fornecedores" }
