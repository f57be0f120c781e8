package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CentroCusto is an accounting bucket a request is charged to
type CentroCusto struct {
	ID        uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Codigo    string         `gorm:"type:varchar(50);not null;uniqueIndex:idx_centros_custo_codigo,where:deleted_at IS NULL" json:"codigo"`
	Descricao string         `gorm:"type:varchar(255);not null" json:"descricao"`
	Ativo     bool           `gorm:"not null;default:true" json:"ativo"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (CentroCusto) TableName() string { return "centros_custo" }
