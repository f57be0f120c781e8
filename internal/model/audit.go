package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

const (
	ActionCreateSolicitacao  = "CREATE_SOLICITACAO"
	ActionUpdateStatus       = "UPDATE_STATUS"
	ActionCreateCotacao      = "CREATE_COTACAO"
	ActionUpdateCotacao      = "UPDATE_COTACAO"
	ActionFinalizeCotacao    = "FINALIZE_COTACAO"
	ActionCreateFornecedor   = "CREATE_FORNECEDOR"
	ActionUpdateFornecedor   = "UPDATE_FORNECEDOR"
	ActionDeleteFornecedor   = "DELETE_FORNECEDOR"
	ActionCreateCentroCusto  = "CREATE_CENTRO_CUSTO"
	ActionUpdateCentroCusto  = "UPDATE_CENTRO_CUSTO"
	ActionDeleteCentroCusto  = "DELETE_CENTRO_CUSTO"
	ActionCreateUsuario      = "CREATE_USUARIO"
	ActionUpdateUsuario      = "UPDATE_USUARIO"
	ActionChangeUsuarioSenha = "CHANGE_USUARIO_SENHA"
)

// AuditLog tracks Who, What, and When for every write
type AuditLog struct {
	ID         uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID     *uuid.UUID     `gorm:"type:uuid;index" json:"user_id"` // nil when the caller is anonymous
	Action     string         `gorm:"type:varchar(50);not null;index" json:"action"`
	EntityID   string         `gorm:"type:varchar(50);index" json:"entity_id"`
	EntityName string         `gorm:"type:varchar(255)" json:"entity_name,omitempty"`
	Details    datatypes.JSON `gorm:"type:jsonb" json:"details" swaggertype:"object"`
	CreatedAt  time.Time      `gorm:"index" json:"created_at"`
}
