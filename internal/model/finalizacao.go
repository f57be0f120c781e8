package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// Finalizacao records which quoted lines were chosen for a request.
// A request has at most one; finalizing again replaces it.
type Finalizacao struct {
	ID            uuid.UUID         `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	SolicitacaoID uuid.UUID         `gorm:"type:uuid;uniqueIndex;not null" json:"solicitacao_id"`
	ValorTotal    decimal.Decimal   `gorm:"type:decimal(18,2);not null" json:"valor_total"`
	Resumo        datatypes.JSON    `gorm:"type:jsonb" json:"resumo" swaggertype:"object"` // per-supplier grouping snapshot
	FinalizadoPor string            `gorm:"type:varchar(255)" json:"finalizado_por,omitempty"`
	Itens         []FinalizacaoItem `gorm:"foreignKey:FinalizacaoID;constraint:OnDelete:CASCADE" json:"itens"`
	CreatedAt     time.Time         `json:"created_at"`
}

func (Finalizacao) TableName() string { return "finalizacoes" }

// FinalizacaoItem is one winning line of a finalization
type FinalizacaoItem struct {
	ID            uuid.UUID       `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	FinalizacaoID uuid.UUID       `gorm:"type:uuid;not null;index" json:"finalizacao_id"`
	CotacaoItemID uuid.UUID       `gorm:"type:uuid;not null" json:"cotacao_item_id"`
	CotacaoID     uuid.UUID       `gorm:"type:uuid;not null" json:"cotacao_id"`
	FornecedorID  uuid.UUID       `gorm:"type:uuid;not null;index" json:"fornecedor_id"`
	Fornecedor    string          `gorm:"type:varchar(255)" json:"fornecedor"`
	ItemKey       string          `gorm:"type:varchar(255);not null" json:"item_key"`
	Descricao     string          `gorm:"type:text" json:"descricao"`
	Quantidade    int             `gorm:"not null" json:"quantidade"`
	PrecoUnitario decimal.Decimal `gorm:"type:decimal(18,2);not null" json:"preco_unitario"`
	Subtotal      decimal.Decimal `gorm:"type:decimal(18,2);not null" json:"subtotal"`
}

func (FinalizacaoItem) TableName() string { return "finalizacao_itens" }
