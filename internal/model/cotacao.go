package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Cotacao status values
const (
	CotacaoPendente  = "Pendente"
	CotacaoAprovado  = "Aprovado"
	CotacaoRejeitado = "Rejeitado"
)

// Cotacao is one supplier's answer to a purchase request.
// Preco is the sum of its line items when it has any.
type Cotacao struct {
	ID             uuid.UUID       `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	SolicitacaoID  uuid.UUID       `gorm:"type:uuid;not null;index" json:"solicitacao_id"`
	FornecedorID   uuid.UUID       `gorm:"type:uuid;not null;index" json:"fornecedor_id"`
	Fornecedor     string          `gorm:"type:varchar(255);not null" json:"fornecedor"` // supplier name at quote time
	FornecedorRef  *Fornecedor     `gorm:"foreignKey:FornecedorID" json:"-" swaggerignore:"true"`
	Preco          decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0" json:"preco"`
	PrazoEntrega   string          `gorm:"type:varchar(100)" json:"prazo_entrega"`
	Condicoes      string          `gorm:"type:text" json:"condicoes"`
	NivelAprovacao NivelAprovacao  `gorm:"type:smallint;not null;default:0" json:"nivel_aprovacao"`
	Status         string          `gorm:"type:varchar(20);not null;default:'Pendente';index" json:"status"`
	AprovadoPor    string          `gorm:"type:varchar(255)" json:"aprovado_por,omitempty"`
	Itens          []CotacaoItem   `gorm:"foreignKey:CotacaoID;constraint:OnDelete:CASCADE" json:"itens,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

func (Cotacao) TableName() string { return "cotacoes" }

// CotacaoItem is a priced line of a quote. ItemID points at the request item
// it answers so that quotes from different suppliers line up.
type CotacaoItem struct {
	ID            uuid.UUID       `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	CotacaoID     uuid.UUID       `gorm:"type:uuid;not null;index" json:"cotacao_id"`
	ItemID        *uuid.UUID      `gorm:"type:uuid;index" json:"item_id,omitempty"`
	Descricao     string          `gorm:"type:text;not null" json:"descricao"`
	Quantidade    int             `gorm:"not null" json:"quantidade"`
	PrecoUnitario decimal.Decimal `gorm:"type:decimal(18,2);not null" json:"preco_unitario"`
}

func (CotacaoItem) TableName() string { return "cotacao_itens" }

// Subtotal is unit price × quantity
func (ci CotacaoItem) Subtotal() decimal.Decimal {
	return ci.PrecoUnitario.Mul(decimal.NewFromInt(int64(ci.Quantidade)))
}
