package model

import (
	"time"

	"compras/internal/workflow"

	"github.com/google/uuid"
)

// Categoria enum constants
const (
	CategoriaMateriais = "Materiais"
	CategoriaServicos  = "Serviços"
	CategoriaOutros    = "Outros"
)

// Prioridade enum constants
const (
	PrioridadeUrgente  = "Urgente"
	PrioridadeModerada = "Moderada"
	PrioridadeBasica   = "Básica"
)

// Aprovacao status values
const (
	AprovacaoAprovado  = "Aprovado"
	AprovacaoRejeitado = "Rejeitado"
)

// Solicitacao is a purchase request moving through the approval workflow
type Solicitacao struct {
	ID              uuid.UUID       `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	NomeSolicitante string          `gorm:"type:varchar(255);not null" json:"nome_solicitante"`
	SolicitanteID   *uuid.UUID      `gorm:"type:uuid;index" json:"solicitante_id,omitempty"` // user that raised it, when known
	Aplicacao       string          `gorm:"type:text" json:"aplicacao"`
	CentroCusto     string          `gorm:"type:varchar(50);index" json:"centro_custo"`
	DataSolicitacao time.Time       `gorm:"not null" json:"data_solicitacao"`
	LocalEntrega    string          `gorm:"type:varchar(255)" json:"local_entrega"`
	PrazoEntrega    string          `gorm:"type:varchar(10)" json:"prazo_entrega"` // YYYY-MM-DD
	Categoria       string          `gorm:"type:varchar(20);not null;default:'Outros'" json:"categoria"`
	Motivo          string          `gorm:"type:text" json:"motivo"`
	Prioridade      string          `gorm:"type:varchar(20);not null;default:'Básica'" json:"prioridade"`
	Status          workflow.Status `gorm:"type:varchar(30);not null;index" json:"status"`
	Itens           []Item          `gorm:"foreignKey:SolicitacaoID;constraint:OnDelete:CASCADE" json:"itens,omitempty"`
	Aprovacoes      []Aprovacao     `gorm:"foreignKey:SolicitacaoID;constraint:OnDelete:CASCADE" json:"aprovacoes,omitempty"`
	Cotacoes        []Cotacao       `gorm:"foreignKey:SolicitacaoID" json:"cotacoes,omitempty"`
	Finalizacao     *Finalizacao    `gorm:"foreignKey:SolicitacaoID" json:"finalizacao,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

func (Solicitacao) TableName() string { return "solicitacoes" }

// Item is a requested good or service. Items never change after creation.
type Item struct {
	ID            uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	SolicitacaoID uuid.UUID  `gorm:"type:uuid;not null;index" json:"solicitacao_id"`
	Descricao     string     `gorm:"type:text;not null" json:"descricao"`
	Quantidade    int        `gorm:"not null;check:quantidade >= 1" json:"quantidade"`
	IDSolicitante *uuid.UUID `gorm:"column:id_solicitante;type:uuid" json:"id_solicitante,omitempty"`
}

func (Item) TableName() string { return "itens" }

// Aprovacao is an append-only approval decision on a request
type Aprovacao struct {
	ID             uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	SolicitacaoID  uuid.UUID      `gorm:"type:uuid;not null;index" json:"solicitacao_id"`
	Etapa          workflow.Etapa `gorm:"type:varchar(20);not null" json:"etapa"`
	Status         string         `gorm:"type:varchar(20);not null" json:"status"` // Aprovado, Rejeitado
	AprovadoPor    string         `gorm:"type:varchar(255);not null" json:"aprovado_por"`
	NivelAprovacao NivelAprovacao `gorm:"type:smallint;not null;default:0" json:"nivel_aprovacao"`
	MotivoRejeicao string         `gorm:"type:text" json:"motivo_rejeicao,omitempty"`
	DataAprovacao  time.Time      `gorm:"not null" json:"data_aprovacao"`
}

func (Aprovacao) TableName() string { return "aprovacoes" }
