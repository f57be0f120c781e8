// Package notification fans workflow events out to interested parties.
// Delivery is best effort: a failing channel never fails the operation that
// produced the event.
package notification

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

type EventType string

const (
	EventStatusAlterado   EventType = "status_alterado"
	EventCotacaoCriada    EventType = "cotacao_criada"
	EventCotacaoAvaliada  EventType = "cotacao_avaliada"
	EventCompraFinalizada EventType = "compra_finalizada"
)

// Event describes something that happened to a purchase request
type Event struct {
	Type           EventType        `json:"type"`
	SolicitacaoID  string           `json:"solicitacao_id"`
	SolicitanteID  string           `json:"-"`
	StatusAnterior string           `json:"status_anterior,omitempty"`
	StatusNovo     string           `json:"status_novo,omitempty"`
	Etapa          string           `json:"etapa,omitempty"`
	Por            string           `json:"por,omitempty"`
	Motivo         string           `json:"motivo,omitempty"`
	Fornecedor     string           `json:"fornecedor,omitempty"`
	Valor          *decimal.Decimal `json:"valor,omitempty"`
	OcorridoEm     time.Time        `json:"ocorrido_em"`
}

type Notifier interface {
	Notify(ctx context.Context, ev Event)
}

// Multi delivers every event to each notifier in order
type Multi []Notifier

func (m Multi) Notify(ctx context.Context, ev Event) {
	for _, n := range m {
		if n != nil {
			n.Notify(ctx, ev)
		}
	}
}

// Nop drops every event
type Nop struct{}

func (Nop) Notify(context.Context, Event) {}
