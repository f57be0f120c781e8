// Package workflow holds the purchase request lifecycle: its states, the
// events that move a request between them, and the approval stage each
// state belongs to.
package workflow

import (
	"errors"
	"fmt"
)

// Status is the lifecycle state of a purchase request
type Status string

const (
	StatusSolicitado         Status = "Solicitado"
	StatusAprovado           Status = "Aprovado"
	StatusEmCotacao          Status = "Em Cotação"
	StatusAprovadoParaCompra Status = "Aprovado para Compra"
	StatusAquisitado         Status = "Aquisitado"
	StatusFinalizado         Status = "Finalizado"
	StatusRejeitado          Status = "Rejeitado"
)

// Event is an action applied to a request
type Event string

const (
	EventAprovar            Event = "aprovar"
	EventRejeitar           Event = "rejeitar"
	EventIniciarCotacao     Event = "iniciar_cotacao"
	EventAprovarCompra      Event = "aprovar_compra"
	EventRegistrarAquisicao Event = "registrar_aquisicao"
	EventFinalizar          Event = "finalizar"
)

// Etapa is the approval stage an approval record is logged against
type Etapa string

const (
	EtapaSolicitacao Etapa = "Solicitação"
	EtapaCotacao     Etapa = "Cotação"
	EtapaAquisicao   Etapa = "Aquisição"
)

var ErrInvalidTransition = errors.New("transição de status inválida")

// TransitionError describes a rejected (state, event) pair
type TransitionError struct {
	From  Status
	Event Event
	To    Status
}

func (e *TransitionError) Error() string {
	if e.To != "" {
		return fmt.Sprintf("%s: %q → %q", ErrInvalidTransition, e.From, e.To)
	}
	return fmt.Sprintf("%s: evento %q não é permitido em %q", ErrInvalidTransition, e.Event, e.From)
}

func (e *TransitionError) Unwrap() error { return ErrInvalidTransition }

var transitions = map[Status]map[Event]Status{
	StatusSolicitado: {
		EventAprovar:  StatusAprovado,
		EventRejeitar: StatusRejeitado,
	},
	StatusAprovado: {
		EventIniciarCotacao: StatusEmCotacao,
		EventRejeitar:       StatusRejeitado,
	},
	StatusEmCotacao: {
		EventAprovarCompra: StatusAprovadoParaCompra,
		EventRejeitar:      StatusRejeitado,
	},
	StatusAprovadoParaCompra: {
		EventRegistrarAquisicao: StatusAquisitado,
		EventRejeitar:           StatusRejeitado,
	},
	StatusAquisitado: {
		EventFinalizar: StatusFinalizado,
	},
}

var allStatuses = []Status{
	StatusSolicitado,
	StatusAprovado,
	StatusEmCotacao,
	StatusAprovadoParaCompra,
	StatusAquisitado,
	StatusFinalizado,
	StatusRejeitado,
}

// Statuses returns every known status in lifecycle order
func Statuses() []Status {
	out := make([]Status, len(allStatuses))
	copy(out, allStatuses)
	return out
}

// ParseStatus validates a wire value
func ParseStatus(s string) (Status, error) {
	for _, st := range allStatuses {
		if string(st) == s {
			return st, nil
		}
	}
	return "", fmt.Errorf("status desconhecido: %q", s)
}

// Terminal reports whether no event can leave s
func (s Status) Terminal() bool {
	return s == StatusFinalizado || s == StatusRejeitado
}

// Transition applies ev to from and returns the resulting state.
func Transition(from Status, ev Event) (Status, error) {
	to, ok := transitions[from][ev]
	if !ok {
		return from, &TransitionError{From: from, Event: ev}
	}
	return to, nil
}

// EventFor finds the event that moves a request from one state to another.
func EventFor(from, to Status) (Event, error) {
	for ev, target := range transitions[from] {
		if target == to {
			return ev, nil
		}
	}
	return "", &TransitionError{From: from, To: to}
}

// StageOf returns the approval stage a request in state s is waiting on
func StageOf(s Status) Etapa {
	switch s {
	case StatusSolicitado:
		return EtapaSolicitacao
	case StatusAprovado, StatusEmCotacao:
		return EtapaCotacao
	default:
		return EtapaAquisicao
	}
}

// RequiresApproval reports whether ev must be backed by an approver decision
func (ev Event) RequiresApproval() bool {
	return ev == EventAprovar || ev == EventRejeitar || ev == EventAprovarCompra
}

// Approved reports whether ev counts as a favourable decision
func (ev Event) Approved() bool {
	return ev != EventRejeitar
}
