package workflow

import (
	"errors"
	"testing"
)

func TestTransition_HappyPath(t *testing.T) {
	steps := []struct {
		event Event
		want  Status
	}{
		{EventAprovar, StatusAprovado},
		{EventIniciarCotacao, StatusEmCotacao},
		{EventAprovarCompra, StatusAprovadoParaCompra},
		{EventRegistrarAquisicao, StatusAquisitado},
		{EventFinalizar, StatusFinalizado},
	}

	current := StatusSolicitado
	for _, step := range steps {
		next, err := Transition(current, step.event)
		if err != nil {
			t.Fatalf("%s from %s: unexpected error %v", step.event, current, err)
		}
		if next != step.want {
			t.Fatalf("%s from %s: expected %s, got %s", step.event, current, step.want, next)
		}
		current = next
	}
}

func TestTransition_RejectFromEveryOpenStage(t *testing.T) {
	for _, from := range []Status{StatusSolicitado, StatusAprovado, StatusEmCotacao, StatusAprovadoParaCompra} {
		next, err := Transition(from, EventRejeitar)
		if err != nil || next != StatusRejeitado {
			t.Fatalf("reject from %s: got %s, %v", from, next, err)
		}
	}
}

func TestTransition_IllegalJumps(t *testing.T) {
	cases := []struct {
		from  Status
		event Event
	}{
		{StatusSolicitado, EventFinalizar},
		{StatusSolicitado, EventIniciarCotacao},
		{StatusAprovado, EventAprovar},
		{StatusAquisitado, EventRejeitar},
		{StatusFinalizado, EventRejeitar},
		{StatusRejeitado, EventAprovar},
	}

	for _, tc := range cases {
		next, err := Transition(tc.from, tc.event)
		if !errors.Is(err, ErrInvalidTransition) {
			t.Fatalf("%s from %s: expected ErrInvalidTransition, got %v", tc.event, tc.from, err)
		}
		if next != tc.from {
			t.Fatalf("state must not change on failure, got %s", next)
		}
		var te *TransitionError
		if !errors.As(err, &te) || te.From != tc.from || te.Event != tc.event {
			t.Fatalf("unexpected error detail: %#v", err)
		}
	}
}

func TestEventFor(t *testing.T) {
	ev, err := EventFor(StatusSolicitado, StatusAprovado)
	if err != nil || ev != EventAprovar {
		t.Fatalf("expected aprovar, got %s, %v", ev, err)
	}

	ev, err = EventFor(StatusEmCotacao, StatusRejeitado)
	if err != nil || ev != EventRejeitar {
		t.Fatalf("expected rejeitar, got %s, %v", ev, err)
	}

	if _, err := EventFor(StatusSolicitado, StatusFinalizado); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}
	if _, err := EventFor(StatusSolicitado, StatusSolicitado); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("self transition must be rejected, got %v", err)
	}
}

func TestStageOf(t *testing.T) {
	cases := map[Status]Etapa{
		StatusSolicitado:         EtapaSolicitacao,
		StatusAprovado:           EtapaCotacao,
		StatusEmCotacao:          EtapaCotacao,
		StatusAprovadoParaCompra: EtapaAquisicao,
		StatusAquisitado:         EtapaAquisicao,
	}
	for s, want := range cases {
		if got := StageOf(s); got != want {
			t.Fatalf("StageOf(%s) = %s, want %s", s, got, want)
		}
	}
}

func TestParseStatus(t *testing.T) {
	for _, s := range Statuses() {
		got, err := ParseStatus(string(s))
		if err != nil || got != s {
			t.Fatalf("round trip failed for %s", s)
		}
	}
	if _, err := ParseStatus("Cancelado"); err == nil {
		t.Fatal("expected error for unknown status")
	}
}

func TestTerminal(t *testing.T) {
	if !StatusFinalizado.Terminal() || !StatusRejeitado.Terminal() {
		t.Fatal("Finalizado and Rejeitado must be terminal")
	}
	if StatusAquisitado.Terminal() {
		t.Fatal("Aquisitado is not terminal")
	}
}
