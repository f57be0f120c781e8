package service_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"compras/internal/model"
	"compras/internal/notification"
	"compras/internal/repository"
	"compras/internal/repository/memstore"
	"compras/internal/service"

	"github.com/shopspring/decimal"
)

type recorder struct {
	mu     sync.Mutex
	events []notification.Event
}

func (r *recorder) Notify(_ context.Context, ev notification.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, ev)
}

func (r *recorder) types() []notification.EventType {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]notification.EventType, 0, len(r.events))
	for _, ev := range r.events {
		out = append(out, ev.Type)
	}
	return out
}

type env struct {
	store        *memstore.Store
	events       *recorder
	solicitacoes service.SolicitacaoService
	cotacoes     service.CotacaoService
	fornecedores service.FornecedorService
	centros      service.CentroCustoService
	usuarios     service.UsuarioService
}

func newEnv(t *testing.T) *env {
	t.Helper()
	store := memstore.New()
	events := &recorder{}
	tx := store.TxManager()
	return &env{
		store:        store,
		events:       events,
		solicitacoes: service.NewSolicitacaoService(tx, store.Solicitacoes(), store.Audit(), events),
		cotacoes:     service.NewCotacaoService(tx, store.Solicitacoes(), store.Cotacoes(), store.Fornecedores(), store.Audit(), events),
		fornecedores: service.NewFornecedorService(tx, store.Fornecedores(), store.Audit()),
		centros:      service.NewCentroCustoService(tx, store.CentrosCusto(), store.Audit()),
		usuarios: service.NewUsuarioService(tx, store.Usuarios(), store.Audit(), service.TokenConfig{
			Secret: []byte("test-secret"),
			TTL:    time.Hour,
		}),
	}
}

func (e *env) createRequest(t *testing.T, items ...service.ItemInput) *model.Solicitacao {
	t.Helper()
	if len(items) == 0 {
		items = []service.ItemInput{{Descricao: "Parafusos", Quantidade: 10}}
	}
	sol, err := e.solicitacoes.Create(context.Background(), service.CreateSolicitacaoRequest{
		RequestData: service.SolicitacaoData{
			NomeSolicitante: "Ana",
			Aplicacao:       "Manutenção da linha 2",
			CentroCusto:     "CC-100",
			LocalEntrega:    "Almoxarifado",
		},
		Items: items,
	})
	if err != nil {
		t.Fatalf("create request: %v", err)
	}
	return sol
}

func (e *env) approveRequest(t *testing.T, id string) *model.Solicitacao {
	t.Helper()
	sol, err := e.solicitacoes.UpdateStatus(context.Background(), id, service.UpdateStatusRequest{
		Status: "Aprovado",
		ApprovalData: &service.ApprovalData{
			AprovadoPor:    "Bruno",
			NivelAprovacao: model.NivelSupervisao,
		},
	})
	if err != nil {
		t.Fatalf("approve request: %v", err)
	}
	return sol
}

func (e *env) createSupplier(t *testing.T, nome string) *model.Fornecedor {
	t.Helper()
	f, err := e.fornecedores.Create(context.Background(), service.CreateFornecedorRequest{Nome: nome})
	if err != nil {
		t.Fatalf("create supplier: %v", err)
	}
	return f
}

func (e *env) auditCount(t *testing.T) int64 {
	t.Helper()
	_, total, err := e.store.Audit().List(context.Background(), 1, 1)
	if err != nil {
		t.Fatalf("audit list: %v", err)
	}
	return total
}

func money(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func assertErr(t *testing.T, err, target error) {
	t.Helper()
	if !errors.Is(err, target) {
		t.Fatalf("expected %v, got %v", target, err)
	}
}

// brokenAudit fails every write so callers must roll back
type brokenAudit struct{ repository.AuditRepository }

func (brokenAudit) Log(context.Context, *model.AuditLog) error {
	return errors.New("audit storage unavailable")
}
