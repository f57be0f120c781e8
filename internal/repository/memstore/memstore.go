// Package memstore is an in-memory implementation of the repository
// interfaces. It honours the same not-found and unique-key errors as the
// PostgreSQL repositories and rolls back on failed transactions, which makes
// it a drop-in backend for service and handler tests.
package memstore

import (
	"context"
	"sync"
	"time"

	"compras/internal/model"
	"compras/internal/repository"

	"github.com/google/uuid"
)

type state struct {
	solicitacoes []model.Solicitacao
	itens        []model.Item
	aprovacoes   []model.Aprovacao
	cotacoes     []model.Cotacao
	finalizacoes []model.Finalizacao
	fornecedores []model.Fornecedor
	centros      []model.CentroCusto
	usuarios     []model.Usuario
	audit        []model.AuditLog
}

func (s state) clone() state {
	out := state{
		solicitacoes: append([]model.Solicitacao(nil), s.solicitacoes...),
		itens:        append([]model.Item(nil), s.itens...),
		aprovacoes:   append([]model.Aprovacao(nil), s.aprovacoes...),
		fornecedores: append([]model.Fornecedor(nil), s.fornecedores...),
		centros:      append([]model.CentroCusto(nil), s.centros...),
		usuarios:     append([]model.Usuario(nil), s.usuarios...),
		audit:        append([]model.AuditLog(nil), s.audit...),
	}
	for _, c := range s.cotacoes {
		out.cotacoes = append(out.cotacoes, copyCotacao(c))
	}
	for _, f := range s.finalizacoes {
		out.finalizacoes = append(out.finalizacoes, copyFinalizacao(f))
	}
	return out
}

// Store holds every table in memory. The zero value is not usable; call New.
type Store struct {
	txMu sync.Mutex
	mu   sync.RWMutex
	data state

	// Now stamps created rows; tests may replace it
	Now func() time.Time
}

func New() *Store {
	return &Store{Now: time.Now}
}

type txMarker struct{}

// RunInTx serialises transactions and restores the previous contents when
// fn fails. Nested calls join the outer transaction.
func (s *Store) RunInTx(ctx context.Context, fn func(txCtx context.Context) error) error {
	if ctx.Value(txMarker{}) != nil {
		return fn(ctx)
	}

	s.txMu.Lock()
	defer s.txMu.Unlock()

	s.mu.RLock()
	snapshot := s.data.clone()
	s.mu.RUnlock()

	if err := fn(context.WithValue(ctx, txMarker{}, true)); err != nil {
		s.mu.Lock()
		s.data = snapshot
		s.mu.Unlock()
		return err
	}
	return nil
}

func (s *Store) TxManager() repository.TransactionManager { return s }

func (s *Store) Solicitacoes() repository.SolicitacaoRepository { return &solicitacaoRepo{s} }
func (s *Store) Cotacoes() repository.CotacaoRepository         { return &cotacaoRepo{s} }
func (s *Store) Fornecedores() repository.FornecedorRepository  { return &fornecedorRepo{s} }
func (s *Store) CentrosCusto() repository.CentroCustoRepository { return &centroCustoRepo{s} }
func (s *Store) Usuarios() repository.UsuarioRepository         { return &usuarioRepo{s} }
func (s *Store) Audit() repository.AuditRepository              { return &auditRepo{s} }

// Ping satisfies database.Pinger
func (s *Store) Ping(ctx context.Context) error { return ctx.Err() }

func newID(id uuid.UUID) uuid.UUID {
	if id == uuid.Nil {
		return uuid.New()
	}
	return id
}

func copyCotacao(c model.Cotacao) model.Cotacao {
	c.Itens = append([]model.CotacaoItem(nil), c.Itens...)
	c.FornecedorRef = nil
	return c
}

func copyFinalizacao(f model.Finalizacao) model.Finalizacao {
	f.Itens = append([]model.FinalizacaoItem(nil), f.Itens...)
	f.Resumo = append([]byte(nil), f.Resumo...)
	return f
}
