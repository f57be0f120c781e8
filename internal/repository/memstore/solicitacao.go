package memstore

import (
	"context"
	"sort"

	"compras/internal/model"
	"compras/internal/workflow"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type solicitacaoRepo struct{ s *Store }

func (r *solicitacaoRepo) Create(ctx context.Context, sol *model.Solicitacao) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, existing := range r.s.data.solicitacoes {
		if existing.ID == sol.ID {
			return gorm.ErrDuplicatedKey
		}
	}

	now := r.s.Now()
	sol.ID = newID(sol.ID)
	sol.CreatedAt, sol.UpdatedAt = now, now
	for i := range sol.Itens {
		sol.Itens[i].ID = newID(sol.Itens[i].ID)
		sol.Itens[i].SolicitacaoID = sol.ID
		r.s.data.itens = append(r.s.data.itens, sol.Itens[i])
	}

	row := *sol
	row.Itens, row.Aprovacoes, row.Cotacoes, row.Finalizacao = nil, nil, nil, nil
	r.s.data.solicitacoes = append(r.s.data.solicitacoes, row)
	return nil
}

func (r *solicitacaoRepo) find(id uuid.UUID) (int, error) {
	for i, sol := range r.s.data.solicitacoes {
		if sol.ID == id {
			return i, nil
		}
	}
	return -1, gorm.ErrRecordNotFound
}

// FindByIDForUpdate relies on RunInTx serialising writers
func (r *solicitacaoRepo) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*model.Solicitacao, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	i, err := r.find(id)
	if err != nil {
		return nil, err
	}
	sol := r.s.data.solicitacoes[i]
	return &sol, nil
}

func (r *solicitacaoRepo) itensOf(id uuid.UUID) []model.Item {
	var out []model.Item
	for _, it := range r.s.data.itens {
		if it.SolicitacaoID == id {
			out = append(out, it)
		}
	}
	return out
}

func (r *solicitacaoRepo) FindByIDWithRelations(ctx context.Context, id uuid.UUID) (*model.Solicitacao, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	i, err := r.find(id)
	if err != nil {
		return nil, err
	}
	sol := r.s.data.solicitacoes[i]
	sol.Itens = r.itensOf(id)

	for _, a := range r.s.data.aprovacoes {
		if a.SolicitacaoID == id {
			sol.Aprovacoes = append(sol.Aprovacoes, a)
		}
	}
	sort.SliceStable(sol.Aprovacoes, func(a, b int) bool {
		return sol.Aprovacoes[a].DataAprovacao.Before(sol.Aprovacoes[b].DataAprovacao)
	})

	for _, c := range r.s.data.cotacoes {
		if c.SolicitacaoID == id {
			sol.Cotacoes = append(sol.Cotacoes, copyCotacao(c))
		}
	}
	for _, f := range r.s.data.finalizacoes {
		if f.SolicitacaoID == id {
			fin := copyFinalizacao(f)
			sol.Finalizacao = &fin
		}
	}
	return &sol, nil
}

func (r *solicitacaoRepo) List(ctx context.Context, statuses ...workflow.Status) ([]model.Solicitacao, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	wanted := make(map[workflow.Status]bool, len(statuses))
	for _, st := range statuses {
		wanted[st] = true
	}

	var out []model.Solicitacao
	for _, sol := range r.s.data.solicitacoes {
		if len(wanted) > 0 && !wanted[sol.Status] {
			continue
		}
		sol.Itens = r.itensOf(sol.ID)
		out = append(out, sol)
	}
	sort.SliceStable(out, func(a, b int) bool {
		return out[a].DataSolicitacao.After(out[b].DataSolicitacao)
	})
	return out, nil
}

func (r *solicitacaoRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status workflow.Status) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	i, err := r.find(id)
	if err != nil {
		return err
	}
	r.s.data.solicitacoes[i].Status = status
	r.s.data.solicitacoes[i].UpdatedAt = r.s.Now()
	return nil
}

func (r *solicitacaoRepo) UpdateStatusIf(ctx context.Context, id uuid.UUID, from, to workflow.Status) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	i, err := r.find(id)
	if err != nil || r.s.data.solicitacoes[i].Status != from {
		return false, nil
	}
	r.s.data.solicitacoes[i].Status = to
	r.s.data.solicitacoes[i].UpdatedAt = r.s.Now()
	return true, nil
}

func (r *solicitacaoRepo) AddAprovacao(ctx context.Context, a *model.Aprovacao) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, err := r.find(a.SolicitacaoID); err != nil {
		return gorm.ErrForeignKeyViolated
	}
	a.ID = newID(a.ID)
	r.s.data.aprovacoes = append(r.s.data.aprovacoes, *a)
	return nil
}
