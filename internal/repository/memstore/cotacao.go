package memstore

import (
	"context"
	"sort"
	"time"

	"compras/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type cotacaoRepo struct{ s *Store }

func (r *cotacaoRepo) Create(ctx context.Context, c *model.Cotacao) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if !r.solicitacaoExists(c.SolicitacaoID) || !r.fornecedorExists(c.FornecedorID) {
		return gorm.ErrForeignKeyViolated
	}

	now := r.s.Now()
	c.ID = newID(c.ID)
	c.CreatedAt, c.UpdatedAt = now, now
	if c.Status == "" {
		c.Status = model.CotacaoPendente
	}
	for i := range c.Itens {
		c.Itens[i].ID = newID(c.Itens[i].ID)
		c.Itens[i].CotacaoID = c.ID
	}
	r.s.data.cotacoes = append(r.s.data.cotacoes, copyCotacao(*c))
	return nil
}

func (r *cotacaoRepo) solicitacaoExists(id uuid.UUID) bool {
	for _, sol := range r.s.data.solicitacoes {
		if sol.ID == id {
			return true
		}
	}
	return false
}

// soft-deleted suppliers stay referenced, so any known id is accepted
func (r *cotacaoRepo) fornecedorExists(id uuid.UUID) bool {
	for _, f := range r.s.data.fornecedores {
		if f.ID == id {
			return true
		}
	}
	return false
}

func (r *cotacaoRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Cotacao, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, c := range r.s.data.cotacoes {
		if c.ID == id {
			out := copyCotacao(c)
			return &out, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *cotacaoRepo) List(ctx context.Context) ([]model.Cotacao, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]model.Cotacao, 0, len(r.s.data.cotacoes))
	for _, c := range r.s.data.cotacoes {
		out = append(out, copyCotacao(c))
	}
	sort.SliceStable(out, func(a, b int) bool { return out[a].CreatedAt.After(out[b].CreatedAt) })
	return out, nil
}

func (r *cotacaoRepo) ListBySolicitacao(ctx context.Context, solicitacaoID uuid.UUID) ([]model.Cotacao, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var out []model.Cotacao
	for _, c := range r.s.data.cotacoes {
		if c.SolicitacaoID == solicitacaoID {
			out = append(out, copyCotacao(c))
		}
	}
	return out, nil
}

func (r *cotacaoRepo) Update(ctx context.Context, c *model.Cotacao) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for i, existing := range r.s.data.cotacoes {
		if existing.ID == c.ID {
			updated := copyCotacao(*c)
			updated.Itens = existing.Itens
			updated.UpdatedAt = r.s.Now()
			r.s.data.cotacoes[i] = updated
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (r *cotacaoRepo) ReplaceFinalizacao(ctx context.Context, f *model.Finalizacao) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if !r.solicitacaoExists(f.SolicitacaoID) {
		return gorm.ErrForeignKeyViolated
	}

	kept := r.s.data.finalizacoes[:0]
	for _, existing := range r.s.data.finalizacoes {
		if existing.SolicitacaoID != f.SolicitacaoID {
			kept = append(kept, existing)
		}
	}

	f.ID = newID(f.ID)
	f.CreatedAt = r.s.Now()
	for i := range f.Itens {
		f.Itens[i].ID = newID(f.Itens[i].ID)
		f.Itens[i].FinalizacaoID = f.ID
	}
	r.s.data.finalizacoes = append(kept, copyFinalizacao(*f))
	return nil
}

func (r *cotacaoRepo) FindFinalizacao(ctx context.Context, solicitacaoID uuid.UUID) (*model.Finalizacao, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, f := range r.s.data.finalizacoes {
		if f.SolicitacaoID == solicitacaoID {
			out := copyFinalizacao(f)
			return &out, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *cotacaoRepo) ListFinalizacoes(ctx context.Context, from, to time.Time) ([]model.Finalizacao, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var out []model.Finalizacao
	for _, f := range r.s.data.finalizacoes {
		if f.CreatedAt.Before(from) || f.CreatedAt.After(to) {
			continue
		}
		out = append(out, copyFinalizacao(f))
	}
	return out, nil
}
