package memstore

import (
	"context"
	"sort"
	"strings"

	"compras/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type fornecedorRepo struct{ s *Store }

func (r *fornecedorRepo) Create(ctx context.Context, f *model.Fornecedor) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	now := r.s.Now()
	f.ID = newID(f.ID)
	f.CreatedAt, f.UpdatedAt = now, now
	r.s.data.fornecedores = append(r.s.data.fornecedores, *f)
	return nil
}

func (r *fornecedorRepo) index(id uuid.UUID) int {
	for i, f := range r.s.data.fornecedores {
		if f.ID == id && !f.DeletedAt.Valid {
			return i
		}
	}
	return -1
}

func (r *fornecedorRepo) Update(ctx context.Context, f *model.Fornecedor) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	i := r.index(f.ID)
	if i < 0 {
		return gorm.ErrRecordNotFound
	}
	f.UpdatedAt = r.s.Now()
	r.s.data.fornecedores[i] = *f
	return nil
}

func (r *fornecedorRepo) Delete(ctx context.Context, id uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	i := r.index(id)
	if i < 0 {
		return gorm.ErrRecordNotFound
	}
	r.s.data.fornecedores[i].DeletedAt = gorm.DeletedAt{Time: r.s.Now(), Valid: true}
	return nil
}

func (r *fornecedorRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Fornecedor, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	i := r.index(id)
	if i < 0 {
		return nil, gorm.ErrRecordNotFound
	}
	f := r.s.data.fornecedores[i]
	return &f, nil
}

func (r *fornecedorRepo) FindByNome(ctx context.Context, nome string) (*model.Fornecedor, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, f := range r.s.data.fornecedores {
		if !f.DeletedAt.Valid && strings.EqualFold(f.Nome, nome) {
			return &f, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fornecedorRepo) List(ctx context.Context, search string) ([]model.Fornecedor, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	search = strings.ToLower(search)
	var out []model.Fornecedor
	for _, f := range r.s.data.fornecedores {
		if f.DeletedAt.Valid {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(f.Nome), search) &&
			!strings.Contains(strings.ToLower(f.Categoria), search) &&
			!strings.Contains(strings.ToLower(f.Email), search) {
			continue
		}
		out = append(out, f)
	}
	sort.SliceStable(out, func(a, b int) bool { return out[a].Nome < out[b].Nome })
	return out, nil
}

type centroCustoRepo struct{ s *Store }

// codigoTaken mirrors the partial unique index over live rows
func (r *centroCustoRepo) codigoTaken(codigo string, except uuid.UUID) bool {
	for _, cc := range r.s.data.centros {
		if cc.Codigo == codigo && cc.ID != except && !cc.DeletedAt.Valid {
			return true
		}
	}
	return false
}

func (r *centroCustoRepo) Create(ctx context.Context, cc *model.CentroCusto) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if r.codigoTaken(cc.Codigo, uuid.Nil) {
		return gorm.ErrDuplicatedKey
	}
	now := r.s.Now()
	cc.ID = newID(cc.ID)
	cc.CreatedAt, cc.UpdatedAt = now, now
	r.s.data.centros = append(r.s.data.centros, *cc)
	return nil
}

func (r *centroCustoRepo) index(id uuid.UUID) int {
	for i, cc := range r.s.data.centros {
		if cc.ID == id && !cc.DeletedAt.Valid {
			return i
		}
	}
	return -1
}

func (r *centroCustoRepo) Update(ctx context.Context, cc *model.CentroCusto) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	i := r.index(cc.ID)
	if i < 0 {
		return gorm.ErrRecordNotFound
	}
	if r.codigoTaken(cc.Codigo, cc.ID) {
		return gorm.ErrDuplicatedKey
	}
	cc.UpdatedAt = r.s.Now()
	r.s.data.centros[i] = *cc
	return nil
}

func (r *centroCustoRepo) Delete(ctx context.Context, id uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	i := r.index(id)
	if i < 0 {
		return gorm.ErrRecordNotFound
	}
	r.s.data.centros[i].DeletedAt = gorm.DeletedAt{Time: r.s.Now(), Valid: true}
	return nil
}

func (r *centroCustoRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.CentroCusto, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	i := r.index(id)
	if i < 0 {
		return nil, gorm.ErrRecordNotFound
	}
	cc := r.s.data.centros[i]
	return &cc, nil
}

func (r *centroCustoRepo) FindByCodigo(ctx context.Context, codigo string) (*model.CentroCusto, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, cc := range r.s.data.centros {
		if cc.Codigo == codigo && !cc.DeletedAt.Valid {
			return &cc, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *centroCustoRepo) List(ctx context.Context, onlyActive bool) ([]model.CentroCusto, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var out []model.CentroCusto
	for _, cc := range r.s.data.centros {
		if cc.DeletedAt.Valid || (onlyActive && !cc.Ativo) {
			continue
		}
		out = append(out, cc)
	}
	sort.SliceStable(out, func(a, b int) bool { return out[a].Codigo < out[b].Codigo })
	return out, nil
}

type usuarioRepo struct{ s *Store }

func (r *usuarioRepo) emailTaken(email string, except uuid.UUID) bool {
	for _, u := range r.s.data.usuarios {
		if u.Email == email && u.ID != except {
			return true
		}
	}
	return false
}

func (r *usuarioRepo) Create(ctx context.Context, u *model.Usuario) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if r.emailTaken(u.Email, uuid.Nil) {
		return gorm.ErrDuplicatedKey
	}
	now := r.s.Now()
	u.ID = newID(u.ID)
	u.CreatedAt, u.UpdatedAt = now, now
	r.s.data.usuarios = append(r.s.data.usuarios, *u)
	return nil
}

func (r *usuarioRepo) GetByID(ctx context.Context, id uuid.UUID) (*model.Usuario, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, u := range r.s.data.usuarios {
		if u.ID == id {
			return &u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *usuarioRepo) GetByEmail(ctx context.Context, email string) (*model.Usuario, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, u := range r.s.data.usuarios {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *usuarioRepo) List(ctx context.Context) ([]model.Usuario, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := append([]model.Usuario(nil), r.s.data.usuarios...)
	sort.SliceStable(out, func(a, b int) bool { return out[a].Nome < out[b].Nome })
	return out, nil
}

func (r *usuarioRepo) Update(ctx context.Context, u *model.Usuario) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for i, existing := range r.s.data.usuarios {
		if existing.ID == u.ID {
			if r.emailTaken(u.Email, u.ID) {
				return gorm.ErrDuplicatedKey
			}
			u.UpdatedAt = r.s.Now()
			r.s.data.usuarios[i] = *u
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

type auditRepo struct{ s *Store }

func (r *auditRepo) Log(ctx context.Context, entry *model.AuditLog) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	entry.ID = newID(entry.ID)
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = r.s.Now()
	}
	r.s.data.audit = append(r.s.data.audit, *entry)
	return nil
}

func (r *auditRepo) List(ctx context.Context, page, limit int) ([]model.AuditLog, int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	total := int64(len(r.s.data.audit))

	// newest first
	ordered := make([]model.AuditLog, len(r.s.data.audit))
	for i, e := range r.s.data.audit {
		ordered[len(ordered)-1-i] = e
	}

	offset := (page - 1) * limit
	if offset >= len(ordered) {
		return []model.AuditLog{}, total, nil
	}
	end := offset + limit
	if end > len(ordered) {
		end = len(ordered)
	}
	return ordered[offset:end], total, nil
}
