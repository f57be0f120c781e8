package service

import (
	"context"
	"fmt"
	"strings"

	"compras/internal/model"
	"compras/internal/repository"
)

type CreateCentroCustoRequest struct {
	Codigo    string `json:"codigo" binding:"required"`
	Descricao string `json:"descricao" binding:"required"`
	Ativo     *bool  `json:"ativo"` // defaults to true
}

type UpdateCentroCustoRequest struct {
	Codigo    *string `json:"codigo"`
	Descricao *string `json:"descricao"`
	Ativo     *bool   `json:"ativo"`
}

type CentroCustoService interface {
	Create(ctx context.Context, req CreateCentroCustoRequest) (*model.CentroCusto, error)
	Get(ctx context.Context, id string) (*model.CentroCusto, error)
	List(ctx context.Context, onlyActive bool) ([]model.CentroCusto, error)
	Update(ctx context.Context, id string, req UpdateCentroCustoRequest) (*model.CentroCusto, error)
	Delete(ctx context.Context, id string) error
}

type centroCustoService struct {
	tx    repository.TransactionManager
	repo  repository.CentroCustoRepository
	audit auditor
}

func NewCentroCustoService(tx repository.TransactionManager, repo repository.CentroCustoRepository, auditRepo repository.AuditRepository) CentroCustoService {
	return &centroCustoService{tx: tx, repo: repo, audit: auditor{repo: auditRepo}}
}

func (s *centroCustoService) Create(ctx context.Context, req CreateCentroCustoRequest) (*model.CentroCusto, error) {
	codigo := strings.TrimSpace(req.Codigo)
	descricao := strings.TrimSpace(req.Descricao)
	if codigo == "" || descricao == "" {
		return nil, validationError("codigo e descricao são obrigatórios")
	}

	cc := &model.CentroCusto{Codigo: codigo, Descricao: descricao, Ativo: true}
	if req.Ativo != nil {
		cc.Ativo = *req.Ativo
	}

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		// unique index is the source of truth; the lookup gives a clearer message
		if _, err := s.repo.FindByCodigo(txCtx, codigo); err == nil {
			return fmt.Errorf("%w: código %s já cadastrado", ErrConflict, codigo)
		} else if !repository.IsNotFound(err) {
			return err
		}
		if err := s.repo.Create(txCtx, cc); err != nil {
			return fmt.Errorf("failed to create centro de custo: %w", mapRepoError(err, "centro de custo"))
		}
		return s.audit.record(txCtx, model.ActionCreateCentroCusto, cc.ID.String(), cc.Codigo, req)
	})
	if err != nil {
		return nil, err
	}
	return cc, nil
}

func (s *centroCustoService) Get(ctx context.Context, id string) (*model.CentroCusto, error) {
	uid, err := parseID(id, "centro de custo")
	if err != nil {
		return nil, err
	}
	cc, err := s.repo.FindByID(ctx, uid)
	if err != nil {
		return nil, mapRepoError(err, "centro de custo")
	}
	return cc, nil
}

func (s *centroCustoService) List(ctx context.Context, onlyActive bool) ([]model.CentroCusto, error) {
	list, err := s.repo.List(ctx, onlyActive)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch centros de custo: %w", err)
	}
	if list == nil {
		list = []model.CentroCusto{}
	}
	return list, nil
}

func (s *centroCustoService) Update(ctx context.Context, id string, req UpdateCentroCustoRequest) (*model.CentroCusto, error) {
	uid, err := parseID(id, "centro de custo")
	if err != nil {
		return nil, err
	}

	var cc *model.CentroCusto
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		cc, err = s.repo.FindByID(txCtx, uid)
		if err != nil {
			return mapRepoError(err, "centro de custo")
		}

		if req.Codigo != nil {
			codigo := strings.TrimSpace(*req.Codigo)
			if codigo == "" {
				return validationError("codigo não pode ser vazio")
			}
			if codigo != cc.Codigo {
				if other, err := s.repo.FindByCodigo(txCtx, codigo); err == nil && other.ID != cc.ID {
					return fmt.Errorf("%w: código %s já cadastrado", ErrConflict, codigo)
				}
			}
			cc.Codigo = codigo
		}
		if req.Descricao != nil {
			descricao := strings.TrimSpace(*req.Descricao)
			if descricao == "" {
				return validationError("descricao não pode ser vazia")
			}
			cc.Descricao = descricao
		}
		if req.Ativo != nil {
			cc.Ativo = *req.Ativo
		}

		if err := s.repo.Update(txCtx, cc); err != nil {
			return fmt.Errorf("failed to update centro de custo: %w", mapRepoError(err, "centro de custo"))
		}
		return s.audit.record(txCtx, model.ActionUpdateCentroCusto, cc.ID.String(), cc.Codigo, req)
	})
	if err != nil {
		return nil, err
	}
	return cc, nil
}

func (s *centroCustoService) Delete(ctx context.Context, id string) error {
	uid, err := parseID(id, "centro de custo")
	if err != nil {
		return err
	}
	return s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.repo.Delete(txCtx, uid); err != nil {
			return mapRepoError(err, "centro de custo")
		}
		return s.audit.record(txCtx, model.ActionDeleteCentroCusto, uid.String(), "", nil)
	})
}
