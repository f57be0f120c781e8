package service

import (
	"context"
	"fmt"
	"net/mail"
	"strings"

	"compras/internal/model"
	"compras/internal/repository"
)

// --- DTOs ---

type CreateFornecedorRequest struct {
	Nome      string `json:"nome" binding:"required"`
	Categoria string `json:"categoria"`
	Contato   string `json:"contato"`
	Telefone  string `json:"telefone"`
	Email     string `json:"email"`
	Endereco  string `json:"endereco"`
}

type UpdateFornecedorRequest struct {
	Nome      *string `json:"nome"`
	Categoria *string `json:"categoria"`
	Contato   *string `json:"contato"`
	Telefone  *string `json:"telefone"`
	Email     *string `json:"email"`
	Endereco  *string `json:"endereco"`
}

// --- Interface ---

type FornecedorService interface {
	Create(ctx context.Context, req CreateFornecedorRequest) (*model.Fornecedor, error)
	Get(ctx context.Context, id string) (*model.Fornecedor, error)
	List(ctx context.Context, search string) ([]model.Fornecedor, error)
	Update(ctx context.Context, id string, req UpdateFornecedorRequest) (*model.Fornecedor, error)
	Delete(ctx context.Context, id string) error
}

// --- Implementation ---

type fornecedorService struct {
	tx    repository.TransactionManager
	repo  repository.FornecedorRepository
	audit auditor
}

func NewFornecedorService(tx repository.TransactionManager, repo repository.FornecedorRepository, auditRepo repository.AuditRepository) FornecedorService {
	return &fornecedorService{tx: tx, repo: repo, audit: auditor{repo: auditRepo}}
}

func validEmail(email string) bool {
	_, err := mail.ParseAddress(email)
	return err == nil
}

func (s *fornecedorService) Create(ctx context.Context, req CreateFornecedorRequest) (*model.Fornecedor, error) {
	nome := strings.TrimSpace(req.Nome)
	if nome == "" {
		return nil, validationError("nome é obrigatório")
	}
	if req.Email != "" && !validEmail(req.Email) {
		return nil, validationError("email inválido")
	}

	f := &model.Fornecedor{
		Nome:      nome,
		Categoria: req.Categoria,
		Contato:   req.Contato,
		Telefone:  req.Telefone,
		Email:     req.Email,
		Endereco:  req.Endereco,
	}

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.repo.Create(txCtx, f); err != nil {
			return fmt.Errorf("failed to create fornecedor: %w", mapRepoError(err, "fornecedor"))
		}
		return s.audit.record(txCtx, model.ActionCreateFornecedor, f.ID.String(), f.Nome, req)
	})
	if err != nil {
		return nil, err
	}
	return f, nil
}

func (s *fornecedorService) Get(ctx context.Context, id string) (*model.Fornecedor, error) {
	uid, err := parseID(id, "fornecedor")
	if err != nil {
		return nil, err
	}
	f, err := s.repo.FindByID(ctx, uid)
	if err != nil {
		return nil, mapRepoError(err, "fornecedor")
	}
	return f, nil
}

func (s *fornecedorService) List(ctx context.Context, search string) ([]model.Fornecedor, error) {
	list, err := s.repo.List(ctx, strings.TrimSpace(search))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch fornecedores: %w", err)
	}
	if list == nil {
		list = []model.Fornecedor{}
	}
	return list, nil
}

func (s *fornecedorService) Update(ctx context.Context, id string, req UpdateFornecedorRequest) (*model.Fornecedor, error) {
	uid, err := parseID(id, "fornecedor")
	if err != nil {
		return nil, err
	}

	var f *model.Fornecedor
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		f, err = s.repo.FindByID(txCtx, uid)
		if err != nil {
			return mapRepoError(err, "fornecedor")
		}

		if req.Nome != nil {
			nome := strings.TrimSpace(*req.Nome)
			if nome == "" {
				return validationError("nome não pode ser vazio")
			}
			f.Nome = nome
		}
		if req.Email != nil {
			if *req.Email != "" && !validEmail(*req.Email) {
				return validationError("email inválido")
			}
			f.Email = *req.Email
		}
		if req.Categoria != nil {
			f.Categoria = *req.Categoria
		}
		if req.Contato != nil {
			f.Contato = *req.Contato
		}
		if req.Telefone != nil {
			f.Telefone = *req.Telefone
		}
		if req.Endereco != nil {
			f.Endereco = *req.Endereco
		}

		if err := s.repo.Update(txCtx, f); err != nil {
			return fmt.Errorf("failed to update fornecedor: %w", mapRepoError(err, "fornecedor"))
		}
		return s.audit.record(txCtx, model.ActionUpdateFornecedor, f.ID.String(), f.Nome, req)
	})
	if err != nil {
		return nil, err
	}
	return f, nil
}

// Delete soft-deletes the supplier; quotes keep pointing at it
func (s *fornecedorService) Delete(ctx context.Context, id string) error {
	uid, err := parseID(id, "fornecedor")
	if err != nil {
		return err
	}
	return s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.repo.Delete(txCtx, uid); err != nil {
			return mapRepoError(err, "fornecedor")
		}
		return s.audit.record(txCtx, model.ActionDeleteFornecedor, uid.String(), "", nil)
	})
}
