package repository

import (
	"context"

	"compras/internal/model"
	"compras/internal/workflow"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SolicitacaoRepository interface {
	// Create inserts the request together with its items
	Create(ctx context.Context, s *model.Solicitacao) error
	// FindByIDForUpdate locks the row until the surrounding transaction ends
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*model.Solicitacao, error)
	FindByIDWithRelations(ctx context.Context, id uuid.UUID) (*model.Solicitacao, error)
	List(ctx context.Context, statuses ...workflow.Status) ([]model.Solicitacao, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status workflow.Status) error
	// UpdateStatusIf moves the request to `to` only while it is still in `from`
	UpdateStatusIf(ctx context.Context, id uuid.UUID, from, to workflow.Status) (bool, error)
	AddAprovacao(ctx context.Context, a *model.Aprovacao) error
}

type solicitacaoRepository struct {
	db *gorm.DB
}

func NewSolicitacaoRepository(db *gorm.DB) SolicitacaoRepository {
	return &solicitacaoRepository{db: db}
}

func (r *solicitacaoRepository) Create(ctx context.Context, s *model.Solicitacao) error {
	return translateError(GetDB(ctx, r.db).Create(s).Error)
}

func (r *solicitacaoRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*model.Solicitacao, error) {
	var s model.Solicitacao
	if err := GetDB(ctx, r.db).Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&s, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *solicitacaoRepository) FindByIDWithRelations(ctx context.Context, id uuid.UUID) (*model.Solicitacao, error) {
	var s model.Solicitacao
	err := GetDB(ctx, r.db).
		Preload("Itens").
		Preload("Aprovacoes", func(db *gorm.DB) *gorm.DB { return db.Order("data_aprovacao ASC") }).
		Preload("Cotacoes", func(db *gorm.DB) *gorm.DB { return db.Order("created_at ASC") }).
		Preload("Cotacoes.Itens").
		Preload("Finalizacao").
		Preload("Finalizacao.Itens").
		First(&s, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *solicitacaoRepository) List(ctx context.Context, statuses ...workflow.Status) ([]model.Solicitacao, error) {
	var list []model.Solicitacao

	query := GetDB(ctx, r.db).Preload("Itens")
	if len(statuses) > 0 {
		query = query.Where("status IN ?", statuses)
	}
	if err := query.Order("data_solicitacao DESC").Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *solicitacaoRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status workflow.Status) error {
	res := GetDB(ctx, r.db).Model(&model.Solicitacao{}).Where("id = ?", id).Update("status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *solicitacaoRepository) UpdateStatusIf(ctx context.Context, id uuid.UUID, from, to workflow.Status) (bool, error) {
	res := GetDB(ctx, r.db).Model(&model.Solicitacao{}).
		Where("id = ? AND status = ?", id, from).
		Update("status", to)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *solicitacaoRepository) AddAprovacao(ctx context.Context, a *model.Aprovacao) error {
	return translateError(GetDB(ctx, r.db).Create(a).Error)
}
