package repository

import (
	"context"
	"time"

	"compras/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CotacaoRepository interface {
	Create(ctx context.Context, c *model.Cotacao) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Cotacao, error)
	List(ctx context.Context) ([]model.Cotacao, error)
	ListBySolicitacao(ctx context.Context, solicitacaoID uuid.UUID) ([]model.Cotacao, error)
	// Update saves the quote's own columns; line items are immutable
	Update(ctx context.Context, c *model.Cotacao) error
	// ReplaceFinalizacao drops any earlier finalization of the request and stores f
	ReplaceFinalizacao(ctx context.Context, f *model.Finalizacao) error
	FindFinalizacao(ctx context.Context, solicitacaoID uuid.UUID) (*model.Finalizacao, error)
	// ListFinalizacoes returns the finalizations recorded in [from, to]
	ListFinalizacoes(ctx context.Context, from, to time.Time) ([]model.Finalizacao, error)
}

type cotacaoRepository struct {
	db *gorm.DB
}

func NewCotacaoRepository(db *gorm.DB) CotacaoRepository {
	return &cotacaoRepository{db: db}
}

func (r *cotacaoRepository) Create(ctx context.Context, c *model.Cotacao) error {
	return translateError(GetDB(ctx, r.db).Create(c).Error)
}

func (r *cotacaoRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Cotacao, error) {
	var c model.Cotacao
	if err := GetDB(ctx, r.db).Preload("Itens").First(&c, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *cotacaoRepository) List(ctx context.Context) ([]model.Cotacao, error) {
	var list []model.Cotacao
	if err := GetDB(ctx, r.db).Preload("Itens").Order("created_at DESC").Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *cotacaoRepository) ListBySolicitacao(ctx context.Context, solicitacaoID uuid.UUID) ([]model.Cotacao, error) {
	var list []model.Cotacao
	if err := GetDB(ctx, r.db).Preload("Itens").
		Where("solicitacao_id = ?", solicitacaoID).
		Order("created_at ASC").
		Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *cotacaoRepository) Update(ctx context.Context, c *model.Cotacao) error {
	return translateError(GetDB(ctx, r.db).Omit(clause.Associations).Save(c).Error)
}

func (r *cotacaoRepository) ReplaceFinalizacao(ctx context.Context, f *model.Finalizacao) error {
	db := GetDB(ctx, r.db)

	var previous []uuid.UUID
	if err := db.Model(&model.Finalizacao{}).
		Where("solicitacao_id = ?", f.SolicitacaoID).
		Pluck("id", &previous).Error; err != nil {
		return err
	}
	if len(previous) > 0 {
		if err := db.Where("finalizacao_id IN ?", previous).Delete(&model.FinalizacaoItem{}).Error; err != nil {
			return err
		}
		if err := db.Where("id IN ?", previous).Delete(&model.Finalizacao{}).Error; err != nil {
			return err
		}
	}

	return translateError(db.Create(f).Error)
}

func (r *cotacaoRepository) FindFinalizacao(ctx context.Context, solicitacaoID uuid.UUID) (*model.Finalizacao, error) {
	var f model.Finalizacao
	if err := GetDB(ctx, r.db).Preload("Itens").First(&f, "solicitacao_id = ?", solicitacaoID).Error; err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *cotacaoRepository) ListFinalizacoes(ctx context.Context, from, to time.Time) ([]model.Finalizacao, error) {
	var list []model.Finalizacao
	err := GetDB(ctx, r.db).Preload("Itens").
		Where("created_at >= ? AND created_at <= ?", from, to).
		Order("created_at ASC").
		Find(&list).Error
	return list, err
}
