package repository

import (
	"context"

	"compras/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CentroCustoRepository interface {
	Create(ctx context.Context, cc *model.CentroCusto) error
	Update(ctx context.Context, cc *model.CentroCusto) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.CentroCusto, error)
	FindByCodigo(ctx context.Context, codigo string) (*model.CentroCusto, error)
	List(ctx context.Context, onlyActive bool) ([]model.CentroCusto, error)
}

type centroCustoRepository struct {
	db *gorm.DB
}

func NewCentroCustoRepository(db *gorm.DB) CentroCustoRepository {
	return &centroCustoRepository{db: db}
}

func (r *centroCustoRepository) Create(ctx context.Context, cc *model.CentroCusto) error {
	return translateError(GetDB(ctx, r.db).Create(cc).Error)
}

func (r *centroCustoRepository) Update(ctx context.Context, cc *model.CentroCusto) error {
	return translateError(GetDB(ctx, r.db).Save(cc).Error)
}

func (r *centroCustoRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res := GetDB(ctx, r.db).Where("id = ?", id).Delete(&model.CentroCusto{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *centroCustoRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.CentroCusto, error) {
	var cc model.CentroCusto
	if err := GetDB(ctx, r.db).First(&cc, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &cc, nil
}

func (r *centroCustoRepository) FindByCodigo(ctx context.Context, codigo string) (*model.CentroCusto, error) {
	var cc model.CentroCusto
	if err := GetDB(ctx, r.db).First(&cc, "codigo = ?", codigo).Error; err != nil {
		return nil, err
	}
	return &cc, nil
}

func (r *centroCustoRepository) List(ctx context.Context, onlyActive bool) ([]model.CentroCusto, error) {
	var list []model.CentroCusto

	query := GetDB(ctx, r.db).Model(&model.CentroCusto{})
	if onlyActive {
		query = query.Where("ativo = ?", true)
	}
	if err := query.Order("codigo ASC").Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}
