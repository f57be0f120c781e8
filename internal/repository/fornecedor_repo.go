package repository

import (
	"context"

	"compras/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type FornecedorRepository interface {
	Create(ctx context.Context, f *model.Fornecedor) error
	Update(ctx context.Context, f *model.Fornecedor) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Fornecedor, error)
	// FindByNome matches the name exactly, ignoring case
	FindByNome(ctx context.Context, nome string) (*model.Fornecedor, error)
	List(ctx context.Context, search string) ([]model.Fornecedor, error)
}

type fornecedorRepository struct {
	db *gorm.DB
}

func NewFornecedorRepository(db *gorm.DB) FornecedorRepository {
	return &fornecedorRepository{db: db}
}

func (r *fornecedorRepository) Create(ctx context.Context, f *model.Fornecedor) error {
	return translateError(GetDB(ctx, r.db).Create(f).Error)
}

func (r *fornecedorRepository) Update(ctx context.Context, f *model.Fornecedor) error {
	return translateError(GetDB(ctx, r.db).Save(f).Error)
}

func (r *fornecedorRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res := GetDB(ctx, r.db).Where("id = ?", id).Delete(&model.Fornecedor{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *fornecedorRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Fornecedor, error) {
	var f model.Fornecedor
	if err := GetDB(ctx, r.db).First(&f, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *fornecedorRepository) FindByNome(ctx context.Context, nome string) (*model.Fornecedor, error) {
	var f model.Fornecedor
	if err := GetDB(ctx, r.db).Where("LOWER(nome) = LOWER(?)", nome).Order("created_at ASC").First(&f).Error; err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *fornecedorRepository) List(ctx context.Context, search string) ([]model.Fornecedor, error) {
	var list []model.Fornecedor

	query := GetDB(ctx, r.db).Model(&model.Fornecedor{})
	if search != "" {
		query = query.Where("nome ILIKE ? OR categoria ILIKE ? OR email ILIKE ?",
			"%"+search+"%", "%"+search+"%", "%"+search+"%")
	}
	if err := query.Order("nome ASC").Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}
