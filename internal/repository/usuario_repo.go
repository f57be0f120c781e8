package repository

import (
	"compras/internal/model"
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UsuarioRepository defines the interface for data access of Usuario entities
type UsuarioRepository interface {
	Create(ctx context.Context, u *model.Usuario) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Usuario, error)
	GetByEmail(ctx context.Context, email string) (*model.Usuario, error)
	List(ctx context.Context) ([]model.Usuario, error)
	Update(ctx context.Context, u *model.Usuario) error
}

type usuarioRepository struct {
	db *gorm.DB
}

// NewUsuarioRepository returns a new instance of UsuarioRepository
func NewUsuarioRepository(db *gorm.DB) UsuarioRepository {
	return &usuarioRepository{db: db}
}

func (r *usuarioRepository) Create(ctx context.Context, u *model.Usuario) error {
	return translateError(GetDB(ctx, r.db).Create(u).Error)
}

func (r *usuarioRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Usuario, error) {
	var u model.Usuario
	if err := GetDB(ctx, r.db).First(&u, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *usuarioRepository) GetByEmail(ctx context.Context, email string) (*model.Usuario, error) {
	var u model.Usuario
	if err := GetDB(ctx, r.db).First(&u, "email = ?", email).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *usuarioRepository) List(ctx context.Context) ([]model.Usuario, error) {
	var users []model.Usuario
	if err := GetDB(ctx, r.db).Order("nome ASC").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (r *usuarioRepository) Update(ctx context.Context, u *model.Usuario) error {
	// Save writes every column, including a cleared Ativo flag
	return translateError(GetDB(ctx, r.db).Save(u).Error)
}
