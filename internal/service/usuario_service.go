package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"compras/internal/model"
	"compras/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// DTOs for Request validation
type CreateUsuarioRequest struct {
	Nome         string `json:"nome" binding:"required"`
	Email        string `json:"email" binding:"required,email"`
	Cargo        string `json:"cargo" binding:"required"`
	Departamento string `json:"departamento"`
	Matricula    string `json:"matricula"`
	Senha        string `json:"senha" binding:"required,min=6"`
}

type UpdateUsuarioRequest struct {
	Nome         *string `json:"nome"`
	Email        *string `json:"email" binding:"omitempty,email"`
	Cargo        *string `json:"cargo"`
	Departamento *string `json:"departamento"`
	Matricula    *string `json:"matricula"`
}

type UpdateUsuarioStatusRequest struct {
	Ativo *bool `json:"ativo" binding:"required"`
}

type ChangeSenhaRequest struct {
	SenhaAtual string `json:"senha_atual"`
	NovaSenha  string `json:"nova_senha" binding:"required,min=6"`
}

type LoginRequest struct {
	Email string `json:"email" binding:"required,email"`
	Senha string `json:"senha" binding:"required"`
}

type LoginResponse struct {
	Token   string         `json:"token"`
	Usuario *model.Usuario `json:"usuario"`
}

// NivelAutorizacao describes one access tier and the cargos that land in it
type NivelAutorizacao struct {
	NivelAcesso model.NivelAcesso    `json:"nivel_acesso"`
	Cargos      []string             `json:"cargos"`
	Autoridade  model.NivelAprovacao `json:"autoridade" swaggertype:"string"`
}

// TokenConfig controls the tokens issued on login
type TokenConfig struct {
	Secret []byte
	TTL    time.Duration
}

// UsuarioService defines the business logic for user accounts
type UsuarioService interface {
	Create(ctx context.Context, req CreateUsuarioRequest) (*model.Usuario, error)
	Get(ctx context.Context, id string) (*model.Usuario, error)
	List(ctx context.Context) ([]model.Usuario, error)
	Update(ctx context.Context, id string, req UpdateUsuarioRequest) (*model.Usuario, error)
	SetActive(ctx context.Context, id string, ativo bool) (*model.Usuario, error)
	ChangePassword(ctx context.Context, id string, req ChangeSenhaRequest) error
	Login(ctx context.Context, req LoginRequest) (*LoginResponse, error)
	NiveisAutorizacao() []NivelAutorizacao
}

type usuarioService struct {
	tx     repository.TransactionManager
	repo   repository.UsuarioRepository
	audit  auditor
	tokens TokenConfig
	now    func() time.Time
}

// NewUsuarioService returns a new instance of UsuarioService
func NewUsuarioService(tx repository.TransactionManager, repo repository.UsuarioRepository, auditRepo repository.AuditRepository, tokens TokenConfig) UsuarioService {
	if tokens.TTL <= 0 {
		tokens.TTL = 24 * time.Hour
	}
	return &usuarioService{
		tx:     tx,
		repo:   repo,
		audit:  auditor{repo: auditRepo},
		tokens: tokens,
		now:    time.Now,
	}
}

func validCargo(cargo string) bool {
	for _, c := range model.Cargos() {
		if c == cargo {
			return true
		}
	}
	return false
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *usuarioService) Create(ctx context.Context, req CreateUsuarioRequest) (*model.Usuario, error) {
	nome := strings.TrimSpace(req.Nome)
	if nome == "" {
		return nil, validationError("nome é obrigatório")
	}
	email := normalizeEmail(req.Email)
	if !validEmail(email) {
		return nil, validationError("email inválido")
	}
	if !validCargo(req.Cargo) {
		return nil, validationError("cargo deve ser um de: %s", strings.Join(model.Cargos(), ", "))
	}
	if len(req.Senha) < 6 {
		return nil, validationError("senha deve ter pelo menos 6 caracteres")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Senha), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	u := &model.Usuario{
		Nome:         nome,
		Email:        email,
		Cargo:        req.Cargo,
		NivelAcesso:  model.AcessoFromCargo(req.Cargo),
		Ativo:        true,
		Departamento: req.Departamento,
		Matricula:    req.Matricula,
		Senha:        string(hashed),
	}

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if _, err := s.repo.GetByEmail(txCtx, email); err == nil {
			return fmt.Errorf("%w: email %s já cadastrado", ErrConflict, email)
		} else if !repository.IsNotFound(err) {
			return err
		}
		if err := s.repo.Create(txCtx, u); err != nil {
			return fmt.Errorf("failed to create usuario: %w", mapRepoError(err, "usuário"))
		}
		return s.audit.record(txCtx, model.ActionCreateUsuario, u.ID.String(), u.Nome, map[string]interface{}{
			"email":        u.Email,
			"cargo":        u.Cargo,
			"nivel_acesso": u.NivelAcesso,
		})
	})
	if err != nil {
		return nil, err
	}
	return u, nil
}

func (s *usuarioService) Get(ctx context.Context, id string) (*model.Usuario, error) {
	uid, err := parseID(id, "usuário")
	if err != nil {
		return nil, err
	}
	u, err := s.repo.GetByID(ctx, uid)
	if err != nil {
		return nil, mapRepoError(err, "usuário")
	}
	return u, nil
}

func (s *usuarioService) List(ctx context.Context) ([]model.Usuario, error) {
	list, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch usuarios: %w", err)
	}
	if list == nil {
		list = []model.Usuario{}
	}
	return list, nil
}

// modify loads a user, applies fn and saves it with an audit entry, all in one transaction
func (s *usuarioService) modify(ctx context.Context, id, action string, fn func(txCtx context.Context, u *model.Usuario) (interface{}, error)) (*model.Usuario, error) {
	uid, err := parseID(id, "usuário")
	if err != nil {
		return nil, err
	}

	var u *model.Usuario
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		u, err = s.repo.GetByID(txCtx, uid)
		if err != nil {
			return mapRepoError(err, "usuário")
		}
		details, err := fn(txCtx, u)
		if err != nil {
			return err
		}
		if err := s.repo.Update(txCtx, u); err != nil {
			return fmt.Errorf("failed to update usuario: %w", mapRepoError(err, "usuário"))
		}
		return s.audit.record(txCtx, action, u.ID.String(), u.Nome, details)
	})
	if err != nil {
		return nil, err
	}
	return u, nil
}

func (s *usuarioService) Update(ctx context.Context, id string, req UpdateUsuarioRequest) (*model.Usuario, error) {
	return s.modify(ctx, id, model.ActionUpdateUsuario, func(txCtx context.Context, u *model.Usuario) (interface{}, error) {
		if req.Nome != nil {
			nome := strings.TrimSpace(*req.Nome)
			if nome == "" {
				return nil, validationError("nome não pode ser vazio")
			}
			u.Nome = nome
		}
		if req.Email != nil {
			email := normalizeEmail(*req.Email)
			if !validEmail(email) {
				return nil, validationError("email inválido")
			}
			if email != u.Email {
				if other, err := s.repo.GetByEmail(txCtx, email); err == nil && other.ID != u.ID {
					return nil, fmt.Errorf("%w: email %s já cadastrado", ErrConflict, email)
				}
			}
			u.Email = email
		}
		if req.Cargo != nil {
			if !validCargo(*req.Cargo) {
				return nil, validationError("cargo deve ser um de: %s", strings.Join(model.Cargos(), ", "))
			}
			if actor, ok := ActorFrom(ctx); ok && actor.NivelAcesso != model.AcessoMarrom && *req.Cargo != u.Cargo {
				return nil, fmt.Errorf("%w: apenas administradores alteram cargos", ErrForbidden)
			}
			u.Cargo = *req.Cargo
			u.NivelAcesso = model.AcessoFromCargo(u.Cargo)
		}
		if req.Departamento != nil {
			u.Departamento = *req.Departamento
		}
		if req.Matricula != nil {
			u.Matricula = *req.Matricula
		}
		return req, nil
	})
}

func (s *usuarioService) SetActive(ctx context.Context, id string, ativo bool) (*model.Usuario, error) {
	return s.modify(ctx, id, model.ActionUpdateUsuario, func(_ context.Context, u *model.Usuario) (interface{}, error) {
		u.Ativo = ativo
		return map[string]bool{"ativo": ativo}, nil
	})
}

func (s *usuarioService) ChangePassword(ctx context.Context, id string, req ChangeSenhaRequest) error {
	if len(req.NovaSenha) < 6 {
		return validationError("nova_senha deve ter pelo menos 6 caracteres")
	}
	_, err := s.modify(ctx, id, model.ActionChangeUsuarioSenha, func(_ context.Context, u *model.Usuario) (interface{}, error) {
		// administrators reset without the current password; everyone else must prove it
		actor, ok := ActorFrom(ctx)
		adminReset := ok && actor.NivelAcesso == model.AcessoMarrom && actor.UserID != u.ID.String()
		if !adminReset || req.SenhaAtual != "" {
			if err := bcrypt.CompareHashAndPassword([]byte(u.Senha), []byte(req.SenhaAtual)); err != nil {
				return nil, ErrInvalidCredentials
			}
		}
		hashed, err := bcrypt.GenerateFromPassword([]byte(req.NovaSenha), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		u.Senha = string(hashed)
		return nil, nil
	})
	return err
}

func (s *usuarioService) Login(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	u, err := s.repo.GetByEmail(ctx, normalizeEmail(req.Email))
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.Senha), []byte(req.Senha)); err != nil {
		return nil, ErrInvalidCredentials
	}
	if !u.Ativo {
		return nil, ErrInactiveUser
	}
	if len(s.tokens.Secret) == 0 {
		return nil, errors.New("jwt secret not configured")
	}

	now := s.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":          u.ID.String(),
		"nome":         u.Nome,
		"nivel_acesso": string(u.NivelAcesso),
		"iat":          now.Unix(),
		"exp":          now.Add(s.tokens.TTL).Unix(),
	})
	signed, err := token.SignedString(s.tokens.Secret)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &LoginResponse{Token: signed, Usuario: u}, nil
}

func (s *usuarioService) NiveisAutorizacao() []NivelAutorizacao {
	tiers := []model.NivelAcesso{model.AcessoVerde, model.AcessoAmarelo, model.AcessoAzul, model.AcessoMarrom}
	out := make([]NivelAutorizacao, 0, len(tiers))
	for _, t := range tiers {
		n := NivelAutorizacao{NivelAcesso: t, Cargos: []string{}, Autoridade: t.Autoridade()}
		for _, c := range model.Cargos() {
			if model.AcessoFromCargo(c) == t {
				n.Cargos = append(n.Cargos, c)
			}
		}
		out = append(out, n)
	}
	return out
}
