package service_test

import (
	"context"
	"testing"

	"compras/internal/model"
	"compras/internal/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

func TestCentroCusto_DuplicateCodigo(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	first, err := e.centros.Create(ctx, service.CreateCentroCustoRequest{Codigo: "CC-100", Descricao: "Manutenção"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if !first.Ativo {
		t.Fatal("new cost centers start active")
	}

	_, err = e.centros.Create(ctx, service.CreateCentroCustoRequest{Codigo: "CC-100", Descricao: "Outro"})
	assertErr(t, err, service.ErrConflict)

	list, _ := e.centros.List(ctx, false)
	if len(list) != 1 {
		t.Fatalf("expected 1 cost center, got %d", len(list))
	}
}

func TestCentroCusto_UpdateAndDelete(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	a, _ := e.centros.Create(ctx, service.CreateCentroCustoRequest{Codigo: "CC-100", Descricao: "Manutenção"})
	b, _ := e.centros.Create(ctx, service.CreateCentroCustoRequest{Codigo: "CC-200", Descricao: "Produção"})

	taken := "CC-100"
	_, err := e.centros.Update(ctx, b.ID.String(), service.UpdateCentroCustoRequest{Codigo: &taken})
	assertErr(t, err, service.ErrConflict)

	inactive := false
	updated, err := e.centros.Update(ctx, b.ID.String(), service.UpdateCentroCustoRequest{Ativo: &inactive})
	if err != nil || updated.Ativo {
		t.Fatalf("expected inactive cost center, got %+v (%v)", updated, err)
	}
	active, _ := e.centros.List(ctx, true)
	if len(active) != 1 || active[0].ID != a.ID {
		t.Fatalf("expected only CC-100 active, got %+v", active)
	}

	if err := e.centros.Delete(ctx, a.ID.String()); err != nil {
		t.Fatalf("delete: %v", err)
	}
	_, err = e.centros.Get(ctx, a.ID.String())
	assertErr(t, err, service.ErrNotFound)
	assertErr(t, e.centros.Delete(ctx, a.ID.String()), service.ErrNotFound)
}

func TestFornecedor_CRUD(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	_, err := e.fornecedores.Create(ctx, service.CreateFornecedorRequest{Nome: "Alfa", Email: "não-é-email"})
	assertErr(t, err, service.ErrValidation)

	f, err := e.fornecedores.Create(ctx, service.CreateFornecedorRequest{
		Nome:      "Alfa Peças",
		Categoria: "Materiais",
		Email:     "vendas@alfa.com.br",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	nome := "Alfa Peças Ltda"
	updated, err := e.fornecedores.Update(ctx, f.ID.String(), service.UpdateFornecedorRequest{Nome: &nome})
	if err != nil || updated.Nome != nome || updated.Email != "vendas@alfa.com.br" {
		t.Fatalf("unexpected update result %+v (%v)", updated, err)
	}

	found, _ := e.fornecedores.List(ctx, "ltda")
	if len(found) != 1 {
		t.Fatalf("expected search hit, got %d", len(found))
	}

	if err := e.fornecedores.Delete(ctx, f.ID.String()); err != nil {
		t.Fatalf("delete: %v", err)
	}
	_, err = e.fornecedores.Get(ctx, f.ID.String())
	assertErr(t, err, service.ErrNotFound)
	if n := e.auditCount(t); n != 3 {
		t.Fatalf("expected 3 audit entries, got %d", n)
	}
}

func createUser(t *testing.T, e *env, email, cargo string) *model.Usuario {
	t.Helper()
	u, err := e.usuarios.Create(context.Background(), service.CreateUsuarioRequest{
		Nome:  "Gisele",
		Email: email,
		Cargo: cargo,
		Senha: "segredo1",
	})
	if err != nil {
		t.Fatalf("create user: %v", err)
	}
	return u
}

func TestUsuario_CreateDerivesAccess(t *testing.T) {
	e := newEnv(t)
	u := createUser(t, e, "gisele@empresa.com", model.CargoGerente)

	if u.NivelAcesso != model.AcessoAzul {
		t.Fatalf("expected azul, got %q", u.NivelAcesso)
	}
	if u.Senha == "segredo1" || u.Senha == "" {
		t.Fatal("password must be stored hashed")
	}

	_, err := e.usuarios.Create(context.Background(), service.CreateUsuarioRequest{
		Nome: "X", Email: "x@empresa.com", Cargo: "Estagiário", Senha: "segredo1",
	})
	assertErr(t, err, service.ErrValidation)
}

func TestUsuario_DuplicateEmail(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	createUser(t, e, "gisele@empresa.com", model.CargoGerente)

	_, err := e.usuarios.Create(ctx, service.CreateUsuarioRequest{
		Nome: "Outra", Email: "Gisele@Empresa.com", Cargo: model.CargoComprador, Senha: "segredo2",
	})
	assertErr(t, err, service.ErrConflict)

	list, _ := e.usuarios.List(ctx)
	if len(list) != 1 {
		t.Fatalf("expected 1 user, got %d", len(list))
	}
}

func TestUsuario_Login(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	u := createUser(t, e, "gisele@empresa.com", model.CargoGerente)

	_, err := e.usuarios.Login(ctx, service.LoginRequest{Email: "gisele@empresa.com", Senha: "errada"})
	assertErr(t, err, service.ErrInvalidCredentials)
	_, err = e.usuarios.Login(ctx, service.LoginRequest{Email: "ninguem@empresa.com", Senha: "segredo1"})
	assertErr(t, err, service.ErrInvalidCredentials)

	res, err := e.usuarios.Login(ctx, service.LoginRequest{Email: "GISELE@empresa.com", Senha: "segredo1"})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	claims := jwt.MapClaims{}
	if _, err := jwt.ParseWithClaims(res.Token, claims, func(*jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	}); err != nil {
		t.Fatalf("token: %v", err)
	}
	if claims["sub"] != u.ID.String() || claims["nivel_acesso"] != "azul" {
		t.Fatalf("unexpected claims %v", claims)
	}

	if _, err := e.usuarios.SetActive(ctx, u.ID.String(), false); err != nil {
		t.Fatalf("deactivate: %v", err)
	}
	_, err = e.usuarios.Login(ctx, service.LoginRequest{Email: "gisele@empresa.com", Senha: "segredo1"})
	assertErr(t, err, service.ErrInactiveUser)
}

func TestUsuario_ChangePassword(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	u := createUser(t, e, "gisele@empresa.com", model.CargoGerente)

	err := e.usuarios.ChangePassword(ctx, u.ID.String(), service.ChangeSenhaRequest{SenhaAtual: "errada", NovaSenha: "novasenha"})
	assertErr(t, err, service.ErrInvalidCredentials)

	if err := e.usuarios.ChangePassword(ctx, u.ID.String(), service.ChangeSenhaRequest{SenhaAtual: "segredo1", NovaSenha: "novasenha"}); err != nil {
		t.Fatalf("change password: %v", err)
	}
	if _, err := e.usuarios.Login(ctx, service.LoginRequest{Email: "gisele@empresa.com", Senha: "novasenha"}); err != nil {
		t.Fatalf("login with new password: %v", err)
	}

	admin := service.WithActor(ctx, service.Actor{UserID: uuid.NewString(), Nome: "Root", NivelAcesso: model.AcessoMarrom})
	if err := e.usuarios.ChangePassword(admin, u.ID.String(), service.ChangeSenhaRequest{NovaSenha: "resetada"}); err != nil {
		t.Fatalf("admin reset: %v", err)
	}
	if _, err := e.usuarios.Login(ctx, service.LoginRequest{Email: "gisele@empresa.com", Senha: "resetada"}); err != nil {
		t.Fatalf("login after reset: %v", err)
	}
}

func TestUsuario_UpdateCargoRecomputesAccess(t *testing.T) {
	e := newEnv(t)
	u := createUser(t, e, "gisele@empresa.com", model.CargoComprador)

	cargo := model.CargoDiretor
	updated, err := e.usuarios.Update(context.Background(), u.ID.String(), service.UpdateUsuarioRequest{Cargo: &cargo})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.NivelAcesso != model.AcessoMarrom {
		t.Fatalf("expected marrom, got %q", updated.NivelAcesso)
	}
}

func TestUsuario_NiveisAutorizacao(t *testing.T) {
	e := newEnv(t)
	niveis := e.usuarios.NiveisAutorizacao()
	if len(niveis) != 4 {
		t.Fatalf("expected 4 tiers, got %d", len(niveis))
	}
	marrom := niveis[3]
	if marrom.NivelAcesso != model.AcessoMarrom || marrom.Autoridade != model.NivelDiretoria || len(marrom.Cargos) != 2 {
		t.Fatalf("unexpected top tier %+v", marrom)
	}
}

func TestUsuario_OnlyAdministratorsChangeCargo(t *testing.T) {
	e := newEnv(t)
	u := createUser(t, e, "gisele@empresa.com", model.CargoSolicitante)

	self := service.WithActor(context.Background(), service.Actor{UserID: u.ID.String(), Nome: u.Nome, NivelAcesso: u.NivelAcesso})
	cargo := model.CargoAdministrador
	_, err := e.usuarios.Update(self, u.ID.String(), service.UpdateUsuarioRequest{Cargo: &cargo})
	assertErr(t, err, service.ErrForbidden)

	same := model.CargoSolicitante
	nome := "Gisele Souza"
	updated, err := e.usuarios.Update(self, u.ID.String(), service.UpdateUsuarioRequest{Nome: &nome, Cargo: &same})
	if err != nil {
		t.Fatalf("profile update: %v", err)
	}
	if updated.Nome != nome || updated.NivelAcesso != model.AcessoVerde {
		t.Fatalf("unexpected profile %+v", updated)
	}

	admin := service.WithActor(context.Background(), service.Actor{UserID: uuid.NewString(), Nome: "Root", NivelAcesso: model.AcessoMarrom})
	promoted, err := e.usuarios.Update(admin, u.ID.String(), service.UpdateUsuarioRequest{Cargo: &cargo})
	if err != nil {
		t.Fatalf("admin update: %v", err)
	}
	if promoted.NivelAcesso != model.AcessoMarrom {
		t.Fatalf("expected marrom, got %q", promoted.NivelAcesso)
	}
}

func TestCentroCusto_CodigoReusableAfterDelete(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	old, err := e.centros.Create(ctx, service.CreateCentroCustoRequest{Codigo: "CC-100", Descricao: "Manutenção"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := e.centros.Delete(ctx, old.ID.String()); err != nil {
		t.Fatalf("delete: %v", err)
	}

	reborn, err := e.centros.Create(ctx, service.CreateCentroCustoRequest{Codigo: "CC-100", Descricao: "Manutenção predial"})
	if err != nil {
		t.Fatalf("re-create after delete: %v", err)
	}
	if reborn.ID == old.ID {
		t.Fatal("expected a new cost center")
	}
	list, _ := e.centros.List(ctx, false)
	if len(list) != 1 || list[0].ID != reborn.ID {
		t.Fatalf("expected only the new CC-100, got %+v", list)
	}
}
