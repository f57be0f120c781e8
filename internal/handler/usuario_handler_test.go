package handler

import (
	"net/http"
	"testing"

	"compras/internal/model"
	"compras/internal/service"
	"compras/internal/service/mocks"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newUsuarioRouter(t *testing.T) (*gin.Engine, *mocks.MockUsuarioService) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	svc := mocks.NewMockUsuarioService(ctrl)

	r := gin.New()
	h := NewUsuarioHandler(svc)
	h.RegisterPublicRoutes(r.Group("/api"))
	h.RegisterRoutes(r.Group("/api"), UsuarioGuards{})
	return r, svc
}

func TestUsuarioHandler_Login(t *testing.T) {
	t.Run("inactive user", func(t *testing.T) {
		r, svc := newUsuarioRouter(t)
		svc.EXPECT().Login(gomock.Any(), service.LoginRequest{Email: "ana@empresa.com", Senha: "segredo1"}).
			Return(nil, service.ErrInactiveUser)

		w := do(r, http.MethodPost, "/api/users/login", `{"email":"ana@empresa.com","senha":"segredo1"}`)
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("missing password", func(t *testing.T) {
		r, _ := newUsuarioRouter(t)

		w := do(r, http.MethodPost, "/api/users/login", `{"email":"ana@empresa.com"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestUsuarioHandler_UpdateStatus_RequiresFlag(t *testing.T) {
	r, _ := newUsuarioRouter(t)

	w := do(r, http.MethodPatch, "/api/users/u1/status", `{}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestUsuarioHandler_NiveisAutorizacao(t *testing.T) {
	r, svc := newUsuarioRouter(t)
	svc.EXPECT().NiveisAutorizacao().Return([]service.NivelAutorizacao{{
		NivelAcesso: model.AcessoAzul,
		Cargos:      []string{model.CargoGerente},
		Autoridade:  model.NivelGerencia,
	}})

	w := do(r, http.MethodGet, "/api/users/niveis-autorizacao", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	list, ok := decode(t, w).Data.([]interface{})
	if !ok || len(list) != 1 {
		t.Fatalf("unexpected payload: %s", w.Body.String())
	}
}
