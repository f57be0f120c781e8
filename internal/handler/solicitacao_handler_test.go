package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"compras/internal/model"
	"compras/internal/service"
	"compras/internal/service/mocks"
	"compras/internal/workflow"
	"compras/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/mock/gomock"
)

func newSolicitacaoRouter(t *testing.T) (*gin.Engine, *mocks.MockSolicitacaoService) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	svc := mocks.NewMockSolicitacaoService(ctrl)

	r := gin.New()
	NewSolicitacaoHandler(svc).RegisterRoutes(r.Group("/api"))
	return r, svc
}

func do(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) response.Response {
	t.Helper()
	var res response.Response
	if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode body %q: %v", w.Body.String(), err)
	}
	return res
}

func TestSolicitacaoHandler_Create(t *testing.T) {
	t.Run("invalid json", func(t *testing.T) {
		r, _ := newSolicitacaoRouter(t)

		w := do(r, http.MethodPost, "/api/requests", "{")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if res := decode(t, w); res.Success {
			t.Fatal("expected success=false")
		}
	})

	t.Run("created", func(t *testing.T) {
		r, svc := newSolicitacaoRouter(t)
		id := uuid.New()
		svc.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ any, req service.CreateSolicitacaoRequest) (*model.Solicitacao, error) {
				if req.RequestData.NomeSolicitante != "Ana" || len(req.Items) != 1 || req.Items[0].Quantidade != 10 {
					t.Fatalf("unexpected payload: %+v", req)
				}
				return &model.Solicitacao{ID: id, NomeSolicitante: "Ana", Status: workflow.StatusSolicitado}, nil
			})

		w := do(r, http.MethodPost, "/api/requests",
			`{"requestData":{"nome_solicitante":"Ana"},"items":[{"descricao":"Parafusos","quantidade":10}]}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		res := decode(t, w)
		data := res.Data.(map[string]interface{})
		if data["id"] != id.String() || data["status"] != "Solicitado" {
			t.Fatalf("unexpected data: %v", data)
		}
	})

	t.Run("validation error", func(t *testing.T) {
		r, svc := newSolicitacaoRouter(t)
		svc.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(nil, fmt.Errorf("%w: at least one item is required", service.ErrValidation))

		w := do(r, http.MethodPost, "/api/requests", `{"requestData":{"nome_solicitante":"Ana"}}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestSolicitacaoHandler_UpdateStatus_MapsErrors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"illegal transition", &workflow.TransitionError{From: workflow.StatusSolicitado, Event: workflow.EventAprovarCompra}, http.StatusBadRequest},
		{"insufficient level", fmt.Errorf("%w: Supervisão", service.ErrForbidden), http.StatusForbidden},
		{"unknown request", service.ErrNotFound, http.StatusNotFound},
		{"storage failure", errors.New("connection reset"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, svc := newSolicitacaoRouter(t)
			svc.EXPECT().UpdateStatus(gomock.Any(), "abc", gomock.Any()).Return(nil, tt.err)

			w := do(r, http.MethodPatch, "/api/requests/abc/status", `{"status":"Aprovado"}`)
			if w.Code != tt.want {
				t.Fatalf("expected %d, got %d", tt.want, w.Code)
			}
			res := decode(t, w)
			if res.Success {
				t.Fatal("expected success=false")
			}
			if tt.want == http.StatusInternalServerError && res.Message != "Erro interno do servidor" {
				t.Fatalf("internal errors must use the generic message, got %q", res.Message)
			}
		})
	}
}

func TestSolicitacaoHandler_UpdateStatus_RequiresStatus(t *testing.T) {
	r, _ := newSolicitacaoRouter(t)

	w := do(r, http.MethodPatch, "/api/requests/abc/status", `{"approvalData":{"aprovado_por":"Bruno"}}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestSolicitacaoHandler_List_PassesFilter(t *testing.T) {
	r, svc := newSolicitacaoRouter(t)
	svc.EXPECT().List(gomock.Any(), "Em Cotação").Return([]model.Solicitacao{}, nil)

	w := do(r, http.MethodGet, "/api/requests?status=Em+Cota%C3%A7%C3%A3o", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}
