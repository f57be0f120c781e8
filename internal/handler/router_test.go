package handler

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"compras/internal/middleware"
	"compras/internal/model"
	"compras/internal/notification"
	"compras/internal/repository/memstore"
	"compras/internal/service"

	"github.com/gin-gonic/gin"
)

type discard struct{}

func (discard) Notify(context.Context, notification.Event) {}

type stubPinger struct{ err error }

func (p stubPinger) Ping(context.Context) error { return p.err }

// newAPI wires every handler over the in-memory store the way main does
func newAPI(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := memstore.New()
	tx := store.TxManager()
	usuarios := service.NewUsuarioService(tx, store.Usuarios(), store.Audit(), service.TokenConfig{
		Secret: []byte("test-secret"),
		TTL:    time.Hour,
	})

	r := gin.New()
	api := r.Group("/api")
	NewUsuarioHandler(usuarios).RegisterPublicRoutes(api)
	NewDiagnosticsHandler(stubPinger{}).RegisterRoutes(api)
	NewSolicitacaoHandler(service.NewSolicitacaoService(tx, store.Solicitacoes(), store.Audit(), discard{})).RegisterRoutes(api)
	NewCotacaoHandler(service.NewCotacaoService(tx, store.Solicitacoes(), store.Cotacoes(), store.Fornecedores(), store.Audit(), discard{})).RegisterRoutes(api)
	NewFornecedorHandler(service.NewFornecedorService(tx, store.Fornecedores(), store.Audit())).RegisterRoutes(api)
	NewCentroCustoHandler(service.NewCentroCustoService(tx, store.CentrosCusto(), store.Audit())).RegisterRoutes(api)
	NewUsuarioHandler(usuarios).RegisterRoutes(api, UsuarioGuards{})
	NewAuditHandler(service.NewAuditService(store.Audit())).RegisterRoutes(api)
	NewStatisticsHandler(service.NewStatisticsService(store.Solicitacoes(), store.Cotacoes())).RegisterRoutes(api)
	return r
}

func dataOf(t *testing.T, r http.Handler, method, path, body string, want int) map[string]interface{} {
	t.Helper()
	w := do(r, method, path, body)
	if w.Code != want {
		t.Fatalf("%s %s: expected %d, got %d: %s", method, path, want, w.Code, w.Body.String())
	}
	data, _ := decode(t, w).Data.(map[string]interface{})
	return data
}

func TestAPI_RequestToQuoteFlow(t *testing.T) {
	r := newAPI(t)

	sol := dataOf(t, r, http.MethodPost, "/api/requests",
		`{"requestData":{"nome_solicitante":"Ana","centro_custo":"CC-100"},"items":[{"descricao":"Parafusos","quantidade":10}]}`,
		http.StatusCreated)
	if sol["status"] != "Solicitado" || sol["prioridade"] != "Básica" || sol["categoria"] != "Outros" {
		t.Fatalf("unexpected defaults: %v", sol)
	}
	id := sol["id"].(string)

	approved := dataOf(t, r, http.MethodPatch, "/api/requests/"+id+"/status",
		`{"status":"Aprovado","approvalData":{"aprovado_por":"Bruno","nivel_aprovacao":"Supervisão"}}`,
		http.StatusOK)
	if approved["status"] != "Aprovado" {
		t.Fatalf("expected Aprovado, got %v", approved["status"])
	}

	dataOf(t, r, http.MethodPost, "/api/suppliers", `{"nome":"Alfa"}`, http.StatusCreated)

	itens := sol["itens"].([]interface{})
	itemID := itens[0].(map[string]interface{})["id"].(string)
	quote := dataOf(t, r, http.MethodPost, "/api/quotes",
		fmt.Sprintf(`{"solicitacao_id":%q,"fornecedor":"Alfa","itens":[{"item_id":%q,"descricao":"Parafusos","quantidade":10,"preco_unitario":"1.50"}]}`, id, itemID),
		http.StatusCreated)
	if quote["preco"] != "15" {
		t.Fatalf("expected preco 15, got %v", quote["preco"])
	}

	current := dataOf(t, r, http.MethodGet, "/api/requests/"+id, "", http.StatusOK)
	if current["status"] != "Em Cotação" {
		t.Fatalf("expected Em Cotação, got %v", current["status"])
	}

	dataOf(t, r, http.MethodPost, "/api/quotes/"+id+"/finalize", `{"selectedItems":[]}`, http.StatusBadRequest)

	line := quote["itens"].([]interface{})[0].(map[string]interface{})["id"].(string)
	final := dataOf(t, r, http.MethodPost, "/api/quotes/"+id+"/finalize",
		fmt.Sprintf(`{"selectedItems":[{"cotacao_item_id":%q}]}`, line), http.StatusOK)
	if final["status"] != "Aprovado para Compra" || final["total"] != "15" {
		t.Fatalf("unexpected finalization: %v", final)
	}

	dataOf(t, r, http.MethodPatch, "/api/requests/"+id+"/status", `{"status":"Solicitado"}`, http.StatusBadRequest)
}

func TestAPI_UnknownRequestIs404(t *testing.T) {
	r := newAPI(t)

	dataOf(t, r, http.MethodGet, "/api/requests/not-a-uuid", "", http.StatusNotFound)
	dataOf(t, r, http.MethodGet, "/api/quotes/00000000-0000-0000-0000-000000000000/comparison", "", http.StatusNotFound)
}

func TestAPI_DuplicatesAreRejected(t *testing.T) {
	r := newAPI(t)

	dataOf(t, r, http.MethodPost, "/api/cost-centers", `{"codigo":"CC-100","descricao":"Manutenção"}`, http.StatusCreated)
	dataOf(t, r, http.MethodPost, "/api/cost-centers", `{"codigo":"CC-100","descricao":"Outro"}`, http.StatusBadRequest)

	user := `{"nome":"Carla","email":"carla@empresa.com","cargo":"Gerente","senha":"segredo1"}`
	dataOf(t, r, http.MethodPost, "/api/users", user, http.StatusCreated)
	dataOf(t, r, http.MethodPost, "/api/users", user, http.StatusBadRequest)
}

func TestAPI_LoginAndAudit(t *testing.T) {
	r := newAPI(t)

	created := dataOf(t, r, http.MethodPost, "/api/users",
		`{"nome":"Carla","email":"Carla@Empresa.com","cargo":"Gerente","senha":"segredo1"}`, http.StatusCreated)
	if created["email"] != "carla@empresa.com" {
		t.Fatalf("email should be normalized, got %v", created["email"])
	}
	if _, leaked := created["senha"]; leaked {
		t.Fatal("password hash must not be serialized")
	}

	dataOf(t, r, http.MethodPost, "/api/users/login", `{"email":"carla@empresa.com","senha":"errada"}`, http.StatusUnauthorized)
	login := dataOf(t, r, http.MethodPost, "/api/users/login", `{"email":"carla@empresa.com","senha":"segredo1"}`, http.StatusOK)
	if tok, _ := login["token"].(string); tok == "" {
		t.Fatal("expected a token")
	}

	page := dataOf(t, r, http.MethodGet, "/api/audit-logs?page=1&limit=10", "", http.StatusOK)
	if page["total"].(float64) < 1 {
		t.Fatalf("expected the user creation to be audited, got %v", page)
	}
}

func TestAPI_Statistics(t *testing.T) {
	r := newAPI(t)

	dataOf(t, r, http.MethodPost, "/api/requests",
		`{"requestData":{"nome_solicitante":"Ana"},"items":[{"descricao":"Parafusos","quantidade":10}]}`,
		http.StatusCreated)

	stats := dataOf(t, r, http.MethodGet, "/api/statistics", "", http.StatusOK)
	if stats["solicitacoes"].(float64) != 1 {
		t.Fatalf("expected one request this month, got %v", stats["solicitacoes"])
	}

	dataOf(t, r, http.MethodGet, "/api/statistics?start_date=ontem", "", http.StatusBadRequest)
}

func TestAPI_TestConnection(t *testing.T) {
	r := newAPI(t)

	data := dataOf(t, r, http.MethodGet, "/api/test-connection", "", http.StatusOK)
	if data["timestamp"] == "" {
		t.Fatal("expected a timestamp")
	}

	gin.SetMode(gin.TestMode)
	down := gin.New()
	NewDiagnosticsHandler(stubPinger{err: context.DeadlineExceeded}).RegisterRoutes(down.Group("/api"))
	if w := do(down, http.MethodGet, "/api/test-connection", ""); w.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", w.Code)
	}
}

func doAs(r http.Handler, token, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAPI_AccountChangesNeedAdministrator(t *testing.T) {
	gin.SetMode(gin.TestMode)
	store := memstore.New()
	secret := []byte("test-secret")
	usuarios := service.NewUsuarioService(store.TxManager(), store.Usuarios(), store.Audit(), service.TokenConfig{
		Secret: secret,
		TTL:    time.Hour,
	})

	ctx := context.Background()
	ana, err := usuarios.Create(ctx, service.CreateUsuarioRequest{Nome: "Ana", Email: "ana@empresa.com", Cargo: model.CargoSolicitante, Senha: "segredo1"})
	if err != nil {
		t.Fatalf("create ana: %v", err)
	}
	if _, err := usuarios.Create(ctx, service.CreateUsuarioRequest{Nome: "Root", Email: "root@empresa.com", Cargo: model.CargoAdministrador, Senha: "segredo1"}); err != nil {
		t.Fatalf("create root: %v", err)
	}
	token := func(email string) string {
		res, err := usuarios.Login(ctx, service.LoginRequest{Email: email, Senha: "segredo1"})
		if err != nil {
			t.Fatalf("login %s: %v", email, err)
		}
		return res.Token
	}
	anaToken, rootToken := token("ana@empresa.com"), token("root@empresa.com")

	r := gin.New()
	api := r.Group("/api", middleware.Authenticate(secret, true))
	NewUsuarioHandler(usuarios).RegisterRoutes(api, UsuarioGuards{
		Admin:       []gin.HandlerFunc{middleware.RequireAccess(model.AcessoMarrom)},
		SelfOrAdmin: []gin.HandlerFunc{middleware.RequireSelfOrAccess("id", model.AcessoMarrom)},
	})
	self := "/api/users/" + ana.ID.String()

	if w := doAs(r, anaToken, http.MethodPut, self, `{"cargo":"Administrador"}`); w.Code != http.StatusForbidden {
		t.Fatalf("self-promotion: expected 403, got %d: %s", w.Code, w.Body.String())
	}
	if w := doAs(r, anaToken, http.MethodPatch, self+"/status", `{"ativo":false}`); w.Code != http.StatusForbidden {
		t.Fatalf("status change: expected 403, got %d", w.Code)
	}
	if w := doAs(r, anaToken, http.MethodPost, "/api/users",
		`{"nome":"Eva","email":"eva@empresa.com","cargo":"Diretor","senha":"segredo1"}`); w.Code != http.StatusForbidden {
		t.Fatalf("account creation: expected 403, got %d", w.Code)
	}

	if w := doAs(r, anaToken, http.MethodPut, self, `{"nome":"Ana Lima"}`); w.Code != http.StatusOK {
		t.Fatalf("own profile: expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if w := doAs(r, anaToken, http.MethodPatch, self+"/senha", `{"senha_atual":"segredo1","nova_senha":"novasenha"}`); w.Code != http.StatusOK {
		t.Fatalf("own password: expected 200, got %d: %s", w.Code, w.Body.String())
	}

	if w := doAs(r, rootToken, http.MethodPut, self, `{"cargo":"Supervisor"}`); w.Code != http.StatusOK {
		t.Fatalf("administrator: expected 200, got %d: %s", w.Code, w.Body.String())
	}
	u, err := usuarios.Get(ctx, ana.ID.String())
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if u.NivelAcesso != model.AcessoAmarelo || u.Nome != "Ana Lima" {
		t.Fatalf("unexpected account %+v", u)
	}
}
