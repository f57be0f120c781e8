package handler

import (
	"net/http"

	"compras/internal/service"
	"compras/pkg/response"

	"github.com/gin-gonic/gin"
)

type SolicitacaoHandler struct {
	solicitacaoService service.SolicitacaoService
}

func NewSolicitacaoHandler(solicitacaoService service.SolicitacaoService) *SolicitacaoHandler {
	return &SolicitacaoHandler{solicitacaoService: solicitacaoService}
}

func (h *SolicitacaoHandler) RegisterRoutes(router *gin.RouterGroup) {
	requests := router.Group("/requests")
	{
		requests.GET("", h.ListSolicitacoes)
		requests.GET("/:id", h.GetSolicitacao)
		requests.POST("", h.CreateSolicitacao)
		requests.PATCH("/:id/status", h.UpdateStatus)
	}
}

// ListSolicitacoes returns every purchase request, newest first
// @Summary      List purchase requests
// @Tags         requests
// @Security     BearerAuth
// @Produce      json
// @Param        status  query     string  false  "Filter by status"
// @Success      200     {object}  response.Response{data=[]model.Solicitacao}
// @Failure      400     {object}  response.Response
// @Router       /api/requests [get]
func (h *SolicitacaoHandler) ListSolicitacoes(c *gin.Context) {
	list, err := h.solicitacaoService.List(c.Request.Context(), c.Query("status"))
	if err != nil {
		respondError(c, "Falha ao listar solicitações", err)
		return
	}
	c.JSON(http.StatusOK, response.Success("", list))
}

// GetSolicitacao returns a request with its items, approvals and quotes
// @Summary      Get purchase request
// @Tags         requests
// @Security     BearerAuth
// @Produce      json
// @Param        id   path      string  true  "Request ID"
// @Success      200  {object}  response.Response{data=model.Solicitacao}
// @Failure      404  {object}  response.Response
// @Router       /api/requests/{id} [get]
func (h *SolicitacaoHandler) GetSolicitacao(c *gin.Context) {
	sol, err := h.solicitacaoService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, "Solicitação não encontrada", err)
		return
	}
	c.JSON(http.StatusOK, response.Success("", sol))
}

// CreateSolicitacao creates a request and its items atomically
// @Summary      Create purchase request
// @Tags         requests
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        payload  body      service.CreateSolicitacaoRequest  true  "Request data and items"
// @Success      201      {object}  response.Response{data=model.Solicitacao}
// @Failure      400      {object}  response.Response
// @Router       /api/requests [post]
func (h *SolicitacaoHandler) CreateSolicitacao(c *gin.Context) {
	var req service.CreateSolicitacaoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	sol, err := h.solicitacaoService.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, "Falha ao criar solicitação", err)
		return
	}
	c.JSON(http.StatusCreated, response.Success("Solicitação criada com sucesso", sol))
}

// UpdateStatus moves a request through the approval workflow
// @Summary      Update request status
// @Description  Only transitions allowed by the workflow are accepted. Approving or rejecting requires approvalData.
// @Tags         requests
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id       path      string                       true  "Request ID"
// @Param        payload  body      service.UpdateStatusRequest  true  "Target status and approval data"
// @Success      200      {object}  response.Response{data=model.Solicitacao}
// @Failure      400      {object}  response.Response
// @Failure      403      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Router       /api/requests/{id}/status [patch]
func (h *SolicitacaoHandler) UpdateStatus(c *gin.Context) {
	var req service.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	sol, err := h.solicitacaoService.UpdateStatus(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondError(c, "Falha ao atualizar status", err)
		return
	}
	c.JSON(http.StatusOK, response.Success("Status atualizado com sucesso", sol))
}
