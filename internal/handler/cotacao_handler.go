package handler

import (
	"net/http"

	"compras/internal/service"
	"compras/pkg/response"

	"github.com/gin-gonic/gin"
)

type CotacaoHandler struct {
	cotacaoService service.CotacaoService
}

func NewCotacaoHandler(cotacaoService service.CotacaoService) *CotacaoHandler {
	return &CotacaoHandler{cotacaoService: cotacaoService}
}

func (h *CotacaoHandler) RegisterRoutes(router *gin.RouterGroup) {
	quotes := router.Group("/quotes")
	{
		quotes.GET("", h.ListCotacoes)
		quotes.GET("/requests", h.ListAwaitingQuotes)
		quotes.POST("", h.CreateCotacao)
		quotes.PATCH("/:id/status", h.UpdateStatus)
		// :id is the purchase request for these two
		quotes.GET("/:id/comparison", h.Compare)
		quotes.POST("/:id/finalize", h.Finalize)
	}
}

// ListCotacoes returns every quote
// @Summary      List quotes
// @Tags         quotes
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  response.Response{data=[]model.Cotacao}
// @Router       /api/quotes [get]
func (h *CotacaoHandler) ListCotacoes(c *gin.Context) {
	list, err := h.cotacaoService.List(c.Request.Context())
	if err != nil {
		respondError(c, "Falha ao listar cotações", err)
		return
	}
	c.JSON(http.StatusOK, response.Success("", list))
}

// ListAwaitingQuotes returns requests in Aprovado or Em Cotação
// @Summary      List requests open for quoting
// @Tags         quotes
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  response.Response{data=[]model.Solicitacao}
// @Router       /api/quotes/requests [get]
func (h *CotacaoHandler) ListAwaitingQuotes(c *gin.Context) {
	list, err := h.cotacaoService.ListAwaitingQuotes(c.Request.Context())
	if err != nil {
		respondError(c, "Falha ao listar solicitações", err)
		return
	}
	c.JSON(http.StatusOK, response.Success("", list))
}

// CreateCotacao registers a supplier quote for a request
// @Summary      Create quote
// @Description  A quote on an approved request moves it to Em Cotação.
// @Tags         quotes
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        payload  body      service.CreateCotacaoRequest  true  "Quote data"
// @Success      201      {object}  response.Response{data=model.Cotacao}
// @Failure      400      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Router       /api/quotes [post]
func (h *CotacaoHandler) CreateCotacao(c *gin.Context) {
	var req service.CreateCotacaoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	cotacao, err := h.cotacaoService.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, "Falha ao criar cotação", err)
		return
	}
	c.JSON(http.StatusCreated, response.Success("Cotação criada com sucesso", cotacao))
}

// UpdateStatus approves or rejects a quote
// @Summary      Update quote status
// @Tags         quotes
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id       path      string                              true  "Quote ID"
// @Param        payload  body      service.UpdateCotacaoStatusRequest  true  "Decision"
// @Success      200      {object}  response.Response{data=model.Cotacao}
// @Failure      400      {object}  response.Response
// @Failure      403      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Router       /api/quotes/{id}/status [patch]
func (h *CotacaoHandler) UpdateStatus(c *gin.Context) {
	var req service.UpdateCotacaoStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	cotacao, err := h.cotacaoService.UpdateStatus(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondError(c, "Falha ao atualizar cotação", err)
		return
	}
	c.JSON(http.StatusOK, response.Success("Cotação atualizada com sucesso", cotacao))
}

// Compare returns the item × supplier price matrix of a request
// @Summary      Compare quotes
// @Tags         quotes
// @Security     BearerAuth
// @Produce      json
// @Param        id   path      string  true  "Request ID"
// @Success      200  {object}  response.Response{data=service.ComparisonView}
// @Failure      404  {object}  response.Response
// @Router       /api/quotes/{id}/comparison [get]
func (h *CotacaoHandler) Compare(c *gin.Context) {
	view, err := h.cotacaoService.Compare(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, "Falha ao comparar cotações", err)
		return
	}
	c.JSON(http.StatusOK, response.Success("", view))
}

// Finalize records the chosen line items of a request
// @Summary      Finalize quote comparison
// @Description  Persists the selection, returns the total and moves Em Cotação to Aprovado para Compra.
// @Tags         quotes
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id       path      string                   true  "Request ID"
// @Param        payload  body      service.FinalizeRequest  true  "Selected quote lines"
// @Success      200      {object}  response.Response{data=service.FinalizeResponse}
// @Failure      400      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Router       /api/quotes/{id}/finalize [post]
func (h *CotacaoHandler) Finalize(c *gin.Context) {
	var req service.FinalizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	res, err := h.cotacaoService.Finalize(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondError(c, "Falha ao finalizar cotação", err)
		return
	}
	c.JSON(http.StatusOK, response.Success("Cotação finalizada com sucesso", res))
}
