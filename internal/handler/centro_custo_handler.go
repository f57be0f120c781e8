package handler

import (
	"net/http"

	"compras/internal/service"
	"compras/pkg/response"

	"github.com/gin-gonic/gin"
)

type CentroCustoHandler struct {
	centroCustoService service.CentroCustoService
}

func NewCentroCustoHandler(centroCustoService service.CentroCustoService) *CentroCustoHandler {
	return &CentroCustoHandler{centroCustoService: centroCustoService}
}

func (h *CentroCustoHandler) RegisterRoutes(router *gin.RouterGroup) {
	centers := router.Group("/cost-centers")
	{
		centers.GET("", h.ListCentrosCusto)
		centers.GET("/:id", h.GetCentroCusto)
		centers.POST("", h.CreateCentroCusto)
		centers.PUT("/:id", h.UpdateCentroCusto)
		centers.DELETE("/:id", h.DeleteCentroCusto)
	}
}

// ListCentrosCusto returns cost centers
// @Summary      List cost centers
// @Tags         cost-centers
// @Security     BearerAuth
// @Produce      json
// @Param        ativos  query     bool  false  "Only active cost centers"
// @Success      200     {object}  response.Response{data=[]model.CentroCusto}
// @Router       /api/cost-centers [get]
func (h *CentroCustoHandler) ListCentrosCusto(c *gin.Context) {
	list, err := h.centroCustoService.List(c.Request.Context(), c.Query("ativos") == "true")
	if err != nil {
		respondError(c, "Falha ao listar centros de custo", err)
		return
	}
	c.JSON(http.StatusOK, response.Success("", list))
}

// GetCentroCusto returns one cost center
// @Summary      Get cost center
// @Tags         cost-centers
// @Security     BearerAuth
// @Produce      json
// @Param        id   path      string  true  "Cost center ID"
// @Success      200  {object}  response.Response{data=model.CentroCusto}
// @Failure      404  {object}  response.Response
// @Router       /api/cost-centers/{id} [get]
func (h *CentroCustoHandler) GetCentroCusto(c *gin.Context) {
	cc, err := h.centroCustoService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, "Centro de custo não encontrado", err)
		return
	}
	c.JSON(http.StatusOK, response.Success("", cc))
}

// CreateCentroCusto creates a cost center with a unique code
// @Summary      Create cost center
// @Tags         cost-centers
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        payload  body      service.CreateCentroCustoRequest  true  "Cost center payload"
// @Success      201      {object}  response.Response{data=model.CentroCusto}
// @Failure      400      {object}  response.Response
// @Router       /api/cost-centers [post]
func (h *CentroCustoHandler) CreateCentroCusto(c *gin.Context) {
	var req service.CreateCentroCustoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	cc, err := h.centroCustoService.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, "Falha ao criar centro de custo", err)
		return
	}
	c.JSON(http.StatusCreated, response.Success("Centro de custo criado com sucesso", cc))
}

// UpdateCentroCusto updates the fields that are sent
// @Summary      Update cost center
// @Tags         cost-centers
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id       path      string                            true  "Cost center ID"
// @Param        payload  body      service.UpdateCentroCustoRequest  true  "Update payload"
// @Success      200      {object}  response.Response{data=model.CentroCusto}
// @Failure      400      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Router       /api/cost-centers/{id} [put]
func (h *CentroCustoHandler) UpdateCentroCusto(c *gin.Context) {
	var req service.UpdateCentroCustoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	cc, err := h.centroCustoService.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondError(c, "Falha ao atualizar centro de custo", err)
		return
	}
	c.JSON(http.StatusOK, response.Success("Centro de custo atualizado com sucesso", cc))
}

// DeleteCentroCusto deletes a cost center (soft delete)
// @Summary      Delete cost center
// @Tags         cost-centers
// @Security     BearerAuth
// @Produce      json
// @Param        id   path      string  true  "Cost center ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /api/cost-centers/{id} [delete]
func (h *CentroCustoHandler) DeleteCentroCusto(c *gin.Context) {
	if err := h.centroCustoService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, "Falha ao excluir centro de custo", err)
		return
	}
	c.JSON(http.StatusOK, response.Success("Centro de custo excluído com sucesso", nil))
}
