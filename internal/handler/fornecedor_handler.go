package handler

import (
	"net/http"

	"compras/internal/service"
	"compras/pkg/response"

	"github.com/gin-gonic/gin"
)

type FornecedorHandler struct {
	fornecedorService service.FornecedorService
}

func NewFornecedorHandler(fornecedorService service.FornecedorService) *FornecedorHandler {
	return &FornecedorHandler{fornecedorService: fornecedorService}
}

func (h *FornecedorHandler) RegisterRoutes(router *gin.RouterGroup) {
	suppliers := router.Group("/suppliers")
	{
		suppliers.GET("", h.ListFornecedores)
		suppliers.GET("/:id", h.GetFornecedor)
		suppliers.POST("", h.CreateFornecedor)
		suppliers.PUT("/:id", h.UpdateFornecedor)
		suppliers.DELETE("/:id", h.DeleteFornecedor)
	}
}

// ListFornecedores returns suppliers with an optional search filter
// @Summary      List suppliers
// @Tags         suppliers
// @Security     BearerAuth
// @Produce      json
// @Param        search  query     string  false  "Search by name, category or email"
// @Success      200     {object}  response.Response{data=[]model.Fornecedor}
// @Router       /api/suppliers [get]
func (h *FornecedorHandler) ListFornecedores(c *gin.Context) {
	list, err := h.fornecedorService.List(c.Request.Context(), c.Query("search"))
	if err != nil {
		respondError(c, "Falha ao listar fornecedores", err)
		return
	}
	c.JSON(http.StatusOK, response.Success("", list))
}

// GetFornecedor returns one supplier
// @Summary      Get supplier
// @Tags         suppliers
// @Security     BearerAuth
// @Produce      json
// @Param        id   path      string  true  "Supplier ID"
// @Success      200  {object}  response.Response{data=model.Fornecedor}
// @Failure      404  {object}  response.Response
// @Router       /api/suppliers/{id} [get]
func (h *FornecedorHandler) GetFornecedor(c *gin.Context) {
	f, err := h.fornecedorService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, "Fornecedor não encontrado", err)
		return
	}
	c.JSON(http.StatusOK, response.Success("", f))
}

// CreateFornecedor creates a supplier
// @Summary      Create supplier
// @Tags         suppliers
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        payload  body      service.CreateFornecedorRequest  true  "Supplier payload"
// @Success      201      {object}  response.Response{data=model.Fornecedor}
// @Failure      400      {object}  response.Response
// @Router       /api/suppliers [post]
func (h *FornecedorHandler) CreateFornecedor(c *gin.Context) {
	var req service.CreateFornecedorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	f, err := h.fornecedorService.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, "Falha ao criar fornecedor", err)
		return
	}
	c.JSON(http.StatusCreated, response.Success("Fornecedor criado com sucesso", f))
}

// UpdateFornecedor updates the fields that are sent
// @Summary      Update supplier
// @Tags         suppliers
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id       path      string                           true  "Supplier ID"
// @Param        payload  body      service.UpdateFornecedorRequest  true  "Update payload"
// @Success      200      {object}  response.Response{data=model.Fornecedor}
// @Failure      400      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Router       /api/suppliers/{id} [put]
func (h *FornecedorHandler) UpdateFornecedor(c *gin.Context) {
	var req service.UpdateFornecedorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	f, err := h.fornecedorService.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondError(c, "Falha ao atualizar fornecedor", err)
		return
	}
	c.JSON(http.StatusOK, response.Success("Fornecedor atualizado com sucesso", f))
}

// DeleteFornecedor deletes a supplier (soft delete)
// @Summary      Delete supplier
// @Tags         suppliers
// @Security     BearerAuth
// @Produce      json
// @Param        id   path      string  true  "Supplier ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /api/suppliers/{id} [delete]
func (h *FornecedorHandler) DeleteFornecedor(c *gin.Context) {
	if err := h.fornecedorService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, "Falha ao excluir fornecedor", err)
		return
	}
	c.JSON(http.StatusOK, response.Success("Fornecedor excluído com sucesso", nil))
}
