package handler

import (
	"net/http"

	"compras/internal/service"
	"compras/pkg/pagination"
	"compras/pkg/response"

	"github.com/gin-gonic/gin"
)

type AuditHandler struct {
	auditService service.AuditService
}

func NewAuditHandler(auditService service.AuditService) *AuditHandler {
	return &AuditHandler{auditService: auditService}
}

// RegisterRoutes mounts the audit trail behind the given guards
func (h *AuditHandler) RegisterRoutes(router *gin.RouterGroup, guards ...gin.HandlerFunc) {
	group := router.Group("/audit-logs")
	group.Use(guards...)
	{
		group.GET("", h.GetAuditLogs)
	}
}

// GetAuditLogs retrieves one page of the audit trail, newest first
// @Summary      Get audit logs
// @Tags         audit
// @Security     BearerAuth
// @Produce      json
// @Param        page   query     int  false  "Page number (default 1)"
// @Param        limit  query     int  false  "Number of items per page (default 20)"
// @Success      200    {object}  response.Response{data=response.PaginatedData}
// @Router       /api/audit-logs [get]
func (h *AuditHandler) GetAuditLogs(c *gin.Context) {
	p := pagination.Parse(c)

	logs, total, err := h.auditService.GetAuditLogs(c.Request.Context(), p.Page, p.Limit)
	if err != nil {
		respondError(c, "Falha ao carregar auditoria", err)
		return
	}

	c.JSON(http.StatusOK, response.SuccessWithPagination(logs, p.Page, p.Limit, total))
}
