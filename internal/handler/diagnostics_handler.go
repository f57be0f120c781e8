package handler

import (
	"context"
	"net/http"
	"time"

	"compras/internal/database"
	"compras/pkg/response"

	"github.com/gin-gonic/gin"
)

type DiagnosticsHandler struct {
	db database.Pinger
}

func NewDiagnosticsHandler(db database.Pinger) *DiagnosticsHandler {
	return &DiagnosticsHandler{db: db}
}

func (h *DiagnosticsHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/test-connection", h.TestConnection)
}

// TestConnection pings the database
// @Summary      Test database connection
// @Tags         diagnostics
// @Produce      json
// @Success      200  {object}  response.Response
// @Failure      503  {object}  response.Response
// @Router       /api/test-connection [get]
func (h *DiagnosticsHandler) TestConnection(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
	defer cancel()

	if err := h.db.Ping(ctx); err != nil {
		c.JSON(http.StatusServiceUnavailable, response.Error("Banco de dados indisponível", err.Error()))
		return
	}
	c.JSON(http.StatusOK, response.Success("Conexão com o banco de dados estabelecida", gin.H{
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	}))
}
