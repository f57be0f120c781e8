package handler

import (
	"net/http"
	"time"

	"compras/internal/service"
	"compras/pkg/response"

	"github.com/gin-gonic/gin"
)

type StatisticsHandler struct {
	statisticsService service.StatisticsService
}

func NewStatisticsHandler(statisticsService service.StatisticsService) *StatisticsHandler {
	return &StatisticsHandler{statisticsService: statisticsService}
}

func (h *StatisticsHandler) RegisterRoutes(router *gin.RouterGroup, guards ...gin.HandlerFunc) {
	statsGroup := router.Group("/statistics")
	statsGroup.Use(guards...)
	{
		statsGroup.GET("", h.GetStatistics)
	}
}

// GetStatistics returns request counts per status and finalized spend per supplier
// @Summary      Get purchasing statistics
// @Description  Requests raised and spend finalized between two dates. Defaults to the current month.
// @Tags         statistics
// @Security     BearerAuth
// @Produce      json
// @Param        start_date  query     string  false  "Start Date (RFC3339)"
// @Param        end_date    query     string  false  "End Date (RFC3339)"
// @Success      200         {object}  response.Response{data=service.StatisticsResponse}
// @Failure      400         {object}  response.Response  "Invalid date format"
// @Router       /api/statistics [get]
func (h *StatisticsHandler) GetStatistics(c *gin.Context) {
	startDateStr := c.Query("start_date")
	endDateStr := c.Query("end_date")

	var startDate, endDate time.Time
	var err error

	now := time.Now()
	if startDateStr == "" {
		startDate = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	} else {
		startDate, err = time.Parse(time.RFC3339, startDateStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, response.Error("start_date inválido, use RFC3339", err.Error()))
			return
		}
	}

	if endDateStr == "" {
		endDate = now
	} else {
		endDate, err = time.Parse(time.RFC3339, endDateStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, response.Error("end_date inválido, use RFC3339", err.Error()))
			return
		}
	}

	stats, err := h.statisticsService.GetStatistics(c.Request.Context(), startDate, endDate)
	if err != nil {
		respondError(c, "Falha ao calcular estatísticas", err)
		return
	}
	c.JSON(http.StatusOK, response.Success("", stats))
}
