package stats

import (
	"net/http"

	"instock/internal/warehouse"
	"instock/pkg/security"

	"github.com/gin-gonic/gin"
)

type StatsHandler struct {
	Warehouse *warehouse.Warehouse
}

func NewStatsHandler(w *warehouse.Warehouse) *StatsHandler {
	return &StatsHandler{Warehouse: w}
}

func (h *StatsHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/statistics/weight", security.Authorize("user"), h.GetWeightStatistics)
	router.GET("/statistics/volume", security.Authorize("user"), h.GetVolumeStatistics)
}

func (h *StatsHandler) GetWeightStatistics(c *gin.Context) {
	c.JSON(http.StatusOK, h.Warehouse.WeightStatistics(c.Query("palette_id")))
}

func (h *StatsHandler) GetVolumeStatistics(c *gin.Context) {
	c.JSON(http.StatusOK, h.Warehouse.VolumeStatistics(c.Query("palette_id")))
}
