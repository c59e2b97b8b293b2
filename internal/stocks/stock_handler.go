package stocks

import (
	"net/http"

	"instock/internal/grid"
	"instock/internal/warehouse"
	"instock/pkg/auditlog"
	"instock/pkg/security"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type StockHandler struct {
	Warehouse *warehouse.Warehouse
	Grid      *grid.Grid
	AuditLog  *auditlog.Auditlog
}

func NewStockHandler(w *warehouse.Warehouse, g *grid.Grid, a *auditlog.Auditlog) *StockHandler {
	return &StockHandler{
		Warehouse: w,
		Grid:      g,
		AuditLog:  a,
	}
}

func (h *StockHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/stocks", security.Authorize("user"), h.GetStocks)
	router.POST("/stocks/movements", security.Authorize("user"), h.ApplyMovement)
	router.DELETE("/stocks/:id", security.Authorize("moderator"), h.DeleteStock)
	router.DELETE("/stocks", security.Authorize("admin"), h.CleanStock)
}

func (h *StockHandler) GetStocks(c *gin.Context) {
	var query StockQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters"})
		return
	}

	c.JSON(http.StatusOK, h.Warehouse.StockEntries(query.PaletteID))
}

func (h *StockHandler) ApplyMovement(c *gin.Context) {
	var req StockMovementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
		return
	}

	item, found := h.Warehouse.CatalogItem(req.CatalogItemID)
	if !found {
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "Catalog item not found"})
		return
	}

	if req.PaletteID != "" {
		if _, ok := h.Grid.Palette(req.PaletteID); !ok {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Palette is outside the warehouse grid"})
			return
		}
	}

	entry, err := h.Warehouse.ApplyMovement(item, req.Quantity, req.PaletteID)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to apply movement", "details": err.Error()})
		return
	}

	if entry == nil {
		// entry was depleted and removed
		go h.AuditLog.Log(
			"movement",
			map[string]interface{}{
				"quantity": req.Quantity,
				"msg":      "Stock entry depleted",
			},
			&item,
		)
		c.JSON(http.StatusOK, gin.H{"message": "Stock entry depleted and removed"})
		return
	}

	go h.AuditLog.Log(
		"movement",
		map[string]interface{}{
			"quantity":   req.Quantity,
			"palette_id": entry.PaletteID,
			"msg":        "Apply stock movement",
		},
		entry,
	)

	c.JSON(http.StatusOK, entry)
}

func (h *StockHandler) DeleteStock(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid stock entry ID"})
		return
	}

	if err := h.Warehouse.RemoveStockEntry(id); err != nil {
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "Failed to delete stock entry", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Stock entry deleted successfully"})
}

func (h *StockHandler) CleanStock(c *gin.Context) {
	if err := h.Warehouse.CleanStock(); err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to clean stock", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Stock cleaned"})
}
