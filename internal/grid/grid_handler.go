package grid

import (
	"net/http"

	"instock/pkg/security"

	"github.com/gin-gonic/gin"
)

type GridHandler struct {
	Grid *Grid
}

func NewGridHandler(g *Grid) *GridHandler {
	return &GridHandler{Grid: g}
}

func (h *GridHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/palettes", security.Authorize("user"), h.GetPalettes)
}

// GetPalettes enumerates the configured grid. Optional rows/columns query
// parameters preview a different layout without touching configuration.
func (h *GridHandler) GetPalettes(c *gin.Context) {
	var query struct {
		Rows    *int `form:"rows"`
		Columns *int `form:"columns"`
	}

	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters"})
		return
	}

	g := h.Grid
	if query.Rows != nil || query.Columns != nil {
		rows, columns := g.Rows(), g.Columns()
		if query.Rows != nil {
			rows = *query.Rows
		}
		if query.Columns != nil {
			columns = *query.Columns
		}

		preview, err := NewGrid(rows, columns)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid grid dimensions", "details": err.Error()})
			return
		}
		g = preview
	}

	c.JSON(http.StatusOK, gin.H{
		"rows":     g.Rows(),
		"columns":  g.Columns(),
		"palettes": g.Palettes(),
	})
}
