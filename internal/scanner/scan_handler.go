package scanner

import (
	"errors"
	"net/http"

	"instock/internal/warehouse"
	"instock/pkg/security"

	"github.com/gin-gonic/gin"
)

type ScanHandler struct {
	Scanner   *Scanner
	Warehouse *warehouse.Warehouse
}

func NewScanHandler(s *Scanner, w *warehouse.Warehouse) *ScanHandler {
	return &ScanHandler{
		Scanner:   s,
		Warehouse: w,
	}
}

func (h *ScanHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/scans", security.Authorize("user"), h.Scan)
}

// Scan takes one decoded barcode from a capture device and resolves it
// against the catalog. Scans inside the debounce window are reported as
// dropped rather than queued.
func (h *ScanHandler) Scan(c *gin.Context) {
	var req struct {
		Code string `json:"code" binding:"required"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
		return
	}

	symbology, err := h.Scanner.Scan(req.Code)
	if err != nil {
		if errors.Is(err, ErrDebounced) {
			c.JSON(http.StatusOK, gin.H{"accepted": false, "reason": "debounced"})
			return
		}
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid barcode",
			"details": err.Error(),
		})
		return
	}

	item, known := h.Warehouse.FindByBarcode(req.Code)
	response := gin.H{
		"accepted":  true,
		"symbology": symbology,
		"known":     known,
	}
	if known {
		response["item"] = item
	}

	c.JSON(http.StatusOK, response)
}
