package shipments

import (
	"net/http"

	"instock/internal/grid"
	"instock/internal/warehouse"
	"instock/pkg/auditlog"
	"instock/pkg/models"
	"instock/pkg/security"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ShipmentHandler struct {
	Warehouse *warehouse.Warehouse
	Grid      *grid.Grid
	AuditLog  *auditlog.Auditlog
}

func NewShipmentHandler(w *warehouse.Warehouse, g *grid.Grid, a *auditlog.Auditlog) *ShipmentHandler {
	return &ShipmentHandler{
		Warehouse: w,
		Grid:      g,
		AuditLog:  a,
	}
}

func (h *ShipmentHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/shipments", security.Authorize("user"), h.GetShipments)
	router.POST("/shipments", security.Authorize("user"), h.CreateShipment)
	router.DELETE("/shipments/:id", security.Authorize("moderator"), h.DeleteShipment)
	router.DELETE("/shipments", security.Authorize("admin"), h.CleanShipments)
	router.POST("/shipments/:id/items", security.Authorize("user"), h.AddItem)
	router.DELETE("/shipments/:id/items/:itemId", security.Authorize("user"), h.RemoveItem)
}

func (h *ShipmentHandler) GetShipments(c *gin.Context) {
	c.JSON(http.StatusOK, h.Warehouse.Shipments())
}

func (h *ShipmentHandler) CreateShipment(c *gin.Context) {
	var req CreateShipmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
		return
	}

	direction, err := models.NewShipmentDirection(req.Direction)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid shipment direction",
			"details": err.Error(),
		})
		return
	}

	shipment, err := h.Warehouse.AddShipment(req.CustomerCode, direction)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to create shipment", "details": err.Error()})
		return
	}

	go h.AuditLog.Log(
		"create",
		map[string]interface{}{
			"customer_code": shipment.CustomerCode,
			"direction":     shipment.Direction,
		},
		&shipment,
	)

	c.JSON(http.StatusCreated, shipment)
}

func (h *ShipmentHandler) DeleteShipment(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid shipment ID"})
		return
	}

	shipment, found := h.Warehouse.Shipment(id)
	if !found {
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "Shipment not found"})
		return
	}

	if err := h.Warehouse.DeleteShipment(id); err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete shipment", "details": err.Error()})
		return
	}

	// deleting a shipment does not reverse its stock movements
	go h.AuditLog.Log("delete", map[string]interface{}{"customer_code": shipment.CustomerCode}, &shipment)

	c.JSON(http.StatusOK, gin.H{"message": "Shipment deleted successfully"})
}

func (h *ShipmentHandler) AddItem(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid shipment ID"})
		return
	}

	var req ShipmentItemRequest
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

	shipment, err := h.Warehouse.AddItemToShipment(id, models.StockEntry{
		Item:      item,
		Quantity:  req.Quantity,
		PaletteID: req.PaletteID,
	})
	if err != nil {
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "Failed to add item to shipment", "details": err.Error()})
		return
	}

	go h.AuditLog.Log(
		"movement",
		map[string]interface{}{
			"catalog_item": item.Name,
			"quantity":     req.Quantity,
			"palette_id":   req.PaletteID,
		},
		shipment,
	)

	c.JSON(http.StatusOK, shipment)
}

func (h *ShipmentHandler) RemoveItem(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid shipment ID"})
		return
	}

	itemID, err := uuid.Parse(c.Param("itemId"))
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid shipment item ID"})
		return
	}

	shipment, err := h.Warehouse.RemoveItemFromShipment(id, itemID)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "Failed to remove item from shipment", "details": err.Error()})
		return
	}

	go h.AuditLog.Log("update", map[string]interface{}{"removed_entry": itemID.String()}, shipment)

	c.JSON(http.StatusOK, shipment)
}

func (h *ShipmentHandler) CleanShipments(c *gin.Context) {
	if err := h.Warehouse.CleanShipments(); err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to clean shipments", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Shipments cleaned"})
}
