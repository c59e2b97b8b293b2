package catalog

import (
	"net/http"

	"instock/internal/warehouse"
	"instock/pkg/auditlog"
	"instock/pkg/security"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CatalogHandler struct {
	Warehouse *warehouse.Warehouse
	AuditLog  *auditlog.Auditlog
}

func NewCatalogHandler(w *warehouse.Warehouse, a *auditlog.Auditlog) *CatalogHandler {
	return &CatalogHandler{
		Warehouse: w,
		AuditLog:  a,
	}
}

func (h *CatalogHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/catalog", security.Authorize("user"), h.GetCatalogItems)
	router.GET("/catalog/barcode/:code", security.Authorize("user"), h.FindByBarcode)
	router.POST("/catalog", security.Authorize("user"), h.CreateCatalogItem)
	router.DELETE("/catalog/:id", security.Authorize("moderator"), h.DeleteCatalogItem)
	router.DELETE("/catalog", security.Authorize("admin"), h.CleanCatalog)
}

func (h *CatalogHandler) GetCatalogItems(c *gin.Context) {
	c.JSON(http.StatusOK, h.Warehouse.CatalogItems())
}

func (h *CatalogHandler) FindByBarcode(c *gin.Context) {
	code := c.Param("code")

	item, found := h.Warehouse.FindByBarcode(code)
	if !found {
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "No catalog item with this barcode"})
		return
	}

	c.JSON(http.StatusOK, item)
}

func (h *CatalogHandler) CreateCatalogItem(c *gin.Context) {
	var req CatalogItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
		return
	}

	item, err := h.Warehouse.AddCatalogItem(req.ToModel())
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to create catalog item", "details": err.Error()})
		return
	}

	go h.AuditLog.Log(
		"create",
		map[string]interface{}{
			"name":    item.Name,
			"barcode": item.Barcode,
			"msg":     "Register catalog item",
		},
		&item,
	)

	c.JSON(http.StatusCreated, item)
}

func (h *CatalogHandler) DeleteCatalogItem(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid catalog item ID"})
		return
	}

	item, found := h.Warehouse.CatalogItem(id)
	if !found {
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "Catalog item not found"})
		return
	}

	if err := h.Warehouse.DeleteCatalogItems([]uuid.UUID{id}); err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete catalog item", "details": err.Error()})
		return
	}

	go h.AuditLog.Log("delete", map[string]interface{}{"name": item.Name}, &item)

	c.JSON(http.StatusOK, gin.H{"message": "Catalog item deleted successfully"})
}

func (h *CatalogHandler) CleanCatalog(c *gin.Context) {
	if err := h.Warehouse.CleanCatalog(); err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to clean catalog", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Catalog cleaned"})
}
