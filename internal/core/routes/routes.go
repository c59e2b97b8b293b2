package routes

import (
	"instock/internal/core/container"
	"instock/internal/middleware"
	"instock/pkg/security"

	"github.com/gin-gonic/gin"
)

func RegisterPublicRoutes(router *gin.Engine, container *container.Container) {
	container.LoginHandler.RegisterRoutes(router)
}

func RegisterProtectedRoutes(router *gin.Engine, container *container.Container) {
	protectedRoutes := router.Group("/api")
	protectedRoutes.Use(security.JWTMiddleware())

	container.CatalogHandler.RegisterRoutes(protectedRoutes)
	container.StockHandler.RegisterRoutes(protectedRoutes)
	container.ShipmentHandler.RegisterRoutes(protectedRoutes)
	container.StatsHandler.RegisterRoutes(protectedRoutes)
	container.GridHandler.RegisterRoutes(protectedRoutes)
	container.ScanHandler.RegisterRoutes(protectedRoutes)
	container.UserHandler.RegisterRoutes(protectedRoutes)
}

func RegisterUtilityRoutes(router *gin.Engine) {
	router.GET("/health", middleware.HealthCheckMiddleware())
}
