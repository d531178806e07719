package router

import (
	"log/slog"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/polkiloo/littlelemon/internal/server/http/handlers"
	"github.com/polkiloo/littlelemon/internal/server/http/middleware"
)

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.RestaurantFacade, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	authHandler := handlers.NewAuthHandler(facade)
	menuHandler := handlers.NewMenuHandler(facade)
	cartHandler := handlers.NewCartHandler(facade)
	orderHandler := handlers.NewOrderHandler(facade)
	groupHandler := handlers.NewGroupHandler(facade)

	api := engine.Group("/api")
	api.POST("/user/register", authHandler.Register)
	api.POST("/user/login", authHandler.Login)

	auth := api.Group("")
	auth.Use(middleware.AuthRequired(facade))

	auth.GET("/menu-items", menuHandler.List)
	auth.POST("/menu-items", menuHandler.Create)
	auth.GET("/menu-items/:id", menuHandler.Get)
	auth.PUT("/menu-items/:id", menuHandler.Update)
	auth.DELETE("/menu-items/:id", menuHandler.Delete)

	auth.GET("/categories", menuHandler.Categories)
	auth.POST("/categories", menuHandler.CreateCategory)

	auth.GET("/groups/manager/users", groupHandler.ListManagers)
	auth.POST("/groups/manager/users", groupHandler.AssignManager)
	auth.DELETE("/groups/manager/users/:id", groupHandler.RemoveManager)
	auth.GET("/groups/delivery-crew/users", groupHandler.ListDeliveryCrew)
	auth.POST("/groups/delivery-crew/users", groupHandler.AssignDeliveryCrew)
	auth.DELETE("/groups/delivery-crew/users/:id", groupHandler.RemoveDeliveryCrew)

	auth.GET("/cart/menu-items", cartHandler.List)
	auth.POST("/cart/menu-items", cartHandler.Add)
	auth.DELETE("/cart/menu-items", cartHandler.Clear)

	auth.GET("/orders", orderHandler.List)
	auth.POST("/orders", orderHandler.Place)
	auth.GET("/orders/:id", orderHandler.Get)
	auth.PUT("/orders/:id", orderHandler.Update)
	auth.PATCH("/orders/:id", orderHandler.Patch)
	auth.DELETE("/orders/:id", orderHandler.Delete)

	return engine
}
