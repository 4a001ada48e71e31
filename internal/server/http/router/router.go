package router

import (
	"log/slog"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/attesto/attesto/internal/config"
	"github.com/attesto/attesto/internal/domain/model"
	"github.com/attesto/attesto/internal/server/http/handlers"
	"github.com/attesto/attesto/internal/server/http/middleware"
)

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.MarketplaceFacade, auth middleware.Authenticator, cfg *config.Config, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	authHandler := handlers.NewAuthHandler(facade)
	orderHandler := handlers.NewOrderHandler(facade)
	paymentHandler := handlers.NewPaymentHandler(facade, cfg.PaymentWebhookSecret, logger)
	assignmentHandler := handlers.NewAssignmentHandler(facade)
	deliveryHandler := handlers.NewDeliveryHandler(facade, cfg.MaxUploadBytes)
	translatorHandler := handlers.NewTranslatorHandler(facade)
	adminHandler := handlers.NewAdminHandler(facade)

	api := engine.Group("/api")

	authGroup := api.Group("/auth")
	authGroup.POST("/register", authHandler.Register)
	authGroup.POST("/register/translator", authHandler.RegisterTranslator)
	authGroup.POST("/login", authHandler.Login)

	api.GET("/translators", translatorHandler.Directory)
	api.POST("/payments/webhook", paymentHandler.Webhook)

	orders := api.Group("/orders")
	orders.Use(middleware.AuthRequired(auth))
	orders.POST("", orderHandler.Submit)
	orders.GET("", orderHandler.List)
	orders.GET("/:orderID", orderHandler.Get)
	orders.POST("/:orderID/checkout", orderHandler.Checkout)
	orders.POST("/:orderID/revision", orderHandler.RequestRevision)
	orders.POST("/:orderID/cancel", orderHandler.Cancel)
	orders.POST("/:orderID/claim", assignmentHandler.Claim)
	orders.POST("/:orderID/start", assignmentHandler.StartWork)
	orders.POST("/:orderID/translation", deliveryHandler.UploadTranslation)
	orders.GET("/:orderID/translation", deliveryHandler.DownloadTranslation)
	orders.POST("/:orderID/files", deliveryHandler.UploadOriginal)
	orders.GET("/:orderID/files", deliveryHandler.ListOriginals)
	orders.GET("/:orderID/files/:fileID", deliveryHandler.DownloadOriginal)

	admin := api.Group("/admin")
	admin.Use(middleware.AuthRequired(auth))
	admin.Use(middleware.RequireRole(model.RoleAdmin))
	admin.GET("/orders", orderHandler.ListAll)
	admin.POST("/orders/:orderID/assign", adminHandler.Assign)
	admin.POST("/orders/:orderID/reassign", adminHandler.Reassign)
	admin.POST("/orders/:orderID/complete", adminHandler.Complete)
	admin.POST("/orders/:orderID/mark-delivered", adminHandler.MarkDelivered)
	admin.POST("/orders/:orderID/clear-revision", adminHandler.ClearRevision)
	admin.PATCH("/orders/:orderID", adminHandler.UpdateOrder)
	admin.POST("/translators", adminHandler.CreateTranslator)
	admin.GET("/translators", adminHandler.ListTranslators)
	admin.GET("/translators/:userID", adminHandler.GetTranslator)
	admin.PATCH("/translators/:userID", adminHandler.UpdateTranslator)

	return engine
}
