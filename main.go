package main

import (
	"log"
	"time"

	"dbchat/ai"
	"dbchat/cache"
	"dbchat/config"
	"dbchat/db"
	_ "dbchat/docs" // Swagger docs
	"dbchat/handlers"
	"dbchat/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func main() {
	cfg := config.GetConfig()

	// Audit store
	auditDB, err := db.New(cfg.DBPath)
	if err != nil {
		log.Fatalf("Failed to initialize audit store: %v", err)
	}
	defer auditDB.Close()

	// SQL Server store
	sqlService, err := service.NewSQLServerService(cfg.SQLServer)
	if err != nil {
		log.Fatalf("Failed to initialize SQL Server service: %v", err)
	}
	defer sqlService.Close()

	// Model client
	modelClient := ai.New(cfg.ModelAPIKey, cfg.ModelName, cfg.ModelAPIURL, cfg.ModelTimeout)

	schemaCache := cache.New(cfg.SchemaCacheTTL)

	h := handlers.New(sqlService, modelClient, auditDB, schemaCache, cfg.HistoryLimit)

	// Setup Gin router
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Content-Type", "Accept", "Authorization"},
		MaxAge:          12 * time.Hour,
	}))

	// Swagger documentation
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Routes
	r.GET("/health", h.HealthHandler)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.POST("/api/chat", h.ChatHandler)
	r.POST("/api/query", h.QueryHandler)
	r.GET("/api/tables", h.TablesHandler)
	r.GET("/api/schema/:table", h.SchemaHandler)
	r.GET("/api/history", h.HistoryHandler)

	log.Printf("Server starting on port %s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
