package main

import (
	"fmt"
	"log"
	"net/http"

	"gamevault/backend/internal/auth"
	"gamevault/backend/internal/config"
	"gamevault/backend/internal/database"
	"gamevault/backend/internal/handler"

	"github.com/gin-gonic/gin"

	// Swagger imports
	_ "gamevault/backend/docs" // This is important for swag to find the generated docs

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func init() {
	config.LoadConfig()
}

// @title           GameVault API
// @version         1.0
// @description     Aggregates owned games across Steam and Epic into one deduplicated library.
// @host            localhost:8080
// @BasePath        /api
// @securityDefinitions.apiKey BearerAuth
// @in header
// @name Authorization
func main() {
	// Connect to the database
	database.Connect(config.AppConfig.DatabaseURL)

	router := gin.Default()

	// Swagger route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
		})
	})

	// API routes
	api := router.Group("/api")
	{
		// Auth routes
		authRoutes := api.Group("/auth")
		{
			authRoutes.GET("/bootstrap-status", handler.BootstrapStatus)
			authRoutes.POST("/bootstrap-admin", handler.BootstrapAdmin)
			authRoutes.POST("/login", handler.Login)
		}

		// Authenticated auth routes
		authProtected := api.Group("/auth")
		authProtected.Use(auth.AuthMiddleware())
		{
			authProtected.GET("/me", handler.Me)
			authProtected.POST("/users", auth.AdminMiddleware(), handler.CreateUser)
		}

		// Account routes (protected)
		accountRoutes := api.Group("/accounts")
		accountRoutes.Use(auth.AuthMiddleware())
		{
			accountRoutes.GET("", handler.GetAccounts)
			accountRoutes.POST("/:id/resync", handler.ResyncAccount)
			accountRoutes.PUT("/:id", handler.UpdateAccount)
			accountRoutes.DELETE("/:id", handler.DeleteAccount)
		}

		// Library routes (protected)
		libraryRoutes := api.Group("/library")
		libraryRoutes.Use(auth.AuthMiddleware())
		{
			libraryRoutes.GET("", handler.GetLibrary)
			libraryRoutes.GET("/games", handler.GetLibraryGames)
		}

		// Sync routes (protected)
		syncRoutes := api.Group("/sync")
		syncRoutes.Use(auth.AuthMiddleware())
		{
			syncRoutes.POST("/steam", handler.SyncSteam)
			syncRoutes.POST("/epic", handler.SyncEpic)
		}
	}

	fmt.Printf("Server is running on %s\n", config.AppConfig.ListenAddr)
	fmt.Println("Swagger UI is available at http://localhost:8080/swagger/index.html")
	log.Fatal(router.Run(config.AppConfig.ListenAddr))
}
