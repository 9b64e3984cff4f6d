package routes

import (
	"portfolio-backend/internal/api/handlers"
	"portfolio-backend/internal/api/middleware"
	"portfolio-backend/internal/config"
	"portfolio-backend/internal/repository"
	"portfolio-backend/internal/service"
	"portfolio-backend/internal/storage"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application.
// store may be nil, in which case image uploads answer UploadFailed.
func SetupRoutes(db *gorm.DB, cfg *config.Config, store storage.BlobStore) *gin.Engine {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS(cfg.AllowedOrigins))

	// Initialize validator
	validator := service.NewValidator()

	// Initialize repositories
	associationRepo := repository.NewAssociationRepository(db)
	projectRepo := repository.NewProjectRepository(db, associationRepo)
	assetRepo := repository.NewAssetRepository(db)

	// Initialize services
	projectService := service.NewProjectService(projectRepo, validator, cfg.DefaultLocale)
	assetService := service.NewAssetService(assetRepo, store, validator, cfg.UploadMaxBytes)
	catalogService := service.NewCatalogService(associationRepo, validator)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	projectHandler := handlers.NewProjectHandler(projectService)
	assetHandler := handlers.NewAssetHandler(assetService)
	catalogHandler := handlers.NewCatalogHandler(catalogService)

	// Health and banner
	router.GET("/", healthHandler.Root)
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	requireWrite := middleware.RequireBearer(cfg.JWTSecret)

	v1 := router.Group("/api/v1")
	{
		projects := v1.Group("/projects")
		{
			projects.GET("", projectHandler.ListProjects)
			projects.GET("/:id", projectHandler.GetProject)
			projects.POST("", requireWrite, projectHandler.CreateProject)
			projects.POST("/:id/assets", requireWrite, projectHandler.AttachAsset)
			projects.POST("/:id/cover/:assetId", requireWrite, projectHandler.SetCover)
		}

		v1.POST("/assets", requireWrite, assetHandler.CreateAsset)
		v1.POST("/upload/image", requireWrite, assetHandler.UploadImage)

		tags := v1.Group("/tags")
		{
			tags.GET("", catalogHandler.ListTags)
			tags.POST("", requireWrite, catalogHandler.CreateTag)
		}

		technologies := v1.Group("/technologies")
		{
			technologies.GET("", catalogHandler.ListTechnologies)
			technologies.POST("", requireWrite, catalogHandler.CreateTechnology)
		}
	}

	return router
}
