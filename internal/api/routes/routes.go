package routes

import (
	"fmt"
	"net/http"

	"project-intake-backend/internal/api/handlers"
	"project-intake-backend/internal/api/middleware"
	"project-intake-backend/internal/config"
	"project-intake-backend/internal/repository"
	"project-intake-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application. The similarity service
// is built by the caller because it owns the resident index and the judge client.
func SetupRoutes(db *gorm.DB, cfg *config.Config, similarityService service.SimilarityServiceInterface) (*gin.Engine, error) {
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database handle: %w", err)
	}

	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS(cfg))
	router.Use(middleware.Metrics())

	// Initialize validator
	validator := validator.New()

	// Initialize repositories
	teamRepo := repository.NewTeamRepository(db)
	projectRepo := repository.NewSubmittedProjectRepository(db)
	mentorRepo := repository.NewMentorRepository(db)
	archiveRepo := repository.NewArchivedProjectRepository(db)
	phaseRepo := repository.NewProjectPhaseRepository(db)
	transactor := repository.NewTransactor(db)

	// Initialize services
	submissionService := service.NewSubmissionService(teamRepo, transactor, similarityService, validator)
	projectService := service.NewProjectService(projectRepo, phaseRepo, archiveRepo, validator)
	teamService := service.NewTeamService(teamRepo)
	mentorService := service.NewMentorService(mentorRepo, validator)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(sqlDB, similarityService)
	submissionHandler := handlers.NewSubmissionHandler(submissionService)
	similarityHandler := handlers.NewSimilarityHandler(similarityService, validator)
	projectHandler := handlers.NewProjectHandler(projectService)
	teamHandler := handlers.NewTeamHandler(teamService)
	mentorHandler := handlers.NewMentorHandler(mentorService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Path kept for clients of the original intake form
	router.POST("/create-team", submissionHandler.CreateTeam)

	v1 := router.Group("/api/v1")
	{
		teams := v1.Group("/teams")
		{
			teams.POST("", submissionHandler.CreateTeam)
			teams.GET("", teamHandler.ListTeams)
			teams.GET("/:id", teamHandler.GetTeam)
		}

		projects := v1.Group("/projects")
		{
			projects.GET("", projectHandler.ListProjects)
			projects.GET("/:id", projectHandler.GetProject)
			projects.PUT("/:id/status", projectHandler.UpdateStatus)
			projects.GET("/:id/phases", projectHandler.GetPhases)
			projects.PUT("/:id/phases", projectHandler.UpsertPhases)
		}

		archived := v1.Group("/archived-projects")
		{
			archived.GET("", projectHandler.ListArchived)
			archived.POST("", projectHandler.CreateArchived)
		}

		mentors := v1.Group("/mentors")
		{
			mentors.GET("", mentorHandler.ListMentors)
			mentors.POST("", mentorHandler.CreateMentor)
			mentors.GET("/:id", mentorHandler.GetMentor)
			mentors.GET("/:id/projects", projectHandler.ListProjectsByMentor)
		}

		similarity := v1.Group("/similarity")
		{
			similarity.POST("/evaluate", similarityHandler.Evaluate)
			similarity.GET("/index", similarityHandler.Status)
			similarity.PUT("/index", similarityHandler.RebuildIndex)
			similarity.POST("/index/rebuild", similarityHandler.RebuildFromStore)
		}
	}

	// Catch-all route for undefined endpoints
	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"error":      "Endpoint not found",
			"path":       c.Request.URL.Path,
			"method":     c.Request.Method,
			"request_id": c.GetString("request_id"),
		})
	})

	return router, nil
}

// SetupHealthRoutes sets up only health check routes (useful for testing)
func SetupHealthRoutes(db handlers.Pinger, similarityService service.SimilarityServiceInterface) *gin.Engine {
	router := gin.New()
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())

	healthHandler := handlers.NewHealthHandler(db, similarityService)
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	return router
}
