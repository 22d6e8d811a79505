package app

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	appHTTP "skillsphere/internal/controller/http"
	"skillsphere/internal/repo/persistent"
	"skillsphere/internal/usecase"
	"skillsphere/pkg/config"
	"skillsphere/pkg/database"
	"skillsphere/pkg/jwt"
	"skillsphere/pkg/logger"
	"skillsphere/pkg/middleware"
	"skillsphere/pkg/mirror"
	"skillsphere/pkg/queue"
	"skillsphere/pkg/storage"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "skillsphere/docs" // Swagger docs
)

func Run(
	cfg *config.Config,
	log *logger.Logger,
	mongoClient *mongo.Client,
	db *mongo.Database,
	store storage.ObjectStore,
	mirrorWriter *mirror.Writer,
	queueClient *queue.Client,
	redisClient *redis.Client,
) {
	jwtService := jwt.NewService(cfg.JWTSecret)

	// Initialize repositories
	postRepo := persistent.NewPostRepository(db)
	userRepo := persistent.NewUserRepository(db)
	groupRepo := persistent.NewGroupRepository(db)
	planRepo := persistent.NewPlanRepository(db)

	var comments usecase.CommentCounter
	var reactions usecase.ReactionCounter
	if cfg.EngagementCountsEnabled {
		comments = persistent.NewCommentCounter(db)
		reactions = persistent.NewReactionCounter(db)
	}

	// Initialize use cases
	postUseCase := usecase.NewPostUseCase(postRepo, userRepo, store, mirrorWriter, comments, reactions, queueClient, log)
	groupUseCase := usecase.NewGroupUseCase(groupRepo, store, mirrorWriter, log)
	planUseCase := usecase.NewPlanUseCase(planRepo)
	authUseCase := usecase.NewAuthUseCase(userRepo, jwtService, log)

	// Initialize HTTP handlers
	postHandler := appHTTP.NewPostHandler(postUseCase, log)
	groupHandler := appHTTP.NewGroupHandler(groupUseCase, log)
	planHandler := appHTTP.NewPlanHandler(planUseCase, log)
	authHandler := appHTTP.NewAuthHandler(authUseCase, log)
	mediaHandler := appHTTP.NewMediaHandler(store, mirrorWriter, log)

	// Setup router
	r := gin.Default()

	// CORS middleware
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://127.0.0.1:3000", "*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * 3600,
	}))

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Swagger documentation
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Public routes
	r.POST("/api/v1/auth/register", authHandler.Register)
	r.POST("/api/v1/auth/login", authHandler.Login)
	r.GET("/api/media/:id", mediaHandler.GetMedia)

	api := r.Group("/api/v1")
	api.Use(middleware.AuthMiddleware(jwtService))
	if redisClient != nil {
		api.Use(middleware.RateLimitMiddleware(redisClient, 100, time.Minute))
	}

	{
		api.GET("/auth/me", authHandler.GetMe)

		api.POST("/posts", postHandler.CreatePost)
		api.GET("/posts", postHandler.ListPosts)
		api.GET("/posts/me", postHandler.GetMyPosts)
		api.GET("/posts/user/:id", postHandler.GetUserPosts)
		api.GET("/posts/:id", postHandler.GetPost)
		api.PUT("/posts/:id", postHandler.UpdatePost)
		api.DELETE("/posts/:id", postHandler.DeletePost)

		api.POST("/groups", groupHandler.CreateGroup)
		api.GET("/groups", groupHandler.ListGroups)
		api.GET("/groups/me", groupHandler.GetMyGroups)
		api.PUT("/groups/:id", groupHandler.UpdateGroup)
		api.DELETE("/groups/:id", groupHandler.DeleteGroup)

		api.POST("/plans", planHandler.CreatePlan)
		api.GET("/plans", planHandler.ListPlans)
		api.GET("/plans/me", planHandler.GetMyPlans)
		api.GET("/plans/user/:id", planHandler.GetUserPlans)
		api.GET("/plans/:id", planHandler.GetPlan)
		api.PUT("/plans/:id", planHandler.UpdatePlan)
		api.DELETE("/plans/:id", planHandler.DeletePlan)
	}

	// Create HTTP server
	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: r,
	}

	// Start server in a goroutine
	go func() {
		log.Info("SkillSphere API starting on port %s", cfg.ServerPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("Failed to start server: %v", err)
			panic(err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down SkillSphere API...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// Close MongoDB connection
	if err := database.Disconnect(mongoClient); err != nil {
		log.Error("Error closing MongoDB: %v", err)
	}

	// Close Redis connection
	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			log.Error("Error closing Redis: %v", err)
		}
	}

	// Close RabbitMQ connection
	if queueClient != nil {
		queueClient.Close()
	}

	// Shutdown server
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
		panic(err)
	}

	log.Info("SkillSphere API exited")
}
