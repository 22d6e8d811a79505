package main

import (
	"skillsphere/internal/app"
	"skillsphere/pkg/cache"
	"skillsphere/pkg/config"
	"skillsphere/pkg/database"
	"skillsphere/pkg/logger"
	"skillsphere/pkg/mirror"
	"skillsphere/pkg/queue"
	"skillsphere/pkg/storage/s3"

	"github.com/redis/go-redis/v9"
)

// @title           SkillSphere API
// @version         1.0
// @description     Social learning platform backend: posts with media, groups and learning plans.

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	if cfg.JWTSecret == "your-secret-key-change-in-production" || cfg.JWTSecret == "" {
		panic("JWT_SECRET must be set in environment variables")
	}

	log := logger.New()

	mongoClient, db, err := database.NewMongoDB(cfg)
	if err != nil {
		log.Error("Failed to connect to MongoDB: %v", err)
		panic(err)
	}

	var redisClient *redis.Client
	if cfg.RedisHost != "" {
		redisClient, err = cache.NewRedisClient(cfg)
		if err != nil {
			log.Error("Failed to connect to redis: %v", err)
			panic(err)
		}
	}

	store, err := s3.NewStore(cfg)
	if err != nil {
		log.Error("Failed to create object store: %v", err)
		panic(err)
	}

	mirrorWriter, err := mirror.NewWriter(cfg.UploadDir)
	if err != nil {
		log.Error("Failed to prepare local media directory: %v", err)
		panic(err)
	}

	var queueClient *queue.Client
	if cfg.RabbitMQHost != "" {
		queueClient, err = queue.NewRabbitMQClient(cfg, log)
		if err != nil {
			log.Error("Failed to connect to RabbitMQ: %v", err)
			panic(err)
		}
	}

	app.Run(cfg, log, mongoClient, db, store, mirrorWriter, queueClient, redisClient)
}
