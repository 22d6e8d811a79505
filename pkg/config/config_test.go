package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig(t *testing.T) {
	// Set test environment variables
	os.Setenv("SERVER_PORT", "8081")
	os.Setenv("MONGODB_URI", "mongodb://mongo:27017")
	os.Setenv("MONGODB_DATABASE", "testdb")
	os.Setenv("REDIS_HOST", "localhost")
	os.Setenv("REDIS_PORT", "6379")
	os.Setenv("JWT_SECRET", "test-secret")
	os.Setenv("S3_BUCKET_NAME", "test-bucket")
	os.Setenv("UPLOAD_DIR", "/tmp/uploads")

	// Load config
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	// Assertions
	assert.NotNil(t, cfg)
	assert.Equal(t, "8081", cfg.ServerPort)
	assert.Equal(t, "mongodb://mongo:27017", cfg.MongoURI)
	assert.Equal(t, "testdb", cfg.MongoDatabase)
	assert.Equal(t, "localhost", cfg.RedisHost)
	assert.Equal(t, "6379", cfg.RedisPort)
	assert.Equal(t, "test-secret", cfg.JWTSecret)
	assert.Equal(t, "test-bucket", cfg.S3BucketName)
	assert.Equal(t, "/tmp/uploads", cfg.UploadDir)

	// Cleanup
	os.Unsetenv("SERVER_PORT")
	os.Unsetenv("MONGODB_URI")
	os.Unsetenv("MONGODB_DATABASE")
	os.Unsetenv("REDIS_HOST")
	os.Unsetenv("REDIS_PORT")
	os.Unsetenv("JWT_SECRET")
	os.Unsetenv("S3_BUCKET_NAME")
	os.Unsetenv("UPLOAD_DIR")
}

func TestLoadConfig_Defaults(t *testing.T) {
	// Clear environment variables
	os.Unsetenv("SERVER_PORT")
	os.Unsetenv("MONGODB_URI")
	os.Unsetenv("REDIS_HOST")
	os.Unsetenv("RABBITMQ_HOST")
	os.Unsetenv("UPLOAD_DIR")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, "mongodb://127.0.0.1:27017", cfg.MongoURI)
	assert.Equal(t, "skillsphere", cfg.MongoDatabase)
	assert.Equal(t, "uploads", cfg.UploadDir)

	// Optional collaborators are disabled when hosts are unset
	assert.Equal(t, "", cfg.RedisHost)
	assert.Equal(t, "", cfg.RabbitMQHost)

	assert.True(t, cfg.EngagementCountsEnabled)
}
