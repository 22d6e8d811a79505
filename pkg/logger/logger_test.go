package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	logger := New()
	assert.NotNil(t, logger)
	assert.NotNil(t, logger.info)
	assert.NotNil(t, logger.error)
	assert.NotNil(t, logger.warn)
}

func TestLogger_Levels(t *testing.T) {
	logger := New()

	// Levels must not panic and must accept printf formatting
	logger.Info("media %s stored", "abc123")
	logger.Warn("mirror write skipped: %v", "disk full")
	logger.Error("failed to delete media %s: %v", "abc123", "not found")
}

func TestLogger_MultipleCalls(t *testing.T) {
	logger := New()

	for i := 0; i < 3; i++ {
		logger.Info("call %d", i)
		logger.Warn("call %d", i)
		logger.Error("call %d", i)
	}
}
